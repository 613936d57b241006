package repository

import (
	"context"

	"rental-market/internal/domain/reservation"
	"rental-market/internal/infra"
	"rental-market/internal/infra/pgq"
	"rental-market/internal/infra/repository/converter"
	"rental-market/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type TransactionQueries interface {
	CreateTransaction(ctx context.Context, db pgq.DBTX, arg pgq.Transactions) error
	LockTransaction(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Transactions, error)
	ListTransactionsByReservations(ctx context.Context, db pgq.DBTX, reservationIDs []uuid.UUID) ([]pgq.Transactions, error)
	UpdateTransactionStatus(ctx context.Context, db pgq.DBTX, arg pgq.UpdateTransactionStatusParams) (int64, error)
}

type TransactionRepository struct {
	queries TransactionQueries
	db      pgq.DBTX
}

func NewTransactionRepository(queries TransactionQueries, db pgq.DBTX) *TransactionRepository {
	return &TransactionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, txn *reservation.Transaction) error {
	if err := r.queries.CreateTransaction(ctx, r.db, converter.TransactionToInfra(txn)); err != nil {
		return infra.WrapRepoErr("failed to create transaction", err)
	}
	return nil
}

func (r *TransactionRepository) LockByID(ctx context.Context, id uuid.UUID) (*reservation.Transaction, error) {
	row, err := r.queries.LockTransaction(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock transaction", err)
	}
	return converter.TransactionFromInfra(row), nil
}

func (r *TransactionRepository) ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]*reservation.Transaction, error) {
	rows, err := r.queries.ListTransactionsByReservations(ctx, r.db, []uuid.UUID{reservationID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}
	return converter.TransactionsFromInfra(rows), nil
}

func (r *TransactionRepository) UpdateStatus(ctx context.Context, txn *reservation.Transaction) error {
	n, err := r.queries.UpdateTransactionStatus(ctx, r.db, pgq.UpdateTransactionStatusParams{
		ID:        txn.ID(),
		Status:    string(txn.Status()),
		UpdatedAt: pgconv.TimeToPgtype(txn.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update transaction status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("transaction not found", nil, infra.KindNotFound)
	}
	return nil
}
