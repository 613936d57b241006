package commands

//go:generate mockgen -source=transaction.go -destination=../../../tests/mock/commands/transaction.go -package=commandsmock

import (
	"context"

	"rental-market/internal/domain/auth"
	"rental-market/internal/domain/reservation"
	"rental-market/internal/infra"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type TransactionCommands interface {
	// UpdateStatus records a payment outcome reported by the external
	// payment process. Operators only.
	UpdateStatus(ctx context.Context, p auth.Principal, transactionID uuid.UUID, status reservation.TransactionStatus) (*reservation.Transaction, error)
}

type transactionCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTransactionCommands(uow shared.UnitOfWork, clock clock.Clock) TransactionCommands {
	return &transactionCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (t *transactionCommandsImpl) UpdateStatus(ctx context.Context, p auth.Principal, transactionID uuid.UUID, status reservation.TransactionStatus) (*reservation.Transaction, error) {
	if !p.IsOperator() {
		return nil, shared.Forbidden("only operators can record payment status")
	}

	var out *reservation.Transaction
	err := t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		txn, err := tx.Transactions().LockByID(ctx, transactionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return shared.NotFound("transaction")
			}
			return err
		}
		now := t.clock.Now()
		if err := txn.UpdateStatus(status, now); err != nil {
			return err
		}
		if err := tx.Transactions().UpdateStatus(ctx, txn); err != nil {
			return err
		}
		if err := shared.Enqueue(ctx, tx, shared.EventTransactionStatusChanged, shared.TopicTransactions, shared.TransactionChanged(txn), now); err != nil {
			return err
		}
		out = txn
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return out, nil
}
