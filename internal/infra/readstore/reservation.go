package readstore

import (
	"context"

	"rental-market/internal/domain/reservation"
	"rental-market/internal/infra"
	"rental-market/internal/infra/pgq"
	"rental-market/internal/infra/repository/converter"
	"rental-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	ListReservationsByUser(ctx context.Context, db pgq.DBTX, arg pgq.ListReservationsByUserParams) ([]pgq.Reservations, error)
	ListTransactionsByReservations(ctx context.Context, db pgq.DBTX, reservationIDs []uuid.UUID) ([]pgq.Transactions, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      pgq.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db pgq.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

// ListSettlements loads reservations and their transactions in two round
// trips.
func (r *ReservationReadStore) ListSettlements(ctx context.Context, userID uuid.UUID, scope queries.ReservationScope) ([]reservation.Settlement, error) {
	rows, err := r.queries.ListReservationsByUser(ctx, r.db, pgq.ListReservationsByUserParams{
		UserID:       userID,
		IncludeGuest: scope != queries.ScopeOwner,
		IncludeOwner: scope != queries.ScopeGuest,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	if len(rows) == 0 {
		return []reservation.Settlement{}, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	txnRows, err := r.queries.ListTransactionsByReservations(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}

	byReservation := make(map[uuid.UUID][]*reservation.Transaction, len(rows))
	for _, txn := range converter.TransactionsFromInfra(txnRows) {
		byReservation[txn.ReservationID()] = append(byReservation[txn.ReservationID()], txn)
	}

	settlements := make([]reservation.Settlement, len(rows))
	for i, row := range rows {
		settlements[i] = reservation.Settlement{
			Reservation:  converter.ReservationFromInfra(row),
			Transactions: byReservation[row.ID],
		}
	}
	return settlements, nil
}
