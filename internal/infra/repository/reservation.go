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

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db pgq.DBTX, arg pgq.Reservations) error
	FindReservationByID(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Reservations, error)
	LockReservation(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Reservations, error)
	UpdateReservation(ctx context.Context, db pgq.DBTX, arg pgq.UpdateReservationParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      pgq.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db pgq.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create reports DUPLICATE_KEY on a reservation code collision.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToInfra(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.FindReservationByID(ctx, r.db, id)
	return convertReservation(row, err)
}

func (r *ReservationRepository) LockByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.LockReservation(ctx, r.db, id)
	return convertReservation(row, err)
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	n, err := r.queries.UpdateReservation(ctx, r.db, converter.ReservationUpdateToInfra(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func convertReservation(row pgq.Reservations, err error) (*reservation.Reservation, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return converter.ReservationFromInfra(row), nil
}
