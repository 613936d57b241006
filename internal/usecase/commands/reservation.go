package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"rental-market/internal/domain/auth"
	"rental-market/internal/domain/availability"
	"rental-market/internal/domain/reservation"
	"rental-market/internal/infra"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationCommands interface {
	Confirm(ctx context.Context, p auth.Principal, reservationID uuid.UUID) (*reservation.Reservation, error)
	Cancel(ctx context.Context, p auth.Principal, reservationID uuid.UUID) (*reservation.Reservation, error)
	MarkCashConfirmed(ctx context.Context, p auth.Principal, reservationID uuid.UUID) (*reservation.Reservation, error)
	ConfirmArrival(ctx context.Context, p auth.Principal, reservationID uuid.UUID) (*reservation.Reservation, error)
	Complete(ctx context.Context, p auth.Principal, reservationID uuid.UUID) (*reservation.Reservation, error)
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	scheduler shared.DeadlineScheduler
	clock     clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, scheduler shared.DeadlineScheduler, clock clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		uow:       uow,
		scheduler: scheduler,
		clock:     clock,
	}
}

// transition locks the reservation, applies change and stores the result
// with its notification. Every window is recomputed from the clock here.
func (r *reservationCommandsImpl) transition(
	ctx context.Context,
	reservationID uuid.UUID,
	event string,
	change func(ctx context.Context, tx shared.Tx, res *reservation.Reservation, now time.Time) error,
) (*reservation.Reservation, error) {
	var out *reservation.Reservation
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().LockByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return shared.NotFound("reservation")
			}
			return err
		}
		now := r.clock.Now()
		if err := change(ctx, tx, res, now); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return err
		}
		if err := shared.Enqueue(ctx, tx, event, shared.TopicReservations, shared.ReservationChanged(res), now); err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return out, nil
}

// Confirm refuses dates that another confirmed stay took in the meantime;
// pending reservations never block the calendar.
func (r *reservationCommandsImpl) Confirm(ctx context.Context, p auth.Principal, reservationID uuid.UUID) (*reservation.Reservation, error) {
	res, err := r.transition(ctx, reservationID, shared.EventReservationConfirmed,
		func(ctx context.Context, tx shared.Tx, res *reservation.Reservation, now time.Time) error {
			if err := res.Confirm(p.UserID, now); err != nil {
				return err
			}
			if err := tx.Calendar().LockListing(ctx, res.ListingID()); err != nil {
				return err
			}
			bookings, err := tx.Calendar().BlockingBookings(ctx, res.ListingID())
			if err != nil {
				return err
			}
			return availability.Resolve(bookings, nil).CheckRange(res.Occupancy())
		})
	if err != nil {
		return nil, err
	}

	if err := r.scheduler.ScheduleCancellationWindow(ctx, res.ID(), res.CancellationDeadline()); err != nil {
		slog.Warn("failed to schedule cancellation window", "reservation_id", res.ID(), "error", err.Error())
	}
	return res, nil
}

func (r *reservationCommandsImpl) Cancel(ctx context.Context, p auth.Principal, reservationID uuid.UUID) (*reservation.Reservation, error) {
	return r.transition(ctx, reservationID, shared.EventReservationCancelled,
		func(ctx context.Context, tx shared.Tx, res *reservation.Reservation, now time.Time) error {
			txns, err := tx.Transactions().ListByReservation(ctx, res.ID())
			if err != nil {
				return err
			}
			return res.Cancel(p.UserID, now, txns)
		})
}

func (r *reservationCommandsImpl) MarkCashConfirmed(ctx context.Context, p auth.Principal, reservationID uuid.UUID) (*reservation.Reservation, error) {
	return r.transition(ctx, reservationID, shared.EventReservationCashConfirmed,
		func(_ context.Context, _ shared.Tx, res *reservation.Reservation, now time.Time) error {
			return res.MarkCashConfirmed(p.UserID, now)
		})
}

func (r *reservationCommandsImpl) ConfirmArrival(ctx context.Context, p auth.Principal, reservationID uuid.UUID) (*reservation.Reservation, error) {
	return r.transition(ctx, reservationID, shared.EventReservationArrival,
		func(_ context.Context, _ shared.Tx, res *reservation.Reservation, now time.Time) error {
			return res.ConfirmArrival(p.UserID, now)
		})
}

func (r *reservationCommandsImpl) Complete(ctx context.Context, p auth.Principal, reservationID uuid.UUID) (*reservation.Reservation, error) {
	return r.transition(ctx, reservationID, shared.EventReservationCompleted,
		func(_ context.Context, _ shared.Tx, res *reservation.Reservation, now time.Time) error {
			return res.Complete(p.UserID, now)
		})
}
