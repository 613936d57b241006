package commands

//go:generate mockgen -source=deadline.go -destination=../../../tests/mock/commands/deadline.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"rental-market/internal/domain/reservation"
	"rental-market/internal/infra"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/usecase/shared"

	"github.com/google/uuid"
)

// DeadlineCommands re-evaluate wall-clock windows when the scheduler fires.
// They only announce state; the action paths recompute the windows
// themselves. The returned string is the emitted event kind, empty when
// nothing was due.
type DeadlineCommands interface {
	EvaluateOfferWindow(ctx context.Context, conversationID, acceptMessageID uuid.UUID) (string, error)
	EvaluateCancellationWindow(ctx context.Context, reservationID uuid.UUID) (string, error)
	// PurgeIdempotencyKeys drops keys that expired more than a grace period
	// ago and returns how many were removed.
	PurgeIdempotencyKeys(ctx context.Context) (int64, error)
}

const idempotencyPurgeGrace = time.Hour

type deadlineCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDeadlineCommands(uow shared.UnitOfWork, clock clock.Clock) DeadlineCommands {
	return &deadlineCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (d *deadlineCommandsImpl) EvaluateOfferWindow(ctx context.Context, conversationID, acceptMessageID uuid.UUID) (string, error) {
	var emitted string
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		conv, thread, err := shared.LoadThread(ctx, tx, conversationID, false)
		if err != nil {
			return err
		}
		accept := thread.AcceptMessage()
		if accept == nil || accept.ID() != acceptMessageID {
			return nil
		}
		cd, _ := thread.Countdown()
		now := d.clock.Now()
		switch {
		case cd.Expired(now):
			emitted = shared.EventOfferWindowExpired
		case cd.Warning(now):
			emitted = shared.EventOfferWindowWarning
		default:
			return nil
		}
		return shared.Enqueue(ctx, tx, emitted, shared.TopicConversations, shared.OfferWindowEvent{
			ConversationID:  conv.ID(),
			AcceptMessageID: accept.ID(),
			BuyerID:         conv.BuyerID(),
			Deadline:        cd.Deadline,
		}, now)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Info("offer window target disappeared", "conversation_id", conversationID)
			return "", nil
		}
		return "", shared.Classify(err)
	}
	return emitted, nil
}

func (d *deadlineCommandsImpl) EvaluateCancellationWindow(ctx context.Context, reservationID uuid.UUID) (string, error) {
	var emitted string
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			return err
		}
		if res.Status() != reservation.StatusConfirmed {
			return nil
		}
		now := d.clock.Now()
		if now.Before(res.CancellationDeadline()) {
			return nil
		}
		emitted = shared.EventCancellationWindowClosed
		return shared.Enqueue(ctx, tx, emitted, shared.TopicReservations, shared.ReservationChanged(res), now)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Info("cancellation window target disappeared", "reservation_id", reservationID)
			return "", nil
		}
		return "", shared.Classify(err)
	}
	return emitted, nil
}

func (d *deadlineCommandsImpl) PurgeIdempotencyKeys(ctx context.Context) (int64, error) {
	var purged int64
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Idempotency().DeleteExpired(ctx, d.clock.Now().Add(-idempotencyPurgeGrace))
		purged = n
		return err
	})
	if err != nil {
		return 0, shared.Classify(err)
	}
	if purged > 0 {
		slog.Info("expired idempotency keys purged", "count", purged)
	}
	return purged, nil
}
