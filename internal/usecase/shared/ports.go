package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MessageCapability reports whether the message store accepts the typed
// offer_accept and offer_reject rows. It is decided once at startup.
type MessageCapability interface {
	TypedAnswersSupported() bool
}

type StaticCapability bool

func (c StaticCapability) TypedAnswersSupported() bool { return bool(c) }

// DeadlineScheduler arranges re-evaluation of wall-clock windows. Callers
// schedule after commit; a failed schedule never fails the action since the
// authoritative check is recomputed when the action is attempted.
type DeadlineScheduler interface {
	ScheduleOfferWindow(ctx context.Context, conversationID, acceptMessageID uuid.UUID, acceptedAt time.Time) error
	ScheduleCancellationWindow(ctx context.Context, reservationID uuid.UUID, deadline time.Time) error
}
