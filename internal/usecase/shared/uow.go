package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"rental-market/internal/domain/availability"
	"rental-market/internal/domain/listing"
	"rental-market/internal/domain/negotiation"
	"rental-market/internal/domain/reservation"
	"rental-market/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Listings() ListingRepository
	Calendar() CalendarRepository
	Conversations() ConversationRepository
	Messages() MessageRepository
	Reservations() ReservationRepository
	Transactions() TransactionRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	// Savepoint runs fn in a nested transaction so a failed statement can be
	// retried without aborting the outer one.
	Savepoint(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type ListingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
}

type CalendarRepository interface {
	// BlockingBookings returns confirmed and completed stays of the listing.
	BlockingBookings(ctx context.Context, listingID uuid.UUID) ([]availability.Booking, error)
	Overrides(ctx context.Context, listingID uuid.UUID, window availability.Window) ([]availability.Override, error)
	// LockListing serializes bookings of one listing until the transaction ends.
	LockListing(ctx context.Context, listingID uuid.UUID) error
}

type ConversationRepository interface {
	Create(ctx context.Context, conv *negotiation.Conversation) error
	FindByID(ctx context.Context, id uuid.UUID) (*negotiation.Conversation, error)
	FindByParticipants(ctx context.Context, listingID uuid.UUID, kind listing.Kind, buyerID, sellerID uuid.UUID) (*negotiation.Conversation, error)
	// LockByID takes a row lock held until the transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) (*negotiation.Conversation, error)
	TouchLastMessage(ctx context.Context, id uuid.UUID, at time.Time) error
}

type MessageRepository interface {
	Insert(ctx context.Context, msg *negotiation.Message) error
	FindByID(ctx context.Context, id uuid.UUID) (*negotiation.Message, error)
	ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]*negotiation.Message, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	LockByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Update(ctx context.Context, res *reservation.Reservation) error
}

type TransactionRepository interface {
	Create(ctx context.Context, txn *reservation.Transaction) error
	LockByID(ctx context.Context, id uuid.UUID) (*reservation.Transaction, error)
	ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]*reservation.Transaction, error)
	UpdateStatus(ctx context.Context, txn *reservation.Transaction) error
}

type IdempotencyRepository interface {
	// TryInsert claims the key for this request. It also takes over a key
	// whose previous claim expired. false means another request holds it.
	TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, now, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	MarkCompleted(ctx context.Context, key, userID uuid.UUID, resultID uuid.UUID) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}
