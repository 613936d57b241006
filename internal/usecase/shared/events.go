package shared

import (
	"context"
	"encoding/json"
	"time"

	"rental-market/internal/domain/negotiation"
	"rental-market/internal/domain/reservation"
	"rental-market/internal/pkg/errs"

	"github.com/google/uuid"
)

// Topics observers subscribe to. The relay publishes each job under
// "<prefix><topic>.events.v1".
const (
	TopicConversations = "conversations"
	TopicMessages      = "messages"
	TopicReservations  = "reservations"
	TopicTransactions  = "transactions"
)

const (
	EventConversationCreated      = "conversation.created"
	EventMessageCreated           = "message.created"
	EventReservationCreated       = "reservation.created"
	EventReservationConfirmed     = "reservation.confirmed"
	EventReservationCancelled     = "reservation.cancelled"
	EventReservationCashConfirmed = "reservation.cash_confirmed"
	EventReservationArrival       = "reservation.arrival_confirmed"
	EventReservationCompleted     = "reservation.completed"
	EventCancellationWindowClosed = "reservation.cancellation_window_closed"
	EventTransactionCreated       = "transaction.created"
	EventTransactionStatusChanged = "transaction.status_changed"
	EventOfferWindowWarning       = "offer.window_warning"
	EventOfferWindowExpired       = "offer.window_expired"
)

type ConversationEvent struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	ListingID      uuid.UUID `json:"listing_id"`
	BuyerID        uuid.UUID `json:"buyer_id"`
	SellerID       uuid.UUID `json:"seller_id"`
}

type MessageEvent struct {
	MessageID      uuid.UUID `json:"message_id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	Type           string    `json:"type"`
	CreatedAt      time.Time `json:"created_at"`
}

type ReservationEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	ListingID     uuid.UUID `json:"listing_id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	GuestID       uuid.UUID `json:"guest_id"`
	Status        string    `json:"status"`
}

type TransactionEvent struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	Status        string    `json:"status"`
}

type OfferWindowEvent struct {
	ConversationID  uuid.UUID `json:"conversation_id"`
	AcceptMessageID uuid.UUID `json:"accept_message_id"`
	BuyerID         uuid.UUID `json:"buyer_id"`
	Deadline        time.Time `json:"deadline"`
}

// Enqueue stores a notification job in the caller's transaction so the
// event is published only if the write commits.
func Enqueue(ctx context.Context, tx Tx, kind, topic string, payload any, at time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "marshal notification payload")
	}
	return tx.Notifications().CreateJob(ctx, kind, topic, body, at)
}

func ConversationCreated(c *negotiation.Conversation) ConversationEvent {
	return ConversationEvent{
		ConversationID: c.ID(),
		ListingID:      c.ListingID(),
		BuyerID:        c.BuyerID(),
		SellerID:       c.SellerID(),
	}
}

func MessageCreated(m *negotiation.Message) MessageEvent {
	return MessageEvent{
		MessageID:      m.ID(),
		ConversationID: m.ConversationID(),
		SenderID:       m.SenderID(),
		Type:           string(m.Type()),
		CreatedAt:      m.CreatedAt(),
	}
}

func ReservationChanged(r *reservation.Reservation) ReservationEvent {
	return ReservationEvent{
		ReservationID: r.ID(),
		ListingID:     r.ListingID(),
		OwnerID:       r.OwnerID(),
		GuestID:       r.GuestID(),
		Status:        string(r.Status()),
	}
}

func TransactionChanged(t *reservation.Transaction) TransactionEvent {
	return TransactionEvent{
		TransactionID: t.ID(),
		ReservationID: t.ReservationID(),
		Status:        string(t.Status()),
	}
}
