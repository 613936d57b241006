package response

import (
	"encoding/json"
	"time"

	"rental-market/internal/domain/money"
	"rental-market/internal/domain/negotiation"
	"rental-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type ConversationResponse struct {
	ID            uuid.UUID  `json:"id"`
	ListingID     uuid.UUID  `json:"listing_id"`
	ListingTitle  string     `json:"listing_title,omitempty"`
	Kind          string     `json:"kind"`
	BuyerID       uuid.UUID  `json:"buyer_id"`
	SellerID      uuid.UUID  `json:"seller_id"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type EnsureConversationResponse struct {
	Conversation *ConversationResponse `json:"conversation"`
	Created      bool                  `json:"created"`
}

type MessageResponse struct {
	ID             uuid.UUID       `json:"id"`
	ConversationID uuid.UUID       `json:"conversation_id"`
	SenderID       uuid.UUID       `json:"sender_id"`
	Type           string          `json:"type"`
	Content        string          `json:"content"`
	Price          *money.Money    `json:"price,omitempty"`
	Meta           json.RawMessage `json:"meta,omitempty"`
	IsAccept       bool            `json:"is_accept"`
	IsReject       bool            `json:"is_reject"`
	CreatedAt      time.Time       `json:"created_at"`
}

type NegotiationResponse struct {
	ConversationID  uuid.UUID    `json:"conversation_id"`
	Role            string       `json:"role"`
	Phase           string       `json:"phase"`
	Composer        string       `json:"composer"`
	PendingOfferID  *uuid.UUID   `json:"pending_offer_id,omitempty"`
	LatestOfferID   *uuid.UUID   `json:"latest_offer_id,omitempty"`
	AcceptedOfferID *uuid.UUID   `json:"accepted_offer_id,omitempty"`
	AgreedPrice     *money.Money `json:"agreed_price,omitempty"`
	Deadline        *time.Time   `json:"deadline,omitempty"`
	WarningAt       *time.Time   `json:"warning_at,omitempty"`
	RemainingSec    int64        `json:"remaining_seconds"`
	Warning         bool         `json:"warning"`
	Expired         bool         `json:"expired"`
	CanReserve      bool         `json:"can_reserve"`
}

func FromConversation(c *negotiation.Conversation, created bool) *EnsureConversationResponse {
	return &EnsureConversationResponse{
		Conversation: &ConversationResponse{
			ID:            c.ID(),
			ListingID:     c.ListingID(),
			Kind:          string(c.Kind()),
			BuyerID:       c.BuyerID(),
			SellerID:      c.SellerID(),
			LastMessageAt: c.LastMessageAt(),
			CreatedAt:     c.CreatedAt(),
		},
		Created: created,
	}
}

func FromConversationViews(vs []*queries.ConversationView) ([]*ConversationResponse, error) {
	return copyAll[ConversationResponse](vs)
}

func FromMessageView(v *queries.MessageView) (*MessageResponse, error) {
	return copyFrom[MessageResponse](v)
}

func FromMessageViews(vs []*queries.MessageView) ([]*MessageResponse, error) {
	return copyAll[MessageResponse](vs)
}

func FromNegotiationView(v *queries.NegotiationView) (*NegotiationResponse, error) {
	return copyFrom[NegotiationResponse](v)
}
