package negotiation

import (
	"time"

	"rental-market/internal/domain/listing"

	"github.com/google/uuid"
)

type Participant string

const (
	Buyer  Participant = "buyer"
	Seller Participant = "seller"
)

// Conversation is unique per (listing, kind, buyer, seller).
type Conversation struct {
	id            uuid.UUID
	listingID     uuid.UUID
	kind          listing.Kind
	buyerID       uuid.UUID
	sellerID      uuid.UUID
	lastMessageAt *time.Time
	createdAt     time.Time
}

func NewConversation(listingID uuid.UUID, kind listing.Kind, buyerID, sellerID uuid.UUID, now time.Time) (*Conversation, error) {
	if !kind.IsValid() {
		return nil, listing.ErrInvalidKind
	}
	if buyerID == uuid.Nil || sellerID == uuid.Nil {
		return nil, ErrNotParticipant
	}
	if buyerID == sellerID {
		return nil, ErrSelfConversation
	}
	return &Conversation{
		id:        uuid.New(),
		listingID: listingID,
		kind:      kind,
		buyerID:   buyerID,
		sellerID:  sellerID,
		createdAt: now,
	}, nil
}

func ReconstructConversation(
	id, listingID uuid.UUID,
	kind listing.Kind,
	buyerID, sellerID uuid.UUID,
	lastMessageAt *time.Time,
	createdAt time.Time,
) *Conversation {
	return &Conversation{
		id:            id,
		listingID:     listingID,
		kind:          kind,
		buyerID:       buyerID,
		sellerID:      sellerID,
		lastMessageAt: lastMessageAt,
		createdAt:     createdAt,
	}
}

func (c *Conversation) ParticipantOf(userID uuid.UUID) (Participant, bool) {
	switch userID {
	case c.buyerID:
		return Buyer, true
	case c.sellerID:
		return Seller, true
	default:
		return "", false
	}
}

func (c *Conversation) IsParticipant(userID uuid.UUID) bool {
	_, ok := c.ParticipantOf(userID)
	return ok
}

func (c *Conversation) Counterpart(userID uuid.UUID) uuid.UUID {
	if userID == c.buyerID {
		return c.sellerID
	}
	return c.buyerID
}

func (c *Conversation) Touch(at time.Time) {
	c.lastMessageAt = &at
}

func (c *Conversation) ID() uuid.UUID             { return c.id }
func (c *Conversation) ListingID() uuid.UUID      { return c.listingID }
func (c *Conversation) Kind() listing.Kind        { return c.kind }
func (c *Conversation) BuyerID() uuid.UUID        { return c.buyerID }
func (c *Conversation) SellerID() uuid.UUID       { return c.sellerID }
func (c *Conversation) LastMessageAt() *time.Time { return c.lastMessageAt }
func (c *Conversation) CreatedAt() time.Time      { return c.createdAt }
