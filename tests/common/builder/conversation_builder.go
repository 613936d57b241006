//go:build unit || e2e

package builder

import (
	"time"

	"rental-market/internal/domain/listing"
	"rental-market/internal/domain/money"
	"rental-market/internal/domain/negotiation"

	"github.com/google/uuid"
)

// ConversationBuilder builds a conversation and appends history one message
// at a time, each a minute after the previous one.
type ConversationBuilder struct {
	Conversation *negotiation.Conversation
	Messages     []*negotiation.Message
	clock        time.Time
}

func NewConversationBuilder() *ConversationBuilder {
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	conv := negotiation.ReconstructConversation(
		uuid.New(), uuid.New(), listing.KindLodging, uuid.New(), uuid.New(), nil, start,
	)
	return &ConversationBuilder{Conversation: conv, clock: start}
}

func (b *ConversationBuilder) Buyer() uuid.UUID  { return b.Conversation.BuyerID() }
func (b *ConversationBuilder) Seller() uuid.UUID { return b.Conversation.SellerID() }

func (b *ConversationBuilder) Now() time.Time { return b.clock }

func (b *ConversationBuilder) Advance(d time.Duration) *ConversationBuilder {
	b.clock = b.clock.Add(d)
	return b
}

func (b *ConversationBuilder) append(sender uuid.UUID, t negotiation.MessageType, price *money.Money, meta negotiation.Meta) *negotiation.Message {
	b.clock = b.clock.Add(time.Minute)
	m := negotiation.ReconstructMessage(uuid.New(), b.Conversation.ID(), sender, t, string(t), price, meta, b.clock)
	b.Messages = append(b.Messages, m)
	return m
}

func (b *ConversationBuilder) Text(sender uuid.UUID) *negotiation.Message {
	return b.append(sender, negotiation.TypeText, nil, nil)
}

func (b *ConversationBuilder) Offer(amount int64) *negotiation.Message {
	p := money.Must(amount, "EUR")
	return b.append(b.Buyer(), negotiation.TypeOffer, &p, negotiation.Initial{})
}

func (b *ConversationBuilder) Accept(offer *negotiation.Message) *negotiation.Message {
	return b.append(b.Seller(), negotiation.TypeOfferAccept, offer.Price(), negotiation.Accepted{From: offer.ID()})
}

func (b *ConversationBuilder) Reject(offer *negotiation.Message) *negotiation.Message {
	return b.append(b.Seller(), negotiation.TypeOfferReject, offer.Price(), negotiation.Rejected{From: offer.ID()})
}

// SystemAccept stores the accept in its system fallback shape.
func (b *ConversationBuilder) SystemAccept(offer *negotiation.Message) *negotiation.Message {
	return b.append(b.Seller(), negotiation.TypeSystem, offer.Price(),
		negotiation.SystemAction{Action: negotiation.TypeOfferAccept, From: offer.ID()})
}

func (b *ConversationBuilder) SystemReject(offer *negotiation.Message) *negotiation.Message {
	return b.append(b.Seller(), negotiation.TypeSystem, offer.Price(),
		negotiation.SystemAction{Action: negotiation.TypeOfferReject, From: offer.ID()})
}

func (b *ConversationBuilder) Thread() *negotiation.Thread {
	return negotiation.Derive(b.Conversation, b.Messages)
}
