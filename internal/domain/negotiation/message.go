package negotiation

import (
	"fmt"
	"strings"
	"time"

	"rental-market/internal/domain/money"

	"github.com/google/uuid"
)

type MessageType string

const (
	TypeText        MessageType = "text"
	TypeOffer       MessageType = "offer"
	TypeOfferAccept MessageType = "offer_accept"
	TypeOfferReject MessageType = "offer_reject"
	TypeSystem      MessageType = "system"
)

func (t MessageType) IsValid() bool {
	switch t {
	case TypeText, TypeOffer, TypeOfferAccept, TypeOfferReject, TypeSystem:
		return true
	default:
		return false
	}
}

// Message is append-only.
type Message struct {
	id             uuid.UUID
	conversationID uuid.UUID
	senderID       uuid.UUID
	msgType        MessageType
	content        string
	price          *money.Money
	meta           Meta
	createdAt      time.Time
}

func ReconstructMessage(
	id, conversationID, senderID uuid.UUID,
	msgType MessageType,
	content string,
	price *money.Money,
	meta Meta,
	createdAt time.Time,
) *Message {
	return &Message{
		id:             id,
		conversationID: conversationID,
		senderID:       senderID,
		msgType:        msgType,
		content:        content,
		price:          price,
		meta:           meta,
		createdAt:      createdAt,
	}
}

func (m *Message) ID() uuid.UUID             { return m.id }
func (m *Message) ConversationID() uuid.UUID { return m.conversationID }
func (m *Message) SenderID() uuid.UUID       { return m.senderID }
func (m *Message) Type() MessageType         { return m.msgType }
func (m *Message) Content() string           { return m.content }
func (m *Message) Price() *money.Money       { return m.price }
func (m *Message) Meta() Meta                { return m.meta }
func (m *Message) CreatedAt() time.Time      { return m.createdAt }

func (m *Message) IsOffer() bool {
	return m.msgType == TypeOffer
}

// IsAcceptMsg treats offer_accept and system{action=offer_accept} alike.
func IsAcceptMsg(m *Message) bool {
	return isAnswer(m, TypeOfferAccept)
}

// IsRejectMsg treats offer_reject and system{action=offer_reject} alike.
func IsRejectMsg(m *Message) bool {
	return isAnswer(m, TypeOfferReject)
}

func isAnswer(m *Message, kind MessageType) bool {
	if m == nil {
		return false
	}
	if m.msgType == kind {
		return true
	}
	if m.msgType != TypeSystem {
		return false
	}
	sa, ok := m.meta.(SystemAction)
	return ok && sa.Action == kind
}

// answeredFrom is the offer id an answer points at, or uuid.Nil when the
// message carries no link.
func answeredFrom(m *Message) uuid.UUID {
	switch v := m.meta.(type) {
	case Accepted:
		return v.From
	case Rejected:
		return v.From
	case SystemAction:
		return v.From
	default:
		return uuid.Nil
	}
}

// Draft is a message not yet persisted.
type Draft struct {
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	Type           MessageType
	Content        string
	Price          *money.Money
	Meta           Meta
}

func NewTextDraft(conversationID, senderID uuid.UUID, content string) (Draft, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Draft{}, ErrEmptyContent
	}
	return Draft{
		ConversationID: conversationID,
		SenderID:       senderID,
		Type:           TypeText,
		Content:        content,
	}, nil
}

func newOfferDraft(conversationID, senderID uuid.UUID, price money.Money, meta Meta) (Draft, error) {
	if price.Amount <= 0 || price.Amount > money.MaxAmount {
		return Draft{}, ErrInvalidPrice
	}
	content := "Offer: " + price.String()
	if _, ok := meta.(Reopened); ok {
		content = "Offer reopened: " + price.String()
	}
	return Draft{
		ConversationID: conversationID,
		SenderID:       senderID,
		Type:           TypeOffer,
		Content:        content,
		Price:          &price,
		Meta:           meta,
	}, nil
}

func newAnswerDraft(senderID uuid.UUID, offer *Message, accept bool) Draft {
	d := Draft{
		ConversationID: offer.conversationID,
		SenderID:       senderID,
		Price:          offer.price,
	}
	price := ""
	if offer.price != nil {
		price = offer.price.String()
	}
	if accept {
		d.Type = TypeOfferAccept
		d.Meta = Accepted{From: offer.id}
		d.Content = strings.TrimSpace(fmt.Sprintf("Offer accepted %s", price))
	} else {
		d.Type = TypeOfferReject
		d.Meta = Rejected{From: offer.id}
		d.Content = strings.TrimSpace(fmt.Sprintf("Offer rejected %s", price))
	}
	return d
}

// AsSystemFallback rewrites an accept or reject draft into the system shape
// used when typed answers cannot be stored.
func (d Draft) AsSystemFallback() (Draft, bool) {
	var from uuid.UUID
	switch v := d.Meta.(type) {
	case Accepted:
		from = v.From
	case Rejected:
		from = v.From
	default:
		return d, false
	}
	out := d
	out.Meta = SystemAction{Action: d.Type, From: from}
	out.Type = TypeSystem
	return out, true
}

func (d Draft) IsAnswer() bool {
	return d.Type == TypeOfferAccept || d.Type == TypeOfferReject
}

// Materialize stamps the draft with an id and creation time.
func (d Draft) Materialize(id uuid.UUID, at time.Time) *Message {
	return ReconstructMessage(id, d.ConversationID, d.SenderID, d.Type, d.Content, d.Price, d.Meta, at)
}
