package negotiation

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Meta is the structured tag carried by offer protocol messages. It is one of
// Initial, Reopened, Accepted, Rejected or SystemAction.
type Meta interface {
	isMeta()
}

type Initial struct {
	Negotiation bool
}

type Reopened struct {
	From uuid.UUID
}

type Accepted struct {
	From uuid.UUID
}

type Rejected struct {
	From uuid.UUID
}

// SystemAction is the fallback shape of an accept or reject stored as a
// system message.
type SystemAction struct {
	Action MessageType
	From   uuid.UUID
}

func (Initial) isMeta()      {}
func (Reopened) isMeta()     {}
func (Accepted) isMeta()     {}
func (Rejected) isMeta()     {}
func (SystemAction) isMeta() {}

// stored jsonb shape
type wireMeta struct {
	Negotiation  bool       `json:"negotiation,omitempty"`
	ReopenedFrom *uuid.UUID `json:"reopened_from,omitempty"`
	AcceptedFrom *uuid.UUID `json:"accepted_from,omitempty"`
	RejectedFrom *uuid.UUID `json:"rejected_from,omitempty"`
	Action       string     `json:"action,omitempty"`
}

func EncodeMeta(m Meta) ([]byte, error) {
	var w wireMeta
	switch v := m.(type) {
	case nil:
		return nil, nil
	case Initial:
		w.Negotiation = v.Negotiation
	case Reopened:
		w.ReopenedFrom = idPtr(v.From)
	case Accepted:
		w.AcceptedFrom = idPtr(v.From)
	case Rejected:
		w.RejectedFrom = idPtr(v.From)
	case SystemAction:
		w.Action = string(v.Action)
		switch v.Action {
		case TypeOfferAccept:
			w.AcceptedFrom = idPtr(v.From)
		case TypeOfferReject:
			w.RejectedFrom = idPtr(v.From)
		default:
			return nil, ErrInvalidMeta
		}
	default:
		return nil, ErrInvalidMeta
	}
	return json.Marshal(w)
}

// DecodeMeta interprets raw according to the message type. Text messages and
// system messages without an action have no meta.
func DecodeMeta(t MessageType, raw []byte) (Meta, error) {
	var w wireMeta
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, ErrInvalidMeta
		}
	}
	switch t {
	case TypeOffer:
		if w.ReopenedFrom != nil {
			return Reopened{From: *w.ReopenedFrom}, nil
		}
		return Initial{Negotiation: w.Negotiation}, nil
	case TypeOfferAccept:
		return Accepted{From: deref(w.AcceptedFrom)}, nil
	case TypeOfferReject:
		return Rejected{From: deref(w.RejectedFrom)}, nil
	case TypeSystem:
		switch MessageType(w.Action) {
		case TypeOfferAccept:
			return SystemAction{Action: TypeOfferAccept, From: deref(w.AcceptedFrom)}, nil
		case TypeOfferReject:
			return SystemAction{Action: TypeOfferReject, From: deref(w.RejectedFrom)}, nil
		}
		return nil, nil
	case TypeText:
		return nil, nil
	default:
		return nil, ErrInvalidMessageType
	}
}

func idPtr(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func deref(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.Nil
	}
	return *id
}
