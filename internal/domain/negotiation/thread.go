package negotiation

import (
	"slices"
	"time"

	"rental-market/internal/domain/money"

	"github.com/google/uuid"
)

type Phase string

const (
	PhaseNone     Phase = "none"
	PhaseProposed Phase = "proposed"
	PhaseAccepted Phase = "accepted"
	PhaseRejected Phase = "rejected"
)

// Composer is the buyer's ability to submit a new price.
type Composer string

const (
	ComposerInitial     Composer = "initial"
	ComposerNegotiation Composer = "negotiation"
	ComposerClosed      Composer = "closed"
)

// Thread is the offer state derived from a conversation's history.
type Thread struct {
	conversation *Conversation
	phase        Phase
	pending      *Message
	latestOffer  *Message
	accept       *Message
	acceptedFrom *Message
	rejected     map[uuid.UUID]struct{}
	offers       map[uuid.UUID]*Message
}

// Derive replays messages in created_at order. Answers link to their offer
// through meta; an unlinked answer applies to the latest earlier offer. Only
// the first accept counts: it closes the thread.
func Derive(conv *Conversation, history []*Message) *Thread {
	msgs := slices.Clone(history)
	slices.SortStableFunc(msgs, func(a, b *Message) int {
		return a.createdAt.Compare(b.createdAt)
	})

	t := &Thread{
		conversation: conv,
		phase:        PhaseNone,
		rejected:     make(map[uuid.UUID]struct{}),
		offers:       make(map[uuid.UUID]*Message),
	}
	for _, m := range msgs {
		if t.accept != nil {
			break
		}
		switch {
		case m.IsOffer():
			t.offers[m.id] = m
			t.latestOffer = m
			t.pending = m
		case IsAcceptMsg(m):
			target := t.target(m)
			if target == nil {
				continue
			}
			t.accept = m
			t.acceptedFrom = target
			t.pending = nil
		case IsRejectMsg(m):
			target := t.target(m)
			if target == nil {
				continue
			}
			t.rejected[target.id] = struct{}{}
			if t.pending != nil && t.pending.id == target.id {
				t.pending = nil
			}
		}
	}

	switch {
	case t.accept != nil:
		t.phase = PhaseAccepted
	case t.pending != nil:
		t.phase = PhaseProposed
	case t.latestOffer != nil:
		if _, ok := t.rejected[t.latestOffer.id]; ok {
			t.phase = PhaseRejected
		}
	}
	return t
}

func (t *Thread) target(answer *Message) *Message {
	if from := answeredFrom(answer); from != uuid.Nil {
		return t.offers[from]
	}
	return t.latestOffer
}

func (t *Thread) Phase() Phase { return t.phase }

func (t *Thread) Composer() Composer {
	switch t.phase {
	case PhaseAccepted, PhaseProposed:
		return ComposerClosed
	case PhaseRejected:
		return ComposerNegotiation
	default:
		return ComposerInitial
	}
}

// PendingOffer is the latest offer still awaiting an answer.
func (t *Thread) PendingOffer() *Message { return t.pending }

func (t *Thread) LatestOffer() *Message { return t.latestOffer }

func (t *Thread) AcceptMessage() *Message { return t.accept }

func (t *Thread) AcceptedOffer() *Message { return t.acceptedFrom }

// AgreedPrice is the price of the accepted offer.
func (t *Thread) AgreedPrice() *money.Money {
	if t.acceptedFrom == nil {
		return nil
	}
	return t.acceptedFrom.price
}

// Countdown is the post-acceptance reservation window, if any.
func (t *Thread) Countdown() (Countdown, bool) {
	if t.accept == nil {
		return Countdown{}, false
	}
	return CountdownFrom(t.accept.createdAt), true
}

// ProposeOffer validates and builds a new offer from actor. A non-nil
// reopenFrom must name a rejected offer of this thread.
func (t *Thread) ProposeOffer(actor uuid.UUID, price money.Money, reopenFrom *uuid.UUID) (Draft, error) {
	role, ok := t.conversation.ParticipantOf(actor)
	if !ok {
		return Draft{}, ErrNotParticipant
	}
	if role != Buyer {
		return Draft{}, ErrNotBuyer
	}
	switch t.phase {
	case PhaseAccepted:
		return Draft{}, ErrThreadClosed
	case PhaseProposed:
		return Draft{}, ErrOfferOutstanding
	}

	var meta Meta = Initial{Negotiation: t.phase == PhaseRejected}
	if reopenFrom != nil {
		if _, ok := t.rejected[*reopenFrom]; !ok {
			return Draft{}, ErrInvalidReopen
		}
		meta = Reopened{From: *reopenFrom}
	}
	return newOfferDraft(t.conversation.id, actor, price, meta)
}

func (t *Thread) AcceptOffer(actor, offerID uuid.UUID) (Draft, error) {
	return t.answer(actor, offerID, true)
}

func (t *Thread) RejectOffer(actor, offerID uuid.UUID) (Draft, error) {
	return t.answer(actor, offerID, false)
}

func (t *Thread) answer(actor, offerID uuid.UUID, accept bool) (Draft, error) {
	if !t.conversation.IsParticipant(actor) {
		return Draft{}, ErrNotParticipant
	}
	if t.phase == PhaseAccepted {
		return Draft{}, ErrThreadClosed
	}
	if t.pending == nil || t.pending.id != offerID {
		return Draft{}, ErrStaleOffer
	}
	if t.pending.senderID == actor {
		return Draft{}, ErrNotCounterpart
	}
	return newAnswerDraft(actor, t.pending, accept), nil
}

// CanReserve reports whether actor may still book at the agreed price.
func (t *Thread) CanReserve(actor uuid.UUID, now time.Time) error {
	role, ok := t.conversation.ParticipantOf(actor)
	if !ok {
		return ErrNotParticipant
	}
	if role != Buyer {
		return ErrNotBuyer
	}
	cd, ok := t.Countdown()
	if !ok {
		return ErrNoAcceptedOffer
	}
	if cd.Expired(now) {
		return ErrWindowElapsed
	}
	return nil
}
