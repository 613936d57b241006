package queries

//go:generate mockgen -source=conversation.go -destination=../../../tests/mock/queries/conversation.go -package=queriesmock

import (
	"context"
	"time"

	"rental-market/internal/domain/auth"
	"rental-market/internal/domain/negotiation"
	"rental-market/internal/infra"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/pkg/errs"
	"rental-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type ConversationQueries interface {
	List(ctx context.Context, p auth.Principal) ([]*ConversationView, error)
	Messages(ctx context.Context, p auth.Principal, conversationID uuid.UUID) ([]*MessageView, error)
	Negotiation(ctx context.Context, p auth.Principal, conversationID uuid.UUID) (*NegotiationView, error)
}

type ConversationReadStore interface {
	// ListByParticipant orders by last activity, most recent first.
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*ConversationView, error)
}

type conversationQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore ConversationReadStore
	clock     clock.Clock
}

func NewConversationQueries(uow shared.UnitOfWork, readStore ConversationReadStore, clock clock.Clock) ConversationQueries {
	return &conversationQueriesImpl{
		uow:       uow,
		readStore: readStore,
		clock:     clock,
	}
}

func (q *conversationQueriesImpl) List(ctx context.Context, p auth.Principal) ([]*ConversationView, error) {
	views, err := q.readStore.ListByParticipant(ctx, p.UserID)
	if err != nil {
		return nil, shared.Classify(err)
	}
	return views, nil
}

// Messages returns the history in created_at order.
func (q *conversationQueriesImpl) Messages(ctx context.Context, p auth.Principal, conversationID uuid.UUID) ([]*MessageView, error) {
	var views []*MessageView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := q.participantConversation(ctx, tx, p, conversationID); err != nil {
			return err
		}
		history, err := tx.Messages().ListByConversation(ctx, conversationID)
		if err != nil {
			return err
		}
		views = make([]*MessageView, 0, len(history))
		for _, m := range history {
			v, err := ToMessageView(m)
			if err != nil {
				return err
			}
			views = append(views, v)
		}
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return views, nil
}

func (q *conversationQueriesImpl) Negotiation(ctx context.Context, p auth.Principal, conversationID uuid.UUID) (*NegotiationView, error) {
	var view *NegotiationView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		conv, err := q.participantConversation(ctx, tx, p, conversationID)
		if err != nil {
			return err
		}
		history, err := tx.Messages().ListByConversation(ctx, conv.ID())
		if err != nil {
			return err
		}
		view = toNegotiationView(conv, negotiation.Derive(conv, history), p, q.clock.Now())
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return view, nil
}

func (q *conversationQueriesImpl) participantConversation(ctx context.Context, tx shared.Tx, p auth.Principal, id uuid.UUID) (*negotiation.Conversation, error) {
	conv, err := tx.Conversations().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.NotFound("conversation")
		}
		return nil, err
	}
	if !conv.IsParticipant(p.UserID) {
		return nil, negotiation.ErrNotParticipant
	}
	return conv, nil
}

func ToMessageView(m *negotiation.Message) (*MessageView, error) {
	v := &MessageView{
		ID:             m.ID(),
		ConversationID: m.ConversationID(),
		SenderID:       m.SenderID(),
		Type:           string(m.Type()),
		Content:        m.Content(),
		Price:          m.Price(),
		IsAccept:       negotiation.IsAcceptMsg(m),
		IsReject:       negotiation.IsRejectMsg(m),
		CreatedAt:      m.CreatedAt(),
	}
	if m.Meta() != nil {
		raw, err := negotiation.EncodeMeta(m.Meta())
		if err != nil {
			return nil, errs.Wrap(err, "encode message meta")
		}
		v.Meta = raw
	}
	return v, nil
}

func toNegotiationView(conv *negotiation.Conversation, t *negotiation.Thread, p auth.Principal, now time.Time) *NegotiationView {
	role, _ := conv.ParticipantOf(p.UserID)
	v := &NegotiationView{
		ConversationID: conv.ID(),
		Role:           string(role),
		Phase:          string(t.Phase()),
		Composer:       string(t.Composer()),
		AgreedPrice:    t.AgreedPrice(),
		CanReserve:     t.CanReserve(p.UserID, now) == nil,
	}
	if m := t.PendingOffer(); m != nil {
		v.PendingOfferID = idOf(m)
	}
	if m := t.LatestOffer(); m != nil {
		v.LatestOfferID = idOf(m)
	}
	if m := t.AcceptedOffer(); m != nil {
		v.AcceptedOfferID = idOf(m)
	}
	if cd, ok := t.Countdown(); ok {
		deadline, warningAt := cd.Deadline, cd.WarningAt()
		v.Deadline = &deadline
		v.WarningAt = &warningAt
		v.RemainingSec = int64(cd.Remaining(now).Seconds())
		v.Warning = cd.Warning(now)
		v.Expired = cd.Expired(now)
	}
	return v
}

func idOf(m *negotiation.Message) *uuid.UUID {
	id := m.ID()
	return &id
}
