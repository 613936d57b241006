package commands

//go:generate mockgen -source=conversation.go -destination=../../../tests/mock/commands/conversation.go -package=commandsmock

import (
	"context"
	"log/slog"

	"rental-market/internal/domain/auth"
	"rental-market/internal/domain/money"
	"rental-market/internal/domain/negotiation"
	"rental-market/internal/infra"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/pkg/errs"
	"rental-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type EnsureConversationResult struct {
	Conversation *negotiation.Conversation
	Created      bool
}

type ProposeOfferInput struct {
	Amount int64

	// ReopenFrom names a rejected offer the new price reopens.
	ReopenFrom *uuid.UUID
}

type ConversationCommands interface {
	Ensure(ctx context.Context, p auth.Principal, listingID uuid.UUID) (*EnsureConversationResult, error)
	SendText(ctx context.Context, p auth.Principal, conversationID uuid.UUID, content string) (*negotiation.Message, error)
	ProposeOffer(ctx context.Context, p auth.Principal, conversationID uuid.UUID, in ProposeOfferInput) (*negotiation.Message, error)
	AcceptOffer(ctx context.Context, p auth.Principal, conversationID, offerID uuid.UUID) (*negotiation.Message, error)
	RejectOffer(ctx context.Context, p auth.Principal, conversationID, offerID uuid.UUID) (*negotiation.Message, error)
}

type conversationCommandsImpl struct {
	uow        shared.UnitOfWork
	capability shared.MessageCapability
	scheduler  shared.DeadlineScheduler
	clock      clock.Clock
}

func NewConversationCommands(
	uow shared.UnitOfWork,
	capability shared.MessageCapability,
	scheduler shared.DeadlineScheduler,
	clock clock.Clock,
) ConversationCommands {
	return &conversationCommandsImpl{
		uow:        uow,
		capability: capability,
		scheduler:  scheduler,
		clock:      clock,
	}
}

// Ensure returns the conversation between the principal (buyer) and the
// listing owner, creating it on first contact. A concurrent creator wins
// the unique constraint and the loser reads its row instead of inserting.
func (c *conversationCommandsImpl) Ensure(ctx context.Context, p auth.Principal, listingID uuid.UUID) (*EnsureConversationResult, error) {
	if p.IsZero() {
		return nil, shared.Classify(auth.ErrNoPrincipal)
	}

	var result *EnsureConversationResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Listings().FindByID(ctx, listingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return shared.NotFound("listing")
			}
			return err
		}

		existing, err := tx.Conversations().FindByParticipants(ctx, l.ID(), l.Kind(), p.UserID, l.OwnerID())
		if err == nil {
			result = &EnsureConversationResult{Conversation: existing}
			return nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		conv, err := negotiation.NewConversation(l.ID(), l.Kind(), p.UserID, l.OwnerID(), c.clock.Now())
		if err != nil {
			return err
		}

		err = tx.Savepoint(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Conversations().Create(ctx, conv); err != nil {
				return err
			}
			return shared.Enqueue(ctx, tx, shared.EventConversationCreated, shared.TopicConversations,
				shared.ConversationCreated(conv), c.clock.Now())
		})
		if err == nil {
			result = &EnsureConversationResult{Conversation: conv, Created: true}
			return nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return err
		}

		winner, err := tx.Conversations().FindByParticipants(ctx, l.ID(), l.Kind(), p.UserID, l.OwnerID())
		if err != nil {
			return errs.Wrap(err, "read conversation after unique violation")
		}
		result = &EnsureConversationResult{Conversation: winner}
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return result, nil
}

func (c *conversationCommandsImpl) SendText(ctx context.Context, p auth.Principal, conversationID uuid.UUID, content string) (*negotiation.Message, error) {
	var msg *negotiation.Message
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		conv, err := c.lockConversation(ctx, tx, conversationID)
		if err != nil {
			return err
		}
		if !conv.IsParticipant(p.UserID) {
			return negotiation.ErrNotParticipant
		}
		draft, err := negotiation.NewTextDraft(conv.ID(), p.UserID, content)
		if err != nil {
			return err
		}
		msg, err = c.persist(ctx, tx, conv, draft)
		return err
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return msg, nil
}

// ProposeOffer covers the first offer, a counter offer after a rejection
// and reopening a rejected offer.
func (c *conversationCommandsImpl) ProposeOffer(ctx context.Context, p auth.Principal, conversationID uuid.UUID, in ProposeOfferInput) (*negotiation.Message, error) {
	var msg *negotiation.Message
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		conv, thread, err := c.lockThread(ctx, tx, conversationID)
		if err != nil {
			return err
		}
		l, err := tx.Listings().FindByID(ctx, conv.ListingID())
		if err != nil {
			return err
		}
		price, err := money.New(in.Amount, l.Currency())
		if err != nil {
			return err
		}
		draft, err := thread.ProposeOffer(p.UserID, price, in.ReopenFrom)
		if err != nil {
			return err
		}
		msg, err = c.persist(ctx, tx, conv, draft)
		return err
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return msg, nil
}

func (c *conversationCommandsImpl) AcceptOffer(ctx context.Context, p auth.Principal, conversationID, offerID uuid.UUID) (*negotiation.Message, error) {
	msg, err := c.answer(ctx, p, conversationID, offerID, true)
	if err != nil {
		return nil, err
	}

	if err := c.scheduler.ScheduleOfferWindow(ctx, conversationID, msg.ID(), msg.CreatedAt()); err != nil {
		slog.Warn("failed to schedule offer window", "conversation_id", conversationID, "error", err.Error())
	}
	return msg, nil
}

func (c *conversationCommandsImpl) RejectOffer(ctx context.Context, p auth.Principal, conversationID, offerID uuid.UUID) (*negotiation.Message, error) {
	return c.answer(ctx, p, conversationID, offerID, false)
}

// answer runs under the conversation lock, so the offer is checked to still
// be the latest unanswered one at the moment the answer is written.
func (c *conversationCommandsImpl) answer(ctx context.Context, p auth.Principal, conversationID, offerID uuid.UUID, accept bool) (*negotiation.Message, error) {
	var msg *negotiation.Message
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		conv, thread, err := c.lockThread(ctx, tx, conversationID)
		if err != nil {
			return err
		}
		var draft negotiation.Draft
		if accept {
			draft, err = thread.AcceptOffer(p.UserID, offerID)
		} else {
			draft, err = thread.RejectOffer(p.UserID, offerID)
		}
		if err != nil {
			return err
		}
		msg, err = c.persist(ctx, tx, conv, draft)
		return err
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return msg, nil
}

func (c *conversationCommandsImpl) lockConversation(ctx context.Context, tx shared.Tx, id uuid.UUID) (*negotiation.Conversation, error) {
	conv, err := tx.Conversations().LockByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.NotFound("conversation")
		}
		return nil, err
	}
	return conv, nil
}

func (c *conversationCommandsImpl) lockThread(ctx context.Context, tx shared.Tx, id uuid.UUID) (*negotiation.Conversation, *negotiation.Thread, error) {
	conv, thread, err := shared.LoadThread(ctx, tx, id, true)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, shared.NotFound("conversation")
		}
		return nil, nil, err
	}
	return conv, thread, nil
}

// persist writes the message, bumps last_message_at and enqueues the
// change notification. Answers use the system shape when typed answers
// are unsupported; a check violation on the typed insert is retried once
// in that shape.
func (c *conversationCommandsImpl) persist(ctx context.Context, tx shared.Tx, conv *negotiation.Conversation, draft negotiation.Draft) (*negotiation.Message, error) {
	now := c.clock.Now()
	if draft.IsAnswer() && !c.capability.TypedAnswersSupported() {
		draft, _ = draft.AsSystemFallback()
	}

	msg := draft.Materialize(uuid.New(), now)
	var err error
	if draft.IsAnswer() {
		err = tx.Savepoint(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Messages().Insert(ctx, msg)
		})
		if err != nil && infra.IsKind(err, infra.KindCheckViolated) {
			slog.Warn("typed answer rejected by check constraint, storing system message",
				"conversation_id", conv.ID(), "type", string(draft.Type))
			fallback, _ := draft.AsSystemFallback()
			msg = fallback.Materialize(msg.ID(), now)
			err = tx.Messages().Insert(ctx, msg)
		}
	} else {
		err = tx.Messages().Insert(ctx, msg)
	}
	if err != nil {
		return nil, err
	}

	conv.Touch(now)
	if err := tx.Conversations().TouchLastMessage(ctx, conv.ID(), now); err != nil {
		return nil, err
	}
	if err := shared.Enqueue(ctx, tx, shared.EventMessageCreated, shared.TopicMessages, shared.MessageCreated(msg), now); err != nil {
		return nil, err
	}
	return msg, nil
}

