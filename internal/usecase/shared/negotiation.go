package shared

import (
	"context"

	"rental-market/internal/domain/negotiation"

	"github.com/google/uuid"
)

// LoadThread reads a conversation and derives its negotiation state. With
// lock set the conversation row stays locked until tx ends, which
// serializes every offer action on that conversation.
func LoadThread(ctx context.Context, tx Tx, conversationID uuid.UUID, lock bool) (*negotiation.Conversation, *negotiation.Thread, error) {
	var (
		conv *negotiation.Conversation
		err  error
	)
	if lock {
		conv, err = tx.Conversations().LockByID(ctx, conversationID)
	} else {
		conv, err = tx.Conversations().FindByID(ctx, conversationID)
	}
	if err != nil {
		return nil, nil, err
	}
	history, err := tx.Messages().ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, nil, err
	}
	return conv, negotiation.Derive(conv, history), nil
}
