package repository

import (
	"context"

	"rental-market/internal/domain/negotiation"
	"rental-market/internal/infra"
	"rental-market/internal/infra/pgq"
	"rental-market/internal/infra/repository/converter"
	"rental-market/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type MessageQueries interface {
	InsertMessage(ctx context.Context, db pgq.DBTX, arg pgq.InsertMessageParams) error
	FindMessageByID(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Messages, error)
	ListMessagesByConversation(ctx context.Context, db pgq.DBTX, conversationID uuid.UUID) ([]pgq.Messages, error)
}

type MessageRepository struct {
	queries MessageQueries
	db      pgq.DBTX
}

func NewMessageRepository(queries MessageQueries, db pgq.DBTX) *MessageRepository {
	return &MessageRepository{
		queries: queries,
		db:      db,
	}
}

// Insert reports CHECK_VIOLATED when the store rejects the message type.
func (r *MessageRepository) Insert(ctx context.Context, msg *negotiation.Message) error {
	params, err := converter.MessageToInfra(msg)
	if err != nil {
		return infra.WrapRepoErr("failed to encode message meta", err)
	}
	if err := r.queries.InsertMessage(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to insert message", err)
	}
	return nil
}

func (r *MessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*negotiation.Message, error) {
	row, err := r.queries.FindMessageByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("message not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find message", err)
	}
	msg, err := converter.MessageFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode message meta", err)
	}
	return msg, nil
}

// ListByConversation returns messages oldest first.
func (r *MessageRepository) ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]*negotiation.Message, error) {
	rows, err := r.queries.ListMessagesByConversation(ctx, r.db, conversationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list messages", err)
	}
	msgs := make([]*negotiation.Message, 0, len(rows))
	for _, row := range rows {
		msg, err := converter.MessageFromInfra(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode message meta", err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}
