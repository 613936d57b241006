package repository

import (
	"context"
	"time"

	"rental-market/internal/domain/listing"
	"rental-market/internal/domain/negotiation"
	"rental-market/internal/infra"
	"rental-market/internal/infra/pgq"
	"rental-market/internal/infra/repository/converter"
	"rental-market/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ConversationQueries interface {
	CreateConversation(ctx context.Context, db pgq.DBTX, arg pgq.CreateConversationParams) error
	FindConversationByID(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Conversations, error)
	FindConversationByParticipants(ctx context.Context, db pgq.DBTX, arg pgq.FindConversationByParticipantsParams) (pgq.Conversations, error)
	LockConversation(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Conversations, error)
	TouchConversation(ctx context.Context, db pgq.DBTX, arg pgq.TouchConversationParams) error
}

type ConversationRepository struct {
	queries ConversationQueries
	db      pgq.DBTX
}

func NewConversationRepository(queries ConversationQueries, db pgq.DBTX) *ConversationRepository {
	return &ConversationRepository{
		queries: queries,
		db:      db,
	}
}

// Create reports DUPLICATE_KEY when the participant tuple already has a
// conversation.
func (r *ConversationRepository) Create(ctx context.Context, conv *negotiation.Conversation) error {
	if err := r.queries.CreateConversation(ctx, r.db, converter.ConversationToInfra(conv)); err != nil {
		return infra.WrapRepoErr("failed to create conversation", err)
	}
	return nil
}

func (r *ConversationRepository) FindByID(ctx context.Context, id uuid.UUID) (*negotiation.Conversation, error) {
	row, err := r.queries.FindConversationByID(ctx, r.db, id)
	return r.convert(row, err)
}

func (r *ConversationRepository) FindByParticipants(ctx context.Context, listingID uuid.UUID, kind listing.Kind, buyerID, sellerID uuid.UUID) (*negotiation.Conversation, error) {
	row, err := r.queries.FindConversationByParticipants(ctx, r.db, pgq.FindConversationByParticipantsParams{
		ListingID: listingID,
		Kind:      string(kind),
		BuyerID:   buyerID,
		SellerID:  sellerID,
	})
	return r.convert(row, err)
}

func (r *ConversationRepository) LockByID(ctx context.Context, id uuid.UUID) (*negotiation.Conversation, error) {
	row, err := r.queries.LockConversation(ctx, r.db, id)
	return r.convert(row, err)
}

func (r *ConversationRepository) TouchLastMessage(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := r.queries.TouchConversation(ctx, r.db, pgq.TouchConversationParams{
		ID:            id,
		LastMessageAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to touch conversation", err)
	}
	return nil
}

func (r *ConversationRepository) convert(row pgq.Conversations, err error) (*negotiation.Conversation, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("conversation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find conversation", err)
	}
	return converter.ConversationFromInfra(row), nil
}
