package readstore

import (
	"context"

	"rental-market/internal/infra"
	"rental-market/internal/infra/pgq"
	"rental-market/internal/pkg/pgconv"
	"rental-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type ConversationReadQueries interface {
	ListConversationsByParticipant(ctx context.Context, db pgq.DBTX, userID uuid.UUID) ([]pgq.ListConversationsByParticipantRow, error)
}

type ConversationReadStore struct {
	queries ConversationReadQueries
	db      pgq.DBTX
}

func NewConversationReadStore(queries ConversationReadQueries, db pgq.DBTX) *ConversationReadStore {
	return &ConversationReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *ConversationReadStore) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*queries.ConversationView, error) {
	rows, err := s.queries.ListConversationsByParticipant(ctx, s.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list conversations", err)
	}

	views := make([]*queries.ConversationView, len(rows))
	for i, row := range rows {
		views[i] = &queries.ConversationView{
			ID:            row.ID,
			ListingID:     row.ListingID,
			ListingTitle:  row.ListingTitle,
			Kind:          row.Kind,
			BuyerID:       row.BuyerID,
			SellerID:      row.SellerID,
			LastMessageAt: pgconv.TimePtrFromPgtype(row.LastMessageAt),
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views, nil
}
