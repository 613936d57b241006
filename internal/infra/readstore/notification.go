package readstore

import (
	"context"
	"time"

	"rental-market/internal/infra"
	"rental-market/internal/infra/pgq"
	"rental-market/internal/pkg/pgconv"
	"rental-market/internal/usecase/queries"
)

type NotificationReadQueries interface {
	ClaimDueNotificationJobs(ctx context.Context, db pgq.DBTX, arg pgq.ClaimDueNotificationJobsParams) ([]pgq.NotificationJobs, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      pgq.DBTX
}

// NewNotificationReadStore must be given a transaction: claimed rows stay
// locked only while it is open.
func NewNotificationReadStore(queries NotificationReadQueries, db pgq.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *NotificationReadStore) ClaimDue(ctx context.Context, now time.Time, limit int32) ([]*queries.NotificationJobView, error) {
	rows, err := s.queries.ClaimDueNotificationJobs(ctx, s.db, pgq.ClaimDueNotificationJobsParams{
		Now:   pgconv.TimeToPgtype(now),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	result := make([]*queries.NotificationJobView, len(rows))
	for i, row := range rows {
		result[i] = &queries.NotificationJobView{
			ID:        row.ID,
			Kind:      row.Kind,
			Topic:     row.Topic,
			Payload:   row.Payload,
			RunAt:     pgconv.TimeFromPgtype(row.RunAt),
			Attempts:  row.Attempts,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}

	return result, nil
}
