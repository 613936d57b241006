package repository

import (
	"context"
	"time"

	"rental-market/internal/infra"
	"rental-market/internal/infra/pgq"
	"rental-market/internal/pkg/pgconv"
	"rental-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db pgq.DBTX, arg pgq.TryInsertIdempotencyKeyParams) (uuid.UUID, error)
	GetIdempotencyKey(ctx context.Context, db pgq.DBTX, arg pgq.GetIdempotencyKeyParams) (pgq.IdempotencyKeys, error)
	UpdateIdempotencyKeyCompleted(ctx context.Context, db pgq.DBTX, arg pgq.UpdateIdempotencyKeyCompletedParams) (int64, error)
	DeleteExpiredIdempotencyKeys(ctx context.Context, db pgq.DBTX, before pgtype.Timestamptz) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      pgq.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db pgq.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, now, expiresAt time.Time) (bool, error) {
	params := pgq.TryInsertIdempotencyKeyParams{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		Now:         pgconv.TimeToPgtype(now),
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	if _, err := r.queries.TryInsertIdempotencyKey(ctx, r.db, params); err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}

	return true, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, r.db, pgq.GetIdempotencyKeyParams{Key: key, UserID: userID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:         row.Key,
		UserID:      row.UserID,
		Endpoint:    row.Endpoint,
		Status:      row.Status,
		RequestHash: row.RequestHash,
		ResultID:    pgconv.UUIDPtrFromPgtype(row.ResultID),
		ExpiresAt:   pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, key, userID uuid.UUID, resultID uuid.UUID) error {
	n, err := r.queries.UpdateIdempotencyKeyCompleted(ctx, r.db, pgq.UpdateIdempotencyKeyCompletedParams{
		Key:      key,
		UserID:   userID,
		ResultID: pgconv.UUIDToPgtype(resultID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}

	return nil
}

// DeleteExpired purges keys whose claim ended before the given time.
func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, r.db, pgconv.TimeToPgtype(before))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}

	return count, nil
}
