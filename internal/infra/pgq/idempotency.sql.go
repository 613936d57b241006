package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const tryInsertIdempotencyKey = `-- name: TryInsertIdempotencyKey :one
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, result_id, expires_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, 'processing', NULL, $6, $5, $5)
ON CONFLICT (key, user_id) DO UPDATE
SET endpoint     = EXCLUDED.endpoint,
    request_hash = EXCLUDED.request_hash,
    status       = 'processing',
    result_id    = NULL,
    expires_at   = EXCLUDED.expires_at,
    updated_at   = EXCLUDED.updated_at
WHERE idempotency_keys.expires_at <= $5
RETURNING key
`

type TryInsertIdempotencyKeyParams struct {
	Key         uuid.UUID          `json:"key"`
	UserID      uuid.UUID          `json:"user_id"`
	Endpoint    string             `json:"endpoint"`
	RequestHash string             `json:"request_hash"`
	Now         pgtype.Timestamptz `json:"now"`
	ExpiresAt   pgtype.Timestamptz `json:"expires_at"`
}

// TryInsertIdempotencyKey returns pgx.ErrNoRows when a live claim exists.
func (q *Queries) TryInsertIdempotencyKey(ctx context.Context, db DBTX, arg TryInsertIdempotencyKeyParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, tryInsertIdempotencyKey,
		arg.Key,
		arg.UserID,
		arg.Endpoint,
		arg.RequestHash,
		arg.Now,
		arg.ExpiresAt,
	)
	var key uuid.UUID
	err := row.Scan(&key)
	return key, err
}

const getIdempotencyKey = `-- name: GetIdempotencyKey :one
SELECT key, user_id, endpoint, request_hash, status, result_id, expires_at, created_at, updated_at
FROM idempotency_keys
WHERE key = $1 AND user_id = $2
`

type GetIdempotencyKeyParams struct {
	Key    uuid.UUID `json:"key"`
	UserID uuid.UUID `json:"user_id"`
}

func (q *Queries) GetIdempotencyKey(ctx context.Context, db DBTX, arg GetIdempotencyKeyParams) (IdempotencyKeys, error) {
	row := db.QueryRow(ctx, getIdempotencyKey, arg.Key, arg.UserID)
	var i IdempotencyKeys
	err := row.Scan(
		&i.Key,
		&i.UserID,
		&i.Endpoint,
		&i.RequestHash,
		&i.Status,
		&i.ResultID,
		&i.ExpiresAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateIdempotencyKeyCompleted = `-- name: UpdateIdempotencyKeyCompleted :execrows
UPDATE idempotency_keys
SET status = 'completed', result_id = $3, updated_at = now()
WHERE key = $1 AND user_id = $2
`

type UpdateIdempotencyKeyCompletedParams struct {
	Key      uuid.UUID   `json:"key"`
	UserID   uuid.UUID   `json:"user_id"`
	ResultID pgtype.UUID `json:"result_id"`
}

func (q *Queries) UpdateIdempotencyKeyCompleted(ctx context.Context, db DBTX, arg UpdateIdempotencyKeyCompletedParams) (int64, error) {
	result, err := db.Exec(ctx, updateIdempotencyKeyCompleted, arg.Key, arg.UserID, arg.ResultID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteExpiredIdempotencyKeys = `-- name: DeleteExpiredIdempotencyKeys :execrows
DELETE FROM idempotency_keys
WHERE expires_at < $1
`

func (q *Queries) DeleteExpiredIdempotencyKeys(ctx context.Context, db DBTX, before pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, deleteExpiredIdempotencyKeys, before)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
