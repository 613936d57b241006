package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createTransaction = `-- name: CreateTransaction :exec
INSERT INTO transactions (id, reservation_id, amount, currency, status, payment_method, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

func (q *Queries) CreateTransaction(ctx context.Context, db DBTX, arg Transactions) error {
	_, err := db.Exec(ctx, createTransaction,
		arg.ID,
		arg.ReservationID,
		arg.Amount,
		arg.Currency,
		arg.Status,
		arg.PaymentMethod,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const lockTransaction = `-- name: LockTransaction :one
SELECT id, reservation_id, amount, currency, status, payment_method, created_at, updated_at
FROM transactions
WHERE id = $1
FOR UPDATE
`

func (q *Queries) LockTransaction(ctx context.Context, db DBTX, id uuid.UUID) (Transactions, error) {
	return scanTransaction(db.QueryRow(ctx, lockTransaction, id))
}

const listTransactionsByReservations = `-- name: ListTransactionsByReservations :many
SELECT id, reservation_id, amount, currency, status, payment_method, created_at, updated_at
FROM transactions
WHERE reservation_id = ANY($1::uuid[])
ORDER BY created_at, id
`

func (q *Queries) ListTransactionsByReservations(ctx context.Context, db DBTX, reservationIDs []uuid.UUID) ([]Transactions, error) {
	rows, err := db.Query(ctx, listTransactionsByReservations, reservationIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Transactions
	for rows.Next() {
		i, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateTransactionStatus = `-- name: UpdateTransactionStatus :execrows
UPDATE transactions
SET status = $2, updated_at = $3
WHERE id = $1
`

type UpdateTransactionStatusParams struct {
	ID        uuid.UUID          `json:"id"`
	Status    string             `json:"status"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateTransactionStatus(ctx context.Context, db DBTX, arg UpdateTransactionStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateTransactionStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func scanTransaction(row interface{ Scan(dest ...any) error }) (Transactions, error) {
	var i Transactions
	err := row.Scan(
		&i.ID,
		&i.ReservationID,
		&i.Amount,
		&i.Currency,
		&i.Status,
		&i.PaymentMethod,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
