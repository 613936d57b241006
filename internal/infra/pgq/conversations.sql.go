package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createConversation = `-- name: CreateConversation :exec
INSERT INTO conversations (id, listing_id, kind, buyer_id, seller_id, last_message_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type CreateConversationParams struct {
	ID            uuid.UUID          `json:"id"`
	ListingID     uuid.UUID          `json:"listing_id"`
	Kind          string             `json:"kind"`
	BuyerID       uuid.UUID          `json:"buyer_id"`
	SellerID      uuid.UUID          `json:"seller_id"`
	LastMessageAt pgtype.Timestamptz `json:"last_message_at"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateConversation(ctx context.Context, db DBTX, arg CreateConversationParams) error {
	_, err := db.Exec(ctx, createConversation,
		arg.ID,
		arg.ListingID,
		arg.Kind,
		arg.BuyerID,
		arg.SellerID,
		arg.LastMessageAt,
		arg.CreatedAt,
	)
	return err
}

const conversationColumns = `id, listing_id, kind, buyer_id, seller_id, last_message_at, created_at`

const findConversationByID = `-- name: FindConversationByID :one
SELECT ` + conversationColumns + `
FROM conversations
WHERE id = $1
`

func (q *Queries) FindConversationByID(ctx context.Context, db DBTX, id uuid.UUID) (Conversations, error) {
	return scanConversation(db.QueryRow(ctx, findConversationByID, id))
}

const lockConversation = `-- name: LockConversation :one
SELECT ` + conversationColumns + `
FROM conversations
WHERE id = $1
FOR UPDATE
`

func (q *Queries) LockConversation(ctx context.Context, db DBTX, id uuid.UUID) (Conversations, error) {
	return scanConversation(db.QueryRow(ctx, lockConversation, id))
}

const findConversationByParticipants = `-- name: FindConversationByParticipants :one
SELECT ` + conversationColumns + `
FROM conversations
WHERE listing_id = $1 AND kind = $2 AND buyer_id = $3 AND seller_id = $4
`

type FindConversationByParticipantsParams struct {
	ListingID uuid.UUID `json:"listing_id"`
	Kind      string    `json:"kind"`
	BuyerID   uuid.UUID `json:"buyer_id"`
	SellerID  uuid.UUID `json:"seller_id"`
}

func (q *Queries) FindConversationByParticipants(ctx context.Context, db DBTX, arg FindConversationByParticipantsParams) (Conversations, error) {
	row := db.QueryRow(ctx, findConversationByParticipants, arg.ListingID, arg.Kind, arg.BuyerID, arg.SellerID)
	return scanConversation(row)
}

const touchConversation = `-- name: TouchConversation :exec
UPDATE conversations
SET last_message_at = $2
WHERE id = $1
`

type TouchConversationParams struct {
	ID            uuid.UUID          `json:"id"`
	LastMessageAt pgtype.Timestamptz `json:"last_message_at"`
}

func (q *Queries) TouchConversation(ctx context.Context, db DBTX, arg TouchConversationParams) error {
	_, err := db.Exec(ctx, touchConversation, arg.ID, arg.LastMessageAt)
	return err
}

const listConversationsByParticipant = `-- name: ListConversationsByParticipant :many
SELECT c.id, c.listing_id, l.title, c.kind, c.buyer_id, c.seller_id, c.last_message_at, c.created_at
FROM conversations c
JOIN listings l ON l.id = c.listing_id
WHERE c.buyer_id = $1 OR c.seller_id = $1
ORDER BY COALESCE(c.last_message_at, c.created_at) DESC, c.id
`

type ListConversationsByParticipantRow struct {
	ID            uuid.UUID          `json:"id"`
	ListingID     uuid.UUID          `json:"listing_id"`
	ListingTitle  string             `json:"listing_title"`
	Kind          string             `json:"kind"`
	BuyerID       uuid.UUID          `json:"buyer_id"`
	SellerID      uuid.UUID          `json:"seller_id"`
	LastMessageAt pgtype.Timestamptz `json:"last_message_at"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) ListConversationsByParticipant(ctx context.Context, db DBTX, userID uuid.UUID) ([]ListConversationsByParticipantRow, error) {
	rows, err := db.Query(ctx, listConversationsByParticipant, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListConversationsByParticipantRow
	for rows.Next() {
		var i ListConversationsByParticipantRow
		if err := rows.Scan(
			&i.ID,
			&i.ListingID,
			&i.ListingTitle,
			&i.Kind,
			&i.BuyerID,
			&i.SellerID,
			&i.LastMessageAt,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanConversation(row interface{ Scan(dest ...any) error }) (Conversations, error) {
	var i Conversations
	err := row.Scan(
		&i.ID,
		&i.ListingID,
		&i.Kind,
		&i.BuyerID,
		&i.SellerID,
		&i.LastMessageAt,
		&i.CreatedAt,
	)
	return i, err
}
