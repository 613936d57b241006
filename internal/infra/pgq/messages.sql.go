package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertMessage = `-- name: InsertMessage :exec
INSERT INTO messages (id, conversation_id, sender_id, type, content, price, currency, meta, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

type InsertMessageParams struct {
	ID             uuid.UUID          `json:"id"`
	ConversationID uuid.UUID          `json:"conversation_id"`
	SenderID       uuid.UUID          `json:"sender_id"`
	Type           string             `json:"type"`
	Content        string             `json:"content"`
	Price          pgtype.Int8        `json:"price"`
	Currency       pgtype.Text        `json:"currency"`
	Meta           []byte             `json:"meta"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) InsertMessage(ctx context.Context, db DBTX, arg InsertMessageParams) error {
	_, err := db.Exec(ctx, insertMessage,
		arg.ID,
		arg.ConversationID,
		arg.SenderID,
		arg.Type,
		arg.Content,
		arg.Price,
		arg.Currency,
		arg.Meta,
		arg.CreatedAt,
	)
	return err
}

const findMessageByID = `-- name: FindMessageByID :one
SELECT id, conversation_id, sender_id, type, content, price, currency, meta, created_at
FROM messages
WHERE id = $1
`

func (q *Queries) FindMessageByID(ctx context.Context, db DBTX, id uuid.UUID) (Messages, error) {
	row := db.QueryRow(ctx, findMessageByID, id)
	var i Messages
	err := row.Scan(
		&i.ID,
		&i.ConversationID,
		&i.SenderID,
		&i.Type,
		&i.Content,
		&i.Price,
		&i.Currency,
		&i.Meta,
		&i.CreatedAt,
	)
	return i, err
}

const listMessagesByConversation = `-- name: ListMessagesByConversation :many
SELECT id, conversation_id, sender_id, type, content, price, currency, meta, created_at
FROM messages
WHERE conversation_id = $1
ORDER BY created_at, id
`

func (q *Queries) ListMessagesByConversation(ctx context.Context, db DBTX, conversationID uuid.UUID) ([]Messages, error) {
	rows, err := db.Query(ctx, listMessagesByConversation, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Messages
	for rows.Next() {
		var i Messages
		if err := rows.Scan(
			&i.ID,
			&i.ConversationID,
			&i.SenderID,
			&i.Type,
			&i.Content,
			&i.Price,
			&i.Currency,
			&i.Meta,
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

const getConstraintDefinition = `-- name: GetConstraintDefinition :one
SELECT pg_get_constraintdef(c.oid)
FROM pg_constraint c
JOIN pg_class t ON t.oid = c.conrelid
WHERE t.relname = $1 AND c.conname = $2
`

type GetConstraintDefinitionParams struct {
	TableName      string `json:"table_name"`
	ConstraintName string `json:"constraint_name"`
}

func (q *Queries) GetConstraintDefinition(ctx context.Context, db DBTX, arg GetConstraintDefinitionParams) (string, error) {
	row := db.QueryRow(ctx, getConstraintDefinition, arg.TableName, arg.ConstraintName)
	var def string
	err := row.Scan(&def)
	return def, err
}
