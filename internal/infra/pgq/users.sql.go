package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findUserByEmail = `-- name: FindUserByEmail :one
SELECT id, email, phone, display_name, password_hash, role, is_active, last_login, created_at, updated_at
FROM users
WHERE email = $1
`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (Users, error) {
	row := db.QueryRow(ctx, findUserByEmail, email)
	var i Users
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Phone,
		&i.DisplayName,
		&i.PasswordHash,
		&i.Role,
		&i.IsActive,
		&i.LastLogin,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const findUserByID = `-- name: FindUserByID :one
SELECT id, email, phone, display_name, role, is_active
FROM users
WHERE id = $1
`

type FindUserByIDRow struct {
	ID          uuid.UUID   `json:"id"`
	Email       string      `json:"email"`
	Phone       pgtype.Text `json:"phone"`
	DisplayName string      `json:"display_name"`
	Role        string      `json:"role"`
	IsActive    bool        `json:"is_active"`
}

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (FindUserByIDRow, error) {
	row := db.QueryRow(ctx, findUserByID, id)
	var i FindUserByIDRow
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Phone,
		&i.DisplayName,
		&i.Role,
		&i.IsActive,
	)
	return i, err
}

const updateUserLastLogin = `-- name: UpdateUserLastLogin :exec
UPDATE users
SET last_login = $2, updated_at = $2
WHERE id = $1
`

type UpdateUserLastLoginParams struct {
	ID        uuid.UUID          `json:"id"`
	LastLogin pgtype.Timestamptz `json:"last_login"`
}

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, arg UpdateUserLastLoginParams) error {
	_, err := db.Exec(ctx, updateUserLastLogin, arg.ID, arg.LastLogin)
	return err
}

const createUser = `-- name: CreateUser :exec
INSERT INTO users (id, email, phone, display_name, password_hash, role, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
`

type CreateUserParams struct {
	ID           uuid.UUID          `json:"id"`
	Email        string             `json:"email"`
	Phone        pgtype.Text        `json:"phone"`
	DisplayName  string             `json:"display_name"`
	PasswordHash string             `json:"password_hash"`
	Role         string             `json:"role"`
	IsActive     bool               `json:"is_active"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) error {
	_, err := db.Exec(ctx, createUser,
		arg.ID,
		arg.Email,
		arg.Phone,
		arg.DisplayName,
		arg.PasswordHash,
		arg.Role,
		arg.IsActive,
		arg.CreatedAt,
	)
	return err
}
