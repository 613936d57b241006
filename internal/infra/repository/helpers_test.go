//go:build unit

package repository

import (
	"rental-market/internal/infra/pgq"

	"github.com/jackc/pgx/v5/pgconn"
)

// nopDB satisfies pgq.DBTX for repositories whose queries are mocked.
type nopDB struct {
	pgq.DBTX
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code, Message: "constraint violated"}
}
