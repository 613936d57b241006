//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"rental-market/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool, a connection and a transaction, so
// fixtures can write inside a test's own transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// bcrypt of "password123"
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, phone, display_name, password_hash, role, is_active)
		VALUES ($1, $2, '+33 6 12 34 56 78', $3, $4, $5, true) ON CONFLICT (email) DO NOTHING`,
		userID, email, strings.Split(email, "@")[0], TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	return userID
}

func DeactivateUser(t *testing.T, db DBLike, userID uuid.UUID) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE id = $1", userID)
	require.NoError(t, err)
}

// CreateTestListing inserts a daily-priced EUR listing.
func CreateTestListing(t *testing.T, db DBLike, ownerID uuid.UUID, kind string, basePrice int64) uuid.UUID {
	t.Helper()

	listingID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO listings (id, owner_id, kind, title, base_price, currency, rental_unit)
		VALUES ($1, $2, $3, 'Test listing', $4, 'EUR', 'day')`,
		listingID, ownerID, kind, basePrice)
	require.NoError(t, err)
	return listingID
}

func CreateTestAddOn(t *testing.T, db DBLike, listingID uuid.UUID, price int64, model string) uuid.UUID {
	t.Helper()

	addOnID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO listing_add_ons (id, listing_id, name, price, pricing_model)
		VALUES ($1, $2, 'extra', $3, $4)`,
		addOnID, listingID, price, model)
	require.NoError(t, err)
	return addOnID
}

// SetOverride stores a per-date override. A nil price keeps the base price.
func SetOverride(t *testing.T, db DBLike, listingID uuid.UUID, date string, available bool, price *int64) {
	t.Helper()

	_, err := db.Exec(context.Background(), `INSERT INTO availability_overrides (listing_id, date, is_available, price)
		VALUES ($1, $2::date, $3, $4)
		ON CONFLICT (listing_id, date) DO UPDATE SET is_available = EXCLUDED.is_available, price = EXCLUDED.price`,
		listingID, date, available, price)
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n))
	return n
}

// SeedReferenceData inserts the operator account used by tests that settle
// transactions.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (email, display_name, password_hash, role) VALUES
		    ('operator@example.com', 'Operator', $1, 'operator')
		ON CONFLICT (email) DO NOTHING;
	`, TestPasswordHash)
	return err
}

func buildTruncate(ctx context.Context, pool *pgxpool.Pool) (string, error) {
	rows, err := pool.Query(ctx, `
		SELECT 'public.' || quote_ident(tablename)
		FROM pg_tables
		WHERE schemaname = 'public' AND tablename <> 'atlas_schema_revisions'`)
	if err != nil {
		return "", errs.Wrap(err, "list tables")
	}
	tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return "", errs.Wrap(err, "scan table names")
	}
	if len(tables) == 0 {
		return "SELECT 1", nil
	}
	return "TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE", nil
}

// truncateSQL is built on first use. Migrations never run mid-suite, so the
// table list stays valid; a failed build is retried on the next call.
var (
	truncateMu  sync.Mutex
	truncateSQL string
)

// ResetDB empties every table and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	truncateMu.Lock()
	if truncateSQL == "" {
		stmt, err := buildTruncate(ctx, pool)
		if err != nil {
			truncateMu.Unlock()
			return err
		}
		truncateSQL = stmt
	}
	stmt := truncateSQL
	truncateMu.Unlock()

	if _, err := pool.Exec(ctx, stmt); err != nil {
		return errs.Wrap(err, "truncate")
	}
	return SeedReferenceData(pool)
}
