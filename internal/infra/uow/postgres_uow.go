package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"rental-market/internal/infra/pgq"
	"rental-market/internal/infra/repository"
	"rental-market/internal/pkg/errs"
	"rental-market/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxTxRetries = 3
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

var (
	writeTxOptions = pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	// One snapshot, so bookings and overrides are read at the same instant.
	readTxOptions = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *pgq.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgq.Queries) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, q: q}
}

// Within runs fn in a read-committed transaction. Serialization failures
// and deadlocks rerun the whole of fn, so fn must not have effects outside
// the transaction.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return retryTx(ctx, defaultRetryPolicy(), func() error {
		return u.run(ctx, writeTxOptions, fn)
	})
}

func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, readTxOptions, fn)
}

// run is a single attempt. Rollback after a successful commit is a no-op
// returning ErrTxClosed.
func (u *PostgresUoW) run(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx, "transaction")

	if err := fn(ctx, newPgTx(pgxTx, u.q)); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func defaultRetryPolicy() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.RandomizationFactor = 0.2
	b.Multiplier = 2
	b.MaxElapsedTime = 0
	return backoff.WithMaxRetries(b, maxTxRetries)
}

// retryTx reruns attempt while it fails with a retryable Postgres error and
// the policy allows another try.
func retryTx(ctx context.Context, policy backoff.BackOff, attempt func() error) error {
	tries := 0
	op := func() error {
		tries++
		err := attempt()
		if err != nil && !isRetryableError(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		slog.Warn("retrying transaction due to retryable error",
			"attempt", tries,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())
	}

	err := backoff.RetryNotify(op, backoff.WithContext(policy, ctx), notify)
	if err != nil && isRetryableError(err) {
		slog.Error("transaction failed after max retries", "attempts", tries, "error", err.Error())
		return errs.Mark(err, errMaxRetriesExceeded)
	}
	return err
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

func rollback(ctx context.Context, tx pgx.Tx, what string) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "scope", what, "error", err.Error())
	}
}

// pgTx binds every repository to one pgx transaction or savepoint.
type pgTx struct {
	tx pgx.Tx
	q  *pgq.Queries

	listings      shared.ListingRepository
	calendar      shared.CalendarRepository
	conversations shared.ConversationRepository
	messages      shared.MessageRepository
	reservations  shared.ReservationRepository
	transactions  shared.TransactionRepository
	idempotency   shared.IdempotencyRepository
	notifications shared.NotificationRepository
	users         shared.UserRepository
}

func newPgTx(tx pgx.Tx, q *pgq.Queries) *pgTx {
	return &pgTx{
		tx:            tx,
		q:             q,
		listings:      repository.NewListingRepository(q, tx),
		calendar:      repository.NewCalendarRepository(q, tx),
		conversations: repository.NewConversationRepository(q, tx),
		messages:      repository.NewMessageRepository(q, tx),
		reservations:  repository.NewReservationRepository(q, tx),
		transactions:  repository.NewTransactionRepository(q, tx),
		idempotency:   repository.NewIdempotencyRepository(q, tx),
		notifications: repository.NewNotificationRepository(q, tx),
		users:         repository.NewUserRepository(q, tx),
	}
}

func (t *pgTx) Listings() shared.ListingRepository           { return t.listings }
func (t *pgTx) Calendar() shared.CalendarRepository          { return t.calendar }
func (t *pgTx) Conversations() shared.ConversationRepository { return t.conversations }
func (t *pgTx) Messages() shared.MessageRepository           { return t.messages }
func (t *pgTx) Reservations() shared.ReservationRepository   { return t.reservations }
func (t *pgTx) Transactions() shared.TransactionRepository   { return t.transactions }
func (t *pgTx) Idempotency() shared.IdempotencyRepository    { return t.idempotency }
func (t *pgTx) Notifications() shared.NotificationRepository { return t.notifications }
func (t *pgTx) Users() shared.UserRepository                 { return t.users }

// Savepoint maps to a pgx nested transaction (SAVEPOINT / RELEASE /
// ROLLBACK TO). Repositories of the nested Tx are bound to the savepoint.
func (t *pgTx) Savepoint(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	sp, err := t.tx.Begin(ctx)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	if err := fn(ctx, newPgTx(sp, t.q)); err != nil {
		rollback(ctx, sp, "savepoint")
		return err
	}
	if err := sp.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}
