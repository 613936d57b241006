//go:build unit

package uow

import (
	"context"
	"testing"
	"time"

	"rental-market/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: true},
		{name: "wrapped deadlock", err: errs.Wrap(&pgconn.PgError{Code: "40P01"}, "lock listing"), want: true},
		{name: "commit failure keeps its cause", err: errs.Mark(&pgconn.PgError{Code: "40001"}, errTransactionCommit), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "plain error", err: assert.AnError, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func fastPolicy() backoff.BackOff {
	return backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Millisecond), maxTxRetries)
}

func TestRetryTx(t *testing.T) {
	deadlock := &pgconn.PgError{Code: "40P01"}

	t.Run("retries until the attempt succeeds", func(t *testing.T) {
		calls := 0
		err := retryTx(context.Background(), fastPolicy(), func() error {
			calls++
			if calls < 3 {
				return deadlock
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("other errors are returned at once", func(t *testing.T) {
		calls := 0
		err := retryTx(context.Background(), fastPolicy(), func() error {
			calls++
			return assert.AnError
		})
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after the retry limit", func(t *testing.T) {
		calls := 0
		err := retryTx(context.Background(), fastPolicy(), func() error {
			calls++
			return deadlock
		})
		assert.True(t, errs.Is(err, errMaxRetriesExceeded))
		assert.True(t, isRetryableError(err))
		assert.Equal(t, maxTxRetries+1, calls)
	})

	t.Run("stops when the context is done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := retryTx(ctx, fastPolicy(), func() error { return deadlock })
		assert.ErrorIs(t, err, context.Canceled)
	})
}
