//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"rental-market/internal/infra"
	"rental-market/internal/infra/pgq"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockIdempotencyQueries struct {
	mock.Mock
}

func (m *MockIdempotencyQueries) TryInsertIdempotencyKey(ctx context.Context, db pgq.DBTX, arg pgq.TryInsertIdempotencyKeyParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockIdempotencyQueries) GetIdempotencyKey(ctx context.Context, db pgq.DBTX, arg pgq.GetIdempotencyKeyParams) (pgq.IdempotencyKeys, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(pgq.IdempotencyKeys), args.Error(1)
}

func (m *MockIdempotencyQueries) UpdateIdempotencyKeyCompleted(ctx context.Context, db pgq.DBTX, arg pgq.UpdateIdempotencyKeyCompletedParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIdempotencyQueries) DeleteExpiredIdempotencyKeys(ctx context.Context, db pgq.DBTX, before pgtype.Timestamptz) (int64, error) {
	args := m.Called(ctx, db, before)
	return args.Get(0).(int64), args.Error(1)
}

func TestIdempotencyTryInsert(t *testing.T) {
	key, userID := uuid.New(), uuid.New()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name        string
		returnKey   uuid.UUID
		mockErr     error
		wantClaimed bool
		wantErr     bool
	}{
		{name: "fresh key is claimed", returnKey: key, wantClaimed: true},
		{name: "live claim held elsewhere", mockErr: pgx.ErrNoRows, wantClaimed: false},
		{name: "database failure", mockErr: assert.AnError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockIdempotencyQueries)
			q.On("TryInsertIdempotencyKey", mock.Anything, mock.Anything, mock.MatchedBy(func(p pgq.TryInsertIdempotencyKeyParams) bool {
				return p.Key == key && p.UserID == userID && p.Now.Time.Equal(now) && p.ExpiresAt.Time.Equal(now.Add(time.Hour))
			})).Return(tt.returnKey, tt.mockErr)

			claimed, err := NewIdempotencyRepository(q, nopDB{}).TryInsert(context.Background(), key, userID, "POST /api/bookings", "hash", now, now.Add(time.Hour))

			if tt.wantErr {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantClaimed, claimed)
		})
	}
}

func TestIdempotencyMarkCompletedMissingRow(t *testing.T) {
	q := new(MockIdempotencyQueries)
	q.On("UpdateIdempotencyKeyCompleted", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

	err := NewIdempotencyRepository(q, nopDB{}).MarkCompleted(context.Background(), uuid.New(), uuid.New(), uuid.New())

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
