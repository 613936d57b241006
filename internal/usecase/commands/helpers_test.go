//go:build unit

package commands_test

import (
	"context"
	"time"

	"rental-market/internal/domain/auth"
	"rental-market/internal/domain/user"
	"rental-market/internal/infra"
	"rental-market/internal/usecase/shared"
	sharedmock "rental-market/tests/mock/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// txMocks runs every unit of work against one mocked Tx.
type txMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	listings      *sharedmock.MockListingRepository
	calendar      *sharedmock.MockCalendarRepository
	conversations *sharedmock.MockConversationRepository
	messages      *sharedmock.MockMessageRepository
	reservations  *sharedmock.MockReservationRepository
	transactions  *sharedmock.MockTransactionRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	notifications *sharedmock.MockNotificationRepository
	users         *sharedmock.MockUserRepository
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		listings:      sharedmock.NewMockListingRepository(ctrl),
		calendar:      sharedmock.NewMockCalendarRepository(ctrl),
		conversations: sharedmock.NewMockConversationRepository(ctrl),
		messages:      sharedmock.NewMockMessageRepository(ctrl),
		reservations:  sharedmock.NewMockReservationRepository(ctrl),
		transactions:  sharedmock.NewMockTransactionRepository(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
	}

	run := func(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
		return fn(ctx, m.tx)
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	m.uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	m.tx.EXPECT().Savepoint(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()

	m.tx.EXPECT().Listings().Return(m.listings).AnyTimes()
	m.tx.EXPECT().Calendar().Return(m.calendar).AnyTimes()
	m.tx.EXPECT().Conversations().Return(m.conversations).AnyTimes()
	m.tx.EXPECT().Messages().Return(m.messages).AnyTimes()
	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	m.tx.EXPECT().Transactions().Return(m.transactions).AnyTimes()
	m.tx.EXPECT().Idempotency().Return(m.idempotency).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	return m
}

// expectEvents accepts any number of outbox writes and records their kinds.
func (m *txMocks) expectEvents(kinds *[]string) {
	m.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, kind, _ string, _ []byte, _ time.Time) error {
			*kinds = append(*kinds, kind)
			return nil
		}).AnyTimes()
}

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

func duplicateKey() error {
	return infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey)
}

var fixedNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func member() auth.Principal {
	return auth.Principal{UserID: uuid.New(), Role: user.RoleMember}
}
