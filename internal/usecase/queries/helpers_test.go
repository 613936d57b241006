//go:build unit

package queries_test

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

var fixedNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

type readMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	listings      *sharedmock.MockListingRepository
	calendar      *sharedmock.MockCalendarRepository
	conversations *sharedmock.MockConversationRepository
	messages      *sharedmock.MockMessageRepository
	reservations  *sharedmock.MockReservationRepository
	transactions  *sharedmock.MockTransactionRepository
}

func newReadMocks(ctrl *gomock.Controller) *readMocks {
	m := &readMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		listings:      sharedmock.NewMockListingRepository(ctrl),
		calendar:      sharedmock.NewMockCalendarRepository(ctrl),
		conversations: sharedmock.NewMockConversationRepository(ctrl),
		messages:      sharedmock.NewMockMessageRepository(ctrl),
		reservations:  sharedmock.NewMockReservationRepository(ctrl),
		transactions:  sharedmock.NewMockTransactionRepository(ctrl),
	}
	m.uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Listings().Return(m.listings).AnyTimes()
	m.tx.EXPECT().Calendar().Return(m.calendar).AnyTimes()
	m.tx.EXPECT().Conversations().Return(m.conversations).AnyTimes()
	m.tx.EXPECT().Messages().Return(m.messages).AnyTimes()
	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	m.tx.EXPECT().Transactions().Return(m.transactions).AnyTimes()
	return m
}

func as(id uuid.UUID) auth.Principal {
	return auth.Principal{UserID: id, Role: user.RoleMember}
}

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}
