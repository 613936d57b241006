//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"rental-market/internal/domain/auth"
	"rental-market/internal/domain/availability"
	"rental-market/internal/domain/daterange"
	"rental-market/internal/domain/pricing"
	"rental-market/internal/domain/reservation"
	"rental-market/internal/domain/user"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/pkg/config"
	"rental-market/internal/pkg/errs"
	"rental-market/internal/usecase/commands"
	"rental-market/internal/usecase/shared"
	"rental-market/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// sequenceCodes hands out numbered codes so collisions are predictable.
type sequenceCodes struct{ n int }

func (c *sequenceCodes) Generate(prefix string) (reservation.Code, error) {
	c.n++
	return reservation.Code(fmt.Sprintf("%s-%04d", prefix, c.n)), nil
}

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	m     *txMocks
	codes *sequenceCodes
	cmds  commands.BookingCommands
	guest uuid.UUID
	in    commands.CheckoutInput
	key   uuid.UUID
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl)
	s.codes = &sequenceCodes{}

	clk := clock.NewMockClock(fixedNow)
	s.cmds = commands.NewBookingCommands(
		s.m.uow,
		reservation.NewFactory(clk, s.codes, ""),
		pricing.NewDefaultCalculator(10),
		clk,
		config.BookingConfig{CodeAttempts: 3, HorizonMonths: 18},
	)

	end := daterange.MustParseDay("2024-06-12")
	s.guest = uuid.New()
	s.in = commands.CheckoutInput{
		ListingID: uuid.New(),
		Start:     daterange.MustParseDay("2024-06-10"),
		End:       &end,
	}
	s.key = uuid.New()
}

func (s *BookingCommandsTestSuite) principal() auth.Principal {
	return auth.Principal{UserID: s.guest, Role: user.RoleMember}
}

func (s *BookingCommandsTestSuite) expectListing() {
	l := builder.NewListingBuilder().With(func(b *builder.ListingBuilder) { b.ID = s.in.ListingID }).BuildDomain()
	s.m.listings.EXPECT().FindByID(gomock.Any(), s.in.ListingID).Return(l, nil)
}

func (s *BookingCommandsTestSuite) expectSnapshot(bookings []availability.Booking) {
	s.m.calendar.EXPECT().BlockingBookings(gomock.Any(), s.in.ListingID).Return(bookings, nil)
	s.m.calendar.EXPECT().Overrides(gomock.Any(), s.in.ListingID, gomock.Any()).Return(nil, nil)
}

func (s *BookingCommandsTestSuite) TestCheckout() {
	s.Run("creates reservation, transaction and notifications", func() {
		s.SetupTest()
		var events []string
		s.m.expectEvents(&events)

		s.m.idempotency.EXPECT().
			TryInsert(gomock.Any(), s.key, s.guest, "POST /api/bookings", gomock.Any(), fixedNow, fixedNow.Add(24*time.Hour)).
			Return(true, nil)
		s.expectListing()
		s.expectSnapshot(nil)

		var created *reservation.Reservation
		s.m.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, res *reservation.Reservation) error {
				created = res
				return nil
			})
		s.m.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.m.idempotency.EXPECT().MarkCompleted(gomock.Any(), s.key, s.guest, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, resultID uuid.UUID) error {
				s.Equal(created.ID(), resultID)
				return nil
			})

		result, err := s.cmds.Checkout(context.Background(), s.principal(), s.in, s.key)

		s.Require().NoError(err)
		s.False(result.IsReplayed)
		s.Equal(reservation.StatusPending, result.Reservation.Status())
		s.Equal(s.guest, result.Reservation.GuestID())
		s.Equal(int64(200), result.Quote.Base.Amount)
		s.Require().Len(result.Transactions, 1)
		s.Equal(result.Quote.AmountDueNow, result.Transactions[0].Amount())
		s.Equal([]string{shared.EventReservationCreated, shared.EventTransactionCreated}, events)
	})

	s.Run("retries on code collision", func() {
		s.SetupTest()
		var events []string
		s.m.expectEvents(&events)

		s.m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		s.expectListing()
		s.expectSnapshot(nil)

		var codes []reservation.Code
		s.m.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, res *reservation.Reservation) error {
				codes = append(codes, res.Code())
				if len(codes) == 1 {
					return duplicateKey()
				}
				return nil
			}).Times(2)
		s.m.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.m.idempotency.EXPECT().MarkCompleted(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.cmds.Checkout(context.Background(), s.principal(), s.in, s.key)

		s.Require().NoError(err)
		s.Len(codes, 2)
		s.NotEqual(codes[0], codes[1])
		s.Equal(codes[1], result.Reservation.Code())
	})

	s.Run("gives up after the configured attempts", func() {
		s.SetupTest()
		s.m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		s.expectListing()
		s.expectSnapshot(nil)
		s.m.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(duplicateKey()).Times(3)

		_, err := s.cmds.Checkout(context.Background(), s.principal(), s.in, s.key)

		s.Require().Error(err)
		s.True(errs.Is(err, commands.ErrCodeAttemptsExhausted))
		s.True(errs.Is(err, shared.ErrConflict))
	})

	s.Run("rejects dates held by a confirmed stay", func() {
		s.SetupTest()
		s.m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		s.expectListing()
		s.expectSnapshot([]availability.Booking{{
			Start: daterange.MustParseDay("2024-06-11"),
			End:   daterange.MustParseDay("2024-06-13"),
		}})

		_, err := s.cmds.Checkout(context.Background(), s.principal(), s.in, s.key)

		s.Require().Error(err)
		s.ErrorIs(err, availability.ErrDatesUnavailable)
		s.True(errs.Is(err, shared.ErrConflict))
	})

	s.Run("rejects past dates", func() {
		s.SetupTest()
		s.in.Start = daterange.MustParseDay("2024-05-30")
		s.in.End = nil
		s.m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		s.expectListing()
		s.expectSnapshot(nil)

		_, err := s.cmds.Checkout(context.Background(), s.principal(), s.in, s.key)

		s.Require().Error(err)
		s.True(errs.Is(err, shared.ErrValidation))
	})

	s.Run("fails closed when the calendar cannot be read", func() {
		s.SetupTest()
		s.m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		s.expectListing()
		s.m.calendar.EXPECT().BlockingBookings(gomock.Any(), s.in.ListingID).Return(nil, errs.New("connection reset"))

		_, err := s.cmds.Checkout(context.Background(), s.principal(), s.in, s.key)

		s.Require().Error(err)
		s.True(errs.Is(err, shared.ErrUnavailable))
	})

	s.Run("unknown listing", func() {
		s.SetupTest()
		s.m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		s.m.listings.EXPECT().FindByID(gomock.Any(), s.in.ListingID).Return(nil, notFound())

		_, err := s.cmds.Checkout(context.Background(), s.principal(), s.in, s.key)

		s.Require().Error(err)
		s.True(errs.Is(err, shared.ErrNotFound))
	})

	s.Run("missing idempotency key", func() {
		s.SetupTest()

		_, err := s.cmds.Checkout(context.Background(), s.principal(), s.in, uuid.Nil)

		s.Require().Error(err)
		s.True(errs.Is(err, shared.ErrValidation))
	})

	s.Run("anonymous principal", func() {
		s.SetupTest()

		_, err := s.cmds.Checkout(context.Background(), auth.Principal{}, s.in, s.key)

		s.Require().Error(err)
		s.True(errs.Is(err, shared.ErrUnauthenticated))
	})
}

func (s *BookingCommandsTestSuite) TestCheckoutReplay() {
	// claimReplay makes the key look already claimed and serves rec for it
	// with the hash the command computed for this request.
	claimReplay := func(rec *shared.IdempotencyRecord, sameRequest bool) {
		var hash string
		s.m.idempotency.EXPECT().TryInsert(gomock.Any(), s.key, s.guest, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, _, requestHash string, _, _ time.Time) (bool, error) {
				hash = requestHash
				return false, nil
			})
		s.m.idempotency.EXPECT().Get(gomock.Any(), s.key, s.guest).
			DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID) (*shared.IdempotencyRecord, error) {
				rec.RequestHash = hash
				if !sameRequest {
					rec.RequestHash = "other"
				}
				return rec, nil
			})
	}

	s.Run("returns the stored reservation", func() {
		s.SetupTest()
		existing := builder.NewReservationBuilder().BuildDomain()
		resultID := existing.ID()
		claimReplay(&shared.IdempotencyRecord{Status: shared.IdempotencyCompleted, ResultID: &resultID}, true)
		txn := builder.TransactionWithStatus(existing.ID(), reservation.TxPending)
		s.m.reservations.EXPECT().FindByID(gomock.Any(), resultID).Return(existing, nil)
		s.m.transactions.EXPECT().ListByReservation(gomock.Any(), resultID).Return([]*reservation.Transaction{txn}, nil)

		result, err := s.cmds.Checkout(context.Background(), s.principal(), s.in, s.key)

		s.Require().NoError(err)
		s.True(result.IsReplayed)
		s.Equal(existing.ID(), result.Reservation.ID())
		s.Len(result.Transactions, 1)
		s.Nil(result.Quote)
	})

	s.Run("still processing", func() {
		s.SetupTest()
		claimReplay(&shared.IdempotencyRecord{Status: shared.IdempotencyProcessing}, true)

		_, err := s.cmds.Checkout(context.Background(), s.principal(), s.in, s.key)

		s.Require().Error(err)
		s.True(errs.Is(err, commands.ErrIdempotencyInProgress))
		s.True(errs.Is(err, shared.ErrConflict))
	})

	s.Run("key reused with another body", func() {
		s.SetupTest()
		resultID := uuid.New()
		claimReplay(&shared.IdempotencyRecord{Status: shared.IdempotencyCompleted, ResultID: &resultID}, false)

		_, err := s.cmds.Checkout(context.Background(), s.principal(), s.in, s.key)

		s.Require().Error(err)
		s.True(errs.Is(err, commands.ErrIdempotencyKeyReused))
		s.True(errs.Is(err, shared.ErrConflict))
	})
}

func TestBookingCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}
