package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"rental-market/internal/domain/auth"
	"rental-market/internal/domain/availability"
	"rental-market/internal/domain/daterange"
	"rental-market/internal/domain/money"
	"rental-market/internal/domain/pricing"
	"rental-market/internal/domain/reservation"
	"rental-market/internal/infra"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/pkg/config"
	"rental-market/internal/pkg/errs"
	"rental-market/internal/usecase/shared"

	"github.com/google/uuid"
)

const checkoutEndpoint = "POST /api/bookings"

var (
	ErrCodeAttemptsExhausted = errs.New("could not allocate a reservation code, please retry")
	ErrIdempotencyKeyReused  = errs.New("idempotency key was used with a different request")
	ErrIdempotencyInProgress = errs.New("a request with this idempotency key is still in progress")
	ErrMissingIdempotencyKey = errs.New("idempotency key is required")
)

type CheckoutInput struct {
	ListingID uuid.UUID
	Start     daterange.Day
	End       *daterange.Day
	AddOnIDs  []uuid.UUID

	// OfferMessageID links the booking to an accepted offer, either the
	// offer itself or its accept message.
	OfferMessageID *uuid.UUID
}

type CheckoutResult struct {
	Reservation  *reservation.Reservation
	Transactions []*reservation.Transaction
	Quote        *pricing.Quote
	IsReplayed   bool
}

type BookingCommands interface {
	Checkout(ctx context.Context, p auth.Principal, in CheckoutInput, idempotencyKey uuid.UUID) (*CheckoutResult, error)
}

type bookingCommandsImpl struct {
	uow        shared.UnitOfWork
	factory    *reservation.Factory
	calculator pricing.Calculator
	clock      clock.Clock
	cfg        config.BookingConfig
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	calculator pricing.Calculator,
	clock clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:        uow,
		factory:    factory,
		calculator: calculator,
		clock:      clock,
		cfg:        cfg,
	}
}

// Checkout writes the reservation, its transaction and their notifications
// in one database transaction. The idempotency claim is part of it, so a
// failed checkout leaves the key free for a retry.
func (b *bookingCommandsImpl) Checkout(ctx context.Context, p auth.Principal, in CheckoutInput, idempotencyKey uuid.UUID) (*CheckoutResult, error) {
	if p.IsZero() {
		return nil, shared.Classify(auth.ErrNoPrincipal)
	}
	if idempotencyKey == uuid.Nil {
		return nil, errs.Mark(ErrMissingIdempotencyKey, shared.ErrValidation)
	}
	requestHash, err := hashCheckout(in)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrValidation)
	}

	var result *CheckoutResult
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := b.clock.Now()
		claimed, err := tx.Idempotency().TryInsert(ctx, idempotencyKey, p.UserID, checkoutEndpoint, requestHash, now, now.Add(24*time.Hour))
		if err != nil {
			return err
		}
		if !claimed {
			result, err = b.replay(ctx, tx, p, idempotencyKey, requestHash)
			return err
		}

		result, err = b.book(ctx, tx, p, in, now)
		if err != nil {
			return err
		}
		return tx.Idempotency().MarkCompleted(ctx, idempotencyKey, p.UserID, result.Reservation.ID())
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return result, nil
}

func (b *bookingCommandsImpl) replay(ctx context.Context, tx shared.Tx, p auth.Principal, key uuid.UUID, requestHash string) (*CheckoutResult, error) {
	rec, err := tx.Idempotency().Get(ctx, key, p.UserID)
	if err != nil {
		return nil, err
	}
	if rec.RequestHash != requestHash {
		return nil, errs.Mark(ErrIdempotencyKeyReused, shared.ErrConflict)
	}
	if rec.Status != shared.IdempotencyCompleted || rec.ResultID == nil {
		return nil, errs.Mark(ErrIdempotencyInProgress, shared.ErrConflict)
	}

	res, err := tx.Reservations().FindByID(ctx, *rec.ResultID)
	if err != nil {
		return nil, err
	}
	txns, err := tx.Transactions().ListByReservation(ctx, res.ID())
	if err != nil {
		return nil, err
	}
	return &CheckoutResult{Reservation: res, Transactions: txns, IsReplayed: true}, nil
}

func (b *bookingCommandsImpl) book(ctx context.Context, tx shared.Tx, p auth.Principal, in CheckoutInput, now time.Time) (*CheckoutResult, error) {
	l, err := shared.FindListing(ctx, tx, in.ListingID)
	if err != nil {
		return nil, err
	}

	var (
		negotiated *money.Money
		sourceID   *uuid.UUID
	)
	if in.OfferMessageID != nil {
		agreed, err := shared.ResolveAgreedOffer(ctx, tx, p, l.ID(), *in.OfferMessageID, now)
		if err != nil {
			return nil, err
		}
		negotiated = &agreed.Price
		sourceID = &agreed.OfferMessageID
	}

	stay := shared.StayRequest{Start: in.Start, End: in.End, AddOnIDs: in.AddOnIDs}
	window := availability.Horizon(daterange.DayOf(now), b.cfg.HorizonMonths)
	snap, err := shared.LoadSnapshot(ctx, tx, l.ID(), window)
	if err != nil {
		return nil, err
	}
	dates := stay.Dates()
	if err := shared.CheckBookable(snap, window, dates); err != nil {
		return nil, err
	}
	quote, err := shared.PriceStay(b.calculator, l, snap, stay, negotiated)
	if err != nil {
		return nil, err
	}

	res, err := b.createWithUniqueCode(ctx, tx, func() (*reservation.Reservation, error) {
		return b.factory.CreateReservation(l, p.UserID, dates, quote, sourceID)
	})
	if err != nil {
		return nil, err
	}

	txn := b.factory.CreateTransaction(res, quote)
	if err := tx.Transactions().Create(ctx, txn); err != nil {
		return nil, err
	}

	if err := shared.Enqueue(ctx, tx, shared.EventReservationCreated, shared.TopicReservations, shared.ReservationChanged(res), now); err != nil {
		return nil, err
	}
	if err := shared.Enqueue(ctx, tx, shared.EventTransactionCreated, shared.TopicTransactions, shared.TransactionChanged(txn), now); err != nil {
		return nil, err
	}

	return &CheckoutResult{
		Reservation:  res,
		Transactions: []*reservation.Transaction{txn},
		Quote:        &quote,
	}, nil
}

// createWithUniqueCode retries the insert with a fresh code while the
// code collides, each attempt in its own savepoint.
func (b *bookingCommandsImpl) createWithUniqueCode(ctx context.Context, tx shared.Tx, build func() (*reservation.Reservation, error)) (*reservation.Reservation, error) {
	attempts := max(1, b.cfg.CodeAttempts)
	for range attempts {
		res, err := build()
		if err != nil {
			return nil, err
		}
		err = tx.Savepoint(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Reservations().Create(ctx, res)
		})
		if err == nil {
			return res, nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, err
		}
	}
	return nil, errs.Mark(ErrCodeAttemptsExhausted, shared.ErrConflict)
}

func hashCheckout(in CheckoutInput) (string, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return "", errs.Wrap(err, "marshal checkout request")
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
