package shared

import (
	"rental-market/internal/domain/auth"
	"rental-market/internal/domain/availability"
	"rental-market/internal/domain/calendar"
	"rental-market/internal/domain/daterange"
	"rental-market/internal/domain/listing"
	"rental-market/internal/domain/money"
	"rental-market/internal/domain/negotiation"
	"rental-market/internal/domain/pricing"
	"rental-market/internal/domain/reservation"
	"rental-market/internal/domain/user"
	"rental-market/internal/infra"
	"rental-market/internal/pkg/errs"
)

// Category marks every error a command or query returns. Handlers branch on
// these with errs.Is and show the wrapped message.
var (
	ErrUnauthenticated = errs.New("authentication required")
	ErrNotFound        = errs.New("not found")
	ErrForbidden       = errs.New("forbidden")
	ErrConflict        = errs.New("conflict")
	ErrValidation      = errs.New("validation failed")
	ErrUnavailable     = errs.New("temporarily unavailable")
	ErrDatabase        = errs.New("database operation failed")
)

var domainCategories = []struct {
	category error
	members  []error
}{
	{ErrUnauthenticated, []error{
		auth.ErrNoPrincipal,
		auth.ErrInvalidCredentials,
	}},
	{ErrForbidden, []error{
		negotiation.ErrNotParticipant,
		negotiation.ErrNotBuyer,
		negotiation.ErrNotCounterpart,
		reservation.ErrNotOwner,
		reservation.ErrNotParticipant,
		reservation.ErrSelfBooking,
	}},
	{ErrConflict, []error{
		negotiation.ErrOfferOutstanding,
		negotiation.ErrThreadClosed,
		negotiation.ErrStaleOffer,
		negotiation.ErrWindowElapsed,
		negotiation.ErrNoAcceptedOffer,
		reservation.ErrInvalidTransition,
		reservation.ErrCancellationWindowClosed,
		reservation.ErrAlreadyPaid,
		reservation.ErrAlreadyCashConfirmed,
		reservation.ErrArrivalConfirmed,
		reservation.ErrArrivalNotConfirmed,
		reservation.ErrStayNotEnded,
		availability.ErrDatesUnavailable,
	}},
	{ErrValidation, []error{
		negotiation.ErrInvalidPrice,
		negotiation.ErrEmptyContent,
		negotiation.ErrInvalidReopen,
		negotiation.ErrSelfConversation,
		negotiation.ErrInvalidMessageType,
		negotiation.ErrInvalidMeta,
		pricing.ErrNegativePrice,
		pricing.ErrInvalidUnits,
		pricing.ErrUnknownAddOn,
		pricing.ErrInvalidModel,
		pricing.ErrNegativeFee,
		money.ErrCurrencyMismatch,
		money.ErrInvalidCurrency,
		money.ErrNegativeAmount,
		money.ErrAmountOverflow,
		daterange.ErrInvalidRange,
		daterange.ErrInvalidDay,
		calendar.ErrNothingSelected,
		listing.ErrInvalidKind,
		listing.ErrInvalidRentalUnit,
		user.ErrInvalidEmail,
		user.ErrInvalidPhone,
		user.ErrPasswordTooWeak,
		user.ErrInvalidRole,
		reservation.ErrInvalidStatus,
		reservation.ErrInvalidGranularity,
	}},
	{ErrUnavailable, []error{
		availability.ErrResolverUnavailable,
	}},
}

// Classify marks err with its category. Repository errors become
// ErrNotFound or ErrDatabase; unknown errors become ErrDatabase.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	for _, c := range []error{ErrUnauthenticated, ErrNotFound, ErrForbidden, ErrConflict, ErrValidation, ErrUnavailable, ErrDatabase} {
		if errs.Is(err, c) {
			return err
		}
	}
	for _, dc := range domainCategories {
		for _, m := range dc.members {
			if errs.Is(err, m) {
				return errs.Mark(err, dc.category)
			}
		}
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrNotFound)
	}
	return errs.Mark(err, ErrDatabase)
}

// NotFound marks err as a missing resource with a readable message.
func NotFound(what string) error {
	return errs.Mark(errs.New(what+" not found"), ErrNotFound)
}

func Forbidden(msg string) error {
	return errs.Mark(errs.New(msg), ErrForbidden)
}

func Invalid(msg string) error {
	return errs.Mark(errs.New(msg), ErrValidation)
}

func Conflict(msg string) error {
	return errs.Mark(errs.New(msg), ErrConflict)
}
