package shared

import (
	"context"
	"time"

	"rental-market/internal/domain/auth"
	"rental-market/internal/domain/availability"
	"rental-market/internal/domain/daterange"
	"rental-market/internal/domain/listing"
	"rental-market/internal/domain/money"
	"rental-market/internal/domain/negotiation"
	"rental-market/internal/domain/pricing"
	"rental-market/internal/infra"
	"rental-market/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPastDate = errs.New("dates in the past cannot be booked")

// LoadSnapshot fetches blocking reservations and overrides and resolves
// them. Any fetch failure fails closed: callers never see partial data.
func LoadSnapshot(ctx context.Context, tx Tx, listingID uuid.UUID, window availability.Window) (availability.Snapshot, error) {
	bookings, err := tx.Calendar().BlockingBookings(ctx, listingID)
	if err != nil {
		return availability.Snapshot{}, errs.Mark(errs.Wrap(err, "load bookings"), availability.ErrResolverUnavailable)
	}
	overrides, err := tx.Calendar().Overrides(ctx, listingID, window)
	if err != nil {
		return availability.Snapshot{}, errs.Mark(errs.Wrap(err, "load overrides"), availability.ErrResolverUnavailable)
	}
	return availability.Resolve(bookings, overrides), nil
}

// FindListing maps a missing listing to ErrNotFound.
func FindListing(ctx context.Context, tx Tx, id uuid.UUID) (*listing.Listing, error) {
	l, err := tx.Listings().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, NotFound("listing")
		}
		return nil, err
	}
	return l, nil
}

// AgreedOffer is the accepted offer a booking may carry.
type AgreedOffer struct {
	OfferMessageID uuid.UUID
	Price          money.Money
}

// ResolveAgreedOffer re-derives the negotiated price from the thread the
// message belongs to. messageID may name either the accepted offer or its
// accept message. The buyer must still be inside the reservation window.
func ResolveAgreedOffer(ctx context.Context, tx Tx, p auth.Principal, listingID, messageID uuid.UUID, now time.Time) (*AgreedOffer, error) {
	m, err := tx.Messages().FindByID(ctx, messageID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, NotFound("offer")
		}
		return nil, err
	}
	conv, thread, err := LoadThread(ctx, tx, m.ConversationID(), false)
	if err != nil {
		return nil, err
	}
	if conv.ListingID() != listingID {
		return nil, Invalid("offer belongs to another listing")
	}
	if err := thread.CanReserve(p.UserID, now); err != nil {
		return nil, err
	}
	offer := thread.AcceptedOffer()
	if offer.ID() != messageID && thread.AcceptMessage().ID() != messageID {
		return nil, negotiation.ErrNoAcceptedOffer
	}
	price := thread.AgreedPrice()
	if price == nil {
		return nil, negotiation.ErrNoAcceptedOffer
	}
	return &AgreedOffer{OfferMessageID: offer.ID(), Price: *price}, nil
}

type StayRequest struct {
	Start    daterange.Day
	End      *daterange.Day
	AddOnIDs []uuid.UUID
}

// Dates is the occupied range of the request: a lone start day books one day.
func (r StayRequest) Dates() daterange.Range {
	end := r.Start
	if r.End != nil {
		end = *r.End
	}
	return daterange.Occupied(r.Start, end)
}

// PriceStay applies override > negotiated > base for the start day, then
// the calculator.
func PriceStay(calc pricing.Calculator, l *listing.Listing, snap availability.Snapshot, req StayRequest, negotiated *money.Money) (pricing.Quote, error) {
	if req.End != nil && *req.End < req.Start {
		return pricing.Quote{}, daterange.ErrInvalidRange
	}
	unit, source := pricing.EffectiveUnitPrice(l.BasePrice(), negotiated, snap.OverridePrice(req.Start))
	return calc.Calculate(pricing.Input{
		UnitPrice: unit,
		Source:    source,
		Units:     pricing.Units(req.Start, req.End),
		AddOns:    l.AddOns(),
		Selected:  req.AddOnIDs,
	})
}

// CheckBookable rejects past days, days beyond the horizon and disabled days.
func CheckBookable(snap availability.Snapshot, window availability.Window, dates daterange.Range) error {
	if dates.Start < window.From {
		return errs.Mark(ErrPastDate, ErrValidation)
	}
	if !window.Contains(dates.End.AddDays(-1)) {
		return Invalid("dates are beyond the booking horizon")
	}
	return snap.CheckRange(dates)
}
