package queries

//go:generate mockgen -source=listing.go -destination=../../../tests/mock/queries/listing.go -package=queriesmock

import (
	"context"

	"rental-market/internal/domain/auth"
	"rental-market/internal/domain/availability"
	"rental-market/internal/domain/calendar"
	"rental-market/internal/domain/daterange"
	"rental-market/internal/domain/money"
	"rental-market/internal/domain/pricing"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/pkg/config"
	"rental-market/internal/pkg/errs"
	"rental-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type QuoteInput struct {
	Start          daterange.Day
	End            *daterange.Day
	AddOnIDs       []uuid.UUID
	OfferMessageID *uuid.UUID
}

// SelectionInput is the client's current calendar selection plus the tapped day.
type SelectionInput struct {
	Start *daterange.Day
	End   *daterange.Day
	Tap   daterange.Day
}

type ListingQueries interface {
	Availability(ctx context.Context, listingID uuid.UUID) (*AvailabilityView, error)
	Quote(ctx context.Context, p auth.Principal, listingID uuid.UUID, in QuoteInput) (*QuoteView, error)
	SelectDay(ctx context.Context, listingID uuid.UUID, in SelectionInput) (*SelectionView, error)
}

type listingQueriesImpl struct {
	uow        shared.UnitOfWork
	calculator pricing.Calculator
	clock      clock.Clock
	cfg        config.BookingConfig
}

func NewListingQueries(uow shared.UnitOfWork, calculator pricing.Calculator, clock clock.Clock, cfg config.BookingConfig) ListingQueries {
	return &listingQueriesImpl{
		uow:        uow,
		calculator: calculator,
		clock:      clock,
		cfg:        cfg,
	}
}

func (q *listingQueriesImpl) window() availability.Window {
	return availability.Horizon(daterange.DayOf(q.clock.Now()), q.cfg.HorizonMonths)
}

// Availability recomputes the whole snapshot on every call.
func (q *listingQueriesImpl) Availability(ctx context.Context, listingID uuid.UUID) (*AvailabilityView, error) {
	window := q.window()
	var view *AvailabilityView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := shared.FindListing(ctx, tx, listingID)
		if err != nil {
			return err
		}
		snap, err := shared.LoadSnapshot(ctx, tx, l.ID(), window)
		if err != nil {
			return err
		}
		view = &AvailabilityView{
			ListingID:     l.ID(),
			From:          window.From,
			To:            window.To,
			DisabledDates: snap.DisabledDates(),
			PriceByDate:   snap.PriceByDate(),
		}
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return view, nil
}

// Quote prices a stay the way checkout would. Unavailable dates still get
// a price with Available false.
func (q *listingQueriesImpl) Quote(ctx context.Context, p auth.Principal, listingID uuid.UUID, in QuoteInput) (*QuoteView, error) {
	window := q.window()
	var view *QuoteView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := shared.FindListing(ctx, tx, listingID)
		if err != nil {
			return err
		}
		var negotiated *money.Money
		if in.OfferMessageID != nil {
			agreed, err := shared.ResolveAgreedOffer(ctx, tx, p, l.ID(), *in.OfferMessageID, q.clock.Now())
			if err != nil {
				return err
			}
			negotiated = &agreed.Price
		}
		snap, err := shared.LoadSnapshot(ctx, tx, l.ID(), window)
		if err != nil {
			return err
		}

		stay := shared.StayRequest{Start: in.Start, End: in.End, AddOnIDs: in.AddOnIDs}
		quote, err := shared.PriceStay(q.calculator, l, snap, stay, negotiated)
		if err != nil {
			return err
		}
		dates := stay.Dates()
		available := true
		if err := shared.CheckBookable(snap, window, dates); err != nil {
			if !errs.Is(err, availability.ErrDatesUnavailable) && !errs.Is(err, shared.ErrValidation) {
				return err
			}
			available = false
		}
		view = toQuoteView(l.ID(), dates, available, quote)
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return view, nil
}

func (q *listingQueriesImpl) SelectDay(ctx context.Context, listingID uuid.UUID, in SelectionInput) (*SelectionView, error) {
	window := q.window()
	var snap availability.Snapshot
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := shared.FindListing(ctx, tx, listingID)
		if err != nil {
			return err
		}
		snap, err = shared.LoadSnapshot(ctx, tx, l.ID(), window)
		return err
	})
	if err != nil {
		return nil, shared.Classify(err)
	}

	current := calendar.Selection{Start: in.Start, End: in.End}
	if in.Start != nil {
		current.OverridePrice = snap.OverridePrice(*in.Start)
	}
	next := current.Tap(in.Tap, window.From, snap)
	return &SelectionView{
		StartDate:     next.Start,
		EndDate:       next.End,
		OverridePrice: next.OverridePrice,
		Complete:      next.Start != nil && next.End != nil,
	}, nil
}

func toQuoteView(listingID uuid.UUID, dates daterange.Range, available bool, quote pricing.Quote) *QuoteView {
	return &QuoteView{
		ListingID:         listingID,
		StartDate:         dates.Start,
		EndDate:           dates.End,
		Available:         available,
		UnitPrice:         quote.UnitPrice,
		PriceSource:       string(quote.Source),
		Units:             quote.Units,
		Base:              quote.Base,
		AddOnsTotal:       quote.AddOnsTotal,
		GrandTotal:        quote.GrandTotal,
		ServiceFeeTotal:   quote.ServiceFeeTotal,
		AmountDueNow:      quote.AmountDueNow,
		AmountDueInPerson: quote.AmountDueInPerson,
	}
}
