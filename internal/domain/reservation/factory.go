package reservation

import (
	"rental-market/internal/domain/daterange"
	"rental-market/internal/domain/listing"
	"rental-market/internal/domain/pricing"
	"rental-market/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock      clock.Clock
	Codes      CodeGenerator
	CodePrefix string
}

func NewFactory(clock clock.Clock, codes CodeGenerator, codePrefix string) *Factory {
	return &Factory{
		Clock:      clock,
		Codes:      codes,
		CodePrefix: codePrefix,
	}
}

// CreateReservation builds a pending reservation from a priced quote. The
// cash part of the price is what remains after the amount paid now.
func (f *Factory) CreateReservation(
	l *listing.Listing,
	guestID uuid.UUID,
	dates daterange.Range,
	quote pricing.Quote,
	sourceOfferMessageID *uuid.UUID,
) (*Reservation, error) {
	if l.IsOwnedBy(guestID) {
		return nil, ErrSelfBooking
	}
	if err := dates.Validate(); err != nil {
		return nil, err
	}
	code, err := f.NextCode(l.Kind())
	if err != nil {
		return nil, err
	}

	now := f.Clock.Now()
	return &Reservation{
		id:                   uuid.New(),
		listingID:            l.ID(),
		listingKind:          l.Kind(),
		ownerID:              l.OwnerID(),
		guestID:              guestID,
		startDate:            dates.Start,
		endDate:              dates.End,
		unitPrice:            quote.UnitPrice,
		totalPrice:           quote.GrandTotal,
		serviceFee:           quote.ServiceFeeTotal,
		cashDue:              quote.AmountDueInPerson,
		status:               StatusPending,
		code:                 code,
		sourceOfferMessageID: sourceOfferMessageID,
		createdAt:            now,
		updatedAt:            now,
	}, nil
}

// CreateTransaction declares the amount due now for r.
func (f *Factory) CreateTransaction(r *Reservation, quote pricing.Quote) *Transaction {
	return NewTransaction(r.ID(), quote.AmountDueNow, MethodInApp, f.Clock.Now())
}

func (f *Factory) NextCode(kind listing.Kind) (Code, error) {
	prefix := f.CodePrefix
	if prefix == "" {
		prefix = kind.CodePrefix()
	}
	return f.Codes.Generate(prefix)
}
