//go:build unit || e2e

package builder

import (
	"time"

	"rental-market/internal/domain/daterange"
	"rental-market/internal/domain/listing"
	"rental-market/internal/domain/money"
	"rental-market/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID               uuid.UUID
	ListingID        uuid.UUID
	OwnerID          uuid.UUID
	GuestID          uuid.UUID
	Start            daterange.Day
	End              daterange.Day
	UnitPrice        int64
	TotalPrice       int64
	ServiceFee       int64
	PriceEspece      int64
	Currency         string
	Status           reservation.Status
	ArrivalConfirmed bool
	CashConfirmed    bool
	ConfirmedAt      *time.Time
	CreatedAt        time.Time
	SourceOffer      *uuid.UUID
}

func NewReservationBuilder() *ReservationBuilder {
	created := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:         uuid.New(),
		ListingID:  uuid.New(),
		OwnerID:    uuid.New(),
		GuestID:    uuid.New(),
		Start:      daterange.MustParseDay("2024-06-10"),
		End:        daterange.MustParseDay("2024-06-12"),
		UnitPrice:  100,
		TotalPrice: 200,
		ServiceFee: 20,
		Currency:   "EUR",
		Status:     reservation.StatusPending,
		CreatedAt:  created,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithDates(start, end string) *ReservationBuilder {
	b.Start = daterange.MustParseDay(start)
	b.End = daterange.MustParseDay(end)
	return b
}

// Confirmed marks the reservation confirmed at the given instant.
func (b *ReservationBuilder) Confirmed(at time.Time) *ReservationBuilder {
	b.Status = reservation.StatusConfirmed
	b.ConfirmedAt = &at
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) WithCashDue(amount int64) *ReservationBuilder {
	b.PriceEspece = amount
	return b
}

func (b *ReservationBuilder) WithArrival() *ReservationBuilder {
	b.ArrivalConfirmed = true
	return b
}

func (b *ReservationBuilder) WithCashConfirmed() *ReservationBuilder {
	b.CashConfirmed = true
	return b
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	m := func(v int64) money.Money { return money.Must(v, b.Currency) }
	return reservation.ReconstructReservation(
		b.ID, b.ListingID, listing.KindLodging, b.OwnerID, b.GuestID,
		b.Start, b.End,
		m(b.UnitPrice), m(b.TotalPrice), m(b.ServiceFee), m(b.PriceEspece),
		b.Status, b.ArrivalConfirmed, b.CashConfirmed, b.ConfirmedAt,
		reservation.Code("LDG-TEST-0001"), b.SourceOffer,
		b.CreatedAt, b.CreatedAt,
	)
}

func PaidTransaction(reservationID uuid.UUID) *reservation.Transaction {
	return TransactionWithStatus(reservationID, reservation.TxPaid)
}

func TransactionWithStatus(reservationID uuid.UUID, status reservation.TransactionStatus) *reservation.Transaction {
	now := time.Now().UTC()
	return reservation.ReconstructTransaction(
		uuid.New(), reservationID, money.Must(20, "EUR"), status, reservation.MethodInApp, now, now,
	)
}
