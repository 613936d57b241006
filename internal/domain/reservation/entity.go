package reservation

import (
	"errors"
	"time"

	"rental-market/internal/domain/daterange"
	"rental-market/internal/domain/listing"
	"rental-market/internal/domain/money"

	"github.com/google/uuid"
)

const CancellationWindow = 24 * time.Hour

var (
	ErrInvalidStatus            = errors.New("invalid reservation status")
	ErrInvalidTransition        = errors.New("reservation cannot make this transition from its current status")
	ErrNotOwner                 = errors.New("only the listing owner can do this")
	ErrNotParticipant           = errors.New("user is not a party to this reservation")
	ErrSelfBooking              = errors.New("owners cannot book their own listing")
	ErrCancellationWindowClosed = errors.New("the cancellation window has closed")
	ErrAlreadyPaid              = errors.New("reservation is already paid")
	ErrAlreadyCashConfirmed     = errors.New("cash payment is already confirmed")
	ErrArrivalConfirmed         = errors.New("arrival is already confirmed")
	ErrArrivalNotConfirmed      = errors.New("arrival has not been confirmed")
	ErrStayNotEnded             = errors.New("the stay has not ended yet")
	ErrInvalidGranularity       = errors.New("granularity must be day, month or year")
)

type Reservation struct {
	id                   uuid.UUID
	listingID            uuid.UUID
	listingKind          listing.Kind
	ownerID              uuid.UUID
	guestID              uuid.UUID
	startDate            daterange.Day
	endDate              daterange.Day
	unitPrice            money.Money
	totalPrice           money.Money
	serviceFee           money.Money
	cashDue              money.Money
	status               Status
	arrivalConfirmed     bool
	cashConfirmed        bool
	confirmedAt          *time.Time
	code                 Code
	sourceOfferMessageID *uuid.UUID
	createdAt            time.Time
	updatedAt            time.Time
}

func ReconstructReservation(
	id, listingID uuid.UUID,
	listingKind listing.Kind,
	ownerID, guestID uuid.UUID,
	startDate, endDate daterange.Day,
	unitPrice, totalPrice, serviceFee, cashDue money.Money,
	status Status,
	arrivalConfirmed, cashConfirmed bool,
	confirmedAt *time.Time,
	code Code,
	sourceOfferMessageID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:                   id,
		listingID:            listingID,
		listingKind:          listingKind,
		ownerID:              ownerID,
		guestID:              guestID,
		startDate:            startDate,
		endDate:              endDate,
		unitPrice:            unitPrice,
		totalPrice:           totalPrice,
		serviceFee:           serviceFee,
		cashDue:              cashDue,
		status:               status,
		arrivalConfirmed:     arrivalConfirmed,
		cashConfirmed:        cashConfirmed,
		confirmedAt:          confirmedAt,
		code:                 code,
		sourceOfferMessageID: sourceOfferMessageID,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// Occupancy is the calendar range the reservation blocks.
func (r *Reservation) Occupancy() daterange.Range {
	return daterange.Occupied(r.startDate, r.endDate)
}

func (r *Reservation) IsOwner(userID uuid.UUID) bool {
	return r.ownerID == userID
}

func (r *Reservation) IsParticipant(userID uuid.UUID) bool {
	return r.ownerID == userID || r.guestID == userID
}

// CancellationDeadline counts from confirmation, or creation while pending.
func (r *Reservation) CancellationDeadline() time.Time {
	anchor := r.createdAt
	if r.confirmedAt != nil {
		anchor = *r.confirmedAt
	}
	return anchor.Add(CancellationWindow)
}

// Confirm moves pending to confirmed and starts the cancellation clock.
func (r *Reservation) Confirm(actor uuid.UUID, now time.Time) error {
	if !r.IsOwner(actor) {
		return ErrNotOwner
	}
	if r.status != StatusPending {
		return ErrInvalidTransition
	}
	r.status = StatusConfirmed
	r.confirmedAt = &now
	r.updatedAt = now
	return nil
}

// CheckCancel returns the first reason cancellation is refused, or nil.
func (r *Reservation) CheckCancel(now time.Time, txns []*Transaction) error {
	if r.status != StatusPending && r.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	if !now.Before(r.CancellationDeadline()) {
		return ErrCancellationWindowClosed
	}
	if AnyPaid(txns) {
		return ErrAlreadyPaid
	}
	if r.cashConfirmed {
		return ErrAlreadyCashConfirmed
	}
	if r.arrivalConfirmed {
		return ErrArrivalConfirmed
	}
	return nil
}

func (r *Reservation) CanCancel(now time.Time, txns []*Transaction) bool {
	return r.CheckCancel(now, txns) == nil
}

func (r *Reservation) Cancel(actor uuid.UUID, now time.Time, txns []*Transaction) error {
	if !r.IsParticipant(actor) {
		return ErrNotParticipant
	}
	if err := r.CheckCancel(now, txns); err != nil {
		return err
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

// MarkCashConfirmed only flips the cash flag. It is allowed even when no
// cash is due.
func (r *Reservation) MarkCashConfirmed(actor uuid.UUID, now time.Time) error {
	if !r.IsOwner(actor) {
		return ErrNotOwner
	}
	if r.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	if r.cashConfirmed {
		return ErrAlreadyCashConfirmed
	}
	r.cashConfirmed = true
	r.updatedAt = now
	return nil
}

func (r *Reservation) ConfirmArrival(actor uuid.UUID, now time.Time) error {
	if !r.IsOwner(actor) {
		return ErrNotOwner
	}
	if r.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	if r.arrivalConfirmed {
		return ErrArrivalConfirmed
	}
	r.arrivalConfirmed = true
	r.updatedAt = now
	return nil
}

// Complete closes a stay whose last occupied day is behind today.
func (r *Reservation) Complete(actor uuid.UUID, now time.Time) error {
	if !r.IsOwner(actor) {
		return ErrNotOwner
	}
	if r.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	if !r.arrivalConfirmed {
		return ErrArrivalNotConfirmed
	}
	if daterange.DayOf(now) < r.Occupancy().End {
		return ErrStayNotEnded
	}
	r.status = StatusCompleted
	r.updatedAt = now
	return nil
}

// CashDue reports whether part of the price is settled in person.
func (r *Reservation) CashDue() bool {
	return r.cashDue.Amount > 0
}

// IsEligibleForPayout requires confirmation, arrival, a paid transaction and
// settled cash, all at once.
func (r *Reservation) IsEligibleForPayout(txns []*Transaction) bool {
	confirmed := r.status.IsConfirmed()
	arrivalOK := r.arrivalConfirmed
	paid := AnyPaid(txns)
	cashOK := !r.CashDue() || r.cashConfirmed
	return confirmed && arrivalOK && paid && cashOK
}

// CanRevealContacts gates the counterpart's email and phone.
func (r *Reservation) CanRevealContacts(txns []*Transaction) bool {
	return r.status.IsConfirmed() && AnyPaid(txns)
}

// OwnerEarnings is the total less the platform service fee.
func (r *Reservation) OwnerEarnings() (money.Money, error) {
	return r.totalPrice.Sub(r.serviceFee)
}

func (r *Reservation) AssignCode(c Code) {
	r.code = c
}

func (r *Reservation) ID() uuid.UUID                    { return r.id }
func (r *Reservation) ListingID() uuid.UUID             { return r.listingID }
func (r *Reservation) ListingKind() listing.Kind        { return r.listingKind }
func (r *Reservation) OwnerID() uuid.UUID               { return r.ownerID }
func (r *Reservation) GuestID() uuid.UUID               { return r.guestID }
func (r *Reservation) StartDate() daterange.Day         { return r.startDate }
func (r *Reservation) EndDate() daterange.Day           { return r.endDate }
func (r *Reservation) UnitPrice() money.Money           { return r.unitPrice }
func (r *Reservation) TotalPrice() money.Money          { return r.totalPrice }
func (r *Reservation) ServiceFee() money.Money          { return r.serviceFee }
func (r *Reservation) PriceEspece() money.Money         { return r.cashDue }
func (r *Reservation) Status() Status                   { return r.status }
func (r *Reservation) ArrivalConfirmed() bool           { return r.arrivalConfirmed }
func (r *Reservation) CashConfirmed() bool              { return r.cashConfirmed }
func (r *Reservation) ConfirmedAt() *time.Time          { return r.confirmedAt }
func (r *Reservation) Code() Code                       { return r.code }
func (r *Reservation) SourceOfferMessageID() *uuid.UUID { return r.sourceOfferMessageID }
func (r *Reservation) CreatedAt() time.Time             { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time             { return r.updatedAt }
