package queries

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

import (
	"context"
	"time"

	"rental-market/internal/domain/auth"
	"rental-market/internal/domain/reservation"
	"rental-market/internal/infra"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationScope string

const (
	ScopeAll   ReservationScope = "all"
	ScopeGuest ReservationScope = "guest"
	ScopeOwner ReservationScope = "owner"
)

func NewReservationScope(s string) (ReservationScope, error) {
	switch ReservationScope(s) {
	case "":
		return ScopeAll, nil
	case ScopeAll, ScopeGuest, ScopeOwner:
		return ReservationScope(s), nil
	default:
		return "", shared.Invalid("role must be guest, owner or all")
	}
}

type ReservationQueries interface {
	Get(ctx context.Context, p auth.Principal, reservationID uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, p auth.Principal, scope ReservationScope) ([]*ReservationView, error)
	Revenue(ctx context.Context, p auth.Principal, g reservation.Granularity) ([]*RevenueBucketView, error)
}

type ReservationReadStore interface {
	// ListSettlements returns the user's reservations with their
	// transactions, newest stay first.
	ListSettlements(ctx context.Context, userID uuid.UUID, scope ReservationScope) ([]reservation.Settlement, error)
}

type reservationQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore ReservationReadStore
	users     UserReadStore
	clock     clock.Clock
}

func NewReservationQueries(uow shared.UnitOfWork, readStore ReservationReadStore, users UserReadStore, clock clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{
		uow:       uow,
		readStore: readStore,
		users:     users,
		clock:     clock,
	}
}

// Get returns the reservation to its guest or owner. The counterpart's
// contact details are fetched only once the reservation is confirmed and
// paid.
func (q *reservationQueriesImpl) Get(ctx context.Context, p auth.Principal, reservationID uuid.UUID) (*ReservationView, error) {
	var settlement reservation.Settlement
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return shared.NotFound("reservation")
			}
			return err
		}
		if !res.IsParticipant(p.UserID) && !p.IsOperator() {
			return reservation.ErrNotParticipant
		}
		txns, err := tx.Transactions().ListByReservation(ctx, res.ID())
		if err != nil {
			return err
		}
		settlement = reservation.Settlement{Reservation: res, Transactions: txns}
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}

	view := toReservationView(settlement, q.clock.Now())
	res := settlement.Reservation
	if res.CanRevealContacts(settlement.Transactions) && res.IsParticipant(p.UserID) {
		counterpart := res.OwnerID()
		if res.IsOwner(p.UserID) {
			counterpart = res.GuestID()
		}
		contact, err := q.users.FindContact(ctx, counterpart)
		if err != nil {
			return nil, shared.Classify(err)
		}
		view.Counterpart = contact
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, p auth.Principal, scope ReservationScope) ([]*ReservationView, error) {
	settlements, err := q.readStore.ListSettlements(ctx, p.UserID, scope)
	if err != nil {
		return nil, shared.Classify(err)
	}
	now := q.clock.Now()
	views := make([]*ReservationView, 0, len(settlements))
	for _, s := range settlements {
		views = append(views, toReservationView(s, now))
	}
	return views, nil
}

// Revenue buckets the owner's eligible reservations by start date.
func (q *reservationQueriesImpl) Revenue(ctx context.Context, p auth.Principal, g reservation.Granularity) ([]*RevenueBucketView, error) {
	settlements, err := q.readStore.ListSettlements(ctx, p.UserID, ScopeOwner)
	if err != nil {
		return nil, shared.Classify(err)
	}
	buckets, err := reservation.Revenue(settlements, g)
	if err != nil {
		return nil, shared.Classify(err)
	}
	views := make([]*RevenueBucketView, 0, len(buckets))
	for _, b := range buckets {
		views = append(views, &RevenueBucketView{Period: b.Period, Amount: b.Amount, Count: b.Count})
	}
	return views, nil
}

func toReservationView(s reservation.Settlement, now time.Time) *ReservationView {
	r := s.Reservation
	txns := make([]TransactionView, 0, len(s.Transactions))
	for _, t := range s.Transactions {
		txns = append(txns, TransactionView{
			ID:        t.ID(),
			Amount:    t.Amount(),
			Status:    string(t.Status()),
			Method:    string(t.Method()),
			CreatedAt: t.CreatedAt(),
			UpdatedAt: t.UpdatedAt(),
		})
	}
	return &ReservationView{
		ID:                   r.ID(),
		Code:                 r.Code().String(),
		ListingID:            r.ListingID(),
		ListingKind:          string(r.ListingKind()),
		OwnerID:              r.OwnerID(),
		GuestID:              r.GuestID(),
		StartDate:            r.StartDate(),
		EndDate:              r.EndDate(),
		UnitPrice:            r.UnitPrice(),
		TotalPrice:           r.TotalPrice(),
		ServiceFee:           r.ServiceFee(),
		PriceEspece:          r.PriceEspece(),
		Status:               string(r.Status()),
		ArrivalConfirmed:     r.ArrivalConfirmed(),
		CashConfirmed:        r.CashConfirmed(),
		ConfirmedAt:          r.ConfirmedAt(),
		SourceOfferMessageID: r.SourceOfferMessageID(),
		Paid:                 reservation.AnyPaid(s.Transactions),
		CanCancel:            r.CanCancel(now, s.Transactions),
		CancellationDeadline: r.CancellationDeadline(),
		EligibleForPayout:    r.IsEligibleForPayout(s.Transactions),
		Transactions:         txns,
		CreatedAt:            r.CreatedAt(),
		UpdatedAt:            r.UpdatedAt(),
	}
}
