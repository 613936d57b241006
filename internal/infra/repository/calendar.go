package repository

import (
	"context"

	"rental-market/internal/domain/availability"
	"rental-market/internal/domain/reservation"
	"rental-market/internal/infra"
	"rental-market/internal/infra/pgq"
	"rental-market/internal/infra/repository/converter"
	"rental-market/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CalendarQueries interface {
	ListBlockingBookings(ctx context.Context, db pgq.DBTX, arg pgq.ListBlockingBookingsParams) ([]pgq.ListBlockingBookingsRow, error)
	ListOverridesInWindow(ctx context.Context, db pgq.DBTX, arg pgq.ListOverridesInWindowParams) ([]pgq.ListOverridesInWindowRow, error)
	LockListing(ctx context.Context, db pgq.DBTX, id uuid.UUID) (uuid.UUID, error)
}

type CalendarRepository struct {
	queries CalendarQueries
	db      pgq.DBTX
}

func NewCalendarRepository(queries CalendarQueries, db pgq.DBTX) *CalendarRepository {
	return &CalendarRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CalendarRepository) BlockingBookings(ctx context.Context, listingID uuid.UUID) ([]availability.Booking, error) {
	statuses := reservation.BlockingStatuses()
	params := pgq.ListBlockingBookingsParams{
		ListingID: listingID,
		Statuses:  make([]string, len(statuses)),
	}
	for i, s := range statuses {
		params.Statuses[i] = s.String()
	}

	rows, err := r.queries.ListBlockingBookings(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocking bookings", err)
	}

	bookings := make([]availability.Booking, len(rows))
	for i, row := range rows {
		bookings[i] = converter.BookingFromInfra(row)
	}
	return bookings, nil
}

func (r *CalendarRepository) Overrides(ctx context.Context, listingID uuid.UUID, window availability.Window) ([]availability.Override, error) {
	rows, err := r.queries.ListOverridesInWindow(ctx, r.db, pgq.ListOverridesInWindowParams{
		ListingID: listingID,
		FromDate:  pgconv.DayToPgtype(window.From),
		ToDate:    pgconv.DayToPgtype(window.To),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availability overrides", err)
	}

	overrides := make([]availability.Override, len(rows))
	for i, row := range rows {
		overrides[i] = converter.OverrideFromInfra(row)
	}
	return overrides, nil
}

func (r *CalendarRepository) LockListing(ctx context.Context, listingID uuid.UUID) error {
	if _, err := r.queries.LockListing(ctx, r.db, listingID); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock listing", err)
	}
	return nil
}
