package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findListingByID = `-- name: FindListingByID :one
SELECT id, owner_id, kind, title, base_price, currency, rental_unit, created_at, updated_at
FROM listings
WHERE id = $1
`

func (q *Queries) FindListingByID(ctx context.Context, db DBTX, id uuid.UUID) (Listings, error) {
	row := db.QueryRow(ctx, findListingByID, id)
	var i Listings
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Kind,
		&i.Title,
		&i.BasePrice,
		&i.Currency,
		&i.RentalUnit,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const lockListing = `-- name: LockListing :one
SELECT id FROM listings
WHERE id = $1
FOR UPDATE
`

func (q *Queries) LockListing(ctx context.Context, db DBTX, id uuid.UUID) (uuid.UUID, error) {
	row := db.QueryRow(ctx, lockListing, id)
	var locked uuid.UUID
	err := row.Scan(&locked)
	return locked, err
}

const listAddOnsByListing = `-- name: ListAddOnsByListing :many
SELECT id, listing_id, name, price, pricing_model, created_at
FROM listing_add_ons
WHERE listing_id = $1
ORDER BY created_at, id
`

func (q *Queries) ListAddOnsByListing(ctx context.Context, db DBTX, listingID uuid.UUID) ([]ListingAddOns, error) {
	rows, err := db.Query(ctx, listAddOnsByListing, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListingAddOns
	for rows.Next() {
		var i ListingAddOns
		if err := rows.Scan(
			&i.ID,
			&i.ListingID,
			&i.Name,
			&i.Price,
			&i.PricingModel,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listBlockingBookings = `-- name: ListBlockingBookings :many
SELECT start_date, end_date
FROM reservations
WHERE listing_id = $1
  AND status = ANY($2::text[])
ORDER BY start_date
`

type ListBlockingBookingsParams struct {
	ListingID uuid.UUID `json:"listing_id"`
	Statuses  []string  `json:"statuses"`
}

type ListBlockingBookingsRow struct {
	StartDate pgtype.Date `json:"start_date"`
	EndDate   pgtype.Date `json:"end_date"`
}

func (q *Queries) ListBlockingBookings(ctx context.Context, db DBTX, arg ListBlockingBookingsParams) ([]ListBlockingBookingsRow, error) {
	rows, err := db.Query(ctx, listBlockingBookings, arg.ListingID, arg.Statuses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListBlockingBookingsRow
	for rows.Next() {
		var i ListBlockingBookingsRow
		if err := rows.Scan(&i.StartDate, &i.EndDate); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listOverridesInWindow = `-- name: ListOverridesInWindow :many
SELECT o.listing_id, o.date, o.is_available, o.price, l.currency
FROM availability_overrides o
JOIN listings l ON l.id = o.listing_id
WHERE o.listing_id = $1
  AND o.date BETWEEN $2 AND $3
ORDER BY o.date
`

type ListOverridesInWindowParams struct {
	ListingID uuid.UUID   `json:"listing_id"`
	FromDate  pgtype.Date `json:"from_date"`
	ToDate    pgtype.Date `json:"to_date"`
}

type ListOverridesInWindowRow struct {
	ListingID   uuid.UUID   `json:"listing_id"`
	Date        pgtype.Date `json:"date"`
	IsAvailable bool        `json:"is_available"`
	Price       pgtype.Int8 `json:"price"`
	Currency    string      `json:"currency"`
}

func (q *Queries) ListOverridesInWindow(ctx context.Context, db DBTX, arg ListOverridesInWindowParams) ([]ListOverridesInWindowRow, error) {
	rows, err := db.Query(ctx, listOverridesInWindow, arg.ListingID, arg.FromDate, arg.ToDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListOverridesInWindowRow
	for rows.Next() {
		var i ListOverridesInWindowRow
		if err := rows.Scan(
			&i.ListingID,
			&i.Date,
			&i.IsAvailable,
			&i.Price,
			&i.Currency,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
