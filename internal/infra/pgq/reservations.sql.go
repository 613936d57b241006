package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, listing_id, listing_kind, owner_id, guest_id, start_date, end_date, currency,
       unit_price, total_price, service_fee, price_espece, status, arrival_confirmation,
       espece_confirmation, confirmed_at, reservation_code, source_offer_message_id, created_at, updated_at`

const createReservation = `-- name: CreateReservation :exec
INSERT INTO reservations (` + reservationColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
`

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg Reservations) error {
	_, err := db.Exec(ctx, createReservation,
		arg.ID,
		arg.ListingID,
		arg.ListingKind,
		arg.OwnerID,
		arg.GuestID,
		arg.StartDate,
		arg.EndDate,
		arg.Currency,
		arg.UnitPrice,
		arg.TotalPrice,
		arg.ServiceFee,
		arg.PriceEspece,
		arg.Status,
		arg.ArrivalConfirmation,
		arg.EspeceConfirmation,
		arg.ConfirmedAt,
		arg.ReservationCode,
		arg.SourceOfferMessageID,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const findReservationByID = `-- name: FindReservationByID :one
SELECT ` + reservationColumns + `
FROM reservations
WHERE id = $1
`

func (q *Queries) FindReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (Reservations, error) {
	return scanReservation(db.QueryRow(ctx, findReservationByID, id))
}

const lockReservation = `-- name: LockReservation :one
SELECT ` + reservationColumns + `
FROM reservations
WHERE id = $1
FOR UPDATE
`

func (q *Queries) LockReservation(ctx context.Context, db DBTX, id uuid.UUID) (Reservations, error) {
	return scanReservation(db.QueryRow(ctx, lockReservation, id))
}

const updateReservation = `-- name: UpdateReservation :execrows
UPDATE reservations
SET status = $2,
    arrival_confirmation = $3,
    espece_confirmation = $4,
    confirmed_at = $5,
    updated_at = $6
WHERE id = $1
`

type UpdateReservationParams struct {
	ID                  uuid.UUID          `json:"id"`
	Status              string             `json:"status"`
	ArrivalConfirmation bool               `json:"arrival_confirmation"`
	EspeceConfirmation  bool               `json:"espece_confirmation"`
	ConfirmedAt         pgtype.Timestamptz `json:"confirmed_at"`
	UpdatedAt           pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg UpdateReservationParams) (int64, error) {
	result, err := db.Exec(ctx, updateReservation,
		arg.ID,
		arg.Status,
		arg.ArrivalConfirmation,
		arg.EspeceConfirmation,
		arg.ConfirmedAt,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listReservationsByUser = `-- name: ListReservationsByUser :many
SELECT ` + reservationColumns + `
FROM reservations
WHERE ($2::boolean AND guest_id = $1) OR ($3::boolean AND owner_id = $1)
ORDER BY start_date DESC, id
`

type ListReservationsByUserParams struct {
	UserID       uuid.UUID `json:"user_id"`
	IncludeGuest bool      `json:"include_guest"`
	IncludeOwner bool      `json:"include_owner"`
}

func (q *Queries) ListReservationsByUser(ctx context.Context, db DBTX, arg ListReservationsByUserParams) ([]Reservations, error) {
	rows, err := db.Query(ctx, listReservationsByUser, arg.UserID, arg.IncludeGuest, arg.IncludeOwner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Reservations
	for rows.Next() {
		i, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanReservation(row interface{ Scan(dest ...any) error }) (Reservations, error) {
	var i Reservations
	err := row.Scan(
		&i.ID,
		&i.ListingID,
		&i.ListingKind,
		&i.OwnerID,
		&i.GuestID,
		&i.StartDate,
		&i.EndDate,
		&i.Currency,
		&i.UnitPrice,
		&i.TotalPrice,
		&i.ServiceFee,
		&i.PriceEspece,
		&i.Status,
		&i.ArrivalConfirmation,
		&i.EspeceConfirmation,
		&i.ConfirmedAt,
		&i.ReservationCode,
		&i.SourceOfferMessageID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
