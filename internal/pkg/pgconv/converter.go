// Package pgconv maps domain values to pgtype columns and back. Timestamps
// are read back in UTC; NULL columns become nil pointers.
package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"rental-market/internal/domain/daterange"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// orNull returns the zero column, which pgtype treats as NULL, for nil.
func orNull[T, C any](v *T, to func(T) C) C {
	if v == nil {
		var null C
		return null
	}
	return to(*v)
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID { return pgtype.UUID{Bytes: id, Valid: true} }

func StringToPgtype(s string) pgtype.Text { return pgtype.Text{String: s, Valid: true} }

func TimeToPgtype(t time.Time) pgtype.Timestamptz { return pgtype.Timestamptz{Time: t, Valid: true} }

func DayToPgtype(d daterange.Day) pgtype.Date { return pgtype.Date{Time: d.Time(), Valid: true} }

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID { return orNull(id, UUIDToPgtype) }

func StringPtrToPgtype(s *string) pgtype.Text { return orNull(s, StringToPgtype) }

func TimePtrToPgtype(t *time.Time) pgtype.Timestamptz { return orNull(t, TimeToPgtype) }

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time.UTC()
}

func DayFromPgtype(pd pgtype.Date) daterange.Day {
	return daterange.DayOf(pd.Time)
}

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	t := pt.Time.UTC()
	return &t
}

// IsNoRows accepts both database/sql and pgx flavours of "no rows".
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
