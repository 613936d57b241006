//go:build unit

package calendar_test

import (
	"testing"

	"rental-market/internal/domain/availability"
	"rental-market/internal/domain/calendar"
	"rental-market/internal/domain/daterange"
	"rental-market/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) daterange.Day { return daterange.MustParseDay(s) }

func TestSelectionTap(t *testing.T) {
	today := day("2024-06-01")
	price := money.Must(80, "EUR")
	snap := availability.Resolve(
		[]availability.Booking{{Start: day("2024-06-15"), End: day("2024-06-16")}},
		[]availability.Override{{Date: day("2024-06-10"), IsAvailable: true, Price: &price}},
	)

	t.Run("first tap anchors and captures override", func(t *testing.T) {
		s := calendar.Selection{}.Tap(day("2024-06-10"), today, snap)
		require.NotNil(t, s.Start)
		assert.Equal(t, day("2024-06-10"), *s.Start)
		assert.Nil(t, s.End)
		require.NotNil(t, s.OverridePrice)
		assert.Equal(t, price, *s.OverridePrice)
	})

	t.Run("second tap sets end", func(t *testing.T) {
		s := calendar.Selection{}.Tap(day("2024-06-10"), today, snap).Tap(day("2024-06-12"), today, snap)
		require.NotNil(t, s.End)
		assert.Equal(t, day("2024-06-12"), *s.End)
		assert.NotNil(t, s.OverridePrice)
	})

	t.Run("earlier tap re-anchors and refreshes the override", func(t *testing.T) {
		s := calendar.Selection{}.Tap(day("2024-06-10"), today, snap).Tap(day("2024-06-05"), today, snap)
		assert.Equal(t, day("2024-06-05"), *s.Start)
		assert.Nil(t, s.End)
		assert.Nil(t, s.OverridePrice)
	})

	t.Run("tap after a complete range resets", func(t *testing.T) {
		s := calendar.Selection{}.
			Tap(day("2024-06-05"), today, snap).
			Tap(day("2024-06-07"), today, snap).
			Tap(day("2024-06-10"), today, snap)
		assert.Equal(t, day("2024-06-10"), *s.Start)
		assert.Nil(t, s.End)
	})

	t.Run("disabled and past days are ignored", func(t *testing.T) {
		start := calendar.Selection{}.Tap(day("2024-06-10"), today, snap)
		assert.Equal(t, start, start.Tap(day("2024-06-15"), today, snap))
		assert.Equal(t, start, start.Tap(day("2024-05-31"), today, snap))
		assert.Equal(t, calendar.Selection{}, calendar.Selection{}.Tap(day("2024-06-15"), today, snap))
	})
}

func TestSelectionConfirm(t *testing.T) {
	today := day("2024-06-01")
	snap := availability.Resolve(nil, nil)

	t.Run("single day is one unit", func(t *testing.T) {
		r, err := calendar.Selection{}.Tap(day("2024-06-10"), today, snap).Confirm()
		require.NoError(t, err)
		assert.Equal(t, 1, r.Nights())
		assert.Equal(t, day("2024-06-11"), r.End)
	})

	t.Run("same day twice is one unit", func(t *testing.T) {
		r, err := calendar.Selection{}.Tap(day("2024-06-10"), today, snap).Tap(day("2024-06-10"), today, snap).Confirm()
		require.NoError(t, err)
		assert.Equal(t, 1, r.Nights())
	})

	t.Run("range", func(t *testing.T) {
		r, err := calendar.Selection{}.Tap(day("2024-06-10"), today, snap).Tap(day("2024-06-13"), today, snap).Confirm()
		require.NoError(t, err)
		assert.Equal(t, 3, r.Nights())
	})

	t.Run("nothing selected", func(t *testing.T) {
		_, err := calendar.Selection{}.Confirm()
		assert.ErrorIs(t, err, calendar.ErrNothingSelected)
	})
}
