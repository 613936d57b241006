//go:build unit

package daterange_test

import (
	"encoding/json"
	"testing"
	"time"

	"rental-market/internal/domain/daterange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay(t *testing.T) {
	t.Run("parse and format round trip", func(t *testing.T) {
		d, err := daterange.ParseDay("2024-02-29")
		require.NoError(t, err)
		assert.Equal(t, "2024-02-29", d.String())
		assert.Equal(t, "2024-03-01", d.AddDays(1).String())
	})

	t.Run("calendar date is taken in the value's location", func(t *testing.T) {
		paris := time.FixedZone("CEST", 2*60*60)
		late := time.Date(2024, 6, 10, 23, 30, 0, 0, paris)
		assert.Equal(t, "2024-06-10", daterange.DayOf(late).String())
	})

	t.Run("invalid text", func(t *testing.T) {
		_, err := daterange.ParseDay("10/06/2024")
		assert.ErrorIs(t, err, daterange.ErrInvalidDay)
	})

	t.Run("json uses ISO dates", func(t *testing.T) {
		var got struct {
			D daterange.Day `json:"d"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"d":"2024-06-10"}`), &got))
		assert.Equal(t, daterange.NewDay(2024, time.June, 10), got.D)

		b, err := json.Marshal(got)
		require.NoError(t, err)
		assert.JSONEq(t, `{"d":"2024-06-10"}`, string(b))
	})

	t.Run("add months clamps like time.AddDate", func(t *testing.T) {
		d := daterange.MustParseDay("2024-01-15")
		assert.Equal(t, "2025-07-15", d.AddMonths(18).String())
	})
}

func TestRange(t *testing.T) {
	start := daterange.MustParseDay("2024-06-10")
	end := daterange.MustParseDay("2024-06-12")

	t.Run("half-open days", func(t *testing.T) {
		r, err := daterange.New(start, end)
		require.NoError(t, err)
		assert.Equal(t, 2, r.Nights())
		assert.Equal(t, []daterange.Day{start, start.AddDays(1)}, r.Days())
		assert.False(t, r.Contains(end))
	})

	t.Run("end must follow start", func(t *testing.T) {
		_, err := daterange.New(end, start)
		assert.ErrorIs(t, err, daterange.ErrInvalidRange)
		_, err = daterange.New(start, start)
		assert.ErrorIs(t, err, daterange.ErrInvalidRange)
	})

	t.Run("degenerate occupancy blocks the start day", func(t *testing.T) {
		r := daterange.Occupied(start, start)
		assert.Equal(t, []daterange.Day{start}, r.Days())
		r = daterange.Occupied(start, start.AddDays(-3))
		assert.Equal(t, []daterange.Day{start}, r.Days())
	})

	t.Run("overlap", func(t *testing.T) {
		a := daterange.Occupied(start, end)
		assert.True(t, a.Overlaps(daterange.Occupied(start.AddDays(1), end.AddDays(1))))
		assert.False(t, a.Overlaps(daterange.Occupied(end, end.AddDays(2))))
	})
}
