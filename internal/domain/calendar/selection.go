package calendar

import (
	"errors"

	"rental-market/internal/domain/availability"
	"rental-market/internal/domain/daterange"
	"rental-market/internal/domain/money"
)

var ErrNothingSelected = errors.New("no start date selected")

// Selection is the two-tap range picker state.
type Selection struct {
	Start         *daterange.Day
	End           *daterange.Day
	OverridePrice *money.Money
}

// Tap applies one tap on day d. Disabled and past days are ignored.
func (s Selection) Tap(d, today daterange.Day, snap availability.Snapshot) Selection {
	if d < today || snap.IsDisabled(d) {
		return s
	}
	switch {
	case s.Start == nil, s.End != nil:
		return anchor(d, snap)
	case d < *s.Start:
		return anchor(d, snap)
	default:
		end := d
		return Selection{Start: s.Start, End: &end, OverridePrice: s.OverridePrice}
	}
}

// Confirm turns the selection into a booking range. A start with no end is
// a one-unit booking.
func (s Selection) Confirm() (daterange.Range, error) {
	if s.Start == nil {
		return daterange.Range{}, ErrNothingSelected
	}
	end := *s.Start
	if s.End != nil {
		end = *s.End
	}
	return daterange.Occupied(*s.Start, end), nil
}

func anchor(d daterange.Day, snap availability.Snapshot) Selection {
	start := d
	return Selection{Start: &start, OverridePrice: snap.OverridePrice(d)}
}
