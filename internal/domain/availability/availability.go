package availability

import (
	"errors"
	"slices"

	"rental-market/internal/domain/daterange"
	"rental-market/internal/domain/money"
)

var (
	// ErrResolverUnavailable is returned instead of a partial snapshot.
	ErrResolverUnavailable = errors.New("availability resolver unavailable")
	ErrDatesUnavailable    = errors.New("selected dates are not available")
)

// Override is a per-date exception set by the owner. At most one per date.
type Override struct {
	Date        daterange.Day
	IsAvailable bool
	Price       *money.Money
}

// Booking is the stored [start, end) of a blocking reservation.
type Booking struct {
	Start daterange.Day
	End   daterange.Day
}

// Window bounds the override fetch: today through today + HorizonMonths.
type Window struct {
	From daterange.Day
	To   daterange.Day
}

func Horizon(today daterange.Day, months int) Window {
	return Window{From: today, To: today.AddMonths(months)}
}

func (w Window) Contains(d daterange.Day) bool {
	return d >= w.From && d <= w.To
}

// Snapshot is replaced wholesale on every recomputation.
type Snapshot struct {
	disabled    map[daterange.Day]struct{}
	priceByDate map[daterange.Day]money.Money
}

// Resolve merges blocking reservations and overrides. Reservation blocks are
// never lifted by an override.
func Resolve(bookings []Booking, overrides []Override) Snapshot {
	s := Snapshot{
		disabled:    make(map[daterange.Day]struct{}),
		priceByDate: make(map[daterange.Day]money.Money),
	}
	for _, b := range bookings {
		for _, d := range daterange.Occupied(b.Start, b.End).Days() {
			s.disabled[d] = struct{}{}
		}
	}
	for _, o := range overrides {
		if !o.IsAvailable {
			s.disabled[o.Date] = struct{}{}
		}
		if o.Price != nil {
			s.priceByDate[o.Date] = *o.Price
		}
	}
	return s
}

func (s Snapshot) IsDisabled(d daterange.Day) bool {
	_, ok := s.disabled[d]
	return ok
}

// OverridePrice returns the per-date price, or nil when none is set.
func (s Snapshot) OverridePrice(d daterange.Day) *money.Money {
	p, ok := s.priceByDate[d]
	if !ok {
		return nil
	}
	return &p
}

func (s Snapshot) DisabledDates() []daterange.Day {
	out := make([]daterange.Day, 0, len(s.disabled))
	for d := range s.disabled {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

func (s Snapshot) PriceByDate() map[daterange.Day]money.Money {
	out := make(map[daterange.Day]money.Money, len(s.priceByDate))
	for d, p := range s.priceByDate {
		out[d] = p
	}
	return out
}

// CheckRange fails if any day of r is disabled.
func (s Snapshot) CheckRange(r daterange.Range) error {
	for _, d := range r.Days() {
		if s.IsDisabled(d) {
			return ErrDatesUnavailable
		}
	}
	return nil
}
