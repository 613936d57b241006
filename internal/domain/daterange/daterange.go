package daterange

import (
	"errors"
	"time"
)

var (
	ErrInvalidRange = errors.New("daterange: end must be after start")
	ErrInvalidDay   = errors.New("daterange: invalid date")
)

const layout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Day is a calendar date counted in days since 1970-01-01.
type Day int32

// DayOf takes the calendar date of t in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay)
}

func NewDay(year int, month time.Month, day int) Day {
	return DayOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, ErrInvalidDay
	}
	return DayOf(t), nil
}

func MustParseDay(s string) Day {
	d, err := ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns midnight UTC of the day.
func (d Day) Time() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

func (d Day) String() string {
	return d.Time().Format(layout)
}

func (d Day) AddDays(n int) Day {
	return d + Day(n)
}

func (d Day) AddMonths(n int) Day {
	return DayOf(d.Time().AddDate(0, n, 0))
}

// Sub returns the number of days from other to d.
func (d Day) Sub(other Day) int {
	return int(d - other)
}

func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(b []byte) error {
	parsed, err := ParseDay(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Range is the half-open interval [Start, End).
type Range struct {
	Start Day
	End   Day
}

func New(start, end Day) (Range, error) {
	r := Range{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Occupied is the range a stored booking blocks. A degenerate booking with
// end <= start still blocks its start day.
func Occupied(start, end Day) Range {
	if end <= start {
		end = start.AddDays(1)
	}
	return Range{Start: start, End: end}
}

func (r Range) Validate() error {
	if r.End <= r.Start {
		return ErrInvalidRange
	}
	return nil
}

func (r Range) Nights() int {
	return r.End.Sub(r.Start)
}

func (r Range) Days() []Day {
	if r.End <= r.Start {
		return nil
	}
	days := make([]Day, 0, r.Nights())
	for d := r.Start; d < r.End; d++ {
		days = append(days, d)
	}
	return days
}

func (r Range) Contains(d Day) bool {
	return d >= r.Start && d < r.End
}

func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}
