package reservation

import (
	"cmp"
	"slices"

	"rental-market/internal/domain/daterange"
	"rental-market/internal/domain/money"
)

// Settlement is a reservation together with its transactions.
type Settlement struct {
	Reservation  *Reservation
	Transactions []*Transaction
}

type RevenueBucket struct {
	Period string
	Amount money.Money
	Count  int
}

// Revenue sums owner earnings of eligible reservations, bucketed by the
// start date. Ineligible reservations are skipped.
func Revenue(settlements []Settlement, g Granularity) ([]RevenueBucket, error) {
	type key struct {
		period   string
		currency string
	}
	buckets := make(map[key]*RevenueBucket)
	for _, s := range settlements {
		if !s.Reservation.IsEligibleForPayout(s.Transactions) {
			continue
		}
		earned, err := s.Reservation.OwnerEarnings()
		if err != nil {
			return nil, err
		}
		period, err := periodOf(s.Reservation.StartDate(), g)
		if err != nil {
			return nil, err
		}
		k := key{period: period, currency: earned.Currency}
		b, ok := buckets[k]
		if !ok {
			b = &RevenueBucket{Period: period, Amount: money.Zero(earned.Currency)}
			buckets[k] = b
		}
		if b.Amount, err = b.Amount.Add(earned); err != nil {
			return nil, err
		}
		b.Count++
	}

	out := make([]RevenueBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	slices.SortFunc(out, func(a, b RevenueBucket) int {
		return cmp.Or(cmp.Compare(a.Period, b.Period), cmp.Compare(a.Amount.Currency, b.Amount.Currency))
	})
	return out, nil
}

func periodOf(d daterange.Day, g Granularity) (string, error) {
	t := d.Time()
	switch g {
	case ByDay:
		return t.Format("2006-01-02"), nil
	case ByMonth:
		return t.Format("2006-01"), nil
	case ByYear:
		return t.Format("2006"), nil
	default:
		return "", ErrInvalidGranularity
	}
}
