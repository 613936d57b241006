//go:build unit

package pricing_test

import (
	"math"
	"testing"

	"rental-market/internal/domain/daterange"
	"rental-market/internal/domain/money"
	"rental-market/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eur(v int64) money.Money { return money.Must(v, "EUR") }

func TestEffectiveUnitPrice(t *testing.T) {
	base := eur(100)
	negotiated := eur(70)
	override := eur(80)

	tests := []struct {
		name       string
		negotiated *money.Money
		override   *money.Money
		want       money.Money
		source     pricing.Source
	}{
		{name: "override beats negotiated and base", negotiated: &negotiated, override: &override, want: override, source: pricing.SourceOverride},
		{name: "negotiated beats base", negotiated: &negotiated, want: negotiated, source: pricing.SourceNegotiated},
		{name: "base when nothing else", want: base, source: pricing.SourceBase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, src := pricing.EffectiveUnitPrice(base, tt.negotiated, tt.override)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.source, src)
		})
	}
}

func TestUnits(t *testing.T) {
	start := daterange.MustParseDay("2024-06-10")
	same := start
	three := start.AddDays(3)
	before := start.AddDays(-2)

	assert.Equal(t, 1, pricing.Units(start, nil))
	assert.Equal(t, 1, pricing.Units(start, &same))
	assert.Equal(t, 3, pricing.Units(start, &three))
	assert.Equal(t, 1, pricing.Units(start, &before))
}

func TestCalculate(t *testing.T) {
	perNight := pricing.AddOn{ID: uuid.New(), Name: "breakfast", Price: eur(10), Model: pricing.PerNight}
	perStay := pricing.AddOn{ID: uuid.New(), Name: "cleaning", Price: eur(25), Model: pricing.PerStay}
	addOns := []pricing.AddOn{perNight, perStay}

	t.Run("add-on totals", func(t *testing.T) {
		calc := pricing.NewDefaultCalculator(0)
		got, err := calc.Calculate(pricing.Input{
			UnitPrice: eur(100),
			Source:    pricing.SourceBase,
			Units:     3,
			AddOns:    addOns,
			Selected:  []uuid.UUID{perNight.ID, perStay.ID},
		})
		require.NoError(t, err)

		want := pricing.Quote{
			UnitPrice:         eur(100),
			Source:            pricing.SourceBase,
			Units:             3,
			Base:              eur(300),
			AddOnsTotal:       eur(55),
			GrandTotal:        eur(355),
			ServiceFeeTotal:   eur(0),
			AmountDueNow:      eur(0),
			AmountDueInPerson: eur(355),
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Quote mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("service fee splits the total", func(t *testing.T) {
		calc := pricing.NewDefaultCalculator(15)
		got, err := calc.Calculate(pricing.Input{UnitPrice: eur(100), Units: 2})
		require.NoError(t, err)
		assert.Equal(t, eur(30), got.ServiceFeeTotal)
		assert.Equal(t, eur(30), got.AmountDueNow)
		assert.Equal(t, eur(170), got.AmountDueInPerson)
	})

	t.Run("amount due in person is clamped at zero", func(t *testing.T) {
		calc := pricing.NewDefaultCalculator(500)
		got, err := calc.Calculate(pricing.Input{UnitPrice: eur(100), Units: 1})
		require.NoError(t, err)
		assert.Equal(t, eur(0), got.AmountDueInPerson)
		assert.Equal(t, eur(500), got.AmountDueNow)
	})

	t.Run("deterministic", func(t *testing.T) {
		calc := pricing.NewDefaultCalculator(5)
		in := pricing.Input{UnitPrice: eur(90), Units: 4, AddOns: addOns, Selected: []uuid.UUID{perStay.ID}}
		a, err := calc.Calculate(in)
		require.NoError(t, err)
		b, err := calc.Calculate(in)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("duplicate selection counts once", func(t *testing.T) {
		calc := pricing.NewDefaultCalculator(0)
		got, err := calc.Calculate(pricing.Input{
			UnitPrice: eur(100), Units: 1, AddOns: addOns,
			Selected: []uuid.UUID{perStay.ID, perStay.ID},
		})
		require.NoError(t, err)
		assert.Equal(t, eur(25), got.AddOnsTotal)
	})

	errCases := []struct {
		name  string
		in    pricing.Input
		errIs error
	}{
		{name: "zero units", in: pricing.Input{UnitPrice: eur(100), Units: 0}, errIs: pricing.ErrInvalidUnits},
		{name: "negative price", in: pricing.Input{UnitPrice: eur(-1), Units: 1}, errIs: pricing.ErrNegativePrice},
		{name: "unknown add-on", in: pricing.Input{UnitPrice: eur(100), Units: 1, Selected: []uuid.UUID{uuid.New()}}, errIs: pricing.ErrUnknownAddOn},
		{name: "base wraps int64", in: pricing.Input{UnitPrice: eur(math.MaxInt64 / 2), Units: 3}, errIs: pricing.ErrAmountOverflow},
		{
			name: "per-night add-on wraps int64",
			in: pricing.Input{
				UnitPrice: eur(100), Units: 4,
				AddOns:   []pricing.AddOn{{ID: perNight.ID, Price: eur(math.MaxInt64 / 3), Model: pricing.PerNight}},
				Selected: []uuid.UUID{perNight.ID},
			},
			errIs: pricing.ErrAmountOverflow,
		},
		{
			name: "add-ons push the total past int64",
			in: pricing.Input{
				UnitPrice: eur(math.MaxInt64 - 10), Units: 1,
				AddOns:   []pricing.AddOn{{ID: perStay.ID, Price: eur(25), Model: pricing.PerStay}},
				Selected: []uuid.UUID{perStay.ID},
			},
			errIs: pricing.ErrAmountOverflow,
		},
		{
			name: "currency mismatch",
			in: pricing.Input{
				UnitPrice: eur(100), Units: 1,
				AddOns:   []pricing.AddOn{{ID: perStay.ID, Price: money.Must(5, "USD"), Model: pricing.PerStay}},
				Selected: []uuid.UUID{perStay.ID},
			},
			errIs: pricing.ErrCurrencyMismatch,
		},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pricing.NewDefaultCalculator(0).Calculate(tc.in)
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}
