//go:build unit

package money_test

import (
	"math"
	"testing"

	"rental-market/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiply(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		times  int64
		want   int64
		errIs  error
	}{
		{name: "regular stay", amount: 12050, times: 3, want: 36150},
		{name: "zero amount", amount: 0, times: math.MaxInt64, want: 0},
		{name: "zero times", amount: math.MaxInt64, times: 0, want: 0},
		{name: "largest price over a long stay", amount: money.MaxAmount, times: 550, want: money.MaxAmount * 550},
		{name: "wraps past max", amount: math.MaxInt64 / 2, times: 3, errIs: money.ErrAmountOverflow},
		{name: "wraps past min", amount: math.MinInt64 / 2, times: 3, errIs: money.ErrAmountOverflow},
		{name: "negating min", amount: -1, times: math.MinInt64, errIs: money.ErrAmountOverflow},
		{name: "min times minus one", amount: math.MinInt64, times: -1, errIs: money.ErrAmountOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Must(tt.amount, "EUR").Multiply(tt.times)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, money.Must(tt.want, "EUR"), got)
		})
	}
}

func TestAddSub(t *testing.T) {
	eur := func(v int64) money.Money { return money.Must(v, "EUR") }

	sum, err := eur(150).Add(eur(25))
	require.NoError(t, err)
	assert.Equal(t, eur(175), sum)

	diff, err := eur(150).Sub(eur(200))
	require.NoError(t, err)
	assert.Equal(t, eur(-50), diff)

	_, err = eur(math.MaxInt64).Add(eur(1))
	require.ErrorIs(t, err, money.ErrAmountOverflow)

	_, err = eur(math.MinInt64).Add(eur(-1))
	require.ErrorIs(t, err, money.ErrAmountOverflow)

	_, err = eur(math.MinInt64).Sub(eur(1))
	require.ErrorIs(t, err, money.ErrAmountOverflow)

	_, err = eur(math.MaxInt64).Sub(eur(-1))
	require.ErrorIs(t, err, money.ErrAmountOverflow)

	_, err = eur(1).Add(money.Must(1, "USD"))
	require.ErrorIs(t, err, money.ErrCurrencyMismatch)
}
