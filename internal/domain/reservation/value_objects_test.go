//go:build unit

package reservation_test

import (
	"bytes"
	"regexp"
	"testing"

	"rental-market/internal/domain/daterange"
	"rental-market/internal/domain/listing"
	"rental-market/internal/domain/money"
	"rental-market/internal/domain/pricing"
	"rental-market/internal/domain/reservation"
	"rental-market/internal/pkg/clock"
	"rental-market/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^[A-Z]{3}-[A-Z0-9]{4}-[A-Z0-9]{4}$`)

func TestRandomCodeGenerator(t *testing.T) {
	gen := reservation.NewRandomCodeGenerator()
	seen := make(map[reservation.Code]struct{})
	for range 50 {
		c, err := gen.Generate("ldg")
		require.NoError(t, err)
		assert.Regexp(t, codePattern, c.String())
		seen[c] = struct{}{}
	}
	assert.Greater(t, len(seen), 45)

	t.Run("deterministic reader", func(t *testing.T) {
		g := reservation.NewCodeGeneratorFrom(bytes.NewReader([]byte{0, 1, 2, 3, 26, 27, 28, 35}))
		c, err := g.Generate("VHC")
		require.NoError(t, err)
		assert.Equal(t, reservation.Code("VHC-ABCD-0129"), c)
	})

	t.Run("bytes past the last full alphabet cycle are redrawn", func(t *testing.T) {
		g := reservation.NewCodeGeneratorFrom(bytes.NewReader([]byte{252, 0, 1, 2, 3, 26, 27, 28, 255, 251}))
		c, err := g.Generate("VHC")
		require.NoError(t, err)
		assert.Equal(t, reservation.Code("VHC-ABCD-0129"), c)
	})

	t.Run("reader with only rejected bytes fails", func(t *testing.T) {
		g := reservation.NewCodeGeneratorFrom(bytes.NewReader(bytes.Repeat([]byte{254}, 32)))
		_, err := g.Generate("VHC")
		assert.Error(t, err)
	})

	t.Run("short reader fails", func(t *testing.T) {
		g := reservation.NewCodeGeneratorFrom(bytes.NewReader([]byte{1}))
		_, err := g.Generate("VHC")
		assert.Error(t, err)
	})
}

func TestFactory(t *testing.T) {
	clk := clock.NewMockClock(confirmedAt)
	l := builder.NewListingBuilder().WithKind(listing.KindVehicle).BuildDomain()
	dates, err := daterange.New(daterange.MustParseDay("2024-06-10"), daterange.MustParseDay("2024-06-13"))
	require.NoError(t, err)

	quote, err := pricing.NewDefaultCalculator(10).Calculate(pricing.Input{UnitPrice: money.Must(100, "EUR"), Units: 3})
	require.NoError(t, err)

	t.Run("pending reservation with cash part", func(t *testing.T) {
		f := reservation.NewFactory(clk, reservation.NewRandomCodeGenerator(), "")
		offerID := uuid.New()
		r, err := f.CreateReservation(l, uuid.New(), dates, quote, &offerID)
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusPending, r.Status())
		assert.Equal(t, money.Must(300, "EUR"), r.TotalPrice())
		assert.Equal(t, money.Must(30, "EUR"), r.ServiceFee())
		assert.Equal(t, money.Must(270, "EUR"), r.PriceEspece())
		assert.Equal(t, l.OwnerID(), r.OwnerID())
		assert.Equal(t, &offerID, r.SourceOfferMessageID())
		assert.Regexp(t, `^VHC-`, r.Code().String())

		tx := f.CreateTransaction(r, quote)
		assert.Equal(t, money.Must(30, "EUR"), tx.Amount())
		assert.Equal(t, reservation.TxPending, tx.Status())
	})

	t.Run("configured prefix wins", func(t *testing.T) {
		f := reservation.NewFactory(clk, reservation.NewRandomCodeGenerator(), "RM")
		c, err := f.NextCode(listing.KindLodging)
		require.NoError(t, err)
		assert.Regexp(t, `^RM-`, c.String())
	})

	t.Run("owner cannot book own listing", func(t *testing.T) {
		f := reservation.NewFactory(clk, reservation.NewRandomCodeGenerator(), "")
		_, err := f.CreateReservation(l, l.OwnerID(), dates, quote, nil)
		require.ErrorIs(t, err, reservation.ErrSelfBooking)
	})
}
