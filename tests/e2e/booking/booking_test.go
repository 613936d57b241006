//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"rental-market/internal/domain/daterange"
	"rental-market/internal/domain/listing"
	"rental-market/internal/domain/pricing"
	"rental-market/internal/domain/user"
	"rental-market/internal/handler/dto/request"
	resdto "rental-market/internal/handler/dto/response"
	"rental-market/tests/common/authtest"
	"rental-market/tests/common/dbtest"
	"rental-market/tests/common/httptest"
	"rental-market/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

type bookingSuite struct {
	e2e.SharedSuite

	ownerToken, guestToken, operatorToken string
	listingID                             uuid.UUID
	start, end                            daterange.Day
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	var ownerID uuid.UUID
	ownerID, s.ownerToken = authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleMember))
	_, s.guestToken = authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleMember))
	s.operatorToken = authtest.LoginUser(t, s.Router, "operator@example.com", "password123")
	s.listingID = dbtest.CreateTestListing(t, s.DB, ownerID, string(listing.KindLodging), 100)

	s.start = daterange.DayOf(time.Now().UTC()).AddDays(30)
	s.end = s.start.AddDays(2)
}

func (s *bookingSuite) checkout(token, key string, start, end daterange.Day) *resdto.CheckoutResponse {
	w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, bookingsURL, s.stay(start, end), token,
		map[string]string{"Idempotency-Key": key})
	if w.Code != http.StatusCreated && w.Code != http.StatusOK {
		return nil
	}
	var res resdto.CheckoutResponse
	httptest.AssertSuccessResponse(s.T(), w, w.Code, &res)
	return &res
}

func (s *bookingSuite) stay(start, end daterange.Day) request.CheckoutRequest {
	endStr := end.String()
	return request.CheckoutRequest{
		ListingID:   s.listingID,
		StayRequest: request.StayRequest{StartDate: start.String(), EndDate: &endStr},
	}
}

func (s *bookingSuite) TestCheckout() {
	s.Run("creates a pending reservation with its transaction", func() {
		t := s.T()

		res := s.checkout(s.guestToken, uuid.NewString(), s.start, s.end)
		require.NotNil(t, res)
		require.False(t, res.Replayed)
		require.Equal(t, "pending", res.Reservation.Status)
		require.Equal(t, int64(200), res.Reservation.TotalPrice.Amount)
		require.Len(t, res.Reservation.Transactions, 1)
		require.Nil(t, res.Reservation.Counterpart)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
	})

	s.Run("a repeated key replays the first result", func() {
		t := s.T()
		key := uuid.NewString()

		first := s.checkout(s.guestToken, key, s.start, s.end)
		require.NotNil(t, first)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, s.stay(s.start, s.end), s.guestToken,
			map[string]string{"Idempotency-Key": key})
		var replay resdto.CheckoutResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &replay)
		httptest.AssertHeaders(t, w, map[string]string{"Idempotent-Replayed": "true"})
		require.Equal(t, first.Reservation.ID, replay.Reservation.ID)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "transactions"))
	})

	s.Run("the same key with another body is refused", func() {
		t := s.T()
		key := uuid.NewString()
		require.NotNil(t, s.checkout(s.guestToken, key, s.start, s.end))

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.stay(s.start, s.end.AddDays(1)), s.guestToken, map[string]string{"Idempotency-Key": key})
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("past dates are rejected", func() {
		t := s.T()
		yesterday := daterange.DayOf(time.Now().UTC()).AddDays(-1)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.stay(yesterday, yesterday.AddDays(2)), s.guestToken, map[string]string{"Idempotency-Key": uuid.NewString()})
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *bookingSuite) TestQuote() {
	s.Run("overrides and add-ons price the stay", func() {
		t := s.T()
		overridePrice := int64(150)
		dbtest.SetOverride(t, s.DB, s.listingID, s.start.String(), true, &overridePrice)
		blocked := s.start.AddDays(5)
		dbtest.SetOverride(t, s.DB, s.listingID, blocked.String(), false, nil)
		cleaning := dbtest.CreateTestAddOn(t, s.DB, s.listingID, 10, string(pricing.PerNight))
		quoteURL := fmt.Sprintf("/api/listings/%s/quote", s.listingID)

		stay := s.stay(s.start, s.end).StayRequest
		stay.AddOnIDs = []uuid.UUID{cleaning}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, request.QuoteRequest{StayRequest: stay}, s.guestToken)
		var quote resdto.QuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &quote)
		require.True(t, quote.Available)
		require.Equal(t, string(pricing.SourceOverride), quote.PriceSource)
		require.Equal(t, 2, quote.Units)
		require.Equal(t, int64(300), quote.Base.Amount)
		require.Equal(t, int64(20), quote.AddOnsTotal.Amount)
		require.Equal(t, int64(320), quote.GrandTotal.Amount)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL,
			request.QuoteRequest{StayRequest: s.stay(blocked, blocked.AddDays(1)).StayRequest}, s.guestToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &quote)
		require.False(t, quote.Available)
		require.Equal(t, int64(100), quote.GrandTotal.Amount)
	})
}

func (s *bookingSuite) TestLifecycle() {
	s.Run("confirmed and paid stays block dates and disclose contacts", func() {
		t := s.T()

		booked := s.checkout(s.guestToken, uuid.NewString(), s.start, s.end)
		require.NotNil(t, booked)
		resURL := fmt.Sprintf("/api/reservations/%s", booked.Reservation.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, resURL+"/confirm", nil, s.guestToken)
		require.Equal(t, http.StatusForbidden, w.Code, "only the owner confirms")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, resURL+"/confirm", nil, s.ownerToken)
		var confirmed resdto.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &confirmed)
		require.Equal(t, "confirmed", confirmed.Status)
		require.True(t, confirmed.CanCancel)

		_, otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "late@example.com", string(user.RoleMember))
		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			s.stay(s.start.AddDays(1), s.end.AddDays(1)), otherToken, map[string]string{"Idempotency-Key": uuid.NewString()})
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/api/listings/%s/availability", s.listingID), nil, "")
		var avail resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &avail)
		require.Contains(t, avail.DisabledDates, s.start)
		require.Contains(t, avail.DisabledDates, s.start.AddDays(1))
		require.NotContains(t, avail.DisabledDates, s.end)

		txnURL := fmt.Sprintf("/api/transactions/%s", booked.Reservation.Transactions[0].ID)
		paid := request.UpdateTransactionRequest{Status: "paid"}
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, txnURL, paid, s.guestToken)
		require.Equal(t, http.StatusForbidden, w.Code, "members cannot settle")
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, txnURL, paid, s.operatorToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, resURL, nil, s.guestToken)
		var view resdto.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.True(t, view.Paid)
		require.False(t, view.CanCancel, "paid stays cannot be cancelled")
		require.NotNil(t, view.Counterpart)
		require.Equal(t, "owner@example.com", view.Counterpart.Email)
	})
}
