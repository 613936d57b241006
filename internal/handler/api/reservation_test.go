//go:build unit

package api_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"rental-market/internal/domain/daterange"
	"rental-market/internal/domain/money"
	"rental-market/internal/domain/reservation"
	"rental-market/internal/domain/user"
	"rental-market/internal/handler/api"
	resdto "rental-market/internal/handler/dto/response"
	"rental-market/internal/pkg/errs"
	"rental-market/internal/usecase/commands"
	"rental-market/internal/usecase/queries"
	"rental-market/internal/usecase/shared"
	"rental-market/tests/common/builder"
	"rental-market/tests/common/httptest"
	commandsmock "rental-market/tests/mock/commands"
	queriesmock "rental-market/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockBooking *commandsmock.MockBookingCommands
	mockCmds    *commandsmock.MockReservationCommands
	mockQueries *queriesmock.MockReservationQueries
	guest       string
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBooking = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockCmds = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	handler := api.NewReservationHandler(s.mockBooking, s.mockCmds, s.mockQueries)

	s.guest = "guest-token"
	mw := authMiddleware(tokenTable{s.guest: newPrincipal(user.RoleMember)})

	authed := s.router.Group("/api", mw.RequireAuth())
	authed.POST("/bookings", handler.Checkout)
	authed.GET("/reservations", handler.List)
	authed.GET("/reservations/:id", handler.Get)
	authed.POST("/reservations/:id/cancel", handler.Cancel)
	authed.POST("/reservations/:id/complete", handler.Complete)
	authed.GET("/owners/me/revenue", handler.Revenue)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) view(id uuid.UUID, status reservation.Status) *queries.ReservationView {
	eur := func(v int64) money.Money { return money.Must(v, "EUR") }
	return &queries.ReservationView{
		ID:          id,
		Code:        "ABCD2345",
		StartDate:   daterange.MustParseDay("2024-06-10"),
		EndDate:     daterange.MustParseDay("2024-06-12"),
		UnitPrice:   eur(100),
		TotalPrice:  eur(200),
		ServiceFee:  eur(0),
		PriceEspece: eur(0),
		Status:      string(status),
		Transactions: []queries.TransactionView{
			{ID: uuid.New(), Amount: eur(200), Status: "pending", Method: "in_app"},
		},
		CreatedAt: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (s *ReservationHandlerTestSuite) checkoutBody(listingID uuid.UUID) map[string]any {
	return map[string]any{
		"listing_id": listingID.String(),
		"start_date": "2024-06-10",
		"end_date":   "2024-06-12",
	}
}

func (s *ReservationHandlerTestSuite) performCheckout(body any, key string) *nethttptest.ResponseRecorder {
	return httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/api/bookings", body, s.guest,
		map[string]string{"Idempotency-Key": key})
}

func (s *ReservationHandlerTestSuite) TestCheckout() {
	listingID := uuid.New()
	key := uuid.New()
	res := builder.NewReservationBuilder().BuildDomain()

	s.Run("success: 201 for a new booking", func() {
		s.mockBooking.EXPECT().
			Checkout(gomock.Any(), gomock.Any(), gomock.Any(), key).
			DoAndReturn(func(_ any, _ any, in commands.CheckoutInput, _ uuid.UUID) (*commands.CheckoutResult, error) {
				s.Equal(listingID, in.ListingID)
				s.Equal(daterange.MustParseDay("2024-06-10"), in.Start)
				s.Require().NotNil(in.End)
				s.Equal(daterange.MustParseDay("2024-06-12"), *in.End)
				return &commands.CheckoutResult{Reservation: res}, nil
			})
		s.mockQueries.EXPECT().Get(gomock.Any(), gomock.Any(), res.ID()).
			Return(s.view(res.ID(), reservation.StatusPending), nil)

		rec := s.performCheckout(s.checkoutBody(listingID), key.String())

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.False(body.Replayed)
		s.Equal(res.ID(), body.Reservation.ID)
		s.Len(body.Reservation.Transactions, 1)
		s.Empty(rec.Header().Get("Idempotent-Replayed"))
	})

	s.Run("success: 200 and replay header for a repeated key", func() {
		s.mockBooking.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any(), key).
			Return(&commands.CheckoutResult{Reservation: res, IsReplayed: true}, nil)
		s.mockQueries.EXPECT().Get(gomock.Any(), gomock.Any(), res.ID()).
			Return(s.view(res.ID(), reservation.StatusPending), nil)

		rec := s.performCheckout(s.checkoutBody(listingID), key.String())

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Replayed)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 without a usable idempotency key", func() {
		for _, k := range []string{"", "not-a-uuid"} {
			rec := s.performCheckout(s.checkoutBody(listingID), k)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
		}
	})

	s.Run("error: 400 on malformed dates", func() {
		body := s.checkoutBody(listingID)
		body["start_date"] = "10/06/2024"
		rec := s.performCheckout(body, key.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"dates taken", errs.Mark(errs.New("selected dates are not available"), shared.ErrConflict), http.StatusConflict, "not available"},
			{"key reused", errs.Mark(commands.ErrIdempotencyKeyReused, shared.ErrConflict), http.StatusConflict, "different request"},
			{"self booking", errs.Mark(reservation.ErrSelfBooking, shared.ErrForbidden), http.StatusForbidden, "own listing"},
			{"unknown listing", shared.NotFound("listing"), http.StatusNotFound, ""},
			{"code space exhausted", errs.Mark(commands.ErrCodeAttemptsExhausted, shared.ErrConflict), http.StatusConflict, "retry"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockBooking.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any(), key).Return(nil, tc.err)

				rec := s.performCheckout(s.checkoutBody(listingID), key.String())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestTransitions() {
	id := uuid.New()
	url := "/api/reservations/" + id.String()

	s.Run("success: cancel reloads the reservation", func() {
		s.mockCmds.EXPECT().Cancel(gomock.Any(), gomock.Any(), id).Return(nil, nil)
		s.mockQueries.EXPECT().Get(gomock.Any(), gomock.Any(), id).
			Return(s.view(id, reservation.StatusCancelled), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/cancel", nil, s.guest)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(string(reservation.StatusCancelled), body.Status)
	})

	s.Run("error: 409 once the window closed", func() {
		s.mockCmds.EXPECT().Cancel(gomock.Any(), gomock.Any(), id).
			Return(nil, errs.Mark(reservation.ErrCancellationWindowClosed, shared.ErrConflict))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/cancel", nil, s.guest)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cancellation window")
	})

	s.Run("error: 403 when completing as the guest", func() {
		s.mockCmds.EXPECT().Complete(gomock.Any(), gomock.Any(), id).
			Return(nil, errs.Mark(reservation.ErrNotOwner, shared.ErrForbidden))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/complete", nil, s.guest)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "owner")
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations/nope/cancel", nil, s.guest)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id format")
	})
}

func (s *ReservationHandlerTestSuite) TestList() {
	s.Run("success: passes the role scope", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), queries.ScopeOwner).
			Return([]*queries.ReservationView{s.view(uuid.New(), reservation.StatusConfirmed)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations?role=owner", nil, s.guest)

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 400 on an unknown scope", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations?role=landlord", nil, s.guest)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "role")
	})
}

func (s *ReservationHandlerTestSuite) TestRevenue() {
	s.Run("success: defaults to monthly buckets", func() {
		s.mockQueries.EXPECT().Revenue(gomock.Any(), gomock.Any(), reservation.ByMonth).
			Return([]*queries.RevenueBucketView{{Period: "2024-06", Amount: money.Must(300, "EUR"), Count: 2}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/owners/me/revenue", nil, s.guest)

		var body []resdto.RevenueBucketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("2024-06", body[0].Period)
		s.Equal(int64(300), body[0].Amount.Amount)
	})

	s.Run("error: 400 on an unknown granularity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/owners/me/revenue?granularity=week", nil, s.guest)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "granularity")
	})
}
