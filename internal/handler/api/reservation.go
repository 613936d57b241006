package api

import (
	"context"
	"net/http"

	"rental-market/internal/domain/auth"
	"rental-market/internal/domain/reservation"
	reqdto "rental-market/internal/handler/dto/request"
	resdto "rental-market/internal/handler/dto/response"
	"rental-market/internal/handler/httperr"
	"rental-market/internal/usecase/commands"
	"rental-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

type ReservationHandler struct {
	booking commands.BookingCommands
	cmds    commands.ReservationCommands
	q       queries.ReservationQueries
}

func NewReservationHandler(booking commands.BookingCommands, cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		booking: booking,
		cmds:    cmds,
		q:       q,
	}
}

// @Summary Checkout
// @Description Create a reservation and its transaction atomically. Replays return the first result.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CheckoutRequest true "Booking"
// @Success 201 {object} resdto.CheckoutResponse
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/bookings [post]
func (h *ReservationHandler) Checkout(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	idempotencyKey, err := uuid.Parse(c.GetHeader(idempotencyKeyHeader))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key header must be a UUID", nil)
		return
	}

	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	result, err := h.booking.Checkout(c.Request.Context(), p, in, idempotencyKey)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	res, err := h.load(c.Request.Context(), p, result.Reservation.ID())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
		c.Header("Idempotent-Replayed", "true")
	}
	c.JSON(status, resdto.CheckoutResponse{Reservation: res, Replayed: result.IsReplayed})
}

// @Summary Get reservation
// @Description Reservation with its transactions. Counterpart contacts appear once it is confirmed and paid.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	res, err := h.load(c.Request.Context(), p, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List reservations
// @Description The caller's reservations as guest, owner or both
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param role query string false "guest, owner or all"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	scope, err := queries.NewReservationScope(c.Query("role"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	views, err := h.q.List(c.Request.Context(), p, scope)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromReservationViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Owner revenue
// @Description Eligible revenue bucketed by stay start date
// @Tags owners
// @Produce json
// @Security BearerAuth
// @Param granularity query string false "day, month or year"
// @Success 200 {array} resdto.RevenueBucketResponse
// @Failure 400 {object} httperr.Response
// @Router /api/owners/me/revenue [get]
func (h *ReservationHandler) Revenue(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	g, err := reservation.NewGranularity(c.DefaultQuery("granularity", "month"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}
	views, err := h.q.Revenue(c.Request.Context(), p, g)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromRevenueViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Confirm reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/confirm [post]
func (h *ReservationHandler) Confirm(c *gin.Context) {
	h.transition(c, h.cmds.Confirm)
}

// @Summary Cancel reservation
// @Description Guest or owner, within 24h of confirmation and before any payment or arrival
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.Cancel)
}

// @Summary Confirm cash received
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/cash-confirmation [post]
func (h *ReservationHandler) MarkCashConfirmed(c *gin.Context) {
	h.transition(c, h.cmds.MarkCashConfirmed)
}

// @Summary Confirm guest arrival
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/arrival-confirmation [post]
func (h *ReservationHandler) ConfirmArrival(c *gin.Context) {
	h.transition(c, h.cmds.ConfirmArrival)
}

// @Summary Complete reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/complete [post]
func (h *ReservationHandler) Complete(c *gin.Context) {
	h.transition(c, h.cmds.Complete)
}

type transitionFunc func(ctx context.Context, p auth.Principal, reservationID uuid.UUID) (*reservation.Reservation, error)

func (h *ReservationHandler) transition(c *gin.Context, fn transitionFunc) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if _, err := fn(c.Request.Context(), p, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := h.load(c.Request.Context(), p, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ReservationHandler) load(ctx context.Context, p auth.Principal, id uuid.UUID) (*resdto.ReservationResponse, error) {
	view, err := h.q.Get(ctx, p, id)
	if err != nil {
		return nil, err
	}
	return resdto.FromReservationView(view)
}
