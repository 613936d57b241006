package api

import (
	"net/http"

	reqdto "rental-market/internal/handler/dto/request"
	resdto "rental-market/internal/handler/dto/response"
	"rental-market/internal/handler/httperr"
	"rental-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	q queries.ListingQueries
}

func NewListingHandler(q queries.ListingQueries) *ListingHandler {
	return &ListingHandler{q: q}
}

// @Summary Listing availability
// @Description Disabled dates and per-date prices over the booking horizon
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/listings/{id}/availability [get]
func (h *ListingHandler) Availability(c *gin.Context) {
	listingID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Availability(c.Request.Context(), listingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromAvailabilityView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Price quote
// @Description Price a stay with add-ons and an optional accepted offer
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.QuoteRequest true "Stay"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/listings/{id}/quote [post]
func (h *ListingHandler) Quote(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	listingID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	view, err := h.q.Quote(c.Request.Context(), p, listingID, in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromQuoteView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Calendar tap
// @Description Apply one tap to the client's calendar selection
// @Tags listings
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body reqdto.SelectDayRequest true "Selection and tapped day"
// @Success 200 {object} resdto.SelectionResponse
// @Failure 400 {object} httperr.Response
// @Router /api/listings/{id}/calendar/select [post]
func (h *ListingHandler) SelectDay(c *gin.Context) {
	listingID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.SelectDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	view, err := h.q.SelectDay(c.Request.Context(), listingID, in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromSelectionView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
