package api

import (
	"context"
	"net/http"

	"rental-market/internal/domain/auth"
	"rental-market/internal/domain/negotiation"
	reqdto "rental-market/internal/handler/dto/request"
	resdto "rental-market/internal/handler/dto/response"
	"rental-market/internal/handler/httperr"
	"rental-market/internal/usecase/commands"
	"rental-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ConversationHandler struct {
	cmds commands.ConversationCommands
	q    queries.ConversationQueries
}

func NewConversationHandler(cmds commands.ConversationCommands, q queries.ConversationQueries) *ConversationHandler {
	return &ConversationHandler{cmds: cmds, q: q}
}

// @Summary Ensure conversation
// @Description Open the conversation with a listing's owner, or return the existing one
// @Tags conversations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.EnsureConversationRequest true "Listing"
// @Success 200 {object} resdto.EnsureConversationResponse
// @Success 201 {object} resdto.EnsureConversationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/conversations [post]
func (h *ConversationHandler) Ensure(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.EnsureConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Ensure(c.Request.Context(), p, req.ListingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromConversation(result.Conversation, result.Created))
}

// @Summary List conversations
// @Tags conversations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ConversationResponse
// @Router /api/conversations [get]
func (h *ConversationHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	views, err := h.q.List(c.Request.Context(), p)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromConversationViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Conversation messages
// @Description Message history, oldest first
// @Tags conversations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conversation ID"
// @Success 200 {array} resdto.MessageResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/conversations/{id}/messages [get]
func (h *ConversationHandler) Messages(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	conversationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	views, err := h.q.Messages(c.Request.Context(), p, conversationID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromMessageViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Negotiation state
// @Description Derived offer state, composer mode and countdown for the caller
// @Tags conversations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conversation ID"
// @Success 200 {object} resdto.NegotiationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/conversations/{id}/negotiation [get]
func (h *ConversationHandler) Negotiation(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	conversationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Negotiation(c.Request.Context(), p, conversationID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromNegotiationView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Send text message
// @Tags conversations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conversation ID"
// @Param request body reqdto.SendMessageRequest true "Message"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/conversations/{id}/messages [post]
func (h *ConversationHandler) SendText(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	conversationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	msg, err := h.cmds.SendText(c.Request.Context(), p, conversationID, req.Content)
	h.respondMessage(c, msg, err)
}

// @Summary Propose offer
// @Description Propose, counter or reopen an offer with a new price
// @Tags conversations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conversation ID"
// @Param request body reqdto.ProposeOfferRequest true "Offer"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/conversations/{id}/offers [post]
func (h *ConversationHandler) ProposeOffer(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	conversationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.ProposeOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	msg, err := h.cmds.ProposeOffer(c.Request.Context(), p, conversationID, req.ToInput())
	h.respondMessage(c, msg, err)
}

// @Summary Accept offer
// @Tags conversations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conversation ID"
// @Param messageId path string true "Offer message ID"
// @Success 201 {object} resdto.MessageResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/conversations/{id}/offers/{messageId}/accept [post]
func (h *ConversationHandler) AcceptOffer(c *gin.Context) {
	h.answer(c, h.cmds.AcceptOffer)
}

// @Summary Reject offer
// @Tags conversations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conversation ID"
// @Param messageId path string true "Offer message ID"
// @Success 201 {object} resdto.MessageResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/conversations/{id}/offers/{messageId}/reject [post]
func (h *ConversationHandler) RejectOffer(c *gin.Context) {
	h.answer(c, h.cmds.RejectOffer)
}

type answerFunc func(ctx context.Context, p auth.Principal, conversationID, offerID uuid.UUID) (*negotiation.Message, error)

func (h *ConversationHandler) answer(c *gin.Context, fn answerFunc) {
	p, ok := principal(c)
	if !ok {
		return
	}
	conversationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	offerID, ok := uuidParam(c, "messageId")
	if !ok {
		return
	}
	msg, err := fn(c.Request.Context(), p, conversationID, offerID)
	h.respondMessage(c, msg, err)
}

func (h *ConversationHandler) respondMessage(c *gin.Context, msg *negotiation.Message, err error) {
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := queries.ToMessageView(msg)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromMessageView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}
