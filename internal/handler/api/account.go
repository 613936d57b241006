package api

import (
	"net/http"

	reqdto "rental-market/internal/handler/dto/request"
	resdto "rental-market/internal/handler/dto/response"
	"rental-market/internal/handler/httperr"
	"rental-market/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	cmds commands.AccountCommands
}

func NewAccountHandler(cmds commands.AccountCommands) *AccountHandler {
	return &AccountHandler{cmds: cmds}
}

// @Summary Create user
// @Description Provision an account. Admin only.
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateUserRequest true "New account"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/users [post]
func (h *AccountHandler) Create(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	u, err := h.cmds.Provision(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUser(u))
}
