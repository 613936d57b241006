package httperr

import (
	"net/http"

	"rental-market/internal/pkg/errs"
	"rental-market/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

var statusByCategory = []struct {
	category error
	status   int
}{
	{shared.ErrValidation, http.StatusBadRequest},
	{shared.ErrUnauthenticated, http.StatusUnauthorized},
	{shared.ErrForbidden, http.StatusForbidden},
	{shared.ErrNotFound, http.StatusNotFound},
	{shared.ErrConflict, http.StatusConflict},
	{shared.ErrUnavailable, http.StatusServiceUnavailable},
}

// Status maps a usecase error category to its HTTP status.
func Status(err error) int {
	for _, s := range statusByCategory {
		if errs.Is(err, s.category) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// Abort answers with the status of err's category. Server errors never leak
// their message.
func Abort(c *gin.Context, err error) {
	status := Status(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	AbortWithError(c, status, err, msg, nil)
}
