//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"rental-market/internal/domain/reservation"
	"rental-market/internal/handler/httperr"
	"rental-market/internal/pkg/errs"
	"rental-market/internal/usecase/shared"
	"rental-market/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", shared.Invalid("bad dates"), http.StatusBadRequest},
		{"unauthenticated", errs.Mark(errors.New("no token"), shared.ErrUnauthenticated), http.StatusUnauthorized},
		{"forbidden", errs.Mark(reservation.ErrNotOwner, shared.ErrForbidden), http.StatusForbidden},
		{"not found", shared.NotFound("listing"), http.StatusNotFound},
		{"conflict", shared.Conflict("taken"), http.StatusConflict},
		{"unavailable", errs.Mark(errors.New("pool closed"), shared.ErrUnavailable), http.StatusServiceUnavailable},
		{"wrapped conflict keeps its category", errs.Wrap(shared.Conflict("taken"), "checkout"), http.StatusConflict},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.Status(tt.err))
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/conflict", func(c *gin.Context) { httperr.Abort(c, shared.Conflict("dates are taken")) })
	router.GET("/boom", func(c *gin.Context) { httperr.Abort(c, errors.New("secret dsn leaked")) })

	t.Run("client errors carry their message", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/conflict", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "dates are taken")
	})

	t.Run("server errors hide theirs", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/boom", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, rec.Body.String(), "secret")
	})
}
