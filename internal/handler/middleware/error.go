package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"rental-market/internal/handler/httperr"
	"rental-market/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const errorStackLines = 12

// ErrorHandler answers for handlers that recorded an error with c.Error
// without writing a response. Public errors carry their prepared response;
// anything else is mapped by its category.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		if last.IsType(gin.ErrorTypePublic) {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		status := httperr.Status(last.Err)
		if status >= http.StatusInternalServerError {
			slog.Error("request failed",
				"path", c.Request.URL.Path,
				"request_id", GetRequestID(c),
				"error", last.Err.Error(),
				"stack", errs.ExtractStackLines(last.Err, errorStackLines))
		}
		httperr.Abort(c, last.Err)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"panic", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
					"stack", string(debug.Stack()))

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
