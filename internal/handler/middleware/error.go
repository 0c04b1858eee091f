package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"cuponx-backend/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the envelope recorded by httperr when a handler aborted
// without producing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if last := c.Errors.ByType(gin.ErrorTypePublic).Last(); last != nil {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if len(c.Errors) > 0 {
			slog.Error("unhandled handler error",
				"request_id", GetRequestID(c),
				"path", c.FullPath(),
				"error", c.Errors.Last().Error())
			c.JSON(http.StatusInternalServerError, internalErrorResponse())
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, internalErrorResponse())
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			slog.Error("recovered from panic",
				"error", rec,
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path,
				"stack", string(debug.Stack()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, internalErrorResponse())
		}()
		c.Next()
	}
}

func internalErrorResponse() httperr.Response {
	return httperr.Response{
		Status:  http.StatusInternalServerError,
		Message: "Error interno del servidor",
		Code:    httperr.CodeInternal,
	}
}
