package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"health-research-cms/internal/delivery/http/response"
	"health-research-cms/internal/domain"
	"health-research-cms/pkg/apperror"
	"health-research-cms/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached to the gin context into the
// standard envelope. AppError codes and messages pass through; anything
// else is logged and answered with a generic 500 so internals never
// leak to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed",
					slog.String("path", c.FullPath()),
					slog.String("error", err.Error()),
				)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		if errors.Is(err, domain.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Resource not found", nil)
			return
		}

		logger.Log.Error("unhandled error",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
