package middleware

import (
	"errors"
	"net/http"

	"go-reskilling-backend/internal/delivery/http/response"
	"go-reskilling-backend/pkg/apperror"
	"go-reskilling-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors pushed into the gin error chain onto the
// response envelope. Tagged domain errors keep their message and kind;
// anything else is logged and hidden behind a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message, string(appErr.Kind))
			return
		}

		logger.Log.Error("unhandled error", "path", c.Request.URL.Path, "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
