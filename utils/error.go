package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the error body every endpoint returns.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSONError writes the standard error body. Handlers log their own context before
// calling it.
func JSONError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// ErrorHandler recovers from handler panics and answers with the standard error body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					ErrorResponse{Error: "An unexpected error occurred. Please try again later."})
			}
		}()
		c.Next()
	}
}
