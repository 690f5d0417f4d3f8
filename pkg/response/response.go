package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every error response. Errors carries
// field-level validation messages when present.
type ErrorBody struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Error writes an error response with the given status and message.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Message: message})
}

// ValidationError writes a 400 with per-field messages.
func ValidationError(c *gin.Context, status int, details map[string]string) {
	c.JSON(status, ErrorBody{Message: "invalid payload", Errors: details})
}

// AbortError writes an error response and aborts the handler chain; meant
// for middleware.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Message: message})
}
