package response

import (
	"github.com/gin-gonic/gin"
)

// Message is the body shape used for non-resource responses; the clothing
// endpoints return resources bare, matching the public API contract.
type Message struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// JSON writes a plain message body.
func JSON(c *gin.Context, status int, message string) {
	c.JSON(status, Message{Message: message})
}

// Error writes an error message body and aborts further handlers.
func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Message{Message: message})
}

// ErrorDetails writes an error message body with per-field details.
func ErrorDetails(c *gin.Context, status int, message string, details map[string]string) {
	c.AbortWithStatusJSON(status, Message{Message: message, Details: details})
}
