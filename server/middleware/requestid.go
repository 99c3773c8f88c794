package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextRequestID is the Gin context key holding the request ID.
const ContextRequestID = "request_id"

// RequestID injects a unique X-Request-Id header into every request and
// response, honoring an inbound header when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(ContextRequestID, id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

// GetRequestID returns the request ID stored by RequestID, or "" if the
// middleware did not run.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextRequestID)
}
