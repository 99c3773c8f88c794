package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HAMZAJAWED12/voiceiq-AI/util"
)

const defaultMaxBodySize = 50 * 1024 * 1024 // 50MB, audio uploads are large

// BodySizeLimit restricts the request body to the given size string
// (e.g. "50MB", "512KB").
func BodySizeLimit(maxSize string) gin.HandlerFunc {
	size := util.ParseSize(maxSize, defaultMaxBodySize)
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, size)
		c.Next()
	}
}
