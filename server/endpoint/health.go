package endpoint

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HAMZAJAWED12/voiceiq-AI/provider"
)

// ComponentHealth reports one backend's availability.
type ComponentHealth struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Health returns a handler reporting service health. Each provider's
// IsAvailable result becomes a component entry; any unavailable backend
// degrades the overall status but the service stays up, matching the
// pipeline's soft-failure policy.
func Health(serviceName string, providers ...provider.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		components := make([]ComponentHealth, 0, len(providers))
		for _, p := range providers {
			ch := ComponentHealth{Name: p.Name(), Status: "healthy"}
			if !p.IsAvailable(c.Request.Context()) {
				ch.Status = "unavailable"
				status = "degraded"
			}
			components = append(components, ch)
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     status,
			"service":    serviceName,
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"components": components,
		})
	}
}
