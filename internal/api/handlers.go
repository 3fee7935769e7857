package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Version is reported by the health endpoint.
const Version = "v1.0.0"

// HealthHandler reports whether the API and its local store are usable.
type HealthHandler struct {
	checkStorage func(ctx context.Context) error
}

// NewHealthHandler creates a HealthHandler. checkStorage may be nil.
func NewHealthHandler(checkStorage func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{checkStorage: checkStorage}
}

func (h *HealthHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/health", h.HealthCheck)
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if h.checkStorage != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.checkStorage(ctx); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "local storage is unavailable",
				"version": Version,
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Recipe Finder API is running",
		"version": Version,
	})
}
