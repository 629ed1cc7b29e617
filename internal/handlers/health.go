package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker is implemented by dependencies that can report their health
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// HealthHandler handles health check requests
type HealthHandler struct {
	version  string
	checkers []HealthChecker
}

// NewHealthHandler creates a health handler; every checker must pass for a healthy status
func NewHealthHandler(version string, checkers ...HealthChecker) *HealthHandler {
	return &HealthHandler{version: version, checkers: checkers}
}

// Health reports service health
// GET /api/v1/health
func (h *HealthHandler) Health(c *gin.Context) {
	status, code := "healthy", http.StatusOK
	for _, checker := range h.checkers {
		if err := checker.HealthCheck(c.Request.Context()); err != nil {
			status, code = "degraded", http.StatusServiceUnavailable
			break
		}
	}

	c.PureJSON(code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
	})
}
