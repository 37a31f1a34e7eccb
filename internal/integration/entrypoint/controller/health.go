// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker func(ctx context.Context) bool
	version         string
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Version   string `json:"version,omitempty"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func(ctx context.Context) bool, version string) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
		version:         version,
	}
}

// Check handles GET /health requests.
// A lost database connection reports 503 so load balancers stop routing here.
func (h *HealthController) Check(c *gin.Context) {
	status, code := "ok", http.StatusOK
	dbStatus := "connected"
	if h.dbHealthChecker == nil || !h.dbHealthChecker(c.Request.Context()) {
		status, code = "degraded", http.StatusServiceUnavailable
		dbStatus = "disconnected"
	}

	c.JSON(code, HealthResponse{
		Status:    status,
		Database:  dbStatus,
		Version:   h.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
