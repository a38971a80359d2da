package handlers

import (
	"net/http"
	"time"

	"github.com/oceanwatch/oceanwatch-be/internal/http/respond"
)

// HealthHandler serves the service banner and liveness endpoints.
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler creates the banner/health handler.
func NewHealthHandler(startedAt time.Time) *HealthHandler {
	return &HealthHandler{startedAt: startedAt}
}

// Register wires the handler into a ServeMux.
func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handleBanner)
	mux.HandleFunc("GET /health", h.handleHealth)
}

func (h *HealthHandler) handleBanner(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "OceanWatch Hazard API",
		"status":  "running",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"users":     "/api/register, /api/login",
			"reports":   "/api/report, /api/reports",
			"social":    "/api/social-media",
			"admin":     "/api/admin/users, /api/admin/reports, /api/admin/social",
			"analytics": "/api/analytics/hotspots",
		},
	})
}

func (h *HealthHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"uptime": time.Since(h.startedAt).Truncate(time.Second).String(),
	})
}
