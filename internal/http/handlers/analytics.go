package handlers

import (
	"log/slog"
	"net/http"

	"github.com/oceanwatch/oceanwatch-be/internal/analytics"
	"github.com/oceanwatch/oceanwatch-be/internal/http/respond"
	"github.com/oceanwatch/oceanwatch-be/internal/middleware"
	"github.com/oceanwatch/oceanwatch-be/internal/storage"
)

const hotspotScanLimit = 1000

// AnalyticsHandler owns the hotspot aggregation endpoint.
type AnalyticsHandler struct {
	reports storage.ReportStore
	logger  *slog.Logger
}

// NewAnalyticsHandler constructs the handler.
func NewAnalyticsHandler(reports storage.ReportStore, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{reports: reports, logger: logger}
}

// Register attaches analytics routes to the mux.
func (h *AnalyticsHandler) Register(mux *http.ServeMux, guard *middleware.Guard) {
	mux.Handle("GET /api/analytics/hotspots", guard.Require()(http.HandlerFunc(h.handleHotspots)))
}

func (h *AnalyticsHandler) handleHotspots(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reports.ListReportsOldestFirst(r.Context(), hotspotScanLimit)
	if err != nil {
		h.logger.Error("scan reports", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to aggregate reports")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"items": analytics.Bucket(reports)})
}
