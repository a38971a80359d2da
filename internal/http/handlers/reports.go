package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oceanwatch/oceanwatch-be/internal/auth"
	"github.com/oceanwatch/oceanwatch-be/internal/http/respond"
	"github.com/oceanwatch/oceanwatch-be/internal/media"
	"github.com/oceanwatch/oceanwatch-be/internal/middleware"
	"github.com/oceanwatch/oceanwatch-be/internal/models"
	"github.com/oceanwatch/oceanwatch-be/internal/models/dto"
	"github.com/oceanwatch/oceanwatch-be/internal/observability"
	"github.com/oceanwatch/oceanwatch-be/internal/storage"
)

// listReportsCap bounds the store query; the bbox post-filter runs after the
// cap, so matching reports outside the newest 500 are invisible to bbox
// queries. Documented limitation, kept intentionally.
const listReportsCap = 500

// ReportHandler owns report submission, querying, and verification.
type ReportHandler struct {
	reports  storage.ReportStore
	uploader *media.Uploader
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// NewReportHandler constructs the handler. uploader may be nil when no object
// store is configured; media_base64 payloads are then ignored.
func NewReportHandler(reports storage.ReportStore, uploader *media.Uploader, metrics *observability.Metrics, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, uploader: uploader, metrics: metrics, logger: logger}
}

// Register attaches report routes to the mux.
func (h *ReportHandler) Register(mux *http.ServeMux, guard *middleware.Guard) {
	anyRole := guard.Require()
	mux.Handle("POST /api/report", anyRole(http.HandlerFunc(h.handleCreate)))
	mux.Handle("GET /api/reports", anyRole(http.HandlerFunc(h.handleList)))

	verifiers := guard.Require(models.RoleOfficial, models.RoleAnalyst, models.RoleAdmin)
	mux.Handle("PUT /api/report/{id}/verify", verifiers(http.HandlerFunc(h.handleVerify)))
}

func (h *ReportHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFrom(r.Context())

	var req dto.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.EventType == "" || req.Description == "" || req.Latitude == nil || req.Longitude == nil {
		respond.Error(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	mediaURL := req.MediaURL
	if req.MediaBase64 != "" && mediaURL == "" && h.uploader != nil {
		uploaded, err := h.uploader.Upload(r.Context(), req.MediaBase64, "reports/")
		if err != nil {
			h.metrics.MediaUploads.WithLabelValues("error").Inc()
			h.logger.Error("media upload", "error", err)
			respond.Error(w, http.StatusInternalServerError, "failed to store media")
			return
		}
		if uploaded == "" {
			// Malformed data URL: proceed without media.
			h.metrics.MediaUploads.WithLabelValues("skipped").Inc()
		} else {
			h.metrics.MediaUploads.WithLabelValues("stored").Inc()
			mediaURL = uploaded
		}
	}

	report := models.Report{
		ID:          uuid.NewString(),
		UserID:      claims.Subject,
		EventType:   req.EventType,
		Description: req.Description,
		Geolocation: models.Geolocation{Lat: *req.Latitude, Lng: *req.Longitude},
		Timestamp:   models.FormatTimestamp(time.Now()),
		Verified:    false,
		Source:      "citizen",
	}
	if mediaURL != "" {
		report.MediaURL = &mediaURL
	}

	if err := h.reports.CreateReport(r.Context(), report); err != nil {
		h.logger.Error("create report", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to create report")
		return
	}
	h.metrics.ReportsCreated.Inc()
	respond.JSON(w, http.StatusCreated, report)
}

func (h *ReportHandler) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := storage.ReportFilter{
		EventType: q.Get("event_type"),
		From:      q.Get("from"),
		To:        q.Get("to"),
		Limit:     listReportsCap,
	}
	if v := q.Get("verified"); v == "true" || v == "false" {
		verified := v == "true"
		filter.Verified = &verified
	}

	var box *boundingBox
	if raw := q.Get("bbox"); raw != "" {
		parsed, err := parseBBox(raw)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid bbox")
			return
		}
		box = parsed
	}

	items, err := h.reports.ListReports(r.Context(), filter)
	if err != nil {
		h.logger.Error("list reports", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list reports")
		return
	}

	if box != nil {
		filtered := make([]models.Report, 0, len(items))
		for _, item := range items {
			if box.contains(item.Geolocation) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	respond.JSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *ReportHandler) handleVerify(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.reports.VerifyReport(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Not found")
			return
		}
		h.logger.Error("verify report", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to verify report")
		return
	}
	respond.JSON(w, http.StatusOK, dto.VerifyReportResponse{ID: id, Verified: true})
}

// boundingBox is the inclusive rectangular filter min_lng,min_lat,max_lng,max_lat.
type boundingBox struct {
	minLng, minLat, maxLng, maxLat float64
}

func parseBBox(raw string) (*boundingBox, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return nil, errors.New("bbox needs four comma-separated values")
	}
	vals := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return &boundingBox{minLng: vals[0], minLat: vals[1], maxLng: vals[2], maxLat: vals[3]}, nil
}

func (b *boundingBox) contains(g models.Geolocation) bool {
	return g.Lat >= b.minLat && g.Lat <= b.maxLat && g.Lng >= b.minLng && g.Lng <= b.maxLng
}
