package handlers

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanwatch/oceanwatch-be/internal/models"
	"github.com/oceanwatch/oceanwatch-be/internal/models/dto"
)

func seedReport(t *testing.T, api *testAPI, eventType string, lat, lng float64, verified bool, ts time.Time) models.Report {
	t.Helper()
	report := models.Report{
		ID:          "r-" + eventType + ts.Format("150405.000000"),
		UserID:      "seeder",
		EventType:   eventType,
		Description: "seeded",
		Geolocation: models.Geolocation{Lat: lat, Lng: lng},
		Timestamp:   models.FormatTimestamp(ts),
		Verified:    verified,
		Source:      "citizen",
	}
	require.NoError(t, api.store.CreateReport(context.Background(), report))
	return report
}

func TestCreateReportRequiresAuth(t *testing.T) {
	api := newTestAPI(t)
	rec := api.do(t, http.MethodPost, "/api/report", "", map[string]any{
		"event_type": "flooding", "description": "x", "latitude": 1.0, "longitude": 2.0,
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateReport(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "citizen-1", models.RoleCitizen)

	rec := api.do(t, http.MethodPost, "/api/report", token, map[string]any{
		"event_type":  "high_waves",
		"description": "Waves over the sea wall",
		"latitude":    37.71,
		"longitude":   -122.41,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	report := decodeBody[models.Report](t, rec)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "citizen-1", report.UserID)
	assert.Equal(t, "high_waves", report.EventType)
	assert.Equal(t, models.Geolocation{Lat: 37.71, Lng: -122.41}, report.Geolocation)
	assert.False(t, report.Verified)
	assert.Equal(t, "citizen", report.Source)
	assert.Nil(t, report.MediaURL)
}

func TestCreateReportValidation(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "citizen-1", models.RoleCitizen)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing event_type", map[string]any{"description": "x", "latitude": 1.0, "longitude": 2.0}},
		{"missing description", map[string]any{"event_type": "flooding", "latitude": 1.0, "longitude": 2.0}},
		{"missing latitude", map[string]any{"event_type": "flooding", "description": "x", "longitude": 2.0}},
		{"missing longitude", map[string]any{"event_type": "flooding", "description": "x", "latitude": 1.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(t, http.MethodPost, "/api/report", token, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateReportUploadsMedia(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "citizen-1", models.RoleCitizen)

	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	rec := api.do(t, http.MethodPost, "/api/report", token, map[string]any{
		"event_type":   "oil_spill",
		"description":  "Slick near the pier",
		"latitude":     37.7,
		"longitude":    -122.4,
		"media_base64": dataURL,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	report := decodeBody[models.Report](t, rec)
	require.NotNil(t, report.MediaURL)
	assert.Contains(t, *report.MediaURL, "https://objects.test/reports/")
	assert.Len(t, api.objects.objects, 1)
}

func TestCreateReportMalformedMediaIsOmitted(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "citizen-1", models.RoleCitizen)

	rec := api.do(t, http.MethodPost, "/api/report", token, map[string]any{
		"event_type":   "debris",
		"description":  "Floating containers",
		"latitude":     37.7,
		"longitude":    -122.4,
		"media_base64": "data:image/png,missing-base64-marker",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	report := decodeBody[models.Report](t, rec)
	assert.Nil(t, report.MediaURL)
	assert.Empty(t, api.objects.objects)
}

func TestCreateReportExplicitMediaURLSkipsUpload(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "citizen-1", models.RoleCitizen)

	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png"))
	rec := api.do(t, http.MethodPost, "/api/report", token, map[string]any{
		"event_type":   "debris",
		"description":  "x",
		"latitude":     1.0,
		"longitude":    2.0,
		"media_base64": dataURL,
		"media_url":    "https://elsewhere.example/photo.png",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	report := decodeBody[models.Report](t, rec)
	require.NotNil(t, report.MediaURL)
	assert.Equal(t, "https://elsewhere.example/photo.png", *report.MediaURL)
	assert.Empty(t, api.objects.objects)
}

type reportListBody struct {
	Items []models.Report `json:"items"`
}

func TestListReportsFilters(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "viewer", models.RoleCitizen)

	base := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	seedReport(t, api, "flooding", 37.71, -122.41, true, base)
	seedReport(t, api, "flooding", 37.74, -122.44, false, base.Add(time.Hour))
	seedReport(t, api, "oil_spill", 12.0, 80.3, false, base.Add(2*time.Hour))

	t.Run("event_type", func(t *testing.T) {
		rec := api.do(t, http.MethodGet, "/api/reports?event_type=flooding", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[reportListBody](t, rec)
		assert.Len(t, body.Items, 2)
	})

	t.Run("verified", func(t *testing.T) {
		rec := api.do(t, http.MethodGet, "/api/reports?verified=true", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[reportListBody](t, rec)
		require.Len(t, body.Items, 1)
		assert.True(t, body.Items[0].Verified)
	})

	t.Run("newest first", func(t *testing.T) {
		rec := api.do(t, http.MethodGet, "/api/reports", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[reportListBody](t, rec)
		require.Len(t, body.Items, 3)
		assert.Equal(t, "oil_spill", body.Items[0].EventType)
	})

	t.Run("timestamp range", func(t *testing.T) {
		from := models.FormatTimestamp(base.Add(30 * time.Minute))
		to := models.FormatTimestamp(base.Add(90 * time.Minute))
		rec := api.do(t, http.MethodGet, "/api/reports?from="+from+"&to="+to, token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[reportListBody](t, rec)
		require.Len(t, body.Items, 1)
		assert.Equal(t, "flooding", body.Items[0].EventType)
		assert.False(t, body.Items[0].Verified)
	})
}

func TestListReportsBBox(t *testing.T) {
	api := newTestAPI(t)
	token := api.tokenFor(t, "viewer", models.RoleCitizen)

	base := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	inside := seedReport(t, api, "flooding", 37.75, -122.42, false, base)
	seedReport(t, api, "flooding", 37.75, -121.00, false, base.Add(time.Minute)) // lng outside
	seedReport(t, api, "flooding", 36.00, -122.42, false, base.Add(2*time.Minute)) // lat outside

	rec := api.do(t, http.MethodGet, "/api/reports?bbox=-122.5,37.7,-122.3,37.8", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[reportListBody](t, rec)
	require.Len(t, body.Items, 1)
	assert.Equal(t, inside.ID, body.Items[0].ID)

	rec = api.do(t, http.MethodGet, "/api/reports?bbox=not,a,box", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyReport(t *testing.T) {
	api := newTestAPI(t)
	official := api.tokenFor(t, "official-1", models.RoleOfficial)
	citizen := api.tokenFor(t, "citizen-1", models.RoleCitizen)

	report := seedReport(t, api, "flooding", 37.7, -122.4, false, time.Now())

	rec := api.do(t, http.MethodPut, "/api/report/"+report.ID+"/verify", citizen, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = api.do(t, http.MethodPut, "/api/report/unknown-id/verify", official, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	first := api.do(t, http.MethodPut, "/api/report/"+report.ID+"/verify", official, nil)
	require.Equal(t, http.StatusOK, first.Code)
	resp := decodeBody[dto.VerifyReportResponse](t, first)
	assert.Equal(t, report.ID, resp.ID)
	assert.True(t, resp.Verified)

	// Verification is idempotent: the second call returns the same shape.
	second := api.do(t, http.MethodPut, "/api/report/"+report.ID+"/verify", official, nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}
