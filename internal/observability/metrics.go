package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments for the API.
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec // labels: method, status
	RequestDuration *prometheus.HistogramVec
	ReportsCreated  prometheus.Counter
	SocialIngested  prometheus.Counter
	MediaUploads    *prometheus.CounterVec // labels: outcome={stored,skipped,error}
}

// NewMetrics creates and registers all API metrics with the default registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.HTTPRequests,
		m.RequestDuration,
		m.ReportsCreated,
		m.SocialIngested,
		m.MediaUploads,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "oceanwatch",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "oceanwatch",
			Name:      "http_request_duration_seconds",
			Help:      "Request handling duration in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method"}),
		ReportsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oceanwatch",
			Name:      "reports_created_total",
			Help:      "Hazard reports persisted.",
		}),
		SocialIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oceanwatch",
			Name:      "social_posts_ingested_total",
			Help:      "Simulated social-media posts persisted.",
		}),
		MediaUploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "oceanwatch",
			Name:      "media_uploads_total",
			Help:      "Media upload attempts by outcome.",
		}, []string{"outcome"}),
	}
}
