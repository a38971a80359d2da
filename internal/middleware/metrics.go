package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/oceanwatch/oceanwatch-be/internal/observability"
)

// Metrics counts requests by method and status and observes handling duration.
func Metrics(m *observability.Metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		m.HTTPRequests.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
		m.RequestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}
