package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oceanwatch/oceanwatch-be/internal/auth"
	"github.com/oceanwatch/oceanwatch-be/internal/config"
	"github.com/oceanwatch/oceanwatch-be/internal/http/handlers"
	"github.com/oceanwatch/oceanwatch-be/internal/media"
	"github.com/oceanwatch/oceanwatch-be/internal/middleware"
	"github.com/oceanwatch/oceanwatch-be/internal/observability"
	"github.com/oceanwatch/oceanwatch-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server. uploader may
// be nil when no object-store bucket is configured.
func New(cfg config.Config, store storage.Store, uploader *media.Uploader, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	tokens := auth.NewTokenManager(cfg.JWTSecret)
	guard := middleware.NewGuard(tokens)

	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewAuthHandler(store, tokens, logger).Register(mux)
	handlers.NewReportHandler(store, uploader, metrics, logger).Register(mux, guard)
	handlers.NewSocialHandler(store, metrics, logger).Register(mux, guard)
	handlers.NewAdminHandler(store, logger).Register(mux, guard)
	handlers.NewAnalyticsHandler(store, logger).Register(mux, guard)
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := middleware.CORS(cfg.CORSOrigins,
		middleware.Metrics(metrics,
			middleware.Logging(logger, mux)))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
