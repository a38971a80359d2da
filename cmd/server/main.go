package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/oceanwatch/oceanwatch-be/internal/config"
	"github.com/oceanwatch/oceanwatch-be/internal/media"
	"github.com/oceanwatch/oceanwatch-be/internal/media/gcs"
	"github.com/oceanwatch/oceanwatch-be/internal/observability"
	"github.com/oceanwatch/oceanwatch-be/internal/server"
	"github.com/oceanwatch/oceanwatch-be/internal/storage/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found; relying on existing environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx := context.Background()
	store, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("init database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// Media uploads are feature-flagged on the bucket being configured.
	var uploader *media.Uploader
	if cfg.StorageBucket != "" {
		objects, err := gcs.New(ctx, cfg.StorageBucket)
		if err != nil {
			logger.Error("init object store", "error", err)
			os.Exit(1)
		}
		defer objects.Close()
		uploader = media.NewUploader(objects)
		logger.Info("media uploads enabled", "bucket", cfg.StorageBucket)
	} else {
		logger.Info("media uploads disabled; STORAGE_BUCKET not set")
	}

	srv := server.New(cfg, store, uploader, metrics, logger)

	go func() {
		logger.Info("oceanwatch backend listening", "addr", cfg.HTTPAddress())
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error("graceful shutdown", "error", err)
	}
}
