// Command seed bootstraps the admin account and optionally inserts demo
// hazard reports for local development.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/oceanwatch/oceanwatch-be/internal/config"
	"github.com/oceanwatch/oceanwatch-be/internal/models"
	"github.com/oceanwatch/oceanwatch-be/internal/storage"
	"github.com/oceanwatch/oceanwatch-be/internal/storage/postgres"
)

const (
	adminEmail    = "admin@oceanwatch.example"
	adminPassword = "admin123"
)

var demoEventTypes = []string{"high_waves", "flooding", "rip_current", "oil_spill", "debris"}

func main() {
	reportCount := flag.Int("reports", 0, "number of demo reports to insert")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found; relying on existing environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	store, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("init database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := seedAdmin(ctx, store); err != nil {
		slog.Error("seed admin", "error", err)
		os.Exit(1)
	}

	if *reportCount > 0 {
		if err := seedReports(ctx, store, *reportCount); err != nil {
			slog.Error("seed reports", "error", err)
			os.Exit(1)
		}
		slog.Info("demo reports inserted", "count", *reportCount)
	}
}

func seedAdmin(ctx context.Context, store *postgres.Store) error {
	if _, err := store.FindUserByEmail(ctx, adminEmail); err == nil {
		slog.Info("admin user already exists", "email", adminEmail)
		return nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		ID:           uuid.NewString(),
		Name:         "OceanWatch Admin",
		Email:        adminEmail,
		Role:         models.RoleAdmin,
		PasswordHash: string(hash),
		CreatedAt:    models.FormatTimestamp(time.Now()),
		IsActive:     true,
	}
	if err := store.CreateUser(ctx, admin); err != nil {
		return err
	}
	slog.Info("admin user created", "email", adminEmail)
	return nil
}

func seedReports(ctx context.Context, store *postgres.Store, count int) error {
	baseLat, baseLng := 37.7749, -122.4194
	for i := 0; i < count; i++ {
		report := models.Report{
			ID:          uuid.NewString(),
			UserID:      "seed",
			EventType:   demoEventTypes[rand.Intn(len(demoEventTypes))],
			Description: fmt.Sprintf("Seed report %d", i+1),
			Geolocation: models.Geolocation{
				Lat: baseLat + rand.Float64() - 0.5,
				Lng: baseLng + rand.Float64() - 0.5,
			},
			Timestamp: models.FormatTimestamp(time.Now().Add(-time.Duration(i) * time.Minute)),
			Verified:  rand.Float64() > 0.5,
			Source:    "citizen",
		}
		if err := store.CreateReport(ctx, report); err != nil {
			return err
		}
	}
	return nil
}
