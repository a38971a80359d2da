package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oceanwatch/oceanwatch-be/internal/storage"
)

// Ensure Store satisfies the storage interfaces at compile time.
var _ storage.Store = (*Store)(nil)

// Store provides Postgres-backed persistence for users, reports, and social
// posts. It is constructed once in main and reused for the process lifetime.
type Store struct {
	pool *pgxpool.Pool
}

// New connects to the database and runs migrations.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Timestamps are stored as ISO-8601 TEXT so range filters and ordering stay
// string-lexicographic, matching the fixed-width layout written by handlers.
func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			role TEXT NOT NULL DEFAULT 'citizen',
			password_hash TEXT NOT NULL,
			created_at TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		);`,
		`CREATE TABLE IF NOT EXISTS reports (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			event_type TEXT NOT NULL,
			description TEXT NOT NULL,
			media_url TEXT,
			lat DOUBLE PRECISION NOT NULL,
			lng DOUBLE PRECISION NOT NULL,
			timestamp TEXT NOT NULL,
			verified BOOLEAN NOT NULL DEFAULT FALSE,
			source TEXT NOT NULL DEFAULT 'citizen'
		);`,
		`CREATE INDEX IF NOT EXISTS reports_timestamp_idx ON reports (timestamp);`,
		`CREATE TABLE IF NOT EXISTS social_posts (
			id TEXT PRIMARY KEY,
			platform TEXT NOT NULL,
			post_text TEXT NOT NULL,
			keywords TEXT[] NOT NULL DEFAULT '{}',
			sentiment TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			lat DOUBLE PRECISION,
			lng DOUBLE PRECISION
		);`,
		`CREATE INDEX IF NOT EXISTS social_posts_timestamp_idx ON social_posts (timestamp);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}
