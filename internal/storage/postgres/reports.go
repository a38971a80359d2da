package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/oceanwatch/oceanwatch-be/internal/models"
	"github.com/oceanwatch/oceanwatch-be/internal/storage"
)

const reportColumns = `id, user_id, event_type, description, media_url, lat, lng, timestamp, verified, source`

// CreateReport inserts a new report row.
func (s *Store) CreateReport(ctx context.Context, report models.Report) error {
	const query = `
		INSERT INTO reports (id, user_id, event_type, description, media_url, lat, lng, timestamp, verified, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	_, err := s.pool.Exec(ctx, query,
		report.ID, report.UserID, report.EventType, report.Description, report.MediaURL,
		report.Geolocation.Lat, report.Geolocation.Lng, report.Timestamp, report.Verified, report.Source)
	return err
}

// ListReports returns reports matching the filter, newest first, capped at
// filter.Limit. Range bounds compare against the timestamp text directly.
func (s *Store) ListReports(ctx context.Context, filter storage.ReportFilter) ([]models.Report, error) {
	var where []string
	var args []any

	add := func(clause string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if filter.EventType != "" {
		add("event_type = $%d", filter.EventType)
	}
	if filter.Verified != nil {
		add("verified = $%d", *filter.Verified)
	}
	if filter.From != "" {
		add("timestamp >= $%d", filter.From)
	}
	if filter.To != "" {
		add("timestamp <= $%d", filter.To)
	}

	query := `SELECT ` + reportColumns + ` FROM reports`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY timestamp DESC LIMIT $%d;", len(args))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReportRows(rows)
}

// ListAllReports returns every report, newest first.
func (s *Store) ListAllReports(ctx context.Context) ([]models.Report, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+reportColumns+` FROM reports ORDER BY timestamp DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReportRows(rows)
}

// ListReportsOldestFirst returns up to limit reports in ascending timestamp
// order, feeding the hotspot aggregation.
func (s *Store) ListReportsOldestFirst(ctx context.Context, limit int) ([]models.Report, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+reportColumns+` FROM reports ORDER BY timestamp ASC LIMIT $1;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReportRows(rows)
}

// VerifyReport flips the verified flag to true. The flag never reverts, so
// repeated calls are idempotent.
func (s *Store) VerifyReport(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `UPDATE reports SET verified = TRUE WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanReportRows(rows pgx.Rows) ([]models.Report, error) {
	reports := make([]models.Report, 0)
	for rows.Next() {
		var r models.Report
		if err := rows.Scan(&r.ID, &r.UserID, &r.EventType, &r.Description, &r.MediaURL,
			&r.Geolocation.Lat, &r.Geolocation.Lng, &r.Timestamp, &r.Verified, &r.Source); err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}
