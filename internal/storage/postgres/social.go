package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oceanwatch/oceanwatch-be/internal/models"
	"github.com/oceanwatch/oceanwatch-be/internal/storage"
)

const socialColumns = `id, platform, post_text, keywords, sentiment, timestamp, lat, lng`

// CreateSocialPost inserts a new social post row.
func (s *Store) CreateSocialPost(ctx context.Context, post models.SocialPost) error {
	var lat, lng *float64
	if post.Location != nil {
		lat, lng = &post.Location.Lat, &post.Location.Lng
	}
	const query = `
		INSERT INTO social_posts (id, platform, post_text, keywords, sentiment, timestamp, lat, lng)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	_, err := s.pool.Exec(ctx, query,
		post.ID, post.Platform, post.PostText, post.Keywords, post.Sentiment, post.Timestamp, lat, lng)
	return err
}

// ListSocialPosts returns posts matching the filter, newest first, capped at
// filter.Limit.
func (s *Store) ListSocialPosts(ctx context.Context, filter storage.SocialFilter) ([]models.SocialPost, error) {
	query := `SELECT ` + socialColumns + ` FROM social_posts`
	var args []any
	if filter.Sentiment != "" {
		args = append(args, filter.Sentiment)
		query += fmt.Sprintf(" WHERE sentiment = $%d", len(args))
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY timestamp DESC LIMIT $%d;", len(args))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSocialRows(rows)
}

// ListAllSocialPosts returns every post, newest first.
func (s *Store) ListAllSocialPosts(ctx context.Context) ([]models.SocialPost, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+socialColumns+` FROM social_posts ORDER BY timestamp DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSocialRows(rows)
}

func scanSocialRows(rows pgx.Rows) ([]models.SocialPost, error) {
	posts := make([]models.SocialPost, 0)
	for rows.Next() {
		var p models.SocialPost
		var lat, lng *float64
		if err := rows.Scan(&p.ID, &p.Platform, &p.PostText, &p.Keywords, &p.Sentiment, &p.Timestamp, &lat, &lng); err != nil {
			return nil, err
		}
		if p.Keywords == nil {
			p.Keywords = []string{}
		}
		if lat != nil && lng != nil {
			p.Location = &models.Geolocation{Lat: *lat, Lng: *lng}
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
