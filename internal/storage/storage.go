package storage

import (
	"context"
	"errors"

	"github.com/oceanwatch/oceanwatch-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// ReportFilter narrows a report query. From/To are inclusive bounds compared
// lexicographically against the stored ISO-8601 timestamp text.
type ReportFilter struct {
	EventType string
	Verified  *bool
	From      string
	To        string
	Limit     int
}

// SocialFilter narrows a social-post query.
type SocialFilter struct {
	Sentiment string
	Limit     int
}

// UserStore captures user persistence operations needed by handlers.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) error
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SetUserActive(ctx context.Context, id string, active bool) error
}

// ReportStore captures report persistence operations needed by handlers.
type ReportStore interface {
	CreateReport(ctx context.Context, report models.Report) error
	ListReports(ctx context.Context, filter ReportFilter) ([]models.Report, error)
	ListAllReports(ctx context.Context) ([]models.Report, error)
	ListReportsOldestFirst(ctx context.Context, limit int) ([]models.Report, error)
	VerifyReport(ctx context.Context, id string) error
}

// SocialStore captures social-post persistence operations needed by handlers.
type SocialStore interface {
	CreateSocialPost(ctx context.Context, post models.SocialPost) error
	ListSocialPosts(ctx context.Context, filter SocialFilter) ([]models.SocialPost, error)
	ListAllSocialPosts(ctx context.Context) ([]models.SocialPost, error)
}

// Store is the full persistence surface, satisfied by the postgres package.
type Store interface {
	UserStore
	ReportStore
	SocialStore
}
