package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oceanwatch/oceanwatch-be/internal/auth"
	"github.com/oceanwatch/oceanwatch-be/internal/media"
	"github.com/oceanwatch/oceanwatch-be/internal/middleware"
	"github.com/oceanwatch/oceanwatch-be/internal/models"
	"github.com/oceanwatch/oceanwatch-be/internal/observability"
	"github.com/oceanwatch/oceanwatch-be/internal/storage"
)

// memStore is an in-memory storage.Store used by handler tests.
type memStore struct {
	mu      sync.Mutex
	users   []models.User
	reports []models.Report
	posts   []models.SocialPost
}

var _ storage.Store = (*memStore)(nil)

func (m *memStore) CreateUser(_ context.Context, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return storage.ErrAlreadyExists
		}
	}
	m.users = append(m.users, user)
	return nil
}

func (m *memStore) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (m *memStore) ListUsers(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]models.User(nil), m.users...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (m *memStore) SetUserActive(_ context.Context, id string, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			m.users[i].IsActive = active
			return nil
		}
	}
	return storage.ErrNotFound
}

func (m *memStore) CreateReport(_ context.Context, report models.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append(m.reports, report)
	return nil
}

func (m *memStore) ListReports(_ context.Context, filter storage.ReportFilter) ([]models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Report, 0)
	for _, r := range m.reports {
		if filter.EventType != "" && r.EventType != filter.EventType {
			continue
		}
		if filter.Verified != nil && r.Verified != *filter.Verified {
			continue
		}
		if filter.From != "" && r.Timestamp < filter.From {
			continue
		}
		if filter.To != "" && r.Timestamp > filter.To {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m *memStore) ListAllReports(_ context.Context) ([]models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]models.Report(nil), m.reports...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out, nil
}

func (m *memStore) ListReportsOldestFirst(_ context.Context, limit int) ([]models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]models.Report(nil), m.reports...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) VerifyReport(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.reports {
		if m.reports[i].ID == id {
			m.reports[i].Verified = true
			return nil
		}
	}
	return storage.ErrNotFound
}

func (m *memStore) CreateSocialPost(_ context.Context, post models.SocialPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts = append(m.posts, post)
	return nil
}

func (m *memStore) ListSocialPosts(_ context.Context, filter storage.SocialFilter) ([]models.SocialPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.SocialPost, 0)
	for _, p := range m.posts {
		if filter.Sentiment != "" && p.Sentiment != filter.Sentiment {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m *memStore) ListAllSocialPosts(_ context.Context) ([]models.SocialPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]models.SocialPost(nil), m.posts...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out, nil
}

// memObjectStore collects uploaded blobs without touching a real bucket.
type memObjectStore struct {
	objects map[string][]byte
}

func (m *memObjectStore) Put(_ context.Context, name, _ string, data []byte) (string, error) {
	if m.objects == nil {
		m.objects = map[string][]byte{}
	}
	m.objects[name] = data
	return "https://objects.test/" + name, nil
}

// testAPI wires every handler onto a mux the way internal/server does.
type testAPI struct {
	mux     *http.ServeMux
	store   *memStore
	tokens  *auth.TokenManager
	objects *memObjectStore
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	store := &memStore{}
	tokens := auth.NewTokenManager("handler-test-secret")
	guard := middleware.NewGuard(tokens)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetricsForTesting()
	objects := &memObjectStore{}

	mux := http.NewServeMux()
	NewHealthHandler(time.Now()).Register(mux)
	NewAuthHandler(store, tokens, logger).Register(mux)
	NewReportHandler(store, media.NewUploader(objects), metrics, logger).Register(mux, guard)
	NewSocialHandler(store, metrics, logger).Register(mux, guard)
	NewAdminHandler(store, logger).Register(mux, guard)
	NewAnalyticsHandler(store, logger).Register(mux, guard)

	return &testAPI{mux: mux, store: store, tokens: tokens, objects: objects}
}

func (a *testAPI) tokenFor(t *testing.T, id string, role models.Role) string {
	t.Helper()
	token, err := a.tokens.Issue(models.User{ID: id, Name: "Test " + id, Role: role})
	require.NoError(t, err)
	return token
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.mux.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals without consuming rec.Body so callers can still
// assert on the raw payload afterwards.
func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
