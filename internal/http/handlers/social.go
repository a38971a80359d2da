package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oceanwatch/oceanwatch-be/internal/http/respond"
	"github.com/oceanwatch/oceanwatch-be/internal/middleware"
	"github.com/oceanwatch/oceanwatch-be/internal/models"
	"github.com/oceanwatch/oceanwatch-be/internal/models/dto"
	"github.com/oceanwatch/oceanwatch-be/internal/observability"
	"github.com/oceanwatch/oceanwatch-be/internal/storage"
	"github.com/oceanwatch/oceanwatch-be/internal/tagging"
)

const listSocialCap = 200

// SocialHandler owns the simulated social-media feed.
type SocialHandler struct {
	social  storage.SocialStore
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewSocialHandler constructs the handler.
func NewSocialHandler(social storage.SocialStore, metrics *observability.Metrics, logger *slog.Logger) *SocialHandler {
	return &SocialHandler{social: social, metrics: metrics, logger: logger}
}

// Register attaches social-feed routes to the mux.
func (h *SocialHandler) Register(mux *http.ServeMux, guard *middleware.Guard) {
	ingesters := guard.Require(models.RoleOfficial, models.RoleAnalyst, models.RoleAdmin)
	mux.Handle("POST /api/social-media", ingesters(http.HandlerFunc(h.handleCreate)))
	mux.Handle("GET /api/social-media", guard.Require()(http.HandlerFunc(h.handleList)))
}

func (h *SocialHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSocialPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	platform := req.Platform
	if platform == "" {
		platform = "twitter"
	}
	keywords := req.Keywords
	if len(keywords) == 0 {
		keywords = tagging.ExtractKeywords(req.PostText)
	}
	sentiment := req.Sentiment
	if sentiment == "" {
		sentiment = tagging.Sentiment(req.PostText)
	}

	post := models.SocialPost{
		ID:        uuid.NewString(),
		Platform:  platform,
		PostText:  req.PostText,
		Keywords:  keywords,
		Sentiment: sentiment,
		Timestamp: models.FormatTimestamp(time.Now()),
		Location:  req.Location,
	}
	if err := h.social.CreateSocialPost(r.Context(), post); err != nil {
		h.logger.Error("create social post", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to create post")
		return
	}
	h.metrics.SocialIngested.Inc()
	respond.JSON(w, http.StatusCreated, post)
}

func (h *SocialHandler) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.social.ListSocialPosts(r.Context(), storage.SocialFilter{
		Sentiment: q.Get("sentiment"),
		Limit:     listSocialCap,
	})
	if err != nil {
		h.logger.Error("list social posts", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list posts")
		return
	}

	// Keyword matching is a substring check against the post text, applied
	// after the capped store query.
	if keyword := q.Get("keyword"); keyword != "" {
		needle := strings.ToLower(keyword)
		filtered := make([]models.SocialPost, 0, len(items))
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.PostText), needle) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	respond.JSON(w, http.StatusOK, map[string]any{"items": items})
}
