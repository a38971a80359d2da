package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/oceanwatch/oceanwatch-be/internal/http/respond"
	"github.com/oceanwatch/oceanwatch-be/internal/middleware"
	"github.com/oceanwatch/oceanwatch-be/internal/models"
	"github.com/oceanwatch/oceanwatch-be/internal/models/dto"
	"github.com/oceanwatch/oceanwatch-be/internal/storage"
)

// AdminHandler owns the admin listing and user-toggle endpoints. The dumps
// are unpaginated; acceptable only at prototype scale.
type AdminHandler struct {
	store  storage.Store
	logger *slog.Logger
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(store storage.Store, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{store: store, logger: logger}
}

// Register attaches admin routes to the mux. Every route requires the admin role.
func (h *AdminHandler) Register(mux *http.ServeMux, guard *middleware.Guard) {
	admin := guard.Require(models.RoleAdmin)
	mux.Handle("GET /api/admin/users", admin(http.HandlerFunc(h.handleUsers)))
	mux.Handle("GET /api/admin/reports", admin(http.HandlerFunc(h.handleReports)))
	mux.Handle("GET /api/admin/social", admin(http.HandlerFunc(h.handleSocial)))
	mux.Handle("PATCH /api/admin/users/{id}/toggle", admin(http.HandlerFunc(h.handleToggle)))
}

func (h *AdminHandler) handleUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("list users", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"users": users})
}

func (h *AdminHandler) handleReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.store.ListAllReports(r.Context())
	if err != nil {
		h.logger.Error("list reports", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list reports")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"reports": reports})
}

func (h *AdminHandler) handleSocial(w http.ResponseWriter, r *http.Request) {
	posts, err := h.store.ListAllSocialPosts(r.Context())
	if err != nil {
		h.logger.Error("list social posts", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list posts")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"posts": posts})
}

func (h *AdminHandler) handleToggle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	req := dto.ToggleUserRequest{}
	if r.Body != nil {
		// Absent body or is_active field defaults to true.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	if err := h.store.SetUserActive(r.Context(), id, active); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Not found")
			return
		}
		h.logger.Error("toggle user", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to update user")
		return
	}
	respond.JSON(w, http.StatusOK, dto.ToggleUserResponse{ID: id, IsActive: active})
}
