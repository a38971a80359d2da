package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"

	"github.com/oceanwatch/oceanwatch-be/internal/auth"
	"github.com/oceanwatch/oceanwatch-be/internal/http/respond"
	"github.com/oceanwatch/oceanwatch-be/internal/models"
	"github.com/oceanwatch/oceanwatch-be/internal/models/dto"
	"github.com/oceanwatch/oceanwatch-be/internal/storage"
)

// AuthHandler owns the register/login endpoints.
type AuthHandler struct {
	users  storage.UserStore
	tokens *auth.TokenManager
	logger *slog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(users storage.UserStore, tokens *auth.TokenManager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, logger: logger}
}

// Register attaches auth routes to the mux. Both endpoints are unauthenticated.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/register", h.handleRegister)
	mux.HandleFunc("POST /api/login", h.handleLogin)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	role := models.RoleCitizen
	if req.Role != "" {
		parsed, ok := models.ParseRole(req.Role)
		if !ok {
			respond.Error(w, http.StatusBadRequest, "unknown role")
			return
		}
		role = parsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    models.FormatTimestamp(time.Now()),
		IsActive:     true,
	}
	if err := h.users.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			respond.Error(w, http.StatusConflict, "Email already registered")
			return
		}
		h.logger.Error("create user", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.logger.Error("issue token", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	respond.JSON(w, http.StatusOK, dto.AuthResponse{User: user, Token: token})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.Email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Missing email or password")
		return
	}

	// Unknown email and wrong password produce the same response so the
	// caller cannot probe which emails are registered.
	user, err := h.users.FindUserByEmail(r.Context(), req.Email)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			h.logger.Error("fetch user", "error", err)
			respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
			return
		}
		respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.logger.Error("issue token", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	respond.JSON(w, http.StatusOK, dto.AuthResponse{User: user, Token: token})
}
