package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"wordtower/internal/logger"
	"wordtower/internal/models"
	"wordtower/internal/repository"
	"wordtower/internal/service"
)

// UserHandler serves learner record lifecycle operations.
type UserHandler struct {
	users *service.UserService
	log   *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(users *service.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// List handles GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users := h.users.List(r.Context())
	if users == nil {
		users = []models.User{}
	}
	respondJSON(w, http.StatusOK, users)
}

// Leaderboard handles GET /api/leaderboard
func (h *UserHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	users := h.users.Leaderboard(r.Context(), parseLimit(r, 3))
	if users == nil {
		users = []models.User{}
	}
	respondJSON(w, http.StatusOK, users)
}

// Get handles GET /api/users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	user, err := h.users.Get(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, h.log, http.StatusNotFound, "user not found", nil)
		return
	}
	if err != nil {
		h.log.Warn("user lookup failed", "id", id, "error", err)
		respondJSON(w, http.StatusOK, nil)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// Upsert handles PUT /api/users/{id}
func (h *UserHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondError(w, h.log, http.StatusBadRequest, "invalid user payload", err)
		return
	}
	user.ID = r.PathValue("id")
	if user.ID == "" {
		respondError(w, h.log, http.StatusBadRequest, "user id is required", nil)
		return
	}

	if err := h.users.Upsert(r.Context(), user); err != nil {
		respondError(w, h.log, http.StatusInternalServerError, "failed to save user", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"saved": true})
}

// Delete handles DELETE /api/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, h.log, http.StatusInternalServerError, "failed to delete user", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// DeleteAll handles DELETE /api/users
func (h *UserHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.users.DeleteAll(r.Context()); err != nil {
		respondError(w, h.log, http.StatusInternalServerError, "failed to delete users", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// Reset handles POST /api/users/{id}/reset
func (h *UserHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Reset(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, h.log, http.StatusInternalServerError, "failed to reset user", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"reset": true})
}

// GetParentPassword handles GET /api/users/{id}/parent-password
func (h *UserHandler) GetParentPassword(w http.ResponseWriter, r *http.Request) {
	password := h.users.ParentPassword(r.Context(), r.PathValue("id"))
	respondJSON(w, http.StatusOK, map[string]string{"password": password})
}

// SetParentPassword handles PUT /api/users/{id}/parent-password
func (h *UserHandler) SetParentPassword(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, h.log, http.StatusBadRequest, "invalid password payload", err)
		return
	}

	if err := h.users.SetParentPassword(r.Context(), r.PathValue("id"), payload.Password); err != nil {
		respondError(w, h.log, http.StatusInternalServerError, "failed to set parent password", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"saved": true})
}
