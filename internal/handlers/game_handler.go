package handlers

import (
	"net/http"

	"wordtower/internal/logger"
	"wordtower/internal/models"
	"wordtower/internal/service"
)

// GameHandler serves quiz content: floor words, built questions, root
// groups and corpus stats. Store trouble surfaces as empty bodies, not
// errors, so the game client can degrade.
type GameHandler struct {
	game *service.GameService
	log  *logger.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(game *service.GameService, log *logger.Logger) *GameHandler {
	return &GameHandler{game: game, log: log}
}

// Stats handles GET /api/stats
func (h *GameHandler) Stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.game.Stats(r.Context()))
}

// FloorWords handles GET /api/floors/{floor}/words
func (h *GameHandler) FloorWords(w http.ResponseWriter, r *http.Request) {
	floor, ok := parseFloor(r)
	if !ok {
		respondError(w, h.log, http.StatusBadRequest, "floor must be between 1 and 9", nil)
		return
	}

	words := h.game.WordsForFloor(r.Context(), floor, parseLimit(r, 10))
	if words == nil {
		words = []models.WordEntry{}
	}
	respondJSON(w, http.StatusOK, words)
}

// FloorQuiz handles GET /api/floors/{floor}/quiz
func (h *GameHandler) FloorQuiz(w http.ResponseWriter, r *http.Request) {
	floor, ok := parseFloor(r)
	if !ok {
		respondError(w, h.log, http.StatusBadRequest, "floor must be between 1 and 9", nil)
		return
	}

	questions := h.game.BuildQuiz(r.Context(), floor, parseLimit(r, 10))
	if questions == nil {
		questions = []models.Question{}
	}
	respondJSON(w, http.StatusOK, questions)
}

// Roots handles GET /api/roots
func (h *GameHandler) Roots(w http.ResponseWriter, r *http.Request) {
	groups := h.game.RootCatalog(r.Context())
	if groups == nil {
		groups = []models.RootGroup{}
	}
	respondJSON(w, http.StatusOK, groups)
}

// RootWords handles GET /api/roots/{root}/words
func (h *GameHandler) RootWords(w http.ResponseWriter, r *http.Request) {
	root := r.PathValue("root")
	if root == "" {
		respondError(w, h.log, http.StatusBadRequest, "root is required", nil)
		return
	}

	words := h.game.WordsByRoot(r.Context(), root)
	if words == nil {
		words = []models.WordEntry{}
	}
	respondJSON(w, http.StatusOK, words)
}
