package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"wordtower/internal/logger"
	"wordtower/internal/models"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, log *logger.Logger, status int, userMsg string, err error) {
	if err != nil {
		log.Error(userMsg, "error", err)
	}
	respondJSON(w, status, map[string]string{"error": userMsg})
}

// parseLimit reads a limit query parameter, falling back to def for
// missing or unusable values and capping at 100.
func parseLimit(r *http.Request, def int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return def
	}
	if limit > 100 {
		return 100
	}
	return limit
}

// parseFloor reads the floor path segment; valid floors are 1-9.
func parseFloor(r *http.Request) (int, bool) {
	floor, err := strconv.Atoi(r.PathValue("floor"))
	if err != nil || floor < 1 || floor > 9 {
		return 0, false
	}
	return floor, true
}

// parsePrizeType reads a prize type, defaulting to "all" when absent.
func parsePrizeType(raw string) (models.PrizeType, bool) {
	if raw == "" {
		return models.PrizeTypeAll, true
	}
	t := models.PrizeType(raw)
	return t, t.Valid()
}
