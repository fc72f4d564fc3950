package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"wordtower/internal/logger"
	"wordtower/internal/models"
	"wordtower/internal/service"
)

// PrizeHandler serves prize pool configuration and the lucky draw.
type PrizeHandler struct {
	prizes *service.PrizeService
	log    *logger.Logger
}

// NewPrizeHandler creates a new prize handler
func NewPrizeHandler(prizes *service.PrizeService, log *logger.Logger) *PrizeHandler {
	return &PrizeHandler{prizes: prizes, log: log}
}

// List handles GET /api/prizes
func (h *PrizeHandler) List(w http.ResponseWriter, r *http.Request) {
	prizeType, ok := parsePrizeType(r.URL.Query().Get("type"))
	if !ok {
		respondError(w, h.log, http.StatusBadRequest, "type must be parent, teacher or all", nil)
		return
	}
	respondJSON(w, http.StatusOK, h.prizes.GetPrizes(r.Context(), prizeType))
}

// Replace handles PUT /api/prizes/{type}
func (h *PrizeHandler) Replace(w http.ResponseWriter, r *http.Request) {
	prizeType, ok := parsePrizeType(r.PathValue("type"))
	if !ok || prizeType == models.PrizeTypeAll {
		respondError(w, h.log, http.StatusBadRequest, "type must be parent or teacher", nil)
		return
	}

	var prizes []models.Prize
	if err := json.NewDecoder(r.Body).Decode(&prizes); err != nil {
		respondError(w, h.log, http.StatusBadRequest, "invalid prize payload", err)
		return
	}
	for i := range prizes {
		prizes[i].Type = prizeType
	}

	if err := h.prizes.ReplacePrizes(r.Context(), prizeType, prizes); err != nil {
		respondError(w, h.log, http.StatusInternalServerError, "failed to replace prizes", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"saved": true})
}

// Draw handles POST /api/prizes/{type}/draw
func (h *PrizeHandler) Draw(w http.ResponseWriter, r *http.Request) {
	prizeType, ok := parsePrizeType(r.PathValue("type"))
	if !ok || prizeType == models.PrizeTypeAll {
		respondError(w, h.log, http.StatusBadRequest, "type must be parent or teacher", nil)
		return
	}

	pool := h.prizes.GetPrizes(r.Context(), prizeType)
	prize, err := h.prizes.Draw(pool)
	if errors.Is(err, service.ErrNoPrizes) {
		respondJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		respondError(w, h.log, http.StatusInternalServerError, "draw failed", err)
		return
	}
	respondJSON(w, http.StatusOK, prize)
}
