package handler

import (
	"net/http"

	"github.com/dmkorzh/farmbox/internal/farm"
	"github.com/dmkorzh/farmbox/internal/logger"
)

// TickHandler exposes the background clock passes for manual triggering.
// The scheduler runs these on a timer; the endpoints exist for ops and tests.
type TickHandler struct {
	farmSvc farm.Service
}

// NewTickHandler creates a new tick handler
func NewTickHandler(farmSvc farm.Service) *TickHandler {
	return &TickHandler{
		farmSvc: farmSvc,
	}
}

// TickGrowth handles a manual growth clock pass for one player
func (h *TickHandler) TickGrowth(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req PlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "TickGrowth"); err != nil {
		return
	}

	response, err := h.farmSvc.TickGrowth(r.Context(), req.PlayerID)
	if err != nil {
		log.Error("TickGrowth failed", "error", err, "player_id", req.PlayerID)

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, response)
}

// TickWater handles a manual water clock pass for one player
func (h *TickHandler) TickWater(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req PlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "TickWater"); err != nil {
		return
	}

	response, err := h.farmSvc.TickWater(r.Context(), req.PlayerID)
	if err != nil {
		log.Error("TickWater failed", "error", err, "player_id", req.PlayerID)

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, response)
}
