package handler

import (
	"errors"
	"net/http"

	"github.com/dmkorzh/farmbox/internal/domain"
	"github.com/dmkorzh/farmbox/internal/logger"
	"github.com/dmkorzh/farmbox/internal/player"
)

// RegisterRequest represents a request to create a new player
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=100"`
}

// PlayerHandler handles player account HTTP requests
type PlayerHandler struct {
	playerSvc player.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerSvc player.Service) *PlayerHandler {
	return &PlayerHandler{
		playerSvc: playerSvc,
	}
}

// Register handles the register endpoint
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req RegisterRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register"); err != nil {
		return
	}

	response, err := h.playerSvc.Register(r.Context(), req.Username)
	if err != nil {
		log.Error("Register failed", "error", err, "username", req.Username)

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Register successful", "player_id", response.PlayerID, "username", req.Username)

	respondJSON(w, http.StatusCreated, response)
}

// Reset handles the farm reset endpoint
func (h *PlayerHandler) Reset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req PlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Reset"); err != nil {
		return
	}

	snapshot, err := h.playerSvc.Reset(r.Context(), req.PlayerID)
	if err != nil {
		log.Error("Reset failed", "error", err, "player_id", req.PlayerID)

		if errors.Is(err, domain.ErrPlayerNotFound) {
			respondError(w, http.StatusNotFound, ErrMsgPlayerNotFoundError)
			return
		}

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Reset successful", "player_id", req.PlayerID)

	respondJSON(w, http.StatusOK, snapshot)
}

// GetSnapshot handles the farm snapshot endpoint.
// The player is identified by the player_id query parameter.
func (h *PlayerHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodGet {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	playerID, ok := GetQueryParam(r, w, "player_id")
	if !ok {
		return
	}

	snapshot, err := h.playerSvc.GetSnapshot(r.Context(), playerID)
	if err != nil {
		log.Error("GetSnapshot failed", "error", err, "player_id", playerID)

		if errors.Is(err, domain.ErrPlayerNotFound) {
			respondError(w, http.StatusNotFound, ErrMsgPlayerNotFoundError)
			return
		}

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}
