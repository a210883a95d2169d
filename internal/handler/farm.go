package handler

import (
	"errors"
	"net/http"

	"github.com/dmkorzh/farmbox/internal/domain"
	"github.com/dmkorzh/farmbox/internal/farm"
	"github.com/dmkorzh/farmbox/internal/logger"
)

// PlantRequest represents a request to plant a seed into one slot
type PlantRequest struct {
	PlayerID  string `json:"player_id" validate:"required,uuid"`
	SlotIndex int    `json:"slot_index" validate:"gte=0"`
	Plant     string `json:"plant" validate:"required,plantkind"`
}

// PlantAllRequest represents a request to plant every empty slot
type PlantAllRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid"`
	Plant    string `json:"plant" validate:"required,plantkind"`
}

// HarvestRequest represents a request to harvest one slot
type HarvestRequest struct {
	PlayerID  string `json:"player_id" validate:"required,uuid"`
	SlotIndex int    `json:"slot_index" validate:"gte=0"`
}

// PlayerRequest represents a request keyed by player only
type PlayerRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid"`
}

// AccelerateRequest represents a request to speed up one growing slot
type AccelerateRequest struct {
	PlayerID       string `json:"player_id" validate:"required,uuid"`
	SlotIndex      int    `json:"slot_index" validate:"gte=0"`
	UseAccelerator bool   `json:"use_accelerator"`
}

// FarmHandler handles farm lifecycle HTTP requests
type FarmHandler struct {
	farmSvc farm.Service
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(farmSvc farm.Service) *FarmHandler {
	return &FarmHandler{
		farmSvc: farmSvc,
	}
}

// Plant handles the plant endpoint
func (h *FarmHandler) Plant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req PlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
		return
	}

	response, err := h.farmSvc.Plant(r.Context(), req.PlayerID, req.SlotIndex, domain.PlantKind(req.Plant))
	if err != nil {
		log.Error("Plant failed", "error", err, "player_id", req.PlayerID, "slot", req.SlotIndex)

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Plant successful", "player_id", req.PlayerID, "slot", req.SlotIndex, "plant", req.Plant)

	respondJSON(w, http.StatusOK, response)
}

// PlantAll handles the plant-all endpoint
func (h *FarmHandler) PlantAll(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req PlantAllRequest
	if err := DecodeAndValidateRequest(r, w, &req, "PlantAll"); err != nil {
		return
	}

	response, err := h.farmSvc.PlantAll(r.Context(), req.PlayerID, domain.PlantKind(req.Plant))
	if err != nil {
		log.Error("PlantAll failed", "error", err, "player_id", req.PlayerID)

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("PlantAll successful", "player_id", req.PlayerID, "planted", response.Planted)

	respondJSON(w, http.StatusOK, response)
}

// Harvest handles the harvest endpoint
func (h *FarmHandler) Harvest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req HarvestRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Harvest"); err != nil {
		return
	}

	response, err := h.farmSvc.Harvest(r.Context(), req.PlayerID, req.SlotIndex)
	if err != nil {
		log.Error("Harvest failed", "error", err, "player_id", req.PlayerID, "slot", req.SlotIndex)

		// A not-ready slot is the common case, not worth a generic 500
		if errors.Is(err, domain.ErrNotReady) {
			respondError(w, http.StatusConflict, ErrMsgNotReadyError)
			return
		}

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Harvest successful",
		"player_id", req.PlayerID,
		"slot", req.SlotIndex,
		"rewards", len(response.Rewards),
		"leveled_up", response.LeveledUp)

	respondJSON(w, http.StatusOK, response)
}

// HarvestAll handles the harvest-all endpoint
func (h *FarmHandler) HarvestAll(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req PlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "HarvestAll"); err != nil {
		return
	}

	response, err := h.farmSvc.HarvestAll(r.Context(), req.PlayerID)
	if err != nil {
		log.Error("HarvestAll failed", "error", err, "player_id", req.PlayerID)

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("HarvestAll successful", "player_id", req.PlayerID, "harvested", response.Harvested)

	respondJSON(w, http.StatusOK, response)
}

// Remove handles the remove endpoint
func (h *FarmHandler) Remove(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req HarvestRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Remove"); err != nil {
		return
	}

	response, err := h.farmSvc.Remove(r.Context(), req.PlayerID, req.SlotIndex)
	if err != nil {
		log.Error("Remove failed", "error", err, "player_id", req.PlayerID, "slot", req.SlotIndex)

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Remove successful", "player_id", req.PlayerID, "slot", req.SlotIndex)

	respondJSON(w, http.StatusOK, response)
}

// RemoveAll handles the remove-all endpoint
func (h *FarmHandler) RemoveAll(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req PlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "RemoveAll"); err != nil {
		return
	}

	response, err := h.farmSvc.RemoveAll(r.Context(), req.PlayerID)
	if err != nil {
		log.Error("RemoveAll failed", "error", err, "player_id", req.PlayerID)

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("RemoveAll successful", "player_id", req.PlayerID, "cleared", response.Cleared)

	respondJSON(w, http.StatusOK, response)
}

// Accelerate handles the accelerate endpoint
func (h *FarmHandler) Accelerate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req AccelerateRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Accelerate"); err != nil {
		return
	}

	response, err := h.farmSvc.Accelerate(r.Context(), req.PlayerID, req.SlotIndex, req.UseAccelerator)
	if err != nil {
		log.Error("Accelerate failed", "error", err, "player_id", req.PlayerID, "slot", req.SlotIndex)

		if errors.Is(err, domain.ErrQuotaExceeded) {
			respondError(w, http.StatusTooManyRequests, ErrMsgQuotaExceededError)
			return
		}

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Accelerate successful",
		"player_id", req.PlayerID,
		"slot", req.SlotIndex,
		"used_accelerator", response.UsedAccelerator,
		"ad_views_left", response.AdViewsLeft)

	respondJSON(w, http.StatusOK, response)
}

// UseWaterBottle handles the water-bottle endpoint
func (h *FarmHandler) UseWaterBottle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req PlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "UseWaterBottle"); err != nil {
		return
	}

	response, err := h.farmSvc.UseWaterBottle(r.Context(), req.PlayerID)
	if err != nil {
		log.Error("UseWaterBottle failed", "error", err, "player_id", req.PlayerID)

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("UseWaterBottle successful", "player_id", req.PlayerID, "water_left", response.WaterLeft)

	respondJSON(w, http.StatusOK, response)
}
