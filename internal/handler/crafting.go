package handler

import (
	"errors"
	"net/http"

	"github.com/dmkorzh/farmbox/internal/crafting"
	"github.com/dmkorzh/farmbox/internal/domain"
	"github.com/dmkorzh/farmbox/internal/logger"
)

// CraftRequest represents a request to craft one recipe
type CraftRequest struct {
	PlayerID  string `json:"player_id" validate:"required,uuid"`
	RecipeKey string `json:"recipe_key" validate:"required,max=50"`
}

// CraftingHandler handles crafting HTTP requests
type CraftingHandler struct {
	craftingSvc crafting.Service
}

// NewCraftingHandler creates a new crafting handler
func NewCraftingHandler(craftingSvc crafting.Service) *CraftingHandler {
	return &CraftingHandler{
		craftingSvc: craftingSvc,
	}
}

// Craft handles the craft endpoint
func (h *CraftingHandler) Craft(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req CraftRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Craft"); err != nil {
		return
	}

	response, err := h.craftingSvc.Craft(r.Context(), req.PlayerID, req.RecipeKey)
	if err != nil {
		log.Error("Craft failed", "error", err, "player_id", req.PlayerID, "recipe", req.RecipeKey)

		if errors.Is(err, domain.ErrRecipeNotFound) {
			respondError(w, http.StatusBadRequest, ErrMsgRecipeNotFoundError)
			return
		}

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Craft successful",
		"player_id", req.PlayerID,
		"recipe", response.RecipeKey,
		"output", response.Output,
		"quantity", response.Quantity)

	respondJSON(w, http.StatusOK, response)
}

// ListRecipes handles the recipe book listing endpoint
func (h *CraftingHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	recipes := h.craftingSvc.ListRecipes(r.Context())

	respondJSON(w, http.StatusOK, DataResponse{Data: recipes})
}
