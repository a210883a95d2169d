package handler

import (
	"errors"
	"net/http"

	"github.com/dmkorzh/farmbox/internal/domain"
	"github.com/dmkorzh/farmbox/internal/economy"
	"github.com/dmkorzh/farmbox/internal/logger"
)

// AmountRequest represents a request moving a currency amount
type AmountRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid"`
	Amount   int64  `json:"amount" validate:"required,gt=0"`
}

// SellGoldFruitsRequest represents a request to sell gold fruits
type SellGoldFruitsRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// TradeRequest represents a request to execute a merchant offer
type TradeRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid"`
	OfferKey string `json:"offer_key" validate:"required,max=50"`
	Times    int    `json:"times" validate:"required,gt=0,max=1000"`
}

// EconomyHandler handles currency and merchant HTTP requests
type EconomyHandler struct {
	economySvc economy.Service
}

// NewEconomyHandler creates a new economy handler
func NewEconomyHandler(economySvc economy.Service) *EconomyHandler {
	return &EconomyHandler{
		economySvc: economySvc,
	}
}

// BuySlot handles the slot purchase endpoint
func (h *EconomyHandler) BuySlot(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req PlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "BuySlot"); err != nil {
		return
	}

	response, err := h.economySvc.BuySlot(r.Context(), req.PlayerID)
	if err != nil {
		log.Error("BuySlot failed", "error", err, "player_id", req.PlayerID)

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("BuySlot successful",
		"player_id", req.PlayerID,
		"slot", response.SlotIndex,
		"price_paid", response.PricePaid,
		"next_price", response.NextPrice)

	respondJSON(w, http.StatusOK, response)
}

// Deposit handles the deposit endpoint
func (h *EconomyHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req AmountRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Deposit"); err != nil {
		return
	}

	response, err := h.economySvc.Deposit(r.Context(), req.PlayerID, req.Amount)
	if err != nil {
		log.Error("Deposit failed", "error", err, "player_id", req.PlayerID, "amount", req.Amount)

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Deposit successful", "player_id", req.PlayerID, "amount", req.Amount, "balance", response.Balance)

	respondJSON(w, http.StatusOK, response)
}

// Withdraw handles the withdraw endpoint. Withdrawals always cash out the
// whole balance.
func (h *EconomyHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req PlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Withdraw"); err != nil {
		return
	}

	response, err := h.economySvc.Withdraw(r.Context(), req.PlayerID)
	if err != nil {
		log.Error("Withdraw failed", "error", err, "player_id", req.PlayerID)

		if errors.Is(err, domain.ErrBelowMinimum) {
			respondError(w, http.StatusBadRequest, ErrMsgBelowMinimumError)
			return
		}

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Withdraw successful",
		"player_id", req.PlayerID,
		"requested", response.Requested,
		"burned", response.Burned,
		"paid", response.Paid)

	respondJSON(w, http.StatusOK, response)
}

// SellGoldFruits handles the gold fruit sale endpoint
func (h *EconomyHandler) SellGoldFruits(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req SellGoldFruitsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "SellGoldFruits"); err != nil {
		return
	}

	response, err := h.economySvc.SellGoldFruits(r.Context(), req.PlayerID, req.Quantity)
	if err != nil {
		log.Error("SellGoldFruits failed", "error", err, "player_id", req.PlayerID, "quantity", req.Quantity)

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("SellGoldFruits successful",
		"player_id", req.PlayerID,
		"sold", response.Sold,
		"net", response.Net)

	respondJSON(w, http.StatusOK, response)
}

// Trade handles the merchant trade endpoint
func (h *EconomyHandler) Trade(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req TradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Trade"); err != nil {
		return
	}

	response, err := h.economySvc.Trade(r.Context(), req.PlayerID, req.OfferKey, req.Times)
	if err != nil {
		log.Error("Trade failed", "error", err, "player_id", req.PlayerID, "offer", req.OfferKey)

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Trade successful",
		"player_id", req.PlayerID,
		"offer", response.OfferKey,
		"quantity", response.Quantity,
		"total", response.Total)

	respondJSON(w, http.StatusOK, response)
}

// BuyPremium handles the premium activation endpoint
func (h *EconomyHandler) BuyPremium(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req PlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "BuyPremium"); err != nil {
		return
	}

	response, err := h.economySvc.BuyPremium(r.Context(), req.PlayerID)
	if err != nil {
		log.Error("BuyPremium failed", "error", err, "player_id", req.PlayerID)

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("BuyPremium successful", "player_id", req.PlayerID, "recovery_per_minute", response.RecoveryPerMinute)

	respondJSON(w, http.StatusOK, response)
}

// ListOffers handles the merchant board listing endpoint
func (h *EconomyHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	offers := h.economySvc.ListOffers(r.Context())

	respondJSON(w, http.StatusOK, DataResponse{Data: offers})
}
