package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmkorzh/farmbox/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// Ledger and wallet messages
	ErrMsgNotEnoughResourcesError = "Not enough resources"
	ErrMsgNotEnoughTonError       = "Not enough TON"
	ErrMsgInvalidQuantityError    = "Quantity must be positive"
	ErrMsgBelowMinimumError       = "Amount is below the minimum"

	// Slot messages
	ErrMsgSlotOccupiedError = "That slot is already occupied"
	ErrMsgSlotNotFoundError = "Slot not found"
	ErrMsgNotReadyError     = "Nothing to do there yet"

	// Quota messages
	ErrMsgQuotaExceededError = "No speedups left today"

	// Economy messages
	ErrMsgPremiumActiveError = "Premium is already active"
	ErrMsgOfferNotFoundError = "Offer not found"

	// Crafting messages
	ErrMsgRecipeNotFoundError = "Recipe not found"

	// Worker messages
	ErrMsgWorkerBusyError        = "That worker is already on shift"
	ErrMsgWorkerAlreadyFreeError = "That worker is not on shift"
	ErrMsgWorkerNotFoundError    = "Worker not found"

	// Player messages
	ErrMsgPlayerNotFoundError = "Player not found"

	// Input messages
	ErrMsgUnknownResourceError = "Unknown resource"
	ErrMsgUnknownPlantError    = "Unknown plant kind"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and messages
// that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	// Check for specific domain errors
	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrInsufficientResource):
		return http.StatusBadRequest, ErrMsgNotEnoughResourcesError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughTonError
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidQuantityError
	case errors.Is(err, domain.ErrBelowMinimum):
		return http.StatusBadRequest, ErrMsgBelowMinimumError
	case errors.Is(err, domain.ErrSlotOccupied):
		return http.StatusConflict, ErrMsgSlotOccupiedError
	case errors.Is(err, domain.ErrSlotNotFound):
		return http.StatusBadRequest, ErrMsgSlotNotFoundError
	case errors.Is(err, domain.ErrNotReady):
		return http.StatusConflict, ErrMsgNotReadyError
	case errors.Is(err, domain.ErrQuotaExceeded):
		return http.StatusTooManyRequests, ErrMsgQuotaExceededError
	case errors.Is(err, domain.ErrPremiumActive):
		return http.StatusConflict, ErrMsgPremiumActiveError
	case errors.Is(err, domain.ErrOfferNotFound):
		return http.StatusBadRequest, ErrMsgOfferNotFoundError
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusBadRequest, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrWorkerBusy):
		return http.StatusConflict, ErrMsgWorkerBusyError
	case errors.Is(err, domain.ErrWorkerAlreadyFree):
		return http.StatusConflict, ErrMsgWorkerAlreadyFreeError
	case errors.Is(err, domain.ErrWorkerNotFound):
		return http.StatusBadRequest, ErrMsgWorkerNotFoundError
	case errors.Is(err, domain.ErrUnknownResource):
		return http.StatusBadRequest, ErrMsgUnknownResourceError
	case errors.Is(err, domain.ErrUnknownPlant):
		return http.StatusBadRequest, ErrMsgUnknownPlantError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
