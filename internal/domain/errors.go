package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Ledger errors
	ErrMsgInsufficientResource = "insufficient resource"
	ErrMsgInsufficientFunds    = "insufficient funds"
	ErrMsgInvalidQuantity      = "invalid quantity"

	// Slot errors
	ErrMsgSlotOccupied = "slot is occupied"
	ErrMsgSlotNotFound = "slot not found"
	ErrMsgNotReady     = "plant is not ready"

	// Clock/quota errors
	ErrMsgQuotaExceeded = "daily quota exceeded"

	// Economy errors
	ErrMsgBelowMinimum  = "below minimum amount"
	ErrMsgPremiumActive = "premium already active"
	ErrMsgOfferNotFound = "offer not found"

	// Crafting errors
	ErrMsgRecipeNotFound = "recipe not found"

	// Worker errors
	ErrMsgWorkerBusy        = "worker is busy"
	ErrMsgWorkerAlreadyFree = "worker is already free"
	ErrMsgWorkerNotFound    = "worker not found"

	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Input errors
	ErrMsgUnknownResource = "unknown resource"
	ErrMsgUnknownPlant    = "unknown plant kind"

	// Infrastructure errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Ledger errors
	ErrInsufficientResource = errors.New(ErrMsgInsufficientResource)
	ErrInsufficientFunds    = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidQuantity      = errors.New(ErrMsgInvalidQuantity)

	// Slot errors
	ErrSlotOccupied = errors.New(ErrMsgSlotOccupied)
	ErrSlotNotFound = errors.New(ErrMsgSlotNotFound)
	ErrNotReady     = errors.New(ErrMsgNotReady)

	// Clock/quota errors
	ErrQuotaExceeded = errors.New(ErrMsgQuotaExceeded)

	// Economy errors
	ErrBelowMinimum  = errors.New(ErrMsgBelowMinimum)
	ErrPremiumActive = errors.New(ErrMsgPremiumActive)
	ErrOfferNotFound = errors.New(ErrMsgOfferNotFound)

	// Crafting errors
	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)

	// Worker errors
	ErrWorkerBusy        = errors.New(ErrMsgWorkerBusy)
	ErrWorkerAlreadyFree = errors.New(ErrMsgWorkerAlreadyFree)
	ErrWorkerNotFound    = errors.New(ErrMsgWorkerNotFound)

	// Player errors
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	// Input errors
	ErrUnknownResource = errors.New(ErrMsgUnknownResource)
	ErrUnknownPlant    = errors.New(ErrMsgUnknownPlant)

	// Infrastructure errors
	ErrTxClosed = errors.New(ErrMsgTxClosed)
)
