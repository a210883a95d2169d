package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Farm operation error messages
	ErrMsgPlantFailed      = "Failed to plant"
	ErrMsgHarvestFailed    = "Failed to harvest"
	ErrMsgRemoveFailed     = "Failed to clear slot"
	ErrMsgAccelerateFailed = "Failed to accelerate growth"
	ErrMsgWaterFailed      = "Failed to use water bottle"

	// Economy operation error messages
	ErrMsgBuySlotFailed  = "Failed to buy slot"
	ErrMsgDepositFailed  = "Failed to deposit"
	ErrMsgWithdrawFailed = "Failed to withdraw"
	ErrMsgSellFailed     = "Failed to sell"
	ErrMsgTradeFailed    = "Failed to trade"
	ErrMsgPremiumFailed  = "Failed to activate premium"

	// Crafting and dump error messages
	ErrMsgCraftFailed = "Failed to craft"
	ErrMsgDumpFailed  = "Failed to dump resource"

	// Worker error messages
	ErrMsgHireFailed = "Failed to hire worker"
	ErrMsgFireFailed = "Failed to fire worker"

	// Player error messages
	ErrMsgRegisterFailed = "Failed to register player"
	ErrMsgResetFailed    = "Failed to reset farm"
	ErrMsgSnapshotFailed = "Failed to load farm"

	// Tick error messages
	ErrMsgTickFailed = "Failed to run tick"
)
