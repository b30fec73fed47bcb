package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPlayerID       = "Invalid player id"

	// Clicker operation error messages
	ErrMsgGetStateFailed = "Failed to load game state"
	ErrMsgClickFailed    = "Failed to apply click"
	ErrMsgPurchaseFailed = "Failed to purchase upgrade"
	ErrMsgBossFailed     = "Failed to damage boss"
	ErrMsgResetFailed    = "Failed to reset game"

	// Admin error messages
	ErrMsgGatherMetricsFailed = "Failed to gather metrics"
	ErrMsgInvalidPayloadJSON  = "Invalid payload JSON"
)

// Success messages for API responses
const (
	MsgEventBroadcastSuccess = "Event broadcasted successfully"
)

// Log messages
const (
	LogMsgRequestDecodeFailed = "Failed to decode request"
	LogMsgRequestDecoded      = "Request decoded"
	LogMsgServiceCallFailed   = "Service call failed"
	LogMsgPurchaseRejected    = "Upgrade purchase rejected"
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteFailed         = "Failed to write response buffer"
)
