package apiclient

import "time"

// Client settings
const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetryDelay = 500 * time.Millisecond
	MaxRetries        = 3

	PathPrefix   = "/api/v1/clicker"
	HeaderAPIKey = "X-API-Key"
)

// Log messages
const (
	LogMsgRetryingRequest  = "Retrying API request"
	LogMsgRequestFailed    = "API request failed"
	LogMsgServerErrorRetry = "Server error, will retry"
)
