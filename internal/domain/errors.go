package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Upgrade errors
	ErrMsgAlreadyPurchased  = "upgrade already purchased"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgUpgradeNotFound   = "upgrade not found"

	// Boss errors
	ErrMsgBossNotActive = "boss battle is not active"

	// Save errors
	ErrMsgInvalidSaveData = "invalid save data"
	ErrMsgSaveNotFound    = "save not found"

	// Reset errors
	ErrMsgResetNotConfirmed = "reset requires confirmation"

	// Content table errors
	ErrMsgInvalidTables = "invalid clicker tables"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Upgrade errors
	ErrAlreadyPurchased  = errors.New(ErrMsgAlreadyPurchased)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrUpgradeNotFound   = errors.New(ErrMsgUpgradeNotFound)

	// Boss errors
	ErrBossNotActive = errors.New(ErrMsgBossNotActive)

	// Save errors
	ErrInvalidSaveData = errors.New(ErrMsgInvalidSaveData)
	ErrSaveNotFound    = errors.New(ErrMsgSaveNotFound)

	// Reset errors
	ErrResetNotConfirmed = errors.New(ErrMsgResetNotConfirmed)

	// Content table errors
	ErrInvalidTables = errors.New(ErrMsgInvalidTables)

	// Database errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
