package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/KissClicker_Go/internal/domain"
	"github.com/osse101/KissClicker_Go/internal/logger"
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

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so an encode failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and maps it to a response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceCallFailed, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgServiceCallFailed, "operation", opName, "error", err)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgAlreadyPurchasedErr = "You already own that upgrade"
	ErrMsgNotEnoughKissesErr  = "Not enough kisses for that upgrade"
	ErrMsgUpgradeNotFoundErr  = "No upgrade with that power exists"
	ErrMsgBossNotActiveErr    = "There is no boss to fight right now"
	ErrMsgResetNotConfirmed   = "Reset must be confirmed"
	ErrMsgInvalidInputErr     = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act upon. errors.Is walks wrapped chains.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrAlreadyPurchased):
		return http.StatusConflict, ErrMsgAlreadyPurchasedErr
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughKissesErr
	case errors.Is(err, domain.ErrUpgradeNotFound):
		return http.StatusNotFound, ErrMsgUpgradeNotFoundErr
	case errors.Is(err, domain.ErrBossNotActive):
		return http.StatusConflict, ErrMsgBossNotActiveErr
	case errors.Is(err, domain.ErrResetNotConfirmed):
		return http.StatusBadRequest, ErrMsgResetNotConfirmed
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputErr
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
