package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/KissClicker_Go/internal/logger"
)

// URL parameters
const URLParamPlayerID = "playerID"

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written and the
// handler should return.
//
//	var req PurchaseUpgradeRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Purchase upgrade"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgRequestDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// playerIDParam reads and validates the player id path parameter.
// On failure it writes a 400 and returns false.
func playerIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	playerID := chi.URLParam(r, URLParamPlayerID)
	if err := GetValidator().ValidateVar(playerID, PlayerIDTag); err != nil {
		logger.FromContext(r.Context()).Warn(ErrMsgInvalidPlayerID, "player_id", playerID)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPlayerID)
		return "", false
	}
	return playerID, true
}
