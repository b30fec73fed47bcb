package handler

import (
	"net/http"

	"github.com/osse101/KissClicker_Go/internal/clicker"
	"github.com/osse101/KissClicker_Go/internal/domain"
	"github.com/osse101/KissClicker_Go/internal/logger"
)

// PurchaseUpgradeRequest is the body of an upgrade purchase
type PurchaseUpgradeRequest struct {
	Power int `json:"power" validate:"required,min=2"`
}

// DamageBossRequest is the body of an explicit boss damage request
type DamageBossRequest struct {
	Amount int `json:"amount" validate:"required,min=1,max=1000000"`
}

// ResetRequest is the body of a reset request
type ResetRequest struct {
	Confirm bool `json:"confirm"`
}

// PurchaseRejectedResponse carries the rejection result with the error
type PurchaseRejectedResponse struct {
	Error  string                `json:"error"`
	Result domain.PurchaseResult `json:"result"`
}

// ClickerHandler serves the clicker API
type ClickerHandler struct {
	svc clicker.Service
}

// NewClickerHandler creates a new clicker handler
func NewClickerHandler(svc clicker.Service) *ClickerHandler {
	return &ClickerHandler{svc: svc}
}

// HandleGetTables returns the configured content tables
// @Summary Get content tables
// @Description Returns milestones, special faces, upgrades, boss and critical configuration
// @Tags clicker
// @Produce json
// @Success 200 {object} domain.ClickerTables
// @Router /clicker/tables [get]
func (h *ClickerHandler) HandleGetTables(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Tables())
}

// HandleGetState returns the player's current game
// @Summary Get game state
// @Tags clicker
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} domain.ClickerSnapshot
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /clicker/{playerID}/state [get]
func (h *ClickerHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	playerID, ok := playerIDParam(w, r)
	if !ok {
		return
	}

	snapshot, err := h.svc.GetState(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetStateFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

// HandleClick applies one click
// @Summary Click
// @Description Applies one click. During a boss battle the click damages the boss instead of scoring.
// @Tags clicker
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} domain.ClickOutcome
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /clicker/{playerID}/click [post]
func (h *ClickerHandler) HandleClick(w http.ResponseWriter, r *http.Request) {
	playerID, ok := playerIDParam(w, r)
	if !ok {
		return
	}

	outcome, err := h.svc.Click(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgClickFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, outcome)
}

// HandlePurchaseUpgrade buys an upgrade by power level
// @Summary Purchase upgrade
// @Tags clicker
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body PurchaseUpgradeRequest true "Upgrade power"
// @Success 200 {object} domain.PurchaseOutcome
// @Failure 400 {object} PurchaseRejectedResponse "Insufficient funds"
// @Failure 404 {object} ErrorResponse "Unknown upgrade"
// @Failure 409 {object} PurchaseRejectedResponse "Already purchased"
// @Failure 500 {object} ErrorResponse
// @Router /clicker/{playerID}/upgrade [post]
func (h *ClickerHandler) HandlePurchaseUpgrade(w http.ResponseWriter, r *http.Request) {
	playerID, ok := playerIDParam(w, r)
	if !ok {
		return
	}

	var req PurchaseUpgradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Purchase upgrade"); err != nil {
		return
	}

	outcome, err := h.svc.PurchaseUpgrade(r.Context(), playerID, req.Power)
	if err != nil {
		respondServiceError(w, r, ErrMsgPurchaseFailed, err)
		return
	}

	if rejection := outcome.Result.Err(); rejection != nil {
		logger.FromContext(r.Context()).Info(LogMsgPurchaseRejected,
			"player_id", playerID,
			"power", req.Power,
			"status", outcome.Result.Status)
		status, message := mapServiceErrorToUserMessage(rejection)
		respondJSON(w, status, PurchaseRejectedResponse{Error: message, Result: outcome.Result})
		return
	}

	respondJSON(w, http.StatusOK, outcome)
}

// HandleDamageBoss deals an explicit amount of damage to the active boss
// @Summary Damage boss
// @Tags clicker
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body DamageBossRequest true "Damage amount"
// @Success 200 {object} domain.BossOutcome
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "No active boss"
// @Failure 500 {object} ErrorResponse
// @Router /clicker/{playerID}/boss/damage [post]
func (h *ClickerHandler) HandleDamageBoss(w http.ResponseWriter, r *http.Request) {
	playerID, ok := playerIDParam(w, r)
	if !ok {
		return
	}

	var req DamageBossRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Damage boss"); err != nil {
		return
	}

	outcome, err := h.svc.DamageBoss(r.Context(), playerID, req.Amount)
	if err != nil {
		respondServiceError(w, r, ErrMsgBossFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, outcome)
}

// HandleReset wipes the player's progress
// @Summary Reset game
// @Description Deletes the player's save. Requires {"confirm": true}.
// @Tags clicker
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body ResetRequest true "Confirmation"
// @Success 200 {object} domain.ClickerSnapshot
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /clicker/{playerID}/reset [post]
func (h *ClickerHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	playerID, ok := playerIDParam(w, r)
	if !ok {
		return
	}

	var req ResetRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Reset"); err != nil {
		return
	}

	snapshot, err := h.svc.Reset(r.Context(), playerID, req.Confirm)
	if err != nil {
		respondServiceError(w, r, ErrMsgResetFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}
