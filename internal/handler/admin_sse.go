package handler

import (
	"encoding/json"
	"net/http"
)

// Broadcaster pushes an event to stream clients
type Broadcaster interface {
	Broadcast(eventType, playerID string, payload interface{})
}

// AdminSSEBroadcastRequest represents the request to broadcast an SSE event
type AdminSSEBroadcastRequest struct {
	Type     string          `json:"type" validate:"required,max=64"`
	PlayerID string          `json:"player_id" validate:"omitempty,max=64,playerid"`
	Payload  json.RawMessage `json:"payload"`
}

// AdminSSEHandler handles SSE-related admin tasks
type AdminSSEHandler struct {
	hub Broadcaster
}

// NewAdminSSEHandler creates a new admin SSE handler
func NewAdminSSEHandler(hub Broadcaster) *AdminSSEHandler {
	return &AdminSSEHandler{hub: hub}
}

// HandleBroadcast pushes a manual event, such as an announcement overlay, to stream clients
// @Summary Broadcast SSE event
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminSSEBroadcastRequest true "Event"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/sse/broadcast [post]
func (h *AdminSSEHandler) HandleBroadcast(w http.ResponseWriter, r *http.Request) {
	var req AdminSSEBroadcastRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Broadcast SSE"); err != nil {
		return
	}

	var payload interface{}
	if len(req.Payload) > 0 {
		if err := json.Unmarshal(req.Payload, &payload); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidPayloadJSON)
			return
		}
	}

	h.hub.Broadcast(req.Type, req.PlayerID, payload)

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgEventBroadcastSuccess})
}
