package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/KissClicker_Go/internal/logger"
)

// Handler returns an HTTP handler for SSE connections.
// Query: types=<comma separated event types>, player=<player id>.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		eventTypes := parseTypes(r.URL.Query().Get(QueryParamTypes))
		playerID := strings.TrimSpace(r.URL.Query().Get(QueryParamPlayer))

		client := hub.Register(eventTypes, playerID)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", eventTypes,
			"player_id", playerID,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		connected := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			PlayerID:  playerID,
			Timestamp: time.Now().Unix(),
			Payload: ConnectedPayload{
				ClientID: client.ID,
				Filters:  eventTypes,
				PlayerID: playerID,
			},
		}
		if !write(w, flusher, connected) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case evt, ok := <-client.EventChannel:
				if !ok {
					// hub is shutting down
					return
				}
				if !write(w, flusher, evt) {
					log.Warn(LogMsgWriteError, "client_id", client.ID, "event_type", evt.Type)
					return
				}

			case <-ticker.C:
				if !write(w, flusher, Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}

func write(w http.ResponseWriter, flusher http.Flusher, evt Event) bool {
	msg, err := FormatSSEMessage(evt)
	if err != nil {
		return false
	}
	if _, err := w.Write(msg); err != nil {
		return false
	}
	flusher.Flush()
	return true
}

func parseTypes(param string) []string {
	if param == "" {
		return nil
	}
	var types []string
	for _, t := range strings.Split(param, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	return types
}
