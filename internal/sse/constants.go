package sse

import (
	"time"

	"github.com/osse101/KissClicker_Go/internal/domain"
)

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Query parameters accepted by the stream endpoint
const (
	QueryParamTypes  = "types"
	QueryParamPlayer = "player"
)

// Event types for SSE. Clicker events keep their bus names.
const (
	EventTypeStateUpdated      = domain.EventTypeClickerStateUpdated
	EventTypeMilestoneUnlocked = domain.EventTypeMilestoneUnlocked
	EventTypeUpgradePurchased  = domain.EventTypeUpgradePurchased
	EventTypeBossStarted       = domain.EventTypeBossStarted
	EventTypeBossDefeated      = domain.EventTypeBossDefeated
	EventTypeClickerReset      = domain.EventTypeClickerReset

	// EventTypeConnected is sent once when a client connects
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected     = "SSE client connected"
	LogMsgClientDisconnected  = "SSE client disconnected"
	LogMsgEventBroadcast      = "Broadcasting SSE event"
	LogMsgEventDropped        = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError          = "Failed to write SSE event"
	LogMsgSubscriberReady     = "SSE subscriber registered for event types"
	LogMsgInvalidEventPayload = "Invalid clicker event payload for SSE"
)
