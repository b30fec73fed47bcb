package bootstrap

import (
	"log/slog"

	"github.com/osse101/KissClicker_Go/internal/event"
	"github.com/osse101/KissClicker_Go/internal/metrics"
	"github.com/osse101/KissClicker_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	SSEHub   *sse.Hub
}

// RegisterEventHandlers subscribes the prometheus collector and the SSE
// bridge to the clicker events.
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.SSEHub != nil {
		sse.NewSubscriber(deps.SSEHub, deps.EventBus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}
}
