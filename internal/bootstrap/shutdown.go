package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/KissClicker_Go/internal/clicker"
	"github.com/osse101/KissClicker_Go/internal/event"
	"github.com/osse101/KissClicker_Go/internal/server"
	"github.com/osse101/KissClicker_Go/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Server         *server.Server
	ClickerService clicker.Service
	SSEHub         *sse.Hub
	Events         *EventSystem
	Storage        *Storage
}

// GracefulShutdown stops components in dependency order:
// 1. SSE hub (end open streams, which the HTTP server would otherwise wait on)
// 2. HTTP server (stop accepting new requests, finish in-flight ones)
// 3. Clicker service (purge the state cache)
// 4. Event publisher (dead-letter pending retries)
// 5. Storage
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.SSEHub != nil {
		c.SSEHub.Stop()
	}

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.ClickerService != nil {
		shutdownService(ctx, ServiceNameClicker, c.ClickerService)
	}

	if c.Events != nil {
		shutdownEvents(ctx, c.Events.Publisher, c.Events.DeadLetter)
	}

	if c.Storage != nil {
		c.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}

// shutdownEvents stops the publisher, then closes the dead-letter file. The
// file stays open when retry goroutines did not exit in time.
func shutdownEvents(ctx context.Context, publisher *event.ResilientPublisher, deadLetter *event.DeadLetterWriter) {
	slog.Info(LogMsgShuttingDownEventPublisher)
	if publisher != nil {
		if err := publisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
			return
		}
	}
	if deadLetter != nil {
		if err := deadLetter.Close(); err != nil {
			slog.Error(LogMsgDeadLetterCloseFailed, "error", err)
		}
	}
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

// shutdownService shuts down a service and logs any error
func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
