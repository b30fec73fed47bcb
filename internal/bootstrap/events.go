package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/KissClicker_Go/internal/config"
	"github.com/osse101/KissClicker_Go/internal/event"
)

// EventSystem is the in-memory bus, its resilient publishing wrapper and
// the dead-letter sink behind it
type EventSystem struct {
	Bus        *event.MemoryBus
	Publisher  *event.ResilientPublisher
	DeadLetter *event.DeadLetterWriter
}

// InitializeEventSystem creates the event bus and resilient publisher.
// The dead-letter directory is created when a dead-letter path is configured.
func InitializeEventSystem(cfg *config.Config) (*EventSystem, error) {
	bus := event.NewMemoryBus()

	var deadLetter *event.DeadLetterWriter
	if cfg.EventDeadLetterPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.EventDeadLetterPath), DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
		}
		dlw, err := event.NewDeadLetterWriter(cfg.EventDeadLetterPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenDeadLetter, err)
		}
		deadLetter = dlw
	}

	publisher := event.NewResilientPublisher(bus, event.ResilientConfig{
		MaxRetries: cfg.EventMaxRetries,
		RetryDelay: cfg.EventRetryDelay,
	}, deadLetter)

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", cfg.EventMaxRetries,
		"retry_delay", cfg.EventRetryDelay,
		"deadletter_path", cfg.EventDeadLetterPath)

	return &EventSystem{Bus: bus, Publisher: publisher, DeadLetter: deadLetter}, nil
}
