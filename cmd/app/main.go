package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/KissClicker_Go/internal/bootstrap"
	"github.com/osse101/KissClicker_Go/internal/clicker"
	"github.com/osse101/KissClicker_Go/internal/config"
	"github.com/osse101/KissClicker_Go/internal/server"
	"github.com/osse101/KissClicker_Go/internal/sse"
)

// @title Kiss Clicker API
// @version 1.0
// @description Progression engine for the kiss clicker game: clicks, milestones, upgrades and the boss battle.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tables, err := bootstrap.LoadClickerTables(cfg)
	if err != nil {
		return err
	}
	engine, err := bootstrap.NewEngine(cfg, tables)
	if err != nil {
		return err
	}

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	events, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		storage.Close()
		return err
	}

	hub := sse.NewHub()
	hub.Start()
	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: events.Bus,
		SSEHub:   hub,
	})

	clickerService := clicker.NewService(engine, storage.Store, events.Publisher, clicker.ServiceConfig{
		CacheSize: cfg.StateCacheSize,
		CacheTTL:  cfg.StateCacheTTL,
	})

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, storage.Store, clickerService, hub)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		err = nil
	case err = <-serverErr:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:         srv,
		ClickerService: clickerService,
		SSEHub:         hub,
		Events:         events,
		Storage:        storage,
	})
	return err
}
