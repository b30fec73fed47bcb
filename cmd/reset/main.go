package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/osse101/KissClicker_Go/internal/apiclient"
	"github.com/osse101/KissClicker_Go/internal/bootstrap"
	"github.com/osse101/KissClicker_Go/internal/config"
	"github.com/osse101/KissClicker_Go/internal/domain"
)

const resetTimeout = 30 * time.Second

// playerResetter is the slice of the clicker API the reset tool needs
type playerResetter interface {
	GetState(ctx context.Context, playerID string) (*domain.ClickerSnapshot, error)
	Reset(ctx context.Context, playerID string, confirm bool) (*domain.ClickerSnapshot, error)
}

func main() {
	playerID := flag.String("player", "", "player id whose progress should be wiped")
	dryRun := flag.Bool("dry-run", false, "only report the player's current progress")
	flag.Parse()

	if *playerID == "" {
		fmt.Fprintln(os.Stderr, "usage: reset -player <id> [-dry-run]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	bootstrap.SetupConsoleLogger(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), resetTimeout)
	defer cancel()

	// Resetting through the running service keeps its state cache consistent
	client := apiclient.New(cfg.APIURL, cfg.APIKey)
	if err := resetPlayer(ctx, client, *playerID, *dryRun); err != nil {
		slog.Error("Reset failed", "player_id", *playerID, "api_url", cfg.APIURL, "error", err)
		os.Exit(1)
	}
}

// resetPlayer wipes the player's progress through the clicker API
func resetPlayer(ctx context.Context, api playerResetter, playerID string, dryRun bool) error {
	snap, err := api.GetState(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	if dryRun {
		slog.Info("Dry run leaves progress in place",
			"player_id", playerID,
			"total_score", snap.State.TotalScore,
			"phase", snap.Phase)
		return nil
	}

	if _, err := api.Reset(ctx, playerID, true); err != nil {
		return fmt.Errorf("failed to reset player: %w", err)
	}
	slog.Info("Player reset", "player_id", playerID, "previous_score", snap.State.TotalScore)
	return nil
}
