package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/osse101/KissClicker_Go/internal/clicker"
	"github.com/osse101/KissClicker_Go/internal/config"
	"github.com/osse101/KissClicker_Go/internal/domain"
)

// LoadClickerTables loads and validates the content tables file. A missing
// file at the default location falls back to the built-in tables; a missing
// file at an explicitly configured path is an error.
func LoadClickerTables(cfg *config.Config) (domain.ClickerTables, error) {
	tables, err := clicker.LoadTables(cfg.ClickerTablesPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && cfg.ClickerTablesPath == config.ConfigPathClickerTables {
			slog.Warn(LogMsgClickerTablesDefault, "path", cfg.ClickerTablesPath)
			return clicker.DefaultTables(), nil
		}
		return domain.ClickerTables{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadClickerTables, err)
	}

	slog.Info(LogMsgClickerTablesLoaded,
		"path", cfg.ClickerTablesPath,
		"milestones", len(tables.Milestones),
		"upgrades", len(tables.Upgrades),
		"boss_threshold", tables.Boss.ActivationThreshold)
	return tables, nil
}

// NewEngine builds the engine with the configured upgrade cost policy
func NewEngine(cfg *config.Config, tables domain.ClickerTables) (*clicker.Engine, error) {
	policy, err := clicker.ParseCostPolicy(cfg.UpgradeCostPolicy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidCostPolicy, err)
	}
	return clicker.NewEngine(tables, clicker.WithCostPolicy(policy)), nil
}
