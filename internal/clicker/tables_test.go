package clicker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/KissClicker_Go/internal/domain"
)

func TestDefaultTablesValid(t *testing.T) {
	require.NoError(t, ValidateTables(DefaultTables()))
}

func TestValidateTables(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.ClickerTables)
		errMsg string
	}{
		{
			name:   "milestone on boss threshold",
			mutate: func(tb *domain.ClickerTables) { tb.Milestones[0].Threshold = tb.Boss.ActivationThreshold },
			errMsg: "collides with boss threshold",
		},
		{
			name:   "duplicate milestone",
			mutate: func(tb *domain.ClickerTables) { tb.Milestones[1].Threshold = tb.Milestones[0].Threshold },
			errMsg: "duplicate milestone threshold",
		},
		{
			name:   "duplicate upgrade power",
			mutate: func(tb *domain.ClickerTables) { tb.Upgrades[1].Power = tb.Upgrades[0].Power },
			errMsg: "duplicate upgrade power",
		},
		{
			name:   "upgrade power below two",
			mutate: func(tb *domain.ClickerTables) { tb.Upgrades[0].Power = 1 },
			errMsg: "Power",
		},
		{
			name:   "critical chance above one",
			mutate: func(tb *domain.ClickerTables) { tb.Critical.Chance = 1.5 },
			errMsg: "Chance",
		},
		{
			name:   "zero boss health",
			mutate: func(tb *domain.ClickerTables) { tb.Boss.MaxHealth = 0 },
			errMsg: "MaxHealth",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables := DefaultTables()
			tt.mutate(&tables)

			err := ValidateTables(tables)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidTables)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParseTablesYAML(t *testing.T) {
	doc := `
milestones:
  - {threshold: 5, label: Cap, image: cap.png}
  - {threshold: 1, label: Bow}
faces: []
upgrades:
  - {power: 4, cost: 20}
boss:
  activation_threshold: 30
  max_health: 10
  click_damage: 5
critical:
  chance: 0.5
  multiplier: 3
`
	tables, err := ParseTables([]byte(doc), ".yaml")
	require.NoError(t, err)

	assert.Len(t, tables.Milestones, 2)
	assert.Equal(t, 30, tables.Boss.Reward.Threshold)
	assert.Equal(t, DefaultBossRewardImage, tables.Boss.Reward.Image)

	e := NewEngine(tables, WithRandomSource(neverCritical))
	assert.Equal(t, []int{1, 5}, thresholds(e.Tables().Milestones), "engine sorts milestones")
}

func TestParseTablesJSONRejectsUnknownFields(t *testing.T) {
	_, err := ParseTables([]byte(`{"milestones":[],"hats":[]}`), ".json")
	assert.ErrorIs(t, err, domain.ErrInvalidTables)
}

func TestLoadTables(t *testing.T) {
	t.Run("empty path gives defaults", func(t *testing.T) {
		tables, err := LoadTables("")
		require.NoError(t, err)
		assert.Equal(t, DefaultTables(), tables)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTables(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("shipped config matches defaults", func(t *testing.T) {
		tables, err := LoadTables(filepath.Join("..", "..", "configs", "clicker.json"))
		require.NoError(t, err)
		assert.Equal(t, DefaultTables(), tables)
	})

	t.Run("yml extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tables.yml")
		doc := "upgrades: [{power: 2, cost: 1}]\nboss: {activation_threshold: 9, max_health: 1, click_damage: 1}\ncritical: {chance: 0, multiplier: 1}\n"
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

		tables, err := LoadTables(path)
		require.NoError(t, err)
		assert.Equal(t, 9, tables.Boss.ActivationThreshold)
	})
}
