package clicker

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/KissClicker_Go/internal/domain"
)

var tableValidator = validator.New()

// DefaultTables returns the content tables of the shipped game
func DefaultTables() domain.ClickerTables {
	return domain.ClickerTables{
		Milestones: []domain.Milestone{
			{Threshold: 10, Label: "圣诞帽", Image: "hat-10.png"},
			{Threshold: 25, Label: "皇冠", Image: "hat-25.png"},
			{Threshold: 50, Label: "派对帽", Image: "hat-50.png"},
			{Threshold: 100, Label: "魔法帽", Image: "hat-100.png"},
			{Threshold: 250, Label: "海盗帽", Image: "hat-250.png"},
			{Threshold: 500, Label: "厨师帽", Image: "hat-500.png"},
			{Threshold: 1000, Label: "国王冠", Image: "hat-1000.png"},
		},
		Faces: []domain.SpecialFace{
			{Threshold: 69, Image: "face-69.png"},
			{Threshold: 228, Image: "face-228.png"},
			{Threshold: 666, Image: "face-666.png"},
			{Threshold: 1111, Image: "face-1111.png"},
		},
		Upgrades: []domain.Upgrade{
			{Power: 2, Cost: 50},
			{Power: 3, Cost: 150},
			{Power: 5, Cost: 400},
			{Power: 10, Cost: 1000},
		},
		Boss: domain.BossConfig{
			ActivationThreshold: DefaultBossThreshold,
			MaxHealth:           DefaultBossMaxHealth,
			ClickDamage:         DefaultBossClickDamage,
			Reward: domain.Milestone{
				Threshold: DefaultBossThreshold,
				Label:     DefaultBossRewardLabel,
				Image:     DefaultBossRewardImage,
			},
		},
		Critical: domain.CriticalConfig{
			Chance:     DefaultCriticalChance,
			Multiplier: DefaultCriticalMultiplier,
		},
	}
}

// ValidateTables checks field constraints and cross-table consistency.
// Milestone thresholds and upgrade powers must be unique, and no regular
// milestone may sit on the boss threshold.
func ValidateTables(t domain.ClickerTables) error {
	t = withRewardDefaults(t)
	if err := tableValidator.Struct(t); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidTables, err)
	}

	seen := make(map[int]bool, len(t.Milestones))
	for _, m := range t.Milestones {
		if seen[m.Threshold] {
			return fmt.Errorf("%w: duplicate milestone threshold %d", domain.ErrInvalidTables, m.Threshold)
		}
		if m.Threshold == t.Boss.ActivationThreshold {
			return fmt.Errorf("%w: milestone threshold %d collides with boss threshold", domain.ErrInvalidTables, m.Threshold)
		}
		seen[m.Threshold] = true
	}

	powers := make(map[int]bool, len(t.Upgrades))
	for _, u := range t.Upgrades {
		if powers[u.Power] {
			return fmt.Errorf("%w: duplicate upgrade power %d", domain.ErrInvalidTables, u.Power)
		}
		powers[u.Power] = true
	}

	faces := make(map[int]bool, len(t.Faces))
	for _, f := range t.Faces {
		if faces[f.Threshold] {
			return fmt.Errorf("%w: duplicate face threshold %d", domain.ErrInvalidTables, f.Threshold)
		}
		faces[f.Threshold] = true
	}
	return nil
}

// normalizeTables returns a sorted copy with the boss reward pinned to the
// activation threshold
func normalizeTables(t domain.ClickerTables) domain.ClickerTables {
	out := t
	out.Milestones = append([]domain.Milestone{}, t.Milestones...)
	sort.Slice(out.Milestones, func(i, j int) bool {
		return out.Milestones[i].Threshold < out.Milestones[j].Threshold
	})
	out.Upgrades = append([]domain.Upgrade{}, t.Upgrades...)
	sort.Slice(out.Upgrades, func(i, j int) bool {
		return out.Upgrades[i].Cost < out.Upgrades[j].Cost
	})
	out.Faces = append([]domain.SpecialFace{}, t.Faces...)
	if out.Critical.Multiplier < 1 {
		out.Critical.Multiplier = 1
	}
	return withRewardDefaults(out)
}

// withRewardDefaults fills in the boss reward fields a table file may omit
func withRewardDefaults(t domain.ClickerTables) domain.ClickerTables {
	t.Boss.Reward.Threshold = t.Boss.ActivationThreshold
	if t.Boss.Reward.Label == "" {
		t.Boss.Reward.Label = DefaultBossRewardLabel
	}
	if t.Boss.Reward.Image == "" {
		t.Boss.Reward.Image = DefaultBossRewardImage
	}
	return t
}

// FindUpgrade looks up an upgrade by its power level
func FindUpgrade(t domain.ClickerTables, power int) (domain.Upgrade, bool) {
	for _, u := range t.Upgrades {
		if u.Power == power {
			return u, true
		}
	}
	return domain.Upgrade{}, false
}
