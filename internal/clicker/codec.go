package clicker

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/KissClicker_Go/internal/domain"
)

// legacyHat is the milestone shape saved by the browser version of the game
type legacyHat struct {
	Kisses int    `json:"kisses"`
	Image  string `json:"image"`
	Name   string `json:"name"`
}

// Serialize encodes the state into its persisted JSON form
func (e *Engine) Serialize(s *domain.GameState) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode game state: %w", err)
	}
	return data, nil
}

// Deserialize decodes a persisted state. Missing fields take their defaults.
// Fields that fail to parse also take their defaults and are reported through
// an error wrapping domain.ErrInvalidSaveData; the recovered state is always
// returned so callers may keep playing on it.
func (e *Engine) Deserialize(data []byte) (*domain.GameState, error) {
	state := domain.NewGameState()
	if len(bytes.TrimSpace(data)) == 0 {
		return state, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return state, fmt.Errorf("%w: %v", domain.ErrInvalidSaveData, err)
	}

	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	if _, ok := raw["totalScore"]; ok {
		collect(decodeField(raw, "totalScore", &state.TotalScore))
	} else {
		collect(decodeField(raw, legacyKeyTotalKisses, &state.TotalScore))
	}
	collect(decodeField(raw, "clickPower", &state.ClickPower))
	collect(decodeField(raw, "purchasedUpgrades", &state.PurchasedUpgrades))
	if _, ok := raw["unlockedMilestones"]; ok {
		collect(decodeField(raw, "unlockedMilestones", &state.UnlockedMilestones))
	} else {
		var hats []legacyHat
		collect(decodeField(raw, legacyKeyUnlockedHats, &hats))
		for _, h := range hats {
			state.UnlockedMilestones = append(state.UnlockedMilestones, domain.Milestone{
				Threshold: h.Kisses,
				Label:     h.Name,
				Image:     h.Image,
			})
		}
	}
	collect(decodeField(raw, "currentHat", &state.CurrentHat))
	collect(decodeField(raw, "bossActive", &state.BossActive))
	collect(decodeField(raw, "bossHealth", &state.BossHealth))
	collect(decodeField(raw, "bossDefeated", &state.BossDefeated))

	e.normalizeState(state)

	if len(errs) > 0 {
		return state, fmt.Errorf("%w: %w", domain.ErrInvalidSaveData, errors.Join(errs...))
	}
	return state, nil
}

// decodeField decodes one key into dst, leaving dst untouched on failure
func decodeField[T any](raw map[string]json.RawMessage, key string, dst *T) error {
	msg, ok := raw[key]
	if !ok || string(bytes.TrimSpace(msg)) == "null" {
		return nil
	}
	var v T
	if err := json.Unmarshal(msg, &v); err != nil {
		return fmt.Errorf("field %s: %v", key, err)
	}
	*dst = v
	return nil
}

// normalizeState repairs values no engine operation could have produced
func (e *Engine) normalizeState(s *domain.GameState) {
	if s.TotalScore < 0 {
		s.TotalScore = 0
	}
	if s.ClickPower < 1 {
		s.ClickPower = 1
	}
	if limit := e.maxClickPower(); s.ClickPower > limit {
		s.ClickPower = limit
	}

	upgrades := make([]int, 0, len(s.PurchasedUpgrades))
	seenPower := make(map[int]bool, len(s.PurchasedUpgrades))
	for _, p := range s.PurchasedUpgrades {
		if seenPower[p] {
			continue
		}
		seenPower[p] = true
		upgrades = append(upgrades, p)
	}
	s.PurchasedUpgrades = upgrades

	milestones := make([]domain.Milestone, 0, len(s.UnlockedMilestones))
	seenThreshold := make(map[int]bool, len(s.UnlockedMilestones))
	for _, m := range s.UnlockedMilestones {
		if seenThreshold[m.Threshold] {
			continue
		}
		seenThreshold[m.Threshold] = true
		milestones = append(milestones, m)
	}
	s.UnlockedMilestones = milestones

	switch {
	case s.BossDefeated:
		s.BossActive = false
		s.BossHealth = 0
	case s.BossActive && s.BossHealth <= 0:
		s.BossHealth = e.tables.Boss.MaxHealth
	case s.BossActive && s.BossHealth > e.tables.Boss.MaxHealth:
		s.BossHealth = e.tables.Boss.MaxHealth
	case !s.BossActive:
		s.BossHealth = 0
	}
}

// maxClickPower is the strongest power any table upgrade grants
func (e *Engine) maxClickPower() int {
	limit := 1
	for _, u := range e.tables.Upgrades {
		if u.Power > limit {
			limit = u.Power
		}
	}
	return limit
}
