package event

import (
	"github.com/osse101/KissClicker_Go/internal/domain"
)

// Clicker event types
const (
	ClickerStateUpdated Type = domain.EventTypeClickerStateUpdated
	ClickerClicked      Type = domain.EventTypeClickerClicked
	MilestoneUnlocked   Type = domain.EventTypeMilestoneUnlocked
	UpgradePurchased    Type = domain.EventTypeUpgradePurchased
	BossStarted         Type = domain.EventTypeBossStarted
	BossDamaged         Type = domain.EventTypeBossDamaged
	BossDefeated        Type = domain.EventTypeBossDefeated
	ClickerReset        Type = domain.EventTypeClickerReset
)

// ClickerEventTypes lists every clicker event, in publication order of a click
var ClickerEventTypes = []Type{
	ClickerClicked,
	MilestoneUnlocked,
	BossStarted,
	BossDamaged,
	BossDefeated,
	UpgradePurchased,
	ClickerReset,
	ClickerStateUpdated,
}

// Typed event payloads for type safety

// ClickedPayloadV1 is the typed payload for click events
type ClickedPayloadV1 struct {
	PlayerID   string `json:"player_id"`
	Value      int    `json:"value"`
	Critical   bool   `json:"critical"`
	Face       string `json:"face,omitempty"`
	BossHit    bool   `json:"boss_hit"`
	TotalScore int    `json:"total_score"`
}

// MilestoneUnlockedPayloadV1 is the typed payload for milestone unlock events
type MilestoneUnlockedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Threshold int    `json:"threshold"`
	Label     string `json:"label"`
	Image     string `json:"image,omitempty"`
	BossDrop  bool   `json:"boss_drop"`
}

// UpgradePurchasedPayloadV1 is the typed payload for upgrade purchase events
type UpgradePurchasedPayloadV1 struct {
	PlayerID   string `json:"player_id"`
	Power      int    `json:"power"`
	Cost       int    `json:"cost"`
	Deducted   int    `json:"deducted"`
	TotalScore int    `json:"total_score"`
}

// BossStartedPayloadV1 is the typed payload for boss start events
type BossStartedPayloadV1 struct {
	PlayerID   string `json:"player_id"`
	Health     int    `json:"health"`
	TotalScore int    `json:"total_score"`
}

// BossDamagedPayloadV1 is the typed payload for explicit boss damage events
type BossDamagedPayloadV1 struct {
	PlayerID string `json:"player_id"`
	Damage   int    `json:"damage"`
	Health   int    `json:"health"`
}

// BossDefeatedPayloadV1 is the typed payload for boss defeat events
type BossDefeatedPayloadV1 struct {
	PlayerID string           `json:"player_id"`
	Reward   domain.Milestone `json:"reward"`
}

// ClickerResetPayloadV1 is the typed payload for reset events
type ClickerResetPayloadV1 struct {
	PlayerID      string `json:"player_id"`
	PreviousScore int    `json:"previous_score"`
}

// StateUpdatedPayloadV1 carries the snapshot produced by a mutation
type StateUpdatedPayloadV1 struct {
	Snapshot domain.ClickerSnapshot `json:"snapshot"`
}

func newClickerEvent(eventType Type, playerID string, payload interface{}) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     eventType,
		Payload:  payload,
		Metadata: map[string]interface{}{MetadataKeyPlayerID: playerID},
	}
}

// NewClickedEvent creates a click event
func NewClickedEvent(playerID string, result domain.ClickResult, totalScore int) Event {
	return newClickerEvent(ClickerClicked, playerID, ClickedPayloadV1{
		PlayerID:   playerID,
		Value:      result.Value,
		Critical:   result.Critical,
		Face:       result.Face,
		BossHit:    result.Boss != nil,
		TotalScore: totalScore,
	})
}

// NewMilestoneUnlockedEvent creates a milestone unlock event
func NewMilestoneUnlockedEvent(playerID string, m domain.Milestone, bossDrop bool) Event {
	return newClickerEvent(MilestoneUnlocked, playerID, MilestoneUnlockedPayloadV1{
		PlayerID:  playerID,
		Threshold: m.Threshold,
		Label:     m.Label,
		Image:     m.Image,
		BossDrop:  bossDrop,
	})
}

// NewUpgradePurchasedEvent creates an upgrade purchase event
func NewUpgradePurchasedEvent(playerID string, result domain.PurchaseResult) Event {
	return newClickerEvent(UpgradePurchased, playerID, UpgradePurchasedPayloadV1{
		PlayerID:   playerID,
		Power:      result.Power,
		Cost:       result.Cost,
		Deducted:   result.Deducted,
		TotalScore: result.TotalScore,
	})
}

// NewBossStartedEvent creates a boss start event
func NewBossStartedEvent(playerID string, health, totalScore int) Event {
	return newClickerEvent(BossStarted, playerID, BossStartedPayloadV1{
		PlayerID:   playerID,
		Health:     health,
		TotalScore: totalScore,
	})
}

// NewBossDamagedEvent creates an explicit boss damage event
func NewBossDamagedEvent(playerID string, result domain.BossResult) Event {
	return newClickerEvent(BossDamaged, playerID, BossDamagedPayloadV1{
		PlayerID: playerID,
		Damage:   result.Damage,
		Health:   result.Health,
	})
}

// NewBossDefeatedEvent creates a boss defeat event
func NewBossDefeatedEvent(playerID string, reward domain.Milestone) Event {
	return newClickerEvent(BossDefeated, playerID, BossDefeatedPayloadV1{
		PlayerID: playerID,
		Reward:   reward,
	})
}

// NewClickerResetEvent creates a reset event
func NewClickerResetEvent(playerID string, previousScore int) Event {
	return newClickerEvent(ClickerReset, playerID, ClickerResetPayloadV1{
		PlayerID:      playerID,
		PreviousScore: previousScore,
	})
}

// NewStateUpdatedEvent creates a state update event
func NewStateUpdatedEvent(snapshot domain.ClickerSnapshot) Event {
	return newClickerEvent(ClickerStateUpdated, snapshot.PlayerID, StateUpdatedPayloadV1{Snapshot: snapshot})
}
