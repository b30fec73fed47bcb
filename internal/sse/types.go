package sse

import "github.com/osse101/KissClicker_Go/internal/domain"

// Event represents an event sent over SSE
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	PlayerID  string      `json:"player_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// StatePayload is the compact state view pushed after every mutation
type StatePayload struct {
	PlayerID      string            `json:"player_id"`
	TotalScore    int               `json:"total_score"`
	DisplayScore  string            `json:"display_score"`
	ClickPower    int               `json:"click_power"`
	CurrentHat    string            `json:"current_hat,omitempty"`
	Phase         domain.GamePhase  `json:"phase"`
	BossHealth    int               `json:"boss_health"`
	NextMilestone *domain.Milestone `json:"next_milestone,omitempty"`
}

// MilestonePayload announces a newly unlocked milestone
type MilestonePayload struct {
	PlayerID  string `json:"player_id"`
	Threshold int    `json:"threshold"`
	Label     string `json:"label"`
	Image     string `json:"image,omitempty"`
	BossDrop  bool   `json:"boss_drop"`
}

// UpgradePayload announces a purchased upgrade
type UpgradePayload struct {
	PlayerID string `json:"player_id"`
	Power    int    `json:"power"`
	Cost     int    `json:"cost"`
}

// BossPayload announces a boss battle transition
type BossPayload struct {
	PlayerID string            `json:"player_id"`
	Health   int               `json:"health"`
	Reward   *domain.Milestone `json:"reward,omitempty"`
}

// ResetPayload announces a confirmed reset
type ResetPayload struct {
	PlayerID      string `json:"player_id"`
	PreviousScore int    `json:"previous_score"`
}

// ConnectedPayload is the body of the initial connected event
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters,omitempty"`
	PlayerID string   `json:"player_id,omitempty"`
}
