package domain

// UpgradeStatus describes one upgrade from the point of view of a player
type UpgradeStatus struct {
	Upgrade
	Purchased  bool `json:"purchased"`
	Affordable bool `json:"affordable"`
}

// ClickerSnapshot is the render-ready view of a player's game
type ClickerSnapshot struct {
	PlayerID      string          `json:"player_id"`
	State         GameState       `json:"state"`
	Phase         GamePhase       `json:"phase"`
	DisplayScore  string          `json:"display_score"`
	NextMilestone *Milestone      `json:"next_milestone,omitempty"`
	Upgrades      []UpgradeStatus `json:"upgrades"`
}

// ClickOutcome pairs a click result with the state it produced
type ClickOutcome struct {
	Result   ClickResult     `json:"result"`
	Snapshot ClickerSnapshot `json:"snapshot"`
}

// PurchaseOutcome pairs a purchase result with the resulting state
type PurchaseOutcome struct {
	Result   PurchaseResult  `json:"result"`
	Snapshot ClickerSnapshot `json:"snapshot"`
}

// BossOutcome pairs a boss damage result with the resulting state
type BossOutcome struct {
	Result   BossResult      `json:"result"`
	Snapshot ClickerSnapshot `json:"snapshot"`
}
