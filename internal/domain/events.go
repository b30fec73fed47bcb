package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "clicker.reset")
const (
	// EventTypeClickerStateUpdated is published after every persisted mutation
	EventTypeClickerStateUpdated = "clicker.state_updated"

	// EventTypeClickerClicked is published for every ordinary or boss click
	EventTypeClickerClicked = "clicker.clicked"

	// EventTypeMilestoneUnlocked is published once per newly unlocked milestone
	EventTypeMilestoneUnlocked = "clicker.milestone_unlocked"

	// EventTypeUpgradePurchased is published when an upgrade purchase succeeds
	EventTypeUpgradePurchased = "clicker.upgrade_purchased"

	// EventTypeBossStarted is published when the boss battle begins
	EventTypeBossStarted = "clicker.boss_started"

	// EventTypeBossDamaged is published for explicit boss damage requests
	EventTypeBossDamaged = "clicker.boss_damaged"

	// EventTypeBossDefeated is published when the boss health reaches zero
	EventTypeBossDefeated = "clicker.boss_defeated"

	// EventTypeClickerReset is published when a player confirms a reset
	EventTypeClickerReset = "clicker.reset"
)
