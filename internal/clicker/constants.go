package clicker

import "time"

// Default content parameters of the shipped game
const (
	DefaultCriticalChance     = 0.10
	DefaultCriticalMultiplier = 10

	DefaultBossThreshold   = 1500
	DefaultBossMaxHealth   = 100
	DefaultBossClickDamage = 2
	DefaultBossRewardLabel = "英雄帽"
	DefaultBossRewardImage = "hat-boss.png"
)

// Persistence
const (
	// SaveKeyPrefix namespaces every player save in the store
	SaveKeyPrefix = "kissClickerGame"

	// CacheSchemaVersion invalidates cached states when GameState changes shape
	CacheSchemaVersion = "1"

	DefaultCacheSize = 1024
	DefaultCacheTTL  = 10 * time.Minute
)

// Legacy save keys written by the browser version of the game
const (
	legacyKeyTotalKisses  = "totalKisses"
	legacyKeyUnlockedHats = "unlockedHats"
)

// Log messages
const (
	LogMsgClickApplied          = "Click applied"
	LogMsgMilestoneUnlocked     = "Milestone unlocked"
	LogMsgBossStarted           = "Boss battle started"
	LogMsgBossDefeated          = "Boss defeated"
	LogMsgUpgradePurchased      = "Upgrade purchased"
	LogMsgUpgradeRejected       = "Upgrade purchase rejected"
	LogMsgStateReset            = "Game state reset"
	LogMsgSaveRecovered         = "Recovered save with invalid fields"
	LogMsgPublishFailed         = "Failed to publish clicker event"
	LogMsgTablesLoaded          = "Clicker tables loaded"
	LogMsgServiceShuttingDown   = "Clicker service shutting down"
	LogMsgCachePurgedOnShutdown = "Clicker state cache purged"
)
