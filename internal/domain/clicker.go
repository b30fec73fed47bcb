package domain

// Milestone is a score threshold that permanently unlocks a hat once reached
type Milestone struct {
	Threshold int    `json:"threshold" yaml:"threshold" validate:"min=1"`
	Label     string `json:"label" yaml:"label" validate:"required"`
	Image     string `json:"image,omitempty" yaml:"image"`
}

// Upgrade is a purchasable click power level
type Upgrade struct {
	Power int `json:"power" yaml:"power" validate:"min=2"`
	Cost  int `json:"cost" yaml:"cost" validate:"min=0"`
}

// SpecialFace is shown for one click when the score lands exactly on Threshold
type SpecialFace struct {
	Threshold int    `json:"threshold" yaml:"threshold" validate:"min=1"`
	Image     string `json:"image" yaml:"image" validate:"required"`
}

// BossConfig holds the boss battle parameters
type BossConfig struct {
	ActivationThreshold int       `json:"activation_threshold" yaml:"activation_threshold" validate:"min=1"`
	MaxHealth           int       `json:"max_health" yaml:"max_health" validate:"min=1"`
	ClickDamage         int       `json:"click_damage" yaml:"click_damage" validate:"min=1"`
	Reward              Milestone `json:"reward" yaml:"reward"`
}

// CriticalConfig holds the golden kiss parameters
type CriticalConfig struct {
	Chance     float64 `json:"chance" yaml:"chance" validate:"gte=0,lte=1"`
	Multiplier int     `json:"multiplier" yaml:"multiplier" validate:"min=1"`
}

// ClickerTables is the static content configuration of the game
type ClickerTables struct {
	Milestones []Milestone    `json:"milestones" yaml:"milestones" validate:"dive"`
	Faces      []SpecialFace  `json:"faces" yaml:"faces" validate:"dive"`
	Upgrades   []Upgrade      `json:"upgrades" yaml:"upgrades" validate:"dive"`
	Boss       BossConfig     `json:"boss" yaml:"boss"`
	Critical   CriticalConfig `json:"critical" yaml:"critical"`
}

// GameState is the persisted clicker progress of one player
type GameState struct {
	TotalScore         int         `json:"totalScore"`
	ClickPower         int         `json:"clickPower"`
	PurchasedUpgrades  []int       `json:"purchasedUpgrades"`
	UnlockedMilestones []Milestone `json:"unlockedMilestones"`
	CurrentHat         string      `json:"currentHat"`
	BossActive         bool        `json:"bossActive"`
	BossHealth         int         `json:"bossHealth"`
	BossDefeated       bool        `json:"bossDefeated"`
}

// NewGameState returns the default state of a fresh game
func NewGameState() *GameState {
	return &GameState{
		ClickPower:         1,
		PurchasedUpgrades:  []int{},
		UnlockedMilestones: []Milestone{},
	}
}

// Clone returns a deep copy of the state
func (s *GameState) Clone() *GameState {
	c := *s
	c.PurchasedUpgrades = append([]int{}, s.PurchasedUpgrades...)
	c.UnlockedMilestones = append([]Milestone{}, s.UnlockedMilestones...)
	return &c
}

// HasUpgrade reports whether the power level was already bought
func (s *GameState) HasUpgrade(power int) bool {
	for _, p := range s.PurchasedUpgrades {
		if p == power {
			return true
		}
	}
	return false
}

// HasMilestone reports whether the threshold was already unlocked
func (s *GameState) HasMilestone(threshold int) bool {
	for _, m := range s.UnlockedMilestones {
		if m.Threshold == threshold {
			return true
		}
	}
	return false
}

// Phase returns the boss battle phase of the state
func (s *GameState) Phase() GamePhase {
	switch {
	case s.BossActive:
		return PhaseBossActive
	case s.BossDefeated:
		return PhaseBossDefeated
	default:
		return PhaseIdle
	}
}

// GamePhase is the boss state machine position
type GamePhase string

const (
	PhaseIdle         GamePhase = "idle"
	PhaseBossActive   GamePhase = "boss_active"
	PhaseBossDefeated GamePhase = "boss_defeated"
)

// PurchaseStatus is the result variant of an upgrade purchase
type PurchaseStatus string

const (
	PurchaseStatusPurchased         PurchaseStatus = "purchased"
	PurchaseStatusAlreadyPurchased  PurchaseStatus = "already_purchased"
	PurchaseStatusInsufficientFunds PurchaseStatus = "insufficient_funds"
)

// PurchaseResult reports the outcome of an upgrade purchase
type PurchaseResult struct {
	Status     PurchaseStatus `json:"status"`
	Power      int            `json:"power"`
	Cost       int            `json:"cost"`
	Deducted   int            `json:"deducted"`
	ClickPower int            `json:"click_power"`
	TotalScore int            `json:"total_score"`
}

// Err maps a rejected purchase to its domain error, nil on success
func (r PurchaseResult) Err() error {
	switch r.Status {
	case PurchaseStatusAlreadyPurchased:
		return ErrAlreadyPurchased
	case PurchaseStatusInsufficientFunds:
		return ErrInsufficientFunds
	default:
		return nil
	}
}

// MilestoneEvaluation lists what a milestone check changed
type MilestoneEvaluation struct {
	Unlocked    []Milestone `json:"unlocked,omitempty"`
	BossStarted bool        `json:"boss_started"`
}

// BossResult reports the outcome of a damage application
type BossResult struct {
	Damage   int        `json:"damage"`
	Health   int        `json:"health"`
	Defeated bool       `json:"defeated"`
	Reward   *Milestone `json:"reward,omitempty"`
}

// ClickResult reports the outcome of one click
type ClickResult struct {
	Value       int         `json:"value"`
	Critical    bool        `json:"critical"`
	Face        string      `json:"face,omitempty"`
	Unlocked    []Milestone `json:"unlocked,omitempty"`
	BossStarted bool        `json:"boss_started"`
	Boss        *BossResult `json:"boss,omitempty"`
}
