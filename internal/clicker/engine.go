package clicker

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/osse101/KissClicker_Go/internal/domain"
)

// RandomSource supplies uniform values in [0, 1) for critical rolls
type RandomSource interface {
	Float64() float64
}

// RandomFunc adapts a plain function to RandomSource
type RandomFunc func() float64

// Float64 implements RandomSource
func (f RandomFunc) Float64() float64 { return f() }

// CostPolicy decides whether a purchase spends the upgrade cost
type CostPolicy string

const (
	// CostPolicyDeduct subtracts the cost from the score
	CostPolicyDeduct CostPolicy = "deduct"
	// CostPolicyKeep only gates on the score and leaves it untouched
	CostPolicyKeep CostPolicy = "keep"
)

// ParseCostPolicy converts a config value into a CostPolicy
func ParseCostPolicy(s string) (CostPolicy, error) {
	switch CostPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", CostPolicyDeduct:
		return CostPolicyDeduct, nil
	case CostPolicyKeep:
		return CostPolicyKeep, nil
	default:
		return "", fmt.Errorf("%w: unknown upgrade cost policy %q", domain.ErrInvalidInput, s)
	}
}

// Engine provides the pure progression rules (no storage dependencies).
// All methods mutate the state passed in; callers serialize access per state.
type Engine struct {
	tables domain.ClickerTables
	faces  map[int]string
	rng    RandomSource
	policy CostPolicy
}

// Option configures an Engine
type Option func(*Engine)

// WithRandomSource overrides the critical-hit random source
func WithRandomSource(r RandomSource) Option {
	return func(e *Engine) { e.rng = r }
}

// WithCostPolicy sets the upgrade cost policy
func WithCostPolicy(p CostPolicy) Option {
	return func(e *Engine) { e.policy = p }
}

// NewEngine creates an engine over validated content tables
func NewEngine(tables domain.ClickerTables, opts ...Option) *Engine {
	e := &Engine{
		tables: normalizeTables(tables),
		rng:    RandomFunc(rand.Float64),
		policy: CostPolicyDeduct,
	}
	e.faces = make(map[int]string, len(e.tables.Faces))
	for _, f := range e.tables.Faces {
		e.faces[f.Threshold] = f.Image
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tables returns the content tables the engine was built with
func (e *Engine) Tables() domain.ClickerTables {
	return e.tables
}

// Policy returns the configured upgrade cost policy
func (e *Engine) Policy() CostPolicy {
	return e.policy
}

// ApplyClick applies one click. While the boss is active the click deals boss
// damage instead of scoring.
func (e *Engine) ApplyClick(s *domain.GameState) domain.ClickResult {
	if s.BossActive {
		boss, _ := e.ApplyBossDamage(s, e.tables.Boss.ClickDamage)
		return domain.ClickResult{Boss: &boss}
	}

	critical := e.rng.Float64() < e.tables.Critical.Chance
	value := s.ClickPower
	if critical {
		if m := e.tables.Critical.Multiplier; m > 1 && value > math.MaxInt/m {
			value = math.MaxInt
		} else {
			value *= m
		}
	}
	s.TotalScore = addScore(s.TotalScore, value)

	result := domain.ClickResult{
		Value:    value,
		Critical: critical,
		Face:     e.faces[s.TotalScore],
	}

	eval := e.EvaluateMilestones(s)
	result.Unlocked = eval.Unlocked
	result.BossStarted = eval.BossStarted
	return result
}

// addScore saturates at math.MaxInt instead of wrapping negative
func addScore(score, value int) int {
	if value > 0 && score > math.MaxInt-value {
		return math.MaxInt
	}
	return score + value
}

// EvaluateMilestones unlocks every milestone the score has reached and starts
// the boss battle the first time the activation threshold is crossed.
func (e *Engine) EvaluateMilestones(s *domain.GameState) domain.MilestoneEvaluation {
	var eval domain.MilestoneEvaluation

	for _, m := range e.tables.Milestones {
		if s.TotalScore < m.Threshold {
			break
		}
		if s.HasMilestone(m.Threshold) {
			continue
		}
		s.UnlockedMilestones = append(s.UnlockedMilestones, m)
		s.CurrentHat = m.Image
		eval.Unlocked = append(eval.Unlocked, m)
	}

	if !s.BossActive && !s.BossDefeated && s.TotalScore >= e.tables.Boss.ActivationThreshold {
		s.BossActive = true
		s.BossHealth = e.tables.Boss.MaxHealth
		eval.BossStarted = true
	}
	return eval
}

// PurchaseUpgrade buys an upgrade at the given cost. Rejections are reported
// through the result status and leave the state untouched.
func (e *Engine) PurchaseUpgrade(s *domain.GameState, power, cost int) domain.PurchaseResult {
	result := domain.PurchaseResult{Power: power, Cost: cost}

	switch {
	case s.HasUpgrade(power):
		result.Status = domain.PurchaseStatusAlreadyPurchased
	case s.TotalScore < cost:
		result.Status = domain.PurchaseStatusInsufficientFunds
	default:
		if e.policy == CostPolicyDeduct {
			s.TotalScore -= cost
			result.Deducted = cost
		}
		s.ClickPower = power
		s.PurchasedUpgrades = append(s.PurchasedUpgrades, power)
		result.Status = domain.PurchaseStatusPurchased
	}

	result.ClickPower = s.ClickPower
	result.TotalScore = s.TotalScore
	return result
}

// ApplyBossDamage subtracts health from the active boss. Reaching zero ends
// the battle for good and grants the boss reward milestone.
func (e *Engine) ApplyBossDamage(s *domain.GameState, amount int) (domain.BossResult, error) {
	if !s.BossActive {
		return domain.BossResult{Health: s.BossHealth}, domain.ErrBossNotActive
	}
	if amount <= 0 {
		return domain.BossResult{Health: s.BossHealth}, fmt.Errorf("%w: damage must be positive, got %d", domain.ErrInvalidInput, amount)
	}

	s.BossHealth -= amount
	result := domain.BossResult{Damage: amount}
	if s.BossHealth > 0 {
		result.Health = s.BossHealth
		return result, nil
	}

	s.BossHealth = 0
	s.BossActive = false
	s.BossDefeated = true

	reward := e.tables.Boss.Reward
	if !s.HasMilestone(reward.Threshold) {
		s.UnlockedMilestones = append(s.UnlockedMilestones, reward)
	}
	s.CurrentHat = reward.Image

	result.Defeated = true
	result.Reward = &reward
	return result, nil
}

// Reset restores the default state in place
func (e *Engine) Reset(s *domain.GameState) {
	*s = *domain.NewGameState()
}

// NextMilestone returns the lowest milestone not yet unlocked, nil when all are
func (e *Engine) NextMilestone(s *domain.GameState) *domain.Milestone {
	for _, m := range e.tables.Milestones {
		if !s.HasMilestone(m.Threshold) {
			next := m
			return &next
		}
	}
	return nil
}

// UpgradeStatuses annotates the upgrade table with the player's progress
func (e *Engine) UpgradeStatuses(s *domain.GameState) []domain.UpgradeStatus {
	statuses := make([]domain.UpgradeStatus, 0, len(e.tables.Upgrades))
	for _, u := range e.tables.Upgrades {
		purchased := s.HasUpgrade(u.Power)
		statuses = append(statuses, domain.UpgradeStatus{
			Upgrade:    u,
			Purchased:  purchased,
			Affordable: !purchased && s.TotalScore >= u.Cost,
		})
	}
	return statuses
}
