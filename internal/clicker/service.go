package clicker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/KissClicker_Go/internal/concurrency"
	"github.com/osse101/KissClicker_Go/internal/domain"
	"github.com/osse101/KissClicker_Go/internal/event"
	"github.com/osse101/KissClicker_Go/internal/logger"
	"github.com/osse101/KissClicker_Go/internal/repository"
)

// MaxPlayerIDLength bounds player ids used in save keys
const MaxPlayerIDLength = 64

// Service defines the clicker feature interface
type Service interface {
	GetState(ctx context.Context, playerID string) (*domain.ClickerSnapshot, error)
	Click(ctx context.Context, playerID string) (*domain.ClickOutcome, error)
	PurchaseUpgrade(ctx context.Context, playerID string, power int) (*domain.PurchaseOutcome, error)
	DamageBoss(ctx context.Context, playerID string, amount int) (*domain.BossOutcome, error)
	Reset(ctx context.Context, playerID string, confirmed bool) (*domain.ClickerSnapshot, error)
	Tables() domain.ClickerTables
	Shutdown(ctx context.Context) error
}

// ServiceConfig tunes the state cache
type ServiceConfig struct {
	CacheSize int
	CacheTTL  time.Duration
}

type service struct {
	engine    *Engine
	store     repository.SaveStore
	publisher event.Bus
	cache     *stateCache
	locks     *concurrency.LockManager
}

// NewService creates a new clicker service. publisher may be nil.
func NewService(engine *Engine, store repository.SaveStore, publisher event.Bus, cfg ServiceConfig) Service {
	return &service{
		engine:    engine,
		store:     store,
		publisher: publisher,
		cache:     newStateCache(cfg.CacheSize, cfg.CacheTTL),
		locks:     concurrency.NewLockManager(),
	}
}

// SaveKey returns the store key of a player's save
func SaveKey(playerID string) string {
	return SaveKeyPrefix + ":" + playerID
}

// mutation changes a state and returns the events describing the change.
// No events means nothing changed and nothing is saved.
type mutation func(state *domain.GameState) ([]event.Event, error)

// GetState returns the player's current snapshot, defaults when no save exists
func (s *service) GetState(ctx context.Context, playerID string) (*domain.ClickerSnapshot, error) {
	state, err := s.withState(ctx, playerID, nil)
	if err != nil {
		return nil, err
	}
	snap := s.engine.Snapshot(playerID, state)
	return &snap, nil
}

// Click applies one click (or one boss hit while the battle runs)
func (s *service) Click(ctx context.Context, playerID string) (*domain.ClickOutcome, error) {
	var result domain.ClickResult
	state, err := s.withState(ctx, playerID, func(state *domain.GameState) ([]event.Event, error) {
		result = s.engine.ApplyClick(state)

		events := []event.Event{event.NewClickedEvent(playerID, result, state.TotalScore)}
		events = append(events, s.progressEvents(ctx, playerID, state, result.Unlocked, result.BossStarted, result.Boss)...)

		logger.FromContext(ctx).Debug(LogMsgClickApplied,
			"player_id", playerID,
			"value", result.Value,
			"critical", result.Critical,
			"total_score", state.TotalScore)
		return events, nil
	})
	if err != nil {
		return nil, err
	}

	return &domain.ClickOutcome{Result: result, Snapshot: s.engine.Snapshot(playerID, state)}, nil
}

// PurchaseUpgrade buys the upgrade with the given power at its table cost.
// Rejected purchases are reported in the outcome status, not as errors.
func (s *service) PurchaseUpgrade(ctx context.Context, playerID string, power int) (*domain.PurchaseOutcome, error) {
	upgrade, ok := FindUpgrade(s.engine.Tables(), power)
	if !ok {
		return nil, fmt.Errorf("%w: no upgrade with power %d", domain.ErrUpgradeNotFound, power)
	}

	var result domain.PurchaseResult
	state, err := s.withState(ctx, playerID, func(state *domain.GameState) ([]event.Event, error) {
		result = s.engine.PurchaseUpgrade(state, upgrade.Power, upgrade.Cost)
		log := logger.FromContext(ctx)

		if result.Status != domain.PurchaseStatusPurchased {
			log.Info(LogMsgUpgradeRejected, "player_id", playerID, "power", power, "status", result.Status)
			return nil, nil
		}

		log.Info(LogMsgUpgradePurchased,
			"player_id", playerID,
			"power", power,
			"cost", upgrade.Cost,
			"deducted", result.Deducted)
		return []event.Event{event.NewUpgradePurchasedEvent(playerID, result)}, nil
	})
	if err != nil {
		return nil, err
	}

	return &domain.PurchaseOutcome{Result: result, Snapshot: s.engine.Snapshot(playerID, state)}, nil
}

// DamageBoss applies an explicit amount of boss damage
func (s *service) DamageBoss(ctx context.Context, playerID string, amount int) (*domain.BossOutcome, error) {
	var result domain.BossResult
	state, err := s.withState(ctx, playerID, func(state *domain.GameState) ([]event.Event, error) {
		var err error
		result, err = s.engine.ApplyBossDamage(state, amount)
		if err != nil {
			return nil, err
		}
		events := []event.Event{event.NewBossDamagedEvent(playerID, result)}
		return append(events, s.progressEvents(ctx, playerID, state, nil, false, &result)...), nil
	})
	if err != nil {
		return nil, err
	}

	return &domain.BossOutcome{Result: result, Snapshot: s.engine.Snapshot(playerID, state)}, nil
}

// Reset wipes the player's save. Without confirmation nothing happens.
func (s *service) Reset(ctx context.Context, playerID string, confirmed bool) (*domain.ClickerSnapshot, error) {
	if err := validatePlayerID(playerID); err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, domain.ErrResetNotConfirmed
	}

	mu := s.locks.GetLock(playerID)
	mu.Lock()
	defer mu.Unlock()

	previous, err := s.loadState(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err := s.store.Delete(ctx, SaveKey(playerID)); err != nil {
		s.cache.Invalidate(playerID)
		return nil, fmt.Errorf("failed to delete save: %w", err)
	}

	state := domain.NewGameState()
	s.cache.Set(playerID, state)
	snap := s.engine.Snapshot(playerID, state)

	logger.FromContext(ctx).Info(LogMsgStateReset, "player_id", playerID, "previous_score", previous.TotalScore)
	s.publish(ctx, event.NewClickerResetEvent(playerID, previous.TotalScore))
	s.publish(ctx, event.NewStateUpdatedEvent(snap))

	return &snap, nil
}

// Tables returns the configured content tables
func (s *service) Tables() domain.ClickerTables {
	return s.engine.Tables()
}

// Shutdown drops cached states; every mutation is already persisted
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgServiceShuttingDown)
	s.cache.Clear()
	log.Info(LogMsgCachePurgedOnShutdown)
	return nil
}

// withState runs fn on the player's state under the player's lock, then
// persists, caches and announces the change. A nil fn only loads.
func (s *service) withState(ctx context.Context, playerID string, fn mutation) (*domain.GameState, error) {
	if err := validatePlayerID(playerID); err != nil {
		return nil, err
	}

	mu := s.locks.GetLock(playerID)
	mu.Lock()
	defer mu.Unlock()

	state, err := s.loadState(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return state, nil
	}

	events, err := fn(state)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return state, nil
	}

	if err := s.persist(ctx, playerID, state); err != nil {
		return nil, err
	}

	for _, evt := range events {
		s.publish(ctx, evt)
	}
	s.publish(ctx, event.NewStateUpdatedEvent(s.engine.Snapshot(playerID, state)))
	return state, nil
}

// loadState returns a private copy of the player's state: cache, then store,
// then defaults. Saves with unreadable fields are recovered, not rejected.
func (s *service) loadState(ctx context.Context, playerID string) (*domain.GameState, error) {
	if state, ok := s.cache.Get(playerID); ok {
		return state, nil
	}

	data, err := s.store.Load(ctx, SaveKey(playerID))
	if errors.Is(err, domain.ErrSaveNotFound) {
		state := domain.NewGameState()
		s.cache.Set(playerID, state)
		return state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load save: %w", err)
	}

	state, err := s.engine.Deserialize(data)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidSaveData) {
			return nil, err
		}
		logger.FromContext(ctx).Warn(LogMsgSaveRecovered, "player_id", playerID, "error", err)
	}

	s.cache.Set(playerID, state)
	return state, nil
}

func (s *service) persist(ctx context.Context, playerID string, state *domain.GameState) error {
	data, err := s.engine.Serialize(state)
	if err != nil {
		return err
	}
	if err := s.store.Save(ctx, SaveKey(playerID), data); err != nil {
		s.cache.Invalidate(playerID)
		return fmt.Errorf("failed to save game: %w", err)
	}
	s.cache.Set(playerID, state)
	return nil
}

// progressEvents describes unlocks and boss transitions produced by a change
func (s *service) progressEvents(ctx context.Context, playerID string, state *domain.GameState, unlocked []domain.Milestone, bossStarted bool, boss *domain.BossResult) []event.Event {
	log := logger.FromContext(ctx)
	var events []event.Event

	for _, m := range unlocked {
		log.Info(LogMsgMilestoneUnlocked, "player_id", playerID, "threshold", m.Threshold, "label", m.Label)
		events = append(events, event.NewMilestoneUnlockedEvent(playerID, m, false))
	}

	if bossStarted {
		log.Info(LogMsgBossStarted, "player_id", playerID, "total_score", state.TotalScore)
		events = append(events, event.NewBossStartedEvent(playerID, state.BossHealth, state.TotalScore))
	}

	if boss != nil && boss.Defeated && boss.Reward != nil {
		log.Info(LogMsgBossDefeated, "player_id", playerID)
		events = append(events,
			event.NewMilestoneUnlockedEvent(playerID, *boss.Reward, true),
			event.NewBossDefeatedEvent(playerID, *boss.Reward))
	}
	return events
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}

func validatePlayerID(playerID string) error {
	if strings.TrimSpace(playerID) == "" {
		return fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	if len(playerID) > MaxPlayerIDLength {
		return fmt.Errorf("%w: player id longer than %d characters", domain.ErrInvalidInput, MaxPlayerIDLength)
	}
	return nil
}
