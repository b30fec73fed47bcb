package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/KissClicker_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for the clicker events pushed to clients
func (s *Subscriber) Subscribe() {
	handlers := map[event.Type]event.Handler{
		event.ClickerStateUpdated: s.handleStateUpdated,
		event.MilestoneUnlocked:   s.handleMilestoneUnlocked,
		event.UpgradePurchased:    s.handleUpgradePurchased,
		event.BossStarted:         s.handleBossStarted,
		event.BossDefeated:        s.handleBossDefeated,
		event.ClickerReset:        s.handleReset,
	}

	types := make([]string, 0, len(handlers))
	for t, h := range handlers {
		s.bus.Subscribe(t, h)
		types = append(types, string(t))
	}

	slog.Info(LogMsgSubscriberReady, "types", types)
}

func (s *Subscriber) handleStateUpdated(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.StateUpdatedPayloadV1](evt.Payload)
	if err != nil {
		return s.invalid(ctx, evt, err)
	}

	snap := p.Snapshot
	s.broadcast(ctx, EventTypeStateUpdated, snap.PlayerID, StatePayload{
		PlayerID:      snap.PlayerID,
		TotalScore:    snap.State.TotalScore,
		DisplayScore:  snap.DisplayScore,
		ClickPower:    snap.State.ClickPower,
		CurrentHat:    snap.State.CurrentHat,
		Phase:         snap.Phase,
		BossHealth:    snap.State.BossHealth,
		NextMilestone: snap.NextMilestone,
	})
	return nil
}

func (s *Subscriber) handleMilestoneUnlocked(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.MilestoneUnlockedPayloadV1](evt.Payload)
	if err != nil {
		return s.invalid(ctx, evt, err)
	}

	s.broadcast(ctx, EventTypeMilestoneUnlocked, p.PlayerID, MilestonePayload{
		PlayerID:  p.PlayerID,
		Threshold: p.Threshold,
		Label:     p.Label,
		Image:     p.Image,
		BossDrop:  p.BossDrop,
	})
	return nil
}

func (s *Subscriber) handleUpgradePurchased(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.UpgradePurchasedPayloadV1](evt.Payload)
	if err != nil {
		return s.invalid(ctx, evt, err)
	}

	s.broadcast(ctx, EventTypeUpgradePurchased, p.PlayerID, UpgradePayload{
		PlayerID: p.PlayerID,
		Power:    p.Power,
		Cost:     p.Cost,
	})
	return nil
}

func (s *Subscriber) handleBossStarted(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.BossStartedPayloadV1](evt.Payload)
	if err != nil {
		return s.invalid(ctx, evt, err)
	}

	s.broadcast(ctx, EventTypeBossStarted, p.PlayerID, BossPayload{
		PlayerID: p.PlayerID,
		Health:   p.Health,
	})
	return nil
}

func (s *Subscriber) handleBossDefeated(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.BossDefeatedPayloadV1](evt.Payload)
	if err != nil {
		return s.invalid(ctx, evt, err)
	}

	reward := p.Reward
	s.broadcast(ctx, EventTypeBossDefeated, p.PlayerID, BossPayload{
		PlayerID: p.PlayerID,
		Reward:   &reward,
	})
	return nil
}

func (s *Subscriber) handleReset(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.ClickerResetPayloadV1](evt.Payload)
	if err != nil {
		return s.invalid(ctx, evt, err)
	}

	s.broadcast(ctx, EventTypeClickerReset, p.PlayerID, ResetPayload{
		PlayerID:      p.PlayerID,
		PreviousScore: p.PreviousScore,
	})
	return nil
}

func (s *Subscriber) broadcast(ctx context.Context, eventType, playerID string, payload interface{}) {
	s.hub.Broadcast(eventType, playerID, payload)
	slog.DebugContext(ctx, LogMsgEventBroadcast, "event_type", eventType, "player_id", playerID)
}

// invalid logs and swallows a payload error so the publish still succeeds
func (s *Subscriber) invalid(ctx context.Context, evt event.Event, err error) error {
	slog.WarnContext(ctx, LogMsgInvalidEventPayload, "event_type", evt.Type, "error", err)
	return nil
}
