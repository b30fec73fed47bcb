package sse

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/osse101/KissClicker_Go/internal/domain"
	"github.com/osse101/KissClicker_Go/internal/event"
)

func TestSubscriber_BridgesClickerEvents(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	client := hub.Register(nil, "p1")
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	ctx := context.Background()
	snapshot := domain.ClickerSnapshot{
		PlayerID:     "p1",
		State:        domain.GameState{TotalScore: 1500, ClickPower: 10, BossActive: true, BossHealth: 100},
		Phase:        domain.PhaseBossActive,
		DisplayScore: "1,500",
	}

	require.NoError(t, bus.Publish(ctx, event.NewBossStartedEvent("p1", 100, 1500)))
	require.NoError(t, bus.Publish(ctx, event.NewStateUpdatedEvent(snapshot)))
	require.NoError(t, bus.Publish(ctx, event.NewBossDefeatedEvent("p1", domain.Milestone{Threshold: 1500, Label: "英雄帽"})))

	started := receive(t, client)
	assert.Equal(t, EventTypeBossStarted, started.Type)
	assert.Equal(t, BossPayload{PlayerID: "p1", Health: 100}, started.Payload)

	state := receive(t, client)
	assert.Equal(t, EventTypeStateUpdated, state.Type)
	payload, ok := state.Payload.(StatePayload)
	require.True(t, ok)
	assert.Equal(t, "1,500", payload.DisplayScore)
	assert.Equal(t, domain.PhaseBossActive, payload.Phase)

	defeated := receive(t, client)
	assert.Equal(t, EventTypeBossDefeated, defeated.Type)
	boss, ok := defeated.Payload.(BossPayload)
	require.True(t, ok)
	require.NotNil(t, boss.Reward)
	assert.Equal(t, 1500, boss.Reward.Threshold)
}

func TestSubscriber_IgnoresClicksAndBadPayloads(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	client := hub.Register(nil, "")
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, event.NewClickedEvent("p1", domain.ClickResult{Value: 1}, 1)))
	require.NoError(t, bus.Publish(ctx, event.Event{Type: event.ClickerReset, Payload: 42}))

	expectNothing(t, client)
}
