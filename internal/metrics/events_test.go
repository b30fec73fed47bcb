package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/KissClicker_Go/internal/domain"
	"github.com/osse101/KissClicker_Go/internal/event"
)

func TestEventMetricsCollector_RecordsClickerEvents(t *testing.T) {
	ctx := context.Background()
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)

	normalBefore := testutil.ToFloat64(Clicks.WithLabelValues(ClickKindNormal))
	criticalBefore := testutil.ToFloat64(Clicks.WithLabelValues(ClickKindCritical))
	bossBefore := testutil.ToFloat64(Clicks.WithLabelValues(ClickKindBoss))
	earnedBefore := testutil.ToFloat64(ScoreEarned)
	spentBefore := testutil.ToFloat64(ScoreSpent)
	upgradesBefore := testutil.ToFloat64(UpgradesPurchased.WithLabelValues("2"))
	defeatedBefore := testutil.ToFloat64(BossesDefeated)
	resetsBefore := testutil.ToFloat64(Resets)

	require.NoError(t, bus.Publish(ctx, event.NewClickedEvent("p", domain.ClickResult{Value: 1}, 1)))
	require.NoError(t, bus.Publish(ctx, event.NewClickedEvent("p", domain.ClickResult{Value: 10, Critical: true}, 11)))
	require.NoError(t, bus.Publish(ctx, event.NewClickedEvent("p", domain.ClickResult{Boss: &domain.BossResult{Damage: 2}}, 11)))
	require.NoError(t, bus.Publish(ctx, event.NewUpgradePurchasedEvent("p", domain.PurchaseResult{Power: 2, Cost: 50, Deducted: 50})))
	require.NoError(t, bus.Publish(ctx, event.NewBossDefeatedEvent("p", domain.Milestone{Threshold: 1500})))
	require.NoError(t, bus.Publish(ctx, event.NewClickerResetEvent("p", 11)))

	assert.Equal(t, normalBefore+1, testutil.ToFloat64(Clicks.WithLabelValues(ClickKindNormal)))
	assert.Equal(t, criticalBefore+1, testutil.ToFloat64(Clicks.WithLabelValues(ClickKindCritical)))
	assert.Equal(t, bossBefore+1, testutil.ToFloat64(Clicks.WithLabelValues(ClickKindBoss)))
	assert.Equal(t, earnedBefore+11, testutil.ToFloat64(ScoreEarned))
	assert.Equal(t, spentBefore+50, testutil.ToFloat64(ScoreSpent))
	assert.Equal(t, upgradesBefore+1, testutil.ToFloat64(UpgradesPurchased.WithLabelValues("2")))
	assert.Equal(t, defeatedBefore+1, testutil.ToFloat64(BossesDefeated))
	assert.Equal(t, resetsBefore+1, testutil.ToFloat64(Resets))
}

func TestEventMetricsCollector_BadPayloadCountsError(t *testing.T) {
	before := testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.MilestoneUnlocked)))

	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{
		Type:    event.MilestoneUnlocked,
		Payload: "not a payload",
	})

	assert.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.MilestoneUnlocked))))
}
