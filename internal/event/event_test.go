package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/KissClicker_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType, Payload: "payload"})
	require.NoError(t, err)
	assert.True(t, handled, "handler was not called")
}

func TestMemoryBus_PublishMultipleHandlersInOrder(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	var order []int

	bus.Subscribe(eventType, func(context.Context, Event) error { order = append(order, 1); return nil })
	bus.Subscribe(eventType, func(context.Context, Event) error { order = append(order, 2); return nil })

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
	assert.Equal(t, []int{1, 2}, order)
}

func TestMemoryBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: Type("nobody")}))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	called := 0

	bus.Subscribe(eventType, func(context.Context, Event) error { called++; return errors.New("handler error") })
	bus.Subscribe(eventType, func(context.Context, Event) error { called++; return nil })

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler error")
	assert.Equal(t, 2, called, "a failing handler must not stop the others")

	var delivery *DeliveryError
	require.ErrorAs(t, err, &delivery)
	assert.Equal(t, eventType, delivery.EventType)
	require.Len(t, delivery.Failed, 1)
	assert.Error(t, delivery.Failed[0](context.Background(), Event{Type: eventType}))
	assert.Equal(t, 3, called)
}

func TestClickerEventConstructors(t *testing.T) {
	t.Run("clicked", func(t *testing.T) {
		evt := NewClickedEvent("p1", domain.ClickResult{Value: 10, Critical: true, Face: "face-69.png"}, 69)
		assert.Equal(t, ClickerClicked, evt.Type)
		assert.Equal(t, EventSchemaVersion, evt.Version)
		assert.Equal(t, "p1", evt.PlayerID())

		payload, err := DecodePayload[ClickedPayloadV1](evt.Payload)
		require.NoError(t, err)
		assert.Equal(t, 10, payload.Value)
		assert.True(t, payload.Critical)
		assert.False(t, payload.BossHit)
		assert.Equal(t, 69, payload.TotalScore)
	})

	t.Run("boss hit click", func(t *testing.T) {
		evt := NewClickedEvent("p1", domain.ClickResult{Boss: &domain.BossResult{Damage: 2, Health: 98}}, 1500)
		payload, err := DecodePayload[ClickedPayloadV1](evt.Payload)
		require.NoError(t, err)
		assert.True(t, payload.BossHit)
	})

	t.Run("boss defeated", func(t *testing.T) {
		reward := domain.Milestone{Threshold: 1500, Label: "Hero", Image: "hat-boss.png"}
		evt := NewBossDefeatedEvent("p2", reward)
		assert.Equal(t, BossDefeated, evt.Type)
		payload, err := DecodePayload[BossDefeatedPayloadV1](evt.Payload)
		require.NoError(t, err)
		assert.Equal(t, reward, payload.Reward)
	})

	t.Run("state updated", func(t *testing.T) {
		evt := NewStateUpdatedEvent(domain.ClickerSnapshot{PlayerID: "p3", Phase: domain.PhaseIdle})
		assert.Equal(t, "p3", evt.PlayerID())
		assert.Equal(t, ClickerStateUpdated, evt.Type)
	})
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{"player_id": "p1", "power": 2, "cost": 50, "deducted": 50, "total_score": 0}

	payload, err := DecodePayload[UpgradePurchasedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "p1", payload.PlayerID)
	assert.Equal(t, 2, payload.Power)
	assert.Equal(t, 50, payload.Deducted)
}

func TestEvent_GetMetadataValueNil(t *testing.T) {
	evt := Event{Type: ClickerReset}
	assert.Nil(t, evt.GetMetadataValue(MetadataKeyPlayerID))
	assert.Empty(t, evt.PlayerID())
}
