package discord

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/KissClicker_Go/internal/domain"
	"github.com/osse101/KissClicker_Go/internal/sse"
)

func TestSSEClient_DispatchesToNotifier(t *testing.T) {
	hub := sse.NewHub()
	hub.Start()
	defer hub.Stop()

	mux := http.NewServeMux()
	mux.Handle(sseEventsPath, sse.Handler(hub))
	api := httptest.NewServer(mux)
	defer api.Close()

	client := NewSSEClient(api.URL, "", NotifiedEventTypes)
	sender := &fakeSender{}
	received := make(chan SSEEvent, 1)
	NewSSENotifier(sender, "chan-1").RegisterHandlers(client)
	client.OnEvent(domain.EventTypeBossDefeated, func(evt SSEEvent) error {
		received <- evt
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client.Start(ctx)
	defer client.Stop()

	require.Eventually(t, func() bool {
		return client.IsConnected() && hub.ClientCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	reward := domain.Milestone{Threshold: 1500, Label: "英雄帽", Image: "hat-boss.png"}
	hub.Broadcast(domain.EventTypeClickerStateUpdated, "42", sse.StatePayload{PlayerID: "42"})
	hub.Broadcast(domain.EventTypeBossDefeated, "42", sse.BossPayload{PlayerID: "42", Reward: &reward})

	select {
	case evt := <-received:
		assert.Equal(t, domain.EventTypeBossDefeated, evt.Type)
		assert.Equal(t, "42", evt.PlayerID)
	case <-time.After(2 * time.Second):
		t.Fatal("boss defeated event not dispatched")
	}

	require.Len(t, sender.embeds, 1)
	assert.Contains(t, sender.embeds[0].Description, "英雄帽")
}

func TestSSEClient_StopIsIdempotent(t *testing.T) {
	client := NewSSEClient("http://127.0.0.1:0", "", nil)
	client.Start(context.Background())
	client.Stop()
	client.Stop()
	assert.False(t, client.IsConnected())
}
