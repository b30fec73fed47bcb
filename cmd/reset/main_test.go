package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/KissClicker_Go/internal/apiclient"
	"github.com/osse101/KissClicker_Go/internal/clicker"
	"github.com/osse101/KissClicker_Go/internal/database/memory"
	"github.com/osse101/KissClicker_Go/internal/domain"
	"github.com/osse101/KissClicker_Go/internal/server"
	"github.com/osse101/KissClicker_Go/internal/sse"
	"github.com/osse101/KissClicker_Go/mocks"
)

const testAPIKey = "test-api-key"

// newRunningService serves a clicker service with a warm state cache behind
// the real router
func newRunningService(t *testing.T) (clicker.Service, *memory.SaveStore, *apiclient.Client) {
	t.Helper()
	noCrit := clicker.RandomFunc(func() float64 { return 0.99 })
	engine := clicker.NewEngine(clicker.DefaultTables(), clicker.WithRandomSource(noCrit))
	store := memory.NewSaveStore()
	svc := clicker.NewService(engine, store, nil, clicker.ServiceConfig{CacheSize: 16, CacheTTL: time.Hour})

	ts := httptest.NewServer(server.NewRouter(server.Options{APIKey: testAPIKey}, store, svc, sse.NewHub()))
	t.Cleanup(ts.Close)

	client := apiclient.New(ts.URL, testAPIKey)
	client.RetryDelay = time.Millisecond
	return svc, store, client
}

func TestResetPlayer_WipesCachedProgress(t *testing.T) {
	ctx := context.Background()
	svc, store, client := newRunningService(t)

	for i := 0; i < 30; i++ {
		_, err := svc.Click(ctx, "p1")
		require.NoError(t, err)
	}

	require.NoError(t, resetPlayer(ctx, client, "p1", false))

	out, err := svc.Click(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, out.Snapshot.State.TotalScore, "progress from before the reset must not come back")
	assert.Empty(t, out.Snapshot.State.UnlockedMilestones)

	saved, err := store.Load(ctx, clicker.SaveKey("p1"))
	require.NoError(t, err)
	assert.Contains(t, string(saved), `"totalScore":1`)
}

func TestResetPlayer_DryRunKeepsProgress(t *testing.T) {
	ctx := context.Background()
	svc, _, client := newRunningService(t)

	for i := 0; i < 5; i++ {
		_, err := svc.Click(ctx, "bob")
		require.NoError(t, err)
	}

	require.NoError(t, resetPlayer(ctx, client, "bob", true))

	snap, err := svc.GetState(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 5, snap.State.TotalScore)
}

func TestResetPlayer_UnknownPlayerStartsFresh(t *testing.T) {
	ctx := context.Background()
	_, store, client := newRunningService(t)

	require.NoError(t, resetPlayer(ctx, client, "carol", false))
	assert.Zero(t, store.Len())
}

func TestResetPlayer_StoreFailureIsReported(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMockSaveStore(t)
	store.On("Load", mock.Anything, clicker.SaveKey("dave")).Return(nil, domain.ErrSaveNotFound)
	store.On("Delete", mock.Anything, clicker.SaveKey("dave")).Return(errors.New("connection reset"))

	svc := clicker.NewService(clicker.NewEngine(clicker.DefaultTables()), store, nil, clicker.ServiceConfig{})
	ts := httptest.NewServer(server.NewRouter(server.Options{APIKey: testAPIKey}, store, svc, sse.NewHub()))
	defer ts.Close()
	client := apiclient.New(ts.URL, testAPIKey)
	client.RetryDelay = time.Millisecond

	err := resetPlayer(ctx, client, "dave", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to reset player")
	assert.Equal(t, http.StatusInternalServerError, apiclient.StatusOf(err))
}
