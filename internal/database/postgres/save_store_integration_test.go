package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/KissClicker_Go/internal/domain"
)

func TestSaveStore_Integration(t *testing.T) {
	pool := requirePool(t)
	store := NewSaveStore(pool)
	ctx := context.Background()
	key := "kissClickerGame:integration"

	t.Run("missing key", func(t *testing.T) {
		_, err := store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrSaveNotFound)
	})

	t.Run("save then load", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, []byte(`{"totalScore":42,"clickPower":2}`)))

		data, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.JSONEq(t, `{"totalScore":42,"clickPower":2}`, string(data))
	})

	t.Run("upsert overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, []byte(`{"totalScore":43}`)))

		data, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.JSONEq(t, `{"totalScore":43}`, string(data))

		var rows int
		require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM game_saves WHERE save_key = $1", key).Scan(&rows))
		assert.Equal(t, 1, rows)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, key))
		require.NoError(t, store.Delete(ctx, key))

		_, err := store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrSaveNotFound)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})
}

func TestSaveStore_ConcurrentWriters(t *testing.T) {
	pool := requirePool(t)
	store := NewSaveStore(pool)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("kissClickerGame:concurrent-%d", i)
			if err := store.Save(ctx, key, []byte(fmt.Sprintf(`{"totalScore":%d}`, i))); err != nil {
				t.Errorf("save %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		data, err := store.Load(ctx, fmt.Sprintf("kissClickerGame:concurrent-%d", i))
		require.NoError(t, err)
		assert.JSONEq(t, fmt.Sprintf(`{"totalScore":%d}`, i), string(data))
	}
}

func TestSaveStore_InvalidJSONRejected(t *testing.T) {
	pool := requirePool(t)
	store := NewSaveStore(pool)

	err := store.Save(context.Background(), "kissClickerGame:bad", []byte(`not json`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDatabaseError)
}
