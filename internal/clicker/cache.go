package clicker

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/KissClicker_Go/internal/domain"
)

// cachedState wraps a state with version metadata for cache invalidation
type cachedState struct {
	Version  string
	State    *domain.GameState
	CachedAt time.Time
}

// stateCache is an expiring LRU of player states in front of the SaveStore.
// It stores and returns clones so callers never share a state with the cache.
type stateCache struct {
	lru *expirable.LRU[string, *cachedState]
}

func newStateCache(size int, ttl time.Duration) *stateCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &stateCache{
		lru: expirable.NewLRU[string, *cachedState](size, nil, ttl),
	}
}

// Get returns (state, true) on a hit with a matching schema version
func (c *stateCache) Get(playerID string) (*domain.GameState, bool) {
	entry, found := c.lru.Get(playerID)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(playerID)
		return nil, false
	}
	return entry.State.Clone(), true
}

// Set stores a copy of the state
func (c *stateCache) Set(playerID string, state *domain.GameState) {
	c.lru.Add(playerID, &cachedState{
		Version:  CacheSchemaVersion,
		State:    state.Clone(),
		CachedAt: time.Now(),
	})
}

// Invalidate removes a player from the cache
func (c *stateCache) Invalidate(playerID string) {
	c.lru.Remove(playerID)
}

// Clear removes all entries
func (c *stateCache) Clear() {
	c.lru.Purge()
}

// Len reports the number of cached players
func (c *stateCache) Len() int {
	return c.lru.Len()
}
