package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/KissClicker_Go/internal/domain"
)

// SaveStore is an in-process SaveStore for single-instance deployments and tests
type SaveStore struct {
	mu    sync.RWMutex
	saves map[string][]byte
}

// NewSaveStore creates an empty in-memory save store
func NewSaveStore() *SaveStore {
	return &SaveStore{saves: make(map[string][]byte)}
}

// Load returns a copy of the stored bytes
func (s *SaveStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.saves[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSaveNotFound, key)
	}
	return append([]byte(nil), data...), nil
}

// Save stores a copy of data, replacing any previous value
func (s *SaveStore) Save(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saves[key] = append([]byte(nil), data...)
	return nil
}

// Delete removes the key; deleting a missing key is not an error
func (s *SaveStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.saves, key)
	return nil
}

// Ping always succeeds
func (s *SaveStore) Ping(context.Context) error {
	return nil
}

// Len reports the number of stored saves
func (s *SaveStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.saves)
}
