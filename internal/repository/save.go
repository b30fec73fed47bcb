package repository

import (
	"context"
)

// SaveStore persists serialized game states under string keys.
// Load returns domain.ErrSaveNotFound when the key has never been written.
type SaveStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
