package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/KissClicker_Go/internal/domain"
)

const (
	queryLoadSave = `SELECT payload FROM game_saves WHERE save_key = $1`

	queryUpsertSave = `
INSERT INTO game_saves (save_key, payload, created_at, updated_at)
VALUES ($1, $2, NOW(), NOW())
ON CONFLICT (save_key) DO UPDATE
SET payload = EXCLUDED.payload, updated_at = NOW()`

	queryDeleteSave = `DELETE FROM game_saves WHERE save_key = $1`
)

// SaveStore persists serialized game states in the game_saves table
type SaveStore struct {
	db *pgxpool.Pool
}

// NewSaveStore creates a postgres-backed SaveStore
func NewSaveStore(db *pgxpool.Pool) *SaveStore {
	return &SaveStore{db: db}
}

// Load returns the raw JSON payload stored under key
func (s *SaveStore) Load(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRow(ctx, queryLoadSave, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSaveNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDatabaseError, ErrMsgFailedToLoadSave, err)
	}
	return payload, nil
}

// Save upserts the payload under key
func (s *SaveStore) Save(ctx context.Context, key string, data []byte) error {
	if _, err := s.db.Exec(ctx, queryUpsertSave, key, data); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrDatabaseError, ErrMsgFailedToWriteSave, err)
	}
	return nil
}

// Delete removes the save; deleting a missing key is not an error
func (s *SaveStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, queryDeleteSave, key); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrDatabaseError, ErrMsgFailedToDeleteSave, err)
	}
	return nil
}

// Ping checks database connectivity
func (s *SaveStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
