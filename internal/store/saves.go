package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/mathquest/internal/state"
)

// SaveRepo reads and writes the durable game state. A missing or
// corrupt save is treated as "no saved state": Load then returns a
// default-initialized state rather than failing startup.
type SaveRepo interface {
	Load(ctx context.Context) (*state.GameState, error)
	Save(ctx context.Context, s *state.GameState) error

	// Reset deletes the save record, as if the game was never played.
	Reset(ctx context.Context) error
}

type saveRepo struct {
	db *sql.DB
}

func (r *saveRepo) Load(ctx context.Context) (*state.GameState, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		"SELECT data FROM saves WHERE key = ?", state.SaveKey,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return state.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load save: %w", err)
	}

	var s state.GameState
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		// A save we cannot parse is a save we don't have.
		return state.New(), nil
	}
	// Parsed but out-of-range values are clamped, not discarded.
	s.Sanitize()
	return &s, nil
}

func (r *saveRepo) Save(ctx context.Context, s *state.GameState) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO saves (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		state.SaveKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

func (r *saveRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM saves WHERE key = ?", state.SaveKey); err != nil {
		return fmt.Errorf("reset save: %w", err)
	}
	return nil
}
