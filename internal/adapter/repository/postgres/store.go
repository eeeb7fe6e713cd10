package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store implements usecase.SnapshotStore on PostgreSQL, one row per profile
// in budget_snapshots.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new Store.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Load returns the snapshot blob for a profile, if any.
func (s *Store) Load(ctx context.Context, profileID string) (string, bool, error) {
	var blob string
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM budget_snapshots WHERE profile_id = $1`,
		profileID,
	).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return blob, true, nil
}

// Save upserts the profile's snapshot blob.
func (s *Store) Save(ctx context.Context, profileID, blob string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO budget_snapshots (profile_id, data, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (profile_id)
		 DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		profileID, blob,
	)
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
