package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Store implements usecase.SnapshotStore on Redis, one key per profile.
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore creates a new Store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
		prefix: "budget:snapshot:",
	}
}

// Load returns the snapshot blob for a profile, if any.
func (s *Store) Load(ctx context.Context, profileID string) (string, bool, error) {
	blob, err := s.client.Get(ctx, s.prefix+profileID).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return blob, true, nil
}

// Save overwrites the profile's snapshot blob. Snapshots do not expire.
func (s *Store) Save(ctx context.Context, profileID, blob string) error {
	if err := s.client.Set(ctx, s.prefix+profileID, blob, 0).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
