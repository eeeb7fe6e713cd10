// Package memory provides a map-backed snapshot store for tests and
// single-process development runs.
package memory

import (
	"context"
	"sync"
)

// Store implements usecase.SnapshotStore in memory.
type Store struct {
	mu    sync.RWMutex
	blobs map[string]string
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{blobs: make(map[string]string)}
}

// Load returns the blob for a profile, if any.
func (s *Store) Load(_ context.Context, profileID string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[profileID]
	return blob, ok, nil
}

// Save overwrites the profile's blob.
func (s *Store) Save(_ context.Context, profileID, blob string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[profileID] = blob
	return nil
}
