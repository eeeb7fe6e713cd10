package usecase

import "context"

// SnapshotStore persists one JSON snapshot blob per profile. The blob is
// opaque to the store; encoding and decoding happen in this package.
type SnapshotStore interface {
	// Load returns the stored blob and whether one exists for the profile.
	Load(ctx context.Context, profileID string) (string, bool, error)
	// Save overwrites the profile's blob.
	Save(ctx context.Context, profileID string, blob string) error
}
