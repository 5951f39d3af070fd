// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/errors"
)

// ErrSnapshotNotFound is returned when no snapshot has been written under a key.
var ErrSnapshotNotFound = errors.Sentinel("cart snapshot not found")

// CartSnapshotRepository is a durable key-value slot holding encoded cart snapshots.
// SaveSnapshot must replace the stored value atomically: readers see either the previous
// snapshot or the new one, never a mix.
type CartSnapshotRepository interface {
	// SaveSnapshot overwrites the snapshot stored under key.
	SaveSnapshot(ctx context.Context, key string, data []byte) error

	// LoadSnapshot returns the snapshot stored under key or ErrSnapshotNotFound.
	LoadSnapshot(ctx context.Context, key string) ([]byte, error)

	// DeleteSnapshot removes the snapshot under key. Deleting a missing key is not an error.
	DeleteSnapshot(ctx context.Context, key string) error

	// Close releases the underlying connection or bucket.
	Close() error
}
