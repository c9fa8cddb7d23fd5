// Package metadata is the client's local key-value store. It holds the
// cached session (access token, account email) between runs.
package metadata

import (
	"context"
)

// Repository is the store contract. Values are opaque byte slices; a missing
// key reads back as (nil, nil).
type Repository interface {
	// Get returns the value under key, or (nil, nil) when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes the value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// List returns a snapshot of every stored pair.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear removes everything.
	Clear(ctx context.Context) error
}
