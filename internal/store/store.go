package store

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// KV is the persistence collaborator behind the journal. Values are opaque
// byte blobs; last write wins and there are no transactions across keys.
type KV interface {
	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	// Get returns ErrNotFound when key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error

	// Sizes reports the stored byte length of every key.
	Sizes(ctx context.Context) (map[string]int, error)
}
