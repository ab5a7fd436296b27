package store

import (
	"context"
	"encoding/json"
)

// Adapter is a persistence backend for serialized conversation history,
// keyed by thread id. Implementations must be safe for concurrent use.
type Adapter interface {
	// Get retrieves a value by key. Returns nil, false, nil if not found.
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)

	// Set stores a value by key, replacing any previous value.
	Set(ctx context.Context, key string, value json.RawMessage) error

	// Delete removes a key. No error if the key doesn't exist.
	Delete(ctx context.Context, key string) error

	// Keys returns all stored keys.
	Keys(ctx context.Context) ([]string, error)

	// Len returns the number of stored keys.
	Len(ctx context.Context) (int, error)

	// Clear removes all data.
	Clear(ctx context.Context) error
}
