package ports

import (
	"context"
	"time"
)

// Cache stores rendered DXF documents so repeated conversions of identical input
// can be served without re-running the pen state machine.
type Cache interface {
	// Get returns the cached document for key.
	// Returns domain.ErrCacheMiss if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. A zero ttl means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
