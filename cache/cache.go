/*
Package cache provides the injectable snapshot store for memoized analyses.

PURPOSE:
  The engine itself is pure: every public function recomputes from its
  inputs. Callers that want memoization wrap the pure functions behind this
  explicit Store boundary instead of baking caching into the calculation
  objects. The engine never touches a Store on its own.

IMPLEMENTATIONS:
  - Memory: in-process map with TTL, for single-node deployments and tests
  - Redis:  shared cache over go-redis, for multi-node deployments

SEE ALSO:
  - memory.go, redis.go: The two implementations
  - analyzer/cached.go: The boundary wrapper that uses a Store
*/
package cache

import (
	"context"
	"time"
)

// Store is a byte-value cache with TTL semantics. A miss is not an error:
// Get reports it through the boolean.
type Store interface {
	// Get returns the cached value for key, and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key. A non-positive ttl means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
