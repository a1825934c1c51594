// Package cache stores rendered trip reports between CLI runs.
//
// A [Cache] maps string keys to opaque byte slices with an optional TTL.
// Keys are built by a [Keyer] from a hash of the map file contents and the
// query, so editing the map invalidates every report computed from it.
//
// Implementations:
//   - [FileCache]: one JSON file per entry under a directory, for CLI usage
//   - [NullCache]: stores nothing, used when caching is disabled
//
// Wrap a cache with [Instrument] to report hits and misses to the
// observability hooks.
package cache

import (
	"context"
	"time"
)

// Cache is a key/value store for computed results.
type Cache interface {
	// Get returns the data stored under key. A missing or expired entry is
	// reported as a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Default TTLs per entry type.
const (
	// TTLRoute bounds how long a rendered route is reused. Routes only depend
	// on the map contents, which are part of the key, so this mostly caps disk use.
	TTLRoute = 7 * 24 * time.Hour

	// TTLReach is the TTL for reachability listings.
	TTLReach = 7 * 24 * time.Hour
)
