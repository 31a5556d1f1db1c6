// Package cache provides content-addressed caching for computed charts.
//
// Chart computation is deterministic: the same birth moment and calculation
// options always produce the same chart. The CLI caches serialized results
// keyed by a hash of the inputs so repeated invocations skip recomputation.
// Backends: a file cache for normal use and a null cache when caching is
// disabled.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL (0 means no expiration).
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ChartKey builds the cache key for a natal chart computation from
// everything that determines its output: the birth data, the sidereal and
// house configuration, and the provider mode (built-in results must never
// shadow data-file results).
func ChartKey(moment any, ayanamsa, houseSystem, providerMode string) string {
	return hashKey("chart", moment, ayanamsa, houseSystem, providerMode)
}

// VargaKey builds the cache key for a divisional chart computation.
func VargaKey(moment any, ayanamsa, providerMode, division string) string {
	return hashKey("varga", moment, ayanamsa, providerMode, division)
}
