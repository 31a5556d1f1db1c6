// Package observability provides hooks for metrics and event counting.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about chart computation, ephemeris provider
// calls, degraded-mode activations, and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, which keeps the core
// packages free of observability-framework imports and avoids import cycles.
//
// # Usage
//
//	func main() {
//	    observability.SetEphemerisHooks(&myEphemerisHooks{})
//	    observability.SetChartHooks(&myChartHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Ephemeris().OnProviderCall(ctx, body, jd, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Chart Hooks
// =============================================================================

// ChartHooks receives events from chart assembly.
type ChartHooks interface {
	// OnChartStart fires when a full-chart computation begins.
	OnChartStart(ctx context.Context, kind string)

	// OnChartComplete fires when a full-chart computation finishes.
	OnChartComplete(ctx context.Context, kind string, duration time.Duration, err error)

	// OnHouseFallback fires when a longitude is housed by the closest-cusp
	// heuristic instead of the normal cusp-range test. This is a degraded
	// event, not a failure.
	OnHouseFallback(ctx context.Context, longitude float64, house int)
}

// =============================================================================
// Ephemeris Hooks
// =============================================================================

// EphemerisHooks receives events from the ephemeris accessor.
type EphemerisHooks interface {
	// OnProviderCall records one provider position computation.
	OnProviderCall(ctx context.Context, body string, jd float64, duration time.Duration, err error)

	// OnDegradedMode fires once when the accessor opens without
	// higher-precision data files and falls back to the built-in model.
	OnDegradedMode(ctx context.Context, reason string)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Defaults
// =============================================================================

type noopChartHooks struct{}

func (noopChartHooks) OnChartStart(context.Context, string)                               {}
func (noopChartHooks) OnChartComplete(context.Context, string, time.Duration, error)      {}
func (noopChartHooks) OnHouseFallback(context.Context, float64, int)                      {}

type noopEphemerisHooks struct{}

func (noopEphemerisHooks) OnProviderCall(context.Context, string, float64, time.Duration, error) {}
func (noopEphemerisHooks) OnDegradedMode(context.Context, string)                                {}

type noopCacheHooks struct{}

func (noopCacheHooks) OnCacheHit(context.Context, string)       {}
func (noopCacheHooks) OnCacheMiss(context.Context, string)      {}
func (noopCacheHooks) OnCacheSet(context.Context, string, int)  {}

// =============================================================================
// Registry
// =============================================================================

var (
	mu             sync.RWMutex
	chartHooks     ChartHooks     = noopChartHooks{}
	ephemerisHooks EphemerisHooks = noopEphemerisHooks{}
	cacheHooks     CacheHooks     = noopCacheHooks{}
)

// SetChartHooks registers chart hooks. Pass nil to restore the no-op default.
func SetChartHooks(h ChartHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		chartHooks = noopChartHooks{}
		return
	}
	chartHooks = h
}

// SetEphemerisHooks registers ephemeris hooks. Pass nil to restore the no-op default.
func SetEphemerisHooks(h EphemerisHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		ephemerisHooks = noopEphemerisHooks{}
		return
	}
	ephemerisHooks = h
}

// SetCacheHooks registers cache hooks. Pass nil to restore the no-op default.
func SetCacheHooks(h CacheHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		cacheHooks = noopCacheHooks{}
		return
	}
	cacheHooks = h
}

// Chart returns the registered chart hooks.
func Chart() ChartHooks {
	mu.RLock()
	defer mu.RUnlock()
	return chartHooks
}

// Ephemeris returns the registered ephemeris hooks.
func Ephemeris() EphemerisHooks {
	mu.RLock()
	defer mu.RUnlock()
	return ephemerisHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	mu.RLock()
	defer mu.RUnlock()
	return cacheHooks
}
