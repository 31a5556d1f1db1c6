package ephemeris

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/maheshsubedi/grahas/pkg/astrotime"
	"github.com/maheshsubedi/grahas/pkg/errors"
	"github.com/maheshsubedi/grahas/pkg/observability"
)

// Config configures an Accessor.
type Config struct {
	// Ayanamsa selects the sidereal reference frame. Required.
	Ayanamsa AyanamsaSystem

	// DataDir is an optional directory of higher-precision Chebyshev
	// coefficient files. When empty or absent the accessor degrades to the
	// built-in analytic provider; that is a supported mode, not an error.
	DataDir string

	// Provider overrides provider selection entirely (used by tests and by
	// hosts that bring their own numerical source). When set, DataDir is
	// ignored.
	Provider Provider

	// Logf receives human-readable lifecycle messages (degraded-mode
	// notices). Optional.
	Logf func(format string, args ...any)
}

// Accessor is the thread-safe façade over the numerical provider.
//
// A single Accessor is shared across concurrently issued requests. Full-chart
// position sequences are serialized behind an exclusive lock because the
// provider is not safe for uncoordinated concurrent invocation; ayanamsa-only
// lookups are pure table math and run behind a shared lock allowing
// concurrent readers.
type Accessor struct {
	mu       sync.RWMutex
	provider Provider
	system   AyanamsaSystem
	degraded bool
	closed   bool
	logf     func(format string, args ...any)
}

// Open constructs an Accessor for one session.
//
// With a DataDir that exists, positions come from the data-file provider;
// with an empty or missing DataDir the accessor falls back to the built-in
// analytic model and logs the degradation. A present but unreadable data
// directory is an initialization error.
func Open(cfg Config) (*Accessor, error) {
	if !cfg.Ayanamsa.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidAyanamsa, "unknown ayanamsa system: %d", cfg.Ayanamsa)
	}

	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	a := &Accessor{system: cfg.Ayanamsa, logf: logf}

	switch {
	case cfg.Provider != nil:
		a.provider = cfg.Provider

	case cfg.DataDir == "":
		a.provider = NewBuiltinProvider()
		a.degraded = true
		logf("no ephemeris data directory configured, using built-in analytic model")
		observability.Ephemeris().OnDegradedMode(context.Background(), "no data directory configured")

	default:
		if _, err := os.Stat(cfg.DataDir); os.IsNotExist(err) {
			a.provider = NewBuiltinProvider()
			a.degraded = true
			logf("ephemeris data directory %s not found, using built-in analytic model", cfg.DataDir)
			observability.Ephemeris().OnDegradedMode(context.Background(), "data directory not found")
			break
		}
		p, err := NewDataFileProvider(cfg.DataDir)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInit, err, "opening ephemeris data in %s", cfg.DataDir)
		}
		a.provider = p
	}

	return a, nil
}

// System returns the configured ayanamsa system.
func (a *Accessor) System() AyanamsaSystem { return a.system }

// Mode returns the active provider's name ("builtin" or "datafile").
func (a *Accessor) Mode() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.provider == nil {
		return "closed"
	}
	return a.provider.Name()
}

// Degraded reports whether the accessor fell back to the built-in model.
func (a *Accessor) Degraded() bool { return a.degraded }

// Position computes the sidereal position of a single body. The call runs
// under the exclusive lock: provider position calls share configuration state
// and must never interleave.
func (a *Accessor) Position(ctx context.Context, body Body, jd astrotime.JulianDay) (RawPosition, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.positionLocked(ctx, body, jd)
}

// PositionSet computes sidereal positions for a sequence of bodies as one
// atomic unit. The whole sequence holds the exclusive lock so a full chart is
// computed against a consistent provider state.
func (a *Accessor) PositionSet(ctx context.Context, bodies []Body, jd astrotime.JulianDay) ([]RawPosition, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]RawPosition, 0, len(bodies))
	for _, body := range bodies {
		pos, err := a.positionLocked(ctx, body, jd)
		if err != nil {
			return nil, err
		}
		out = append(out, pos)
	}
	return out, nil
}

// positionLocked performs one position computation. Callers hold the write
// lock.
func (a *Accessor) positionLocked(ctx context.Context, body Body, jd astrotime.JulianDay) (RawPosition, error) {
	if a.closed {
		return RawPosition{}, errors.New(errors.ErrCodeClosed, "ephemeris accessor is closed")
	}
	if !body.Valid() {
		return RawPosition{}, errors.New(errors.ErrCodeInvalidBody, "unknown body: %d", body)
	}

	s := checkoutScratch()
	defer releaseScratch(s)

	// Node bodies are derived from their rule's source body; everything else
	// goes straight to the provider.
	rule, derived := nodeRules[body]
	calcBody := body
	if derived {
		calcBody = rule.source
	}

	start := time.Now()
	raw, err := a.provider.Calc(calcBody, jd)
	observability.Ephemeris().OnProviderCall(ctx, body.String(), float64(jd), time.Since(start), err)
	if err != nil {
		// Keep the provider's diagnostic text; a plausible-but-wrong default
		// position would corrupt every downstream prediction.
		n := copy(s.errText[:], err.Error())
		return RawPosition{}, errors.Wrap(errors.ErrCodeCalculation, err,
			"computing %s at jd %.6f: %s", body, float64(jd), string(s.errText[:n]))
	}

	// Stage the raw values in the arena, apply the node rule and the
	// sidereal correction, then copy out an independent result.
	s.positions[0] = raw.Longitude
	s.positions[1] = raw.Latitude
	s.positions[2] = raw.Distance
	s.positions[3] = raw.Speed

	if derived {
		s.positions[0] = astrotime.Normalize360(s.positions[0] + rule.lonOffset)
		if rule.negateLat {
			s.positions[1] = -s.positions[1]
		}
		if rule.negateSpeed {
			s.positions[3] = -s.positions[3]
		}
	}

	ayan, err := a.provider.Ayanamsa(a.system, jd)
	if err != nil {
		return RawPosition{}, errors.Wrap(errors.ErrCodeCalculation, err,
			"computing ayanamsa at jd %.6f", float64(jd))
	}
	s.positions[0] = astrotime.Normalize360(s.positions[0] - ayan)

	return RawPosition{
		Body:      body,
		Longitude: s.positions[0],
		Latitude:  s.positions[1],
		Distance:  s.positions[2],
		Speed:     s.positions[3],
	}, nil
}

// Ayanamsa returns the sidereal offset in degrees at jd for the configured
// system. Runs under the shared lock: concurrent readers are safe because the
// computation is pure table math.
func (a *Accessor) Ayanamsa(jd astrotime.JulianDay) (float64, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.closed {
		return 0, errors.New(errors.ErrCodeClosed, "ephemeris accessor is closed")
	}

	v, err := a.provider.Ayanamsa(a.system, jd)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeCalculation, err, "computing ayanamsa at jd %.6f", float64(jd))
	}
	return v, nil
}

// Close releases the provider handle. Closing is one-way: subsequent calls
// fail immediately with EPHEMERIS_CLOSED rather than blocking or silently
// reinitializing. Close is idempotent.
func (a *Accessor) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true

	err := a.provider.Close()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "closing ephemeris provider")
	}
	return nil
}
