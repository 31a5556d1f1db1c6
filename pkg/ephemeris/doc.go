// Package ephemeris provides thread-safe access to planetary position data.
//
// The package wraps an opaque numerical Provider behind an Accessor that owns
// the concurrency discipline the provider itself lacks: full-chart position
// sequences run behind an exclusive lock, ayanamsa-only lookups behind a
// shared lock, and every calculation checks out a zeroed scratch arena from a
// pool so no request can observe another's intermediate state.
//
// # Providers
//
// Two providers ship with the package:
//
//   - Builtin: an analytic provider using truncated series and mean orbital
//     elements. Always available; the degraded mode when data files are absent.
//   - DataFile: reads per-body Chebyshev coefficient files from a directory
//     for higher precision.
//
// Open selects between them: given a data directory that exists it builds a
// DataFile provider, otherwise it logs the degradation and falls back to
// Builtin. Absence of data files is a supported mode, not an error.
//
// # Lifecycle
//
// An Accessor is constructed once per session with an ayanamsa selection and
// must be closed with Close. Closing is one-way: any call after Close fails
// with the EPHEMERIS_CLOSED error code rather than blocking or reinitializing.
//
// # Sidereal correction and node bodies
//
// The Accessor returns sidereal longitudes: the configured ayanamsa offset is
// subtracted from the provider's tropical longitudes. Node bodies that the
// provider does not compute directly (Ketu) are derived from a declarative
// rule table rather than ad hoc branching: Ketu is Rahu's longitude plus 180°
// with the speed negated.
package ephemeris
