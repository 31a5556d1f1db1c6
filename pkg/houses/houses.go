// Package houses computes house cusps and maps longitudes to houses.
//
// A house system divides the ecliptic into twelve angular ranges anchored at
// the ascendant and midheaven. The calculator produces tropical cusps; the
// caller subtracts the ayanamsa to obtain sidereal cusps. Longitude-to-house
// mapping walks the cusp ranges with wrap-safe arithmetic and falls back to
// the angularly closest cusp when numerical edge effects leave a longitude
// unclaimed.
package houses

import (
	"strings"
	"sync"

	"github.com/maheshsubedi/grahas/pkg/astrotime"
	"github.com/maheshsubedi/grahas/pkg/errors"
)

// System identifies a house system by its classical one-letter code.
type System byte

// Supported house systems.
const (
	WholeSign System = 'W'
	Equal     System = 'E'
	Placidus  System = 'P'
	Porphyry  System = 'O'
)

// String returns the system's name.
func (s System) String() string {
	switch s {
	case WholeSign:
		return "whole-sign"
	case Equal:
		return "equal"
	case Placidus:
		return "placidus"
	case Porphyry:
		return "porphyry"
	}
	return "unknown"
}

// Valid reports whether s is a supported system code.
func (s System) Valid() bool {
	switch s {
	case WholeSign, Equal, Placidus, Porphyry:
		return true
	}
	return false
}

// ParseSystem parses a house system from its one-letter code or full name
// (case-insensitive).
func ParseSystem(v string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "w", "whole-sign", "wholesign", "whole":
		return WholeSign, nil
	case "e", "equal":
		return Equal, nil
	case "p", "placidus":
		return Placidus, nil
	case "o", "porphyry":
		return Porphyry, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidHouseSystem, "unknown house system: %q", v)
}

// SystemNames returns the supported system names.
func SystemNames() []string {
	return []string{
		WholeSign.String(), Equal.String(), Placidus.String(), Porphyry.String(),
	}
}

// Angles holds one house system's twelve cusps plus the chart angles.
// Cusps[0] is the cusp of house 1. All values are ecliptic longitudes in
// [0, 360).
type Angles struct {
	Cusps     [12]float64
	Ascendant float64
	Midheaven float64
	System    System
}

// Sidereal returns a copy of the angles shifted into the sidereal frame by
// subtracting the ayanamsa offset.
func (a Angles) Sidereal(ayanamsa float64) Angles {
	out := a
	for i := range out.Cusps {
		out.Cusps[i] = astrotime.Normalize360(out.Cusps[i] - ayanamsa)
	}
	out.Ascendant = astrotime.Normalize360(out.Ascendant - ayanamsa)
	out.Midheaven = astrotime.Normalize360(out.Midheaven - ayanamsa)
	return out
}

// cuspScratch mirrors the cusp and angle arrays a raw house computation
// writes into. Arenas are pooled per calculation and zeroed before use.
type cuspScratch struct {
	cusps  [13]float64 // 1-based like the classical tables
	angles [10]float64
}

func (s *cuspScratch) reset() {
	s.cusps = [13]float64{}
	s.angles = [10]float64{}
}

// Calculator computes house cusps. The zero value is not usable; construct
// with NewCalculator. A Calculator is safe for concurrent use: each
// computation checks out a private, zeroed scratch arena.
type Calculator struct {
	pool sync.Pool
}

// NewCalculator creates a house calculator.
func NewCalculator() *Calculator {
	return &Calculator{
		pool: sync.Pool{New: func() any { return new(cuspScratch) }},
	}
}

// Cusps computes the twelve tropical house cusps, ascendant and midheaven for
// the given moment and geographic location. Latitude and longitude are
// validated before any computation.
func (c *Calculator) Cusps(jd astrotime.JulianDay, latitude, longitude float64, system System) (Angles, error) {
	if err := errors.ValidateLatitude(latitude); err != nil {
		return Angles{}, err
	}
	if err := errors.ValidateLongitude(longitude); err != nil {
		return Angles{}, err
	}
	if !system.Valid() {
		return Angles{}, errors.New(errors.ErrCodeInvalidHouseSystem, "unknown house system code: %q", string(system))
	}

	s := c.pool.Get().(*cuspScratch)
	s.reset()
	defer c.pool.Put(s)

	computeCusps(s, jd, latitude, longitude, system)

	out := Angles{System: system, Ascendant: s.angles[0], Midheaven: s.angles[1]}
	copy(out.Cusps[:], s.cusps[1:13])
	return out, nil
}
