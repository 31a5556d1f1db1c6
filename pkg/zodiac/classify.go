package zodiac

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// DMS is a degree/minute/second position within a sign.
type DMS struct {
	Degree int // [0, 29]
	Minute int // [0, 59]
	Second int // [0, 59]
}

// String formats the position as D°M′S″.
func (d DMS) String() string {
	return fmt.Sprintf("%d°%02d′%02d″", d.Degree, d.Minute, d.Second)
}

// Position is the full zodiacal classification of one ecliptic longitude.
type Position struct {
	Longitude float64 // normalized to [0, 360)
	Sign      Sign
	DMS       DMS
	Nakshatra int // [0, 26]
	Pada      int // [1, 4]
}

// Classify decomposes a longitude into sign, degree/minute/second, nakshatra
// and pada. The decomposition is deterministic: identical inputs produce
// bit-for-bit identical results.
func Classify(longitude float64) Position {
	lon := normalize(longitude)
	nak, pada := NakshatraOf(lon)
	return Position{
		Longitude: lon,
		Sign:      SignOf(lon),
		DMS:       DMSOf(lon),
		Nakshatra: nak,
		Pada:      pada,
	}
}

// DMSOf decomposes the in-sign offset of a longitude by successive ×60 on the
// fractional remainder.
func DMSOf(longitude float64) DMS {
	offset := math.Mod(normalize(longitude), SignWidth)

	deg := math.Floor(offset)
	frac := (offset - deg) * 60
	min := math.Floor(frac)
	sec := math.Floor((frac - min) * 60)

	return DMS{Degree: int(deg), Minute: int(min), Second: int(sec)}
}

// boundaryScale is the number of decimal places the nakshatra quotient is
// rounded to before flooring. Longitudes within 5e-9 of a 13°20′ boundary
// snap onto it rather than classifying into the preceding mansion.
const boundaryScale = 8

var (
	dec27  = decimal.NewFromInt(27)
	dec108 = decimal.NewFromInt(108)
	dec360 = decimal.NewFromInt(360)
)

// NakshatraOf returns the nakshatra index in [0, 26] and pada in [1, 4] for a
// longitude. The 27 mansions are equal 13°20′ divisions; a pada is a 3°20′
// quarter. Division is done in decimal so exact boundary values land in the
// mansion that begins there.
func NakshatraOf(longitude float64) (nakshatra, pada int) {
	lon := decimal.NewFromFloat(normalize(longitude))

	// lon / (360/27) == lon*27/360, computed exactly. The quotient is
	// non-negative after normalization, so IntPart truncation is a floor.
	nq := lon.Mul(dec27).Div(dec360).Round(boundaryScale)
	nakshatra = int(nq.IntPart())

	// lon / (360/108) == lon*108/360; four padas per nakshatra.
	pq := lon.Mul(dec108).Div(dec360).Round(boundaryScale)
	pada = int(pq.IntPart())%4 + 1

	if nakshatra < 0 {
		nakshatra = 0
	}
	if nakshatra > 26 {
		nakshatra = 26
	}
	if pada < 1 {
		pada = 1
	}
	if pada > 4 {
		pada = 4
	}
	return nakshatra, pada
}
