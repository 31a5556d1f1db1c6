// Package zodiac classifies ecliptic longitudes into zodiacal coordinates.
//
// A longitude in [0, 360) maps to a sign (30° each), a degree/minute/second
// position within the sign, and a nakshatra (lunar mansion, 13°20′ each) with
// its pada (quarter, 3°20′). Nakshatra boundaries are evaluated with
// arbitrary-precision decimal arithmetic so that longitudes landing exactly on
// a 13°20′ multiple classify into the mansion that begins there, which naive
// floating-point modulo can push to the wrong side.
package zodiac

import "math"

// Sign is a zodiac sign index in [0, 11], Aries = 0.
type Sign int

// The twelve signs in zodiacal order.
const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// SignWidth is the angular width of one sign in degrees.
const SignWidth = 30.0

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// String returns the sign's English name.
func (s Sign) String() string {
	if s < 0 || s > 11 {
		return "Unknown"
	}
	return signNames[s]
}

// Modality is a sign's quality: movable, fixed, or dual.
type Modality int

// Sign modalities, repeating every three signs from Aries.
const (
	Movable Modality = iota
	Fixed
	Dual
)

// Modality returns the sign's modality (Aries movable, Taurus fixed,
// Gemini dual, and so on around the zodiac).
func (s Sign) Modality() Modality {
	return Modality(int(s) % 3)
}

// Element is a sign's element: fire, earth, air, or water.
type Element int

// Sign elements, repeating every four signs from Aries.
const (
	Fire Element = iota
	Earth
	Air
	Water
)

// Element returns the sign's element (Aries fire, Taurus earth, Gemini air,
// Cancer water, and so on around the zodiac).
func (s Sign) Element() Element {
	return Element(int(s) % 4)
}

// IsOdd reports whether the sign is odd in the classical 1-based counting
// (Aries is the 1st sign and odd; Taurus the 2nd and even).
func (s Sign) IsOdd() bool {
	return int(s)%2 == 0
}

// Add returns the sign n places forward in zodiacal order, wrapping past
// Pisces. Negative n counts backward.
func (s Sign) Add(n int) Sign {
	r := (int(s) + n) % 12
	if r < 0 {
		r += 12
	}
	return Sign(r)
}

// SignOf returns the sign containing the given longitude.
// The longitude is normalized to [0, 360) first.
func SignOf(longitude float64) Sign {
	lon := normalize(longitude)
	return Sign(int(math.Floor(lon/SignWidth)) % 12)
}

// normalize wraps a longitude to [0, 360).
func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
