package varga

import (
	"math"

	"github.com/maheshsubedi/grahas/pkg/astrotime"
	"github.com/maheshsubedi/grahas/pkg/errors"
	"github.com/maheshsubedi/grahas/pkg/zodiac"
)

// Transform maps a longitude into the given division's chart.
// The input is normalized to [0, 360); the output is in [0, 360).
func Transform(d Division, longitude float64) (float64, error) {
	lon := astrotime.Normalize360(longitude)
	sign := zodiac.SignOf(lon)
	offset := math.Mod(lon, zodiac.SignWidth)

	if d == D30 {
		return trimsamsa(sign, offset), nil
	}

	rule, ok := startRules[d]
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidDivision, "unsupported division: %s", d)
	}

	n := int(d)
	width := zodiac.SignWidth / float64(n)
	part := int(offset / width)
	if part >= n {
		part = n - 1 // guards the exact 30° boundary after float division
	}

	dest := rule(sign, part)
	within := (offset - float64(part)*width) * float64(n)
	return float64(dest)*zodiac.SignWidth + within, nil
}

// startRule selects the destination sign for one part of a source sign.
type startRule func(sign zodiac.Sign, part int) zodiac.Sign

// startRules keys every equal-part division to its classical destination
// rule. The trimsamsa (D30) has unequal parts and is handled separately.
var startRules = map[Division]startRule{
	// Hora: odd signs alternate Sun (Leo) then Moon (Cancer); even signs the
	// reverse.
	D2: func(s zodiac.Sign, p int) zodiac.Sign {
		if s.IsOdd() == (p == 0) {
			return zodiac.Leo
		}
		return zodiac.Cancer
	},

	// Drekkana: the sign itself, then the 5th and 9th from it.
	D3: func(s zodiac.Sign, p int) zodiac.Sign { return s.Add(4 * p) },

	// Chaturthamsa: the sign and its 4th, 7th and 10th.
	D4: func(s zodiac.Sign, p int) zodiac.Sign { return s.Add(3 * p) },

	// Saptamsa: odd signs count from the sign itself, even signs from the
	// 7th.
	D7: func(s zodiac.Sign, p int) zodiac.Sign {
		if s.IsOdd() {
			return s.Add(p)
		}
		return s.Add(6 + p)
	},

	// Navamsa: movable signs count from themselves, fixed from the 9th,
	// dual from the 5th.
	D9: func(s zodiac.Sign, p int) zodiac.Sign {
		switch s.Modality() {
		case zodiac.Fixed:
			return s.Add(8 + p)
		case zodiac.Dual:
			return s.Add(4 + p)
		default:
			return s.Add(p)
		}
	},

	// Dasamsa: odd signs from themselves, even signs from the 9th.
	D10: func(s zodiac.Sign, p int) zodiac.Sign {
		if s.IsOdd() {
			return s.Add(p)
		}
		return s.Add(8 + p)
	},

	// Dvadasamsa: always sequential from the sign itself.
	D12: func(s zodiac.Sign, p int) zodiac.Sign { return s.Add(p) },

	// Shodasamsa: movable from Aries, fixed from Leo, dual from Sagittarius.
	D16: func(s zodiac.Sign, p int) zodiac.Sign {
		switch s.Modality() {
		case zodiac.Fixed:
			return zodiac.Leo.Add(p)
		case zodiac.Dual:
			return zodiac.Sagittarius.Add(p)
		default:
			return zodiac.Aries.Add(p)
		}
	},

	// Vimsamsa: movable from Aries, fixed from Sagittarius, dual from Leo.
	D20: func(s zodiac.Sign, p int) zodiac.Sign {
		switch s.Modality() {
		case zodiac.Fixed:
			return zodiac.Sagittarius.Add(p)
		case zodiac.Dual:
			return zodiac.Leo.Add(p)
		default:
			return zodiac.Aries.Add(p)
		}
	},

	// Chaturvimsamsa: odd signs from Leo, even signs from Cancer.
	D24: func(s zodiac.Sign, p int) zodiac.Sign {
		if s.IsOdd() {
			return zodiac.Leo.Add(p)
		}
		return zodiac.Cancer.Add(p)
	},

	// Bhamsa: fire from Aries, earth from Cancer, air from Libra, water from
	// Capricorn.
	D27: func(s zodiac.Sign, p int) zodiac.Sign {
		switch s.Element() {
		case zodiac.Earth:
			return zodiac.Cancer.Add(p)
		case zodiac.Air:
			return zodiac.Libra.Add(p)
		case zodiac.Water:
			return zodiac.Capricorn.Add(p)
		default:
			return zodiac.Aries.Add(p)
		}
	},

	// Shashtiamsa: odd signs from themselves, even signs from the 7th.
	D60: func(s zodiac.Sign, p int) zodiac.Sign {
		if s.IsOdd() {
			return s.Add(p)
		}
		return s.Add(6 + p)
	},
}

// trimsamsaPart is one unequal trimsamsa segment: a width in degrees and the
// destination sign ruled by the segment's planetary lord.
type trimsamsaPart struct {
	width float64
	dest  zodiac.Sign
}

// Odd signs run Mars 5°, Saturn 5°, Jupiter 8°, Mercury 7°, Venus 5°; the
// lords' destination signs are their own odd-footed domiciles. Even signs
// mirror the order and use the even domiciles.
var (
	trimsamsaOdd = [5]trimsamsaPart{
		{5, zodiac.Aries},       // Mars
		{5, zodiac.Aquarius},    // Saturn
		{8, zodiac.Sagittarius}, // Jupiter
		{7, zodiac.Gemini},      // Mercury
		{5, zodiac.Libra},       // Venus
	}
	trimsamsaEven = [5]trimsamsaPart{
		{5, zodiac.Taurus},    // Venus
		{7, zodiac.Virgo},     // Mercury
		{8, zodiac.Pisces},    // Jupiter
		{5, zodiac.Capricorn}, // Saturn
		{5, zodiac.Scorpio},   // Mars
	}
)

// trimsamsa maps an in-sign offset through the unequal D30 table, rescaling
// the in-part offset so each part fills the full 30° of its destination sign.
func trimsamsa(sign zodiac.Sign, offset float64) float64 {
	parts := trimsamsaEven
	if sign.IsOdd() {
		parts = trimsamsaOdd
	}

	idx := len(parts) - 1
	start := 0.0
	for i, p := range parts[:len(parts)-1] {
		if offset < start+p.width {
			idx = i
			break
		}
		start += p.width
	}

	p := parts[idx]
	within := (offset - start) * (zodiac.SignWidth / p.width)
	if within >= zodiac.SignWidth {
		within = math.Nextafter(zodiac.SignWidth, 0) // float noise at the top edge
	}
	return float64(p.dest)*zodiac.SignWidth + within
}
