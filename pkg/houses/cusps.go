package houses

import (
	"math"

	"github.com/maheshsubedi/grahas/pkg/astrotime"
)

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }

// computeCusps fills the scratch arena's cusp and angle arrays for the given
// moment, location and system. Cusps use 1-based indexing in the arena.
func computeCusps(s *cuspScratch, jd astrotime.JulianDay, latitude, longitude float64, system System) {
	ramc := astrotime.LST(jd, longitude) // right ascension of the midheaven
	eps := astrotime.MeanObliquity(jd)

	asc := ascendant(ramc, latitude, eps)
	mc := midheaven(ramc, eps)

	s.angles[0] = asc
	s.angles[1] = mc

	switch system {
	case WholeSign:
		// Cusps are the sign boundaries counted from the rising sign.
		start := math.Floor(asc/30) * 30
		for i := 1; i <= 12; i++ {
			s.cusps[i] = astrotime.Normalize360(start + float64(i-1)*30)
		}

	case Equal:
		for i := 1; i <= 12; i++ {
			s.cusps[i] = astrotime.Normalize360(asc + float64(i-1)*30)
		}

	case Porphyry:
		porphyryCusps(s, asc, mc)

	case Placidus:
		placidusCusps(s, ramc, latitude, eps, asc, mc)
	}
}

// ascendant returns the tropical ascendant for the given RAMC, geographic
// latitude and obliquity, all in degrees.
func ascendant(ramc, latitude, eps float64) float64 {
	th := deg2rad(ramc)
	ep := deg2rad(eps)
	ph := deg2rad(latitude)

	asc := math.Atan2(math.Cos(th), -(math.Sin(th)*math.Cos(ep) + math.Tan(ph)*math.Sin(ep)))
	return astrotime.Normalize360(rad2deg(asc))
}

// midheaven returns the tropical midheaven (ecliptic longitude culminating on
// the meridian) for the given RAMC and obliquity in degrees.
func midheaven(ramc, eps float64) float64 {
	th := deg2rad(ramc)
	ep := deg2rad(eps)

	mc := math.Atan2(math.Sin(th), math.Cos(th)*math.Cos(ep))
	return astrotime.Normalize360(rad2deg(mc))
}

// porphyryCusps trisects the two ecliptic arcs between the chart angles:
// MC→Asc for houses 11 and 12, Asc→IC for houses 2 and 3. Opposite cusps
// complete the wheel.
func porphyryCusps(s *cuspScratch, asc, mc float64) {
	upper := astrotime.Normalize360(asc - mc) // MC forward to Asc
	lower := 180 - upper                      // Asc forward to IC

	s.cusps[10] = mc
	s.cusps[11] = astrotime.Normalize360(mc + upper/3)
	s.cusps[12] = astrotime.Normalize360(mc + 2*upper/3)
	s.cusps[1] = asc
	s.cusps[2] = astrotime.Normalize360(asc + lower/3)
	s.cusps[3] = astrotime.Normalize360(asc + 2*lower/3)

	fillOpposites(s)
}

// fillOpposites derives cusps 4 through 9 from their opposite cusps.
func fillOpposites(s *cuspScratch) {
	for i := 4; i <= 9; i++ {
		opp := (i+6-1)%12 + 1
		s.cusps[i] = astrotime.Normalize360(s.cusps[opp] + 180)
	}
}

// placidusCusps computes the intermediate Placidus cusps by iterating on the
// proportional semi-arc condition: the cusp of house 11 lies one third of the
// diurnal semi-arc past the meridian in right ascension, house 12 two thirds,
// and houses 2 and 3 the mirrored fractions of the nocturnal semi-arc.
//
// At extreme latitudes parts of the ecliptic are circumpolar and the
// semi-arc equation has no solution; the ascensional difference is clamped,
// which collapses the affected cusps toward the angles. HouseOf's
// degenerate-width rule absorbs the result.
func placidusCusps(s *cuspScratch, ramc, latitude, eps float64, asc, mc float64) {
	s.cusps[1] = asc
	s.cusps[10] = mc

	s.cusps[11] = placidusIterate(ramc, latitude, eps, 1.0/3.0, true)
	s.cusps[12] = placidusIterate(ramc, latitude, eps, 2.0/3.0, true)
	s.cusps[2] = placidusIterate(ramc, latitude, eps, 2.0/3.0, false)
	s.cusps[3] = placidusIterate(ramc, latitude, eps, 1.0/3.0, false)

	fillOpposites(s)
}

// placidusIterate solves for one intermediate cusp. f is the semi-arc
// fraction; diurnal selects the arc above (houses 11, 12) or below
// (houses 2, 3) the horizon.
func placidusIterate(ramc, latitude, eps float64, f float64, diurnal bool) float64 {
	ep := deg2rad(eps)
	ph := deg2rad(latitude)

	// Initial guess: the equator solution, where both semi-arcs are 90°.
	var ra float64
	if diurnal {
		ra = ramc + f*90
	} else {
		ra = ramc + 180 - f*90
	}

	for i := 0; i < 10; i++ {
		lam := eclipticFromRA(ra, ep)
		dec := math.Asin(math.Sin(ep) * math.Sin(deg2rad(lam)))

		x := math.Tan(ph) * math.Tan(dec)
		if x > 1 {
			x = 1 // circumpolar: clamp, see note above
		}
		if x < -1 {
			x = -1
		}
		ad := rad2deg(math.Asin(x)) // ascensional difference

		if diurnal {
			ra = ramc + f*(90+ad)
		} else {
			ra = ramc + 180 - f*(90-ad)
		}
	}

	return astrotime.Normalize360(eclipticFromRA(ra, ep))
}

// eclipticFromRA returns the ecliptic longitude (degrees) of the ecliptic
// point with the given right ascension (degrees); ep is the obliquity in
// radians.
func eclipticFromRA(ra float64, ep float64) float64 {
	r := deg2rad(astrotime.Normalize360(ra))
	return astrotime.Normalize360(rad2deg(math.Atan2(math.Sin(r), math.Cos(r)*math.Cos(ep))))
}
