package houses

import (
	"math"

	"github.com/maheshsubedi/grahas/pkg/astrotime"
)

// degenerateWidth is the threshold below which a house's angular width is
// considered numerically degenerate. This occurs at polar latitudes for some
// house systems; the width is then treated as exactly 30° to avoid dividing
// by a near-zero span.
const degenerateWidth = 0.001

// HouseOf maps an ecliptic longitude to its house number in [1, 12].
//
// For each house the normalized angular width from its start cusp to the next
// cusp (wrapping past 360°) is computed; the longitude belongs to the first
// house whose width covers its offset from the start cusp. If numerical edge
// effects leave the longitude unclaimed, it is assigned to the house with the
// angularly closest cusp (shortest-arc distance) and fallback is reported as
// true. Fallback is a degraded event, not a failure.
func HouseOf(longitude float64, cusps [12]float64) (house int, fallback bool) {
	lon := astrotime.Normalize360(longitude)

	for i := 0; i < 12; i++ {
		start := cusps[i]
		next := cusps[(i+1)%12]

		width := astrotime.Normalize360(next - start)
		if width < degenerateWidth {
			width = 30
		}

		offset := astrotime.Normalize360(lon - start)
		if offset < width {
			return i + 1, false
		}
	}

	// Numerical edge effects left the longitude unclaimed: assign the house
	// whose cusp is angularly closest.
	best := 1
	bestDist := math.MaxFloat64
	for i := 0; i < 12; i++ {
		d := arcDistance(lon, cusps[i])
		if d < bestDist {
			bestDist = d
			best = i + 1
		}
	}
	return best, true
}

// arcDistance returns the shortest angular distance between two longitudes.
func arcDistance(a, b float64) float64 {
	d := math.Abs(astrotime.Normalize360(a - b))
	if d > 180 {
		d = 360 - d
	}
	return d
}
