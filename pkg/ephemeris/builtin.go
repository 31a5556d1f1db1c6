package ephemeris

import (
	"fmt"
	"math"

	"github.com/maheshsubedi/grahas/pkg/astrotime"
)

// BuiltinProvider computes positions from truncated analytic series and mean
// orbital elements. It needs no external data and serves as the degraded mode
// when higher-precision ephemeris files are absent.
//
// Accuracy is on the order of arcminutes for the Sun and planets and a few
// arcminutes for the Moon, which is adequate for sign-, house- and
// nakshatra-level work but not for eclipse timing.
type BuiltinProvider struct{}

// NewBuiltinProvider creates the analytic provider.
func NewBuiltinProvider() *BuiltinProvider {
	return &BuiltinProvider{}
}

// Name returns the provider name.
func (p *BuiltinProvider) Name() string { return "builtin" }

// Close releases nothing; the analytic provider holds no resources.
func (p *BuiltinProvider) Close() error { return nil }

// Ayanamsa evaluates the configured sidereal model. Pure table math, safe for
// concurrent readers.
func (p *BuiltinProvider) Ayanamsa(system AyanamsaSystem, jd astrotime.JulianDay) (float64, error) {
	return ayanamsaValue(system, jd)
}

// speedStep is the half-step in days for the central-difference speed
// estimate.
const speedStep = 0.01

// Calc computes the tropical position of body at jd. Longitudinal speed is
// estimated by central difference over ±speedStep days.
func (p *BuiltinProvider) Calc(body Body, jd astrotime.JulianDay) (RawPosition, error) {
	lon, lat, dist, err := p.positionAt(body, jd)
	if err != nil {
		return RawPosition{}, err
	}

	lonBefore, _, _, err := p.positionAt(body, jd-speedStep)
	if err != nil {
		return RawPosition{}, err
	}
	lonAfter, _, _, err := p.positionAt(body, jd+speedStep)
	if err != nil {
		return RawPosition{}, err
	}

	return RawPosition{
		Body:      body,
		Longitude: astrotime.Normalize360(lon),
		Latitude:  lat,
		Distance:  dist,
		Speed:     arcDelta(lonBefore, lonAfter) / (2 * speedStep),
	}, nil
}

// arcDelta returns the signed shortest-arc difference to - from in degrees.
func arcDelta(from, to float64) float64 {
	d := math.Mod(to-from, 360)
	if d > 180 {
		d -= 360
	}
	if d < -180 {
		d += 360
	}
	return d
}

// positionAt dispatches to the per-body model.
func (p *BuiltinProvider) positionAt(body Body, jd astrotime.JulianDay) (lon, lat, dist float64, err error) {
	switch body {
	case Sun:
		lon, lat, dist = sunPosition(jd)
	case Moon:
		lon, lat, dist = moonPosition(jd)
	case Mercury, Venus, Mars, Jupiter, Saturn:
		lon, lat, dist = planetPosition(body, jd)
	case Rahu:
		lon, lat, dist = meanNodePosition(jd)
	default:
		return 0, 0, 0, fmt.Errorf("builtin provider cannot compute body %d (%s)", body, body)
	}
	return lon, lat, dist, nil
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }

// sunPosition returns the Sun's geometric tropical longitude, latitude and
// distance (Meeus, Astronomical Algorithms, ch. 25).
func sunPosition(jd astrotime.JulianDay) (lon, lat, dist float64) {
	t := jd.Centuries()

	l0 := 280.46646 + 36000.76983*t + 0.0003032*t*t
	m := 357.52911 + 35999.05029*t - 0.0001537*t*t
	e := 0.016708634 - 0.000042037*t - 0.0000001267*t*t

	mr := deg2rad(m)
	c := (1.914602-0.004817*t-0.000014*t*t)*math.Sin(mr) +
		(0.019993-0.000101*t)*math.Sin(2*mr) +
		0.000289*math.Sin(3*mr)

	trueLon := l0 + c
	nu := deg2rad(m + c)
	r := 1.000001018 * (1 - e*e) / (1 + e*math.Cos(nu))

	return astrotime.Normalize360(trueLon), 0, r
}

// moonPosition returns the Moon's tropical longitude, latitude and distance
// from a truncated Meeus-style series over the five fundamental arguments.
func moonPosition(jd astrotime.JulianDay) (lon, lat, dist float64) {
	d := float64(jd) - float64(astrotime.J2000)

	// Fundamental arguments, degrees, linear rates in deg/day.
	lp := astrotime.Normalize360(218.3164477 + 13.17639648*d) // mean longitude
	ms := astrotime.Normalize360(357.5291092 + 0.98560028*d)  // Sun mean anomaly
	mm := astrotime.Normalize360(134.9633964 + 13.06499295*d) // Moon mean anomaly
	el := astrotime.Normalize360(297.8501921 + 12.19074912*d) // mean elongation
	f := astrotime.Normalize360(93.2720950 + 13.22935024*d)   // argument of latitude

	msr := deg2rad(ms)
	mmr := deg2rad(mm)
	elr := deg2rad(el)
	fr := deg2rad(f)

	lon = lp +
		6.289*math.Sin(mmr) +
		1.274*math.Sin(2*elr-mmr) +
		0.658*math.Sin(2*elr) +
		0.214*math.Sin(2*mmr) -
		0.186*math.Sin(msr) -
		0.114*math.Sin(2*fr)

	lat = 5.128*math.Sin(fr) +
		0.280*math.Sin(mmr+fr) +
		0.278*math.Sin(mmr-fr) +
		0.173*math.Sin(2*elr-fr)

	distKm := 385000.56 -
		20905.355*math.Cos(mmr) -
		3699.111*math.Cos(2*elr-mmr) -
		2955.968*math.Cos(2*elr)

	const kmPerAU = 149597870.7
	return astrotime.Normalize360(lon), lat, distKm / kmPerAU
}

// meanNodePosition returns the Moon's mean ascending node (Rahu).
// The mean node regresses through the zodiac; its speed is negative.
func meanNodePosition(jd astrotime.JulianDay) (lon, lat, dist float64) {
	t := jd.Centuries()
	omega := 125.04452 - 1934.136261*t + 0.0020708*t*t + t*t*t/450000
	return astrotime.Normalize360(omega), 0, 0.002570
}

// orbital holds Keplerian mean elements at J2000.0 with linear rates per
// Julian century (Standish, "Keplerian Elements for Approximate Positions of
// the Major Planets").
type orbital struct {
	a, aDot   float64 // semi-major axis, AU
	e, eDot   float64 // eccentricity
	i, iDot   float64 // inclination, degrees
	l, lDot   float64 // mean longitude, degrees
	pi, piDot float64 // longitude of perihelion, degrees
	om, omDot float64 // longitude of ascending node, degrees
}

var planetElements = map[Body]orbital{
	Mercury: {0.38709927, 0.00000037, 0.20563593, 0.00001906, 7.00497902, -0.00594749,
		252.25032350, 149472.67411175, 77.45779628, 0.16047689, 48.33076593, -0.12534081},
	Venus: {0.72333566, 0.00000390, 0.00677672, -0.00004107, 3.39467605, -0.00078890,
		181.97909950, 58517.81538729, 131.60246718, 0.00268329, 76.67984255, -0.27769418},
	Mars: {1.52371034, 0.00001847, 0.09339410, 0.00007882, 1.84969142, -0.00813131,
		-4.55343205, 19140.30268499, -23.94362959, 0.44441088, 49.55953891, -0.29257343},
	Jupiter: {5.20288700, -0.00011607, 0.04838624, -0.00013253, 1.30439695, -0.00183714,
		34.39644051, 3034.74612775, 14.72847983, 0.21252668, 100.47390909, 0.20469106},
	Saturn: {9.53667594, -0.00125060, 0.05386179, -0.00050991, 2.48599187, 0.00193609,
		49.95424423, 1222.49362201, 92.59887831, -0.41897216, 113.66242448, -0.28867794},
}

// earthElements is the Earth-Moon barycenter, used to shift heliocentric
// planet vectors to the geocenter.
var earthElements = orbital{1.00000261, 0.00000562, 0.01671123, -0.00004392, -0.00001531, -0.01294668,
	100.46457166, 35999.37244981, 102.93768193, 0.32327364, 0, 0}

// heliocentric returns the body's rectangular ecliptic coordinates (AU)
// relative to the Sun at time t (Julian centuries from J2000.0).
func (o orbital) heliocentric(t float64) (x, y, z float64) {
	a := o.a + o.aDot*t
	e := o.e + o.eDot*t
	inc := deg2rad(o.i + o.iDot*t)
	l := o.l + o.lDot*t
	pi := o.pi + o.piDot*t
	om := deg2rad(o.om + o.omDot*t)

	// Mean anomaly and argument of perihelion.
	m := deg2rad(astrotime.Normalize360(l - pi))
	w := deg2rad(pi) - om

	// Kepler's equation, Newton iteration.
	ecc := m
	for i := 0; i < 12; i++ {
		ecc -= (ecc - e*math.Sin(ecc) - m) / (1 - e*math.Cos(ecc))
	}

	// Orbital-plane coordinates.
	xp := a * (math.Cos(ecc) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(ecc)

	cw, sw := math.Cos(w), math.Sin(w)
	co, so := math.Cos(om), math.Sin(om)
	ci, si := math.Cos(inc), math.Sin(inc)

	x = (cw*co-sw*so*ci)*xp + (-sw*co-cw*so*ci)*yp
	y = (cw*so+sw*co*ci)*xp + (-sw*so+cw*co*ci)*yp
	z = (sw*si)*xp + (cw*si)*yp
	return x, y, z
}

// planetPosition returns a planet's geocentric tropical longitude, latitude
// and distance from mean orbital elements.
func planetPosition(body Body, jd astrotime.JulianDay) (lon, lat, dist float64) {
	t := jd.Centuries()

	px, py, pz := planetElements[body].heliocentric(t)
	ex, ey, ez := earthElements.heliocentric(t)

	gx, gy, gz := px-ex, py-ey, pz-ez

	lon = astrotime.Normalize360(rad2deg(math.Atan2(gy, gx)))
	lat = rad2deg(math.Atan2(gz, math.Hypot(gx, gy)))
	dist = math.Sqrt(gx*gx + gy*gy + gz*gz)
	return lon, lat, dist
}

// Ensure BuiltinProvider implements Provider.
var _ Provider = (*BuiltinProvider)(nil)
