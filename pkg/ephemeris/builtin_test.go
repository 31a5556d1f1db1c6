package ephemeris

import (
	"math"
	"testing"

	"github.com/maheshsubedi/grahas/pkg/astrotime"
)

func TestBuiltinSunAtEquinox(t *testing.T) {
	p := NewBuiltinProvider()

	// 2000 March equinox, 07:35 UTC: the Sun crosses longitude 0.
	jd := astrotime.JulianDay(2451623.816)
	pos, err := p.Calc(Sun, jd)
	if err != nil {
		t.Fatalf("Calc error: %v", err)
	}

	if d := math.Abs(arcDelta(0, pos.Longitude)); d > 0.5 {
		t.Errorf("Sun at equinox: lon = %v, want within 0.5° of 0", pos.Longitude)
	}
	if pos.Latitude != 0 {
		t.Errorf("Sun latitude = %v, want 0 (geometric model)", pos.Latitude)
	}
	if pos.Distance < 0.98 || pos.Distance > 1.02 {
		t.Errorf("Sun distance = %v AU, outside annual range", pos.Distance)
	}

	// The Sun advances eastward about a degree a day.
	if pos.Speed < 0.9 || pos.Speed > 1.1 {
		t.Errorf("Sun speed = %v deg/day, want ≈1", pos.Speed)
	}
}

func TestBuiltinMoonPlausibility(t *testing.T) {
	p := NewBuiltinProvider()

	for _, jd := range []astrotime.JulianDay{2448026.864583333, 2451545, 2460000.5} {
		pos, err := p.Calc(Moon, jd)
		if err != nil {
			t.Fatalf("Calc error: %v", err)
		}

		if pos.Longitude < 0 || pos.Longitude >= 360 {
			t.Errorf("jd %v: Moon lon %v not normalized", float64(jd), pos.Longitude)
		}
		if math.Abs(pos.Latitude) > 5.5 {
			t.Errorf("jd %v: Moon lat %v outside ±5.5°", float64(jd), pos.Latitude)
		}
		// Perigee to apogee, in AU, with slack for the truncated series.
		if pos.Distance < 0.00235 || pos.Distance > 0.00280 {
			t.Errorf("jd %v: Moon distance %v AU implausible", float64(jd), pos.Distance)
		}
		// The Moon covers roughly 12 to 15 degrees a day, always direct.
		if pos.Speed < 10.5 || pos.Speed > 16 {
			t.Errorf("jd %v: Moon speed %v deg/day implausible", float64(jd), pos.Speed)
		}
	}
}

func TestBuiltinRahuAtJ2000(t *testing.T) {
	p := NewBuiltinProvider()

	pos, err := p.Calc(Rahu, astrotime.J2000)
	if err != nil {
		t.Fatalf("Calc error: %v", err)
	}

	// The mean node polynomial reduces to its constant term at the epoch.
	if math.Abs(pos.Longitude-125.04452) > 1e-3 {
		t.Errorf("Rahu at J2000 = %v, want 125.04452", pos.Longitude)
	}

	// The mean node regresses about 0.053 degrees a day.
	if pos.Speed > -0.0505 || pos.Speed < -0.0555 {
		t.Errorf("Rahu speed = %v deg/day, want ≈ -0.053", pos.Speed)
	}
}

func TestBuiltinInnerPlanetElongation(t *testing.T) {
	p := NewBuiltinProvider()

	// Inner planets never stray far from the Sun: Mercury stays within
	// about 28° and Venus within about 48°.
	for _, jd := range []astrotime.JulianDay{2440587.5, 2448026.864583333, 2451545, 2462502.25} {
		sun, err := p.Calc(Sun, jd)
		if err != nil {
			t.Fatalf("Sun error: %v", err)
		}

		merc, err := p.Calc(Mercury, jd)
		if err != nil {
			t.Fatalf("Mercury error: %v", err)
		}
		if d := math.Abs(arcDelta(sun.Longitude, merc.Longitude)); d > 30 {
			t.Errorf("jd %v: Mercury elongation %v° exceeds geometric limit", float64(jd), d)
		}

		venus, err := p.Calc(Venus, jd)
		if err != nil {
			t.Fatalf("Venus error: %v", err)
		}
		if d := math.Abs(arcDelta(sun.Longitude, venus.Longitude)); d > 50 {
			t.Errorf("jd %v: Venus elongation %v° exceeds geometric limit", float64(jd), d)
		}
	}
}

func TestBuiltinOuterPlanetDistances(t *testing.T) {
	p := NewBuiltinProvider()
	jd := astrotime.JulianDay(2451545)

	cases := []struct {
		body     Body
		min, max float64 // geocentric distance bounds, AU
	}{
		{Mars, 0.37, 2.7},
		{Jupiter, 3.9, 6.5},
		{Saturn, 7.9, 11.1},
	}

	for _, tc := range cases {
		pos, err := p.Calc(tc.body, jd)
		if err != nil {
			t.Fatalf("Calc(%v) error: %v", tc.body, err)
		}
		if pos.Distance < tc.min || pos.Distance > tc.max {
			t.Errorf("%v distance = %v AU, want within [%v, %v]", tc.body, pos.Distance, tc.min, tc.max)
		}
	}
}

func TestBuiltinCannotComputeKetu(t *testing.T) {
	// Ketu is derived by the accessor's node rule, never by a provider.
	p := NewBuiltinProvider()
	if _, err := p.Calc(Ketu, 2451545); err == nil {
		t.Error("expected error computing Ketu directly")
	}
}

func TestArcDelta(t *testing.T) {
	cases := []struct {
		from, to, want float64
	}{
		{10, 20, 10},
		{20, 10, -10},
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, 180},
	}

	for _, tc := range cases {
		if got := arcDelta(tc.from, tc.to); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("arcDelta(%v, %v) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
