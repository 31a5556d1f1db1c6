package houses

import (
	"math"
	"testing"

	"github.com/maheshsubedi/grahas/pkg/astrotime"
	"github.com/maheshsubedi/grahas/pkg/errors"
)

// kathmanduJD is 1990-05-15 08:45 UTC.
const kathmanduJD = astrotime.JulianDay(2448026.864583333)

func TestParseSystem(t *testing.T) {
	cases := []struct {
		in      string
		want    System
		wantErr bool
	}{
		{"W", WholeSign, false},
		{"whole-sign", WholeSign, false},
		{"WHOLE", WholeSign, false},
		{"e", Equal, false},
		{"placidus", Placidus, false},
		{"P", Placidus, false},
		{"porphyry", Porphyry, false},
		{"o", Porphyry, false},
		{"koch", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseSystem(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseSystem(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseSystem(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCuspsValidation(t *testing.T) {
	c := NewCalculator()

	if _, err := c.Cusps(kathmanduJD, 91, 85, WholeSign); !errors.Is(err, errors.ErrCodeInvalidCoordinates) {
		t.Errorf("latitude 91: got %v, want INVALID_COORDINATES", err)
	}
	if _, err := c.Cusps(kathmanduJD, 27, -200, WholeSign); !errors.Is(err, errors.ErrCodeInvalidCoordinates) {
		t.Errorf("longitude -200: got %v, want INVALID_COORDINATES", err)
	}
	if _, err := c.Cusps(kathmanduJD, 27, 85, System('K')); !errors.Is(err, errors.ErrCodeInvalidHouseSystem) {
		t.Errorf("system K: got %v, want INVALID_HOUSE_SYSTEM", err)
	}
}

func TestWholeSignCusps(t *testing.T) {
	c := NewCalculator()
	a, err := c.Cusps(kathmanduJD, 27.7172, 85.3240, WholeSign)
	if err != nil {
		t.Fatalf("Cusps error: %v", err)
	}

	// Cusp 1 is the boundary of the rising sign, and every cusp is an exact
	// sign boundary 30° from its neighbor.
	if rem := math.Mod(a.Cusps[0], 30); rem != 0 {
		t.Errorf("cusp 1 = %v, not a sign boundary", a.Cusps[0])
	}
	ascSignStart := math.Floor(a.Ascendant/30) * 30
	if a.Cusps[0] != ascSignStart {
		t.Errorf("cusp 1 = %v, want start of rising sign %v", a.Cusps[0], ascSignStart)
	}
	for i := 0; i < 12; i++ {
		next := a.Cusps[(i+1)%12]
		width := astrotime.Normalize360(next - a.Cusps[i])
		if math.Abs(width-30) > 1e-9 {
			t.Errorf("house %d width = %v, want 30", i+1, width)
		}
	}
}

func TestEqualCusps(t *testing.T) {
	c := NewCalculator()
	a, err := c.Cusps(kathmanduJD, 27.7172, 85.3240, Equal)
	if err != nil {
		t.Fatalf("Cusps error: %v", err)
	}

	if a.Cusps[0] != a.Ascendant {
		t.Errorf("cusp 1 = %v, want ascendant %v", a.Cusps[0], a.Ascendant)
	}
	for i := 0; i < 12; i++ {
		want := astrotime.Normalize360(a.Ascendant + float64(i)*30)
		if math.Abs(a.Cusps[i]-want) > 1e-9 {
			t.Errorf("cusp %d = %v, want %v", i+1, a.Cusps[i], want)
		}
	}
}

func TestPorphyryCusps(t *testing.T) {
	c := NewCalculator()
	a, err := c.Cusps(kathmanduJD, 27.7172, 85.3240, Porphyry)
	if err != nil {
		t.Fatalf("Cusps error: %v", err)
	}

	// Angular cusps pin to the chart angles.
	if a.Cusps[0] != a.Ascendant {
		t.Errorf("cusp 1 = %v, want ascendant %v", a.Cusps[0], a.Ascendant)
	}
	if a.Cusps[9] != a.Midheaven {
		t.Errorf("cusp 10 = %v, want midheaven %v", a.Cusps[9], a.Midheaven)
	}

	// Each quadrant is trisected evenly: houses 11 and 12 split MC→Asc.
	upper := astrotime.Normalize360(a.Ascendant - a.Midheaven)
	w11 := astrotime.Normalize360(a.Cusps[10] - a.Cusps[9])
	w12 := astrotime.Normalize360(a.Cusps[11] - a.Cusps[10])
	if math.Abs(w11-upper/3) > 1e-9 || math.Abs(w12-upper/3) > 1e-9 {
		t.Errorf("upper quadrant not trisected: widths %v, %v, arc %v", w11, w12, upper)
	}

	assertOppositesAndPartition(t, a)
}

func TestPlacidusCusps(t *testing.T) {
	c := NewCalculator()
	a, err := c.Cusps(kathmanduJD, 27.7172, 85.3240, Placidus)
	if err != nil {
		t.Fatalf("Cusps error: %v", err)
	}

	if a.Cusps[0] != a.Ascendant {
		t.Errorf("cusp 1 = %v, want ascendant %v", a.Cusps[0], a.Ascendant)
	}
	if a.Cusps[9] != a.Midheaven {
		t.Errorf("cusp 10 = %v, want midheaven %v", a.Cusps[9], a.Midheaven)
	}

	// Intermediate cusps must land strictly inside their quadrants.
	upper := astrotime.Normalize360(a.Ascendant - a.Midheaven)
	for _, i := range []int{10, 11} {
		off := astrotime.Normalize360(a.Cusps[i] - a.Midheaven)
		if off <= 0 || off >= upper {
			t.Errorf("cusp %d = %v outside MC→Asc quadrant", i+1, a.Cusps[i])
		}
	}

	assertOppositesAndPartition(t, a)
}

// assertOppositesAndPartition checks the two wheel invariants shared by the
// quadrant systems: cusps 4-9 oppose cusps 10-3, and the twelve widths sum to
// a full circle.
func assertOppositesAndPartition(t *testing.T, a Angles) {
	t.Helper()

	for i := 3; i <= 8; i++ {
		opp := (i + 6) % 12
		want := astrotime.Normalize360(a.Cusps[opp] + 180)
		if math.Abs(a.Cusps[i]-want) > 1e-9 {
			t.Errorf("cusp %d = %v, want opposite of cusp %d (%v)", i+1, a.Cusps[i], opp+1, want)
		}
	}

	total := 0.0
	for i := 0; i < 12; i++ {
		total += astrotime.Normalize360(a.Cusps[(i+1)%12] - a.Cusps[i])
	}
	if math.Abs(total-360) > 1e-6 {
		t.Errorf("widths sum to %v, want 360", total)
	}
}

func TestSiderealShift(t *testing.T) {
	c := NewCalculator()
	a, err := c.Cusps(kathmanduJD, 27.7172, 85.3240, Equal)
	if err != nil {
		t.Fatalf("Cusps error: %v", err)
	}

	const ayanamsa = 23.652
	s := a.Sidereal(ayanamsa)

	if got := astrotime.Normalize360(a.Ascendant - ayanamsa); math.Abs(s.Ascendant-got) > 1e-12 {
		t.Errorf("sidereal ascendant = %v, want %v", s.Ascendant, got)
	}
	for i := range a.Cusps {
		want := astrotime.Normalize360(a.Cusps[i] - ayanamsa)
		if math.Abs(s.Cusps[i]-want) > 1e-12 {
			t.Errorf("sidereal cusp %d = %v, want %v", i+1, s.Cusps[i], want)
		}
	}

	// The original is untouched.
	if a.Ascendant == s.Ascendant && ayanamsa != 0 {
		t.Error("Sidereal mutated its receiver")
	}
}

func TestAscendantInHouseOne(t *testing.T) {
	c := NewCalculator()
	for _, system := range []System{WholeSign, Equal, Placidus, Porphyry} {
		a, err := c.Cusps(kathmanduJD, 27.7172, 85.3240, system)
		if err != nil {
			t.Fatalf("Cusps(%v) error: %v", system, err)
		}

		// Nudge just past the cusp so boundary ties cannot flip the house.
		house, fallback := HouseOf(a.Ascendant+1e-6, a.Cusps)
		if house != 1 || fallback {
			t.Errorf("%v: ascendant in house %d (fallback %v), want 1", system, house, fallback)
		}
	}
}
