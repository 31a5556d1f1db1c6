package cli

import (
	"strings"
	"testing"

	"github.com/maheshsubedi/grahas/pkg/ephemeris"
	"github.com/maheshsubedi/grahas/pkg/houses"
	"github.com/maheshsubedi/grahas/pkg/varga"
)

func TestBirthFlagsMoment(t *testing.T) {
	b := birthFlags{
		date: "1990-05-15", time: "14:30", zone: "Asia/Kathmandu",
		lat: 27.7172, lon: 85.3240,
	}

	m, err := b.moment()
	if err != nil {
		t.Fatalf("moment() error: %v", err)
	}

	if m.Civil.Year() != 1990 || m.Civil.Month() != 5 || m.Civil.Day() != 15 {
		t.Errorf("date = %v", m.Civil)
	}
	if m.Civil.Hour() != 14 || m.Civil.Minute() != 30 {
		t.Errorf("time = %v", m.Civil)
	}
	if m.Zone != "Asia/Kathmandu" || m.Latitude != 27.7172 {
		t.Errorf("place = %s %v", m.Zone, m.Latitude)
	}
}

func TestBirthFlagsMomentErrors(t *testing.T) {
	cases := []struct {
		name string
		b    birthFlags
		want string
	}{
		{"missing date", birthFlags{time: "12:00", zone: "UTC"}, "--date is required"},
		{"bad date", birthFlags{date: "15/05/1990", time: "12:00", zone: "UTC"}, "invalid --date"},
		{"bad time", birthFlags{date: "1990-05-15", time: "2pm", zone: "UTC"}, "invalid --time"},
		{"bad zone", birthFlags{date: "1990-05-15", time: "12:00", zone: "Nowhere/Nowhere"}, "timezone"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.b.moment()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestBirthFlagsProvided(t *testing.T) {
	if (&birthFlags{}).provided() {
		t.Error("empty flags should not count as provided")
	}
	if !(&birthFlags{date: "1990-05-15"}).provided() {
		t.Error("a date makes the flags provided")
	}
}

func TestFrameFlagsResolve(t *testing.T) {
	f := frameFlags{ayanamsa: "lahiri", houseSystem: "whole-sign"}
	ayanamsa, system, err := f.resolve()
	if err != nil {
		t.Fatalf("resolve() error: %v", err)
	}
	if ayanamsa != ephemeris.Lahiri || system != houses.WholeSign {
		t.Errorf("resolve() = %v/%v", ayanamsa, system)
	}

	// One-letter house codes work too.
	f = frameFlags{ayanamsa: "raman", houseSystem: "P"}
	if _, system, err = f.resolve(); err != nil || system != houses.Placidus {
		t.Errorf("resolve(P) = %v, err %v", system, err)
	}

	if _, _, err := (&frameFlags{ayanamsa: "sayana", houseSystem: "whole-sign"}).resolve(); err == nil {
		t.Error("expected error for unknown ayanamsa")
	}
	if _, _, err := (&frameFlags{ayanamsa: "lahiri", houseSystem: "koch"}).resolve(); err == nil {
		t.Error("expected error for unknown house system")
	}
}

func TestParseDivisions(t *testing.T) {
	got, err := parseDivisions("D9")
	if err != nil || len(got) != 1 || got[0] != varga.D9 {
		t.Errorf("parseDivisions(D9) = %v, err %v", got, err)
	}

	got, err = parseDivisions("D2, navamsa ,30")
	if err != nil || len(got) != 3 || got[0] != varga.D2 || got[1] != varga.D9 || got[2] != varga.D30 {
		t.Errorf("parseDivisions(list) = %v, err %v", got, err)
	}

	got, err = parseDivisions("all")
	if err != nil || len(got) != 13 {
		t.Errorf("parseDivisions(all) = %d divisions, err %v", len(got), err)
	}

	if _, err := parseDivisions("D9,D5"); err == nil {
		t.Error("expected error for an unsupported division in the list")
	}
}

func TestParseCoordinate(t *testing.T) {
	if v, err := parseCoordinate("27.7172", "latitude"); err != nil || v != 27.7172 {
		t.Errorf("parseCoordinate = %v, err %v", v, err)
	}
	if v, err := parseCoordinate("  -85.3 ", "longitude"); err != nil || v != -85.3 {
		t.Errorf("parseCoordinate trimmed = %v, err %v", v, err)
	}
	if v, err := parseCoordinate("", "latitude"); err != nil || v != 0 {
		t.Errorf("empty coordinate = %v, err %v", v, err)
	}
	if _, err := parseCoordinate("north", "latitude"); err == nil {
		t.Error("expected error for a non-numeric coordinate")
	}
}
