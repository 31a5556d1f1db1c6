// Package varga implements the thirteen divisional chart (varga) transforms.
//
// Each transform divides the 30° of a sign into N parts (equal, except the
// trimsamsa's five unequal parts), selects a destination sign per part
// according to a fixed classical rule keyed by the source sign's index,
// modality or element, then linearly rescales the in-part offset to fill 30°
// in the destination sign. Transformed bodies are re-classified and re-housed
// by whole-sign counting from the divisional ascendant.
//
// The transforms reproduce the classical reference tables exactly; each is
// independently tested against literal degree boundaries.
package varga

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maheshsubedi/grahas/pkg/errors"
)

// Division identifies a divisional chart by its harmonic number.
type Division int

// The thirteen classical divisions.
const (
	D2  Division = 2  // hora: wealth
	D3  Division = 3  // drekkana: siblings
	D4  Division = 4  // chaturthamsa: fortune
	D7  Division = 7  // saptamsa: children
	D9  Division = 9  // navamsa: marriage
	D10 Division = 10 // dasamsa: career
	D12 Division = 12 // dvadasamsa: parents
	D16 Division = 16 // shodasamsa: vehicles
	D20 Division = 20 // vimsamsa: spiritual life
	D24 Division = 24 // chaturvimsamsa: learning
	D27 Division = 27 // bhamsa: strengths
	D30 Division = 30 // trimsamsa: misfortunes
	D60 Division = 60 // shashtiamsa: past karma
)

var divisionNames = map[Division]string{
	D2: "hora", D3: "drekkana", D4: "chaturthamsa", D7: "saptamsa",
	D9: "navamsa", D10: "dasamsa", D12: "dvadasamsa", D16: "shodasamsa",
	D20: "vimsamsa", D24: "chaturvimsamsa", D27: "bhamsa", D30: "trimsamsa",
	D60: "shashtiamsa",
}

// Divisions returns the thirteen divisions in ascending harmonic order.
func Divisions() []Division {
	return []Division{D2, D3, D4, D7, D9, D10, D12, D16, D20, D24, D27, D30, D60}
}

// String returns the division's conventional label (e.g. "D9").
func (d Division) String() string {
	return fmt.Sprintf("D%d", int(d))
}

// Name returns the division's Sanskrit name.
func (d Division) Name() string {
	if n, ok := divisionNames[d]; ok {
		return n
	}
	return "unknown"
}

// Valid reports whether d is one of the thirteen supported divisions.
func (d Division) Valid() bool {
	_, ok := divisionNames[d]
	return ok
}

// ParseDivision parses a division from "D9", "9" or a Sanskrit name
// (case-insensitive).
func ParseDivision(v string) (Division, error) {
	s := strings.ToLower(strings.TrimSpace(v))
	s = strings.TrimPrefix(s, "d")

	if n, err := strconv.Atoi(s); err == nil {
		d := Division(n)
		if d.Valid() {
			return d, nil
		}
		return 0, errors.New(errors.ErrCodeInvalidDivision, "unsupported division: D%d", n)
	}

	for d, name := range divisionNames {
		if name == s {
			return d, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidDivision, "unknown division: %q", v)
}
