// Package chart assembles complete Vedic charts from the calculation
// components: time conversion, the ephemeris accessor, the house calculator
// and the zodiacal classifier.
//
// Every chart is computed fresh per request and never mutated after return;
// no result shares mutable state with another in-flight calculation.
package chart

import (
	"time"

	"github.com/maheshsubedi/grahas/pkg/astrotime"
	"github.com/maheshsubedi/grahas/pkg/ephemeris"
	"github.com/maheshsubedi/grahas/pkg/errors"
	"github.com/maheshsubedi/grahas/pkg/houses"
	"github.com/maheshsubedi/grahas/pkg/zodiac"
)

// BirthMoment is a validated civil birth datetime and location. Immutable;
// construct with NewBirthMoment.
type BirthMoment struct {
	Civil     time.Time `json:"civil"` // wall-clock fields, interpreted in Zone
	Zone      string    `json:"zone"`  // IANA timezone identifier
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// NewBirthMoment validates and constructs a birth moment. The civil time's
// own location is ignored; its wall-clock fields are interpreted in zone.
// Validation fails fast, before any ephemeris work.
func NewBirthMoment(civil time.Time, zone string, latitude, longitude float64) (BirthMoment, error) {
	if err := errors.ValidateTimezone(zone); err != nil {
		return BirthMoment{}, err
	}
	if err := errors.ValidateYear(civil.Year()); err != nil {
		return BirthMoment{}, err
	}
	if err := errors.ValidateLatitude(latitude); err != nil {
		return BirthMoment{}, err
	}
	if err := errors.ValidateLongitude(longitude); err != nil {
		return BirthMoment{}, err
	}

	return BirthMoment{
		Civil:     civil,
		Zone:      zone,
		Latitude:  latitude,
		Longitude: longitude,
	}, nil
}

// JulianDay converts the birth moment to its Julian Day.
func (m BirthMoment) JulianDay() (astrotime.JulianDay, error) {
	return astrotime.ToJulianDay(m.Civil, m.Zone)
}

// BodyPosition is one body's fully classified position within a chart.
// Value type: positions are independent copies, never aliased to internal
// calculation buffers.
type BodyPosition struct {
	Body      ephemeris.Body `json:"body"`
	Longitude float64        `json:"longitude"` // sidereal, [0, 360)
	Latitude  float64        `json:"latitude"`
	Distance  float64        `json:"distance"`
	Speed     float64        `json:"speed"` // negative means retrograde

	Sign      zodiac.Sign `json:"sign"`
	DMS       zodiac.DMS  `json:"dms"`
	Nakshatra int         `json:"nakshatra"` // [0, 26]
	Pada      int         `json:"pada"`      // [1, 4]

	House int `json:"house"` // [1, 12]

	// HousedByFallback records that the closest-cusp heuristic assigned the
	// house because no cusp range claimed the longitude. Degraded, not failed.
	HousedByFallback bool `json:"housed_by_fallback,omitempty"`
}

// Retrograde reports whether the body's apparent motion is backward.
func (p BodyPosition) Retrograde() bool {
	return p.Speed < 0
}

// VedicChart is a complete natal chart: the validated input, the derived
// astronomical time, the sidereal frame, the chart angles and every tracked
// body's position.
type VedicChart struct {
	Moment       BirthMoment         `json:"moment"`
	JulianDay    astrotime.JulianDay `json:"julian_day"`
	Ayanamsa     float64             `json:"ayanamsa"`
	AyanamsaName string              `json:"ayanamsa_name"`
	Ascendant    float64             `json:"ascendant"` // sidereal
	Midheaven    float64             `json:"midheaven"` // sidereal
	Positions    []BodyPosition      `json:"positions"`
	Angles       houses.Angles       `json:"angles"` // sidereal cusps
	HouseSystem  houses.System       `json:"house_system"`
}

// Position returns the position of the given body, if tracked.
func (c *VedicChart) Position(body ephemeris.Body) (BodyPosition, bool) {
	for _, p := range c.Positions {
		if p.Body == body {
			return p, true
		}
	}
	return BodyPosition{}, false
}
