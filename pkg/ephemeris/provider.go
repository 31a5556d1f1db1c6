package ephemeris

import "github.com/maheshsubedi/grahas/pkg/astrotime"

// RawPosition is one body's computed position at a single instant.
//
// Values are independent copies: a RawPosition never aliases a provider's or
// accessor's internal buffers.
type RawPosition struct {
	Body      Body
	Longitude float64 // ecliptic longitude, degrees in [0, 360)
	Latitude  float64 // ecliptic latitude, degrees
	Distance  float64 // geocentric distance, AU
	Speed     float64 // longitudinal speed, degrees/day; negative means retrograde
}

// Retrograde reports whether the body's apparent motion is backward.
func (p RawPosition) Retrograde() bool {
	return p.Speed < 0
}

// Provider is the opaque numerical source of tropical positions.
//
// Implementations are NOT assumed safe for uncoordinated concurrent calls;
// the Accessor supplies that safety. Calc returns tropical (not sidereal)
// coordinates; the Accessor applies the ayanamsa correction.
type Provider interface {
	// Name returns the provider name for display and logging.
	Name() string

	// Calc computes the tropical position of body at jd. A provider that
	// cannot compute the requested body/time must return an error carrying
	// its diagnostic text, never a defaulted position.
	Calc(body Body, jd astrotime.JulianDay) (RawPosition, error)

	// Ayanamsa returns the tropical-to-sidereal offset in degrees for the
	// given system at jd. Implementations must make this safe for concurrent
	// readers: the Accessor serves ayanamsa lookups under a shared lock.
	Ayanamsa(system AyanamsaSystem, jd astrotime.JulianDay) (float64, error)

	// Close releases any resources held by the provider.
	Close() error
}
