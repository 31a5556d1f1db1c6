package chart

import (
	"context"
	"time"

	"github.com/maheshsubedi/grahas/pkg/ephemeris"
	"github.com/maheshsubedi/grahas/pkg/errors"
	"github.com/maheshsubedi/grahas/pkg/houses"
	"github.com/maheshsubedi/grahas/pkg/observability"
	"github.com/maheshsubedi/grahas/pkg/zodiac"
)

// Options selects the frame a chart is computed in.
type Options struct {
	// HouseSystem is the house system code. Defaults to whole-sign.
	HouseSystem houses.System

	// Bodies lists the bodies to track, in output order. Defaults to the
	// nine grahas.
	Bodies []ephemeris.Body
}

// withDefaults fills unset options.
func (o Options) withDefaults() Options {
	if o.HouseSystem == 0 {
		o.HouseSystem = houses.WholeSign
	}
	if len(o.Bodies) == 0 {
		o.Bodies = ephemeris.Bodies()
	}
	return o
}

// Assembler orchestrates the calculation components into complete charts.
// Safe for concurrent use: the ephemeris accessor serializes provider access
// and the house calculator uses per-call scratch arenas.
type Assembler struct {
	eph  *ephemeris.Accessor
	calc *houses.Calculator
}

// NewAssembler creates a chart assembler over an open ephemeris accessor.
func NewAssembler(eph *ephemeris.Accessor) *Assembler {
	return &Assembler{
		eph:  eph,
		calc: houses.NewCalculator(),
	}
}

// Natal computes a complete sidereal chart for the given birth moment.
//
// Validation failures surface before any provider call; calculation failures
// carry the provider's diagnostic and are never replaced by default
// positions. A failure in one request does not affect concurrent requests.
func (a *Assembler) Natal(ctx context.Context, moment BirthMoment, opts Options) (*VedicChart, error) {
	opts = opts.withDefaults()

	start := time.Now()
	observability.Chart().OnChartStart(ctx, "natal")

	c, err := a.natal(ctx, moment, opts)
	observability.Chart().OnChartComplete(ctx, "natal", time.Since(start), err)
	return c, err
}

func (a *Assembler) natal(ctx context.Context, moment BirthMoment, opts Options) (*VedicChart, error) {
	if !opts.HouseSystem.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidHouseSystem, "unknown house system code: %q", string(opts.HouseSystem))
	}

	jd, err := moment.JulianDay()
	if err != nil {
		return nil, err
	}

	ayanamsa, err := a.eph.Ayanamsa(jd)
	if err != nil {
		return nil, err
	}

	tropical, err := a.calc.Cusps(jd, moment.Latitude, moment.Longitude, opts.HouseSystem)
	if err != nil {
		return nil, err
	}
	angles := tropical.Sidereal(ayanamsa)

	raw, err := a.eph.PositionSet(ctx, opts.Bodies, jd)
	if err != nil {
		return nil, err
	}

	positions := make([]BodyPosition, 0, len(raw))
	for _, r := range raw {
		cls := zodiac.Classify(r.Longitude)
		house, fallback := houses.HouseOf(r.Longitude, angles.Cusps)
		if fallback {
			observability.Chart().OnHouseFallback(ctx, r.Longitude, house)
		}

		positions = append(positions, BodyPosition{
			Body:             r.Body,
			Longitude:        cls.Longitude,
			Latitude:         r.Latitude,
			Distance:         r.Distance,
			Speed:            r.Speed,
			Sign:             cls.Sign,
			DMS:              cls.DMS,
			Nakshatra:        cls.Nakshatra,
			Pada:             cls.Pada,
			House:            house,
			HousedByFallback: fallback,
		})
	}

	return &VedicChart{
		Moment:       moment,
		JulianDay:    jd,
		Ayanamsa:     ayanamsa,
		AyanamsaName: a.eph.System().String(),
		Ascendant:    angles.Ascendant,
		Midheaven:    angles.Midheaven,
		Positions:    positions,
		Angles:       angles,
		HouseSystem:  opts.HouseSystem,
	}, nil
}
