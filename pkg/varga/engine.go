package varga

import (
	"github.com/maheshsubedi/grahas/pkg/chart"
	"github.com/maheshsubedi/grahas/pkg/errors"
	"github.com/maheshsubedi/grahas/pkg/zodiac"
)

// Result is one divisional chart: the transformed ascendant and every
// tracked body's transformed, re-classified and re-housed position.
type Result struct {
	Division  Division             `json:"division"`
	Ascendant float64              `json:"ascendant"`
	Positions []chart.BodyPosition `json:"positions"`
}

// Compute projects a natal chart into one division.
//
// The ascendant and every body longitude pass through the division's
// transform; each transformed body is then re-classified (sign, DMS,
// nakshatra) and re-housed by whole-sign counting from the divisional
// ascendant's sign (house = sign distance + 1), not by cusps.
func Compute(natal *chart.VedicChart, d Division) (*Result, error) {
	if natal == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "natal chart is nil")
	}
	if !d.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidDivision, "unsupported division: D%d", int(d))
	}

	asc, err := Transform(d, natal.Ascendant)
	if err != nil {
		return nil, err
	}
	ascSign := zodiac.SignOf(asc)

	positions := make([]chart.BodyPosition, 0, len(natal.Positions))
	for _, p := range natal.Positions {
		lon, err := Transform(d, p.Longitude)
		if err != nil {
			return nil, err
		}

		cls := zodiac.Classify(lon)

		out := p // copy latitude, distance, speed and body id forward
		out.Longitude = cls.Longitude
		out.Sign = cls.Sign
		out.DMS = cls.DMS
		out.Nakshatra = cls.Nakshatra
		out.Pada = cls.Pada
		out.House = int(cls.Sign.Add(-int(ascSign))) + 1 // whole-sign distance from the divisional ascendant
		out.HousedByFallback = false

		positions = append(positions, out)
	}

	return &Result{Division: d, Ascendant: asc, Positions: positions}, nil
}

// All computes the thirteen divisional charts in ascending harmonic order.
func All(natal *chart.VedicChart) ([]*Result, error) {
	out := make([]*Result, 0, len(Divisions()))
	for _, d := range Divisions() {
		r, err := Compute(natal, d)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
