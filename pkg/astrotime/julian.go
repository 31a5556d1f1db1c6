// Package astrotime converts between civil datetimes and astronomical time.
//
// The canonical astronomical time representation is the continuous Julian Day
// number (JulianDay). Conversions go civil datetime + IANA timezone → UTC →
// Julian Day using the proleptic Gregorian calendar, and back. Forward then
// inverse conversion reproduces the original instant to sub-second precision.
//
// The package also provides Greenwich/local sidereal time and the mean
// obliquity of the ecliptic, which the house calculator and the built-in
// ephemeris provider both need.
package astrotime

import (
	"math"
	"time"

	"github.com/maheshsubedi/grahas/pkg/errors"
)

// JulianDay is a continuous astronomical day count (days since noon UTC,
// January 1, 4713 BC in the Julian proleptic calendar).
type JulianDay float64

// J2000 is the Julian Day of the J2000.0 epoch (2000-01-01 12:00:00 UTC).
const J2000 JulianDay = 2451545.0

// secondsPerDay is the number of SI seconds in one Julian day.
const secondsPerDay = 86400.0

// Centuries returns the number of Julian centuries between jd and J2000.0.
func (jd JulianDay) Centuries() float64 {
	return (float64(jd) - float64(J2000)) / 36525.0
}

// ToJulianDay converts a civil datetime in the named IANA timezone to a
// Julian Day. The civil time's own location is ignored; its wall-clock fields
// are reinterpreted in zone. Returns a validation error for blank or
// unrecognized zones and for years outside the supported Gregorian range.
func ToJulianDay(civil time.Time, zone string) (JulianDay, error) {
	if err := errors.ValidateTimezone(zone); err != nil {
		return 0, err
	}
	if err := errors.ValidateYear(civil.Year()); err != nil {
		return 0, err
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidTimezone, err, "unknown timezone: %s", zone)
	}

	local := time.Date(civil.Year(), civil.Month(), civil.Day(),
		civil.Hour(), civil.Minute(), civil.Second(), civil.Nanosecond(), loc)

	return FromUTC(local.UTC()), nil
}

// FromUTC converts a UTC instant to a Julian Day using the standard
// astronomical algorithm (Meeus, Astronomical Algorithms, ch. 7).
func FromUTC(t time.Time) JulianDay {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	// Treat January and February as months 13 and 14 of the previous year.
	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	jd := math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + d + b - 1524.5

	sec := float64(t.Hour())*3600 + float64(t.Minute())*60 +
		float64(t.Second()) + float64(t.Nanosecond())/1e9
	jd += sec / secondsPerDay

	return JulianDay(jd)
}

// ToUTC converts a Julian Day back to a UTC instant, rounded to the nearest
// millisecond to absorb floating-point noise in the day fraction. The
// inversion uses the proleptic Gregorian calendar for all dates, matching
// FromUTC, so forward then inverse conversion is exact even before 1582.
func ToUTC(jd JulianDay) time.Time {
	z := math.Floor(float64(jd) + 0.5)
	f := float64(jd) + 0.5 - z

	alpha := math.Floor((z - 1867216.25) / 36524.25)
	a := z + 1 + alpha - math.Floor(alpha/4)

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day := b - d - math.Floor(30.6001*e)

	month := e - 1
	if e >= 14 {
		month = e - 13
	}
	year := c - 4716
	if month <= 2 {
		year = c - 4715
	}

	sec := f * secondsPerDay
	hour := math.Floor(sec / 3600)
	sec -= hour * 3600
	minute := math.Floor(sec / 60)
	sec -= minute * 60

	t := time.Date(int(year), time.Month(month), int(day),
		int(hour), int(minute), 0, int(sec*1e9), time.UTC)
	return t.Round(time.Millisecond)
}

// FromJulianDay converts a Julian Day to a civil datetime in the named IANA
// timezone. Returns a validation error for unrecognized zones.
func FromJulianDay(jd JulianDay, zone string) (time.Time, error) {
	if err := errors.ValidateTimezone(zone); err != nil {
		return time.Time{}, err
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, errors.Wrap(errors.ErrCodeInvalidTimezone, err, "unknown timezone: %s", zone)
	}

	return ToUTC(jd).In(loc), nil
}
