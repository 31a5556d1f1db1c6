package astrotime

import "math"

// Normalize360 wraps an angle in degrees to [0, 360).
func Normalize360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// GMST returns Greenwich Mean Sidereal Time in degrees for the given Julian
// Day, using the IAU-82 expression (Meeus eq. 12.4).
func GMST(jd JulianDay) float64 {
	t := jd.Centuries()

	theta := 280.46061837 +
		360.98564736629*(float64(jd)-float64(J2000)) +
		0.000387933*t*t -
		t*t*t/38710000.0

	return Normalize360(theta)
}

// LST returns local mean sidereal time in degrees for the given Julian Day
// and geographic longitude (east positive).
func LST(jd JulianDay, longitude float64) float64 {
	return Normalize360(GMST(jd) + longitude)
}

// MeanObliquity returns the mean obliquity of the ecliptic in degrees
// (Meeus eq. 22.2, truncated).
func MeanObliquity(jd JulianDay) float64 {
	t := jd.Centuries()
	return 23.43929111 - 0.0130041667*t - 1.6389e-7*t*t + 5.0361e-7*t*t*t
}
