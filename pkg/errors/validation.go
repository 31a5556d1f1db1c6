package errors

import (
	"strings"
	"time"
	"unicode"
)

// Domain limits for birth data validation.
//
// The year bounds track the proleptic Gregorian range the time converter
// supports; latitude/longitude are plain geographic ranges.
const (
	MinYear = 1
	MaxYear = 9999

	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ValidateLatitude validates a geographic latitude in degrees.
func ValidateLatitude(lat float64) error {
	if lat < MinLatitude || lat > MaxLatitude {
		return New(ErrCodeInvalidCoordinates, "latitude %.6f outside [%.0f, %.0f]", lat, MinLatitude, MaxLatitude)
	}
	return nil
}

// ValidateLongitude validates a geographic longitude in degrees.
func ValidateLongitude(lon float64) error {
	if lon < MinLongitude || lon > MaxLongitude {
		return New(ErrCodeInvalidCoordinates, "longitude %.6f outside [%.0f, %.0f]", lon, MinLongitude, MaxLongitude)
	}
	return nil
}

// ValidateYear validates a civil year against the supported Gregorian range.
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return New(ErrCodeInvalidDate, "year %d outside [%d, %d]", year, MinYear, MaxYear)
	}
	return nil
}

// ValidateTimezone validates an IANA timezone identifier.
//
// The identifier must be non-blank, free of control characters, and loadable
// from the platform timezone database. "Local" is rejected: a birth moment
// must name an explicit zone to be reproducible across machines.
func ValidateTimezone(zone string) error {
	if strings.TrimSpace(zone) == "" {
		return New(ErrCodeInvalidTimezone, "timezone cannot be blank")
	}

	for _, r := range zone {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTimezone, "timezone contains invalid control characters")
		}
	}

	if zone == "Local" {
		return New(ErrCodeInvalidTimezone, "timezone must be an explicit IANA identifier, not %q", zone)
	}

	if _, err := time.LoadLocation(zone); err != nil {
		return Wrap(ErrCodeInvalidTimezone, err, "unknown timezone: %s", zone)
	}

	return nil
}

// ValidateRecordName validates a saved birth-record name.
// Names are used in file paths and cache keys, so the rules are conservative.
func ValidateRecordName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "record name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "record name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "record name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "record name cannot contain path separators")
	}

	return nil
}
