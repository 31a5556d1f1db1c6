package astrotime

import (
	"math"
	"testing"
	"time"

	"github.com/maheshsubedi/grahas/pkg/errors"
)

func TestFromUTCKnownEpochs(t *testing.T) {
	cases := []struct {
		name string
		utc  time.Time
		want float64
	}{
		{
			name: "J2000.0",
			utc:  time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			want: 2451545.0,
		},
		{
			name: "Sputnik (Meeus example 7.a)",
			utc:  time.Date(1957, 10, 4, 19, 26, 24, 0, time.UTC),
			want: 2436116.31,
		},
		{
			name: "midnight start of Gregorian day",
			utc:  time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
			want: 2448026.5,
		},
		{
			name: "proleptic Gregorian 1500",
			utc:  time.Date(1500, 1, 1, 12, 0, 0, 0, time.UTC),
			want: 2268924.0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := float64(FromUTC(tc.utc))
			if math.Abs(got-tc.want) > 1e-6 {
				t.Errorf("FromUTC(%v) = %.8f, want %.8f", tc.utc, got, tc.want)
			}
		})
	}
}

func TestToJulianDayKathmandu(t *testing.T) {
	// 1990-05-15 14:30 in Kathmandu (UTC+5:45) is 08:45 UTC.
	civil := time.Date(1990, 5, 15, 14, 30, 0, 0, time.UTC)
	jd, err := ToJulianDay(civil, "Asia/Kathmandu")
	if err != nil {
		t.Fatalf("ToJulianDay error: %v", err)
	}

	want := 2448026.5 + (8*3600+45*60)/86400.0
	if math.Abs(float64(jd)-want) > 1e-8 {
		t.Errorf("ToJulianDay = %.8f, want %.8f", float64(jd), want)
	}
}

func TestToJulianDayValidation(t *testing.T) {
	civil := time.Date(1990, 5, 15, 14, 30, 0, 0, time.UTC)

	if _, err := ToJulianDay(civil, ""); !errors.Is(err, errors.ErrCodeInvalidTimezone) {
		t.Errorf("blank zone: got %v, want INVALID_TIMEZONE", err)
	}
	if _, err := ToJulianDay(civil, "Nowhere/Nowhere"); !errors.Is(err, errors.ErrCodeInvalidTimezone) {
		t.Errorf("unknown zone: got %v, want INVALID_TIMEZONE", err)
	}

	tooEarly := time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, err := ToJulianDay(tooEarly, "UTC"); !errors.Is(err, errors.ErrCodeInvalidDate) {
		t.Errorf("year 0: got %v, want INVALID_DATE", err)
	}
}

func TestRoundTrip(t *testing.T) {
	// Forward then inverse conversion must reproduce the instant to within
	// a second across a spread of dates and zones.
	cases := []struct {
		civil time.Time
		zone  string
	}{
		{time.Date(1990, 5, 15, 14, 30, 0, 0, time.UTC), "Asia/Kathmandu"},
		{time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), "UTC"},
		{time.Date(1875, 11, 3, 6, 12, 59, 0, time.UTC), "Europe/London"},
		{time.Date(1500, 1, 1, 12, 0, 0, 0, time.UTC), "UTC"},
		{time.Date(1000, 3, 21, 6, 30, 0, 0, time.UTC), "UTC"},
		{time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC), "America/New_York"},
		{time.Date(1950, 7, 1, 3, 0, 30, 0, time.UTC), "Australia/Sydney"},
	}

	for _, tc := range cases {
		jd, err := ToJulianDay(tc.civil, tc.zone)
		if err != nil {
			t.Fatalf("ToJulianDay(%v, %s) error: %v", tc.civil, tc.zone, err)
		}

		back, err := FromJulianDay(jd, tc.zone)
		if err != nil {
			t.Fatalf("FromJulianDay error: %v", err)
		}

		loc, _ := time.LoadLocation(tc.zone)
		want := time.Date(tc.civil.Year(), tc.civil.Month(), tc.civil.Day(),
			tc.civil.Hour(), tc.civil.Minute(), tc.civil.Second(), 0, loc)

		if d := back.Sub(want); d > time.Second || d < -time.Second {
			t.Errorf("round trip %v %s: got %v, off by %v", tc.civil, tc.zone, back, d)
		}
	}
}

func TestToUTCInverse(t *testing.T) {
	instants := []time.Time{
		time.Date(1987, 6, 19, 12, 0, 0, 0, time.UTC),
		// Before the 1582 reform; the inversion stays proleptic Gregorian.
		time.Date(1500, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(700, 9, 9, 0, 0, 0, 0, time.UTC),
	}
	for _, utc := range instants {
		back := ToUTC(FromUTC(utc))
		if !back.Equal(utc) {
			t.Errorf("ToUTC(FromUTC(%v)) = %v", utc, back)
		}
	}
}

func TestCenturies(t *testing.T) {
	if got := J2000.Centuries(); got != 0 {
		t.Errorf("J2000.Centuries() = %v, want 0", got)
	}

	// One Julian century after J2000.
	jd := JulianDay(float64(J2000) + 36525)
	if got := jd.Centuries(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Centuries = %v, want 1", got)
	}
}
