package errors

import "testing"

func TestValidateLatitude(t *testing.T) {
	cases := []struct {
		lat     float64
		wantErr bool
	}{
		{0, false},
		{27.7172, false},
		{90, false},
		{-90, false},
		{90.0001, true},
		{-91, true},
	}

	for _, tc := range cases {
		err := ValidateLatitude(tc.lat)
		if (err != nil) != tc.wantErr {
			t.Errorf("ValidateLatitude(%v) error = %v, wantErr %v", tc.lat, err, tc.wantErr)
		}
		if err != nil && GetCode(err) != ErrCodeInvalidCoordinates {
			t.Errorf("ValidateLatitude(%v) code = %q", tc.lat, GetCode(err))
		}
	}
}

func TestValidateLongitude(t *testing.T) {
	cases := []struct {
		lon     float64
		wantErr bool
	}{
		{0, false},
		{85.3240, false},
		{180, false},
		{-180, false},
		{180.5, true},
		{-181, true},
	}

	for _, tc := range cases {
		err := ValidateLongitude(tc.lon)
		if (err != nil) != tc.wantErr {
			t.Errorf("ValidateLongitude(%v) error = %v, wantErr %v", tc.lon, err, tc.wantErr)
		}
	}
}

func TestValidateYear(t *testing.T) {
	cases := []struct {
		year    int
		wantErr bool
	}{
		{1990, false},
		{1, false},
		{9999, false},
		{0, true},
		{-44, true},
		{10000, true},
	}

	for _, tc := range cases {
		err := ValidateYear(tc.year)
		if (err != nil) != tc.wantErr {
			t.Errorf("ValidateYear(%d) error = %v, wantErr %v", tc.year, err, tc.wantErr)
		}
		if err != nil && GetCode(err) != ErrCodeInvalidDate {
			t.Errorf("ValidateYear(%d) code = %q", tc.year, GetCode(err))
		}
	}
}

func TestValidateTimezone(t *testing.T) {
	cases := []struct {
		name    string
		zone    string
		wantErr bool
	}{
		{"utc", "UTC", false},
		{"kathmandu", "Asia/Kathmandu", false},
		{"new york", "America/New_York", false},
		{"blank", "", true},
		{"whitespace", "   ", true},
		{"control chars", "Asia/\x00Kathmandu", true},
		{"local rejected", "Local", true},
		{"unknown", "Mars/Olympus_Mons", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTimezone(tc.zone)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateTimezone(%q) error = %v, wantErr %v", tc.zone, err, tc.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidTimezone {
				t.Errorf("ValidateTimezone(%q) code = %q", tc.zone, GetCode(err))
			}
		})
	}
}

func TestValidateRecordName(t *testing.T) {
	longName := make([]byte, 129)
	for i := range longName {
		longName[i] = 'a'
	}

	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"simple", "Suresh", false},
		{"spaces", "Suresh Subedi", false},
		{"unicode", "सुरेश", false},
		{"empty", "", true},
		{"too long", string(longName), true},
		{"control char", "bad\nname", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRecordName(tc.value)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateRecordName(%q) error = %v, wantErr %v", tc.value, err, tc.wantErr)
			}
		})
	}
}
