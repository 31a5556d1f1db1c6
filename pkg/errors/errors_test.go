package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad value: %d", 42)

	if GetCode(err) != ErrCodeInvalidInput {
		t.Errorf("GetCode = %q, want %q", GetCode(err), ErrCodeInvalidInput)
	}
	if err.Error() == "" {
		t.Error("Error() should not be empty")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	err := Wrap(ErrCodeInit, cause, "opening data files")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause with errors.Is")
	}
	if GetCode(err) != ErrCodeInit {
		t.Errorf("GetCode = %q, want %q", GetCode(err), ErrCodeInit)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeClosed, "accessor is closed")

	if !Is(err, ErrCodeClosed) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeCalculation) {
		t.Error("Is should not match a different code")
	}
	if Is(nil, ErrCodeClosed) {
		t.Error("Is(nil) should be false")
	}

	// Codes survive wrapping with fmt.Errorf %w.
	wrapped := fmt.Errorf("context: %w", err)
	if !Is(wrapped, ErrCodeClosed) {
		t.Error("Is should see through fmt.Errorf wrapping")
	}
}

func TestIsValidation(t *testing.T) {
	cases := []struct {
		code Code
		want bool
	}{
		{ErrCodeInvalidInput, true},
		{ErrCodeInvalidTimezone, true},
		{ErrCodeInvalidCoordinates, true},
		{ErrCodeInvalidDate, true},
		{ErrCodeInvalidAyanamsa, true},
		{ErrCodeInvalidHouseSystem, true},
		{ErrCodeInvalidDivision, true},
		{ErrCodeInvalidBody, true},
		{ErrCodeCalculation, false},
		{ErrCodeClosed, false},
		{ErrCodeInit, false},
	}

	for _, tc := range cases {
		err := New(tc.code, "test")
		if got := IsValidation(err); got != tc.want {
			t.Errorf("IsValidation(%s) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestGetCodeUnknown(t *testing.T) {
	if got := GetCode(fmt.Errorf("plain error")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
	if got := GetCode(nil); got != "" {
		t.Errorf("GetCode(nil) = %q, want empty", got)
	}
}
