// Package errors provides structured error types for the Grahas application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library packages
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures, raised before any ephemeris call
//   - CALCULATION_FAILED: A body/time computation failed inside the provider
//   - EPHEMERIS_CLOSED: Use of the ephemeris accessor after Close
//   - INIT_FAILED: The engine could not be constructed at all
//   - NOT_FOUND_*: Resource not found (saved records, cache entries)
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidTimezone, "unknown timezone: %s", zone)
//	if errors.Is(err, errors.ErrCodeInvalidTimezone) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeCalculation, origErr, "computing %s at jd %f", body, jd)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors (raised before any ephemeris call)
	ErrCodeInvalidInput       Code = "INVALID_INPUT"
	ErrCodeInvalidTimezone    Code = "INVALID_TIMEZONE"
	ErrCodeInvalidCoordinates Code = "INVALID_COORDINATES"
	ErrCodeInvalidDate        Code = "INVALID_DATE"
	ErrCodeInvalidAyanamsa    Code = "INVALID_AYANAMSA"
	ErrCodeInvalidHouseSystem Code = "INVALID_HOUSE_SYSTEM"
	ErrCodeInvalidDivision    Code = "INVALID_DIVISION"
	ErrCodeInvalidBody        Code = "INVALID_BODY"

	// Calculation errors (provider diagnostics are preserved as the cause)
	ErrCodeCalculation Code = "CALCULATION_FAILED"

	// Lifecycle errors
	ErrCodeClosed Code = "EPHEMERIS_CLOSED"
	ErrCodeInit   Code = "INIT_FAILED"

	// Resource not found errors
	ErrCodeNotFound       Code = "NOT_FOUND"
	ErrCodeRecordNotFound Code = "RECORD_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsValidation reports whether err is any of the INVALID_* validation codes.
func IsValidation(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Code {
	case ErrCodeInvalidInput, ErrCodeInvalidTimezone, ErrCodeInvalidCoordinates,
		ErrCodeInvalidDate, ErrCodeInvalidAyanamsa, ErrCodeInvalidHouseSystem,
		ErrCodeInvalidDivision, ErrCodeInvalidBody:
		return true
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
