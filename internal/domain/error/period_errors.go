// Package error defines domain-specific errors for the application.
package error

import "errors"

// Period domain errors.
var (
	// ErrInvalidMonth is returned when a month is outside [1,12].
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidYear is returned when a year is not a usable calendar year.
	ErrInvalidYear = errors.New("valid year required")
)

// PeriodErrorCode defines error codes for period resolution errors.
// Format: PER-XXYYYY where XX is category and YYYY is specific error.
type PeriodErrorCode string

const (
	ErrCodeInvalidMonth PeriodErrorCode = "PER-010001"
	ErrCodeInvalidYear  PeriodErrorCode = "PER-010002"
)

// PeriodError represents a period validation error with code and message.
type PeriodError struct {
	Code    PeriodErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PeriodError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PeriodError) Unwrap() error {
	return e.Err
}

// NewPeriodError creates a new PeriodError with the given code and message.
func NewPeriodError(code PeriodErrorCode, message string, err error) *PeriodError {
	return &PeriodError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
