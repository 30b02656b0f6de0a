// Package error defines domain-specific errors for the application.
package error

import "errors"

// Session/authentication domain errors.
var (
	// ErrMissingToken is returned when no session token is provided.
	ErrMissingToken = errors.New("session token is required")

	// ErrInvalidToken is returned when the session token fails validation.
	ErrInvalidToken = errors.New("invalid or expired session token")

	// ErrSessionRevoked is returned when the session has been revoked by the
	// auth service.
	ErrSessionRevoked = errors.New("session has been revoked")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeMissingToken   AuthErrorCode = "AUT-010001"
	ErrCodeInvalidToken   AuthErrorCode = "AUT-010002"
	ErrCodeSessionRevoked AuthErrorCode = "AUT-010003"
	ErrCodeRateLimited    AuthErrorCode = "AUT-020001"
)
