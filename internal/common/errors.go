// Package common defines shared constants and sentinel errors used across
// the server and the CLI client of TaskKeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Input errors. Wrapped with a human readable reason, e.g.
	// fmt.Errorf("%w: title is required", ErrValidation).
	ErrValidation = errors.New("validation error")

	// Auth errors.
	ErrUnauthenticated    = errors.New("missing or malformed credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("forbidden")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// Registration errors.
	ErrDuplicateEmail = errors.New("email already registered")
)
