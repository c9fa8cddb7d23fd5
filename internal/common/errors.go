// Package common defines shared constants and sentinel errors used across
// client and server layers of GateKeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound           = errors.New("not found")
	ErrorEmailAlreadyExists = errors.New("email already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token, unusable password).
	ErrInvalidToken    = errors.New("invalid token")
	ErrorEmptyPassword = errors.New("password cannot be empty")

	// Configuration errors. A missing signing secret is fatal at startup;
	// token operations also refuse to run without one.
	ErrorMissingSecret = errors.New("missing signing secret")
)
