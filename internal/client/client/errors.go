package client

import "errors"

// Sentinel errors the transport and session layers report to the CLI. The
// CLI matches on these to pick user-facing wording and mode switches.
var (
	ErrUnavailable           = errors.New("server unavailable")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrRegistrationRejected  = errors.New("registration rejected")
	ErrLocalDataNotAvailable = errors.New("local data unavailable")
)
