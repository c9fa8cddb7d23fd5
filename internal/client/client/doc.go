// Package client contains client-side building blocks for GateKeeper.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the GateKeeper backend: Register, Login, Info, Ping.
//  2. A concrete HTTP implementation (see HTTPClient) that speaks the JSON
//     API, attaches the bearer access token to requests, and maps HTTP
//     statuses to sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrRegistrationRejected,
// ErrLocalDataNotAvailable.
//
// Concurrency & Contexts
//
// Implementations should be safe for concurrent use unless stated otherwise.
// All operations accept context.Context and must honor cancellation/timeouts.
//
// See Also
//
//   - Interface:  Client
//   - HTTP impl:  HTTPClient
//   - DB helpers: InitDatabase, RunMigrations
//   - Errors:     ErrUnavailable, ErrUnauthorized, ErrRegistrationRejected, ErrLocalDataNotAvailable
package client
