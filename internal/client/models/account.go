// Package models defines client-side data models used by the GateKeeper CLI.
package models

// Account describes the server-side account behind the current session,
// as returned by the profile endpoint.
type Account struct {
	// ID is the server-assigned account identifier.
	ID string

	// Email is the unique login identity.
	Email string

	// Name is the display name chosen at registration.
	Name string
}
