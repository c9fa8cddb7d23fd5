package models

import "time"

// User is a registered account. PasswordHash holds the argon2id encoding of
// the password, never the password itself, and is never serialized into API
// responses.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
