// Package models defines server-side data models persisted in the database.
package models

import "time"

// Identity is a credential record: an email with an argon2id password hash.
type Identity struct {
	ID           string
	Email        string
	Salt         []byte
	PasswordHash []byte
	CreatedAt    time.Time
	LastSignInAt time.Time
}
