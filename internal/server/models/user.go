// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an account record. Password holds the derived hash, never the
// raw password; Salt is generated once at sign-up and kept for the
// account's lifetime.
type User struct {
	ID        string
	UserName  string
	Password  []byte
	Salt      []byte
	CreatedAt time.Time
}
