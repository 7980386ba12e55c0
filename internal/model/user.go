// Package model defines the data structures used throughout the application.
package model

import "time"

// User represents a registered account. It is the only entity this service
// owns.
//
// WHY LineID *string (not string)?
// A missing LINE contact is a real state, distinct from "user set it to
// empty". The source of truth stores NULL for absent, so the Go model keeps a
// pointer — nil means absent, never an empty-string sentinel.
//
// ProfileImage holds the public URL of the stored asset, or nil when the user
// has none. At most one asset is live per user; replacing it uploads the new
// object first and only then deletes the old one.
//
// PasswordHash is opaque bcrypt material. It must never be serialized to a
// client — note the json:"-" tag, and the façades additionally build explicit
// response shapes rather than encoding User directly.
type User struct {
	ID              string     `json:"userId"          db:"id"`
	Email           string     `json:"email"           db:"email"` // unique login identifier, immutable
	PasswordHash    string     `json:"-"               db:"password_hash"`
	Name            string     `json:"name"            db:"name"`
	Surname         string     `json:"surname"         db:"surname"`
	DisplayName     string     `json:"displayName"     db:"display_name"` // non-empty after trimming
	TelephoneNumber string     `json:"telephoneNumber" db:"telephone_number"`
	LineID          *string    `json:"lineId"          db:"line_id"`
	ProfileImage    *string    `json:"profileImage"    db:"profile_image"`
	LastLogoutAt    *time.Time `json:"lastLogoutAt"    db:"last_logout_at"` // informational only, never invalidates tokens
	CreatedAt       time.Time  `json:"createdAt"       db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt"       db:"updated_at"`
}
