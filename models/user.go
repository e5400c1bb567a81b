package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user, generated at registration.
	UserID string `json:"_id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the address the user authenticates with.
	// Unique per system; lookup is case-sensitive as stored.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext.
	// It is never serialized to JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
