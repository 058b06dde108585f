package models

import "time"

// User represents a registered account used for authentication and
// movie ownership. Sensitive fields are never serialized to JSON.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database at registration time.
	UserID int64 `json:"id"`

	// Email is the unique login identifier of the account.
	// Stored case-sensitive, compared exactly as received.
	Email string `json:"email"`

	// Name is the optional display name of the user.
	// Non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// PasswordHash is the argon2id digest of the user's password.
	// Never plaintext, never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
