package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Login is the unique user login identifier (an e-mail address).
	// Used during authentication.
	Login string `json:"login"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"nome"`

	// PasswordHash stores the user's password representation in the
	// "hex(derivedKey).hexSalt" composite format produced by the crypto
	// package. This value MUST be a derived value, never plaintext.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"criado_em"`

	// UpdatedAt is the timestamp of the last modification of the account.
	UpdatedAt time.Time `json:"alterado_em"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "usuarios"
}
