package models

import "time"

// User represents an account entity used for authentication and authorization.
// An account is anchored to a device identifier; email and password are
// optional and only present when the user explicitly registered credentials.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the optional unique email address of the user.
	// Nil when the account was created from a bare device identifier.
	Email *string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Never plaintext, never serialized to JSON.
	PasswordHash *string `json:"-"`

	// DeviceID is the unique client-generated device identifier.
	// It is immutable after registration and substitutes for credentials
	// when no email/password pair was supplied.
	DeviceID string `json:"device_id"`

	// IsPro marks accounts with an active Pro subscription.
	// Free-tier accounts are limited to a single profile.
	IsPro bool `json:"is_pro"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// LastSync is the timestamp of the most recent successful sync push.
	// Nil until the first push completes.
	LastSync *time.Time `json:"last_sync"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest is the body of POST /v1/auth/register. Email and password
// are optional; a bare device identifier is enough to create an account.
type RegisterRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	DeviceID string  `json:"device_id"`
}

// LoginRequest carries the credential pair for POST /v1/auth/login.
// Values may arrive in the body or as query parameters.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
