package model

import "time"

// User represents an account that owns trade logs.
// PasswordHash is never serialized in API responses.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

// Session represents a revocable refresh-token session for a user.
// The session ID travels inside the fernet refresh token; the row is the
// source of truth for revocation and expiry.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}
