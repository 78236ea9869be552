package model

import "time"

// User represents a staff account able to operate the front desk
// API.  Guests are not users; they are Clients.  Users are the
// hotel employees who register clients and manage bookings.  The
// password is stored only as a bcrypt hash.
//
// Fields:
//  ID           – numeric identifier assigned by the user store.
//  Email        – unique login email, lower-cased.
//  PasswordHash – bcrypt hash of the password.
//  Role         – staff role (MANAGER or RECEPTION).
//  IsActive     – whether the account may log in.
//  CreatedAt    – account creation timestamp.
//  UpdatedAt    – last modification timestamp.
type User struct {
	ID           uint64
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is the stored form of a long-lived session token.
// Only the SHA-256 hash of the raw token is kept; the raw value
// goes back to the client once and is never persisted.
//
// Fields:
//  ID        – numeric identifier.
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the raw token.
//  ExpiresAt – expiration timestamp.
//  RevokedAt – revocation timestamp (nil while active).
//  CreatedAt – issuance timestamp.
type RefreshToken struct {
	ID        uint64
	UserID    uint64
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
