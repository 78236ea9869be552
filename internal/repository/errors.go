// Package repository holds the in-memory stores backing staff
// authentication.  The sentinel values defined here allow handlers
// to distinguish failure scenarios without inspecting error text.
// Booking data does not live here; it is owned by the registry
// package; these stores cover the accounts and sessions of the
// staff operating the API.
package repository

import "errors"

// ErrEmailExists is returned when registering an email that is
// already taken.  Handlers should translate this into an HTTP 409
// response.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when a user lookup by id or email
// matches nothing.
var ErrUserNotFound = errors.New("user not found")

// ErrTokenNotFound is returned when a refresh token hash is
// unknown, expired or revoked.  Handlers should treat all three
// identically and respond 401.
var ErrTokenNotFound = errors.New("refresh token not found")
