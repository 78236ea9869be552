// Package registry implements the booking registry: the single
// in-memory owner of clients, rooms and reservations.  The sentinel
// errors defined here let handlers translate booking failures into
// the right HTTP responses without string matching.  All of them
// are recoverable conditions; the registry never aborts and never
// leaves partial state behind a failed operation.
package registry

import "errors"

// ErrInvalidDateRange is returned when a requested check-out date
// is not strictly after the check-in date.  Handlers should
// translate this into an HTTP 400 response.
var ErrInvalidDateRange = errors.New("check-out must be after check-in")

// ErrRoomUnavailable is returned when the requested date range
// overlaps an active reservation on the same room.  Handlers
// should translate this into an HTTP 409 response.
var ErrRoomUnavailable = errors.New("room unavailable for the requested dates")

// ErrClientNotFound is returned when a booking references a client
// id that was never registered.  Handlers should translate this
// into an HTTP 404 response.
var ErrClientNotFound = errors.New("client not found")

// ErrRoomNotFound is returned when a booking or availability query
// references a room number outside the fixed inventory.  Handlers
// should translate this into an HTTP 404 response.
var ErrRoomNotFound = errors.New("room not found")
