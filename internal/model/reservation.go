package model

import "time"

// ReservationStatus enumerates the lifecycle states of a
// reservation.  CONFIRMED -> CANCELLED is the only transition and
// both states are terminal: a cancelled reservation is never
// reactivated, a new stay requires a fresh reservation.
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCancelled ReservationStatus = "CANCELLED"
)

// Reservation records a client's stay in a room over a half-open
// date range [CheckIn, CheckOut).  Check-in and check-out are
// calendar dates normalized to midnight UTC; CheckOut is always
// strictly after CheckIn.  Only CONFIRMED reservations take part
// in availability checks.
//
// The total cost is derived, never stored: Nights() multiplied by
// the room's nightly rate.
//
// Fields:
//  ID         – UUID assigned at booking time.
//  ClientID   – owning client (shared reference, lifetime independent).
//  RoomNumber – booked room (shared reference).
//  CheckIn    – first night of the stay (inclusive).
//  CheckOut   – departure date (exclusive, same-day turnover allowed).
//  Status     – CONFIRMED or CANCELLED.
//  CreatedAt  – booking timestamp (UTC).
//  UpdatedAt  – last status change timestamp (UTC).
type Reservation struct {
	ID         string            `json:"id"`
	ClientID   string            `json:"client_id"`
	RoomNumber int               `json:"room_number"`
	CheckIn    time.Time         `json:"check_in"`
	CheckOut   time.Time         `json:"check_out"`
	Status     ReservationStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// Nights returns the length of the stay in whole days.
func (r Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn) / (24 * time.Hour))
}

// Active reports whether the reservation still occupies its room.
func (r Reservation) Active() bool { return r.Status == StatusConfirmed }

// DateOnly normalizes t to midnight UTC, discarding any
// time-of-day component.  All registry date handling goes through
// this so that comparisons are pure calendar-date comparisons.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date is a convenience constructor for a calendar date at
// midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
