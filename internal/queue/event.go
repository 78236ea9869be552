// Package queue defines message payloads exchanged over the message broker.
package queue

// Queue names used for booking lifecycle events. Publishers and the
// consumer declare them durable so messages survive broker restarts.
const (
	BookingConfirmedQueue = "booking.confirmed"
	BookingCancelledQueue = "booking.cancelled"
)

// BookingConfirmedEvent is published when a reservation is successfully confirmed.
// It contains enough information for downstream consumers to log, notify, or
// trigger analytics without querying the booking registry.
type BookingConfirmedEvent struct {
	ReservationID    string `json:"reservation_id"`
	ClientID         string `json:"client_id"`
	ClientName       string `json:"client_name"`
	RoomNumber       int    `json:"room_number"`
	RoomCategory     string `json:"room_category"`
	CheckIn          string `json:"check_in"`
	CheckOut         string `json:"check_out"`
	Nights           int    `json:"nights"`
	TotalAmountCents uint32 `json:"total_amount_cents"`
	ConfirmedAt      string `json:"confirmed_at"`
}

// BookingCancelledEvent is published when a reservation is cancelled.
// The record itself is retained with status CANCELLED; the event lets
// consumers release holds or notify the guest.
type BookingCancelledEvent struct {
	ReservationID string `json:"reservation_id"`
	ClientID      string `json:"client_id"`
	RoomNumber    int    `json:"room_number"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	CancelledAt   string `json:"cancelled_at"`
}
