package model

// RoomCategory enumerates the fixed set of room types offered by
// the hotel.  The set is closed; inventory seeding rejects any
// other value.
type RoomCategory string

const (
	CategorySingle RoomCategory = "SINGLE"
	CategoryDouble RoomCategory = "DOUBLE"
	CategorySuite  RoomCategory = "SUITE"
)

// Valid reports whether c is one of the known room categories.
func (c RoomCategory) Valid() bool {
	switch c {
	case CategorySingle, CategoryDouble, CategorySuite:
		return true
	}
	return false
}

// Room describes one physical room in the hotel inventory.  Rooms
// are provisioned once at startup and are immutable for the
// lifetime of the process; the room number is the stable unique
// key.  Availability is not stored on the room; it is always
// derived from the set of active reservations.
//
// Fields:
//  Number           – unique room number assigned at initialization.
//  Category         – room type (SINGLE, DOUBLE, SUITE).
//  NightlyRateCents – flat per-night price in cents, positive.
type Room struct {
	Number           int          `json:"number"`
	Category         RoomCategory `json:"category"`
	NightlyRateCents uint32       `json:"nightly_rate_cents"`
}

// TotalCents returns the price of a stay of the given number of
// nights at this room's flat rate.
func (r Room) TotalCents(nights int) uint32 {
	if nights < 0 {
		return 0
	}
	return uint32(nights) * r.NightlyRateCents
}
