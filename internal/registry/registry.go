package registry

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
)

// Registry is the booking registry.  It owns the three in-memory
// collections (clients, rooms, reservations) exclusively; callers
// only ever see copies.  A single mutex serializes every operation
// so that CreateBooking's availability check and insert form one
// critical section; two concurrent bookings can never both
// observe a room as free and both commit.
//
// Rooms are provisioned once through New and are immutable
// afterwards.  Cancelled reservations are retained for history and
// simply stop participating in overlap checks.
type Registry struct {
	mu sync.Mutex

	clients   map[string]model.Client
	clientIDs []string // insertion order

	rooms       map[int]model.Room
	roomNumbers []int // inventory order

	reservations   map[string]model.Reservation
	reservationIDs []string // insertion order
}

// New builds a registry over the given fixed room inventory.  It
// rejects bad inventories eagerly: an empty inventory, a duplicate
// room number, an unknown category or a zero nightly rate all fail
// the whole call.
func New(inventory []model.Room) (*Registry, error) {
	if len(inventory) == 0 {
		return nil, errInventory("empty room inventory")
	}
	g := &Registry{
		clients:      make(map[string]model.Client),
		rooms:        make(map[int]model.Room, len(inventory)),
		roomNumbers:  make([]int, 0, len(inventory)),
		reservations: make(map[string]model.Reservation),
	}
	for _, room := range inventory {
		if _, dup := g.rooms[room.Number]; dup {
			return nil, errInventory("duplicate room number")
		}
		if !room.Category.Valid() {
			return nil, errInventory("unknown room category")
		}
		if room.NightlyRateCents == 0 {
			return nil, errInventory("nightly rate must be positive")
		}
		g.rooms[room.Number] = room
		g.roomNumbers = append(g.roomNumbers, room.Number)
	}
	return g, nil
}

// AddClient registers a new client and returns the stored record.
// The id is a freshly generated UUID; the operation never fails.
// Input validation, if any, belongs to the caller.
func (g *Registry) AddClient(name, phone, email string) model.Client {
	g.mu.Lock()
	defer g.mu.Unlock()
	c := model.Client{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     phone,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	g.clients[c.ID] = c
	g.clientIDs = append(g.clientIDs, c.ID)
	return c
}

// Client looks up a client by id.
func (g *Registry) Client(id string) (model.Client, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	c, ok := g.clients[id]
	return c, ok
}

// Room looks up a room by number.
func (g *Registry) Room(number int) (model.Room, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.rooms[number]
	return r, ok
}

// Rooms returns the full inventory in seeding order.
func (g *Registry) Rooms() []model.Room {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]model.Room, 0, len(g.roomNumbers))
	for _, n := range g.roomNumbers {
		out = append(out, g.rooms[n])
	}
	return out
}

// CheckAvailability reports whether the room is free over the
// half-open range [checkIn, checkOut).  It is a pure query; it
// returns false for unknown rooms.  Callers are expected to
// enforce checkIn < checkOut; CreateBooking does so before ever
// reaching this check.
func (g *Registry) CheckAvailability(roomNumber int, checkIn, checkOut time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.rooms[roomNumber]; !ok {
		return false
	}
	return g.available(roomNumber, model.DateOnly(checkIn), model.DateOnly(checkOut))
}

// available is the overlap scan.  Caller must hold g.mu and pass
// normalized dates.  Two ranges overlap iff ci < rco && rci < co;
// equal boundaries do not overlap, which is what allows same-day
// turnover.
func (g *Registry) available(roomNumber int, checkIn, checkOut time.Time) bool {
	for _, id := range g.reservationIDs {
		res := g.reservations[id]
		if res.RoomNumber != roomNumber || !res.Active() {
			continue
		}
		if checkIn.Before(res.CheckOut) && res.CheckIn.Before(checkOut) {
			return false
		}
	}
	return true
}

// CreateBooking validates the date range, resolves the client and
// room references, checks availability and stores a CONFIRMED
// reservation, all inside one critical section.  On any failure
// the registry is left unchanged.
func (g *Registry) CreateBooking(clientID string, roomNumber int, checkIn, checkOut time.Time) (model.Reservation, error) {
	ci := model.DateOnly(checkIn)
	co := model.DateOnly(checkOut)
	if !ci.Before(co) {
		return model.Reservation{}, ErrInvalidDateRange
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.clients[clientID]; !ok {
		return model.Reservation{}, ErrClientNotFound
	}
	if _, ok := g.rooms[roomNumber]; !ok {
		return model.Reservation{}, ErrRoomNotFound
	}
	if !g.available(roomNumber, ci, co) {
		return model.Reservation{}, ErrRoomUnavailable
	}

	now := time.Now().UTC()
	res := model.Reservation{
		ID:         uuid.NewString(),
		ClientID:   clientID,
		RoomNumber: roomNumber,
		CheckIn:    ci,
		CheckOut:   co,
		Status:     model.StatusConfirmed,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	g.reservations[res.ID] = res
	g.reservationIDs = append(g.reservationIDs, res.ID)
	return res, nil
}

// CancelBooking transitions a CONFIRMED reservation to CANCELLED,
// freeing its dates for new bookings.  The record is retained for
// history.  It returns false and changes nothing when the id
// is unknown or the reservation is already cancelled, so repeated
// cancels are harmless.
func (g *Registry) CancelBooking(reservationID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	res, ok := g.reservations[reservationID]
	if !ok || !res.Active() {
		return false
	}
	res.Status = model.StatusCancelled
	res.UpdatedAt = time.Now().UTC()
	g.reservations[reservationID] = res
	return true
}

// Reservation looks up a reservation by id.
func (g *Registry) Reservation(id string) (model.Reservation, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	res, ok := g.reservations[id]
	return res, ok
}

// ListReservations returns a snapshot of all reservations,
// cancelled ones included, in booking order.
func (g *Registry) ListReservations() []model.Reservation {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]model.Reservation, 0, len(g.reservationIDs))
	for _, id := range g.reservationIDs {
		out = append(out, g.reservations[id])
	}
	return out
}

// ListClients returns a snapshot of all registered clients in
// registration order.
func (g *Registry) ListClients() []model.Client {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]model.Client, 0, len(g.clientIDs))
	for _, id := range g.clientIDs {
		out = append(out, g.clients[id])
	}
	return out
}

// AvailableRooms returns the rooms with no active reservation of
// any date range.  This is the legacy no-range shortcut: it
// answers "is the room free right now, ignoring dates" and is not
// date-aware.  Callers that care about a specific stay should use
// AvailableRoomsBetween instead.
func (g *Registry) AvailableRooms() []model.Room {
	g.mu.Lock()
	defer g.mu.Unlock()
	busy := make(map[int]bool)
	for _, id := range g.reservationIDs {
		if res := g.reservations[id]; res.Active() {
			busy[res.RoomNumber] = true
		}
	}
	out := make([]model.Room, 0, len(g.roomNumbers))
	for _, n := range g.roomNumbers {
		if !busy[n] {
			out = append(out, g.rooms[n])
		}
	}
	return out
}

// AvailableRoomsBetween returns every room free over the half-open
// range [checkIn, checkOut).  This is the date-aware query and the
// one the booking flow relies on.
func (g *Registry) AvailableRoomsBetween(checkIn, checkOut time.Time) []model.Room {
	ci := model.DateOnly(checkIn)
	co := model.DateOnly(checkOut)
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]model.Room, 0, len(g.roomNumbers))
	for _, n := range g.roomNumbers {
		if g.available(n, ci, co) {
			out = append(out, g.rooms[n])
		}
	}
	return out
}
