package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-reservation/internal/registry"
)

// RoomHandler exposes the public browse surface: the fixed room
// inventory and availability queries.  All endpoints are read-only
// and safe to cache.
type RoomHandler struct {
	Registry *registry.Registry
}

func NewRoomHandler(reg *registry.Registry) *RoomHandler {
	if reg == nil {
		panic("nil registry passed to NewRoomHandler")
	}
	return &RoomHandler{Registry: reg}
}

// ListRooms handles GET /v1/rooms.  It returns the whole inventory
// in seeding order.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Registry.Rooms()})
}

// ListAvailableRooms handles GET /v1/rooms/available.  With both
// check_in and check_out query parameters it runs the date-aware
// availability query; without them it falls back to the no-range
// shortcut (rooms with zero active bookings).  Supplying only one
// of the two parameters is an error.
func (h *RoomHandler) ListAvailableRooms(c echo.Context) error {
	ciStr := c.QueryParam("check_in")
	coStr := c.QueryParam("check_out")

	if ciStr == "" && coStr == "" {
		return c.JSON(http.StatusOK, echo.Map{"items": h.Registry.AvailableRooms()})
	}
	if ciStr == "" || coStr == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in and check_out must be supplied together"})
	}
	ci, err := parseDate(ciStr)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_in date"})
	}
	co, err := parseDate(coStr)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_out date"})
	}
	if !ci.Before(co) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out must be after check_in"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": h.Registry.AvailableRoomsBetween(ci, co)})
}

// CheckAvailability handles GET /v1/rooms/:number/availability.
// Both check_in and check_out are required; the response reports
// whether the room is free over the half-open range.
func (h *RoomHandler) CheckAvailability(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room number"})
	}
	if _, ok := h.Registry.Room(number); !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	}
	ci, err := parseDate(c.QueryParam("check_in"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_in date"})
	}
	co, err := parseDate(c.QueryParam("check_out"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_out date"})
	}
	if !ci.Before(co) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out must be after check_in"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"room_number": number,
		"check_in":    ci.Format(dateLayout),
		"check_out":   co.Format(dateLayout),
		"available":   h.Registry.CheckAvailability(number, ci, co),
	})
}
