package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-reservation/internal/handler"
	"github.com/iliyamo/hotel-room-reservation/internal/middleware"
)

// RegisterPublic registers the guest-facing browse endpoints under
// /v1.  No authentication is required; anyone can inspect the room
// inventory and query availability before a member of staff books on
// their behalf.  Responses pass through the Redis response cache when
// it is enabled.
func RegisterPublic(e *echo.Echo, h *handler.RoomHandler, cache *middleware.Cache) {
	g := e.Group("/v1")
	if cache != nil {
		g.Use(cache.Middleware())
	}
	g.GET("/rooms", h.ListRooms)
	g.GET("/rooms/available", h.ListAvailableRooms)
	g.GET("/rooms/:number/availability", h.CheckAvailability)
}
