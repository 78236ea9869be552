package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-reservation/internal/handler"
	"github.com/iliyamo/hotel-room-reservation/internal/middleware"
)

// RegisterStaff registers the booking desk endpoints under /v1.  All
// routes require a valid JWT and a staff role.  Staff register guests
// and manage reservations on their behalf; guests themselves never
// authenticate.
func RegisterStaff(e *echo.Echo, ch *handler.ClientHandler, rh *handler.ReservationHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(handler.RoleManager, handler.RoleReception),
	)

	// ---- Clients ----
	g.POST("/clients", ch.CreateClient)
	g.GET("/clients", ch.ListClients)

	// ---- Reservations ----
	g.POST("/reservations", rh.CreateReservation)
	g.GET("/reservations", rh.ListReservations)
	g.GET("/reservations/:id", rh.GetReservation)
	g.DELETE("/reservations/:id", rh.CancelReservation)
}
