package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-reservation/internal/middleware"
	"github.com/iliyamo/hotel-room-reservation/internal/model"
	"github.com/iliyamo/hotel-room-reservation/internal/queue"
	"github.com/iliyamo/hotel-room-reservation/internal/registry"
)

// EventPublisher publishes booking lifecycle events to the message
// broker.  A nil publisher disables events; publish failures must
// never fail the originating request.
type EventPublisher interface {
	BookingConfirmed(ctx context.Context, ev queue.BookingConfirmedEvent) error
	BookingCancelled(ctx context.Context, ev queue.BookingCancelledEvent) error
}

// ReservationHandler exposes the booking lifecycle: create, cancel,
// list and fetch.  All mutations go through the registry, which
// serializes the availability check and the insert; the handler
// only maps errors to status codes, invalidates the response cache
// and emits events.
type ReservationHandler struct {
	Registry *registry.Registry
	Cache    *middleware.Cache // may be nil
	Events   EventPublisher    // may be nil
}

func NewReservationHandler(reg *registry.Registry, cache *middleware.Cache, events EventPublisher) *ReservationHandler {
	if reg == nil {
		panic("nil registry passed to NewReservationHandler")
	}
	return &ReservationHandler{Registry: reg, Cache: cache, Events: events}
}

type createReservationReq struct {
	ClientID   string `json:"client_id" validate:"required,uuid4"`
	RoomNumber int    `json:"room_number" validate:"required,min=1"`
	CheckIn    string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"check_out" validate:"required,datetime=2006-01-02"`
}

// reservationResp is the wire form of a reservation.  Nights and
// the total amount are derived on the way out; they are never part
// of the stored record.
type reservationResp struct {
	ID               string    `json:"id"`
	ClientID         string    `json:"client_id"`
	ClientName       string    `json:"client_name"`
	RoomNumber       int       `json:"room_number"`
	RoomCategory     string    `json:"room_category"`
	CheckIn          string    `json:"check_in"`
	CheckOut         string    `json:"check_out"`
	Status           string    `json:"status"`
	Nights           int       `json:"nights"`
	TotalAmountCents uint32    `json:"total_amount_cents"`
	CreatedAt        time.Time `json:"created_at"`
}

// toResp assembles the response form of a reservation, resolving
// the client name and room category for display.
func (h *ReservationHandler) toResp(res model.Reservation) reservationResp {
	out := reservationResp{
		ID:         res.ID,
		ClientID:   res.ClientID,
		RoomNumber: res.RoomNumber,
		CheckIn:    res.CheckIn.Format(dateLayout),
		CheckOut:   res.CheckOut.Format(dateLayout),
		Status:     string(res.Status),
		Nights:     res.Nights(),
		CreatedAt:  res.CreatedAt,
	}
	if client, ok := h.Registry.Client(res.ClientID); ok {
		out.ClientName = client.Name
	}
	if room, ok := h.Registry.Room(res.RoomNumber); ok {
		out.RoomCategory = string(room.Category)
		out.TotalAmountCents = room.TotalCents(res.Nights())
	}
	return out
}

// CreateReservation handles POST /v1/reservations.  The registry
// performs the availability check and the insert atomically; the
// handler maps ErrInvalidDateRange to 400, unresolved references
// to 404 and ErrRoomUnavailable to 409.
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	ci, err := parseDate(req.CheckIn)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_in date"})
	}
	co, err := parseDate(req.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_out date"})
	}

	res, err := h.Registry.CreateBooking(req.ClientID, req.RoomNumber, ci, co)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrInvalidDateRange):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out must be after check_in"})
		case errors.Is(err, registry.ErrClientNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "client not found"})
		case errors.Is(err, registry.ErrRoomNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		case errors.Is(err, registry.ErrRoomUnavailable):
			return c.JSON(http.StatusConflict, echo.Map{"error": "room not available for these dates"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
	}

	h.invalidateCache(c)
	h.publishConfirmed(res)
	return c.JSON(http.StatusCreated, h.toResp(res))
}

// CancelReservation handles DELETE /v1/reservations/:id.  Cancel
// is an idempotent failure: an unknown or already-cancelled id
// yields 404 and no state change.
func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	id := c.Param("id")
	if !h.Registry.CancelBooking(id) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	}
	h.invalidateCache(c)
	if res, ok := h.Registry.Reservation(id); ok {
		h.publishCancelled(res)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetReservation handles GET /v1/reservations/:id.
func (h *ReservationHandler) GetReservation(c echo.Context) error {
	res, ok := h.Registry.Reservation(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": h.toResp(res)})
}

// ListReservations handles GET /v1/reservations.  Cancelled
// records are retained and returned too; the optional ?status=
// query narrows the listing to CONFIRMED or CANCELLED.
func (h *ReservationHandler) ListReservations(c echo.Context) error {
	status := c.QueryParam("status")
	if status != "" && status != string(model.StatusConfirmed) && status != string(model.StatusCancelled) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status filter"})
	}
	items := make([]reservationResp, 0)
	for _, res := range h.Registry.ListReservations() {
		if status != "" && string(res.Status) != status {
			continue
		}
		items = append(items, h.toResp(res))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *ReservationHandler) invalidateCache(c echo.Context) {
	if h.Cache != nil {
		h.Cache.Invalidate(c.Request().Context())
	}
}

// publishConfirmed emits a booking.confirmed event in the
// background.  The broker being down must not fail or slow down
// the booking itself, so errors end up in the publisher's log and
// nowhere else.
func (h *ReservationHandler) publishConfirmed(res model.Reservation) {
	if h.Events == nil {
		return
	}
	ev := queue.BookingConfirmedEvent{
		ReservationID: res.ID,
		ClientID:      res.ClientID,
		RoomNumber:    res.RoomNumber,
		CheckIn:       res.CheckIn.Format(dateLayout),
		CheckOut:      res.CheckOut.Format(dateLayout),
		Nights:        res.Nights(),
		ConfirmedAt:   res.CreatedAt.Format(time.RFC3339),
	}
	if client, ok := h.Registry.Client(res.ClientID); ok {
		ev.ClientName = client.Name
	}
	if room, ok := h.Registry.Room(res.RoomNumber); ok {
		ev.RoomCategory = string(room.Category)
		ev.TotalAmountCents = room.TotalCents(res.Nights())
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = h.Events.BookingConfirmed(ctx, ev)
	}()
}

func (h *ReservationHandler) publishCancelled(res model.Reservation) {
	if h.Events == nil {
		return
	}
	ev := queue.BookingCancelledEvent{
		ReservationID: res.ID,
		ClientID:      res.ClientID,
		RoomNumber:    res.RoomNumber,
		CheckIn:       res.CheckIn.Format(dateLayout),
		CheckOut:      res.CheckOut.Format(dateLayout),
		CancelledAt:   res.UpdatedAt.Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = h.Events.BookingCancelled(ctx, ev)
	}()
}
