package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-reservation/internal/registry"
)

// ClientHandler exposes guest registration and listing.  The
// registry itself accepts any input for AddClient; all validation
// lives here at the controller boundary.
type ClientHandler struct {
	Registry *registry.Registry
}

func NewClientHandler(reg *registry.Registry) *ClientHandler {
	if reg == nil {
		panic("nil registry passed to NewClientHandler")
	}
	return &ClientHandler{Registry: reg}
}

type createClientReq struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// CreateClient handles POST /v1/clients.  It registers a guest and
// returns the stored record with its generated id.
func (h *ClientHandler) CreateClient(c echo.Context) error {
	var req createClientReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	client := h.Registry.AddClient(req.Name, req.Phone, req.Email)
	return c.JSON(http.StatusCreated, client)
}

// ListClients handles GET /v1/clients.  Clients are returned in
// registration order.
func (h *ClientHandler) ListClients(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Registry.ListClients()})
}
