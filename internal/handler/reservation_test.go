package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
	"github.com/iliyamo/hotel-room-reservation/internal/registry"
)

func newTestEnv(t *testing.T) (*echo.Echo, *registry.Registry, model.Client) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	reg, err := registry.New(registry.DefaultInventory())
	require.NoError(t, err)
	client := reg.AddClient("Ada Lovelace", "+44 20 7946 0000", "ada@example.com")
	return e, reg, client
}

func bookingBody(clientID string, room int, in, out string) string {
	return fmt.Sprintf(`{"client_id":%q,"room_number":%d,"check_in":%q,"check_out":%q}`,
		clientID, room, in, out)
}

func postReservation(e *echo.Echo, h *ReservationHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := h.CreateReservation(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestCreateReservationReturns201(t *testing.T) {
	e, reg, client := newTestEnv(t)
	h := NewReservationHandler(reg, nil, nil)

	rec := postReservation(e, h, bookingBody(client.ID, 1, "2026-10-01", "2026-10-03"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp reservationResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, client.ID, resp.ClientID)
	assert.Equal(t, "Ada Lovelace", resp.ClientName)
	assert.Equal(t, 1, resp.RoomNumber)
	assert.Equal(t, "SINGLE", resp.RoomCategory)
	assert.Equal(t, 2, resp.Nights)
	assert.Equal(t, uint32(50000), resp.TotalAmountCents)
	assert.Equal(t, "CONFIRMED", resp.Status)
}

func TestCreateReservationStatusMapping(t *testing.T) {
	e, reg, client := newTestEnv(t)
	h := NewReservationHandler(reg, nil, nil)

	// Seed a booking so the conflict case has something to collide with.
	rec := postReservation(e, h, bookingBody(client.ID, 2, "2026-10-01", "2026-10-05"))
	require.Equal(t, http.StatusCreated, rec.Code)

	unknownClient := "8f14e45f-ceea-467f-a8ce-000000000000"

	cases := []struct {
		name string
		body string
		code int
	}{
		{"inverted range", bookingBody(client.ID, 1, "2026-10-03", "2026-10-01"), http.StatusBadRequest},
		{"zero nights", bookingBody(client.ID, 1, "2026-10-01", "2026-10-01"), http.StatusBadRequest},
		{"unknown client", bookingBody(unknownClient, 1, "2026-10-01", "2026-10-03"), http.StatusNotFound},
		{"unknown room", bookingBody(client.ID, 99, "2026-10-01", "2026-10-03"), http.StatusNotFound},
		{"overlapping dates", bookingBody(client.ID, 2, "2026-10-02", "2026-10-04"), http.StatusConflict},
		{"malformed date", bookingBody(client.ID, 1, "October 1st", "2026-10-03"), http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postReservation(e, h, tc.body)
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestCancelReservation(t *testing.T) {
	e, reg, client := newTestEnv(t)
	h := NewReservationHandler(reg, nil, nil)

	rec := postReservation(e, h, bookingBody(client.ID, 3, "2026-11-10", "2026-11-12"))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created reservationResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	cancel := func(id string) int {
		req := httptest.NewRequest(http.MethodDelete, "/v1/reservations/"+id, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(id)
		require.NoError(t, h.CancelReservation(c))
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, cancel(created.ID))
	// Second cancel of the same id is a 404, the record stays CANCELLED.
	assert.Equal(t, http.StatusNotFound, cancel(created.ID))
	assert.Equal(t, http.StatusNotFound, cancel("no-such-id"))

	got, ok := reg.Reservation(created.ID)
	require.True(t, ok)
	assert.Equal(t, model.StatusCancelled, got.Status)
}

func TestListReservationsStatusFilter(t *testing.T) {
	e, reg, client := newTestEnv(t)
	h := NewReservationHandler(reg, nil, nil)

	rec := postReservation(e, h, bookingBody(client.ID, 1, "2026-10-01", "2026-10-03"))
	require.Equal(t, http.StatusCreated, rec.Code)
	var first reservationResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
	require.Equal(t, http.StatusCreated, postReservation(e, h, bookingBody(client.ID, 2, "2026-10-01", "2026-10-03")).Code)
	require.True(t, reg.CancelBooking(first.ID))

	list := func(query string) (int, []reservationResp) {
		req := httptest.NewRequest(http.MethodGet, "/v1/reservations"+query, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, h.ListReservations(c))
		var body struct {
			Items []reservationResp `json:"items"`
		}
		if rec.Code == http.StatusOK {
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		}
		return rec.Code, body.Items
	}

	code, items := list("")
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, items, 2)

	code, items = list("?status=CANCELLED")
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, items, 1)
	assert.Equal(t, first.ID, items[0].ID)

	code, items = list("?status=CONFIRMED")
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, items, 1)

	code, _ = list("?status=PENDING")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGetReservation(t *testing.T) {
	e, reg, client := newTestEnv(t)
	h := NewReservationHandler(reg, nil, nil)

	rec := postReservation(e, h, bookingBody(client.ID, 5, "2026-12-24", "2026-12-27"))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created reservationResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodGet, "/v1/reservations/"+created.ID, nil)
	out := httptest.NewRecorder()
	c := e.NewContext(req, out)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	require.NoError(t, h.GetReservation(c))
	require.Equal(t, http.StatusOK, out.Code)

	var body struct {
		Item reservationResp `json:"item"`
	}
	require.NoError(t, json.Unmarshal(out.Body.Bytes(), &body))
	assert.Equal(t, created.ID, body.Item.ID)
	assert.Equal(t, "SUITE", body.Item.RoomCategory)
	assert.Equal(t, uint32(165000), body.Item.TotalAmountCents)
}
