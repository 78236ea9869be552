// Package handler contains the HTTP controllers.  Handlers bind
// and validate request bodies, call into the booking registry (or
// the auth stores) and translate sentinel errors into status
// codes.  They hold no state of their own beyond their wired
// dependencies.
package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// dateLayout is the wire format for calendar dates.  The display
// format shown to guests (e.g. DD/MM/YYYY on printed forms) is a
// front-end concern; the API speaks ISO dates only.
const dateLayout = "2006-01-02"

// parseDate parses an ISO calendar date into midnight UTC.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// getUserID extracts the staff user id stored by the JWT
// middleware and converts it to uint64.  The claim round-trips
// through JSON, so it usually arrives as a float64.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}
