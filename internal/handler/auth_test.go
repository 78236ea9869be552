package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-room-reservation/internal/config"
	"github.com/iliyamo/hotel-room-reservation/internal/repository"
)

func newAuthHandler() *AuthHandler {
	cfg := config.Config{
		Env:            "test",
		Port:           "0",
		JWTSecret:      "test-secret",
		AccessTTLMin:   15,
		RefreshTTLDays: 7,
		BcryptCost:     4, // MinCost keeps the test fast
	}
	return NewAuthHandler(cfg, repository.NewUserRepo(), repository.NewTokenRepo())
}

func doJSON(t *testing.T, e *echo.Echo, fn echo.HandlerFunc, method, path, body string) (*httptest.ResponseRecorder, authResp) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := fn(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	var resp authResp
	if rec.Code < 300 {
		_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	}
	return rec, resp
}

func TestRegisterAndLogin(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := newAuthHandler()

	rec, resp := doJSON(t, e, h.Register, http.MethodPost, "/v1/auth/register",
		`{"email":"desk@hotel.test","password":"s3cret-pass","role":"reception"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, RoleReception, resp.User.Role)
	assert.NotEmpty(t, resp.Access.Token)
	assert.NotEmpty(t, resp.Refresh.Token)

	// Duplicate email is a conflict.
	rec, _ = doJSON(t, e, h.Register, http.MethodPost, "/v1/auth/register",
		`{"email":"desk@hotel.test","password":"s3cret-pass"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Unknown roles fall back to RECEPTION.
	rec, resp = doJSON(t, e, h.Register, http.MethodPost, "/v1/auth/register",
		`{"email":"boss@hotel.test","password":"s3cret-pass","role":"JANITOR"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, RoleReception, resp.User.Role)

	rec, resp = doJSON(t, e, h.Login, http.MethodPost, "/v1/auth/login",
		`{"email":"desk@hotel.test","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "desk@hotel.test", resp.User.Email)

	rec, _ = doJSON(t, e, h.Login, http.MethodPost, "/v1/auth/login",
		`{"email":"desk@hotel.test","password":"wrong-pass"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = doJSON(t, e, h.Login, http.MethodPost, "/v1/auth/login",
		`{"email":"nobody@hotel.test","password":"s3cret-pass"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshRotatesToken(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := newAuthHandler()

	rec, first := doJSON(t, e, h.Register, http.MethodPost, "/v1/auth/register",
		`{"email":"mgr@hotel.test","password":"s3cret-pass","role":"MANAGER"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, RoleManager, first.User.Role)

	rec, second := doJSON(t, e, h.Refresh, http.MethodPost, "/v1/auth/refresh",
		`{"refresh_token":"`+first.Refresh.Token+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEqual(t, first.Refresh.Token, second.Refresh.Token)

	// The old token was revoked by the rotation.
	rec, _ = doJSON(t, e, h.Refresh, http.MethodPost, "/v1/auth/refresh",
		`{"refresh_token":"`+first.Refresh.Token+`"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutRevokesRefresh(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := newAuthHandler()

	rec, resp := doJSON(t, e, h.Register, http.MethodPost, "/v1/auth/register",
		`{"email":"desk@hotel.test","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = doJSON(t, e, h.Logout, http.MethodPost, "/v1/auth/logout",
		`{"refresh_token":"`+resp.Refresh.Token+`"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = doJSON(t, e, h.Refresh, http.MethodPost, "/v1/auth/refresh",
		`{"refresh_token":"`+resp.Refresh.Token+`"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
