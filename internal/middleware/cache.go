package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hotel-room-reservation/internal/config"
)

// Cache is a Redis-backed response cache for the public browse
// endpoints (room lists and availability queries).  Only 200 GET
// responses are cached, keyed by route and query string.  Booking
// mutations call Invalidate so stale availability never outlives a
// create or cancel; the TTL is a backstop on top of that.
//
// A nil Redis client or a disabled config turns every method into
// a no-op, so callers never need to branch.
type Cache struct {
	cfg config.CacheConfig
	rdb *redis.Client
}

// NewCache builds a response cache.  rdb may be nil.
func NewCache(cfg config.CacheConfig, rdb *redis.Client) *Cache {
	return &Cache{cfg: cfg, rdb: rdb}
}

func (ca *Cache) enabled() bool { return ca != nil && ca.cfg.Enabled && ca.rdb != nil }

// key hashes route+query under the configured prefix so arbitrary
// query strings cannot produce oversized or unsafe Redis keys.
func (ca *Cache) key(c echo.Context) string {
	sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", ca.cfg.Prefix, sum[:])
}

// Middleware serves cached JSON bodies on hit and captures
// successful responses on miss.  Responses are stored verbatim, so
// clients see identical bytes either way.
func (ca *Cache) Middleware() echo.MiddlewareFunc {
	if !ca.enabled() {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	ttl := ca.cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			ctx := c.Request().Context()
			key := ca.key(c)

			if body, err := ca.rdb.Get(ctx, key).Bytes(); err == nil {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, body)
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}
			if cw.status == http.StatusOK && cw.buf.Len() > 0 {
				_ = ca.rdb.SetEx(context.Background(), key, cw.buf.Bytes(), ttl).Err()
			}
			return nil
		}
	}
}

// Invalidate drops every cached entry under the configured prefix.
// Called by the reservation handlers after a booking is created or
// cancelled.  Errors are ignored: the worst case is one stale TTL
// window.
func (ca *Cache) Invalidate(ctx context.Context) {
	if !ca.enabled() {
		return
	}
	var cursor uint64
	for {
		keys, next, err := ca.rdb.Scan(ctx, cursor, ca.cfg.Prefix+":*", 100).Result()
		if err != nil {
			return
		}
		if len(keys) > 0 {
			_ = ca.rdb.Del(ctx, keys...).Err()
		}
		if next == 0 {
			return
		}
		cursor = next
	}
}

// captureWriter tees the response body while forwarding it to the
// client unchanged.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.ResponseWriter.Write(b)
}
