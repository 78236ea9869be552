package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hotel-room-reservation/internal/config"
)

// NewRateLimiter returns a fixed-window request limiter backed by
// Redis.  Each client key gets cfg.Limit requests per cfg.Window;
// the counter lives in a key that expires with the window, so a
// burst after a quiet period always starts from a fresh window.
// With rate limiting disabled or no Redis client available the
// middleware is a pass-through, and any Redis error fails open.
func NewRateLimiter(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := rateKey(cfg.Prefix, c)

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if count == 1 {
				_ = rdb.Expire(ctx, key, cfg.Window).Err()
			}

			remaining := int64(cfg.Limit) - count
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(cfg.Limit) {
				ttl, err := rdb.TTL(ctx, key).Result()
				if err != nil || ttl < 0 {
					ttl = cfg.Window
				}
				secs := int(math.Ceil(ttl.Seconds()))
				c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
				return c.JSON(http.StatusTooManyRequests, echo.Map{
					"error":       "too_many_requests",
					"retry_after": secs,
				})
			}
			return next(c)
		}
	}
}

// rateKey derives the counter key for a request.  Authenticated
// staff are bucketed by user id so a shared office IP does not
// starve colleagues; anonymous requests fall back to the client
// IP.  The route path keeps heavy endpoints from exhausting the
// budget of cheap ones.
func rateKey(prefix string, c echo.Context) string {
	who := c.RealIP()
	if v := c.Get("user_id"); v != nil {
		who = fmt.Sprint(v)
	}
	return fmt.Sprintf("%s:%s:%s", prefix, who, c.Path())
}
