package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-reservation/internal/config"
	"github.com/iliyamo/hotel-room-reservation/internal/handler"
	"github.com/iliyamo/hotel-room-reservation/internal/middleware"
	"github.com/iliyamo/hotel-room-reservation/internal/queue"
	"github.com/iliyamo/hotel-room-reservation/internal/registry"
	"github.com/iliyamo/hotel-room-reservation/internal/repository"
	"github.com/iliyamo/hotel-room-reservation/internal/router"
	queue_publisher "github.com/iliyamo/hotel-room-reservation/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	// The booking registry is the single source of truth. It starts
	// from the fixed inventory and holds everything in memory.
	reg, err := registry.New(registry.DefaultInventory())
	if err != nil {
		log.Fatalf("inventory: %v", err)
	}

	// Staff accounts and refresh tokens, also in memory.
	users := repository.NewUserRepo()
	tokens := repository.NewTokenRepo()

	// Redis is optional: without it the response cache and rate
	// limiter become pass-throughs.
	rdb := config.NewRedisClient()
	cache := middleware.NewCache(config.LoadCacheConfig(), rdb)
	limiter := middleware.NewRateLimiter(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	e.Validator = handler.NewValidator()
	e.Use(limiter)

	auth := handler.NewAuthHandler(cfg, users, tokens)
	rooms := handler.NewRoomHandler(reg)
	clients := handler.NewClientHandler(reg)
	reservations := handler.NewReservationHandler(reg, cache, queue_publisher.New())

	router.RegisterRoutes(e)
	router.RegisterAuth(e, auth, cfg.JWTSecret)
	router.RegisterPublic(e, rooms, cache)
	router.RegisterStaff(e, clients, reservations, cfg.JWTSecret)

	// Background consumer writes booking events to logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking-consumer: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
