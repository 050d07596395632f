package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/amberpalace/hotel-booking/internal/catalog"
	"github.com/amberpalace/hotel-booking/internal/config"
	"github.com/amberpalace/hotel-booking/internal/database"
	"github.com/amberpalace/hotel-booking/internal/handler"
	"github.com/amberpalace/hotel-booking/internal/middleware"
	"github.com/amberpalace/hotel-booking/internal/pricing"
	"github.com/amberpalace/hotel-booking/internal/queue"
	"github.com/amberpalace/hotel-booking/internal/repository"
	"github.com/amberpalace/hotel-booking/internal/router"
	"github.com/amberpalace/hotel-booking/internal/service"
	"github.com/amberpalace/hotel-booking/internal/utils"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("timezone: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db, cfg.DBDriver); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	adminSecret, err := utils.NewAdminSecret(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("hash admin password: %v", err)
	}

	var events service.EventPublisher
	if cfg.RabbitURL != "" {
		events = queue.NewPublisher(cfg.RabbitURL)
		go queue.StartBookingConsumer(cfg.RabbitURL)
	} else {
		log.Printf("rabbitmq: disabled (RABBITMQ_URL not set)")
	}

	repo := repository.NewBookingRepo(db)
	calc := pricing.NewCalculator(cat, cfg.TaxRate)
	svc := service.NewBooking(repo, calc, cat, events, loc)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis: disabled; rate limiting and response cache off")
	}
	rateLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())

	router.RegisterRoutes(e, &handler.HealthHandler{DB: db})
	router.RegisterPublic(e, handler.NewBookingHandler(svc), handler.NewCatalogHandler(cat), rateLimit, cache)
	router.RegisterAdmin(e, handler.NewAdminHandler(cfg, adminSecret, svc), cfg.JWTSecret, rateLimit)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, db=%s)", addr, cfg.Env, cfg.DBDriver)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
