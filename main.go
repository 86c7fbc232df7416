package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"venue_booking/config"
	"venue_booking/database"
	"venue_booking/helper"
	"venue_booking/metrics"
	"venue_booking/router"
	"venue_booking/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	price, err := decimal.NewFromString(cfg.SlotPrice)
	if err != nil {
		log.Fatalf("Invalid SLOT_PRICE %q: %v", cfg.SlotPrice, err)
	}
	grid := helper.SlotGrid{OpenHour: cfg.SlotOpenHour, CloseHour: cfg.SlotCloseHour, Price: price}
	if err := grid.Validate(); err != nil {
		log.Fatalf("Invalid slot grid: %v", err)
	}
	loc := cfg.Location()
	reg := metrics.NewRegistry()

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			log.Fatalf("Failed to connect to redis at %s: %v", cfg.RedisAddr, err)
		}
		defer rdb.Close()
	}

	orders, holds, err := openStores(cfg, rdb)
	if err != nil {
		log.Fatalf("Failed to open stores: %v", err)
	}

	var notifier helper.Notifier = helper.NewLocalNotifier()
	if rdb != nil {
		notifier = helper.NewRedisNotifier(rdb)
	}

	projector := helper.NewBookingProjector(orders, helper.NewVenueMatcher(cfg.VenueKeywords))
	checker := helper.NewAvailabilityChecker(projector, holds, helper.CheckerConfig{
		Grid:          grid,
		BufferMinutes: cfg.BufferMinutes,
		Location:      loc,
	}, reg)
	mailer := &utils.Mailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}
	holdService := helper.NewHoldService(checker, holds, notifier, mailer, cfg.HoldTTL, reg)

	janitor := helper.NewHoldJanitor(holds, nil, cfg.HoldRetention, reg)
	if err := janitor.Start(cfg.HoldExpiryCron, loc); err != nil {
		log.Fatalf("Failed to start hold janitor: %v", err)
	}
	defer janitor.Stop()

	app := fiber.New()
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Origins(),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))

	router.SetupRoutes(app, router.Deps{
		JWTSecret: cfg.JWTSecret,
		Checker:   checker,
		Holds:     holdService,
		Notifier:  notifier,
		Metrics:   reg,
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// openStores picks the order backend from ORDER_STORE. Holds live next to the
// orders in Postgres; the other backends keep them in Redis when configured,
// otherwise in memory.
func openStores(cfg config.App, rdb *redis.Client) (database.OrderStore, database.HoldStore, error) {
	var fallbackHolds database.HoldStore = database.NewMemoryHoldStore()
	if rdb != nil {
		fallbackHolds = database.NewRedisHoldStore(rdb, cfg.HoldTTL)
	}

	switch cfg.OrderStore {
	case "postgres":
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, nil, err
		}
		return database.NewGormOrderStore(db), database.NewGormHoldStore(db), nil
	case "supabase":
		orders, err := database.NewSupabaseOrderStore(cfg.SupabaseURL, cfg.SupabaseServiceKey)
		if err != nil {
			return nil, nil, err
		}
		return orders, fallbackHolds, nil
	case "file":
		if cfg.SeedDemo {
			if err := database.WriteOrdersFile(cfg.OrdersFile, database.DemoOrders(time.Now())); err != nil {
				return nil, nil, err
			}
		}
		return database.NewFileOrderStore(cfg.OrdersFile), fallbackHolds, nil
	}
	return nil, nil, fmt.Errorf("unknown ORDER_STORE %q", cfg.OrderStore)
}
