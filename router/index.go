package router

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"venue_booking/handler"
	"venue_booking/helper"
	"venue_booking/metrics"
	"venue_booking/middleware"
	"venue_booking/validate"
)

type Deps struct {
	JWTSecret string
	Checker   *helper.AvailabilityChecker
	Holds     *helper.HoldService
	Notifier  helper.Notifier
	Metrics   *metrics.Registry
}

func SetupRoutes(app *fiber.App, d Deps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(d.Metrics.Handler()))

	bookingHandler := handler.NewBookingHandler(d.Checker)
	holdHandler := handler.NewHoldHandler(d.Holds)
	slotSocket := handler.NewSlotSocket(d.Checker, d.Notifier)

	bookings := app.Group("/bookings", logger.New())
	bookings.Get("/", middleware.Protected(d.JWTSecret), middleware.AdminOnly(), bookingHandler.GetBookings)
	bookings.Get("/slots", validate.SlotQuery(), bookingHandler.GetSlots)
	bookings.Get("/slots/ws", slotSocket.Upgrade, websocket.New(slotSocket.Serve))
	bookings.Post("/check-availability", validate.CheckAvailability(), bookingHandler.CheckAvailability)

	holds := bookings.Group("/holds")
	holds.Post("/", validate.CreateHold(), holdHandler.CreateHold)
	holds.Get("/:holdId", validate.HoldID(), holdHandler.GetHold)
	holds.Delete("/:holdId", validate.HoldID(), holdHandler.ReleaseHold)
}
