package handler

import (
	"context"
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"venue_booking/constants"
	"venue_booking/helper"
	"venue_booking/model"
	"venue_booking/utils"
)

// SlotSocket streams the annotated slot grid for one date, re-sending it
// whenever a hold on that date changes.
type SlotSocket struct {
	checker  *helper.AvailabilityChecker
	notifier helper.Notifier
}

func NewSlotSocket(checker *helper.AvailabilityChecker, notifier helper.Notifier) *SlotSocket {
	return &SlotSocket{checker: checker, notifier: notifier}
}

// Upgrade validates the query before the connection is hijacked.
func (s *SlotSocket) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	date := c.Query("date")
	if _, err := helper.ParseDate(date, s.checker.Location()); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_DATE, err)
	}
	c.Locals("date", date)
	c.Locals("location", c.Query("location"))
	return c.Next()
}

func (s *SlotSocket) Serve(conn *websocket.Conn) {
	date, _ := conn.Locals("date").(string)
	location, _ := conn.Locals("location").(string)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, stop := s.notifier.Subscribe(ctx, date)
	defer stop()

	// Reads only detect the client going away.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	push := func() error {
		slots, err := s.checker.Slots(ctx, date, location)
		if err != nil {
			return conn.WriteJSON(fiber.Map{"message": messageFor(err), "error": err.Error()})
		}
		return conn.WriteJSON(model.SlotsResponse{Slots: slots})
	}

	if err := push(); err != nil {
		log.Printf("Slot socket write failed: %v", err)
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			if err := push(); err != nil {
				log.Printf("Slot socket write failed: %v", err)
				return
			}
		}
	}
}
