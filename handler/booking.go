package handler

import (
	"github.com/gofiber/fiber/v2"

	"venue_booking/database"
	"venue_booking/helper"
	"venue_booking/model"
	"venue_booking/utils"
)

type BookingHandler struct {
	checker *helper.AvailabilityChecker
}

func NewBookingHandler(checker *helper.AvailabilityChecker) *BookingHandler {
	return &BookingHandler{checker: checker}
}

// GetSlots serves GET /bookings/slots?location=&date=
func (h *BookingHandler) GetSlots(c *fiber.Ctx) error {
	input := c.Locals("input").(model.SlotQuery)

	slots, err := h.checker.Slots(c.UserContext(), input.Date, input.Location)
	if err != nil {
		return utils.ErrorResponse(c, statusFor(err), messageFor(err), err)
	}
	return c.JSON(model.SlotsResponse{Slots: slots})
}

// CheckAvailability answers with {available, message} on every path. Errors
// are reported as unavailable.
func (h *BookingHandler) CheckAvailability(c *fiber.Ctx) error {
	input := c.Locals("input").(model.AvailabilityRequest)

	result, err := h.checker.Check(c.UserContext(), input)
	if err != nil {
		return c.Status(statusFor(err)).JSON(model.AvailabilityResult{
			Available: false,
			Message:   messageFor(err),
		})
	}
	return c.JSON(result)
}

// GetBookings lists venue bookings newest first, optionally for one ?date=.
func (h *BookingHandler) GetBookings(c *fiber.Ctx) error {
	date := c.Query("date")
	if date != "" {
		if _, err := helper.ParseDate(date, h.checker.Location()); err != nil {
			return utils.ErrorResponse(c, statusFor(err), messageFor(err), err)
		}
	}

	bookings, err := h.checker.Projector().ProjectSorted(c.UserContext(), database.OrderQuery{})
	if err != nil {
		return utils.ErrorResponse(c, statusFor(err), messageFor(err), err)
	}
	return c.JSON(helper.ToViews(helper.FilterByDate(bookings, date)))
}
