package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"venue_booking/constants"
	"venue_booking/helper"
)

func statusFor(err error) int {
	switch {
	case helper.IsInvalidInput(err):
		return fiber.StatusBadRequest
	case errors.Is(err, helper.ErrHoldNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, helper.ErrSlotConflict):
		return fiber.StatusConflict
	case errors.Is(err, helper.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

func messageFor(err error) string {
	switch {
	case errors.Is(err, helper.ErrInvalidDate):
		return constants.ERROR_INVALID_DATE
	case errors.Is(err, helper.ErrInvalidTimeRange):
		return constants.ERROR_INVALID_TIME_RANGE
	case errors.Is(err, helper.ErrInvalidTimeFormat):
		return constants.ERROR_INVALID_TIME
	case errors.Is(err, helper.ErrRangeInPast):
		return constants.ERROR_RANGE_IN_PAST
	case errors.Is(err, helper.ErrHoldNotFound):
		return constants.ERROR_HOLD_NOT_FOUND
	case errors.Is(err, helper.ErrSlotConflict):
		return constants.ERROR_SLOT_TAKEN
	case errors.Is(err, helper.ErrStoreUnavailable):
		return constants.ERROR_STORE_UNAVAILABLE
	}
	return constants.ERROR_INTERNAL_ERROR
}
