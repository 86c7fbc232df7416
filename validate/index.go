package validate

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"venue_booking/constants"
	"venue_booking/model"
	"venue_booking/utils"
)

var validate = validator.New()

// HoldID checks that the :holdId param is a uuid and stores it as "holdId".
func HoldID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("holdId")
		if _, err := uuid.Parse(id); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT, errors.New("holdId must be a uuid"))
		}
		c.Locals("holdId", id)
		return c.Next()
	}
}

func SlotQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SlotQuery
		if err := c.QueryParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT, err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_DATE, err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}
