package validate

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"venue_booking/constants"
	"venue_booking/model"
	"venue_booking/utils"
)

// CheckAvailability keeps the endpoint's {available, message} shape on bad
// input so clients never read a validation failure as "free".
func CheckAvailability() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AvailabilityRequest
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.AvailabilityResult{
				Available: false,
				Message:   fmt.Sprintf("%s: %s", constants.ERROR_INVALID_INPUT, err.Error()),
			})
		}
		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.AvailabilityResult{
				Available: false,
				Message:   fmt.Sprintf("%s: %s", constants.ERROR_INVALID_INPUT, err.Error()),
			})
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func CreateHold() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateHoldInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT, err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT, err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}
