package handler

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"venue_booking/helper"
	"venue_booking/model"
	"venue_booking/utils"
)

const qrSize = 256

type HoldHandler struct {
	holds *helper.HoldService
}

func NewHoldHandler(holds *helper.HoldService) *HoldHandler {
	return &HoldHandler{holds: holds}
}

func (h *HoldHandler) CreateHold(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateHoldInput)

	hold, err := h.holds.Place(c.UserContext(), input)
	if err != nil {
		return utils.ErrorResponse(c, statusFor(err), messageFor(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, holdResponse(hold))
}

func (h *HoldHandler) GetHold(c *fiber.Ctx) error {
	hold, err := h.holds.Get(c.UserContext(), c.Locals("holdId").(string))
	if err != nil {
		return utils.ErrorResponse(c, statusFor(err), messageFor(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, holdResponse(hold))
}

func (h *HoldHandler) ReleaseHold(c *fiber.Ctx) error {
	hold, err := h.holds.Release(c.UserContext(), c.Locals("holdId").(string))
	if err != nil {
		return utils.ErrorResponse(c, statusFor(err), messageFor(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.HoldResponse{Hold: hold})
}

func holdResponse(hold model.Hold) model.HoldResponse {
	qr, err := utils.QRCodeDataURL(hold.ID, qrSize)
	if err != nil {
		log.Printf("Failed to generate QR for hold %s: %v", hold.ID, err)
	}
	return model.HoldResponse{Hold: hold, QRCode: qr}
}
