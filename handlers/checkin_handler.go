package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/virtuixrw/backend/services"
)

type CheckInRequest struct {
	Kind string `json:"kind" validate:"required,oneof=daily hourly"`
}

func ClaimCheckIn(c *fiber.Ctx) error {
	var req CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entry, err := services.ClaimCheckIn(currentUserID(c), req.Kind)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "transaction": entry})
}
