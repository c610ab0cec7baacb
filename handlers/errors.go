package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/virtuixrw/backend/services"
	"gorm.io/gorm"
)

// serviceError maps the expected service outcomes onto HTTP responses. Every
// mapped error carries its human-readable reason to the client; anything
// unmapped is a real failure.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInsufficientFunds),
		errors.Is(err, services.ErrNoDepositHistory),
		errors.Is(err, services.ErrLimitExceeded),
		errors.Is(err, services.ErrAlreadyClaimed),
		errors.Is(err, services.ErrRoomFull),
		errors.Is(err, services.ErrAlreadyJoined):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrTierLocked):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrAlreadyProcessed):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
	}
}
