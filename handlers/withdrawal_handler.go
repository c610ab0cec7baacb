package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/virtuixrw/backend/database"
	"github.com/virtuixrw/backend/models"
	"github.com/virtuixrw/backend/services"
)

type WithdrawalRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

func RequestWithdrawal(c *fiber.Ctx) error {
	var req WithdrawalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	withdrawal, err := services.RequestWithdrawal(currentUserID(c), req.Amount)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(withdrawal)
}

func MyWithdrawals(c *fiber.Ctx) error {
	var withdrawals []models.Withdrawal
	if err := database.DB.Where("user_id = ?", currentUserID(c)).
		Order("created_at DESC").
		Find(&withdrawals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load withdrawals"})
	}
	return c.JSON(withdrawals)
}
