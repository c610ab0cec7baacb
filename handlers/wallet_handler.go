package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/virtuixrw/backend/database"
	"github.com/virtuixrw/backend/models"
	"github.com/virtuixrw/backend/services"
)

type TransferRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

func GetBalances(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var wallet models.Wallet
	if err := database.DB.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Wallet not found"})
	}

	return c.JSON(fiber.Map{
		"glass_balance": wallet.GlassBalance,
		"black_balance": wallet.BlackBalance,
	})
}

func GetTransactionHistory(c *fiber.Ctx) error {
	userID := currentUserID(c)
	limit := c.QueryInt("limit", 100)

	history, err := services.TransactionHistory(userID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load transactions"})
	}
	return c.JSON(history)
}

func TransferToBlack(c *fiber.Ctx) error {
	var req TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entry, err := services.TransferGlassToBlack(currentUserID(c), req.Amount)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "transaction": entry})
}
