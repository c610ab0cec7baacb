package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	config "github.com/virtuixrw/backend/configs"
	"github.com/virtuixrw/backend/database"
	"github.com/virtuixrw/backend/models"
	"github.com/virtuixrw/backend/services"
)

type SubmitDepositRequest struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Phone         string  `json:"phone" validate:"required,min=10"`
	TransactionID string  `json:"transaction_id" validate:"required"`
}

func SubmitDeposit(c *fiber.Ctx) error {
	var req SubmitDepositRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	pending, err := services.SubmitDeposit(currentUserID(c), req.Amount, req.Phone, req.TransactionID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"pending_deposit": pending,
		"instructions": fmt.Sprintf("Send %.0f FRW to MTN: %s, then wait for admin confirmation",
			req.Amount, config.Config("PLATFORM_MTN_PHONE")),
	})
}

func ListDepositAmounts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"amounts": services.DepositAmounts})
}

func MyDeposits(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var deposits []models.Deposit
	if err := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&deposits).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load deposits"})
	}

	var pending []models.PendingDeposit
	if err := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&pending).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load pending deposits"})
	}

	return c.JSON(fiber.Map{"deposits": deposits, "pending": pending})
}
