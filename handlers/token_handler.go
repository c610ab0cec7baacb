package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/virtuixrw/backend/database"
	"github.com/virtuixrw/backend/models"
	"github.com/virtuixrw/backend/services"
)

func ListTokenCatalog(c *fiber.Ctx) error {
	var tiers []models.TokenTier
	if err := database.DB.Order("price").Find(&tiers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load catalog"})
	}
	return c.JSON(tiers)
}

func PurchaseToken(c *fiber.Ctx) error {
	tierID, err := uuid.Parse(c.Params("tierId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid token tier ID"})
	}

	token, err := services.PurchaseToken(currentUserID(c), tierID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(token)
}

func MyActiveTokens(c *fiber.Ctx) error {
	tokens, err := services.ActiveTokens(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load tokens"})
	}
	return c.JSON(tokens)
}
