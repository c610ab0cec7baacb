package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/virtuixrw/backend/database"
	"github.com/virtuixrw/backend/models"
)

func MyReferrals(c *fiber.Ctx) error {
	var referrals []models.Referral
	if err := database.DB.Preload("ReferredUser").
		Where("referrer_id = ?", currentUserID(c)).
		Order("level, created_at DESC").
		Find(&referrals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load referrals"})
	}

	var totalCommission float64
	for _, r := range referrals {
		totalCommission += r.Commission
	}

	return c.JSON(fiber.Map{
		"referrals":        referrals,
		"total_commission": totalCommission,
	})
}
