package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/virtuixrw/backend/database"
	"github.com/virtuixrw/backend/models"
	"github.com/virtuixrw/backend/services"
)

type RejectDepositRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

type ProcessWithdrawalRequest struct {
	Action string  `json:"action" validate:"required,oneof=approve reject"`
	Notes  *string `json:"notes"`
}

func ListPendingDeposits(c *fiber.Ctx) error {
	var pending []models.PendingDeposit
	if err := database.DB.Preload("User").
		Where("status = ?", models.PendingDepositPending).
		Order("created_at").
		Find(&pending).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(pending)
}

func ConfirmPendingDeposit(c *fiber.Ctx) error {
	pendingID, err := uuid.Parse(c.Params("depositId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid deposit ID"})
	}

	if err := services.ConfirmDeposit(pendingID, currentUserID(c)); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "message": "Deposit confirmed and profit scheduled"})
}

func RejectPendingDeposit(c *fiber.Ctx) error {
	pendingID, err := uuid.Parse(c.Params("depositId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid deposit ID"})
	}

	var req RejectDepositRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := services.RejectDeposit(pendingID, req.Reason); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "message": "Deposit rejected"})
}

func ListPendingWithdrawals(c *fiber.Ctx) error {
	var withdrawals []models.Withdrawal
	if err := database.DB.Preload("User").
		Where("status = ?", models.WithdrawalPending).
		Order("created_at").
		Find(&withdrawals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(withdrawals)
}

func ProcessWithdrawal(c *fiber.Ctx) error {
	withdrawalID, err := uuid.Parse(c.Params("withdrawalId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid withdrawal ID"})
	}

	var req ProcessWithdrawalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := services.ProcessWithdrawal(withdrawalID, currentUserID(c), req.Action == "approve", req.Notes); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success"})
}

func AdminListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(users)
}

// RunPayoutSweep lets an admin trigger the due-payout sweep outside the cron
// schedule, mainly for support situations.
func RunPayoutSweep(c *fiber.Ctx) error {
	processed, err := services.ProcessDuePayouts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Sweep failed"})
	}
	return c.JSON(fiber.Map{"status": "success", "processed": processed})
}
