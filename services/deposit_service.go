package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/virtuixrw/backend/database"
	"github.com/virtuixrw/backend/models"
	"gorm.io/gorm"
)

// DepositAmounts is the fixed set of accepted mobile-money denominations.
var DepositAmounts = []float64{5000, 9000, 15000, 25000, 35000}

const (
	DepositProfitRate  = 0.10
	DepositProfitDelay = 3 * time.Hour
)

// SubmitDeposit records a user's claim of having sent mobile money. Nothing
// is credited until an admin confirms the claim against the MTN statement.
func SubmitDeposit(userID uuid.UUID, amount float64, phone, transactionID string) (*models.PendingDeposit, error) {
	if !validDepositAmount(amount) {
		return nil, ErrInvalidAmount
	}

	pending := &models.PendingDeposit{
		OrderID:       "ORD-" + strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36)),
		UserID:        userID,
		Amount:        amount,
		Phone:         phone,
		TransactionID: transactionID,
		Status:        models.PendingDepositPending,
	}
	if err := database.DB.Create(pending).Error; err != nil {
		return nil, err
	}
	return pending, nil
}

// ConfirmDeposit is the only point where deposited funds move. It is
// idempotent: the pending -> confirmed flip is a conditional update, and a
// second call returns ErrAlreadyProcessed without touching balances.
func ConfirmDeposit(pendingID, adminID uuid.UUID) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&models.PendingDeposit{}).
			Where("id = ? AND status = ?", pendingID, models.PendingDepositPending).
			Updates(map[string]interface{}{
				"status":       models.PendingDepositConfirmed,
				"confirmed_at": now,
				"confirmed_by": adminID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.PendingDeposit{}).Where("id = ?", pendingID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return gorm.ErrRecordNotFound
			}
			return ErrAlreadyProcessed
		}

		var pending models.PendingDeposit
		if err := tx.First(&pending, "id = ?", pendingID).Error; err != nil {
			return err
		}

		deposit := &models.Deposit{
			UserID: pending.UserID,
			Amount: pending.Amount,
			Status: models.DepositCompleted,
		}
		if err := tx.Create(deposit).Error; err != nil {
			return err
		}

		if _, err := Credit(tx, pending.UserID, models.WalletBlack, pending.Amount, TxMeta{
			Type:        models.TxDeposit,
			Description: fmt.Sprintf("Deposit of %.0f FRW", pending.Amount),
			ReferenceID: &deposit.ID,
		}); err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", pending.UserID).
			Update("total_deposits", gorm.Expr("total_deposits + ?", pending.Amount)).Error; err != nil {
			return err
		}
		if err := EvaluateTier(tx, pending.UserID); err != nil {
			return err
		}

		return tx.Create(&models.ScheduledPayout{
			UserID:      pending.UserID,
			Amount:      pending.Amount * DepositProfitRate,
			Kind:        models.PayoutDepositBonus,
			ScheduledAt: now.Add(DepositProfitDelay),
			DepositID:   &deposit.ID,
		}).Error
	})
}

// RejectDeposit is terminal and has no balance effect. The reason is shown
// to the user.
func RejectDeposit(pendingID uuid.UUID, reason string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PendingDeposit{}).
			Where("id = ? AND status = ?", pendingID, models.PendingDepositPending).
			Updates(map[string]interface{}{
				"status":        models.PendingDepositRejected,
				"reject_reason": reason,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.PendingDeposit{}).Where("id = ?", pendingID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return gorm.ErrRecordNotFound
			}
			return ErrAlreadyProcessed
		}
		return nil
	})
}

func validDepositAmount(amount float64) bool {
	for _, allowed := range DepositAmounts {
		if amount == allowed {
			return true
		}
	}
	return false
}

// HasDepositHistory reports whether the user has ever completed a deposit.
func HasDepositHistory(tx *gorm.DB, userID uuid.UUID) (bool, error) {
	var count int64
	err := tx.Model(&models.Deposit{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	return count > 0, nil
}
