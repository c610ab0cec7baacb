package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/virtuixrw/backend/database"
	"github.com/virtuixrw/backend/models"
	"gorm.io/gorm"
)

const (
	WithdrawalFeeRate = 0.02
	WithdrawalMinFee  = 500
)

// RequestWithdrawal validates deposit history, balance and the tier limit in
// that order, then debits the full amount. The fee is frozen at submission
// and retained by the platform; only the net amount is paid out.
func RequestWithdrawal(userID uuid.UUID, amount float64) (*models.Withdrawal, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var withdrawal *models.Withdrawal
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		funded, err := HasDepositHistory(tx, userID)
		if err != nil {
			return err
		}
		if !funded {
			return ErrNoDepositHistory
		}

		balance, err := walletBalance(tx, userID, models.WalletBlack)
		if err != nil {
			return err
		}
		if amount > balance {
			return ErrInsufficientFunds
		}

		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}
		limit := WithdrawalDailyLimits[user.Tier]
		if amount > limit {
			return fmt.Errorf("%w: max %.0f FRW", ErrLimitExceeded, limit)
		}

		fee := amount * WithdrawalFeeRate
		if fee < WithdrawalMinFee {
			fee = WithdrawalMinFee
		}

		withdrawal = &models.Withdrawal{
			UserID:    userID,
			Amount:    amount,
			Fee:       fee,
			NetAmount: amount - fee,
			Status:    models.WithdrawalPending,
		}
		if err := tx.Create(withdrawal).Error; err != nil {
			return err
		}

		_, err = Debit(tx, userID, models.WalletBlack, amount, TxMeta{
			Type:        models.TxWithdrawal,
			Description: fmt.Sprintf("Withdrawal request: %.0f FRW (fee: %.0f FRW)", amount, fee),
			ReferenceID: &withdrawal.ID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return withdrawal, nil
}

// ProcessWithdrawal finalizes a pending withdrawal. Rejection credits the
// debited amount back; approval leaves the ledger as-is, since the money
// already left the wallet at request time.
func ProcessWithdrawal(withdrawalID, adminID uuid.UUID, approve bool, notes *string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		status := models.WithdrawalApproved
		if !approve {
			status = models.WithdrawalRejected
		}

		now := time.Now()
		res := tx.Model(&models.Withdrawal{}).
			Where("id = ? AND status = ?", withdrawalID, models.WithdrawalPending).
			Updates(map[string]interface{}{
				"status":       status,
				"processed_at": now,
				"processed_by": adminID,
				"admin_notes":  notes,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.Withdrawal{}).Where("id = ?", withdrawalID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return gorm.ErrRecordNotFound
			}
			return ErrAlreadyProcessed
		}

		if !approve {
			var withdrawal models.Withdrawal
			if err := tx.First(&withdrawal, "id = ?", withdrawalID).Error; err != nil {
				return err
			}
			if _, err := Credit(tx, withdrawal.UserID, models.WalletBlack, withdrawal.Amount, TxMeta{
				Type:        models.TxRefund,
				Description: fmt.Sprintf("Refund of rejected withdrawal: %.0f FRW", withdrawal.Amount),
				ReferenceID: &withdrawal.ID,
			}); err != nil {
				return err
			}
		}
		return nil
	})
}
