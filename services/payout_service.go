package services

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/virtuixrw/backend/database"
	"github.com/virtuixrw/backend/models"
	"gorm.io/gorm"
)

// ProcessDuePayouts executes every unexecuted payout whose scheduled time
// has passed. Each payout is claimed and credited in its own transaction, so
// one bad row cannot hold up the rest and a concurrent sweep can never
// double-credit.
func ProcessDuePayouts() (int, error) {
	var due []uuid.UUID
	err := database.DB.Model(&models.ScheduledPayout{}).
		Where("executed = ? AND scheduled_at <= ?", false, time.Now()).
		Pluck("id", &due).Error
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, id := range due {
		ok, err := ExecutePayout(id)
		if err != nil {
			log.Printf("🔥 Failed to execute payout %s: %v", id, err)
			continue
		}
		if ok {
			processed++
		}
	}
	return processed, nil
}

// ExecutePayout credits a single scheduled payout at most once. The claim is
// a conditional executed=false -> true update in the same transaction as the
// credit: if the transaction rolls back the claim rolls back with it, and if
// another worker already claimed the row this call is a no-op.
func ExecutePayout(id uuid.UUID) (bool, error) {
	claimed := false
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&models.ScheduledPayout{}).
			Where("id = ? AND executed = ?", id, false).
			Updates(map[string]interface{}{"executed": true, "executed_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		claimed = true

		var payout models.ScheduledPayout
		if err := tx.First(&payout, "id = ?", id).Error; err != nil {
			return err
		}

		if _, err := Credit(tx, payout.UserID, models.WalletGlass, payout.Amount, TxMeta{
			Type:        txTypeForPayout(payout.Kind),
			Description: payoutDescription(payout),
			ReferenceID: &payout.ID,
		}); err != nil {
			return err
		}

		switch payout.Kind {
		case models.PayoutDepositBonus:
			if payout.DepositID != nil {
				if err := tx.Model(&models.Deposit{}).
					Where("id = ?", *payout.DepositID).
					Updates(map[string]interface{}{
						"status":         models.DepositProfitPaid,
						"profit_paid_at": now,
					}).Error; err != nil {
					return err
				}
			}
		case models.PayoutTokenDaily:
			// The token's counter is driven by payout execution only, so
			// days_remaining and the schedule cannot drift apart.
			if payout.UserTokenID != nil {
				if err := tx.Model(&models.UserToken{}).
					Where("id = ? AND days_remaining > 0", *payout.UserTokenID).
					Updates(map[string]interface{}{
						"days_remaining": gorm.Expr("days_remaining - 1"),
						"total_earned":   gorm.Expr("total_earned + ?", payout.Amount),
					}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return claimed, nil
}

func txTypeForPayout(kind string) string {
	if kind == models.PayoutTokenDaily {
		return models.TxTokenProfit
	}
	return models.TxProfit
}

func payoutDescription(p models.ScheduledPayout) string {
	if p.Kind == models.PayoutTokenDaily {
		return fmt.Sprintf("Daily token profit of %.0f FRW", p.Amount)
	}
	return fmt.Sprintf("10%% deposit profit of %.0f FRW", p.Amount)
}
