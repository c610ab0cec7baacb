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
	TokenDailyProfitRate = 0.12
	TokenProfitDays      = 90
)

// PurchaseToken debits the black wallet for the catalog price, creates the
// token, enqueues its 90 daily payouts as discrete one-shot rows and pays
// the referral upline. Buying a premium token promotes a basic user to
// premium; verified tokens require the verified tier.
func PurchaseToken(userID, tokenTierID uuid.UUID) (*models.UserToken, error) {
	var purchased *models.UserToken
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var tier models.TokenTier
		if err := tx.First(&tier, "id = ?", tokenTierID).Error; err != nil {
			return err
		}
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}
		if tier.RequiredTier == models.TierVerified && user.Tier != models.TierVerified {
			return ErrTierLocked
		}

		userToken := &models.UserToken{
			UserID:        userID,
			TokenTierID:   tier.ID,
			PurchasePrice: tier.Price,
			DailyReturn:   tier.DailyReturn,
			DaysRemaining: TokenProfitDays,
		}

		if _, err := Debit(tx, userID, models.WalletBlack, tier.Price, TxMeta{
			Type:        models.TxTokenPurchase,
			Description: fmt.Sprintf("Purchased %s token for %.0f FRW", tier.Name, tier.Price),
		}); err != nil {
			return err
		}
		if err := tx.Create(userToken).Error; err != nil {
			return err
		}

		if tier.RequiredTier == models.TierPremium && user.Tier == models.TierBasic {
			if err := tx.Model(&user).Update("tier", models.TierPremium).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		payouts := make([]models.ScheduledPayout, 0, TokenProfitDays)
		for day := 1; day <= TokenProfitDays; day++ {
			payouts = append(payouts, models.ScheduledPayout{
				UserID:      userID,
				Amount:      tier.DailyReturn,
				Kind:        models.PayoutTokenDaily,
				ScheduledAt: now.Add(time.Duration(day) * 24 * time.Hour),
				UserTokenID: &userToken.ID,
			})
		}
		if err := tx.Create(&payouts).Error; err != nil {
			return err
		}

		if err := PayReferralCommissions(tx, userID, tier.Price); err != nil {
			return err
		}

		purchased = userToken
		return nil
	})
	if err != nil {
		return nil, err
	}
	return purchased, nil
}

// ActiveTokens lists a user's tokens that still have payouts ahead of them.
func ActiveTokens(userID uuid.UUID) ([]models.UserToken, error) {
	var tokens []models.UserToken
	err := database.DB.Preload("TokenTier").
		Where("user_id = ? AND days_remaining > 0", userID).
		Order("created_at DESC").
		Find(&tokens).Error
	return tokens, err
}
