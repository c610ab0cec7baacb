package services

import (
	"github.com/google/uuid"
	"github.com/virtuixrw/backend/models"
	"gorm.io/gorm"
)

// VerifiedThreshold is the cumulative-deposit total that promotes any tier
// to verified.
const VerifiedThreshold = 1100000

// WithdrawalDailyLimits caps a single withdrawal request per tier.
var WithdrawalDailyLimits = map[string]float64{
	models.TierBasic:    50000,
	models.TierPremium:  200000,
	models.TierVerified: 500000,
}

// EvaluateTier re-derives the user's tier after a deposit confirmation or
// token purchase. Transitions are monotonic; a user already at or above the
// earned tier is left alone.
func EvaluateTier(tx *gorm.DB, userID uuid.UUID) error {
	var user models.User
	if err := tx.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	if user.Tier != models.TierVerified && user.TotalDeposits >= VerifiedThreshold {
		return tx.Model(&user).Update("tier", models.TierVerified).Error
	}
	return nil
}
