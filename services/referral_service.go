package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/virtuixrw/backend/models"
	"gorm.io/gorm"
)

// ReferralRates by level: 5% direct, 3% second, 1% third.
var ReferralRates = [...]float64{0.05, 0.03, 0.01}

// MaxReferralDepth is a policy cap, not a traversal limitation. It is the
// absolute stop condition even if referral data is corrupted into a cycle.
const MaxReferralDepth = 3

// ResolveReferralChain records the new user's upline at signup, one Referral
// row per level up to three. An unknown code is ignored, matching signup
// behavior: a bad code never blocks registration.
func ResolveReferralChain(tx *gorm.DB, newUser *models.User, code string) error {
	var referrer models.User
	if err := tx.Where("referral_code = ?", code).First(&referrer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Invalid referral code used: %s", code)
			return nil
		}
		return err
	}

	current := referrer
	for level := 1; level <= MaxReferralDepth; level++ {
		if current.ID == newUser.ID {
			break
		}
		referral := models.Referral{
			ReferrerID:     current.ID,
			ReferredUserID: newUser.ID,
			Level:          level,
		}
		if err := tx.Create(&referral).Error; err != nil {
			return err
		}

		if current.ReferredByCode == nil || *current.ReferredByCode == "" {
			break
		}
		var next models.User
		if err := tx.Where("referral_code = ?", *current.ReferredByCode).First(&next).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				break
			}
			return err
		}
		current = next
	}
	return nil
}

// PayReferralCommissions walks the buyer's recorded upline and credits each
// level's glass wallet. The loop bound is the 3-hop cap; a chain shorter
// than 3 simply stops early.
func PayReferralCommissions(tx *gorm.DB, buyerID uuid.UUID, saleAmount float64) error {
	for level := 1; level <= MaxReferralDepth; level++ {
		var referral models.Referral
		err := tx.Where("referred_user_id = ? AND level = ?", buyerID, level).First(&referral).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			break
		}
		if err != nil {
			return err
		}

		rate := ReferralRates[level-1]
		commission := saleAmount * rate
		if _, err := Credit(tx, referral.ReferrerID, models.WalletGlass, commission, TxMeta{
			Type:        models.TxCommission,
			Description: fmt.Sprintf("Level %d referral commission (%g%%)", level, rate*100),
			ReferenceID: &referral.ID,
		}); err != nil {
			return err
		}

		if err := tx.Model(&referral).
			Update("commission", gorm.Expr("commission + ?", commission)).Error; err != nil {
			return err
		}
	}
	return nil
}
