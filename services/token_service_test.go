package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/virtuixrw/backend/models"
)

func TestPurchaseTokenSchedulesNinetyPayouts(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, models.TierBasic, nil)
	fundWallet(t, db, user.ID, models.WalletBlack, 5000)
	tier := createTestTier(t, db, 5000, models.TierBasic)

	token, err := PurchaseToken(user.ID, tier.ID)
	require.NoError(t, err)
	require.EqualValues(t, 5000, token.PurchasePrice)
	require.EqualValues(t, 600, token.DailyReturn)
	require.Equal(t, TokenProfitDays, token.DaysRemaining)

	w := walletOf(t, db, user.ID)
	require.EqualValues(t, 0, w.BlackBalance)

	var payouts []models.ScheduledPayout
	require.NoError(t, db.Where("user_token_id = ?", token.ID).Order("scheduled_at").Find(&payouts).Error)
	require.Len(t, payouts, TokenProfitDays)
	for _, p := range payouts {
		require.EqualValues(t, 600, p.Amount)
		require.Equal(t, models.PayoutTokenDaily, p.Kind)
		require.False(t, p.Executed)
	}
	require.WithinDuration(t, time.Now().Add(24*time.Hour), payouts[0].ScheduledAt, time.Minute)
	require.WithinDuration(t, time.Now().Add(90*24*time.Hour), payouts[89].ScheduledAt, time.Minute)
}

func TestTokenDailyPayoutDrivesCounter(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, models.TierBasic, nil)
	fundWallet(t, db, user.ID, models.WalletBlack, 5000)
	tier := createTestTier(t, db, 5000, models.TierBasic)

	token, err := PurchaseToken(user.ID, tier.ID)
	require.NoError(t, err)

	var first models.ScheduledPayout
	require.NoError(t, db.Where("user_token_id = ?", token.ID).Order("scheduled_at").First(&first).Error)
	require.NoError(t, db.Model(&first).Update("scheduled_at", time.Now().Add(-time.Minute)).Error)

	processed, err := ProcessDuePayouts()
	require.NoError(t, err)
	require.Equal(t, 1, processed)

	w := walletOf(t, db, user.ID)
	require.EqualValues(t, 600, w.GlassBalance)

	var updated models.UserToken
	require.NoError(t, db.First(&updated, "id = ?", token.ID).Error)
	require.Equal(t, 89, updated.DaysRemaining)
	require.EqualValues(t, 600, updated.TotalEarned)
}

func TestPurchaseTokenInsufficientFunds(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, models.TierBasic, nil)
	fundWallet(t, db, user.ID, models.WalletBlack, 4999)
	tier := createTestTier(t, db, 5000, models.TierBasic)

	_, err := PurchaseToken(user.ID, tier.ID)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	w := walletOf(t, db, user.ID)
	require.EqualValues(t, 4999, w.BlackBalance)

	var payoutCount int64
	require.NoError(t, db.Model(&models.ScheduledPayout{}).Where("user_id = ?", user.ID).Count(&payoutCount).Error)
	require.EqualValues(t, 0, payoutCount)
}

func TestPurchaseVerifiedTokenRequiresVerifiedTier(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, models.TierPremium, nil)
	fundWallet(t, db, user.ID, models.WalletBlack, 2500000)
	tier := createTestTier(t, db, 2500000, models.TierVerified)

	_, err := PurchaseToken(user.ID, tier.ID)
	require.ErrorIs(t, err, ErrTierLocked)

	w := walletOf(t, db, user.ID)
	require.EqualValues(t, 2500000, w.BlackBalance)
}

func TestPurchasePremiumTokenUpgradesBasicUser(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, models.TierBasic, nil)
	fundWallet(t, db, user.ID, models.WalletBlack, 80000)
	tier := createTestTier(t, db, 80000, models.TierPremium)

	_, err := PurchaseToken(user.ID, tier.ID)
	require.NoError(t, err)

	var updated models.User
	require.NoError(t, db.First(&updated, "id = ?", user.ID).Error)
	require.Equal(t, models.TierPremium, updated.Tier)
}

func TestActiveTokensExcludesExhausted(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, models.TierBasic, nil)
	fundWallet(t, db, user.ID, models.WalletBlack, 10000)
	tier := createTestTier(t, db, 5000, models.TierBasic)

	active, err := PurchaseToken(user.ID, tier.ID)
	require.NoError(t, err)
	exhausted, err := PurchaseToken(user.ID, tier.ID)
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.UserToken{}).
		Where("id = ?", exhausted.ID).
		Update("days_remaining", 0).Error)

	tokens, err := ActiveTokens(user.ID)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.Equal(t, active.ID, tokens[0].ID)
}
