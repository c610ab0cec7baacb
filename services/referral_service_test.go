package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/virtuixrw/backend/models"
	"gorm.io/gorm"
)

// buildChain creates a referral chain where each user is directly referred
// by the previous one, and returns them root-first.
func buildChain(t *testing.T, db *gorm.DB, length int) []*models.User {
	users := make([]*models.User, 0, length)
	var parentCode *string
	for i := 0; i < length; i++ {
		u := createTestUser(t, db, models.TierBasic, parentCode)
		if parentCode != nil {
			require.NoError(t, ResolveReferralChain(db, u, *parentCode))
		}
		users = append(users, u)
		parentCode = u.ReferralCode
	}
	return users
}

func TestCommissionCascadeRates(t *testing.T) {
	db := setupTestDB(t)
	chain := buildChain(t, db, 4)
	buyer := chain[3]

	require.NoError(t, PayReferralCommissions(db, buyer.ID, 10000))

	// Direct referrer 5%, then 3%, then 1%.
	require.EqualValues(t, 500, walletOf(t, db, chain[2].ID).GlassBalance)
	require.EqualValues(t, 300, walletOf(t, db, chain[1].ID).GlassBalance)
	require.EqualValues(t, 100, walletOf(t, db, chain[0].ID).GlassBalance)

	var level1 models.Referral
	require.NoError(t, db.Where("referred_user_id = ? AND level = ?", buyer.ID, 1).First(&level1).Error)
	require.EqualValues(t, 500, level1.Commission)
	require.Equal(t, chain[2].ID, level1.ReferrerID)

	var txCount int64
	require.NoError(t, db.Model(&models.Transaction{}).Where("type = ?", models.TxCommission).Count(&txCount).Error)
	require.EqualValues(t, 3, txCount)
}

func TestCascadeNeverExceedsThreeLevels(t *testing.T) {
	db := setupTestDB(t)
	chain := buildChain(t, db, 6)
	buyer := chain[5]

	require.NoError(t, PayReferralCommissions(db, buyer.ID, 10000))

	// Levels 4 and 5 above the buyer get nothing.
	require.EqualValues(t, 0, walletOf(t, db, chain[1].ID).GlassBalance)
	require.EqualValues(t, 0, walletOf(t, db, chain[0].ID).GlassBalance)
	require.EqualValues(t, 500, walletOf(t, db, chain[4].ID).GlassBalance)
}

func TestCascadeStopsEarlyOnShortChain(t *testing.T) {
	db := setupTestDB(t)
	chain := buildChain(t, db, 2)
	buyer := chain[1]

	require.NoError(t, PayReferralCommissions(db, buyer.ID, 10000))
	require.EqualValues(t, 500, walletOf(t, db, chain[0].ID).GlassBalance)
}

func TestResolveChainRecordsThreeLevels(t *testing.T) {
	db := setupTestDB(t)
	chain := buildChain(t, db, 5)
	newest := chain[4]

	var referrals []models.Referral
	require.NoError(t, db.Where("referred_user_id = ?", newest.ID).Order("level").Find(&referrals).Error)
	require.Len(t, referrals, 3)
	require.Equal(t, chain[3].ID, referrals[0].ReferrerID)
	require.Equal(t, chain[2].ID, referrals[1].ReferrerID)
	require.Equal(t, chain[1].ID, referrals[2].ReferrerID)
}

func TestResolveChainIgnoresUnknownCode(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, models.TierBasic, nil)

	require.NoError(t, ResolveReferralChain(db, user, "NOSUCHCD"))

	var count int64
	require.NoError(t, db.Model(&models.Referral{}).Where("referred_user_id = ?", user.ID).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestResolveChainSurvivesCorruptedCycle(t *testing.T) {
	db := setupTestDB(t)

	a := createTestUser(t, db, models.TierBasic, nil)
	b := createTestUser(t, db, models.TierBasic, a.ReferralCode)
	// Corrupt the data into a cycle: a now claims to be referred by b.
	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", a.ID).
		Update("referred_by_code", b.ReferralCode).Error)

	newUser := createTestUser(t, db, models.TierBasic, a.ReferralCode)
	require.NoError(t, ResolveReferralChain(db, newUser, *a.ReferralCode))

	// The 3-hop cap is the absolute stop condition.
	var count int64
	require.NoError(t, db.Model(&models.Referral{}).Where("referred_user_id = ?", newUser.ID).Count(&count).Error)
	require.LessOrEqual(t, count, int64(3))
}
