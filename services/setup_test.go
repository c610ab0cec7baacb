package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/virtuixrw/backend/database"
	"github.com/virtuixrw/backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB swaps the package-level DB for an in-memory sqlite instance.
// A single connection keeps gorm transactions on one database handle.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Wallet{},
		&models.Transaction{},
		&models.PendingDeposit{},
		&models.Deposit{},
		&models.TokenTier{},
		&models.UserToken{},
		&models.ScheduledPayout{},
		&models.Referral{},
		&models.Withdrawal{},
		&models.CheckIn{},
		&models.Room{},
		&models.RoomMembership{},
	))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		_ = sqlDB.Close()
	})

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, tier string, referredByCode *string) *models.User {
	t.Helper()

	code := "REF" + uuid.NewString()[:5]
	user := &models.User{
		FullName:       "Test User " + code,
		Email:          code + "@example.com",
		Phone:          "+250700000000",
		Password:       "x",
		Tier:           tier,
		ReferralCode:   &code,
		ReferredByCode: referredByCode,
	}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(&models.Wallet{UserID: user.ID}).Error)
	return user
}

func fundWallet(t *testing.T, db *gorm.DB, userID uuid.UUID, wallet string, amount float64) {
	t.Helper()

	column := "black_balance"
	if wallet == models.WalletGlass {
		column = "glass_balance"
	}
	res := db.Model(&models.Wallet{}).
		Where("user_id = ?", userID).
		Update(column, gorm.Expr(column+" + ?", amount))
	require.NoError(t, res.Error)
	require.EqualValues(t, 1, res.RowsAffected)
}

func walletOf(t *testing.T, db *gorm.DB, userID uuid.UUID) models.Wallet {
	t.Helper()

	var w models.Wallet
	require.NoError(t, db.Where("user_id = ?", userID).First(&w).Error)
	return w
}

func createTestTier(t *testing.T, db *gorm.DB, price float64, requiredTier string) *models.TokenTier {
	t.Helper()

	tier := &models.TokenTier{
		Name:         "Test Token",
		Colors:       "B_W",
		Price:        price,
		DailyReturn:  price * TokenDailyProfitRate,
		RequiredTier: requiredTier,
	}
	require.NoError(t, db.Create(tier).Error)
	return tier
}
