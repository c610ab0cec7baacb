package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/virtuixrw/backend/models"
)

func TestWithdrawalRequiresDepositHistory(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, models.TierBasic, nil)
	fundWallet(t, db, user.ID, models.WalletBlack, 10000)

	_, err := RequestWithdrawal(user.ID, 1000)
	require.ErrorIs(t, err, ErrNoDepositHistory)

	w := walletOf(t, db, user.ID)
	require.EqualValues(t, 10000, w.BlackBalance)
}

func TestWithdrawalBalanceCheckedBeforeLimit(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, models.TierBasic, nil)
	require.NoError(t, db.Create(&models.Deposit{UserID: user.ID, Amount: 5000, Status: models.DepositCompleted}).Error)
	fundWallet(t, db, user.ID, models.WalletBlack, 10000)

	// Over both the balance and the basic-tier limit: insufficient funds wins.
	_, err := RequestWithdrawal(user.ID, 60000)
	require.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestWithdrawalTierLimitAndFee(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, models.TierBasic, nil)
	require.NoError(t, db.Create(&models.Deposit{UserID: user.ID, Amount: 35000, Status: models.DepositCompleted}).Error)
	fundWallet(t, db, user.ID, models.WalletBlack, 100000)

	_, err := RequestWithdrawal(user.ID, 60000)
	require.ErrorIs(t, err, ErrLimitExceeded)
	require.EqualValues(t, 100000, walletOf(t, db, user.ID).BlackBalance)

	withdrawal, err := RequestWithdrawal(user.ID, 40000)
	require.NoError(t, err)
	require.EqualValues(t, 800, withdrawal.Fee)
	require.EqualValues(t, 39200, withdrawal.NetAmount)
	require.Equal(t, models.WithdrawalPending, withdrawal.Status)

	// The full amount leaves the wallet, not the net.
	require.EqualValues(t, 60000, walletOf(t, db, user.ID).BlackBalance)
}

func TestWithdrawalMinimumFee(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, models.TierBasic, nil)
	require.NoError(t, db.Create(&models.Deposit{UserID: user.ID, Amount: 5000, Status: models.DepositCompleted}).Error)
	fundWallet(t, db, user.ID, models.WalletBlack, 10000)

	withdrawal, err := RequestWithdrawal(user.ID, 5000)
	require.NoError(t, err)
	require.EqualValues(t, 500, withdrawal.Fee)
	require.EqualValues(t, 4500, withdrawal.NetAmount)
}

func TestHigherTiersGetHigherLimits(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, models.TierVerified, nil)
	require.NoError(t, db.Create(&models.Deposit{UserID: user.ID, Amount: 35000, Status: models.DepositCompleted}).Error)
	fundWallet(t, db, user.ID, models.WalletBlack, 1100000)

	_, err := RequestWithdrawal(user.ID, 500000)
	require.NoError(t, err)

	// 600,000 still covers this, so only the tier limit can refuse it.
	_, err = RequestWithdrawal(user.ID, 500001)
	require.ErrorIs(t, err, ErrLimitExceeded)
}

func TestRejectedWithdrawalRefundsDebit(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, models.TierBasic, nil)
	admin := createTestUser(t, db, models.TierBasic, nil)
	require.NoError(t, db.Create(&models.Deposit{UserID: user.ID, Amount: 5000, Status: models.DepositCompleted}).Error)
	fundWallet(t, db, user.ID, models.WalletBlack, 50000)

	withdrawal, err := RequestWithdrawal(user.ID, 20000)
	require.NoError(t, err)
	require.EqualValues(t, 30000, walletOf(t, db, user.ID).BlackBalance)

	notes := "Payout account mismatch"
	require.NoError(t, ProcessWithdrawal(withdrawal.ID, admin.ID, false, &notes))

	require.EqualValues(t, 50000, walletOf(t, db, user.ID).BlackBalance)

	var refund models.Transaction
	require.NoError(t, db.Where("user_id = ? AND type = ?", user.ID, models.TxRefund).First(&refund).Error)
	require.EqualValues(t, 20000, refund.Amount)

	var updated models.Withdrawal
	require.NoError(t, db.First(&updated, "id = ?", withdrawal.ID).Error)
	require.Equal(t, models.WithdrawalRejected, updated.Status)
}

func TestProcessWithdrawalIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, models.TierBasic, nil)
	admin := createTestUser(t, db, models.TierBasic, nil)
	require.NoError(t, db.Create(&models.Deposit{UserID: user.ID, Amount: 5000, Status: models.DepositCompleted}).Error)
	fundWallet(t, db, user.ID, models.WalletBlack, 50000)

	withdrawal, err := RequestWithdrawal(user.ID, 20000)
	require.NoError(t, err)

	require.NoError(t, ProcessWithdrawal(withdrawal.ID, admin.ID, true, nil))
	err = ProcessWithdrawal(withdrawal.ID, admin.ID, false, nil)
	require.ErrorIs(t, err, ErrAlreadyProcessed)

	// The lost second call must not sneak a refund in.
	require.EqualValues(t, 30000, walletOf(t, db, user.ID).BlackBalance)
}
