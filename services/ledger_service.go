package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/virtuixrw/backend/database"
	"github.com/virtuixrw/backend/models"
	"gorm.io/gorm"
)

// TransferFeeRate is charged on glass-to-black transfers. The fee is
// retained by the platform, not credited to any wallet.
const TransferFeeRate = 0.01

// TxMeta describes the ledger entry written alongside a balance mutation.
type TxMeta struct {
	Type        string
	Description string
	ReferenceID *uuid.UUID
}

// Credit increases a wallet balance and appends the matching transaction.
// It must run inside a gorm transaction so the balance change and the ledger
// entry commit as one unit.
func Credit(tx *gorm.DB, userID uuid.UUID, wallet string, amount float64, meta TxMeta) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	column, err := balanceColumn(wallet)
	if err != nil {
		return nil, err
	}

	res := tx.Model(&models.Wallet{}).
		Where("user_id = ?", userID).
		Update(column, gorm.Expr(column+" + ?", amount))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrWalletNotFound
	}

	after, err := walletBalance(tx, userID, wallet)
	if err != nil {
		return nil, err
	}

	return appendEntry(tx, userID, wallet, amount, after-amount, after, meta)
}

// Debit decreases a wallet balance, failing with ErrInsufficientFunds when
// the balance does not cover the amount. The balance check and the update
// are a single conditional UPDATE, so concurrent debits cannot drive the
// balance negative.
func Debit(tx *gorm.DB, userID uuid.UUID, wallet string, amount float64, meta TxMeta) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	column, err := balanceColumn(wallet)
	if err != nil {
		return nil, err
	}

	res := tx.Model(&models.Wallet{}).
		Where("user_id = ? AND "+column+" >= ?", userID, amount).
		Update(column, gorm.Expr(column+" - ?", amount))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.Wallet{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrWalletNotFound
		}
		return nil, ErrInsufficientFunds
	}

	after, err := walletBalance(tx, userID, wallet)
	if err != nil {
		return nil, err
	}

	return appendEntry(tx, userID, wallet, -amount, after+amount, after, meta)
}

// TransferGlassToBlack moves earnings into the spendable wallet. The full
// amount leaves glass; the 1% fee is burned and only the remainder lands in
// black.
func TransferGlassToBlack(userID uuid.UUID, amount float64) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var entry *models.Transaction
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		fee := amount * TransferFeeRate
		net := amount - fee

		if _, err := Debit(tx, userID, models.WalletGlass, amount, TxMeta{
			Type:        models.TxTransfer,
			Description: fmt.Sprintf("Transfer to Black Wallet (1%% fee: %.0f FRW)", fee),
		}); err != nil {
			return err
		}

		credited, err := Credit(tx, userID, models.WalletBlack, net, TxMeta{
			Type:        models.TxTransfer,
			Description: fmt.Sprintf("Transfer from Glass Wallet (1%% fee: %.0f FRW)", fee),
		})
		if err != nil {
			return err
		}
		entry = credited
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// TransactionHistory returns a user's most recent ledger entries, newest
// first. The limit is a UI retention policy, capped at 100; the full trail
// stays in the table.
func TransactionHistory(userID uuid.UUID, limit int) ([]models.Transaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	var history []models.Transaction
	err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&history).Error
	return history, err
}

func balanceColumn(wallet string) (string, error) {
	switch wallet {
	case models.WalletGlass:
		return "glass_balance", nil
	case models.WalletBlack:
		return "black_balance", nil
	default:
		return "", fmt.Errorf("unknown wallet %q", wallet)
	}
}

func walletBalance(tx *gorm.DB, userID uuid.UUID, wallet string) (float64, error) {
	var w models.Wallet
	if err := tx.Where("user_id = ?", userID).First(&w).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrWalletNotFound
		}
		return 0, err
	}
	return w.Balance(wallet), nil
}

func appendEntry(tx *gorm.DB, userID uuid.UUID, wallet string, amount, before, after float64, meta TxMeta) (*models.Transaction, error) {
	entry := &models.Transaction{
		UserID:        userID,
		Type:          meta.Type,
		Amount:        amount,
		Wallet:        wallet,
		BalanceBefore: before,
		BalanceAfter:  after,
		Description:   meta.Description,
		ReferenceID:   meta.ReferenceID,
	}
	if err := tx.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}
