package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TxDeposit       = "deposit"
	TxWithdrawal    = "withdrawal"
	TxRefund        = "refund"
	TxProfit        = "profit"
	TxTokenPurchase = "token_purchase"
	TxTokenProfit   = "token_profit"
	TxCommission    = "commission"
	TxCheckIn       = "checkin"
	TxRoomEntry     = "room_entry"
	TxRoomPool      = "room_pool"
	TxTransfer      = "transfer"
)

// Transaction is an append-only ledger entry. BalanceBefore/BalanceAfter
// snapshot the wallet at the instant of the mutation, so replaying a user's
// entries in order reproduces the live balance.
type Transaction struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Type          string     `gorm:"size:30;not null" json:"type"`
	Amount        float64    `gorm:"type:numeric(14,2);not null" json:"amount"`
	Wallet        string     `gorm:"size:10;not null" json:"wallet"`
	BalanceBefore float64    `gorm:"type:numeric(14,2);not null" json:"balance_before"`
	BalanceAfter  float64    `gorm:"type:numeric(14,2);not null" json:"balance_after"`
	Description   string     `gorm:"size:255" json:"description"`
	ReferenceID   *uuid.UUID `gorm:"type:uuid" json:"reference_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
