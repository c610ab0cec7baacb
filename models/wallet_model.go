package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	WalletGlass = "glass"
	WalletBlack = "black"
)

// Wallet holds the per-user balance pair. Glass accumulates profits,
// commissions and bonuses; black holds deposits and withdrawable funds.
// Balances are mutated only through services.Credit and services.Debit.
type Wallet struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;unique" json:"user_id"`
	GlassBalance float64   `gorm:"type:numeric(14,2);not null;default:0.00" json:"glass_balance"`
	BlackBalance float64   `gorm:"type:numeric(14,2);not null;default:0.00" json:"black_balance"`

	User User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

func (w *Wallet) Balance(wallet string) float64 {
	if wallet == WalletGlass {
		return w.GlassBalance
	}
	return w.BlackBalance
}
