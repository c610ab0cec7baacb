package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserToken is a purchased token. DaysRemaining starts at 90 and is
// decremented by the payout worker as each daily profit executes, so the
// counter and the payout schedule can never drift apart. The row is kept
// after it reaches zero as a historical record.
type UserToken struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenTierID   uuid.UUID `gorm:"type:uuid;not null" json:"token_tier_id"`
	PurchasePrice float64   `gorm:"type:numeric(14,2);not null" json:"purchase_price"`
	DailyReturn   float64   `gorm:"type:numeric(14,2);not null" json:"daily_return"`
	DaysRemaining int       `gorm:"not null;default:90" json:"days_remaining"`
	TotalEarned   float64   `gorm:"type:numeric(14,2);not null;default:0.00" json:"total_earned"`

	TokenTier TokenTier `gorm:"foreignkey:TokenTierID" json:"token_tier,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *UserToken) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
