package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenTier is a catalog entry for a purchasable 90-day yield token.
// DailyReturn is fixed at 12% of the price.
type TokenTier struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Colors       string    `gorm:"size:20;not null" json:"colors"`
	Price        float64   `gorm:"type:numeric(14,2);not null" json:"price"`
	DailyReturn  float64   `gorm:"type:numeric(14,2);not null" json:"daily_return"`
	RequiredTier string    `gorm:"size:20;not null;default:'basic'" json:"required_tier"`

	CreatedAt time.Time `json:"created_at"`
}

func (t *TokenTier) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
