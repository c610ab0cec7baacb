package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PayoutDepositBonus = "deposit_bonus"
	PayoutTokenDaily   = "token_daily"
)

// ScheduledPayout is a durable, time-delayed credit instruction. The worker
// claims a row by flipping Executed inside the same transaction as the
// credit, which makes execution at-most-once even across concurrent sweeps.
type ScheduledPayout struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount      float64    `gorm:"type:numeric(14,2);not null" json:"amount"`
	Kind        string     `gorm:"size:20;not null" json:"kind"`
	ScheduledAt time.Time  `gorm:"not null;index" json:"scheduled_at"`
	Executed    bool       `gorm:"not null;default:false;index" json:"executed"`
	ExecutedAt  *time.Time `json:"executed_at"`

	DepositID   *uuid.UUID `gorm:"type:uuid" json:"deposit_id,omitempty"`
	UserTokenID *uuid.UUID `gorm:"type:uuid" json:"user_token_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *ScheduledPayout) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
