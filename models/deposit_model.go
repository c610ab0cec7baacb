package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DepositCompleted  = "completed"
	DepositProfitPaid = "profit_paid"
)

// Deposit is a confirmed, credited deposit. It is created only when an admin
// confirms the matching PendingDeposit, and advances to profit_paid when the
// scheduled 10% bonus fires.
type Deposit struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount       float64    `gorm:"type:numeric(14,2);not null" json:"amount"`
	Status       string     `gorm:"size:20;not null;default:'completed'" json:"status"`
	ProfitPaidAt *time.Time `json:"profit_paid_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Deposit) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
