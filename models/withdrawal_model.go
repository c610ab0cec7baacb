package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	WithdrawalPending  = "pending"
	WithdrawalApproved = "approved"
	WithdrawalRejected = "rejected"
)

// Withdrawal debits the full requested amount up front; the fee is frozen at
// submission time and retained by the platform. A rejected withdrawal
// refunds the debited amount.
type Withdrawal struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount    float64   `gorm:"type:numeric(14,2);not null" json:"amount"`
	Fee       float64   `gorm:"type:numeric(14,2);not null" json:"fee"`
	NetAmount float64   `gorm:"type:numeric(14,2);not null" json:"net_amount"`
	Status    string    `gorm:"size:20;not null;default:'pending'" json:"status"`

	AdminNotes  *string    `gorm:"size:255" json:"admin_notes"`
	ProcessedAt *time.Time `json:"processed_at"`
	ProcessedBy *uuid.UUID `gorm:"type:uuid" json:"processed_by"`

	User User `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *Withdrawal) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
