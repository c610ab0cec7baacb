package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PendingDepositPending   = "pending"
	PendingDepositConfirmed = "confirmed"
	PendingDepositRejected  = "rejected"
)

// PendingDeposit is a user's claim of having sent mobile money, awaiting
// manual admin verification. No funds move until an admin confirms it.
type PendingDeposit struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID       string    `gorm:"size:30;not null;unique" json:"order_id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount        float64   `gorm:"type:numeric(14,2);not null" json:"amount"`
	Phone         string    `gorm:"size:20;not null" json:"phone"`
	TransactionID string    `gorm:"size:100;not null" json:"transaction_id"`
	Status        string    `gorm:"size:20;not null;default:'pending'" json:"status"`

	ConfirmedAt  *time.Time `json:"confirmed_at"`
	ConfirmedBy  *uuid.UUID `gorm:"type:uuid" json:"confirmed_by"`
	RejectReason *string    `gorm:"size:255" json:"reject_reason"`

	User User `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *PendingDeposit) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
