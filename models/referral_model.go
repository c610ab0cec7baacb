package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Referral links a referred user to one referrer in their upline. A new user
// gets at most three rows, level 1 (direct) through level 3. Commission
// accumulates on every payable sale the referred user makes.
type Referral struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ReferrerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"referrer_id"`
	ReferredUserID uuid.UUID `gorm:"type:uuid;not null;index" json:"referred_user_id"`
	Level          int       `gorm:"not null" json:"level"`
	Commission     float64   `gorm:"type:numeric(14,2);not null;default:0.00" json:"commission"`

	Referrer     User `gorm:"foreignkey:ReferrerID" json:"-"`
	ReferredUser User `gorm:"foreignkey:ReferredUserID" json:"referred_user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Referral) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
