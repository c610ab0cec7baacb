package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CheckInDaily  = "daily"
	CheckInHourly = "hourly"
)

type CheckIn struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      string    `gorm:"size:10;not null" json:"type"`
	Reward    float64   `gorm:"type:numeric(14,2);not null" json:"reward"`
	ClaimedAt time.Time `gorm:"not null" json:"claimed_at"`

	CreatedAt time.Time `json:"created_at"`
}

func (c *CheckIn) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
