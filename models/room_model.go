package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoomActive = "active"
	RoomClosed = "closed"
)

// Room is a bonus pool funded by its creator. Joining debits the entry fee
// from the participant's black wallet.
type Room struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	CreatorID       uuid.UUID `gorm:"type:uuid;not null" json:"creator_id"`
	Type            string    `gorm:"size:20;not null" json:"type"`
	EntryFee        float64   `gorm:"type:numeric(14,2);not null" json:"entry_fee"`
	BonusPool       float64   `gorm:"type:numeric(14,2);not null" json:"bonus_pool"`
	Participants    int       `gorm:"not null;default:0" json:"participants"`
	MaxParticipants int       `gorm:"not null" json:"max_participants"`
	Status          string    `gorm:"size:20;not null;default:'active'" json:"status"`

	Creator User `gorm:"foreignkey:CreatorID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type RoomMembership struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RoomID uuid.UUID `gorm:"type:uuid;not null;index" json:"room_id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
}

func (m *RoomMembership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
