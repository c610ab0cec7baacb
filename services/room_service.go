package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/virtuixrw/backend/database"
	"github.com/virtuixrw/backend/models"
	"gorm.io/gorm"
)

// CreateRoom funds a bonus room out of the creator's black wallet. Basic
// users cannot create rooms; verified creators get the larger capacity.
func CreateRoom(userID uuid.UUID, name string, entryFee, bonusPool float64) (*models.Room, error) {
	if entryFee < 0 || bonusPool <= 0 {
		return nil, ErrInvalidAmount
	}

	var room *models.Room
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}
		if user.Tier == models.TierBasic {
			return ErrTierLocked
		}

		roomType := models.TierPremium
		maxParticipants := 50
		if user.Tier == models.TierVerified {
			roomType = models.TierVerified
			maxParticipants = 100
		}

		room = &models.Room{
			Name:            name,
			CreatorID:       userID,
			Type:            roomType,
			EntryFee:        entryFee,
			BonusPool:       bonusPool,
			MaxParticipants: maxParticipants,
			Status:          models.RoomActive,
		}
		if err := tx.Create(room).Error; err != nil {
			return err
		}

		_, err := Debit(tx, userID, models.WalletBlack, bonusPool, TxMeta{
			Type:        models.TxRoomPool,
			Description: fmt.Sprintf("Created room %q with %.0f FRW bonus pool", name, bonusPool),
			ReferenceID: &room.ID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return room, nil
}

// JoinRoom debits the entry fee and takes a seat. The seat count is bumped
// with a conditional update so an over-subscribed room cannot be joined by
// two racing requests.
func JoinRoom(userID, roomID uuid.UUID) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, "id = ?", roomID).Error; err != nil {
			return err
		}

		var joined int64
		if err := tx.Model(&models.RoomMembership{}).
			Where("room_id = ? AND user_id = ?", roomID, userID).
			Count(&joined).Error; err != nil {
			return err
		}
		if joined > 0 {
			return ErrAlreadyJoined
		}

		res := tx.Model(&models.Room{}).
			Where("id = ? AND status = ? AND participants < max_participants", roomID, models.RoomActive).
			Update("participants", gorm.Expr("participants + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRoomFull
		}

		if err := tx.Create(&models.RoomMembership{RoomID: roomID, UserID: userID}).Error; err != nil {
			return err
		}

		if room.EntryFee > 0 {
			if _, err := Debit(tx, userID, models.WalletBlack, room.EntryFee, TxMeta{
				Type:        models.TxRoomEntry,
				Description: fmt.Sprintf("Joined room %q", room.Name),
				ReferenceID: &room.ID,
			}); err != nil {
				return err
			}
		}
		return nil
	})
}
