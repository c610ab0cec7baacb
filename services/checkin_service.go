package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/virtuixrw/backend/database"
	"github.com/virtuixrw/backend/models"
	"gorm.io/gorm"
)

const (
	CheckInReward = 300

	dailyScorePoints  = 10
	hourlyScorePoints = 1
)

// ClaimCheckIn credits the fixed check-in reward to the glass wallet. Daily
// claims are limited to one per calendar day, hourly claims to one per hour.
func ClaimCheckIn(userID uuid.UUID, kind string) (*models.Transaction, error) {
	if kind != models.CheckInDaily && kind != models.CheckInHourly {
		return nil, fmt.Errorf("unknown check-in kind %q", kind)
	}

	var entry *models.Transaction
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		var last models.CheckIn
		err := tx.Where("user_id = ? AND type = ?", userID, kind).
			Order("claimed_at DESC").
			First(&last).Error
		if err == nil {
			if kind == models.CheckInDaily && sameCalendarDay(last.ClaimedAt, now) {
				return ErrAlreadyClaimed
			}
			if kind == models.CheckInHourly && now.Sub(last.ClaimedAt) < time.Hour {
				return ErrAlreadyClaimed
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		checkIn := &models.CheckIn{
			UserID:    userID,
			Type:      kind,
			Reward:    CheckInReward,
			ClaimedAt: now,
		}
		if err := tx.Create(checkIn).Error; err != nil {
			return err
		}

		credited, err := Credit(tx, userID, models.WalletGlass, CheckInReward, TxMeta{
			Type:        models.TxCheckIn,
			Description: fmt.Sprintf("%s check-in reward", titleKind(kind)),
			ReferenceID: &checkIn.ID,
		})
		if err != nil {
			return err
		}
		entry = credited

		points := hourlyScorePoints
		if kind == models.CheckInDaily {
			points = dailyScorePoints
		}
		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("score", gorm.Expr("score + ?", points)).Error
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func titleKind(kind string) string {
	if kind == models.CheckInDaily {
		return "Daily"
	}
	return "Hourly"
}
