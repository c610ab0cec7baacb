package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/virtuixrw/backend/models"
)

func TestBasicUsersCannotCreateRooms(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, models.TierBasic, nil)
	fundWallet(t, db, user.ID, models.WalletBlack, 50000)

	_, err := CreateRoom(user.ID, "Morning bonus", 1000, 20000)
	require.ErrorIs(t, err, ErrTierLocked)
	require.EqualValues(t, 50000, walletOf(t, db, user.ID).BlackBalance)
}

func TestCreateRoomFundsPoolAndSetsCapacity(t *testing.T) {
	db := setupTestDB(t)
	premium := createTestUser(t, db, models.TierPremium, nil)
	verified := createTestUser(t, db, models.TierVerified, nil)
	fundWallet(t, db, premium.ID, models.WalletBlack, 50000)
	fundWallet(t, db, verified.ID, models.WalletBlack, 50000)

	room, err := CreateRoom(premium.ID, "Premium room", 1000, 20000)
	require.NoError(t, err)
	require.Equal(t, 50, room.MaxParticipants)
	require.EqualValues(t, 30000, walletOf(t, db, premium.ID).BlackBalance)

	big, err := CreateRoom(verified.ID, "Verified room", 1000, 20000)
	require.NoError(t, err)
	require.Equal(t, 100, big.MaxParticipants)
}

func TestJoinRoomChargesEntryFeeOnce(t *testing.T) {
	db := setupTestDB(t)
	creator := createTestUser(t, db, models.TierPremium, nil)
	member := createTestUser(t, db, models.TierBasic, nil)
	fundWallet(t, db, creator.ID, models.WalletBlack, 50000)
	fundWallet(t, db, member.ID, models.WalletBlack, 5000)

	room, err := CreateRoom(creator.ID, "Evening room", 1000, 20000)
	require.NoError(t, err)

	require.NoError(t, JoinRoom(member.ID, room.ID))
	require.EqualValues(t, 4000, walletOf(t, db, member.ID).BlackBalance)

	err = JoinRoom(member.ID, room.ID)
	require.ErrorIs(t, err, ErrAlreadyJoined)
	require.EqualValues(t, 4000, walletOf(t, db, member.ID).BlackBalance)
}

func TestJoinFullRoomFails(t *testing.T) {
	db := setupTestDB(t)
	creator := createTestUser(t, db, models.TierPremium, nil)
	member := createTestUser(t, db, models.TierBasic, nil)
	fundWallet(t, db, creator.ID, models.WalletBlack, 50000)
	fundWallet(t, db, member.ID, models.WalletBlack, 5000)

	room, err := CreateRoom(creator.ID, "Tiny room", 0, 10000)
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Room{}).
		Where("id = ?", room.ID).
		Update("participants", room.MaxParticipants).Error)

	err = JoinRoom(member.ID, room.ID)
	require.ErrorIs(t, err, ErrRoomFull)
	require.EqualValues(t, 5000, walletOf(t, db, member.ID).BlackBalance)
}

func TestJoinRoomInsufficientFundsReleasesSeat(t *testing.T) {
	db := setupTestDB(t)
	creator := createTestUser(t, db, models.TierPremium, nil)
	member := createTestUser(t, db, models.TierBasic, nil)
	fundWallet(t, db, creator.ID, models.WalletBlack, 50000)

	room, err := CreateRoom(creator.ID, "Steep fee", 2000, 10000)
	require.NoError(t, err)

	err = JoinRoom(member.ID, room.ID)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	// The transaction rolled back, so the seat and membership are gone.
	var updated models.Room
	require.NoError(t, db.First(&updated, "id = ?", room.ID).Error)
	require.Equal(t, 0, updated.Participants)

	var memberships int64
	require.NoError(t, db.Model(&models.RoomMembership{}).Where("room_id = ?", room.ID).Count(&memberships).Error)
	require.EqualValues(t, 0, memberships)
}
