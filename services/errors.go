package services

import "errors"

// Expected, user-facing outcomes. Handlers map these to HTTP statuses;
// none of them should ever surface as a 500.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoDepositHistory  = errors.New("at least one completed deposit is required")
	ErrLimitExceeded     = errors.New("daily withdrawal limit exceeded")
	ErrTierLocked        = errors.New("account tier too low for this action")
	ErrAlreadyProcessed  = errors.New("request already processed")
	ErrAlreadyClaimed    = errors.New("reward already claimed")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrRoomFull          = errors.New("room is full")
	ErrAlreadyJoined     = errors.New("already joined this room")
)
