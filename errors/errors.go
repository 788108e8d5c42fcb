package errors

import "fmt"

var (
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrInvalidPayload = fmt.Errorf("invalid event payload")

	// Live feed / rooms
	ErrMissingAccount  = fmt.Errorf("missing target account")
	ErrInvalidDuration = fmt.Errorf("auction duration must be positive")
	ErrInvalidValue    = fmt.Errorf("gift value must be positive")
	ErrAuctionEnded    = fmt.Errorf("auction-ended")
	ErrRoomNotFound    = fmt.Errorf("room not found")

	// Entitlements
	ErrGrantNotFound     = fmt.Errorf("grant not found")
	ErrGrantRevoked      = fmt.Errorf("grant revoked")
	ErrGrantDisabled     = fmt.Errorf("grant disabled")
	ErrGrantExpired      = fmt.Errorf("grant expired")
	ErrGrantStillExpired = fmt.Errorf("grant still expired, extend it first")

	// Privileged operations
	ErrUnauthorized    = fmt.Errorf("unauthorized")
	ErrTokenGeneration = fmt.Errorf("token generation failed")
)
