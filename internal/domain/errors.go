package domain

import "errors"

var (
	ErrBoardNotFound = errors.New("booking board not found")
	ErrSlotNotFound  = errors.New("slot not found")
	ErrClaimNotFound = errors.New("claim not found")
)

var (
	ErrSlotApproved     = errors.New("slot is already approved")
	ErrSlotRequested    = errors.New("slot already has a pending request")
	ErrDuplicateClaim   = errors.New("user already requested this slot")
	ErrClaimNotPending  = errors.New("claim is not in pending status")
	ErrClaimNotApproved = errors.New("claim is not in approved status")
	ErrNoOpenSlots      = errors.New("no open slots on this board")
)

var (
	ErrUnauthorized = errors.New("staff role required")
)

var (
	ErrValidation = errors.New("validation error")
	ErrUpstream   = errors.New("truckersmp api unavailable")
)
