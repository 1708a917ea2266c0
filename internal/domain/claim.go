package domain

import "time"

type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "pending"
	ClaimStatusApproved ClaimStatus = "approved"
	ClaimStatusDenied   ClaimStatus = "denied"
	ClaimStatusRevoked  ClaimStatus = "revoked"
	ClaimStatusExpired  ClaimStatus = "expired"
)

// Claim is one user's request for one slot. At most one pending claim
// may exist per (board, slot); the unique index enforces it per user too.
type Claim struct {
	ID        string      `json:"id"`
	BoardID   string      `json:"board_id"`
	SlotName  string      `json:"slot_name"`
	UserID    string      `json:"user_id"`
	Company   string      `json:"company"`
	Status    ClaimStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type SubmitClaimInput struct {
	MessageID string
	SlotName  string
	Company   string
	UserID    string
	UserName  string
}

// Actor identifies the staff member behind a decision, for audit lines
// and embed footers.
type Actor struct {
	ID   string
	Name string
}
