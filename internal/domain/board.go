package domain

import "time"

type SlotStatus string

const (
	SlotStatusOpen     SlotStatus = "open"
	SlotStatusPending  SlotStatus = "pending"
	SlotStatusApproved SlotStatus = "approved"
)

// Slot is one bookable position on a board. ClaimantID and Company are
// empty while the slot is open.
type Slot struct {
	Name       string     `json:"name"`
	Position   int        `json:"position"`
	Status     SlotStatus `json:"status"`
	ClaimantID string     `json:"claimant_id"`
	Company    string     `json:"company"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Board is one posted booking message. Slots keep the order they were
// created with; the set never changes size after creation.
type Board struct {
	ID        string    `json:"id"`
	GuildID   string    `json:"guild_id"`
	ChannelID string    `json:"channel_id"`
	MessageID string    `json:"message_id"`
	Title     string    `json:"title"`
	Slots     []Slot    `json:"slots"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Board) Slot(name string) *Slot {
	for i := range b.Slots {
		if b.Slots[i].Name == name {
			return &b.Slots[i]
		}
	}
	return nil
}

func (b *Board) ApprovedCount() int {
	n := 0
	for i := range b.Slots {
		if b.Slots[i].Status == SlotStatusApproved {
			n++
		}
	}
	return n
}

func (b *Board) HasOpenSlots() bool {
	for i := range b.Slots {
		if b.Slots[i].Status == SlotStatusOpen {
			return true
		}
	}
	return false
}

type CreateBoardInput struct {
	GuildID   string
	ChannelID string
	Title     string
	SlotNames []string
}
