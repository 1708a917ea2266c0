package dto

import (
	"time"

	"github.com/neppath/convoybot/internal/domain"
)

type BoardResponse struct {
	ID        string         `json:"id"`
	GuildID   string         `json:"guild_id"`
	ChannelID string         `json:"channel_id"`
	MessageID string         `json:"message_id,omitempty"`
	Title     string         `json:"title"`
	Slots     []SlotResponse `json:"slots"`
	Approved  int            `json:"approved"`
	CreatedAt string         `json:"created_at"`
}

type SlotResponse struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	ClaimantID string `json:"claimant_id,omitempty"`
	Company    string `json:"company,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBoardResponse(b *domain.Board) BoardResponse {
	slots := make([]SlotResponse, 0, len(b.Slots))
	for i := range b.Slots {
		s := &b.Slots[i]
		slots = append(slots, SlotResponse{
			Name:       s.Name,
			Status:     string(s.Status),
			ClaimantID: s.ClaimantID,
			Company:    s.Company,
		})
	}

	return BoardResponse{
		ID:        b.ID,
		GuildID:   b.GuildID,
		ChannelID: b.ChannelID,
		MessageID: b.MessageID,
		Title:     b.Title,
		Slots:     slots,
		Approved:  b.ApprovedCount(),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}
