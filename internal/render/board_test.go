package render

import (
	"strings"
	"testing"

	"github.com/neppath/convoybot/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBoard_MixedStatuses(t *testing.T) {
	b := &domain.Board{
		Title: "Friday Convoy",
		Slots: []domain.Slot{
			{Name: "Slot 1", Position: 0, Status: domain.SlotStatusApproved, ClaimantID: "u1", Company: "FastFreight"},
			{Name: "Slot 2", Position: 1, Status: domain.SlotStatusOpen},
			{Name: "Slot 3", Position: 2, Status: domain.SlotStatusPending, ClaimantID: "u2", Company: "Rival VTC"},
		},
	}

	got := Board(b)

	want := "✅ **Slot 1** → FastFreight\n" +
		"🟢 **Slot 2** → Available\n" +
		"🟢 **Slot 3** → Available"
	assert.Equal(t, want, got)
}

func TestBoard_PendingHiddenFromPublicView(t *testing.T) {
	b := &domain.Board{
		Slots: []domain.Slot{
			{Name: "Slot 1", Status: domain.SlotStatusPending, ClaimantID: "u1", Company: "Secret VTC"},
		},
	}

	got := Board(b)

	assert.NotContains(t, got, "Secret VTC")
	assert.Contains(t, got, "Available")
}

func TestFooter_CountsOnlyApproved(t *testing.T) {
	b := &domain.Board{
		Slots: []domain.Slot{
			{Name: "Slot 1", Status: domain.SlotStatusApproved},
			{Name: "Slot 2", Status: domain.SlotStatusPending},
			{Name: "Slot 3", Status: domain.SlotStatusOpen},
		},
	}

	assert.Equal(t, "1/3 booked | Click Book Slot to join!", Footer(b))
}

func TestStaffBoard_ShowsPending(t *testing.T) {
	b := &domain.Board{
		Slots: []domain.Slot{
			{Name: "Slot 1", Status: domain.SlotStatusApproved, ClaimantID: "u1", Company: "FastFreight"},
			{Name: "Slot 2", Status: domain.SlotStatusPending, ClaimantID: "u2", Company: "Rival VTC"},
			{Name: "Slot 3", Status: domain.SlotStatusOpen},
		},
	}

	got := StaffBoard(b)

	assert.Contains(t, got, "🟠 **Slot 2** → Rival VTC (<@u2>, awaiting decision)")
	assert.Contains(t, got, "✅ **Slot 1** → FastFreight (<@u1>)")
	assert.Contains(t, got, "🟢 **Slot 3** → Available")
}

func TestBoard_SlotOrderFollowsPosition(t *testing.T) {
	b := &domain.Board{
		Slots: []domain.Slot{
			{Name: "Slot 1", Position: 0, Status: domain.SlotStatusOpen},
			{Name: "Slot 2", Position: 1, Status: domain.SlotStatusOpen},
			{Name: "Slot 10", Position: 2, Status: domain.SlotStatusOpen},
		},
	}

	got := Board(b)

	assert.Less(t, strings.Index(got, "Slot 2"), strings.Index(got, "Slot 10"))
}
