// Package render turns registry snapshots into display text. Pure
// functions only; the Discord layer decides where the text goes.
package render

import (
	"fmt"
	"strings"

	"github.com/neppath/convoybot/internal/domain"
)

// Board renders the public listing. Pending slots are shown as
// available: pending requests are only surfaced to staff.
func Board(b *domain.Board) string {
	lines := make([]string, 0, len(b.Slots))
	for i := range b.Slots {
		s := &b.Slots[i]
		if s.Status == domain.SlotStatusApproved {
			lines = append(lines, fmt.Sprintf("✅ **%s** → %s", s.Name, s.Company))
		} else {
			lines = append(lines, fmt.Sprintf("🟢 **%s** → Available", s.Name))
		}
	}
	return strings.Join(lines, "\n")
}

// Footer renders the booking progress line under the listing.
func Footer(b *domain.Board) string {
	return fmt.Sprintf("%d/%d booked | Click Book Slot to join!", b.ApprovedCount(), len(b.Slots))
}

// StaffBoard renders the staff view, which includes pending requests.
func StaffBoard(b *domain.Board) string {
	lines := make([]string, 0, len(b.Slots))
	for i := range b.Slots {
		s := &b.Slots[i]
		switch s.Status {
		case domain.SlotStatusApproved:
			lines = append(lines, fmt.Sprintf("✅ **%s** → %s (<@%s>)", s.Name, s.Company, s.ClaimantID))
		case domain.SlotStatusPending:
			lines = append(lines, fmt.Sprintf("🟠 **%s** → %s (<@%s>, awaiting decision)", s.Name, s.Company, s.ClaimantID))
		default:
			lines = append(lines, fmt.Sprintf("🟢 **%s** → Available", s.Name))
		}
	}
	return strings.Join(lines, "\n")
}
