package ports

import (
	"context"

	"github.com/neppath/convoybot/internal/domain"
)

// ClaimNotifier delivers decision outcomes to the claimant.
type ClaimNotifier interface {
	NotifyClaimApproved(ctx context.Context, c *domain.Claim, b *domain.Board)
	NotifyClaimDenied(ctx context.Context, c *domain.Claim, b *domain.Board)
	NotifyApprovalRevoked(ctx context.Context, c *domain.Claim, b *domain.Board)
	NotifyClaimExpired(ctx context.Context, c *domain.Claim, b *domain.Board)
}

// StaffNotifier emits a decision request to the staff log channel.
type StaffNotifier interface {
	NotifyClaimSubmitted(ctx context.Context, c *domain.Claim, b *domain.Board, userName string)
}

// DecisionMirror copies staff decisions to a secondary audit sink.
type DecisionMirror interface {
	MirrorDecision(ctx context.Context, text string)
}
