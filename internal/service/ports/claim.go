package ports

import (
	"context"
	"time"

	"github.com/neppath/convoybot/internal/domain"
)

type ClaimRepo interface {
	Submit(ctx context.Context, c *domain.Claim) error
	GetByID(ctx context.Context, id string) (*domain.Claim, error)
	Approve(ctx context.Context, claimID string) error
	Deny(ctx context.Context, claimID string) error
	RemoveApproval(ctx context.Context, claimID string) error
	ExpireStale(ctx context.Context, ttl time.Duration) ([]*domain.Claim, error)
}
