package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/neppath/convoybot/internal/domain"
	"github.com/neppath/convoybot/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ClaimService struct {
	claimRepo ports.ClaimRepo
	boardRepo ports.BoardRepo
	staff     ports.StaffNotifier
	notifier  ports.ClaimNotifier
	claimTTL  time.Duration
	logger    logger.Logger
}

func NewClaimService(
	claimRepo ports.ClaimRepo,
	boardRepo ports.BoardRepo,
	staff ports.StaffNotifier,
	notifier ports.ClaimNotifier,
	claimTTL time.Duration,
	logger logger.Logger,
) *ClaimService {
	return &ClaimService{
		claimRepo: claimRepo,
		boardRepo: boardRepo,
		staff:     staff,
		notifier:  notifier,
		claimTTL:  claimTTL,
		logger:    logger,
	}
}

// Submit validates a user's claim against the board and records it as
// pending. On success a decision request goes out to the staff channel.
func (s *ClaimService) Submit(ctx context.Context, input domain.SubmitClaimInput) (*domain.Claim, error) {
	if input.Company == "" {
		return nil, fmt.Errorf("%w: company name is required", domain.ErrValidation)
	}
	if input.SlotName == "" {
		return nil, fmt.Errorf("%w: slot name is required", domain.ErrValidation)
	}

	board, err := s.boardRepo.GetByMessage(ctx, input.MessageID)
	if err != nil {
		return nil, fmt.Errorf("get board: %w", err)
	}

	if board.Slot(input.SlotName) == nil {
		return nil, domain.ErrSlotNotFound
	}

	now := time.Now().UTC()
	claim := &domain.Claim{
		ID:        uuid.New().String(),
		BoardID:   board.ID,
		SlotName:  input.SlotName,
		UserID:    input.UserID,
		Company:   input.Company,
		Status:    domain.ClaimStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.claimRepo.Submit(ctx, claim); err != nil {
		return nil, fmt.Errorf("submit claim: %w", err)
	}

	s.logger.Info("claim submitted",
		logger.String("claim_id", claim.ID),
		logger.String("board_id", board.ID),
		logger.String("slot", claim.SlotName),
		logger.String("user_id", claim.UserID),
	)

	go s.staff.NotifyClaimSubmitted(context.WithoutCancel(ctx), claim, board, input.UserName)

	return claim, nil
}

// ExpireStale auto-denies pending claims older than the configured TTL
// and notifies the claimants. Called by the scheduler.
func (s *ClaimService) ExpireStale(ctx context.Context) ([]*domain.Claim, error) {
	expired, err := s.claimRepo.ExpireStale(ctx, s.claimTTL)
	if err != nil {
		return nil, fmt.Errorf("expire stale: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("stale claims expired",
			logger.Int("count", len(expired)),
		)

		go s.notifyExpired(context.WithoutCancel(ctx), expired)
	}

	return expired, nil
}

func (s *ClaimService) notifyExpired(ctx context.Context, claims []*domain.Claim) {
	for _, c := range claims {
		board, err := s.boardRepo.GetByID(ctx, c.BoardID)
		if err != nil {
			s.logger.Error("failed to get board for expiry notification",
				logger.String("board_id", c.BoardID),
				logger.String("error", err.Error()),
			)
			continue
		}

		s.notifier.NotifyClaimExpired(ctx, c, board)
	}
}
