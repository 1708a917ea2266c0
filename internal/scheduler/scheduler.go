package scheduler

import (
	"context"
	"time"

	"github.com/neppath/convoybot/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type claimExpirer interface {
	ExpireStale(ctx context.Context) ([]*domain.Claim, error)
}

type Scheduler struct {
	claimService claimExpirer
	interval     time.Duration
	logger       logger.Logger
}

func New(
	claimService claimExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		claimService: claimService,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.claimService.ExpireStale(ctx)
	if err != nil {
		s.logger.Error("failed to expire stale claims",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, c := range expired {
		s.logger.Info("claim expired",
			logger.String("claim_id", c.ID),
			logger.String("user_id", c.UserID),
			logger.String("slot_name", c.SlotName),
		)
	}
}
