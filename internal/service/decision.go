package service

import (
	"context"
	"fmt"

	"github.com/neppath/convoybot/internal/domain"
	"github.com/neppath/convoybot/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// DecisionService acts on pending or approved claims on behalf of
// staff. Role membership is checked at the platform boundary; this
// layer enforces the state machine only.
type DecisionService struct {
	claimRepo ports.ClaimRepo
	boardRepo ports.BoardRepo
	notifier  ports.ClaimNotifier
	mirror    ports.DecisionMirror
	logger    logger.Logger
}

func NewDecisionService(
	claimRepo ports.ClaimRepo,
	boardRepo ports.BoardRepo,
	notifier ports.ClaimNotifier,
	mirror ports.DecisionMirror,
	logger logger.Logger,
) *DecisionService {
	return &DecisionService{
		claimRepo: claimRepo,
		boardRepo: boardRepo,
		notifier:  notifier,
		mirror:    mirror,
		logger:    logger,
	}
}

func (s *DecisionService) Approve(ctx context.Context, claimID string, actor domain.Actor) (*domain.Claim, *domain.Board, error) {
	claim, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, nil, fmt.Errorf("get claim: %w", err)
	}
	if claim.Status != domain.ClaimStatusPending {
		return nil, nil, domain.ErrClaimNotPending
	}

	if err = s.claimRepo.Approve(ctx, claimID); err != nil {
		return nil, nil, fmt.Errorf("approve claim: %w", err)
	}
	claim.Status = domain.ClaimStatusApproved

	board, err := s.reloadBoard(ctx, claim.BoardID)
	if err != nil {
		return nil, nil, err
	}

	s.logDecision("claim approved", claim, actor)
	go s.notifier.NotifyClaimApproved(context.WithoutCancel(ctx), claim, board)
	go s.mirror.MirrorDecision(context.WithoutCancel(ctx),
		fmt.Sprintf("%s: %s approved %s (%s) for user %s", board.Title, actor.Name, claim.SlotName, claim.Company, claim.UserID))

	return claim, board, nil
}

func (s *DecisionService) Deny(ctx context.Context, claimID string, actor domain.Actor) (*domain.Claim, *domain.Board, error) {
	claim, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, nil, fmt.Errorf("get claim: %w", err)
	}
	if claim.Status != domain.ClaimStatusPending {
		return nil, nil, domain.ErrClaimNotPending
	}

	if err = s.claimRepo.Deny(ctx, claimID); err != nil {
		return nil, nil, fmt.Errorf("deny claim: %w", err)
	}
	claim.Status = domain.ClaimStatusDenied

	board, err := s.reloadBoard(ctx, claim.BoardID)
	if err != nil {
		return nil, nil, err
	}

	s.logDecision("claim denied", claim, actor)
	go s.notifier.NotifyClaimDenied(context.WithoutCancel(ctx), claim, board)
	go s.mirror.MirrorDecision(context.WithoutCancel(ctx),
		fmt.Sprintf("%s: %s denied %s (%s) for user %s", board.Title, actor.Name, claim.SlotName, claim.Company, claim.UserID))

	return claim, board, nil
}

func (s *DecisionService) RemoveApproval(ctx context.Context, claimID string, actor domain.Actor) (*domain.Claim, *domain.Board, error) {
	claim, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, nil, fmt.Errorf("get claim: %w", err)
	}
	if claim.Status != domain.ClaimStatusApproved {
		return nil, nil, domain.ErrClaimNotApproved
	}

	if err = s.claimRepo.RemoveApproval(ctx, claimID); err != nil {
		return nil, nil, fmt.Errorf("remove approval: %w", err)
	}
	claim.Status = domain.ClaimStatusRevoked

	board, err := s.reloadBoard(ctx, claim.BoardID)
	if err != nil {
		return nil, nil, err
	}

	s.logDecision("approval removed", claim, actor)
	go s.notifier.NotifyApprovalRevoked(context.WithoutCancel(ctx), claim, board)
	go s.mirror.MirrorDecision(context.WithoutCancel(ctx),
		fmt.Sprintf("%s: %s removed approval of %s (%s) for user %s", board.Title, actor.Name, claim.SlotName, claim.Company, claim.UserID))

	return claim, board, nil
}

func (s *DecisionService) reloadBoard(ctx context.Context, boardID string) (*domain.Board, error) {
	board, err := s.boardRepo.GetByID(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("get board: %w", err)
	}
	return board, nil
}

func (s *DecisionService) logDecision(msg string, claim *domain.Claim, actor domain.Actor) {
	s.logger.Info(msg,
		logger.String("claim_id", claim.ID),
		logger.String("board_id", claim.BoardID),
		logger.String("slot", claim.SlotName),
		logger.String("user_id", claim.UserID),
		logger.String("staff_id", actor.ID),
	)
}
