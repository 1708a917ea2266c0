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

const maxSlotsPerBoard = 100

type BoardService struct {
	repo   ports.BoardRepo
	logger logger.Logger
}

func NewBoardService(repo ports.BoardRepo, logger logger.Logger) *BoardService {
	return &BoardService{
		repo:   repo,
		logger: logger,
	}
}

func (s *BoardService) Create(ctx context.Context, input domain.CreateBoardInput) (*domain.Board, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if len(input.SlotNames) == 0 {
		return nil, fmt.Errorf("%w: at least one slot is required", domain.ErrValidation)
	}
	if len(input.SlotNames) > maxSlotsPerBoard {
		return nil, fmt.Errorf("%w: at most %d slots per board", domain.ErrValidation, maxSlotsPerBoard)
	}

	seen := make(map[string]struct{}, len(input.SlotNames))
	for _, name := range input.SlotNames {
		if name == "" {
			return nil, fmt.Errorf("%w: empty slot name", domain.ErrValidation)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: duplicate slot name %q", domain.ErrValidation, name)
		}
		seen[name] = struct{}{}
	}

	now := time.Now().UTC()
	board := &domain.Board{
		ID:        uuid.New().String(),
		GuildID:   input.GuildID,
		ChannelID: input.ChannelID,
		Title:     input.Title,
		Slots:     make([]domain.Slot, len(input.SlotNames)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i, name := range input.SlotNames {
		board.Slots[i] = domain.Slot{
			Name:      name,
			Position:  i,
			Status:    domain.SlotStatusOpen,
			UpdatedAt: now,
		}
	}

	if err := s.repo.Create(ctx, board); err != nil {
		return nil, fmt.Errorf("create board: %w", err)
	}

	s.logger.Info("board created",
		logger.String("board_id", board.ID),
		logger.String("guild_id", board.GuildID),
		logger.Int("slots", len(board.Slots)),
	)

	return board, nil
}

// AttachMessage binds the posted Discord message to the board so button
// presses on that message can find it again.
func (s *BoardService) AttachMessage(ctx context.Context, boardID, messageID string) error {
	if messageID == "" {
		return fmt.Errorf("%w: message id is required", domain.ErrValidation)
	}
	if err := s.repo.AttachMessage(ctx, boardID, messageID); err != nil {
		return fmt.Errorf("attach message: %w", err)
	}
	return nil
}

func (s *BoardService) Get(ctx context.Context, id string) (*domain.Board, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BoardService) GetByMessage(ctx context.Context, messageID string) (*domain.Board, error) {
	return s.repo.GetByMessage(ctx, messageID)
}

func (s *BoardService) List(ctx context.Context) ([]*domain.Board, error) {
	return s.repo.List(ctx)
}
