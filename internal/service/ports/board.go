package ports

import (
	"context"

	"github.com/neppath/convoybot/internal/domain"
)

type BoardRepo interface {
	Create(ctx context.Context, b *domain.Board) error
	GetByID(ctx context.Context, id string) (*domain.Board, error)
	GetByMessage(ctx context.Context, messageID string) (*domain.Board, error)
	AttachMessage(ctx context.Context, id, messageID string) error
	List(ctx context.Context) ([]*domain.Board, error)
}
