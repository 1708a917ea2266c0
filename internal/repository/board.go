package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/neppath/convoybot/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BoardRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBoardRepo(db *dbpg.DB) *BoardRepository {
	return &BoardRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BoardRepository) Create(ctx context.Context, b *domain.Board) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	boardQuery := `INSERT INTO boards (id, guild_id, channel_id, message_id, title, created_at, updated_at)
				   VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err = tx.ExecContext(
		ctx, boardQuery, b.ID, b.GuildID, b.ChannelID,
		b.MessageID, b.Title, b.CreatedAt, b.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert board: %w", err)
	}

	slotQuery := `INSERT INTO slots (board_id, name, position, status, claimant_id, company, updated_at)
				  VALUES ($1, $2, $3, $4, '', '', $5)`
	for i := range b.Slots {
		s := &b.Slots[i]
		if _, err = tx.ExecContext(
			ctx, slotQuery, b.ID, s.Name, s.Position, s.Status, s.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert slot %q: %w", s.Name, err)
		}
	}

	return tx.Commit()
}

func (r *BoardRepository) GetByID(ctx context.Context, id string) (*domain.Board, error) {
	query := `SELECT id, guild_id, channel_id, message_id, title, created_at, updated_at
			  FROM boards
			  WHERE id = $1`
	return r.getBoard(ctx, query, id)
}

func (r *BoardRepository) GetByMessage(ctx context.Context, messageID string) (*domain.Board, error) {
	query := `SELECT id, guild_id, channel_id, message_id, title, created_at, updated_at
			  FROM boards
			  WHERE message_id = $1`
	return r.getBoard(ctx, query, messageID)
}

func (r *BoardRepository) getBoard(ctx context.Context, query string, arg any) (*domain.Board, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get board: %w", err)
	}

	var b domain.Board
	if err = row.Scan(
		&b.ID, &b.GuildID, &b.ChannelID, &b.MessageID,
		&b.Title, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBoardNotFound
		}
		return nil, fmt.Errorf("scan board: %w", err)
	}

	if b.Slots, err = r.listSlots(ctx, b.ID); err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BoardRepository) listSlots(ctx context.Context, boardID string) ([]domain.Slot, error) {
	query := `SELECT name, position, status, claimant_id, company, updated_at
			  FROM slots
			  WHERE board_id = $1
			  ORDER BY position`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, boardID)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var res []domain.Slot
	for rows.Next() {
		var s domain.Slot
		if err = rows.Scan(&s.Name, &s.Position, &s.Status, &s.ClaimantID, &s.Company, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func (r *BoardRepository) AttachMessage(ctx context.Context, id, messageID string) error {
	query := `UPDATE boards SET message_id = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, messageID)
	if err != nil {
		return fmt.Errorf("attach message: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("attach message rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBoardNotFound
	}

	return nil
}

func (r *BoardRepository) List(ctx context.Context) ([]*domain.Board, error) {
	query := `SELECT id, guild_id, channel_id, message_id, title, created_at, updated_at
			  FROM boards
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	defer rows.Close()

	var res []*domain.Board
	for rows.Next() {
		var b domain.Board
		if err = rows.Scan(
			&b.ID, &b.GuildID, &b.ChannelID, &b.MessageID,
			&b.Title, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan board: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
