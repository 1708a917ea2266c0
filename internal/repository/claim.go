package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/neppath/convoybot/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ClaimRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewClaimRepo(db *dbpg.DB) *ClaimRepository {
	return &ClaimRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Submit records a pending claim and moves the slot to pending in one
// transaction. The slot row is locked first so two concurrent claims
// for the same slot cannot both pass the status check.
func (r *ClaimRepository) Submit(ctx context.Context, c *domain.Claim) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	slotQuery := `SELECT status, claimant_id FROM slots
				  WHERE board_id = $1 AND name = $2
				  FOR UPDATE`
	var status domain.SlotStatus
	var claimantID string
	if err = tx.QueryRowContext(ctx, slotQuery, c.BoardID, c.SlotName).Scan(&status, &claimantID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSlotNotFound
		}
		return fmt.Errorf("get slot: %w", err)
	}

	switch status {
	case domain.SlotStatusApproved:
		return domain.ErrSlotApproved
	case domain.SlotStatusPending:
		if claimantID == c.UserID {
			return domain.ErrDuplicateClaim
		}
		return domain.ErrSlotRequested
	}

	updateQuery := `UPDATE slots
					SET status = $3, claimant_id = $4, company = $5, updated_at = now()
					WHERE board_id = $1 AND name = $2`
	if _, err = tx.ExecContext(
		ctx, updateQuery, c.BoardID, c.SlotName,
		domain.SlotStatusPending, c.UserID, c.Company,
	); err != nil {
		return fmt.Errorf("update slot: %w", err)
	}

	insertQuery := `INSERT INTO claims (id, board_id, slot_name, user_id, company, status, created_at, updated_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.ExecContext(
		ctx, insertQuery, c.ID, c.BoardID, c.SlotName,
		c.UserID, c.Company, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateClaim
		}
		return fmt.Errorf("insert claim: %w", err)
	}

	return tx.Commit()
}

func (r *ClaimRepository) GetByID(ctx context.Context, id string) (*domain.Claim, error) {
	query := `SELECT id, board_id, slot_name, user_id, company, status, created_at, updated_at
			  FROM claims
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get claim: %w", err)
	}

	var c domain.Claim
	if err = row.Scan(
		&c.ID, &c.BoardID, &c.SlotName, &c.UserID,
		&c.Company, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, fmt.Errorf("scan claim: %w", err)
	}

	return &c, nil
}

// Approve transitions a pending claim to approved and its slot with it.
func (r *ClaimRepository) Approve(ctx context.Context, claimID string) error {
	return r.decide(ctx, claimID,
		domain.ClaimStatusPending, domain.ClaimStatusApproved,
		domain.SlotStatusPending, domain.SlotStatusApproved,
		false,
	)
}

// Deny transitions a pending claim to denied and reopens its slot.
func (r *ClaimRepository) Deny(ctx context.Context, claimID string) error {
	return r.decide(ctx, claimID,
		domain.ClaimStatusPending, domain.ClaimStatusDenied,
		domain.SlotStatusPending, domain.SlotStatusOpen,
		true,
	)
}

// RemoveApproval transitions an approved claim to revoked and reopens
// its slot.
func (r *ClaimRepository) RemoveApproval(ctx context.Context, claimID string) error {
	return r.decide(ctx, claimID,
		domain.ClaimStatusApproved, domain.ClaimStatusRevoked,
		domain.SlotStatusApproved, domain.SlotStatusOpen,
		true,
	)
}

func (r *ClaimRepository) decide(
	ctx context.Context,
	claimID string,
	fromClaim, toClaim domain.ClaimStatus,
	fromSlot, toSlot domain.SlotStatus,
	clearSlot bool,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	claimQuery := `SELECT board_id, slot_name, user_id, status FROM claims
				   WHERE id = $1
				   FOR UPDATE`
	var c domain.Claim
	if err = tx.QueryRowContext(ctx, claimQuery, claimID).Scan(&c.BoardID, &c.SlotName, &c.UserID, &c.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrClaimNotFound
		}
		return fmt.Errorf("get claim: %w", err)
	}

	if c.Status != fromClaim {
		if fromClaim == domain.ClaimStatusApproved {
			return domain.ErrClaimNotApproved
		}
		return domain.ErrClaimNotPending
	}

	updateClaim := `UPDATE claims SET status = $2, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, updateClaim, claimID, toClaim); err != nil {
		return fmt.Errorf("update claim: %w", err)
	}

	updateSlot := `UPDATE slots
				   SET status = $4, updated_at = now()
				   WHERE board_id = $1 AND name = $2 AND status = $3 AND claimant_id = $5`
	if clearSlot {
		updateSlot = `UPDATE slots
					  SET status = $4, claimant_id = '', company = '', updated_at = now()
					  WHERE board_id = $1 AND name = $2 AND status = $3 AND claimant_id = $5`
	}
	res, err := tx.ExecContext(ctx, updateSlot, c.BoardID, c.SlotName, fromSlot, toSlot, c.UserID)
	if err != nil {
		return fmt.Errorf("update slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("slot rows affected: %w", err)
	}
	if rows == 0 {
		// The claim row is authoritative; a slot that disagrees with a
		// locked pending/approved claim means the registry is corrupt.
		return fmt.Errorf("slot %s on board %s out of sync with claim %s", c.SlotName, c.BoardID, claimID)
	}

	return tx.Commit()
}

// ExpireStale denies every pending claim older than ttl and reopens the
// affected slots. Returns the expired claims for notification.
func (r *ClaimRepository) ExpireStale(ctx context.Context, ttl time.Duration) ([]*domain.Claim, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	expireQuery := `UPDATE claims
					SET status = $2, updated_at = now()
					WHERE status = $1
					  AND created_at + make_interval(secs => $3) < now()
					RETURNING id, board_id, slot_name, user_id, company, status, created_at, updated_at`

	rows, err := tx.QueryContext(
		ctx, expireQuery,
		domain.ClaimStatusPending, domain.ClaimStatusExpired, ttl.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("expire claims: %w", err)
	}

	var res []*domain.Claim
	for rows.Next() {
		var c domain.Claim
		if err = rows.Scan(
			&c.ID, &c.BoardID, &c.SlotName, &c.UserID,
			&c.Company, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan expired claim: %w", err)
		}
		res = append(res, &c)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	reopenQuery := `UPDATE slots
					SET status = $3, claimant_id = '', company = '', updated_at = now()
					WHERE board_id = $1 AND name = $2 AND status = $4 AND claimant_id = $5`
	for _, c := range res {
		if _, err = tx.ExecContext(
			ctx, reopenQuery, c.BoardID, c.SlotName,
			domain.SlotStatusOpen, domain.SlotStatusPending, c.UserID,
		); err != nil {
			return nil, fmt.Errorf("reopen slot: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return res, nil
}
