package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/poolup/backend/internal/models"
	"github.com/poolup/backend/internal/storage"
)

const poolColumns = "id, title, total_amount, creator_id, creator_included, amount_owed, status, chat_id, group_chat, created_at, updated_at"

// CreatePool persists a new pool and its participant set.
func (s *SQLiteStore) CreatePool(ctx context.Context, pool *models.Pool) error {
	// Generate IDs and timestamps if not set
	if pool.ID == "" {
		pool.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if pool.CreatedAt == 0 {
		pool.CreatedAt = now
	}
	if pool.UpdatedAt == 0 {
		pool.UpdatedAt = pool.CreatedAt
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO pools ("+poolColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		pool.ID, pool.Title, pool.TotalAmount.String(), pool.CreatorID, pool.CreatorIncluded,
		pool.AmountOwed.String(), string(pool.Status), pool.ChatID, pool.GroupChat,
		pool.CreatedAt, pool.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert pool: %w", err)
	}

	for _, userID := range pool.ParticipantIDs {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO pool_participants (pool_id, user_id) VALUES (?, ?)",
			pool.ID, userID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetPool retrieves a pool by ID, including its participant set.
func (s *SQLiteStore) GetPool(ctx context.Context, poolID string) (*models.Pool, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+poolColumns+" FROM pools WHERE id = ?",
		poolID,
	)
	pool, err := scanPool(row)
	if err == sql.ErrNoRows {
		return nil, storage.ErrPoolNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pool: %w", err)
	}

	if err := s.loadParticipants(ctx, pool); err != nil {
		return nil, err
	}

	return pool, nil
}

// UpdatePoolStatus applies a conditional status update: the write only lands
// if the pool is still in the expected `from` status.
func (s *SQLiteStore) UpdatePoolStatus(ctx context.Context, poolID string, from, to models.Status, updatedAt int64) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE pools SET status = ?, updated_at = ? WHERE id = ? AND status = ?",
		string(to), updatedAt, poolID, string(from),
	)
	if err != nil {
		return fmt.Errorf("failed to update pool status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}

	// Nothing updated: either the pool is gone or a concurrent writer
	// moved it out of `from` first.
	var current string
	err = s.db.QueryRowContext(ctx, "SELECT status FROM pools WHERE id = ?", poolID).Scan(&current)
	if err == sql.ErrNoRows {
		return storage.ErrPoolNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check pool status: %w", err)
	}
	return storage.ErrStatusConflict
}

// ListPoolsByUser returns every pool the user created or borrows in.
func (s *SQLiteStore) ListPoolsByUser(ctx context.Context, userID string) ([]*models.Pool, error) {
	return s.listPools(ctx,
		`SELECT `+poolColumns+` FROM pools
		 WHERE creator_id = ?
		    OR id IN (SELECT pool_id FROM pool_participants WHERE user_id = ?)
		 ORDER BY updated_at DESC, created_at DESC`,
		userID, userID,
	)
}

// ListPoolsBetween returns every pool where one user is the creator and the
// other a participant.
func (s *SQLiteStore) ListPoolsBetween(ctx context.Context, userID, friendID string) ([]*models.Pool, error) {
	return s.listPools(ctx,
		`SELECT `+poolColumns+` FROM pools
		 WHERE (creator_id = ? AND id IN (SELECT pool_id FROM pool_participants WHERE user_id = ?))
		    OR (creator_id = ? AND id IN (SELECT pool_id FROM pool_participants WHERE user_id = ?))
		 ORDER BY updated_at DESC, created_at DESC`,
		userID, friendID, friendID, userID,
	)
}

func (s *SQLiteStore) listPools(ctx context.Context, query string, args ...any) ([]*models.Pool, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pools: %w", err)
	}
	defer rows.Close()

	var pools []*models.Pool
	for rows.Next() {
		pool, err := scanPool(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pool: %w", err)
		}
		pools = append(pools, pool)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pools: %w", err)
	}

	for _, pool := range pools {
		if err := s.loadParticipants(ctx, pool); err != nil {
			return nil, err
		}
	}

	return pools, nil
}

func (s *SQLiteStore) loadParticipants(ctx context.Context, pool *models.Pool) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id FROM pool_participants WHERE pool_id = ? ORDER BY user_id",
		pool.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return fmt.Errorf("failed to scan participant: %w", err)
		}
		pool.ParticipantIDs = append(pool.ParticipantIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate participants: %w", err)
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPool(row scanner) (*models.Pool, error) {
	pool := &models.Pool{}
	var total, owed, status string
	err := row.Scan(
		&pool.ID, &pool.Title, &total, &pool.CreatorID, &pool.CreatorIncluded,
		&owed, &status, &pool.ChatID, &pool.GroupChat,
		&pool.CreatedAt, &pool.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if pool.TotalAmount, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("failed to parse total_amount %q: %w", total, err)
	}
	if pool.AmountOwed, err = decimal.NewFromString(owed); err != nil {
		return nil, fmt.Errorf("failed to parse amount_owed %q: %w", owed, err)
	}
	pool.Status = models.Status(status)
	if !pool.Status.Valid() {
		return nil, fmt.Errorf("unknown pool status %q", status)
	}

	return pool, nil
}
