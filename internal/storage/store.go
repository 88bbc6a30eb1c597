// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/poolup/backend/internal/models"
)

var (
	// ErrPoolNotFound is returned when no pool exists with the given ID.
	ErrPoolNotFound = errors.New("pool not found")

	// ErrStatusConflict is returned when a conditional status update finds
	// the pool no longer in the expected status (a concurrent writer won).
	ErrStatusConflict = errors.New("pool status changed concurrently")
)

// Store defines the interface for pool storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreatePool persists a new pool. The pool's ID, CreatedAt and
	// UpdatedAt fields are populated by the store if unset.
	CreatePool(ctx context.Context, pool *models.Pool) error

	// GetPool retrieves a pool by its ID.
	// Returns ErrPoolNotFound if the pool does not exist.
	GetPool(ctx context.Context, poolID string) (*models.Pool, error)

	// UpdatePoolStatus moves a pool from one status to another as a single
	// conditional write. Returns ErrPoolNotFound if the pool does not
	// exist, or ErrStatusConflict if its status is no longer `from`.
	UpdatePoolStatus(ctx context.Context, poolID string, from, to models.Status, updatedAt int64) error

	// ListPoolsByUser returns every pool the user created or borrows in,
	// ordered by UpdatedAt descending.
	ListPoolsByUser(ctx context.Context, userID string) ([]*models.Pool, error)

	// ListPoolsBetween returns every pool where one of the two users is
	// the creator and the other a participant, ordered by UpdatedAt
	// descending.
	ListPoolsBetween(ctx context.Context, userID, friendID string) ([]*models.Pool, error)

	// Close releases any resources held by the store.
	Close() error
}
