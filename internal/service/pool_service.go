// Package service implements the pool lifecycle: creation, status
// transitions and balance aggregation.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/poolup/backend/internal/calculator"
	"github.com/poolup/backend/internal/models"
	"github.com/poolup/backend/internal/storage"
)

var (
	// ErrEmptyTitle indicates a pool creation request without a cause.
	ErrEmptyTitle = errors.New("title is required")

	// ErrInvalidParticipants indicates a malformed participant set, e.g.
	// the creator listed as their own borrower.
	ErrInvalidParticipants = errors.New("invalid participant set")

	// ErrForbidden indicates the actor lacks the role the operation
	// requires on this pool.
	ErrForbidden = errors.New("actor not permitted for this pool")
)

// PoolService owns pool creation, reads and the status state machine.
type PoolService struct {
	store storage.Store
}

// NewPoolService creates a new PoolService with the given storage backend.
func NewPoolService(store storage.Store) *PoolService {
	return &PoolService{store: store}
}

// CreatePoolParams carries a pool creation request. ActorID comes from the
// auth context, never from the request body.
type CreatePoolParams struct {
	Title           string
	TotalAmount     decimal.Decimal
	ParticipantIDs  []string
	CreatorIncluded bool
	ChatID          string
	GroupChat       bool
}

// CreatePool validates the request, computes the borrower obligation once,
// and persists the pool in the pending state.
func (s *PoolService) CreatePool(ctx context.Context, creatorID string, params CreatePoolParams) (*models.Pool, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	participants, err := normalizeParticipants(creatorID, params.ParticipantIDs)
	if err != nil {
		return nil, err
	}
	// A pool needs at least one borrower no matter how the creator splits
	// their own share; a borrower-less pool could never be marked paid.
	if len(participants) == 0 {
		return nil, calculator.ErrEmptyParticipants
	}

	split, err := calculator.ComputeSplit(params.TotalAmount, len(participants), params.CreatorIncluded)
	if err != nil {
		return nil, err
	}

	pool := &models.Pool{
		Title:           title,
		TotalAmount:     params.TotalAmount,
		CreatorID:       creatorID,
		ParticipantIDs:  participants,
		CreatorIncluded: params.CreatorIncluded,
		AmountOwed:      split.CreatorReceivable,
		Status:          models.StatusPending,
		ChatID:          params.ChatID,
		GroupChat:       params.GroupChat,
	}

	if err := s.store.CreatePool(ctx, pool); err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	slog.Info("Pool created",
		"pool_id", pool.ID,
		"creator", creatorID,
		"total", pool.TotalAmount,
		"amount_owed", pool.AmountOwed,
		"participants", len(participants),
	)
	return pool, nil
}

// GetPool returns a pool the actor is involved in. Outsiders get ErrForbidden.
func (s *PoolService) GetPool(ctx context.Context, actorID, poolID string) (*models.Pool, error) {
	pool, err := s.store.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if !pool.Involves(actorID) {
		return nil, ErrForbidden
	}
	return pool, nil
}

// normalizeParticipants deduplicates the borrower set and rejects sets that
// are malformed rather than merely empty (empty is the calculator's call).
func normalizeParticipants(creatorID string, participantIDs []string) ([]string, error) {
	seen := make(map[string]bool, len(participantIDs))
	participants := make([]string, 0, len(participantIDs))
	for _, id := range participantIDs {
		if id == "" {
			return nil, fmt.Errorf("%w: empty participant id", ErrInvalidParticipants)
		}
		if id == creatorID {
			return nil, fmt.Errorf("%w: creator cannot be a participant", ErrInvalidParticipants)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		participants = append(participants, id)
	}
	return participants, nil
}
