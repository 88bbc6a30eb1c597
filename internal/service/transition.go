package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/poolup/backend/internal/models"
	"github.com/poolup/backend/internal/storage"
)

// ErrInvalidTransition indicates the requested action is not a valid edge
// from the pool's current status. Terminal pools reject every action with
// this error, so retried requests fail loudly instead of double-applying.
var ErrInvalidTransition = errors.New("invalid status transition")

// actorRole is the role a transition edge requires of its actor.
type actorRole int

const (
	roleCreator actorRole = iota
	roleBorrower
)

type edge struct {
	to   models.Status
	role actorRole
}

// transitions is the pool status state machine. Anything not listed here is
// an invalid transition; settled and cancelled have no outgoing edges.
var transitions = map[models.Status]map[models.Action]edge{
	models.StatusPending: {
		models.ActionCancel:   {to: models.StatusCancelled, role: roleCreator},
		models.ActionMarkPaid: {to: models.StatusVerificationPending, role: roleBorrower},
	},
	models.StatusVerificationPending: {
		models.ActionConfirm: {to: models.StatusSettled, role: roleCreator},
		models.ActionReject:  {to: models.StatusPending, role: roleCreator},
	},
}

// Transition applies a role-gated status change to a pool.
//
// The update is conditional on the status the pool was loaded with, so two
// racing requests cannot both win: the loser observes a status conflict and
// fails with ErrInvalidTransition, same as if it had arrived late.
func (s *PoolService) Transition(ctx context.Context, actorID, poolID string, action models.Action) (*models.Pool, error) {
	if !action.Valid() {
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidTransition, action)
	}

	pool, err := s.store.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}

	e, ok := transitions[pool.Status][action]
	if !ok {
		return nil, fmt.Errorf("%w: cannot %s a %s pool", ErrInvalidTransition, action, pool.Status)
	}

	switch e.role {
	case roleCreator:
		if pool.CreatorID != actorID {
			return nil, fmt.Errorf("%w: only the creator may %s", ErrForbidden, action)
		}
	case roleBorrower:
		if !pool.HasParticipant(actorID) {
			return nil, fmt.Errorf("%w: only a borrower may %s", ErrForbidden, action)
		}
	}

	now := time.Now().Unix()
	err = s.store.UpdatePoolStatus(ctx, poolID, pool.Status, e.to, now)
	if errors.Is(err, storage.ErrStatusConflict) {
		return nil, fmt.Errorf("%w: pool left %s concurrently", ErrInvalidTransition, pool.Status)
	}
	if err != nil {
		return nil, fmt.Errorf("apply transition: %w", err)
	}

	slog.Info("Pool status changed",
		"pool_id", poolID,
		"action", action,
		"from", pool.Status,
		"to", e.to,
		"actor", actorID,
	)

	pool.Status = e.to
	pool.UpdatedAt = now
	return pool, nil
}
