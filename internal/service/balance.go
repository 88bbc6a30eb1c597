package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/poolup/backend/internal/models"
)

// recentActivityLimit caps the dashboard's activity feed.
const recentActivityLimit = 20

// active reports whether a pool still carries a live obligation.
// Settled pools are repaid and cancelled pools are voided, so neither
// contributes to owed/due totals or to friend balances.
func active(status models.Status) bool {
	return !status.Terminal()
}

// Dashboard folds over all of the user's pools: what others still owe them,
// what they still owe others, and their most recent activity (terminal pools
// included in the feed).
func (s *PoolService) Dashboard(ctx context.Context, userID string) (*models.Dashboard, error) {
	pools, err := s.store.ListPoolsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list pools: %w", err)
	}

	dashboard := &models.Dashboard{
		TotalOwed:      decimal.Zero,
		TotalDue:       decimal.Zero,
		RecentActivity: []*models.Pool{},
	}

	for _, pool := range pools {
		if len(dashboard.RecentActivity) < recentActivityLimit {
			dashboard.RecentActivity = append(dashboard.RecentActivity, pool)
		}
		if !active(pool.Status) {
			continue
		}
		switch {
		case pool.CreatorID == userID:
			dashboard.TotalOwed = dashboard.TotalOwed.Add(pool.AmountOwed)
		case pool.HasParticipant(userID):
			dashboard.TotalDue = dashboard.TotalDue.Add(pool.AmountOwed)
		}
	}

	return dashboard, nil
}

// FriendBalance computes the signed net position between the user and one
// friend over their live pools. Positive means the user is owed.
func (s *PoolService) FriendBalance(ctx context.Context, userID, friendID string) (*models.FriendBalance, error) {
	pools, err := s.store.ListPoolsBetween(ctx, userID, friendID)
	if err != nil {
		return nil, fmt.Errorf("list pools between users: %w", err)
	}

	net := decimal.Zero
	for _, pool := range pools {
		if !active(pool.Status) {
			continue
		}
		switch {
		case pool.CreatorID == userID && pool.HasParticipant(friendID):
			net = net.Add(pool.AmountOwed)
		case pool.CreatorID == friendID && pool.HasParticipant(userID):
			net = net.Sub(pool.AmountOwed)
		}
	}

	return &models.FriendBalance{NetBalance: net}, nil
}
