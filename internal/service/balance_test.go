package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/poolup/backend/internal/models"
	"github.com/poolup/backend/internal/storage"
)

// seedRaw inserts a pool directly through the store so tests can start from
// any status.
func seedRaw(t *testing.T, store storage.Store, creator string, participants []string, owed string, status models.Status, updatedAt int64) *models.Pool {
	t.Helper()
	pool := &models.Pool{
		Title:          "Seeded",
		TotalAmount:    decimal.RequireFromString(owed).Mul(decimal.NewFromInt(2)),
		CreatorID:      creator,
		ParticipantIDs: participants,
		AmountOwed:     decimal.RequireFromString(owed),
		Status:         status,
		ChatID:         "chat-1",
		CreatedAt:      updatedAt,
		UpdatedAt:      updatedAt,
	}
	if err := store.CreatePool(context.Background(), pool); err != nil {
		t.Fatalf("seed pool failed: %v", err)
	}
	return pool
}

func TestDashboard(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	// alice is owed 50 (creator, pending) and owes 30 (borrower, pending).
	seedRaw(t, store, "alice", []string{"bob"}, "50.00", models.StatusPending, 100)
	seedRaw(t, store, "bob", []string{"alice"}, "30.00", models.StatusPending, 200)
	// Terminal pools appear in activity but never in totals.
	seedRaw(t, store, "alice", []string{"bob"}, "999.00", models.StatusSettled, 300)
	seedRaw(t, store, "alice", []string{"bob"}, "999.00", models.StatusCancelled, 400)
	// verification_pending still counts as a live obligation.
	seedRaw(t, store, "alice", []string{"carol"}, "20.00", models.StatusVerificationPending, 500)

	dashboard, err := svc.Dashboard(ctx, "alice")
	if err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}

	if !dashboard.TotalOwed.Equal(decimal.RequireFromString("70.00")) {
		t.Errorf("TotalOwed = %s, want 70", dashboard.TotalOwed)
	}
	if !dashboard.TotalDue.Equal(decimal.RequireFromString("30.00")) {
		t.Errorf("TotalDue = %s, want 30", dashboard.TotalDue)
	}
	if len(dashboard.RecentActivity) != 5 {
		t.Fatalf("RecentActivity length = %d, want 5", len(dashboard.RecentActivity))
	}
	// Newest first.
	for i := 1; i < len(dashboard.RecentActivity); i++ {
		if dashboard.RecentActivity[i-1].UpdatedAt < dashboard.RecentActivity[i].UpdatedAt {
			t.Errorf("RecentActivity not ordered by UpdatedAt descending at %d", i)
		}
	}
}

func TestDashboard_CapsRecentActivity(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	for i := 0; i < recentActivityLimit+5; i++ {
		seedRaw(t, store, "alice", []string{"bob"}, "10.00", models.StatusPending, int64(1000+i))
	}

	dashboard, err := svc.Dashboard(ctx, "alice")
	if err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}
	if len(dashboard.RecentActivity) != recentActivityLimit {
		t.Errorf("RecentActivity length = %d, want %d", len(dashboard.RecentActivity), recentActivityLimit)
	}
	// Totals still cover every live pool, not just the visible page.
	want := decimal.NewFromInt(10 * int64(recentActivityLimit+5))
	if !dashboard.TotalOwed.Equal(want) {
		t.Errorf("TotalOwed = %s, want %s", dashboard.TotalOwed, want)
	}
}

func TestDashboard_EmptyUser(t *testing.T) {
	svc, _ := newTestService(t)

	dashboard, err := svc.Dashboard(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}
	if !dashboard.TotalOwed.IsZero() || !dashboard.TotalDue.IsZero() {
		t.Errorf("Totals = %s/%s, want 0/0", dashboard.TotalOwed, dashboard.TotalDue)
	}
	if dashboard.RecentActivity == nil || len(dashboard.RecentActivity) != 0 {
		t.Errorf("RecentActivity = %v, want empty slice", dashboard.RecentActivity)
	}
}

func TestFriendBalance(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	t.Run("positive when user is owed more", func(t *testing.T) {
		seedRaw(t, store, "alice", []string{"bob"}, "50.00", models.StatusPending, 100)
		seedRaw(t, store, "bob", []string{"alice"}, "20.00", models.StatusVerificationPending, 200)

		balance, err := svc.FriendBalance(ctx, "alice", "bob")
		if err != nil {
			t.Fatalf("FriendBalance failed: %v", err)
		}
		if !balance.NetBalance.Equal(decimal.RequireFromString("30.00")) {
			t.Errorf("NetBalance = %s, want 30", balance.NetBalance)
		}

		// Sign flips from the friend's perspective.
		flipped, err := svc.FriendBalance(ctx, "bob", "alice")
		if err != nil {
			t.Fatalf("FriendBalance failed: %v", err)
		}
		if !flipped.NetBalance.Equal(decimal.RequireFromString("-30.00")) {
			t.Errorf("NetBalance = %s, want -30", flipped.NetBalance)
		}
	})

	t.Run("terminal pools do not count", func(t *testing.T) {
		seedRaw(t, store, "alice", []string{"carol"}, "40.00", models.StatusSettled, 300)
		seedRaw(t, store, "carol", []string{"alice"}, "15.00", models.StatusCancelled, 400)

		balance, err := svc.FriendBalance(ctx, "alice", "carol")
		if err != nil {
			t.Fatalf("FriendBalance failed: %v", err)
		}
		if !balance.NetBalance.IsZero() {
			t.Errorf("NetBalance = %s, want 0", balance.NetBalance)
		}
	})

	t.Run("strangers are settled up", func(t *testing.T) {
		balance, err := svc.FriendBalance(ctx, "alice", "nobody")
		if err != nil {
			t.Fatalf("FriendBalance failed: %v", err)
		}
		if !balance.NetBalance.IsZero() {
			t.Errorf("NetBalance = %s, want 0", balance.NetBalance)
		}
	})
}
