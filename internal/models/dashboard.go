package models

import "github.com/shopspring/decimal"

// Dashboard aggregates one user's position across all their pools.
type Dashboard struct {
	// TotalOwed is what others still owe this user (pools they created,
	// non-terminal statuses only).
	TotalOwed decimal.Decimal `json:"totalOwed"`

	// TotalDue is what this user still owes others (pools they borrow in,
	// non-terminal statuses only).
	TotalDue decimal.Decimal `json:"totalDue"`

	// RecentActivity is the user's pools ordered by UpdatedAt descending,
	// terminal pools included, capped at a fixed page size.
	RecentActivity []*Pool `json:"recentActivity"`
}

// FriendBalance is the signed net position between two users.
// Positive means the requesting user is owed; negative means they owe.
type FriendBalance struct {
	NetBalance decimal.Decimal `json:"netBalance"`
}
