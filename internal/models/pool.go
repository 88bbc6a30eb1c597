package models

import "github.com/shopspring/decimal"

func init() {
	// The mobile client reads money fields as JSON numbers (e.g. calls
	// toFixed on them), so decimals must not marshal as quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Status is the lifecycle state of a pool.
type Status string

const (
	// StatusPending is the initial state: the borrowers owe the creator.
	StatusPending Status = "pending"

	// StatusVerificationPending means a borrower asserted payment and the
	// creator has not yet confirmed receipt.
	StatusVerificationPending Status = "verification_pending"

	// StatusSettled is terminal: the creator confirmed receipt.
	StatusSettled Status = "settled"

	// StatusCancelled is terminal: the creator voided the request.
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusVerificationPending, StatusSettled, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are permitted from s.
func (s Status) Terminal() bool {
	return s == StatusSettled || s == StatusCancelled
}

// Action is a status-transition request issued by the creator or a borrower.
type Action string

const (
	// ActionCancel voids a pending pool. Creator only.
	ActionCancel Action = "cancel"

	// ActionMarkPaid asserts the borrower has paid. Borrower only.
	ActionMarkPaid Action = "mark_paid"

	// ActionConfirm attests receipt of payment. Creator only.
	ActionConfirm Action = "confirm"

	// ActionReject disputes a claimed payment, reverting to pending.
	// Creator only.
	ActionReject Action = "reject"
)

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	switch a {
	case ActionCancel, ActionMarkPaid, ActionConfirm, ActionReject:
		return true
	}
	return false
}

// Pool represents an expense-sharing request: the creator paid up-front and
// the participants collectively owe AmountOwed back.
type Pool struct {
	// ID is the unique identifier for the pool (UUID format).
	ID string `json:"id"`

	// Title is the human-readable cause for the expense. Immutable.
	Title string `json:"title"`

	// TotalAmount is the full bill the creator paid. Always > 0. Immutable.
	TotalAmount decimal.Decimal `json:"totalAmount"`

	// CreatorID is the user who paid and is owed money.
	CreatorID string `json:"creator"`

	// ParticipantIDs are the borrowers. Non-empty, never contains CreatorID.
	ParticipantIDs []string `json:"participants"`

	// CreatorIncluded records whether the creator's own share was netted
	// out of what the borrowers owe.
	CreatorIncluded bool `json:"creatorIncluded"`

	// AmountOwed is the aggregate the borrower side owes the creator.
	// Computed exactly once at creation, never recomputed.
	AmountOwed decimal.Decimal `json:"amountOwed"`

	// Status is the current lifecycle state.
	Status Status `json:"status"`

	// ChatID references the conversation the pool was raised in. Used for
	// display grouping only; settlement logic never reads it.
	ChatID string `json:"chatId"`

	// GroupChat records whether ChatID refers to a group conversation.
	GroupChat bool `json:"isGroupChat"`

	// CreatedAt is the Unix timestamp when the pool was created.
	CreatedAt int64 `json:"createdAt"`

	// UpdatedAt is the Unix timestamp of the last status change.
	UpdatedAt int64 `json:"updatedAt"`
}

// HasParticipant reports whether userID is one of the pool's borrowers.
func (p *Pool) HasParticipant(userID string) bool {
	for _, id := range p.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Involves reports whether userID is the creator or a borrower.
func (p *Pool) Involves(userID string) bool {
	return p.CreatorID == userID || p.HasParticipant(userID)
}
