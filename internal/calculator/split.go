// Package calculator implements the split math for expense pools.
package calculator

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount indicates a non-positive total.
	ErrInvalidAmount = errors.New("total amount must be greater than zero")

	// ErrEmptyParticipants indicates nobody is left to owe anything.
	ErrEmptyParticipants = errors.New("at least one participant is required")
)

// Split is the result of dividing a pool's total across its group.
type Split struct {
	// PerPersonShare is the display share of one group member, rounded
	// half-up to 2 decimal places.
	PerPersonShare decimal.Decimal

	// CreatorShare is the creator's own portion of the bill: PerPersonShare
	// when the creator is included in the split, zero otherwise.
	CreatorShare decimal.Decimal

	// CreatorReceivable is the aggregate the borrower side owes back.
	// Always CreatorShare + CreatorReceivable == total.
	CreatorReceivable decimal.Decimal
}

// ComputeSplit divides total across the participants plus, optionally, the
// creator. Rounding happens once, at the division; the borrower side absorbs
// any remainder so the creator is never over-reimbursed.
func ComputeSplit(total decimal.Decimal, participantCount int, creatorIncluded bool) (Split, error) {
	if total.LessThanOrEqual(decimal.Zero) {
		return Split{}, ErrInvalidAmount
	}
	if participantCount < 0 {
		participantCount = 0
	}
	if participantCount == 0 && !creatorIncluded {
		return Split{}, ErrEmptyParticipants
	}

	groupSize := int64(participantCount)
	if creatorIncluded {
		groupSize++
	}

	// Round half-up at the single division rather than per participant to
	// avoid compounding drift.
	perPerson := total.Div(decimal.NewFromInt(groupSize)).Round(2)

	creatorShare := decimal.Zero
	if creatorIncluded {
		creatorShare = perPerson
	}

	return Split{
		PerPersonShare:    perPerson,
		CreatorShare:      creatorShare,
		CreatorReceivable: total.Sub(creatorShare),
	}, nil
}
