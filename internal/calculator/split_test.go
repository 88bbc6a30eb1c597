package calculator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeSplit(t *testing.T) {
	tests := []struct {
		name            string
		total           string
		participants    int
		creatorIncluded bool
		wantErr         error
		wantPerPerson   string
		wantShare       string
		wantReceivable  string
	}{
		{
			name:            "creator included, one borrower",
			total:           "100.00",
			participants:    1,
			creatorIncluded: true,
			wantPerPerson:   "50",
			wantShare:       "50",
			wantReceivable:  "50",
		},
		{
			name:            "creator excluded, one borrower owes everything",
			total:           "100.00",
			participants:    1,
			creatorIncluded: false,
			wantPerPerson:   "100",
			wantShare:       "0",
			wantReceivable:  "100",
		},
		{
			name:            "uneven division rounds half-up",
			total:           "100.00",
			participants:    2,
			creatorIncluded: true,
			wantPerPerson:   "33.33",
			wantShare:       "33.33",
			wantReceivable:  "66.67",
		},
		{
			name:            "half cent rounds up",
			total:           "0.25",
			participants:    1,
			creatorIncluded: true,
			wantPerPerson:   "0.13",
			wantShare:       "0.13",
			wantReceivable:  "0.12",
		},
		{
			name:            "three borrowers, creator excluded",
			total:           "10.00",
			participants:    3,
			creatorIncluded: false,
			wantPerPerson:   "3.33",
			wantShare:       "0",
			wantReceivable:  "10",
		},
		{
			name:         "zero total rejected",
			total:        "0",
			participants: 2,
			wantErr:      ErrInvalidAmount,
		},
		{
			name:         "negative total rejected",
			total:        "-5.00",
			participants: 2,
			wantErr:      ErrInvalidAmount,
		},
		{
			name:            "no participants and creator excluded rejected",
			total:           "20.00",
			participants:    0,
			creatorIncluded: false,
			wantErr:         ErrEmptyParticipants,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split, err := ComputeSplit(dec(tt.total), tt.participants, tt.creatorIncluded)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ComputeSplit error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ComputeSplit failed: %v", err)
			}
			if !split.PerPersonShare.Equal(dec(tt.wantPerPerson)) {
				t.Errorf("PerPersonShare = %s, want %s", split.PerPersonShare, tt.wantPerPerson)
			}
			if !split.CreatorShare.Equal(dec(tt.wantShare)) {
				t.Errorf("CreatorShare = %s, want %s", split.CreatorShare, tt.wantShare)
			}
			if !split.CreatorReceivable.Equal(dec(tt.wantReceivable)) {
				t.Errorf("CreatorReceivable = %s, want %s", split.CreatorReceivable, tt.wantReceivable)
			}
		})
	}
}

// The creator's share plus the borrowers' obligation must always add back up
// to the original total, and the receivable must stay within [0, total].
func TestComputeSplit_Conservation(t *testing.T) {
	totals := []string{"0.01", "0.10", "1.00", "33.33", "99.99", "100.00", "1234.56"}
	for _, total := range totals {
		for count := 1; count <= 7; count++ {
			for _, included := range []bool{true, false} {
				split, err := ComputeSplit(dec(total), count, included)
				if err != nil {
					t.Fatalf("ComputeSplit(%s, %d, %v) failed: %v", total, count, included, err)
				}
				sum := split.CreatorShare.Add(split.CreatorReceivable)
				if !sum.Equal(dec(total)) {
					t.Errorf("ComputeSplit(%s, %d, %v): share %s + receivable %s = %s, want %s",
						total, count, included, split.CreatorShare, split.CreatorReceivable, sum, total)
				}
				if split.CreatorReceivable.IsNegative() {
					t.Errorf("ComputeSplit(%s, %d, %v): negative receivable %s",
						total, count, included, split.CreatorReceivable)
				}
				if split.CreatorReceivable.GreaterThan(dec(total)) {
					t.Errorf("ComputeSplit(%s, %d, %v): receivable %s exceeds total",
						total, count, included, split.CreatorReceivable)
				}
			}
		}
	}
}
