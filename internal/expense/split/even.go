package split

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitledger/internal/ledger"
)

// =============================================================================
// EVEN SPLIT STRATEGY
// Divides the expense equally among all participants
// =============================================================================

// EvenStrategy implements the Strategy interface for even splits
type EvenStrategy struct{}

// Type returns the split type identifier
func (s *EvenStrategy) Type() SplitType {
	return SplitTypeEven
}

// Validate checks if the inputs are valid for an even split.
// The payer must be one of the participants.
func (s *EvenStrategy) Validate(payer ledger.Person, amount decimal.Decimal, participants []ledger.Person) error {
	if payer == "" {
		return fmt.Errorf("%w: no payer designated", ErrInvalidExpense)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidExpense, amount)
	}
	if amount.GreaterThan(ledger.MaxAmount) {
		return fmt.Errorf("%w: amount %s exceeds %s", ErrInvalidExpense, amount, ledger.MaxAmount)
	}
	people := distinct(participants)
	if slices.Contains(people, "") {
		return fmt.Errorf("%w: participant names cannot be empty", ErrInvalidExpense)
	}
	if len(people) < 2 {
		return fmt.Errorf("%w: at least two distinct participants are required", ErrInvalidExpense)
	}
	if !slices.Contains(people, payer) {
		return fmt.Errorf("%w: payer %q is not a participant", ErrInvalidExpense, payer)
	}
	return nil
}

// Calculate divides the amount evenly among all participants.
// The payer keeps their own share and is never charged against themselves.
// No rounding is applied here; it is deferred to display.
func (s *EvenStrategy) Calculate(payer ledger.Person, amount decimal.Decimal, participants []ledger.Person) ([]ledger.SplitRecord, error) {
	if err := s.Validate(payer, amount, participants); err != nil {
		return nil, err
	}

	people := distinct(participants)
	share := amount.Div(decimal.NewFromInt(int64(len(people))))
	if !share.IsPositive() {
		return nil, fmt.Errorf("%w: amount %s is too small to split %d ways", ErrInvalidExpense, amount, len(people))
	}

	records := make([]ledger.SplitRecord, 0, len(people)-1)
	for _, p := range people {
		if p == payer {
			continue
		}
		records = append(records, ledger.SplitRecord{From: payer, To: p, Amount: share})
	}

	return records, nil
}
