package split

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitledger/internal/ledger"
)

// SplitType defines the type of split strategy
type SplitType string

const (
	SplitTypeEven SplitType = "EVEN"
)

// Strategy is the interface that all split strategies must implement
type Strategy interface {
	// Calculate expands one expense into ledger records
	Calculate(payer ledger.Person, amount decimal.Decimal, participants []ledger.Person) ([]ledger.SplitRecord, error)

	// Type returns the type identifier for this strategy
	Type() SplitType

	// Validate checks if the inputs are valid for this strategy
	Validate(payer ledger.Person, amount decimal.Decimal, participants []ledger.Person) error
}

// Factory creates split strategies based on the requested type
type Factory struct{}

// NewSplitStrategyFactory creates a new factory instance
func NewSplitStrategyFactory() *Factory {
	return &Factory{}
}

// Create returns the appropriate strategy implementation based on the type
func (f *Factory) Create(splitType SplitType) (Strategy, error) {
	switch splitType {
	case SplitTypeEven:
		return &EvenStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSplitType, splitType)
	}
}

// CreateFromString creates a strategy from a string type (useful for API requests).
// An empty string selects the even split.
func (f *Factory) CreateFromString(splitType string) (Strategy, error) {
	if splitType == "" {
		return f.Create(SplitTypeEven)
	}
	return f.Create(SplitType(strings.ToUpper(splitType)))
}

var (
	ErrInvalidExpense   = errors.New("invalid expense")
	ErrUnknownSplitType = errors.New("unknown split type")
)

// ParseAmount parses user supplied text into a strictly positive amount no larger than ledger.MaxAmount
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a number", ErrInvalidExpense, s)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidExpense, amount)
	}
	if amount.GreaterThan(ledger.MaxAmount) {
		return decimal.Zero, fmt.Errorf("%w: amount %s exceeds %s", ErrInvalidExpense, amount, ledger.MaxAmount)
	}
	return amount, nil
}

// distinct removes exact duplicates while keeping the first occurrence order
func distinct(participants []ledger.Person) []ledger.Person {
	seen := make(map[ledger.Person]struct{}, len(participants))
	out := make([]ledger.Person, 0, len(participants))
	for _, p := range participants {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
