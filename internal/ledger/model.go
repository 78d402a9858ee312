package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Person is a participant identified by their display name.
// Two people are the same only if their names match exactly.
type Person string

// State describes whether the ledger holds any records
type State string

const (
	StateEmpty     State = "EMPTY"
	StatePopulated State = "POPULATED"
)

// DefaultCurrency is the label used when rendering amounts
const DefaultCurrency = "Rupees"

// MaxAmount is the largest amount a single record may carry.
// Amounts are exposed as JSON numbers, so sums must stay well inside float64 range.
var MaxAmount = decimal.New(1, 15)

// SplitRecord represents one raw obligation: To owes From the given amount.
// From is the payer of the expense and the creditor of record.
type SplitRecord struct {
	From   Person          `json:"from"`
	To     Person          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

// Validate checks that the record can live in a ledger
func (r SplitRecord) Validate() error {
	if r.From == "" || r.To == "" {
		return fmt.Errorf("%w: from and to are required", ErrInvalidRecord)
	}
	if !r.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidRecord, r.Amount)
	}
	if r.Amount.GreaterThan(MaxAmount) {
		return fmt.Errorf("%w: amount %s exceeds %s", ErrInvalidRecord, r.Amount, MaxAmount)
	}
	return nil
}

// Format renders the record as "<from> pays <to>: <currency> <amount>"
func (r SplitRecord) Format(currency string) string {
	return FormatLine(r.From, r.To, r.Amount, currency)
}

// FormatLine renders a single payment line with the amount rounded to 2 decimals
func FormatLine(from, to Person, amount decimal.Decimal, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return fmt.Sprintf("%s pays %s: %s %s", from, to, currency, amount.StringFixed(2))
}
