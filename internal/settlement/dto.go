package settlement

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitledger/internal/balance"
)

// TransferResponse represents the response for a single settlement transfer
type TransferResponse struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	Amount  float64 `json:"amount"`
	Display string  `json:"display"` // e.g., "Bob pays Alice: Rupees 50.00"
}

// BalanceResponse represents the net balance of one person
type BalanceResponse struct {
	Person  string  `json:"person"`
	Amount  float64 `json:"amount"`  // Positive = is owed money, Negative = owes money
	Message string  `json:"message"` // e.g., "Bob owes Rupees 50.00"
}

// ToResponse converts a Transfer to a TransferResponse DTO
func (t Transfer) ToResponse(currency string) *TransferResponse {
	return &TransferResponse{
		From:    string(t.From),
		To:      string(t.To),
		Amount:  t.Amount.InexactFloat64(),
		Display: t.Format(currency),
	}
}

// NewBalanceResponse converts a balance entry to a BalanceResponse DTO
func NewBalanceResponse(e balance.Entry, currency string) *BalanceResponse {
	amount := e.Amount
	if balance.IsZero(amount) {
		amount = decimal.Zero
	}
	return &BalanceResponse{
		Person:  string(e.Person),
		Amount:  amount.InexactFloat64(),
		Message: balanceMessage(e, currency),
	}
}

func balanceMessage(e balance.Entry, currency string) string {
	switch {
	case balance.IsZero(e.Amount):
		return fmt.Sprintf("%s is settled up", e.Person)
	case e.Amount.IsPositive():
		return fmt.Sprintf("%s is owed %s %s", e.Person, currency, e.Amount.StringFixed(2))
	default:
		return fmt.Sprintf("%s owes %s %s", e.Person, currency, e.Amount.Neg().StringFixed(2))
	}
}
