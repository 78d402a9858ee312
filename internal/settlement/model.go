package settlement

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitledger/internal/ledger"
)

// Transfer is one minimized payment instruction: From pays To the amount.
// It is distinct from a ledger.SplitRecord, which is a raw obligation.
type Transfer struct {
	From   ledger.Person   `json:"from"`
	To     ledger.Person   `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

// Format renders the transfer as "<from> pays <to>: <currency> <amount>"
func (t Transfer) Format(currency string) string {
	return ledger.FormatLine(t.From, t.To, t.Amount, currency)
}

// party is a creditor or debtor with the amount still to be settled
type party struct {
	name      ledger.Person
	remaining decimal.Decimal
}
