package expense

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitledger/internal/expense/split"
	"github.com/fkhayef/splitledger/internal/ledger"
)

// Expense is one logical "add expense" action: a payer, an amount and the people sharing it
type Expense struct {
	Payer        ledger.Person
	Amount       decimal.Decimal
	Participants []ledger.Person
	SplitType    split.SplitType
}

// New builds an expense from raw user input. The amount is parsed from text
// and must be a finite positive number.
func New(payer, amount string, participants []string) (Expense, error) {
	parsed, err := split.ParseAmount(amount)
	if err != nil {
		return Expense{}, err
	}

	people := make([]ledger.Person, len(participants))
	for i, p := range participants {
		people[i] = ledger.Person(p)
	}

	return Expense{
		Payer:        ledger.Person(payer),
		Amount:       parsed,
		Participants: people,
		SplitType:    split.SplitTypeEven,
	}, nil
}
