package settlement

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitledger/internal/balance"
)

// Optimize reduces balances to a list of pairwise transfers using a greedy streaming match.
//
// Creditors and debtors are matched in the order they first appeared in the ledger; they are
// not sorted by amount. The result has at most creditors+debtors-1 transfers and zeroes every
// balance, but it is not guaranteed to be the minimum number of transfers.
func Optimize(balances *balance.Map) []Transfer {
	var creditors, debtors []*party
	for _, e := range balances.Entries() {
		switch {
		case balance.IsZero(e.Amount):
			continue
		case e.Amount.IsPositive():
			creditors = append(creditors, &party{name: e.Person, remaining: e.Amount})
		default:
			debtors = append(debtors, &party{name: e.Person, remaining: e.Amount.Neg()})
		}
	}

	transfers := []Transfer{}
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := debtors[i]
		creditor := creditors[j]

		settled := decimal.Min(debtor.remaining, creditor.remaining)
		transfers = append(transfers, Transfer{From: debtor.name, To: creditor.name, Amount: settled})

		debtor.remaining = debtor.remaining.Sub(settled)
		creditor.remaining = creditor.remaining.Sub(settled)
		if balance.IsZero(debtor.remaining) {
			i++
		}
		if balance.IsZero(creditor.remaining) {
			j++
		}
	}

	return transfers
}

// Apply returns the balances left after every transfer is paid.
// Paying a transfer raises the debtor's balance and lowers the creditor's.
func Apply(balances *balance.Map, transfers []Transfer) *balance.Map {
	out := balances.Clone()
	for _, t := range transfers {
		out.Add(t.From, t.Amount)
		out.Add(t.To, t.Amount.Neg())
	}
	return out
}
