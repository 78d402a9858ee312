// Package balance folds a ledger into net per-person positions.
package balance

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitledger/internal/ledger"
)

// Epsilon is the tolerance under which an amount counts as zero
var Epsilon = decimal.New(1, -9)

// Map holds a signed balance per person.
// Positive means the person is owed money, negative means they owe money.
// Iteration order is the order in which people first appeared in the ledger.
type Map struct {
	order  []ledger.Person
	values map[ledger.Person]decimal.Decimal
}

// NewMap creates an empty balance map
func NewMap() *Map {
	return &Map{values: make(map[ledger.Person]decimal.Decimal)}
}

// Calculate folds the ledger records into a balance map.
// For each record the payer gains the amount and the debtor loses it.
func Calculate(records []ledger.SplitRecord) *Map {
	m := NewMap()
	for _, r := range records {
		m.touch(r.From)
		m.touch(r.To)
		m.Add(r.From, r.Amount)
		m.Add(r.To, r.Amount.Neg())
	}
	return m
}

func (m *Map) touch(p ledger.Person) {
	if _, ok := m.values[p]; !ok {
		m.order = append(m.order, p)
		m.values[p] = decimal.Zero
	}
}

// Add adjusts a person's balance, registering them if needed
func (m *Map) Add(p ledger.Person, amount decimal.Decimal) {
	m.touch(p)
	m.values[p] = m.values[p].Add(amount)
}

// Get returns the balance of a person and whether they are known
func (m *Map) Get(p ledger.Person) (decimal.Decimal, bool) {
	v, ok := m.values[p]
	return v, ok
}

// People returns the people in first-appearance order
func (m *Map) People() []ledger.Person {
	out := make([]ledger.Person, len(m.order))
	copy(out, m.order)
	return out
}

// Len returns the number of people
func (m *Map) Len() int {
	return len(m.order)
}

// Total sums every balance. It is zero for any map built by Calculate.
func (m *Map) Total() decimal.Decimal {
	total := decimal.Zero
	for _, p := range m.order {
		total = total.Add(m.values[p])
	}
	return total
}

// IsSettled reports whether every balance is zero within Epsilon
func (m *Map) IsSettled() bool {
	for _, p := range m.order {
		if !IsZero(m.values[p]) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy
func (m *Map) Clone() *Map {
	c := NewMap()
	for _, p := range m.order {
		c.order = append(c.order, p)
		c.values[p] = m.values[p]
	}
	return c
}

// Entries returns the balances as an ordered slice
func (m *Map) Entries() []Entry {
	entries := make([]Entry, len(m.order))
	for i, p := range m.order {
		entries[i] = Entry{Person: p, Amount: m.values[p]}
	}
	return entries
}

// Entry is a single person's balance
type Entry struct {
	Person ledger.Person
	Amount decimal.Decimal
}

// IsZero reports whether an amount is zero within Epsilon
func IsZero(d decimal.Decimal) bool {
	return d.Abs().LessThanOrEqual(Epsilon)
}
