package settlement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/splitledger/internal/balance"
	"github.com/fkhayef/splitledger/internal/expense/split"
	"github.com/fkhayef/splitledger/internal/ledger"
)

func rec(from, to string, amount string) ledger.SplitRecord {
	return ledger.SplitRecord{From: ledger.Person(from), To: ledger.Person(to), Amount: decimal.RequireFromString(amount)}
}

func assertTransfer(t *testing.T, got Transfer, from, to, amount string) {
	t.Helper()
	assert.Equal(t, ledger.Person(from), got.From)
	assert.Equal(t, ledger.Person(to), got.To)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString(amount)), "amount %s want %s", got.Amount, amount)
}

func TestOptimize_ScenarioA(t *testing.T) {
	balances := balance.Calculate([]ledger.SplitRecord{
		rec("Alice", "Bob", "50"),
		rec("Alice", "Carol", "50"),
	})

	transfers := Optimize(balances)

	require.Len(t, transfers, 2)
	assertTransfer(t, transfers[0], "Bob", "Alice", "50")
	assertTransfer(t, transfers[1], "Carol", "Alice", "50")
}

func TestOptimize_CycleCancels(t *testing.T) {
	balances := balance.Calculate([]ledger.SplitRecord{rec("A", "B", "20"), rec("B", "A", "20")})

	transfers := Optimize(balances)
	assert.NotNil(t, transfers)
	assert.Empty(t, transfers)
}

func TestOptimize_EmptyBalances(t *testing.T) {
	assert.Empty(t, Optimize(balance.NewMap()))
}

func TestOptimize_PartialMatchesFollowFirstAppearance(t *testing.T) {
	// D owes 70, E owes 30; A is owed 40, B is owed 60
	balances := balance.NewMap()
	balances.Add("A", decimal.NewFromInt(40))
	balances.Add("D", decimal.NewFromInt(-70))
	balances.Add("B", decimal.NewFromInt(60))
	balances.Add("E", decimal.NewFromInt(-30))

	transfers := Optimize(balances)

	require.Len(t, transfers, 3)
	assertTransfer(t, transfers[0], "D", "A", "40")
	assertTransfer(t, transfers[1], "D", "B", "30")
	assertTransfer(t, transfers[2], "E", "B", "30")
}

func TestOptimize_NoiseTreatedAsZero(t *testing.T) {
	balances := balance.NewMap()
	balances.Add("A", decimal.RequireFromString("10.0000000000000001"))
	balances.Add("B", decimal.NewFromInt(-10))
	balances.Add("C", decimal.RequireFromString("-0.0000000000000001"))

	transfers := Optimize(balances)

	require.Len(t, transfers, 1)
	assertTransfer(t, transfers[0], "B", "A", "10")
}

func TestOptimize_ZeroesEveryBalance(t *testing.T) {
	s := &split.EvenStrategy{}
	expenses := []struct {
		payer        ledger.Person
		amount       string
		participants []ledger.Person
	}{
		{"Alice", "100", []ledger.Person{"Alice", "Bob", "Carol"}},
		{"Bob", "45.10", []ledger.Person{"Bob", "Dave"}},
		{"Carol", "7", []ledger.Person{"Alice", "Bob", "Carol", "Dave", "Erin", "Frank"}},
		{"Dave", "1000", []ledger.Person{"Dave", "Alice", "Erin"}},
	}

	var records []ledger.SplitRecord
	for _, e := range expenses {
		out, err := s.Calculate(e.payer, decimal.RequireFromString(e.amount), e.participants)
		require.NoError(t, err)
		records = append(records, out...)
	}

	balances := balance.Calculate(records)
	transfers := Optimize(balances)

	nonZero := 0
	for _, e := range balances.Entries() {
		if !balance.IsZero(e.Amount) {
			nonZero++
		}
	}
	assert.LessOrEqual(t, len(transfers), nonZero-1)
	for _, tr := range transfers {
		assert.True(t, tr.Amount.IsPositive())
	}
	assert.True(t, Apply(balances, transfers).IsSettled())
}

func TestOptimize_Idempotent(t *testing.T) {
	records := []ledger.SplitRecord{rec("A", "B", "12"), rec("C", "A", "5"), rec("C", "B", "1.5")}

	first := Optimize(balance.Calculate(records))
	second := Optimize(balance.Calculate(records))
	assert.Equal(t, first, second)
}

func TestTransfer_Format(t *testing.T) {
	tr := Transfer{From: "Bob", To: "Alice", Amount: decimal.RequireFromString("16.666666")}
	assert.Equal(t, "Bob pays Alice: Rupees 16.67", tr.Format(""))
}
