package settlement_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/splitledger/internal/expense"
	"github.com/fkhayef/splitledger/internal/expense/split"
	"github.com/fkhayef/splitledger/internal/session"
	"github.com/fkhayef/splitledger/internal/settlement"
	"github.com/fkhayef/splitledger/internal/store"
)

func seeded(t *testing.T) http.Handler {
	t.Helper()
	svc := session.NewService(store.NewMemoryStore(""), split.NewSplitStrategyFactory(), nil)
	e, err := expense.New("Alice", "100", []string{"Alice", "Bob", "Carol"})
	require.NoError(t, err)
	_, err = svc.AddExpense(t.Context(), e)
	require.NoError(t, err)
	return settlement.NewHandler(svc, "Rupees").Routes()
}

func get(t *testing.T, h http.Handler, path string, out interface{}) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func TestHandler_List(t *testing.T) {
	var transfers []settlement.TransferResponse
	get(t, seeded(t), "/", &transfers)

	require.Len(t, transfers, 2)
	assert.Equal(t, "Bob", transfers[0].From)
	assert.Equal(t, "Alice", transfers[0].To)
	assert.Equal(t, "Bob pays Alice: Rupees 33.33", transfers[0].Display)
	assert.Equal(t, "Carol pays Alice: Rupees 33.33", transfers[1].Display)
}

func TestHandler_GetBalances(t *testing.T) {
	var balances []settlement.BalanceResponse
	get(t, seeded(t), "/balances", &balances)

	require.Len(t, balances, 3)
	assert.Equal(t, "Alice", balances[0].Person)
	assert.InDelta(t, 66.67, balances[0].Amount, 0.01)
	assert.Equal(t, "Alice is owed Rupees 66.67", balances[0].Message)
	assert.Equal(t, "Bob owes Rupees 33.33", balances[1].Message)
}
