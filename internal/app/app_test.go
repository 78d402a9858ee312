package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/splitledger/internal/config"
	"github.com/fkhayef/splitledger/internal/expense"
	"github.com/fkhayef/splitledger/internal/ledger"
	"github.com/fkhayef/splitledger/internal/logging"
)

func fileConfig(dir string) *config.Config {
	cfg := &config.Config{}
	cfg.Store.Driver = config.DriverFile
	cfg.Store.Directory = dir
	cfg.Store.Key = "settlementsData"
	cfg.Display.Currency = "Rupees"
	return cfg
}

func TestNew_FileStorePersistsAcrossSessions(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := New(ctx, fileConfig(dir), logging.Discard())
	require.NoError(t, err)
	e, err := expense.New("Alice", "90", []string{"Alice", "Bob", "Carol"})
	require.NoError(t, err)
	_, err = first.Session.AddExpense(ctx, e)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := New(ctx, fileConfig(dir), logging.Discard())
	require.NoError(t, err)
	defer second.Close()

	assert.Equal(t, ledger.StatePopulated, second.Session.State(ctx))
	assert.Equal(t, []ledger.Person{"Alice", "Bob", "Carol"}, second.Session.People(ctx))
}

func TestNew_MalformedFileStartsFresh(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settlementsData.json"), []byte("[{"), 0o644))

	a, err := New(ctx, fileConfig(dir), logging.Discard())
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, ledger.StateEmpty, a.Session.State(ctx))
}

func TestNew_MemoryStore(t *testing.T) {
	cfg := fileConfig("")
	cfg.Store.Driver = config.DriverMemory

	a, err := New(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	assert.NoError(t, a.Close())
	assert.Equal(t, ledger.StateEmpty, a.Session.State(context.Background()))
}
