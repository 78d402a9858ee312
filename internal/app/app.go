// Package app assembles a session from configuration. It is shared by the API server
// and the command line tool.
package app

import (
	"context"
	"fmt"

	"github.com/fkhayef/splitledger/internal/config"
	"github.com/fkhayef/splitledger/internal/database"
	"github.com/fkhayef/splitledger/internal/expense/split"
	"github.com/fkhayef/splitledger/internal/logging"
	"github.com/fkhayef/splitledger/internal/session"
	"github.com/fkhayef/splitledger/internal/store"
)

// App holds the long-lived dependencies of a running process
type App struct {
	Config  *config.Config
	Logger  logging.Logger
	Session *session.Service

	closers []func() error
}

// New builds the store selected by cfg, creates the session and loads the persisted ledger
func New(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger}

	st, err := a.openStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Session = session.NewService(st, split.NewSplitStrategyFactory(), logger)
	a.Session.Load(ctx)

	return a, nil
}

func (a *App) openStore(ctx context.Context) (store.Store, error) {
	log := a.Logger.WithFields(logging.F(logging.FieldStore, a.Config.Store.Driver), logging.F(logging.FieldKey, a.Config.Store.Key))

	switch a.Config.Store.Driver {
	case config.DriverMemory:
		log.Info("Using in-memory ledger store")
		return store.NewMemoryStore(a.Config.Store.Key), nil

	case config.DriverPostgres:
		db, err := database.NewPostgresConnection(a.Config.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.closers = append(a.closers, db.Close)

		pg := store.NewPostgresStore(db, a.Config.Store.Key)
		if err := pg.Migrate(ctx); err != nil {
			return nil, err
		}
		log.Info("Connected to database successfully")
		return pg, nil

	default:
		fs := store.NewFileStore(a.Config.Store.Directory, a.Config.Store.Key)
		log.Info("Using file ledger store", logging.F("path", fs.Path()))
		return fs, nil
	}
}

// Close releases resources opened by New
func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}
