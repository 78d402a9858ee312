// Package session owns the ledger for the single active session and runs every
// user action against it: add expense, reset and load.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/fkhayef/splitledger/internal/balance"
	"github.com/fkhayef/splitledger/internal/expense"
	"github.com/fkhayef/splitledger/internal/expense/split"
	"github.com/fkhayef/splitledger/internal/ledger"
	"github.com/fkhayef/splitledger/internal/logging"
	"github.com/fkhayef/splitledger/internal/settlement"
	"github.com/fkhayef/splitledger/internal/store"
)

// Service handles the ledger lifecycle.
// Actions are serialized: one completes, including its persistence write, before the next starts.
type Service struct {
	mu           sync.Mutex
	ledger       *ledger.Ledger
	store        store.Store
	splitFactory *split.Factory
	logger       logging.Logger
}

// NewService creates a session with an empty ledger
func NewService(st store.Store, splitFactory *split.Factory, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{
		ledger:       ledger.New(),
		store:        st,
		splitFactory: splitFactory,
		logger:       logger.WithField(logging.FieldComponent, "session"),
	}
}

// Load replaces the ledger with the persisted snapshot.
// An unreachable store or a malformed snapshot leaves the session with an empty ledger.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.store.Load(ctx)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrMalformedSnapshot):
			s.logger.WithError(err).Warn("Stored ledger is malformed, starting fresh")
		default:
			s.logger.WithError(err).Warn("Ledger store unavailable, starting fresh")
		}
		s.ledger.Clear()
		return
	}

	if err := s.ledger.LoadSnapshot(records); err != nil {
		s.logger.WithError(err).Warn("Stored ledger is malformed, starting fresh")
		s.ledger.Clear()
		return
	}

	s.logger.Info("Ledger loaded", logging.F(logging.FieldRecords, s.ledger.Len()))
}

// AddExpense splits the expense, appends the records and persists the ledger.
// An invalid expense leaves the ledger untouched.
func (s *Service) AddExpense(ctx context.Context, e expense.Expense) ([]ledger.SplitRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	strategy, err := s.splitFactory.CreateFromString(string(e.SplitType))
	if err != nil {
		return nil, err
	}

	records, err := strategy.Calculate(e.Payer, e.Amount, e.Participants)
	if err != nil {
		s.logger.Debug("Rejected expense", logging.F(logging.FieldPayer, e.Payer), logging.F("reason", err.Error()))
		return nil, err
	}

	if err := s.ledger.Append(records...); err != nil {
		return nil, err
	}

	s.logger.Info("Expense added",
		logging.F(logging.FieldPayer, e.Payer),
		logging.F(logging.FieldAmount, e.Amount.String()),
		logging.F(logging.FieldRecords, len(records)),
	)
	s.persist(ctx)

	return records, nil
}

// Reset clears the ledger and persists the empty state
func (s *Service) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.Clear()
	s.logger.Info("Ledger reset")
	s.persist(ctx)
}

// Records returns a snapshot of the ledger
func (s *Service) Records(ctx context.Context) []ledger.SplitRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Records()
}

// State reports whether the ledger is empty or populated
func (s *Service) State(ctx context.Context) ledger.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.State()
}

// People returns every person in the ledger in order of first appearance
func (s *Service) People(ctx context.Context) []ledger.Person {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.People()
}

// Balances recomputes the net balance of every person
func (s *Service) Balances(ctx context.Context) *balance.Map {
	return balance.Calculate(s.Records(ctx))
}

// Settlements recomputes the transfers that settle the ledger
func (s *Service) Settlements(ctx context.Context) []settlement.Transfer {
	transfers := settlement.Optimize(s.Balances(ctx))
	s.logger.Debug("Settlements computed", logging.F(logging.FieldTransfers, len(transfers)))
	return transfers
}

// persist saves the ledger. Failures are logged; the in-memory ledger stays authoritative.
func (s *Service) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.ledger.Records()); err != nil {
		s.logger.WithError(err).Error("Failed to save ledger", logging.F(logging.FieldRecords, s.ledger.Len()))
	}
}
