package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/fkhayef/splitledger/internal/ledger"
)

// PostgresStore keeps the snapshot in a key-value table
type PostgresStore struct {
	db  *sql.DB
	key string
}

// NewPostgresStore creates a new Postgres backed store
func NewPostgresStore(db *sql.DB, key string) *PostgresStore {
	if key == "" {
		key = DefaultKey
	}
	return &PostgresStore{db: db, key: key}
}

// Migrate creates the key-value table if it does not exist
func (s *PostgresStore) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_store (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to migrate kv_store: %w", classify(err))
	}
	return nil
}

// Save upserts the snapshot under the store key
func (s *PostgresStore) Save(ctx context.Context, records []ledger.SplitRecord) error {
	data, err := Encode(records)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := s.db.ExecContext(ctx, query, s.key, string(data)); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", classify(err))
	}
	return nil
}

// Load reads the snapshot stored under the store key
func (s *PostgresStore) Load(ctx context.Context) ([]ledger.SplitRecord, error) {
	query := `SELECT value FROM kv_store WHERE key = $1`

	var value string
	err := s.db.QueryRowContext(ctx, query, s.key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []ledger.SplitRecord{}, nil
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", classify(err))
	}

	return Decode([]byte(value))
}

// classify marks driver and connection failures as ErrPersistenceUnavailable
func classify(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%w: %s (%s)", ErrPersistenceUnavailable, pqErr.Message, pqErr.Code.Name())
	}
	return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
}
