// Package store persists ledger snapshots as an opaque JSON blob under a single key.
//
// Every backend stores the same wire format: a JSON array of
// {"from": string, "to": string, "amount": number}. The session hands a store a copy of
// the ledger on save and receives a fresh slice on load; stores never hold live references.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitledger/internal/ledger"
)

// DefaultKey is the well-known key the ledger is stored under
const DefaultKey = "settlementsData"

var (
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
	ErrMalformedSnapshot      = errors.New("malformed snapshot")
)

// Store is the persistence collaborator for the ledger
type Store interface {
	// Save overwrites the stored snapshot with records
	Save(ctx context.Context, records []ledger.SplitRecord) error

	// Load returns the stored snapshot, or an empty slice if nothing was stored
	Load(ctx context.Context) ([]ledger.SplitRecord, error)
}

// snapshotRecord is the persisted shape of a split record
type snapshotRecord struct {
	From   string      `json:"from"`
	To     string      `json:"to"`
	Amount json.Number `json:"amount"`
}

// Encode serializes records to the snapshot wire format
func Encode(records []ledger.SplitRecord) ([]byte, error) {
	rows := make([]snapshotRecord, len(records))
	for i, r := range records {
		rows[i] = snapshotRecord{
			From:   string(r.From),
			To:     string(r.To),
			Amount: json.Number(r.Amount.String()),
		}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot. Empty input decodes to an empty ledger.
// Anything that does not describe a valid ledger fails with ErrMalformedSnapshot.
func Decode(data []byte) ([]ledger.SplitRecord, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []ledger.SplitRecord{}, nil
	}

	var rows []snapshotRecord
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	records := make([]ledger.SplitRecord, len(rows))
	for i, row := range rows {
		amount, err := decimal.NewFromString(row.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedSnapshot, i, err)
		}
		r := ledger.SplitRecord{From: ledger.Person(row.From), To: ledger.Person(row.To), Amount: amount}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedSnapshot, i, err)
		}
		records[i] = r
	}
	return records, nil
}
