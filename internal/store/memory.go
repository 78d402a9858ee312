package store

import (
	"context"
	"sync"

	"github.com/fkhayef/splitledger/internal/ledger"
)

// MemoryStore keeps encoded snapshots in process memory
type MemoryStore struct {
	mu    sync.Mutex
	key   string
	blobs map[string][]byte

	// Err, when set, is returned by Save and Load to simulate an unreachable backend
	Err error
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore(key string) *MemoryStore {
	if key == "" {
		key = DefaultKey
	}
	return &MemoryStore{key: key, blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Save(ctx context.Context, records []ledger.SplitRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	data, err := Encode(records)
	if err != nil {
		return err
	}
	s.blobs[s.key] = data
	return nil
}

func (s *MemoryStore) Load(ctx context.Context) ([]ledger.SplitRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return Decode(s.blobs[s.key])
}

// Raw returns the stored blob
func (s *MemoryStore) Raw() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.blobs[s.key]...)
}

// PutRaw stores a blob as-is, bypassing encoding
func (s *MemoryStore) PutRaw(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[s.key] = append([]byte(nil), data...)
}
