package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fkhayef/splitledger/internal/ledger"
)

// FileStore keeps the snapshot in <dir>/<key>.json
type FileStore struct {
	dir string
	key string
}

// NewFileStore creates a file backed store
func NewFileStore(dir, key string) *FileStore {
	if key == "" {
		key = DefaultKey
	}
	return &FileStore{dir: dir, key: key}
}

// Path returns the snapshot file location
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, s.key+".json")
}

// Save writes the snapshot atomically by renaming a temp file over the old one
func (s *FileStore) Save(ctx context.Context, records []ledger.SplitRecord) error {
	data, err := Encode(records)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}

	tmp, err := os.CreateTemp(s.dir, s.key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	return nil
}

// Load reads the snapshot; a missing file means nothing was stored
func (s *FileStore) Load(ctx context.Context) ([]ledger.SplitRecord, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []ledger.SplitRecord{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	return Decode(data)
}
