// Package store persists the ledger to its flat text data file. It only
// handles I/O; the line format itself lives in the ledger package's codec.
//
// Saves are atomic from the caller's point of view: the new content is
// written to a temporary file which then replaces the target via rename, so
// a crash mid-save never corrupts the previous data file.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"bankbook/internal/ledger"
)

type Store struct {
	path string
}

// NewStore prepares a store for the given data file path, creating the
// parent directory if needed. The file itself may not exist yet.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("can not create data directory %s: %w", dir, err)
	}
	return &Store{path: path}, nil
}

// Path returns the data file path the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads the data file into a ledger. A missing file is not an error:
// it is the first run, and an empty ledger is returned. A malformed file is
// refused outright; the *ledger.FormatError explaining why is wrapped in
// the returned error.
func (s *Store) Load() (*ledger.Ledger, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return ledger.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("can not open data file %s: %w", s.path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	l, err := ledger.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("data file %s is corrupted: %w", s.path, err)
	}
	return l, nil
}

// Save rewrites the data file with the full ledger content.
func (s *Store) Save(l *ledger.Ledger) error {
	tmp := s.path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("can not create temporary data file: %w", err)
	}
	if err := ledger.EncodeLedger(f, l); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write data file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}
