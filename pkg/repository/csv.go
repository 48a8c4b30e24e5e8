package repository

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/healthy-campus/hurs/pkg/domain/interfaces"
	"github.com/healthy-campus/hurs/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// CSV implements RecordStore backed by a flat CSV file. Appends rewrite
// the whole table through a temp file in the same directory followed by a
// rename, so a failed append never leaves a partially written table.
// Concurrent writers from other processes are not supported.
type CSV struct {
	mu      sync.RWMutex
	path    string
	records []model.Rating
}

// NewCSV creates a CSV store for the given file path. If the file does
// not exist it is created with a header-only table.
func NewCSV(ctx context.Context, path string) (*CSV, error) {
	if path == "" {
		return nil, goerr.New("store file path is required")
	}

	s := &CSV{path: path}
	if _, err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the full table from disk, creating a header-only table on
// first use, and returns every rating in insertion order.
func (s *CSV) Load(ctx context.Context) ([]model.Rating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, goerr.Wrap(model.ErrStorageUnavailable, "failed to read score table",
				goerr.V("path", s.path), goerr.V("cause", err.Error()))
		}

		// First-ever use: create the backing table with header only
		empty, err := encodeRatings(nil)
		if err != nil {
			return nil, err
		}
		if err := s.writeTable(empty); err != nil {
			return nil, err
		}
		s.records = nil
		return []model.Rating{}, nil
	}

	records, err := decodeRatings(data)
	if err != nil {
		return nil, goerr.Wrap(model.ErrStorageUnavailable, "corrupt score table",
			goerr.V("path", s.path), goerr.V("cause", err.Error()))
	}

	s.records = records
	return copyRatings(records), nil
}

// Append adds a batch of ratings to the table. The batch is atomic: the
// rewritten table replaces the old one only after it is fully written, and
// the in-memory mirror is updated only on success.
func (s *CSV) Append(ctx context.Context, batch []model.Rating) error {
	if len(batch) == 0 {
		return nil
	}
	for i, r := range batch {
		if err := r.Validate(); err != nil {
			return goerr.Wrap(err, "invalid rating in batch", goerr.V("index", i))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := make([]model.Rating, 0, len(s.records)+len(batch))
	merged = append(merged, s.records...)
	merged = append(merged, batch...)

	data, err := encodeRatings(merged)
	if err != nil {
		return err
	}
	if err := s.writeTable(data); err != nil {
		return err
	}

	s.records = merged
	return nil
}

// ExportAll serializes the full current table, header included
func (s *CSV) ExportAll(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return encodeRatings(s.records)
}

// Close does nothing for the CSV store; the file is not held open
func (s *CSV) Close() error {
	return nil
}

// writeTable replaces the backing file with the given table bytes.
// Callers must hold the write lock.
func (s *CSV) writeTable(data []byte) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return goerr.Wrap(model.ErrStorageUnavailable, "failed to create temp table",
			goerr.V("dir", dir), goerr.V("cause", err.Error()))
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return goerr.Wrap(model.ErrStorageUnavailable, "failed to write score table",
			goerr.V("path", s.path), goerr.V("cause", err.Error()))
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return goerr.Wrap(model.ErrStorageUnavailable, "failed to sync score table",
			goerr.V("path", s.path), goerr.V("cause", err.Error()))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return goerr.Wrap(model.ErrStorageUnavailable, "failed to close temp table",
			goerr.V("path", s.path), goerr.V("cause", err.Error()))
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return goerr.Wrap(model.ErrStorageUnavailable, "failed to replace score table",
			goerr.V("path", s.path), goerr.V("cause", err.Error()))
	}

	return nil
}

func copyRatings(records []model.Rating) []model.Rating {
	result := make([]model.Rating, len(records))
	copy(result, records)
	return result
}

var _ interfaces.RecordStore = (*CSV)(nil) // Compile-time interface check
