package repository

import (
	"context"
	"sync"

	"github.com/healthy-campus/hurs/pkg/domain/interfaces"
	"github.com/healthy-campus/hurs/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Memory implements RecordStore with in-memory storage. It is used for
// tests and for ephemeral runs where no score file should be written.
type Memory struct {
	mu      sync.RWMutex
	records []model.Rating
}

// NewMemory creates a new memory store
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns every stored rating in insertion order
func (m *Memory) Load(ctx context.Context) ([]model.Rating, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return copyRatings(m.records), nil
}

// Append adds a batch of ratings. The batch is validated up front so a
// failed append leaves the store untouched.
func (m *Memory) Append(ctx context.Context, batch []model.Rating) error {
	if len(batch) == 0 {
		return nil
	}
	for i, r := range batch {
		if err := r.Validate(); err != nil {
			return goerr.Wrap(err, "invalid rating in batch", goerr.V("index", i))
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = append(m.records, copyRatings(batch)...)
	return nil
}

// ExportAll serializes the full current table, header included
func (m *Memory) ExportAll(ctx context.Context) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return encodeRatings(m.records)
}

// Close does nothing for the memory store
func (m *Memory) Close() error {
	return nil
}

// Clear clears all data (useful for testing)
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
}

var _ interfaces.RecordStore = (*Memory)(nil) // Compile-time interface check
