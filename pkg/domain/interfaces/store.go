package interfaces

import (
	"context"

	"github.com/healthy-campus/hurs/pkg/domain/model"
)

// RecordStore defines the interface for rating persistence. The store is
// an ordered, append-only sequence of ratings: batches are appended as a
// whole (all rows visible or none) and existing rows are never rewritten.
type RecordStore interface {
	// Load returns every stored rating in insertion order. A store that
	// has never been written to returns an empty sequence.
	Load(ctx context.Context) ([]model.Rating, error)

	// Append adds a batch of ratings. The batch is atomic: a failed
	// append leaves no row of the batch visible to subsequent Load calls.
	Append(ctx context.Context, batch []model.Rating) error

	// ExportAll serializes the full table, header included, as CSV bytes
	ExportAll(ctx context.Context) ([]byte, error)

	// Close closes the store
	Close() error
}
