package config

import (
	"context"
	"log/slog"

	"github.com/healthy-campus/hurs/pkg/domain/interfaces"
	"github.com/healthy-campus/hurs/pkg/repository"
	"github.com/urfave/cli/v3"
)

// MemoryStorePath selects the in-memory store instead of a CSV file
const MemoryStorePath = ":memory:"

// Storage holds record store configuration
type Storage struct {
	Path string
}

// Flags returns CLI flags for Storage configuration
func (s *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "store",
			Usage:       "Path to the score CSV file, or :memory: for an ephemeral store",
			Value:       "scores.csv",
			Sources:     cli.EnvVars("HURS_STORE"),
			Destination: &s.Path,
		},
	}
}

// Configure creates the record store. The CSV file is created with a
// header-only table on first use.
func (s *Storage) Configure(ctx context.Context) (interfaces.RecordStore, error) {
	if s.Path == MemoryStorePath {
		return repository.NewMemory(), nil
	}
	return repository.NewCSV(ctx, s.Path)
}

// LogValue returns structured log value
func (s Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", s.Path),
	)
}
