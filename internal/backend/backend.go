// Package backend selects and constructs the persistence slot behind the
// snapshot.Slot interface, so the store and view logic never know which
// durable medium is in use.
package backend

import (
	"fmt"
	"log/slog"

	"spendlog/internal/config"
	"spendlog/internal/snapshot"
)

// Type identifies a snapshot backend.
type Type string

const (
	FileBackend   Type = "file"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid.
func (t Type) IsValid() bool {
	switch t {
	case FileBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases backend resources at shutdown.
type CleanupFunc func() error

// Result contains the slot instance and optional cleanup function.
type Result struct {
	Slot    snapshot.Slot
	Cleanup CleanupFunc
}

// Factory creates snapshot slots based on configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// CreateSlot builds the slot named by cfg.DataBackend.
func (f *Factory) CreateSlot(cfg *config.Config) (*Result, error) {
	t := Type(cfg.DataBackend)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	switch t {
	case SQLiteBackend:
		slot, err := snapshot.NewSQLiteSlot(cfg.SQLiteDBPath, snapshot.DefaultSlotName)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite slot: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Slot: slot, Cleanup: slot.Close}, nil

	case MemoryBackend:
		f.logger.Info("Initialized memory backend")
		return &Result{Slot: snapshot.NewMemorySlot()}, nil

	default:
		slot, err := snapshot.NewFileSlot(cfg.SnapshotPath)
		if err != nil {
			return nil, fmt.Errorf("initialize file slot: %w", err)
		}
		f.logger.Info("Initialized file backend", "path", cfg.SnapshotPath)
		return &Result{Slot: slot}, nil
	}
}
