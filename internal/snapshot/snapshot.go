// Package snapshot implements the persistence adapter: a single durable
// slot holding the full expense list, replaced wholesale on every save.
package snapshot

import (
	"context"
	"errors"

	"spendlog/internal/core"
)

var (
	// ErrNoSnapshot means the slot is empty or absent; an ordinary
	// first-run condition, never fatal.
	ErrNoSnapshot = errors.New("no snapshot")

	// ErrCorrupt means the slot holds data that does not decode. Callers
	// recover by starting from an empty list.
	ErrCorrupt = errors.New("corrupt snapshot")
)

// Slot is the single durable location for the serialized list.
type Slot interface {
	// Load reads the previously saved snapshot. Returns ErrNoSnapshot when
	// the slot is empty or absent, or an error wrapping ErrCorrupt when the
	// data does not decode.
	Load(ctx context.Context) ([]core.Expense, error)

	// Save serializes the full list and replaces any prior snapshot. A
	// failed save is recoverable; in-memory state stays authoritative.
	Save(ctx context.Context, list []core.Expense) error
}
