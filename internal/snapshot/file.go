package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"spendlog/internal/core"
)

// FileSlot persists the snapshot as a single JSON file. Saves go through a
// temp file plus rename, so a reader never observes a half-written slot.
type FileSlot struct {
	path string
}

func NewFileSlot(path string) (*FileSlot, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create snapshot directory: %w", err)
		}
	}
	return &FileSlot{path: path}, nil
}

func (f *FileSlot) Load(_ context.Context) ([]core.Expense, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	return Decode(data)
}

func (f *FileSlot) Save(_ context.Context, list []core.Expense) error {
	data, err := Encode(list)
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace snapshot file: %w", err)
	}
	return nil
}
