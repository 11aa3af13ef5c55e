package snapshot

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestSQLiteSlotRoundTrip(t *testing.T) {
	slot, err := NewSQLiteSlot(filepath.Join(t.TempDir(), "spendlog.db"), "")
	if err != nil {
		t.Fatalf("new slot: %v", err)
	}
	t.Cleanup(func() { _ = slot.Close() })

	ctx := context.Background()
	if _, err := slot.Load(ctx); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("fresh database should report ErrNoSnapshot, got %v", err)
	}

	list := sampleList()
	if err := slot.Save(ctx, list); err != nil {
		t.Fatalf("save: %v", err)
	}
	back, err := slot.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(back) != len(list) {
		t.Fatalf("len = %d, want %d", len(back), len(list))
	}
	for i := range list {
		if !back[i].Equal(list[i]) {
			t.Fatalf("record %d mismatch: %+v != %+v", i, back[i], list[i])
		}
	}

	// Upsert path: saving again replaces the single row.
	if err := slot.Save(ctx, list[:1]); err != nil {
		t.Fatalf("second save: %v", err)
	}
	back, err = slot.Load(ctx)
	if err != nil {
		t.Fatalf("load after upsert: %v", err)
	}
	if len(back) != 1 {
		t.Fatalf("expected 1 record after replace, got %d", len(back))
	}
}

func TestMemorySlot(t *testing.T) {
	slot := NewMemorySlot()
	ctx := context.Background()

	if _, err := slot.Load(ctx); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("fresh slot should report ErrNoSnapshot, got %v", err)
	}
	if err := slot.Save(ctx, sampleList()); err != nil {
		t.Fatalf("save: %v", err)
	}
	back, err := slot.Load(ctx)
	if err != nil || len(back) != 2 {
		t.Fatalf("load: %v (%d records)", err, len(back))
	}

	slot.Corrupt()
	if _, err := slot.Load(ctx); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("corrupted slot should report ErrCorrupt, got %v", err)
	}
}
