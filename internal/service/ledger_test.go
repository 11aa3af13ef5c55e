package service

import (
	"context"
	"errors"
	"testing"

	"spendlog/internal/categories"
	"spendlog/internal/core"
	"spendlog/internal/snapshot"
	"spendlog/internal/store"
)

// failingSlot rejects every save, simulating a full or broken backend.
type failingSlot struct{}

func (failingSlot) Load(context.Context) ([]core.Expense, error) {
	return nil, snapshot.ErrNoSnapshot
}

func (failingSlot) Save(context.Context, []core.Expense) error {
	return errors.New("quota exceeded")
}

func yes() bool { return true }
func no() bool  { return false }

func newLedger(slot snapshot.Slot) *Ledger {
	if slot == nil {
		slot = snapshot.NewMemorySlot()
	}
	return NewLedger(store.New(), slot, categories.Default(), nil)
}

func draft(desc, cat string, cents int64) core.Expense {
	return core.Expense{
		Amount:      core.Money{Cents: cents},
		Description: desc,
		Category:    cat,
		Date:        core.NewDate(2025, 3, 1),
	}
}

func TestAddValidates(t *testing.T) {
	l := newLedger(nil)
	ctx := context.Background()

	cases := []struct {
		name string
		d    core.Expense
		want error
	}{
		{"zero amount", draft("a", "food", 0), core.ErrInvalidAmount},
		{"negative amount", draft("a", "food", -100), core.ErrInvalidAmount},
		{"blank description", draft("   ", "food", 100), core.ErrEmptyDescription},
		{"missing date", core.Expense{Amount: core.Money{Cents: 100}, Description: "a", Category: "food"}, core.ErrInvalidDate},
		{"unknown category", draft("a", "yachts", 100), categories.ErrUnknownCategory},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := l.Add(ctx, tc.d); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
			if l.Count() != 0 {
				t.Fatalf("rejected draft changed the list")
			}
		})
	}
}

func TestAddPersists(t *testing.T) {
	slot := snapshot.NewMemorySlot()
	l := newLedger(slot)
	ctx := context.Background()

	rec, persisted, err := l.Add(ctx, draft("dinner", "food", 10000))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !persisted {
		t.Fatalf("save should succeed on memory slot")
	}
	if rec.ID == 0 {
		t.Fatalf("id not assigned")
	}

	saved, err := slot.Load(ctx)
	if err != nil || len(saved) != 1 || !saved[0].Equal(rec) {
		t.Fatalf("snapshot not written after add: %v %+v", err, saved)
	}
}

func TestAddKeepsStateWhenSaveFails(t *testing.T) {
	l := newLedger(failingSlot{})
	rec, persisted, err := l.Add(context.Background(), draft("dinner", "food", 10000))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if persisted {
		t.Fatalf("save should have been reported as failed")
	}
	if l.Count() != 1 || l.Visible(core.FilterAll)[0].ID != rec.ID {
		t.Fatalf("in-memory state must survive a failed save")
	}
}

func TestRemoveConfirmation(t *testing.T) {
	l := newLedger(nil)
	ctx := context.Background()
	rec, _, _ := l.Add(ctx, draft("dinner", "food", 10000))

	if _, _, err := l.Remove(ctx, rec.ID, no); !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("unconfirmed remove should report ErrNotConfirmed, got %v", err)
	}
	if l.Count() != 1 {
		t.Fatalf("unconfirmed remove mutated the list")
	}

	removed, persisted, err := l.Remove(ctx, rec.ID, yes)
	if err != nil || !removed || !persisted {
		t.Fatalf("remove: removed=%v persisted=%v err=%v", removed, persisted, err)
	}
	if l.Count() != 0 {
		t.Fatalf("record still present after remove")
	}

	// Absent id is a warned no-op.
	removed, _, err = l.Remove(ctx, rec.ID, yes)
	if err != nil || removed {
		t.Fatalf("absent id should be a no-op, got removed=%v err=%v", removed, err)
	}
}

func TestClear(t *testing.T) {
	slot := snapshot.NewMemorySlot()
	l := newLedger(slot)
	ctx := context.Background()

	cleared, _, err := l.Clear(ctx, yes)
	if err != nil || cleared {
		t.Fatalf("clearing an empty list should be a no-op, got cleared=%v err=%v", cleared, err)
	}

	l.Add(ctx, draft("a", "food", 100))
	l.Add(ctx, draft("b", "bills", 200))

	if _, _, err := l.Clear(ctx, no); !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("unconfirmed clear should report ErrNotConfirmed, got %v", err)
	}

	cleared, persisted, err := l.Clear(ctx, yes)
	if err != nil || !cleared || !persisted {
		t.Fatalf("clear: cleared=%v persisted=%v err=%v", cleared, persisted, err)
	}
	saved, err := slot.Load(ctx)
	if err != nil || len(saved) != 0 {
		t.Fatalf("cleared snapshot should be empty: %v %+v", err, saved)
	}
}

func TestLoadRecoversFromBadSnapshots(t *testing.T) {
	ctx := context.Background()

	// Absent snapshot: empty start.
	l := newLedger(nil)
	l.Load(ctx)
	if l.Count() != 0 {
		t.Fatalf("expected empty start on absent snapshot")
	}

	// Corrupt snapshot: empty start, no panic, session continues.
	slot := snapshot.NewMemorySlot()
	slot.Corrupt()
	l = newLedger(slot)
	l.Load(ctx)
	if l.Count() != 0 {
		t.Fatalf("expected empty start on corrupt snapshot")
	}
	if _, _, err := l.Add(ctx, draft("still usable", "food", 100)); err != nil {
		t.Fatalf("session should continue after corrupt load: %v", err)
	}
}

func TestLoadRestoresAndSeedsIDs(t *testing.T) {
	ctx := context.Background()
	slot := snapshot.NewMemorySlot()

	first := newLedger(slot)
	first.Load(ctx)
	a, _, _ := first.Add(ctx, draft("a", "food", 100))
	b, _, _ := first.Add(ctx, draft("b", "transport", 200))

	second := newLedger(slot)
	second.Load(ctx)
	got := second.Visible(core.FilterAll)
	if len(got) != 2 || !got[0].Equal(b) || !got[1].Equal(a) {
		t.Fatalf("reload mismatch: %+v", got)
	}

	c, _, _ := second.Add(ctx, draft("c", "bills", 300))
	if c.ID <= b.ID {
		t.Fatalf("id %d not past restored maximum %d", c.ID, b.ID)
	}
}

func TestReadSides(t *testing.T) {
	l := newLedger(nil)
	ctx := context.Background()
	l.Add(ctx, draft("dinner", "food", 10000))
	l.Add(ctx, draft("groceries", "food", 5000))
	l.Add(ctx, draft("bus", "transport", 3000))

	s := l.Summary()
	if s.Total.Format() != "180.00" || s.Count != 3 || s.TopCategory != "food" {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if len(l.Visible("food")) != 2 {
		t.Fatalf("unexpected food filter result")
	}
	groups := l.Groups()
	if len(groups) != 2 || groups[0].Code != "food" || groups[0].Amount.Cents != 15000 {
		t.Fatalf("unexpected groups: %+v", groups)
	}
}
