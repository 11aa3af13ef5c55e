package store

import (
	"testing"

	"spendlog/internal/core"
)

func draft(desc, cat string, cents int64) core.Expense {
	return core.Expense{
		Amount:      core.Money{Cents: cents},
		Description: desc,
		Category:    cat,
		Date:        core.NewDate(2025, 3, 1),
	}
}

func TestAddAssignsUniqueIDsNewestFirst(t *testing.T) {
	s := New()
	seen := make(map[int64]bool)
	for i := 0; i < 100; i++ {
		rec := s.Add(draft("item", "food", 100))
		if rec.ID == 0 {
			t.Fatalf("id not assigned")
		}
		if seen[rec.ID] {
			t.Fatalf("id %d reused", rec.ID)
		}
		seen[rec.ID] = true

		all := s.All()
		if len(all) != i+1 {
			t.Fatalf("len = %d, want %d", len(all), i+1)
		}
		if all[0].ID != rec.ID {
			t.Fatalf("newest record is not first")
		}
	}
}

func TestRemove(t *testing.T) {
	s := New()
	a := s.Add(draft("a", "food", 100))
	b := s.Add(draft("b", "transport", 200))

	if s.Remove(a.ID + b.ID + 1000) {
		t.Fatalf("removing an absent id should be a no-op")
	}
	if s.Len() != 2 {
		t.Fatalf("no-op remove changed the list")
	}

	if !s.Remove(a.ID) {
		t.Fatalf("expected removal of present id")
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d after remove, want 1", s.Len())
	}
	for _, e := range s.All() {
		if e.ID == a.ID {
			t.Fatalf("removed record still present")
		}
	}
}

func TestClear(t *testing.T) {
	s := New()
	if s.Clear() {
		t.Fatalf("clearing an empty store should signal a no-op")
	}
	s.Add(draft("a", "food", 100))
	s.Add(draft("b", "food", 200))
	if !s.Clear() {
		t.Fatalf("expected clear of non-empty store")
	}
	if s.Len() != 0 {
		t.Fatalf("store not empty after clear")
	}
	if s.Clear() {
		t.Fatalf("second clear should signal a no-op")
	}
}

func TestReplaceSeedsIDCounter(t *testing.T) {
	s := New()
	loaded := []core.Expense{
		{ID: 9_999_999_999_999, Amount: core.Money{Cents: 100}, Description: "x", Category: "food", Date: core.NewDate(2025, 1, 1)},
		{ID: 42, Amount: core.Money{Cents: 200}, Description: "y", Category: "bills", Date: core.NewDate(2025, 1, 2)},
	}
	s.Replace(loaded)
	if s.Len() != 2 {
		t.Fatalf("len = %d after replace, want 2", s.Len())
	}
	rec := s.Add(draft("z", "food", 300))
	if rec.ID <= 9_999_999_999_999 {
		t.Fatalf("new id %d not past the loaded maximum", rec.ID)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	s := New()
	s.Add(draft("a", "food", 100))
	all := s.All()
	all[0].Description = "mutated"
	if s.All()[0].Description != "a" {
		t.Fatalf("caller mutation leaked into the store")
	}
}
