// Package store owns the authoritative in-memory expense list.
package store

import (
	"sync"
	"time"

	"spendlog/internal/core"
)

// Store holds the record list in insertion order, newest first. It is the
// sole owner of the records; readers get copies. The mutex exists because
// the HTTP server is a concurrent caller, not because the domain needs
// interleaving.
type Store struct {
	mu     sync.Mutex
	items  []core.Expense
	lastID int64
}

func New() *Store {
	return &Store{}
}

// Add assigns a fresh unique id to the draft and prepends it to the list.
// Validation happens upstream; Add never fails.
func (s *Store) Add(draft core.Expense) core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = s.nextID()
	s.items = append([]core.Expense{draft}, s.items...)
	return draft
}

// nextID derives ids from creation time in Unix milliseconds, bumping past
// the last issued id on collision so ids stay unique and monotonic.
func (s *Store) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Remove deletes the record with the given id. Returns false when no such
// record exists; that is a no-op, not an error.
func (s *Store) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.items {
		if e.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the list. Returns false when the list was already empty so
// the caller can warn about the no-op.
func (s *Store) Clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return false
	}
	s.items = nil
	return true
}

// All returns a copy of the list in stored order (newest first).
func (s *Store) All() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Expense, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the current record count.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Replace installs a loaded snapshot and seeds the id counter past the
// largest loaded id so future ids are never reused. Used once at startup.
func (s *Store) Replace(items []core.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]core.Expense, len(items))
	copy(s.items, items)
	for _, e := range items {
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}
}
