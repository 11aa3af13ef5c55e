package snapshot

import (
	"context"
	"sync"

	"spendlog/internal/core"
)

// MemorySlot keeps the serialized snapshot in process memory. Used for
// tests and ephemeral runs; data does not survive a restart.
type MemorySlot struct {
	mu   sync.Mutex
	data []byte
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

func (m *MemorySlot) Load(_ context.Context) ([]core.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, ErrNoSnapshot
	}
	return Decode(m.data)
}

func (m *MemorySlot) Save(_ context.Context, list []core.Expense) error {
	data, err := Encode(list)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
	return nil
}

// Corrupt overwrites the slot with undecodable bytes. Test helper for the
// recovery path.
func (m *MemorySlot) Corrupt() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = []byte("{not json")
}
