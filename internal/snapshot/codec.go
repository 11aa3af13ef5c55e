package snapshot

import (
	"encoding/json"
	"fmt"

	"spendlog/internal/core"
)

// Encode serializes the list as a JSON array of records carrying the five
// fields id, amount, description, category and date. Decode(Encode(list))
// returns the list field-for-field.
func Encode(list []core.Expense) ([]byte, error) {
	if list == nil {
		list = []core.Expense{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a serialized snapshot. Malformed data yields an error
// wrapping ErrCorrupt.
func Decode(data []byte) ([]core.Expense, error) {
	if len(data) == 0 {
		return nil, ErrNoSnapshot
	}
	var list []core.Expense
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return list, nil
}
