package core

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-09")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.String() != "2025-03-09" {
		t.Fatalf("unexpected date %q", d.String())
	}
	for _, bad := range []string{"", "today", "2025-13-01", "09/03/2025"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("%q expected error", bad)
		}
	}
}

func TestDateValidate(t *testing.T) {
	if err := NewDate(2025, 1, 1).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Date{Time: time.Time{}}).Validate(); err == nil {
		t.Fatalf("expected error for zero date")
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		Amount:      Money{Cents: 100},
		Description: "coffee",
		Category:    "food",
		Date:        NewDate(2025, 1, 1),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		e    Expense
		want error
	}{
		{"zero amount", Expense{Description: "a", Category: "c", Date: NewDate(2025, 1, 1)}, ErrInvalidAmount},
		{"negative amount", Expense{Amount: Money{Cents: -1}, Description: "a", Category: "c", Date: NewDate(2025, 1, 1)}, ErrInvalidAmount},
		{"blank description", Expense{Amount: Money{Cents: 1}, Description: "   ", Category: "c", Date: NewDate(2025, 1, 1)}, ErrEmptyDescription},
		{"blank category", Expense{Amount: Money{Cents: 1}, Description: "a", Category: " ", Date: NewDate(2025, 1, 1)}, ErrEmptyCategory},
		{"zero date", Expense{Amount: Money{Cents: 1}, Description: "a", Category: "c"}, ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.e.Validate(); err != tc.want {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}
