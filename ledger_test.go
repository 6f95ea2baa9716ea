package brokerage

import (
	"testing"
	"time"
)

// entry is a test helper building a minimal valid entry.
func entry(desc string, t EntryType, amount float64, day Date) Entry {
	return Entry{
		Description: desc,
		Type:        t,
		Amount:      BRL(amount),
		Date:        day,
		Status:      Paid,
	}
}

func TestLedger_ChronologicalOrder(t *testing.T) {
	day1 := NewDate(2025, time.July, 1)
	day2 := NewDate(2025, time.July, 2)
	day3 := NewDate(2025, time.July, 3)

	ledger := NewLedger()
	// Inserted out of order on purpose.
	ledger.Append(
		entry("first", Income, 1000, day1),
		entry("third", Income, 200, day3),
		entry("second", Expense, 400, day2),
	)

	want := []string{"first", "second", "third"}
	for i, w := range want {
		e, err := ledger.Entry(i)
		if err != nil {
			t.Fatal(err)
		}
		if e.Description != w {
			t.Errorf("Entry(%d) = %q, want %q", i, e.Description, w)
		}
	}
}

func TestLedger_SameDayKeepsInsertionOrder(t *testing.T) {
	day := NewDate(2025, time.July, 1)

	ledger := NewLedger()
	ledger.Append(
		entry("a", Income, 1, day),
		entry("b", Income, 2, day),
		entry("c", Income, 3, day),
	)
	// A later append on the same day lands after the existing ones.
	ledger.Append(entry("d", Income, 4, day))

	want := []string{"a", "b", "c", "d"}
	for i, w := range want {
		e, _ := ledger.Entry(i)
		if e.Description != w {
			t.Errorf("Entry(%d) = %q, want %q", i, e.Description, w)
		}
	}
}

func TestLedger_ToggleStatus(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(entry("rent", Expense, 100, NewDate(2025, time.July, 1)))

	e, err := ledger.ToggleStatus(0)
	if err != nil {
		t.Fatal(err)
	}
	if e.Status != Pending {
		t.Errorf("after first toggle Status = %v, want %v", e.Status, Pending)
	}
	e, _ = ledger.ToggleStatus(0)
	if e.Status != Paid {
		t.Errorf("after second toggle Status = %v, want %v", e.Status, Paid)
	}

	if _, err := ledger.ToggleStatus(5); err == nil {
		t.Error("ToggleStatus(5) on a 1-entry ledger should fail")
	}
}

func TestLedger_Remove(t *testing.T) {
	day := NewDate(2025, time.July, 1)
	ledger := NewLedger()
	ledger.Append(
		entry("a", Income, 1, day),
		entry("b", Income, 2, day),
	)

	removed, err := ledger.Remove(0)
	if err != nil {
		t.Fatal(err)
	}
	if removed.Description != "a" {
		t.Errorf("Remove(0) = %q, want %q", removed.Description, "a")
	}
	if ledger.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ledger.Len())
	}
	if _, err := ledger.Remove(7); err == nil {
		t.Error("Remove(7) should fail")
	}
}

func TestLedger_EntriesFilters(t *testing.T) {
	day1 := NewDate(2025, time.July, 1)
	day2 := NewDate(2025, time.August, 1)

	ledger := NewLedger()
	e1 := entry("commission alpha", Income, 100, day1)
	e1.Category = "sale commission"
	e1.Sale = "S0001"
	e2 := entry("office RENT", Expense, 50, day2)
	e2.Category = "office"
	ledger.Append(e1, e2)

	count := func(filters ...func(Entry) bool) int {
		n := 0
		for range ledger.Entries(filters...) {
			n++
		}
		return n
	}

	if got := count(AcceptAll); got != 2 {
		t.Errorf("AcceptAll matched %d, want 2", got)
	}
	if got := count(ByType(Income)); got != 1 {
		t.Errorf("ByType(Income) matched %d, want 1", got)
	}
	if got := count(ByCategory("office")); got != 1 {
		t.Errorf("ByCategory matched %d, want 1", got)
	}
	if got := count(BySale("S0001")); got != 1 {
		t.Errorf("BySale matched %d, want 1", got)
	}
	if got := count(ByQuery("rent")); got != 1 {
		t.Errorf("ByQuery should be case-insensitive, matched %d, want 1", got)
	}
	if got := count(ByRange(Range{From: day2})); got != 1 {
		t.Errorf("ByRange matched %d, want 1", got)
	}
	// Predicates are a union.
	if got := count(ByType(Income), ByCategory("office")); got != 2 {
		t.Errorf("union of predicates matched %d, want 2", got)
	}
}
