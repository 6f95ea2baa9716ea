package brokerage

import (
	"testing"
	"time"
)

// threeDays builds the canonical scenario: +1000 on day 1, -200 on day 2,
// +400 on day 3, inserted out of order.
func threeDays() *Ledger {
	ledger := NewLedger()
	ledger.Append(
		entry("deposit", Income, 1000, NewDate(2025, time.July, 1)),
		entry("sale", Income, 400, NewDate(2025, time.July, 3)),
		entry("rent", Expense, 200, NewDate(2025, time.July, 2)),
	)
	return ledger
}

func TestStatement_RunningBalance(t *testing.T) {
	st := NewStatement(threeDays(), Filter{})

	wantBalances := []Money{BRL(1000), BRL(800), BRL(1200)}
	if len(st.Rows) != len(wantBalances) {
		t.Fatalf("got %d rows, want %d", len(st.Rows), len(wantBalances))
	}
	for i, want := range wantBalances {
		if !st.Rows[i].Balance.Equal(want) {
			t.Errorf("Rows[%d].Balance = %v, want %v", i, st.Rows[i].Balance, want)
		}
	}
	if !st.PeriodEndingBalance.Equal(BRL(1200)) {
		t.Errorf("PeriodEndingBalance = %v, want %v", st.PeriodEndingBalance, BRL(1200))
	}
	if !st.PeriodIncome.Equal(BRL(1400)) {
		t.Errorf("PeriodIncome = %v, want %v", st.PeriodIncome, BRL(1400))
	}
	if !st.PeriodExpense.Equal(BRL(200)) {
		t.Errorf("PeriodExpense = %v, want %v", st.PeriodExpense, BRL(200))
	}
}

func TestStatement_FilterNeverRebasesBalances(t *testing.T) {
	ledger := threeDays()
	full := NewStatement(ledger, Filter{})

	testCases := []struct {
		name   string
		filter Filter
	}{
		{"by query", Filter{Query: "rent"}},
		{"by range", Filter{Range: Range{From: NewDate(2025, time.July, 2)}}},
		{"last day only", Filter{Range: Range{From: NewDate(2025, time.July, 3), To: NewDate(2025, time.July, 3)}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			st := NewStatement(ledger, tc.filter)
			for _, row := range st.Rows {
				want := full.Rows[row.Index].Balance
				if !row.Balance.Equal(want) {
					t.Errorf("row %d: Balance = %v, want %v (same as unfiltered)", row.Index, row.Balance, want)
				}
			}
		})
	}
}

func TestStatement_DeltaVersusEndingBalance(t *testing.T) {
	ledger := threeDays()

	// A view that starts mid-dataset: only July 2 and 3.
	st := NewStatement(ledger, Filter{Range: Range{From: NewDate(2025, time.July, 2)}})

	wantDelta := BRL(200) // 400 income - 200 expense
	if !st.PeriodDelta().Equal(wantDelta) {
		t.Errorf("PeriodDelta = %v, want %v", st.PeriodDelta(), wantDelta)
	}
	wantEnding := BRL(1200) // cumulative over the whole ledger
	if !st.PeriodEndingBalance.Equal(wantEnding) {
		t.Errorf("PeriodEndingBalance = %v, want %v", st.PeriodEndingBalance, wantEnding)
	}
	if st.PeriodDelta().Equal(st.PeriodEndingBalance) {
		t.Error("delta and ending balance should diverge on a view that starts mid-dataset")
	}
}

func TestStatement_EmptyView(t *testing.T) {
	st := NewStatement(threeDays(), Filter{Query: "no such thing"})
	if len(st.Rows) != 0 {
		t.Fatalf("got %d rows, want 0", len(st.Rows))
	}
	if !st.PeriodEndingBalance.IsZero() {
		t.Errorf("PeriodEndingBalance = %v, want zero", st.PeriodEndingBalance)
	}
}

func TestLedger_BalanceOnDate(t *testing.T) {
	ledger := threeDays()

	testCases := []struct {
		name string
		on   Date
		want Money
	}{
		{"before everything", NewDate(2025, time.June, 30), Money{}},
		{"after day 1", NewDate(2025, time.July, 1), BRL(1000)},
		{"after day 2", NewDate(2025, time.July, 2), BRL(800)},
		{"after day 3", NewDate(2025, time.July, 3), BRL(1200)},
		{"far future", NewDate(2026, time.January, 1), BRL(1200)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ledger.Balance(tc.on)
			if !got.value.Equal(tc.want.value) {
				t.Errorf("Balance(%s) = %v, want %v", tc.on, got, tc.want)
			}
		})
	}
}

func TestStatement_AnnotationFollowsMutations(t *testing.T) {
	ledger := threeDays()

	st := NewStatement(ledger, Filter{})
	if !st.PeriodEndingBalance.Equal(BRL(1200)) {
		t.Fatalf("PeriodEndingBalance = %v, want %v", st.PeriodEndingBalance, BRL(1200))
	}

	// The cached annotation must be invalidated by any mutation.
	ledger.Append(entry("late fee", Expense, 100, NewDate(2025, time.July, 4)))
	st = NewStatement(ledger, Filter{})
	if !st.PeriodEndingBalance.Equal(BRL(1100)) {
		t.Errorf("after Append PeriodEndingBalance = %v, want %v", st.PeriodEndingBalance, BRL(1100))
	}

	if _, err := ledger.Remove(3); err != nil {
		t.Fatal(err)
	}
	st = NewStatement(ledger, Filter{})
	if !st.PeriodEndingBalance.Equal(BRL(1200)) {
		t.Errorf("after Remove PeriodEndingBalance = %v, want %v", st.PeriodEndingBalance, BRL(1200))
	}
}

func TestStatement_StatusDoesNotMoveBalance(t *testing.T) {
	ledger := threeDays()
	before := NewStatement(ledger, Filter{}).PeriodEndingBalance

	if _, err := ledger.ToggleStatus(1); err != nil {
		t.Fatal(err)
	}
	after := NewStatement(ledger, Filter{}).PeriodEndingBalance
	if !after.Equal(before) {
		t.Errorf("toggling status moved the balance: %v != %v", after, before)
	}
}
