package brokerage

import "strings"

// Filter selects which balance-annotated rows a statement displays.
//
// All set fields must match (conjunction). Filtering is display-only: it
// never participates in balance computation.
type Filter struct {
	Query    string // case-insensitive free-text match against the description
	Range    Range  // inclusive bounds on the economic date
	Category string // exact category name
}

// Match reports whether an entry passes the filter.
func (f Filter) Match(e Entry) bool {
	if f.Query != "" && !ByQuery(f.Query)(e) {
		return false
	}
	if !f.Range.Contains(e.Date) {
		return false
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	return true
}

// IsZero reports whether the filter selects everything.
func (f Filter) IsZero() bool {
	return strings.TrimSpace(f.Query) == "" && f.Range.IsOpen() && f.Category == ""
}

// StatementRow is a ledger entry annotated with the running balance of the
// complete ledger at that entry.
type StatementRow struct {
	Index int // position in the chronological ledger, usable with ToggleStatus
	Entry
	Balance Money
}

// Statement is a period view over the ledger: the filtered rows plus the
// period summaries.
//
// PeriodEndingBalance is the cumulative balance at the last displayed row; it
// is NOT PeriodIncome − PeriodExpense (that period delta is exposed
// separately by PeriodDelta, the two differ whenever the filter does not
// start at the dataset's beginning).
type Statement struct {
	Filter        Filter
	Rows          []StatementRow
	PeriodIncome  Money
	PeriodExpense Money
	// PeriodEndingBalance is the Balance of the last row, zero when no row
	// is displayed.
	PeriodEndingBalance Money
}

// PeriodDelta is the net flow of the displayed period: income minus expense.
func (s *Statement) PeriodDelta() Money {
	return s.PeriodIncome.Sub(s.PeriodExpense)
}

// annotate walks the complete, chronologically sorted entry set exactly once
// and attaches the running balance to every entry.
//
// The walk always covers the full set, never a filtered subset: skipping an
// entry because a later filter hides it would corrupt the balance of every
// displayed entry after it. The result is cached against the ledger version,
// so building statements with different filters over an unchanged ledger
// reuses the same annotated view.
func (l *Ledger) annotate() []StatementRow {
	if l.annotated != nil && l.annotatedVersion == l.version {
		return l.annotated
	}

	rows := make([]StatementRow, 0, len(l.entries))
	var balance Money
	for i, e := range l.entries {
		balance = balance.Add(e.Signed())
		rows = append(rows, StatementRow{Index: i, Entry: e, Balance: balance})
	}
	l.annotated = rows
	l.annotatedVersion = l.version
	return rows
}

// Balance returns the running balance of the complete ledger on a given date
// (the balance after the last entry on or before that date).
func (l *Ledger) Balance(on Date) Money {
	var balance Money
	for _, row := range l.annotate() {
		if row.Date.After(on) {
			break
		}
		balance = row.Balance
	}
	return balance
}

// NewStatement builds the filtered, balance-annotated view of the ledger.
//
// Balances are computed over the complete set first; the filter then only
// selects which rows appear. Displayed rows keep the balance they have in
// the full chronological ledger.
func NewStatement(l *Ledger, f Filter) *Statement {
	st := &Statement{Filter: f}

	for _, row := range l.annotate() {
		if !f.Match(row.Entry) {
			continue
		}
		st.Rows = append(st.Rows, row)
		switch row.Type {
		case Income:
			st.PeriodIncome = st.PeriodIncome.Add(row.Amount)
		case Expense:
			st.PeriodExpense = st.PeriodExpense.Add(row.Amount)
		}
	}

	if n := len(st.Rows); n > 0 {
		st.PeriodEndingBalance = st.Rows[n-1].Balance
	}
	return st
}
