package brokerage

// This file holds the status-based and sale-based aggregations shown on the
// dashboard. They deliberately live apart from the statement: the statement's
// running balance is status-agnostic, while these cards use status as an
// inclusion filter. The two paths read the same records and must never be
// merged.

// Cashflow summarizes settlement over a period: what came in, what is still
// expected, what went out, and what is still owed.
type Cashflow struct {
	Range     Range
	Received  Money // income, paid
	ToReceive Money // income, pending
	Paid      Money // expense, paid
	ToPay     Money // expense, pending
}

// NewCashflow aggregates entries by type and status over the period.
func NewCashflow(l *Ledger, r Range) Cashflow {
	cf := Cashflow{Range: r}
	for _, e := range l.Entries(ByRange(r)) {
		switch {
		case e.Type == Income && e.Status == Paid:
			cf.Received = cf.Received.Add(e.Amount)
		case e.Type == Income && e.Status == Pending:
			cf.ToReceive = cf.ToReceive.Add(e.Amount)
		case e.Type == Expense && e.Status == Paid:
			cf.Paid = cf.Paid.Add(e.Amount)
		case e.Type == Expense && e.Status == Pending:
			cf.ToPay = cf.ToPay.Add(e.Amount)
		}
	}
	return cf
}

// SalesSummary aggregates the sales of a period for the dashboard.
//
// Only approved sales count toward the money totals; VGV is the gross sales
// volume, the sum of approved unit values.
type SalesSummary struct {
	Range            Range
	VGV              Money
	GrossCommission  Money
	AgencyCommission Money
	AgentCommission  Money
	Approved         int
	Pending          int
	Cancelled        int
}

// NewSalesSummary aggregates sales whose date falls in the period.
func NewSalesSummary(b *Book, r Range) SalesSummary {
	sum := SalesSummary{Range: r}
	for s := range b.Sales() {
		if !r.Contains(s.Date) {
			continue
		}
		switch s.Status {
		case SaleApproved:
			sum.Approved++
			sum.VGV = sum.VGV.Add(s.UnitValue)
			sum.GrossCommission = sum.GrossCommission.Add(s.GrossCommission)
			sum.AgencyCommission = sum.AgencyCommission.Add(s.AgencyCommission)
			sum.AgentCommission = sum.AgentCommission.Add(s.AgentCommission)
		case SalePending:
			sum.Pending++
		case SaleCancelled:
			sum.Cancelled++
		}
	}
	return sum
}

// AgingLine is a pending entry positioned against a reference date by its
// due date.
type AgingLine struct {
	Index int
	Entry
	DaysLate int // positive when overdue on the reference date
}

// Aging partitions the pending entries into receivables and payables, each
// split into overdue and upcoming by due date. Entries without a due date
// are excluded: aging is a due-date report, the economic date plays no role
// here.
type Aging struct {
	Reference          Date
	OverdueReceivable  []AgingLine
	UpcomingReceivable []AgingLine
	OverduePayable     []AgingLine
	UpcomingPayable    []AgingLine
}

// NewAging builds the payable/receivable aging report on a reference date.
func NewAging(l *Ledger, reference Date) *Aging {
	a := &Aging{Reference: reference}
	for i, e := range l.Entries(AcceptAll) {
		if e.Status != Pending || e.Due.IsZero() {
			continue
		}
		line := AgingLine{Index: i, Entry: e, DaysLate: daysBetween(e.Due, reference)}
		overdue := e.Due.Before(reference)
		switch {
		case e.Type == Income && overdue:
			a.OverdueReceivable = append(a.OverdueReceivable, line)
		case e.Type == Income:
			a.UpcomingReceivable = append(a.UpcomingReceivable, line)
		case e.Type == Expense && overdue:
			a.OverduePayable = append(a.OverduePayable, line)
		default:
			a.UpcomingPayable = append(a.UpcomingPayable, line)
		}
	}
	return a
}

// Total sums the amounts of a set of aging lines.
func Total(lines []AgingLine) Money {
	var total Money
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total
}

// daysBetween returns the number of days from a to b (positive when b is
// after a).
func daysBetween(a, b Date) int {
	return int(b.time().Sub(a.time()).Hours() / 24)
}
