package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/mfogaca/brokerage"
)

// AgingMarkdown generates the markdown aging report: pending entries grouped
// by direction and lateness against the reference date. Empty groups are
// omitted entirely.
func AgingMarkdown(a *brokerage.Aging) string {
	r := &strings.Builder{}
	fmt.Fprintf(r, "# Aging on %s\n\n", a.Reference)

	printed := false
	printed = renderAgingSection(r, "Overdue receivables", a.OverdueReceivable, true) || printed
	printed = renderAgingSection(r, "Upcoming receivables", a.UpcomingReceivable, false) || printed
	printed = renderAgingSection(r, "Overdue payables", a.OverduePayable, true) || printed
	printed = renderAgingSection(r, "Upcoming payables", a.UpcomingPayable, false) || printed

	if !printed {
		fmt.Fprintf(r, "Nothing pending with a due date.\n")
	}
	return r.String()
}

// renderAgingSection prints one group of aging lines with its total, and
// reports whether anything was printed.
func renderAgingSection(w io.Writer, title string, lines []brokerage.AgingLine, overdue bool) bool {
	ConditionalBlock(w, func(w io.Writer) bool {
		fmt.Fprintf(w, "## %s\n\n", title)
		fmt.Fprintf(w, "| # | Due | Description | Party | Amount | Days |\n")
		fmt.Fprintf(w, "|--:|:---|:---|:---|---:|---:|\n")
		for _, l := range lines {
			days := l.DaysLate
			if !overdue {
				days = -days
			}
			fmt.Fprintf(w, "| %d | %s | %s | %s | %s | %d |\n",
				l.Index, l.Due, l.Description, l.Party, l.Amount, days)
		}
		fmt.Fprintf(w, "\nTotal: %s\n\n", brokerage.Total(lines))
		return len(lines) > 0
	})
	return len(lines) > 0
}
