package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mfogaca/brokerage"
	md "github.com/nao1215/markdown"
)

// StatementMarkdown renders a statement to a markdown string: one table row
// per displayed entry, with the running balance column, followed by the
// period summary.
func StatementMarkdown(b *brokerage.Book, s *brokerage.Statement) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Statement of %s", b.Name()))
	if label := filterLabel(s.Filter); label != "" {
		doc.PlainText(fmt.Sprintf("Showing %s.", label))
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"#", "Date", "Description", "Category", "Status", "Amount", "Balance"},
		Rows:   [][]string{},
	}
	for _, row := range s.Rows {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", row.Index),
			row.Date.String(),
			row.Description,
			row.Category,
			string(row.Status),
			row.Signed().String(),
			row.Balance.String(),
		})
	}
	doc.Table(table)

	doc.H2("Period")
	summary := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Income", s.PeriodIncome.String()},
			{"Expense", s.PeriodExpense.String()},
			{"Delta", s.PeriodDelta().String()},
			{"Ending balance", s.PeriodEndingBalance.String()},
		},
	}
	doc.Table(summary)

	return doc.String()
}

// filterLabel describes the active filter in one short phrase, empty when the
// statement is unfiltered.
func filterLabel(f brokerage.Filter) string {
	var parts []string
	if f.Query != "" {
		parts = append(parts, fmt.Sprintf("entries matching %q", f.Query))
	}
	if f.Category != "" {
		parts = append(parts, fmt.Sprintf("category %q", f.Category))
	}
	if !f.Range.IsOpen() {
		parts = append(parts, fmt.Sprintf("period %s", f.Range))
	}
	return strings.Join(parts, ", ")
}
