package renderer

import (
	"bytes"
	"fmt"

	"github.com/mfogaca/brokerage"
	md "github.com/nao1215/markdown"
)

// SalesMarkdown renders the book's sales as a markdown table, newest last.
func SalesMarkdown(b *brokerage.Book, r brokerage.Range) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Sales of %s", b.Name()))
	if !r.IsOpen() {
		doc.PlainText(fmt.Sprintf("Showing %s.", r))
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"ID", "Date", "Unit", "Agent", "Status", "Unit value", "Gross", "Agent share"},
		Rows:   [][]string{},
	}
	for s := range b.Sales() {
		if !r.Contains(s.Date) {
			continue
		}
		table.Rows = append(table.Rows, []string{
			s.ID,
			s.Date.String(),
			s.Unit,
			s.Agent,
			string(s.Status),
			s.UnitValue.String(),
			s.GrossCommission.String(),
			s.AgentCommission.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// CategoriesMarkdown renders the declared categories, children indented under
// their parent.
func CategoriesMarkdown(b *brokerage.Book) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Categories")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Name", "Type", "Parent"},
		Rows:      [][]string{},
	}
	for c := range b.Categories() {
		table.Rows = append(table.Rows, []string{c.Name, string(c.Type), c.Parent})
	}
	doc.Table(table)

	return doc.String()
}
