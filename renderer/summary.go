package renderer

import (
	"bytes"
	"fmt"

	"github.com/mfogaca/brokerage"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the dashboard: the sales card and the cashflow card
// for a period.
func SummaryMarkdown(cf brokerage.Cashflow, ss brokerage.SalesSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Summary for %s", cf.Range))

	doc.H2("Sales")
	sales := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Approved", fmt.Sprintf("%d", ss.Approved)},
			{"Pending", fmt.Sprintf("%d", ss.Pending)},
			{"Cancelled", fmt.Sprintf("%d", ss.Cancelled)},
			{"VGV", ss.VGV.String()},
			{"Gross commission", ss.GrossCommission.String()},
			{"Agency commission", ss.AgencyCommission.String()},
			{"Agent commission", ss.AgentCommission.String()},
		},
	}
	doc.Table(sales)

	doc.H2("Cashflow")
	flow := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Received", cf.Received.String()},
			{"To receive", cf.ToReceive.String()},
			{"Paid", cf.Paid.String()},
			{"To pay", cf.ToPay.String()},
		},
	}
	doc.Table(flow)

	return doc.String()
}

// SaleMarkdown renders a single sale with its commission breakdown.
func SaleMarkdown(s *brokerage.Sale) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Sale %s", s.ID))
	doc.PlainText(fmt.Sprintf("%s, sold by %s on %s (%s).", s.Unit, s.Agent, s.Date, s.Status))

	b := s.Breakdown()
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Line", "Value"},
		Rows: [][]string{
			{"Unit value", s.UnitValue.String()},
			{fmt.Sprintf("Gross commission (%s)", s.CommissionPct), b.Gross.String()},
			{fmt.Sprintf("Tax (%s)", s.TaxPct), b.Tax.Neg().String()},
			{"Misc deduction", s.MiscValue.Neg().String()},
			{"Net base", b.NetBase().String()},
			{fmt.Sprintf("Agent share (%s)", s.AgentSplitPct), b.Agent.String()},
			{"Agency share", b.Agency.String()},
		},
	}
	doc.Table(table)

	if s.MiscNote != "" {
		doc.PlainText(fmt.Sprintf("Misc: %s", s.MiscNote))
	}
	return doc.String()
}
