package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mfogaca/brokerage"
	"github.com/mfogaca/brokerage/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date   string
	period string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the period dashboard" }
func (*summaryCmd) Usage() string {
	return `brk summary [-p <period>] [-d <date>]

  Displays the dashboard of the period: the sales card (counts, VGV and
  commission totals over approved sales) and the cashflow card.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", brokerage.Today().String(), "Date inside the period.")
	f.StringVar(&c.period, "p", "month", "Period (day, week, month, quarter, year).")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := brokerage.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	period, err := brokerage.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := LoadBook()
	if err != nil {
		return fail(err)
	}

	r := period.Range(day)
	cf := brokerage.NewCashflow(book.Ledger(), r)
	ss := brokerage.NewSalesSummary(book, r)
	printMarkdown(renderer.SummaryMarkdown(cf, ss))
	return subcommands.ExitSuccess
}
