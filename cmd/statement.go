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

type statementCmd struct {
	query    string
	category string
	from     string
	to       string
	period   string
	date     string
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "display the ledger with its running balance" }
func (*statementCmd) Usage() string {
	return `brk statement [-q <text>] [-c <category>] [-from <date>] [-to <date>] [-p <period> [-d <date>]]

  Displays the ledger entries with the running balance column. Filters only
  select the displayed rows; balances are always those of the full ledger.
`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Case-insensitive text match on descriptions.")
	f.StringVar(&c.category, "c", "", "Exact category name.")
	f.StringVar(&c.from, "from", "", "Start date, inclusive.")
	f.StringVar(&c.to, "to", "", "End date, inclusive.")
	f.StringVar(&c.period, "p", "", "Predefined period (day, week, month, quarter, year). Overrides -from/-to.")
	f.StringVar(&c.date, "d", brokerage.Today().String(), "Date inside the period for -p.")
}

func (c *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter := brokerage.Filter{Query: c.query, Category: c.category}

	if c.period != "" {
		period, err := brokerage.ParsePeriod(c.period)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
			return subcommands.ExitUsageError
		}
		day, err := brokerage.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		filter.Range = period.Range(day)
	} else {
		var from, to brokerage.Date
		var err error
		if c.from != "" {
			if from, err = brokerage.ParseDate(c.from); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		if c.to != "" {
			if to, err = brokerage.ParseDate(c.to); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		filter.Range = brokerage.NewRange(from, to)
	}

	book, err := LoadBook()
	if err != nil {
		return fail(err)
	}

	st := brokerage.NewStatement(book.Ledger(), filter)
	printMarkdown(renderer.StatementMarkdown(book, st))
	return subcommands.ExitSuccess
}
