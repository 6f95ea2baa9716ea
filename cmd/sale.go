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

type saleCmd struct{}

func (*saleCmd) Name() string     { return "sale" }
func (*saleCmd) Synopsis() string { return "show a sale and its commission breakdown" }
func (*saleCmd) Usage() string {
	return `brk sale <sale-id>

  Shows a sale with its stored commission breakdown.
`
}

func (*saleCmd) SetFlags(*flag.FlagSet) {}

func (c *saleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one sale id.")
		return subcommands.ExitUsageError
	}

	book, err := LoadBook()
	if err != nil {
		return fail(err)
	}
	sale, err := book.Sale(f.Arg(0))
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.SaleMarkdown(sale))
	return subcommands.ExitSuccess
}

type salesCmd struct {
	period string
	date   string
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list the sales of the book" }
func (*salesCmd) Usage() string {
	return `brk sales [-p <period>] [-d <date>]

  Lists the sales, optionally restricted to the period containing the date.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Predefined period (day, week, month, quarter, year). All time by default.")
	f.StringVar(&c.date, "d", brokerage.Today().String(), "Date inside the period.")
}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := LoadBook()
	if err != nil {
		return fail(err)
	}

	var r brokerage.Range
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
		r = period.Range(day)
	}

	printMarkdown(renderer.SalesMarkdown(book, r))
	return subcommands.ExitSuccess
}
