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

type agingCmd struct {
	date string
}

func (*agingCmd) Name() string     { return "aging" }
func (*agingCmd) Synopsis() string { return "display pending entries by due date" }
func (*agingCmd) Usage() string {
	return `brk aging [-d <date>]

  Displays the pending entries split into receivables and payables, overdue
  and upcoming against the reference date. Entries without a due date are
  not listed.
`
}

func (c *agingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", brokerage.Today().String(), "Reference date.")
}

func (c *agingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := brokerage.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := LoadBook()
	if err != nil {
		return fail(err)
	}

	a := brokerage.NewAging(book.Ledger(), day)
	printMarkdown(renderer.AgingMarkdown(a))
	return subcommands.ExitSuccess
}
