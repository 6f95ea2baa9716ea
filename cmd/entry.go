package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/mfogaca/brokerage"
)

// entryCmd records one ledger entry; the same command serves income and
// expense under two registered names.
type entryCmd struct {
	etype    brokerage.EntryType
	name     string
	synopsis string

	amount   float64
	date     string
	due      string
	category string
	party    string
	account  string
	method   string
	pending  bool
}

func newEntryCmd(etype brokerage.EntryType, name, synopsis string) *entryCmd {
	return &entryCmd{etype: etype, name: name, synopsis: synopsis}
}

func (c *entryCmd) Name() string     { return c.name }
func (c *entryCmd) Synopsis() string { return c.synopsis }
func (c *entryCmd) Usage() string {
	return fmt.Sprintf(`brk %s -a <amount> [-d <date>] [-due <date>] [-c <category>] [-party <name>] [-pending] <description>

  %s. The amount is always positive, the entry type carries the sign.
`, c.name, c.synopsis)
}

func (c *entryCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "a", 0, "Entry amount, positive.")
	f.StringVar(&c.date, "d", brokerage.Today().String(), "Economic date of the entry.")
	f.StringVar(&c.due, "due", "", "Due date, used by the aging report.")
	f.StringVar(&c.category, "c", "", "Category name.")
	f.StringVar(&c.party, "party", "", "Related party.")
	f.StringVar(&c.account, "account", "", "Bank account reference.")
	f.StringVar(&c.method, "method", "", "Payment method reference.")
	f.BoolVar(&c.pending, "pending", false, "Record the entry as pending instead of paid.")
}

func (c *entryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: expected a description.")
		return subcommands.ExitUsageError
	}

	day, err := brokerage.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	var due brokerage.Date
	if c.due != "" {
		due, err = brokerage.ParseDate(c.due)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing due date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	status := brokerage.Paid
	if c.pending {
		status = brokerage.Pending
	}
	e := brokerage.Entry{
		Description: strings.Join(f.Args(), " "),
		Type:        c.etype,
		Amount:      brokerage.BRL(c.amount),
		Date:        day,
		Due:         due,
		Status:      status,
		Category:    c.category,
		Party:       c.party,
		Account:     c.account,
		Method:      c.method,
	}
	if err := e.Validate(); err != nil {
		return fail(err)
	}

	book, err := LoadBook()
	if err != nil {
		return fail(err)
	}
	book.Ledger().Append(e)
	if err := StoreBook(book); err != nil {
		return fail(err)
	}

	fmt.Printf("Recorded %s %s: %s\n", c.etype, e.Amount, e.Description)
	return subcommands.ExitSuccess
}
