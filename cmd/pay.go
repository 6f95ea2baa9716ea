package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type payCmd struct{}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "toggle an entry between paid and pending" }
func (*payCmd) Usage() string {
	return `brk pay <index>...

  Toggles the settlement status of ledger entries by their statement index.
  The toggle is reversible and never changes the running balance.
`
}

func (*payCmd) SetFlags(*flag.FlagSet) {}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: expected at least one entry index.")
		return subcommands.ExitUsageError
	}

	book, err := LoadBook()
	if err != nil {
		return fail(err)
	}

	for _, arg := range f.Args() {
		i, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid index %q\n", arg)
			return subcommands.ExitUsageError
		}
		e, err := book.Ledger().ToggleStatus(i)
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Entry %d is now %s: %s\n", i, e.Status, e.Description)
	}

	if err := StoreBook(book); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
