package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/google/subcommands"
)

type rmEntryCmd struct{}

func (*rmEntryCmd) Name() string     { return "rm-entry" }
func (*rmEntryCmd) Synopsis() string { return "delete ledger entries" }
func (*rmEntryCmd) Usage() string {
	return `brk rm-entry <index>...

  Deletes ledger entries by their statement index. Entries emitted by a sale
  can be deleted like any other, the sale itself is not touched.
`
}

func (*rmEntryCmd) SetFlags(*flag.FlagSet) {}

func (c *rmEntryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: expected at least one entry index.")
		return subcommands.ExitUsageError
	}

	var indices []int
	for _, arg := range f.Args() {
		i, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid index %q\n", arg)
			return subcommands.ExitUsageError
		}
		indices = append(indices, i)
	}
	// Delete from the end so earlier indices stay valid.
	sort.Sort(sort.Reverse(sort.IntSlice(indices)))

	book, err := LoadBook()
	if err != nil {
		return fail(err)
	}

	for _, i := range indices {
		e, err := book.Ledger().Remove(i)
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Removed entry %d: %s\n", i, e.Description)
	}

	if err := StoreBook(book); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
