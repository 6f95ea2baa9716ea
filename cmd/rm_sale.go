package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmSaleCmd struct{}

func (*rmSaleCmd) Name() string     { return "rm-sale" }
func (*rmSaleCmd) Synopsis() string { return "delete a sale from the book" }
func (*rmSaleCmd) Usage() string {
	return `brk rm-sale <sale-id>

  Deletes a sale. Ledger entries it emitted are kept; remove them with
  rm-entry if the books should forget them too.
`
}

func (*rmSaleCmd) SetFlags(*flag.FlagSet) {}

func (c *rmSaleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one sale id.")
		return subcommands.ExitUsageError
	}

	book, err := LoadBook()
	if err != nil {
		return fail(err)
	}
	if err := book.RemoveSale(f.Arg(0)); err != nil {
		return fail(err)
	}
	if err := StoreBook(book); err != nil {
		return fail(err)
	}

	fmt.Printf("Removed sale %s from %s\n", f.Arg(0), book.Name())
	return subcommands.ExitSuccess
}
