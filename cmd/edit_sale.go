package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mfogaca/brokerage/renderer"
)

type editSaleCmd struct {
	saleFlags
}

func (*editSaleCmd) Name() string     { return "edit-sale" }
func (*editSaleCmd) Synopsis() string { return "replace a sale's commission inputs" }
func (*editSaleCmd) Usage() string {
	return `brk edit-sale -value <n> -pct <n> [-tax <n>] [-misc <n>] -split <n> <sale-id>

  Replaces the five commission inputs of a sale and recomputes its breakdown.
  Ledger entries already emitted for the sale are not touched.
`
}

func (c *editSaleCmd) SetFlags(f *flag.FlagSet) {
	c.saleFlags.set(f)
}

func (c *editSaleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one sale id.")
		return subcommands.ExitUsageError
	}

	book, err := LoadBook()
	if err != nil {
		return fail(err)
	}

	sale, err := book.UpdateSaleInputs(f.Arg(0), c.inputs())
	if err != nil {
		return fail(err)
	}
	if err := StoreBook(book); err != nil {
		return fail(err)
	}

	printMarkdown(renderer.SaleMarkdown(sale))
	return subcommands.ExitSuccess
}
