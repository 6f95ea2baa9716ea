package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mfogaca/brokerage"
)

// statusCmd transitions a sale to a target status. Approving is the
// transition that emits ledger entries.
type statusCmd struct {
	target   brokerage.SaleStatus
	name     string
	synopsis string
}

func newStatusCmd(target brokerage.SaleStatus, name, synopsis string) *statusCmd {
	return &statusCmd{target: target, name: name, synopsis: synopsis}
}

func (c *statusCmd) Name() string     { return c.name }
func (c *statusCmd) Synopsis() string { return c.synopsis }
func (c *statusCmd) Usage() string {
	return fmt.Sprintf(`brk %s <sale-id>...

  %s.
`, c.name, c.synopsis)
}

func (*statusCmd) SetFlags(*flag.FlagSet) {}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: expected at least one sale id.")
		return subcommands.ExitUsageError
	}

	book, err := LoadBook()
	if err != nil {
		return fail(err)
	}

	for _, id := range f.Args() {
		emitted, err := book.SetSaleStatus(id, c.target)
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Sale %s is now %s\n", id, c.target)
		for _, e := range emitted {
			fmt.Printf("  emitted %s %s: %s\n", e.Type, e.Amount, e.Description)
		}
	}

	if err := StoreBook(book); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
