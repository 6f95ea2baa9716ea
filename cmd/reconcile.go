package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type reconcileCmd struct{}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "re-emit missing entries of approved sales" }
func (*reconcileCmd) Usage() string {
	return `brk reconcile

  Finds approved sales with no ledger entry linked to them and re-emits their
  two entries. Repairs books edited by hand or synced from a remote store.
`
}

func (*reconcileCmd) SetFlags(*flag.FlagSet) {}

func (c *reconcileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := LoadBook()
	if err != nil {
		return fail(err)
	}

	emitted := book.Reconcile()
	if len(emitted) == 0 {
		fmt.Println("Nothing to reconcile.")
		return subcommands.ExitSuccess
	}

	if err := StoreBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Re-emitted %d entries.\n", len(emitted))
	return subcommands.ExitSuccess
}
