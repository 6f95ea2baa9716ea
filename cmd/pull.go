package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mfogaca/brokerage"
)

type pullCmd struct {
	url  string
	name string
}

func (*pullCmd) Name() string     { return "pull" }
func (*pullCmd) Synopsis() string { return "fetch a book from a hosted record store" }
func (*pullCmd) Usage() string {
	return `brk pull -url <address> [-name <book>]

  Fetches a book export from a hosted record store, reconciles approved sales
  missing their entries, and saves it in the books folder.
`
}

func (c *pullCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.url, "url", "", "Address of the JSON book export.")
	f.StringVar(&c.name, "name", "book", "Name to save the book under.")
}

func (c *pullCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.url == "" {
		fmt.Fprintln(os.Stderr, "Error: -url is required.")
		return subcommands.ExitUsageError
	}

	book, err := brokerage.Pull(c.url)
	if err != nil {
		return fail(err)
	}
	book.Rename(c.name)

	if emitted := book.Reconcile(); len(emitted) > 0 {
		fmt.Printf("Re-emitted %d entries for approved sales.\n", len(emitted))
	}

	if err := brokerage.SaveBook(*booksDir, book); err != nil {
		return fail(err)
	}
	fmt.Printf("Pulled book %q: %d entries.\n", book.Name(), book.Ledger().Len())
	return subcommands.ExitSuccess
}
