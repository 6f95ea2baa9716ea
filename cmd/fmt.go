package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mfogaca/brokerage"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites book files in canonical form"
}
func (*fmtCmd) Usage() string {
	return `brk fmt

  Reads every book in the folder, validates its records, and writes them back
  in canonical order: categories first, then sales, then entries sorted by
  economic date. Use -book to format a single book.
`
}

func (*fmtCmd) SetFlags(*flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, err := brokerage.FindBooks(*booksDir, *bookName)
	if err != nil {
		return fail(err)
	}
	if len(books) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no books found to format.")
		return subcommands.ExitSuccess
	}

	for _, book := range books {
		fmt.Fprintf(os.Stderr, "Formatting book %q...\n", book.Name())
		if err := brokerage.SaveBook(*booksDir, book); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving book %q: %v\n", book.Name(), err)
			continue
		}
	}

	fmt.Fprintln(os.Stderr, "Done.")
	return subcommands.ExitSuccess
}
