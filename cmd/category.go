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

type categoryCmd struct {
	ctype  string
	parent string
}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "declare or list categories" }
func (*categoryCmd) Usage() string {
	return `brk category [-type income|expense] [-parent <name>] [<name>]

  Declares a category when a name is given, lists the declared categories
  otherwise. Categories form a forest through parent names; they remain
  advisory labels on entries.
`
}

func (c *categoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ctype, "type", "expense", "Category type, income or expense.")
	f.StringVar(&c.parent, "parent", "", "Parent category name, declared first.")
}

func (c *categoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := LoadBook()
	if err != nil {
		return fail(err)
	}

	if f.NArg() == 0 {
		printMarkdown(renderer.CategoriesMarkdown(book))
		return subcommands.ExitSuccess
	}

	ctype, err := brokerage.ParseEntryType(c.ctype)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	cat := brokerage.Category{Name: f.Arg(0), Type: ctype, Parent: c.parent}
	if err := book.DeclareCategory(cat); err != nil {
		return fail(err)
	}
	if err := StoreBook(book); err != nil {
		return fail(err)
	}

	fmt.Printf("Declared %s category %q\n", cat.Type, cat.Name)
	return subcommands.ExitSuccess
}
