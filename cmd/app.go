// Package cmd implements the CLI application to manage a brokerage book.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/mfogaca/brokerage"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to declare subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addSaleCmd{}, "sales")
	c.Register(&editSaleCmd{}, "sales")
	c.Register(&saleCmd{}, "sales")
	c.Register(&salesCmd{}, "sales")
	c.Register(&rmSaleCmd{}, "sales")
	c.Register(newStatusCmd(brokerage.SaleApproved, "approve", "approve a sale, emitting its ledger entries"), "sales")
	c.Register(newStatusCmd(brokerage.SaleCancelled, "cancel", "cancel a sale"), "sales")
	c.Register(newStatusCmd(brokerage.SalePending, "reopen", "put a sale back to pending"), "sales")

	c.Register(newEntryCmd(brokerage.Income, "income", "record an income entry"), "ledger")
	c.Register(newEntryCmd(brokerage.Expense, "expense", "record an expense entry"), "ledger")
	c.Register(&payCmd{}, "ledger")
	c.Register(&rmEntryCmd{}, "ledger")

	c.Register(&statementCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&agingCmd{}, "reports")
	c.Register(&commissionCmd{}, "reports")

	c.Register(&categoryCmd{}, "book")
	c.Register(&fmtCmd{}, "book")
	c.Register(&reconcileCmd{}, "book")
	c.Register(&pullCmd{}, "book")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// As a CLI application it is very short lived, so global flags are fine.

var booksDir = flag.String("dir", ".", "Path to the folder holding the book files")
var bookName = flag.String("book", "", "Book to operate on. Defaults to the only book if one exists.")

// LoadBook loads the selected book from the books folder. An empty folder
// with no selection yields a fresh book.
func LoadBook() (*brokerage.Book, error) {
	return brokerage.FindBook(*booksDir, *bookName)
}

// StoreBook writes the book back to the books folder.
func StoreBook(b *brokerage.Book) error {
	return brokerage.SaveBook(*booksDir, b)
}

// fail prints the error and converts it to the exit status, the single way
// subcommands report failures here.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
