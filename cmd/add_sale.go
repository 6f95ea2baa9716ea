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

// saleFlags are the commission input flags shared by add-sale and edit-sale.
type saleFlags struct {
	value float64
	pct   float64
	tax   float64
	misc  float64
	split float64
}

func (s *saleFlags) set(f *flag.FlagSet) {
	f.Float64Var(&s.value, "value", 0, "Unit (property) value.")
	f.Float64Var(&s.pct, "pct", 0, "Commission percentage over the unit value.")
	f.Float64Var(&s.tax, "tax", 0, "Tax percentage over the gross commission.")
	f.Float64Var(&s.misc, "misc", 0, "Flat miscellaneous deduction.")
	f.Float64Var(&s.split, "split", 0, "Agent's percentage of the net base.")
}

func (s *saleFlags) inputs() brokerage.CommissionInputs {
	return brokerage.CommissionInputs{
		UnitValue:     brokerage.BRL(s.value),
		CommissionPct: brokerage.P(s.pct),
		TaxPct:        brokerage.P(s.tax),
		MiscValue:     brokerage.BRL(s.misc),
		AgentSplitPct: brokerage.P(s.split),
	}
}

type addSaleCmd struct {
	id       string
	date     string
	unit     string
	agent    string
	miscNote string
	saleFlags
}

func (*addSaleCmd) Name() string     { return "add-sale" }
func (*addSaleCmd) Synopsis() string { return "record a new sale" }
func (*addSaleCmd) Usage() string {
	return `brk add-sale -unit <label> -agent <name> -value <n> -pct <n> [-tax <n>] [-misc <n> -misc-note <text>] -split <n> [-d <date>] [-id <id>]

  Records a pending sale with its commission breakdown computed and stored.
`
}

func (c *addSaleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Sale id. Defaults to the next free S-number.")
	f.StringVar(&c.date, "d", brokerage.Today().String(), "Economic date of the sale.")
	f.StringVar(&c.unit, "unit", "", "Unit (property) label.")
	f.StringVar(&c.agent, "agent", "", "Agent who closed the sale.")
	f.StringVar(&c.miscNote, "misc-note", "", "Rationale of the miscellaneous deduction.")
	c.saleFlags.set(f)
}

func (c *addSaleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := brokerage.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := LoadBook()
	if err != nil {
		return fail(err)
	}

	id := c.id
	if id == "" {
		id = book.NextSaleID()
	}

	sale := brokerage.NewSale(id, day, c.unit, c.agent, c.inputs())
	sale.MiscNote = c.miscNote
	if err := book.AddSale(sale); err != nil {
		return fail(err)
	}
	if err := StoreBook(book); err != nil {
		return fail(err)
	}

	printMarkdown(renderer.SaleMarkdown(&sale))
	return subcommands.ExitSuccess
}
