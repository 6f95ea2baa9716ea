package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/mfogaca/brokerage"
)

// commissionCmd is the pure calculator: it never reads or writes a book.
type commissionCmd struct {
	saleFlags
}

func (*commissionCmd) Name() string     { return "commission" }
func (*commissionCmd) Synopsis() string { return "compute a commission breakdown" }
func (*commissionCmd) Usage() string {
	return `brk commission -value <n> -pct <n> [-tax <n>] [-misc <n>] -split <n>

  Computes the commission breakdown of a hypothetical sale. Values are
  rounded to the cent; the agency share is the remainder of the split.
`
}

func (c *commissionCmd) SetFlags(f *flag.FlagSet) {
	c.saleFlags.set(f)
}

func (c *commissionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := c.inputs()
	b := brokerage.Compute(in)

	md := fmt.Sprintf(`# Commission

| Line | Value |
|:---|---:|
| Unit value | %s |
| Gross commission | %s |
| Tax | %s |
| Misc deduction | %s |
| Net base | %s |
| Agent share | %s |
| Agency share | %s |
`, in.UnitValue, b.Gross, b.Tax.Neg(), in.MiscValue.Neg(), b.NetBase(), b.Agent, b.Agency)

	printMarkdown(md)
	return subcommands.ExitSuccess
}
