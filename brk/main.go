// Command brk manages a real-estate brokerage book: its sales, their
// commissions, and the financial ledger they feed.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/mfogaca/brokerage/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs, and exits, before any flag parsing.
	completion().Complete("brk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion declares the shell completion tree for brk.
func completion() *complete.Command {
	periods := predict.Set{"day", "week", "month", "quarter", "year"}
	global := map[string]complete.Predictor{
		"dir":  predict.Dirs("*"),
		"book": predict.Something,
	}

	return &complete.Command{
		Flags: global,
		Sub: map[string]*complete.Command{
			"add-sale":   {},
			"edit-sale":  {},
			"sale":       {},
			"sales":      {Flags: map[string]complete.Predictor{"p": periods}},
			"rm-sale":    {},
			"approve":    {},
			"cancel":     {},
			"reopen":     {},
			"income":     {},
			"expense":    {},
			"pay":        {},
			"rm-entry":   {},
			"statement":  {Flags: map[string]complete.Predictor{"p": periods}},
			"summary":    {Flags: map[string]complete.Predictor{"p": periods}},
			"aging":      {},
			"commission": {},
			"category":   {},
			"fmt":        {},
			"reconcile":  {},
			"pull":       {},
			"topic":      {},
			"assist":     {},
		},
	}
}
