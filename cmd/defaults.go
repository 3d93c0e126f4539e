package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rdodkins/realestate"
)

// defaultsCmd holds the flags for the 'defaults' subcommand.
type defaultsCmd struct {
	builtin bool
}

func (*defaultsCmd) Name() string     { return "defaults" }
func (*defaultsCmd) Synopsis() string { return "print the effective scenario as JSON" }
func (*defaultsCmd) Usage() string {
	return `rei defaults [-builtin]

  Prints the scenario the other commands would run: the built-in defaults
  overlaid with the -scenario file, if any. The output is a valid scenario
  file, a good starting point to describe a new deal.

Usage Examples:
# Start a new scenario from the defaults.
$ rei defaults -builtin > deal.json

`
}

func (c *defaultsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.builtin, "builtin", false, "Ignore the scenario file and print the built-in defaults.")
}

func (c *defaultsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := realestate.DefaultScenario()
	if !c.builtin {
		var err error
		if s, err = loadScenario(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if err := realestate.EncodeScenario(stdout, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
