package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rdodkins/realestate/renderer"
)

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	years   int
	columns string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the deal and its alternative year by year" }
func (*projectCmd) Usage() string {
	return `rei project [-years <n>] [-columns <name,name,...>]

  Displays the phase summaries, the yearly real-estate and alternative tables,
  and the comparison of both strategies.

Usage Examples:
# Project the default scenario over 10 years, showing only two columns.
$ rei project -years 10 -columns "Equity,Cumulative Profit"

`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "years", 0, "Horizon in years. Defaults to the scenario's.")
	f.StringVar(&c.columns, "columns", "", "Comma separated list of columns to display. All by default.")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := runScenario(c.years)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	md, err := renderer.ReportMarkdown(r, splitList(c.columns))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
