package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rdodkins/realestate/renderer"
)

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	years  int
	asJSON bool
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare the deal with the alternative strategy" }
func (*compareCmd) Usage() string {
	return `rei compare [-years <n>] [-json]

  Sums up both strategies over the horizon: cash required, final equity,
  cumulative profit, return on the initial investment, cashflow statistics,
  break even year, and the year real estate overtakes the alternative.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "years", 0, "Horizon in years. Defaults to the scenario's.")
	f.BoolVar(&c.asJSON, "json", false, "Print the comparison as JSON.")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := runScenario(c.years)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	comparison, err := r.Compare()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(comparison); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	re, _ := r.Tables()
	printMarkdown(renderer.RenderComparison(renderer.NewComparison(comparison, re.Labels)))
	return subcommands.ExitSuccess
}
