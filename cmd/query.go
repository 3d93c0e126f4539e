package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// queryCmd holds the flags for the 'query' subcommand.
type queryCmd struct {
	years int
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate JSONPath expressions over the projection" }
func (*queryCmd) Usage() string {
	return `rei query [-years <n>] <jsonpath>...

  Evaluates each JSONPath expression over the result document and prints the
  answer as JSON, one per line. The document holds the scenario, the deal and
  alternative phases, the yearly projections and the comparison.

Usage Examples:
# Equity of the tenth year.
$ rei query '$.realEstate[9].equity'

# Monthly payment of the refinance loan.
$ rei query '$.deal.refinance.monthlyPI'

`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "years", 0, "Horizon in years. Defaults to the scenario's.")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing JSONPath expression")
		return subcommands.ExitUsageError
	}

	r, err := runScenario(c.years)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, path := range f.Args() {
		val, err := r.Query(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		out, err := json.Marshal(val)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "%s\n", out)
	}
	return subcommands.ExitSuccess
}
