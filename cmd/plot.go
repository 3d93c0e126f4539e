package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/rdodkins/realestate/plot"
	"github.com/rs/zerolog/log"
)

// plotCmd holds the flags for the 'plot' subcommand.
type plotCmd struct {
	years  int
	pairs  string
	dir    string
	width  int
	height int
}

func (*plotCmd) Name() string     { return "plot" }
func (*plotCmd) Synopsis() string { return "chart real-estate columns against alternative ones" }
func (*plotCmd) Usage() string {
	return `rei plot [-pairs <pairs>] [-dir <folder>] [-years <n>]

  Writes one PNG line chart per pair of columns. A pair is either a column
  name, plotted for both strategies, or "label=realestate column:stocks column".
  Pairs are separated by semicolons.

Usage Examples:
# Equity, and the value of the house against the value of the stocks.
$ rei plot -pairs "Equity;Asset Value=Property Value:Stock Value" -dir charts

`
}

func (c *plotCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "years", 0, "Horizon in years. Defaults to the scenario's.")
	f.StringVar(&c.pairs, "pairs", "", "Semicolon separated column pairs. Defaults to equity, profit, cashflow, asset value and return.")
	f.StringVar(&c.dir, "dir", ".", "Folder where the charts are written.")
	f.IntVar(&c.width, "width", plot.DefaultOptions.Width, "Chart width in pixels.")
	f.IntVar(&c.height, "height", plot.DefaultOptions.Height, "Chart height in pixels.")
}

func (c *plotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pairs := plot.DefaultPairs
	if c.pairs != "" {
		var err error
		if pairs, err = plot.ParsePairs(c.pairs); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	r, err := runScenario(c.years)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	re, alt := r.Tables()

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	opts := plot.Options{Width: c.width, Height: c.height}
	for _, p := range pairs {
		png, err := plot.Render(re, alt, p, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		name := filepath.Join(c.dir, p.FileName())
		if err := os.WriteFile(name, png, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		log.Info().Str("file", name).Str("pair", p.Label).Msg("chart written")
		fmt.Fprintln(stdout, name)
	}
	return subcommands.ExitSuccess
}
