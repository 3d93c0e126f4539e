package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/rdodkins/realestate"
	"github.com/rs/zerolog/log"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	years  int
	table  string
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a yearly table as JSONL or CSV" }
func (*exportCmd) Usage() string {
	return `rei export [-table realestate|stocks] [-format jsonl|csv] [-o <file>] [-years <n>]

  Writes one of the yearly tables, one row per year. Amounts are rounded to
  four decimals. JSONL rows keep the column order of the table.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "years", 0, "Horizon in years. Defaults to the scenario's.")
	f.StringVar(&c.table, "table", "realestate", "Table to export: realestate or stocks.")
	f.StringVar(&c.format, "format", "jsonl", "Output format: jsonl or csv.")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to the standard output.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	format, err := realestate.ParseFormat(c.format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	r, err := runScenario(c.years)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	re, alt := r.Tables()
	var table *realestate.Table
	switch c.table {
	case "realestate":
		table = re
	case "stocks":
		if alt == nil {
			fmt.Fprintln(os.Stderr, "Error: the scenario has no alternative strategy")
			return subcommands.ExitFailure
		}
		table = alt
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown table %q, want realestate or stocks\n", c.table)
		return subcommands.ExitUsageError
	}

	encode := realestate.EncodeTable
	if format == "csv" {
		encode = realestate.EncodeTableCSV
	}
	write := func(w io.Writer) error { return encode(w, table) }

	if c.output == "" {
		err = write(stdout)
	} else {
		err = writeFile(c.output, write)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: writing %s: %v\n", table.Name, err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		log.Info().Str("file", c.output).Str("table", table.Name).Str("format", format).Msg("table exported")
	}
	return subcommands.ExitSuccess
}

// writeFile creates name and writes it with write. A failure to close the file is
// reported like a failure to write it.
func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
