package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rdodkins/realestate"
	"github.com/rdodkins/realestate/renderer"
)

// loans names the loans of a scenario.
var loans = []string{"acquisition", "refinance", "margin"}

// amortizeCmd holds the flags for the 'amortize' subcommand.
type amortizeCmd struct {
	loan      string
	monthly   bool
	principal float64
	rate      float64
	term      int
	insurance float64
}

func (*amortizeCmd) Name() string     { return "amortize" }
func (*amortizeCmd) Synopsis() string { return "display the amortization schedule of a loan" }
func (*amortizeCmd) Usage() string {
	return `rei amortize [-loan acquisition|refinance|margin] [-monthly]
rei amortize -principal <amount> -rate <fraction> -term <years> [-insurance <fraction>] [-monthly]

  Displays the amortization schedule of one of the scenario's loans, or of a
  loan described by the flags when -principal is set.

Usage Examples:
# The refinance loan, month by month.
$ rei amortize -loan refinance -monthly

# A standalone loan of $180,000 at 6.5% over 30 years.
$ rei amortize -principal 180000 -rate 0.065 -term 30

`
}

func (c *amortizeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.loan, "loan", "acquisition", "Scenario loan to display: acquisition, refinance or margin.")
	f.BoolVar(&c.monthly, "monthly", false, "Display every month instead of every year.")
	f.Float64Var(&c.principal, "principal", 0, "Principal of a standalone loan.")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate of a standalone loan, as a fraction.")
	f.IntVar(&c.term, "term", 30, "Term in years of a standalone loan.")
	f.Float64Var(&c.insurance, "insurance", 0, "Yearly mortgage insurance of a standalone loan, as a fraction of the principal.")
}

// schedule returns the loan selected by the flags.
func (c *amortizeCmd) schedule() (*realestate.Schedule, error) {
	if c.principal != 0 {
		return realestate.NewSchedule(realestate.LoanTerms{
			AnnualRate:        c.rate,
			Principal:         c.principal,
			Years:             c.term,
			InsuranceFraction: c.insurance,
		})
	}

	s, err := loadScenario()
	if err != nil {
		return nil, err
	}
	switch c.loan {
	case "acquisition":
		acq, err := realestate.NewAcquisition(s.Acquisition)
		if err != nil {
			return nil, err
		}
		return acq.Loan, nil
	case "refinance":
		d, err := s.BuildDeal()
		if err != nil {
			return nil, err
		}
		return d.Refinance.Loan, nil
	case "margin":
		alt, err := s.BuildAlternative()
		if err != nil {
			return nil, err
		}
		if alt == nil {
			return nil, fmt.Errorf("the scenario has no alternative strategy")
		}
		return alt.Margin.Loan, nil
	default:
		return nil, fmt.Errorf("unknown loan %q, want one of %v", c.loan, loans)
	}
}

func (c *amortizeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := c.schedule()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ScheduleMarkdown(s, c.monthly))
	return subcommands.ExitSuccess
}
