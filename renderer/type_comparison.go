package renderer

import (
	"github.com/rdodkins/realestate"
)

// Comparison is a struct to represent a comparison of strategies for rendering.
type Comparison struct {
	Years          int       `json:"years"`
	Outcomes       []Outcome `json:"outcomes"`
	HasAlternative bool      `json:"hasAlternative"`
	Overtake       string    `json:"overtake,omitempty"` // label of the year real estate takes the lead
}

// Outcome holds the summed up figures of one strategy.
type Outcome struct {
	Name               string             `json:"name"`
	CashRequired       realestate.Money   `json:"cashRequired"`
	FinalEquity        realestate.Money   `json:"finalEquity"`
	CumulativeProfit   realestate.Money   `json:"cumulativeProfit"`
	ReturnOnInvestment realestate.Percent `json:"returnOnInvestment"`
	MeanCashflow       realestate.Money   `json:"meanCashflow"`
	MinCashflow        realestate.Money   `json:"minCashflow"`
	MaxCashflow        realestate.Money   `json:"maxCashflow"`
	BreakEven          string             `json:"breakEven"`
}

// label returns the label of year y, or "never" when y is negative.
func label(labels []string, y int) string {
	if y < 0 || y >= len(labels) {
		return "never"
	}
	return labels[y]
}

func newOutcome(o realestate.Outcome, labels []string) Outcome {
	return Outcome{
		Name:               o.Name,
		CashRequired:       realestate.USD(o.CashRequired),
		FinalEquity:        realestate.USD(o.FinalEquity),
		CumulativeProfit:   realestate.USD(o.CumulativeProfit),
		ReturnOnInvestment: realestate.Pct(o.ReturnOnInvestment),
		MeanCashflow:       realestate.USD(o.MeanCashflow),
		MinCashflow:        realestate.USD(o.MinCashflow),
		MaxCashflow:        realestate.USD(o.MaxCashflow),
		BreakEven:          label(labels, o.BreakEvenYear),
	}
}

// NewComparison converts a comparison for rendering. Years are named after labels.
func NewComparison(c realestate.Comparison, labels []string) *Comparison {
	r := &Comparison{
		Years:          c.Years,
		Outcomes:       []Outcome{newOutcome(c.RealEstate, labels)},
		HasAlternative: c.HasAlternative,
	}
	if c.HasAlternative {
		r.Outcomes = append(r.Outcomes, newOutcome(c.Alternative, labels))
		if c.OvertakeYear >= 0 {
			r.Overtake = label(labels, c.OvertakeYear)
		}
	}
	return r
}
