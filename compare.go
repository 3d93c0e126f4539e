package realestate

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Outcome sums up one strategy over the whole horizon.
type Outcome struct {
	Name               string  `json:"name"`
	CashRequired       float64 `json:"cashRequired"`
	FinalEquity        float64 `json:"finalEquity"`
	CumulativeProfit   float64 `json:"cumulativeProfit"`
	ReturnOnInvestment float64 `json:"returnOnInvestment"`
	MeanCashflow       float64 `json:"meanCashflow"`
	MinCashflow        float64 `json:"minCashflow"`
	MaxCashflow        float64 `json:"maxCashflow"`
	BreakEvenYear      int     `json:"breakEvenYear"` // first year with a positive cumulative profit, -1 if never
}

// newOutcome reads the outcome of a projected table.
func newOutcome(t *Table, cash float64) (Outcome, error) {
	o := Outcome{Name: t.Name, CashRequired: cash, BreakEvenYear: -1}
	if t.Len() == 0 {
		return o, nil
	}
	equity, err := t.MustColumn(ColEquity)
	if err != nil {
		return o, err
	}
	cumulative, err := t.MustColumn(ColCumulativeProfit)
	if err != nil {
		return o, err
	}
	roi, err := t.MustColumn(ColReturnOnInvestment)
	if err != nil {
		return o, err
	}
	cashflow, err := t.MustColumn(ColCashflow)
	if err != nil {
		return o, err
	}

	last := t.Len() - 1
	o.FinalEquity = equity[last]
	o.CumulativeProfit = cumulative[last]
	o.ReturnOnInvestment = roi[last]
	o.MeanCashflow = stat.Mean(cashflow, nil)
	o.MinCashflow = floats.Min(cashflow)
	o.MaxCashflow = floats.Max(cashflow)
	for y, p := range cumulative {
		if p > 0 {
			o.BreakEvenYear = y
			break
		}
	}
	return o, nil
}

// Comparison puts both strategies side by side.
type Comparison struct {
	Years          int     `json:"years"`
	RealEstate     Outcome `json:"realEstate"`
	Alternative    Outcome `json:"alternative"`
	HasAlternative bool    `json:"hasAlternative"`
	// OvertakeYear is the first year the real-estate cumulative profit exceeds the
	// alternative one, -1 if it never does.
	OvertakeYear int `json:"overtakeYear"`
}

// Compare sums up the result of a scenario.
func (r *Result) Compare() (Comparison, error) {
	re, alt := r.Tables()
	c := Comparison{Years: r.Scenario.Years, OvertakeYear: -1}
	var err error
	if c.RealEstate, err = newOutcome(re, r.Deal.CashRequired()); err != nil {
		return c, err
	}
	if alt == nil {
		return c, nil
	}
	c.HasAlternative = true
	if c.Alternative, err = newOutcome(alt, r.Alternative.CashRequired()); err != nil {
		return c, err
	}

	left, _ := re.Column(ColCumulativeProfit)
	right, _ := alt.Column(ColCumulativeProfit)
	diff := make([]float64, min(len(left), len(right)))
	floats.SubTo(diff, left[:len(diff)], right[:len(diff)])
	for y, d := range diff {
		if d > 0 {
			c.OvertakeYear = y
			break
		}
	}
	return c, nil
}
