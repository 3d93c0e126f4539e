package realestate

// RehabConfig holds the inputs of the renovation phase.
type RehabConfig struct {
	Months           int     `json:"months"`
	TotalCost        float64 `json:"totalCost"`
	MonthlyInsurance float64 `json:"monthlyInsurance"`
	OtherCosts       float64 `json:"otherCosts"`
}

// Rehab is the renovation phase. It carries no loan of its own, the acquisition
// mortgage keeps running while the property is not rented.
type Rehab struct {
	RehabConfig
	MonthlyPI      float64 `json:"monthlyPI"`
	OwningExpenses float64 `json:"owningExpenses"`
	MonthlyRehab   float64 `json:"monthlyRehab"` // total cost times the rehab months over a year
	HoldingCost    float64 `json:"holdingCost"`  // P&I and owning expenses over the whole rehab
	MonthlyTotal   float64 `json:"monthlyTotal"`
}

// NewRehab derives the carrying cost of the renovation on top of the acquisition.
func NewRehab(c RehabConfig, acq Acquisition) (Rehab, error) {
	v := validator{phase: "rehab"}
	v.months("months", c.Months)
	v.nonNegative("totalCost", c.TotalCost)
	v.nonNegative("monthlyInsurance", c.MonthlyInsurance)
	v.nonNegative("otherCosts", c.OtherCosts)
	if c.Months == 0 && c.TotalCost > 0 {
		v.fail("months", "a rehab costing %v needs a duration", c.TotalCost)
	}
	if v.err != nil {
		return Rehab{}, v.err
	}

	r := Rehab{
		RehabConfig:    c,
		MonthlyPI:      acq.MonthlyPI,
		OwningExpenses: acq.OwningExpenses,
	}
	r.MonthlyRehab = r.TotalCost * float64(r.Months) / MonthsPerYear
	r.HoldingCost = (r.MonthlyPI + r.OwningExpenses) * float64(r.Months)
	r.MonthlyTotal = r.MonthlyRehab + r.OwningExpenses + r.MonthlyPI
	return r, nil
}

// Summary lists the rehab figures.
func (r Rehab) Summary() Summary {
	return Summary{
		Title: "Rehab",
		Prices: []Item{
			{"Rehab Cost", r.TotalCost},
			{"Holding Costs", r.HoldingCost},
			{"Monthly P&I", r.MonthlyPI},
			{"Owning Expenses", r.OwningExpenses},
			{"Monthly Total", r.MonthlyTotal},
		},
		Spans: []Span{{"Rehab Time", r.Months}},
	}
}
