package realestate

// RefinanceConfig holds the inputs of the cash-out refinance.
//
// Months is the number of months, from the purchase, during which the acquisition
// mortgage runs before being replaced by the refinance loan.
type RefinanceConfig struct {
	MonthlyRent       float64 `json:"monthlyRent"`
	HomeValue         float64 `json:"homeValue"` // appraised value after rehab
	Vacancy           float64 `json:"vacancy"`
	Repairs           float64 `json:"repairs"`
	Capex             float64 `json:"capex"`
	Months            int     `json:"months"`
	AnnualRate        float64 `json:"annualRate"`
	Appreciation      float64 `json:"appreciation"`
	RentAppreciation  float64 `json:"rentAppreciation"`
	OpexInflation     float64 `json:"opexInflation"`
	LoanFraction      float64 `json:"loanFraction"` // loan to value
	MortgageInsurance float64 `json:"mortgageInsurance"`
	TermYears         int     `json:"termYears"`
}

// Refinance is the rental period financed by the refinance loan.
type Refinance struct {
	RefinanceConfig
	Operating
	OwningExpenses float64   `json:"owningExpenses"`
	LoanFees       float64   `json:"loanFees"`
	Principal      float64   `json:"principal"`
	MonthlyPI      float64   `json:"monthlyPI"`
	Loan           *Schedule `json:"loan"`
}

// NewRefinance derives the refinance loan and its operating figures.
func NewRefinance(c RefinanceConfig, acq Acquisition) (Refinance, error) {
	v := validator{phase: "refinance"}
	v.rent(c.MonthlyRent, c.Vacancy, c.Repairs, c.Capex)
	v.positive("homeValue", c.HomeValue)
	v.months("months", c.Months)
	v.interest("annualRate", c.AnnualRate)
	v.growth("appreciation", c.Appreciation)
	v.growth("rentAppreciation", c.RentAppreciation)
	v.growth("opexInflation", c.OpexInflation)
	v.fraction("loanFraction", c.LoanFraction)
	v.fraction("mortgageInsurance", c.MortgageInsurance)
	if c.TermYears <= 0 {
		v.fail("termYears", "must be > 0, got %d", c.TermYears)
	}
	if v.err != nil {
		return Refinance{}, v.err
	}

	r := Refinance{RefinanceConfig: c, OwningExpenses: acq.OwningExpenses}
	r.LoanFees = 0.01 * r.HomeValue
	r.Principal = r.LoanFraction*r.HomeValue + r.LoanFees
	loan, err := NewSchedule(LoanTerms{
		AnnualRate:        r.AnnualRate,
		Principal:         r.Principal,
		Years:             r.TermYears,
		InsuranceFraction: r.MortgageInsurance,
		PropertyValue:     r.HomeValue,
		LoanFees:          r.LoanFees,
	})
	if err != nil {
		return Refinance{}, err
	}
	r.Loan = loan
	r.MonthlyPI = loan.MonthlyPI()
	r.Operating = operate(r.MonthlyRent, r.Vacancy, r.Repairs, r.Capex, r.OwningExpenses, r.MonthlyPI)
	return r, nil
}

// Summary lists the refinance figures.
func (r Refinance) Summary() Summary {
	return Summary{
		Title: "Refinance",
		Prices: []Item{
			{"Home Value", r.HomeValue},
			{"Loan Amount", r.Principal},
			{"Loan Points/Fees", r.LoanFees},
			{"Monthly P&I", r.MonthlyPI},
			{"Monthly Cashflow", r.MonthlyCashflow},
			{"NOI", r.NOI},
		},
		Rates: []Item{
			{"Loan Interest Rate", r.AnnualRate},
			{"Loan to Value", r.LoanFraction},
			{"Home Value Appreciation", r.Appreciation},
		},
		Spans: []Span{{"Months Before Refinance", r.Months}},
	}
}
