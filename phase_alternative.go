package realestate

// MarginConfig holds the inputs of a margin-financed stock position.
type MarginConfig struct {
	StockValue          float64 `json:"stockValue"`
	Downpayment         float64 `json:"downpayment"` // own cash put into the position
	AnnualRate          float64 `json:"annualRate"`
	Appreciation        float64 `json:"appreciation"` // yearly stock return
	TermYears           int     `json:"termYears"`
	MonthlyContribution float64 `json:"monthlyContribution"`
}

// Margin mirrors Acquisition for a stock position: the margin loan is amortized
// like a mortgage, without mortgage insurance.
type Margin struct {
	MarginConfig
	LoanFees  float64   `json:"loanFees"`
	Principal float64   `json:"principal"`
	MonthlyPI float64   `json:"monthlyPI"`
	Loan      *Schedule `json:"loan"`
}

// NewMargin derives the margin loan of the stock position.
func NewMargin(c MarginConfig) (Margin, error) {
	v := validator{phase: "margin"}
	v.positive("stockValue", c.StockValue)
	v.positive("downpayment", c.Downpayment)
	if c.Downpayment > c.StockValue {
		v.fail("downpayment", "%v exceeds the stock value %v", c.Downpayment, c.StockValue)
	}
	v.interest("annualRate", c.AnnualRate)
	v.growth("appreciation", c.Appreciation)
	v.nonNegative("monthlyContribution", c.MonthlyContribution)
	if c.TermYears <= 0 {
		v.fail("termYears", "must be > 0, got %d", c.TermYears)
	}
	if v.err != nil {
		return Margin{}, v.err
	}

	m := Margin{MarginConfig: c}
	m.LoanFees = 0.01 * m.StockValue
	m.Principal = m.StockValue - m.Downpayment + m.LoanFees
	loan, err := NewSchedule(LoanTerms{
		AnnualRate:    m.AnnualRate,
		Principal:     m.Principal,
		Years:         m.TermYears,
		PropertyValue: m.StockValue,
		LoanFees:      m.LoanFees,
	})
	if err != nil {
		return Margin{}, err
	}
	m.Loan = loan
	m.MonthlyPI = loan.MonthlyPI()
	return m, nil
}

// Summary lists the margin position figures.
func (m Margin) Summary() Summary {
	return Summary{
		Title: "Margin",
		Prices: []Item{
			{"Stock Value", m.StockValue},
			{"Down Payment", m.Downpayment},
			{"Loan Amount", m.Principal},
			{"Monthly P&I", m.MonthlyPI},
			{"Monthly Contribution", m.MonthlyContribution},
		},
		Rates: []Item{
			{"Loan Interest Rate", m.AnnualRate},
			{"Stock Appreciation", m.Appreciation},
		},
	}
}

// RenterConfig holds the housing costs of renting instead of owning.
type RenterConfig struct {
	MonthlyRent      float64 `json:"monthlyRent"`
	MonthlyOpEx      float64 `json:"monthlyOpEx"`
	RentAppreciation float64 `json:"rentAppreciation"`
	OpexInflation    float64 `json:"opexInflation"`
}

// Renter is the expense side of the alternative strategy. It has no loan.
type Renter struct {
	RenterConfig
}

// NewRenter validates the renting costs.
func NewRenter(c RenterConfig) (Renter, error) {
	v := validator{phase: "renter"}
	v.nonNegative("monthlyRent", c.MonthlyRent)
	v.nonNegative("monthlyOpEx", c.MonthlyOpEx)
	v.growth("rentAppreciation", c.RentAppreciation)
	v.growth("opexInflation", c.OpexInflation)
	if v.err != nil {
		return Renter{}, v.err
	}
	return Renter{c}, nil
}

// Summary lists the renting figures.
func (r Renter) Summary() Summary {
	return Summary{
		Title: "Renter",
		Prices: []Item{
			{"Monthly Rent", r.MonthlyRent},
			{"Monthly OpEx", r.MonthlyOpEx},
		},
		Rates: []Item{
			{"Rent Appreciation", r.RentAppreciation},
			{"OpEx Inflation", r.OpexInflation},
		},
	}
}

// EmploymentConfig holds a monthly income stream.
type EmploymentConfig struct {
	MonthlyIncome float64 `json:"monthlyIncome"`
	Growth        float64 `json:"growth"` // yearly raise
}

// Employment is the income side of the alternative strategy.
type Employment struct {
	EmploymentConfig
}

// NewEmployment validates the income stream.
func NewEmployment(c EmploymentConfig) (Employment, error) {
	v := validator{phase: "employment"}
	v.nonNegative("monthlyIncome", c.MonthlyIncome)
	v.growth("growth", c.Growth)
	if v.err != nil {
		return Employment{}, v.err
	}
	return Employment{c}, nil
}

// Summary lists the income figures.
func (e Employment) Summary() Summary {
	return Summary{
		Title:  "Employment",
		Prices: []Item{{"Monthly Income", e.MonthlyIncome}},
		Rates:  []Item{{"Income Growth", e.Growth}},
	}
}
