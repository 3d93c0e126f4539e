package realestate

// defaultTaxRate is the yearly property tax rate applied when no tax amount is given.
const defaultTaxRate = 0.0111

// AcquisitionConfig holds the inputs of the purchase.
type AcquisitionConfig struct {
	PurchasePrice     float64 `json:"purchasePrice"`
	Downpayment       float64 `json:"downpayment"`
	AnnualRate        float64 `json:"annualRate"`
	Appreciation      float64 `json:"appreciation"` // yearly home value appreciation
	MonthlyHOA        float64 `json:"monthlyHOA"`
	YearlyInsurance   float64 `json:"yearlyInsurance"`
	YearlyTaxes       float64 `json:"yearlyTaxes"` // 0 means 1.11% of the purchase price
	MonthlyUtilities  float64 `json:"monthlyUtilities"`
	MortgageInsurance float64 `json:"mortgageInsurance"` // yearly, as a fraction of the loan
	TermYears         int     `json:"termYears"`
}

// Acquisition is the purchase phase: the mortgage and the recurring cost of owning.
type Acquisition struct {
	AcquisitionConfig
	LoanFees         float64   `json:"loanFees"`
	Principal        float64   `json:"principal"`
	Closing          float64   `json:"closing"`
	MonthlyTaxes     float64   `json:"monthlyTaxes"`
	MonthlyInsurance float64   `json:"monthlyInsurance"`
	OwningExpenses   float64   `json:"owningExpenses"` // monthly taxes, insurance, HOA, utilities and first month mortgage insurance
	MonthlyPI        float64   `json:"monthlyPI"`
	Loan             *Schedule `json:"loan"`
}

// NewAcquisition derives the purchase quantities and amortizes its mortgage.
func NewAcquisition(c AcquisitionConfig) (Acquisition, error) {
	v := validator{phase: "acquisition"}
	v.positive("purchasePrice", c.PurchasePrice)
	v.nonNegative("downpayment", c.Downpayment)
	if c.Downpayment > c.PurchasePrice {
		v.fail("downpayment", "%v exceeds the purchase price %v", c.Downpayment, c.PurchasePrice)
	}
	v.interest("annualRate", c.AnnualRate)
	v.growth("appreciation", c.Appreciation)
	v.nonNegative("monthlyHOA", c.MonthlyHOA)
	v.nonNegative("yearlyInsurance", c.YearlyInsurance)
	v.nonNegative("yearlyTaxes", c.YearlyTaxes)
	v.nonNegative("monthlyUtilities", c.MonthlyUtilities)
	v.fraction("mortgageInsurance", c.MortgageInsurance)
	if c.TermYears <= 0 {
		v.fail("termYears", "must be > 0, got %d", c.TermYears)
	}
	if v.err != nil {
		return Acquisition{}, v.err
	}

	a := Acquisition{AcquisitionConfig: c}
	if a.YearlyTaxes == 0 {
		a.YearlyTaxes = a.PurchasePrice * defaultTaxRate
	}
	a.LoanFees = 0.01 * a.PurchasePrice
	a.Principal = a.PurchasePrice - a.Downpayment + a.LoanFees
	a.Closing = 0.01 * a.PurchasePrice
	a.MonthlyTaxes = a.YearlyTaxes / MonthsPerYear
	a.MonthlyInsurance = a.YearlyInsurance / MonthsPerYear

	loan, err := NewSchedule(LoanTerms{
		AnnualRate:        a.AnnualRate,
		Principal:         a.Principal,
		Years:             a.TermYears,
		InsuranceFraction: a.MortgageInsurance,
		PropertyValue:     a.PurchasePrice,
		LoanFees:          a.LoanFees,
	})
	if err != nil {
		return Acquisition{}, err
	}
	a.Loan = loan
	a.MonthlyPI = loan.MonthlyPI()
	a.OwningExpenses = a.MonthlyTaxes + a.MonthlyInsurance + a.MonthlyHOA + a.MonthlyUtilities + loan.Month(1).Insurance
	return a, nil
}

// Summary lists the acquisition figures.
func (a Acquisition) Summary() Summary {
	return Summary{
		Title: "Acquisition",
		Prices: []Item{
			{"Down Payment", a.Downpayment},
			{"Loan Amount", a.Principal},
			{"Loan Points/Fees", a.LoanFees},
			{"Closing Costs", a.Closing},
			{"Monthly P&I", a.MonthlyPI},
			{"Owning Expenses", a.OwningExpenses},
		},
		Rates: []Item{
			{"Loan Interest Rate", a.AnnualRate},
			{"Home Value Appreciation", a.Appreciation},
		},
	}
}
