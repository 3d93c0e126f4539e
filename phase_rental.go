package realestate

// Operating holds the monthly operating figures of a rented property.
type Operating struct {
	MonthlyVacancy  float64 `json:"monthlyVacancy"`
	MonthlyRepairs  float64 `json:"monthlyRepairs"`
	MonthlyCapex    float64 `json:"monthlyCapex"`
	MonthlyOpEx     float64 `json:"monthlyOpEx"`     // vacancy, repairs, capex and owning expenses, without P&I
	MonthlyExpenses float64 `json:"monthlyExpenses"` // OpEx and P&I
	MonthlyCashflow float64 `json:"monthlyCashflow"`
	NOI             float64 `json:"noi"` // yearly net operating income
}

// operate derives the operating figures from the rent and its expense fractions.
func operate(rent, vacancy, repairs, capex, owning, pi float64) Operating {
	o := Operating{
		MonthlyVacancy: rent * vacancy,
		MonthlyRepairs: rent * repairs,
		MonthlyCapex:   rent * capex,
	}
	o.MonthlyOpEx = o.MonthlyVacancy + o.MonthlyCapex + owning + o.MonthlyRepairs
	o.MonthlyExpenses = o.MonthlyOpEx + pi
	o.MonthlyCashflow = rent - o.MonthlyExpenses
	o.NOI = (o.MonthlyCashflow + pi) * MonthsPerYear
	return o
}

// rent checks the rent and its expense fractions.
func (v *validator) rent(rent, vacancy, repairs, capex float64) {
	v.nonNegative("monthlyRent", rent)
	v.fraction("vacancy", vacancy)
	v.fraction("repairs", repairs)
	v.fraction("capex", capex)
	if rent == 0 && vacancy+repairs+capex > 0 {
		v.fail("monthlyRent", "is zero but expense fractions are not")
	}
}

// RentalConfig holds the inputs of the rental period before the refinance.
type RentalConfig struct {
	MonthlyRent      float64 `json:"monthlyRent"`
	Vacancy          float64 `json:"vacancy"` // fraction of the rent
	Repairs          float64 `json:"repairs"` // fraction of the rent
	Capex            float64 `json:"capex"`   // fraction of the rent
	Months           int     `json:"months"`
	RentAppreciation float64 `json:"rentAppreciation"`
	OpexInflation    float64 `json:"opexInflation"`
}

// PreRefiRent is the rental period financed by the acquisition mortgage.
type PreRefiRent struct {
	RentalConfig
	Operating
	OwningExpenses float64 `json:"owningExpenses"`
	MonthlyPI      float64 `json:"monthlyPI"`
}

// NewPreRefiRent derives the operating figures of the initial rental period.
func NewPreRefiRent(c RentalConfig, acq Acquisition) (PreRefiRent, error) {
	v := validator{phase: "rental"}
	v.rent(c.MonthlyRent, c.Vacancy, c.Repairs, c.Capex)
	v.months("months", c.Months)
	v.growth("rentAppreciation", c.RentAppreciation)
	v.growth("opexInflation", c.OpexInflation)
	if v.err != nil {
		return PreRefiRent{}, v.err
	}
	return PreRefiRent{
		RentalConfig:   c,
		Operating:      operate(c.MonthlyRent, c.Vacancy, c.Repairs, c.Capex, acq.OwningExpenses, acq.MonthlyPI),
		OwningExpenses: acq.OwningExpenses,
		MonthlyPI:      acq.MonthlyPI,
	}, nil
}

// Summary lists the initial rental figures.
func (p PreRefiRent) Summary() Summary {
	return Summary{
		Title: "Initial Rental Period",
		Prices: []Item{
			{"Monthly Income", p.MonthlyRent},
			{"Monthly Expenses", p.MonthlyExpenses},
			{"Monthly Cashflow", p.MonthlyCashflow},
			{"NOI", p.NOI},
		},
		Rates: []Item{
			{"Rent Appreciation", p.RentAppreciation},
			{"OpEx Inflation", p.OpexInflation},
		},
		Spans: []Span{{"Rental Time", p.Months}},
	}
}
