package realestate

import "math"

// Alternative gathers the phases of the comparison strategy: keep renting, keep a
// job, and invest the cash in a margin-financed stock position.
type Alternative struct {
	Margin     Margin     `json:"margin"`
	Renter     Renter     `json:"renter"`
	Employment Employment `json:"employment"`
}

// CashRequired is the own cash put into the stock position.
func (a Alternative) CashRequired() float64 { return a.Margin.Downpayment }

// Summaries returns the phase summaries of the alternative strategy.
func (a Alternative) Summaries() []Summary {
	return []Summary{a.Margin.Summary(), a.Renter.Summary(), a.Employment.Summary()}
}

// AlternativeMetrics is one year of the alternative strategy projection.
type AlternativeMetrics struct {
	Year              int     `json:"year"`
	Month             int     `json:"month"`
	Income            float64 `json:"income"`
	OperatingExpenses float64 `json:"operatingExpenses"`
	RentPayment       float64 `json:"rentPayment"`
	LoanPayment       float64 `json:"loanPayment"`
	Contributions     float64 `json:"contributions"`
	Expenses          float64 `json:"expenses"`
	Cashflow          float64 `json:"cashflow"`
	CashOnCash        float64 `json:"cashOnCash"`
	StockValue        float64 `json:"stockValue"`
	LoanBalance       float64 `json:"loanBalance"`
	Returns
}

// StockValueAt returns the value of the position after y years: the initial stock
// value and the monthly contributions made so far, both compounding at the stock
// appreciation.
func (m Margin) StockValueAt(y int) float64 {
	lump := m.StockValue * compound(m.Appreciation, y)
	if m.MonthlyContribution == 0 || y <= 0 {
		return lump
	}
	n := float64(y * MonthsPerYear)
	i := math.Pow(1+m.Appreciation, 1.0/MonthsPerYear) - 1
	if i == 0 {
		return lump + m.MonthlyContribution*n
	}
	return lump + m.MonthlyContribution*(math.Pow(1+i, n)-1)/i
}

// ProjectAlternative rolls the alternative strategy up over the horizon, with the
// same equity and profit bookkeeping as Project.
func ProjectAlternative(a Alternative, years int) ([]AlternativeMetrics, error) {
	if years <= 0 {
		return nil, invalid("projection", "years", "must be > 0, got %d", years)
	}
	cash := a.CashRequired()
	metrics := make([]AlternativeMetrics, 0, years)
	state := newCarry(cash)
	for y := 0; y < years; y++ {
		m := a.year(y)
		m.CashOnCash = m.Cashflow / cash
		m.Returns, state = state.settle(m.StockValue-m.LoanBalance, m.Cashflow)
		metrics = append(metrics, m)
	}
	return metrics, nil
}

func (a Alternative) year(y int) AlternativeMetrics {
	m := AlternativeMetrics{Year: y, Month: y * MonthsPerYear}
	m.Income = a.Employment.MonthlyIncome * MonthsPerYear * compound(a.Employment.Growth, y)
	m.OperatingExpenses = a.Renter.MonthlyOpEx * MonthsPerYear * compound(a.Renter.OpexInflation, y)
	m.RentPayment = a.Renter.MonthlyRent * MonthsPerYear * compound(a.Renter.RentAppreciation, y)
	m.LoanPayment = a.Margin.Loan.Year(y).Payment
	// contributions of the twelve months leading to year y's valuation
	if y > 0 {
		m.Contributions = a.Margin.MonthlyContribution * MonthsPerYear
	}
	m.Expenses = m.OperatingExpenses + m.RentPayment + m.LoanPayment + m.Contributions
	m.Cashflow = m.Income - m.Expenses
	m.StockValue = a.Margin.StockValueAt(y)
	m.LoanBalance = a.Margin.Loan.ClosingBalance(y)
	return m
}
