package realestate

import "math"

// Deal gathers the phases of a buy, rehab, rent and refinance investment.
type Deal struct {
	Acquisition Acquisition `json:"acquisition"`
	Rehab       Rehab       `json:"rehab"`
	Rental      PreRefiRent `json:"rental"`
	Refinance   Refinance   `json:"refinance"`
}

// CashRequired is the cash invested upfront: down payment, rehab and closing costs.
func (d Deal) CashRequired() float64 {
	return d.Acquisition.Downpayment + d.Rehab.TotalCost + d.Acquisition.Closing
}

// Summaries returns the phase summaries in chronological order.
func (d Deal) Summaries() []Summary {
	return []Summary{d.Acquisition.Summary(), d.Rehab.Summary(), d.Rental.Summary(), d.Refinance.Summary()}
}

// Returns holds the equity and profit figures shared by both strategies.
type Returns struct {
	Equity             float64 `json:"equity"`
	EquityGain         float64 `json:"equityGain"`
	AnnualProfit       float64 `json:"annualProfit"`
	ReturnOnEquity     float64 `json:"returnOnEquity"`
	CumulativeProfit   float64 `json:"cumulativeProfit"`
	ReturnOnInvestment float64 `json:"returnOnInvestment"`
}

// carry is the running state folded from one year into the next. It starts with
// the cash invested standing for the equity of the year before the first one.
type carry struct {
	basis      float64
	equity     float64
	cumulative float64
}

func newCarry(cashRequired float64) carry {
	return carry{basis: cashRequired, equity: cashRequired}
}

// settle computes the returns of a year from its closing equity and cashflow, and
// the state carried into the next year.
func (c carry) settle(equity, cashflow float64) (Returns, carry) {
	r := Returns{
		Equity:     equity,
		EquityGain: equity - c.equity,
	}
	r.AnnualProfit = r.EquityGain + cashflow
	if c.equity != 0 {
		r.ReturnOnEquity = r.AnnualProfit / c.equity
	}
	r.CumulativeProfit = c.cumulative + r.AnnualProfit
	r.ReturnOnInvestment = r.CumulativeProfit / c.basis
	return r, carry{basis: c.basis, equity: equity, cumulative: r.CumulativeProfit}
}

// YearlyMetrics is one year of the real-estate projection.
type YearlyMetrics struct {
	Year              int     `json:"year"`
	Month             int     `json:"month"` // months since the purchase at the start of the year
	RentingMonths     int     `json:"rentingMonths"`
	RehabMonths       int     `json:"rehabMonths"`
	Income            float64 `json:"income"`
	OperatingExpenses float64 `json:"operatingExpenses"`
	MortgagePayment   float64 `json:"mortgagePayment"`
	RehabExpenses     float64 `json:"rehabExpenses"`
	Expenses          float64 `json:"expenses"`
	Cashflow          float64 `json:"cashflow"`
	CashOnCash        float64 `json:"cashOnCash"`
	PropertyValue     float64 `json:"propertyValue"`
	LoanBalance       float64 `json:"loanBalance"`
	Returns
}

// Project rolls the deal up, year after year, over the horizon.
func Project(d Deal, years int) ([]YearlyMetrics, error) {
	if years <= 0 {
		return nil, invalid("projection", "years", "must be > 0, got %d", years)
	}
	cash := d.CashRequired()
	alloc := NewAllocation(d.Rehab, d.Rental, d.Refinance, years)

	metrics := make([]YearlyMetrics, 0, years)
	state := newCarry(cash)
	for y := 0; y < years; y++ {
		m := d.year(y, alloc)
		m.CashOnCash = m.Cashflow / cash
		m.Returns, state = state.settle(m.PropertyValue-m.LoanBalance, m.Cashflow)
		metrics = append(metrics, m)
	}
	return metrics, nil
}

// year computes the cashflow and valuation of year y, everything but the returns.
func (d Deal) year(y int, alloc Allocation) YearlyMetrics {
	acq, rehab, rental, refi := d.Acquisition, d.Rehab, d.Rental, d.Refinance
	m := YearlyMetrics{
		Year:          y,
		Month:         y * MonthsPerYear,
		RentingMonths: alloc.Rental[y],
		RehabMonths:   alloc.Rehab[y],
	}
	m.Income = rental.MonthlyRent * compound(rental.RentAppreciation, y) * float64(alloc.Rental[y])
	m.OperatingExpenses = rental.MonthlyOpEx*float64(alloc.PreRefi[y])*compound(rental.OpexInflation, y) +
		refi.MonthlyOpEx*float64(alloc.Refinance[y])*compound(refi.OpexInflation, y)
	m.MortgagePayment = acq.MonthlyPI*float64(alloc.Acquisition[y]) + refi.MonthlyPI*float64(alloc.Refinance[y])
	if rehab.Months > 0 {
		m.RehabExpenses = rehab.TotalCost * float64(alloc.Rehab[y]) / float64(rehab.Months)
	}
	m.Expenses = m.OperatingExpenses + m.MortgagePayment + m.RehabExpenses
	m.Cashflow = m.Income - m.Expenses

	before := (acq.PurchasePrice*compound(acq.Appreciation, y) + rehab.TotalCost) * float64(alloc.Acquisition[y]) / MonthsPerYear
	after := refi.HomeValue * compound(refi.Appreciation, y) * float64(alloc.Refinance[y]) / MonthsPerYear
	m.PropertyValue = before + after
	m.LoanBalance = acq.Loan.ClosingBalance(y)
	return m
}

// compound returns the growth factor of a yearly rate over y years.
func compound(rate float64, y int) float64 { return math.Pow(1+rate, float64(y)) }
