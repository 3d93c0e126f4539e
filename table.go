package realestate

import (
	"fmt"

	"github.com/rdodkins/realestate/date"
)

// Column names shared by the real-estate and the alternative tables.
const (
	ColYear               = "Year"
	ColMonth              = "Month"
	ColIncome             = "Total Annual Income"
	ColOperatingExpenses  = "Operating Expenses"
	ColExpenses           = "Total Annual Expenses"
	ColCashflow           = "Total Annual Cashflow"
	ColCashOnCash         = "Cash on Cash ROI"
	ColLoanBalance        = "Loan Balance"
	ColEquity             = "Equity"
	ColEquityGain         = "Equity Gain"
	ColAnnualProfit       = "Annual Profit"
	ColReturnOnEquity     = "Return on Equity"
	ColCumulativeProfit   = "Cumulative Profit"
	ColReturnOnInvestment = "Return on Initial Investment"
)

// Real-estate only columns.
const (
	ColRentingMonths   = "Renting Months"
	ColRehabMonths     = "Rehab Months"
	ColMortgagePayment = "Mortgage Payment"
	ColRehabExpenses   = "Rehab Expenses"
	ColPropertyValue   = "Property Value"
)

// Alternative only columns.
const (
	ColRentPayment   = "Rent Payment"
	ColLoanPayment   = "Loan Payment"
	ColContributions = "Contributions"
	ColStockValue    = "Stock Value"
)

// CommonColumns lists the columns present in every table.
var CommonColumns = []string{
	ColYear, ColMonth, ColIncome, ColOperatingExpenses, ColExpenses, ColCashflow, ColCashOnCash,
	ColLoanBalance, ColEquity, ColEquityGain, ColAnnualProfit, ColReturnOnEquity,
	ColCumulativeProfit, ColReturnOnInvestment,
}

// Column is a named series, one value per year.
type Column struct {
	Name   string
	Values []float64
}

// Table is the tabular form of a projection handed to formatters and plotters.
// Labels name each row: the calendar month of the year start, or the year index.
type Table struct {
	Name    string
	Labels  []string
	Columns []Column
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Labels) }

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the values of the named column.
func (t *Table) Column(name string) ([]float64, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c.Values, true
		}
	}
	return nil, false
}

// MustColumn is like Column but fails with an error naming the table.
func (t *Table) MustColumn(name string) ([]float64, error) {
	values, ok := t.Column(name)
	if !ok {
		return nil, fmt.Errorf("table %q has no column %q", t.Name, name)
	}
	return values, nil
}

// column extracts one series from a list of rows.
func column[T any](name string, rows []T, value func(T) float64) Column {
	c := Column{Name: name, Values: make([]float64, len(rows))}
	for i, r := range rows {
		c.Values[i] = value(r)
	}
	return c
}

// labels names n yearly rows from the start month, or by year index when there is none.
func labels(start date.Month, n int) []string {
	l := make([]string, n)
	for y := range l {
		if start.IsZero() {
			l[y] = fmt.Sprint(y)
		} else {
			l[y] = start.AddYears(y).String()
		}
	}
	return l
}

// RealEstateTable lays the real-estate projection out as a table.
func RealEstateTable(metrics []YearlyMetrics, start date.Month) *Table {
	type m = YearlyMetrics
	return &Table{
		Name:   "Real Estate",
		Labels: labels(start, len(metrics)),
		Columns: []Column{
			column(ColYear, metrics, func(r m) float64 { return float64(r.Year) }),
			column(ColMonth, metrics, func(r m) float64 { return float64(r.Month) }),
			column(ColRentingMonths, metrics, func(r m) float64 { return float64(r.RentingMonths) }),
			column(ColRehabMonths, metrics, func(r m) float64 { return float64(r.RehabMonths) }),
			column(ColIncome, metrics, func(r m) float64 { return r.Income }),
			column(ColOperatingExpenses, metrics, func(r m) float64 { return r.OperatingExpenses }),
			column(ColMortgagePayment, metrics, func(r m) float64 { return r.MortgagePayment }),
			column(ColRehabExpenses, metrics, func(r m) float64 { return r.RehabExpenses }),
			column(ColExpenses, metrics, func(r m) float64 { return r.Expenses }),
			column(ColCashflow, metrics, func(r m) float64 { return r.Cashflow }),
			column(ColCashOnCash, metrics, func(r m) float64 { return r.CashOnCash }),
			column(ColPropertyValue, metrics, func(r m) float64 { return r.PropertyValue }),
			column(ColLoanBalance, metrics, func(r m) float64 { return r.LoanBalance }),
			column(ColEquity, metrics, func(r m) float64 { return r.Equity }),
			column(ColEquityGain, metrics, func(r m) float64 { return r.EquityGain }),
			column(ColAnnualProfit, metrics, func(r m) float64 { return r.AnnualProfit }),
			column(ColReturnOnEquity, metrics, func(r m) float64 { return r.ReturnOnEquity }),
			column(ColCumulativeProfit, metrics, func(r m) float64 { return r.CumulativeProfit }),
			column(ColReturnOnInvestment, metrics, func(r m) float64 { return r.ReturnOnInvestment }),
		},
	}
}

// AlternativeTable lays the alternative projection out as a table.
func AlternativeTable(metrics []AlternativeMetrics, start date.Month) *Table {
	type m = AlternativeMetrics
	return &Table{
		Name:   "Stocks",
		Labels: labels(start, len(metrics)),
		Columns: []Column{
			column(ColYear, metrics, func(r m) float64 { return float64(r.Year) }),
			column(ColMonth, metrics, func(r m) float64 { return float64(r.Month) }),
			column(ColIncome, metrics, func(r m) float64 { return r.Income }),
			column(ColOperatingExpenses, metrics, func(r m) float64 { return r.OperatingExpenses }),
			column(ColRentPayment, metrics, func(r m) float64 { return r.RentPayment }),
			column(ColLoanPayment, metrics, func(r m) float64 { return r.LoanPayment }),
			column(ColContributions, metrics, func(r m) float64 { return r.Contributions }),
			column(ColExpenses, metrics, func(r m) float64 { return r.Expenses }),
			column(ColCashflow, metrics, func(r m) float64 { return r.Cashflow }),
			column(ColCashOnCash, metrics, func(r m) float64 { return r.CashOnCash }),
			column(ColStockValue, metrics, func(r m) float64 { return r.StockValue }),
			column(ColLoanBalance, metrics, func(r m) float64 { return r.LoanBalance }),
			column(ColEquity, metrics, func(r m) float64 { return r.Equity }),
			column(ColEquityGain, metrics, func(r m) float64 { return r.EquityGain }),
			column(ColAnnualProfit, metrics, func(r m) float64 { return r.AnnualProfit }),
			column(ColReturnOnEquity, metrics, func(r m) float64 { return r.ReturnOnEquity }),
			column(ColCumulativeProfit, metrics, func(r m) float64 { return r.CumulativeProfit }),
			column(ColReturnOnInvestment, metrics, func(r m) float64 { return r.ReturnOnInvestment }),
		},
	}
}
