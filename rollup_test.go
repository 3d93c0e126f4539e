package realestate

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestCarrySettle(t *testing.T) {
	state := newCarry(45000)
	r, next := state.settle(50000, 1000)
	if r.EquityGain != 5000 {
		t.Errorf("year 0 EquityGain = %v, want 5000", r.EquityGain)
	}
	if r.AnnualProfit != 6000 {
		t.Errorf("year 0 AnnualProfit = %v, want 6000", r.AnnualProfit)
	}
	if want := 6000.0 / 45000; !almostEqual(r.ReturnOnEquity, want, 1e-12) {
		t.Errorf("year 0 ReturnOnEquity = %v, want %v", r.ReturnOnEquity, want)
	}

	r, _ = next.settle(52000, -500)
	if r.EquityGain != 2000 {
		t.Errorf("year 1 EquityGain = %v, want 2000", r.EquityGain)
	}
	if r.CumulativeProfit != 7500 {
		t.Errorf("year 1 CumulativeProfit = %v, want 7500", r.CumulativeProfit)
	}
	if want := 7500.0 / 45000; !almostEqual(r.ReturnOnInvestment, want, 1e-12) {
		t.Errorf("year 1 ReturnOnInvestment = %v, want %v", r.ReturnOnInvestment, want)
	}

	if r, _ := newCarry(0).settle(100, 0); r.ReturnOnEquity != 0 {
		t.Errorf("ReturnOnEquity with no prior equity = %v, want 0", r.ReturnOnEquity)
	}
}

func TestProject(t *testing.T) {
	deal, err := DefaultScenario().BuildDeal()
	if err != nil {
		t.Fatalf("BuildDeal() unexpected error: %v", err)
	}
	metrics, err := Project(deal, 30)
	if err != nil {
		t.Fatalf("Project() unexpected error: %v", err)
	}
	if len(metrics) != 30 {
		t.Fatalf("len(Project()) = %d, want 30", len(metrics))
	}

	cash := deal.CashRequired()
	if cash != 47000 {
		t.Errorf("CashRequired() = %v, want 47000", cash)
	}
	if want := metrics[0].Equity - cash; metrics[0].EquityGain != want {
		t.Errorf("year 0 EquityGain = %v, want %v", metrics[0].EquityGain, want)
	}

	profits := make([]float64, len(metrics))
	for i, m := range metrics {
		profits[i] = m.AnnualProfit
		if m.Year != i || m.Month != 12*i {
			t.Errorf("row %d is year %d month %d", i, m.Year, m.Month)
		}
		if !almostEqual(m.Expenses, m.OperatingExpenses+m.MortgagePayment+m.RehabExpenses, 1e-6) {
			t.Errorf("year %d expenses %v do not add up", i, m.Expenses)
		}
		if !almostEqual(m.Cashflow, m.Income-m.Expenses, 1e-6) {
			t.Errorf("year %d cashflow %v != income - expenses", i, m.Cashflow)
		}
		if !almostEqual(m.CashOnCash, m.Cashflow/cash, 1e-12) {
			t.Errorf("year %d cash on cash = %v, want %v", i, m.CashOnCash, m.Cashflow/cash)
		}
		if m.LoanBalance != deal.Acquisition.Loan.ClosingBalance(i) {
			t.Errorf("year %d loan balance = %v, want %v", i, m.LoanBalance, deal.Acquisition.Loan.ClosingBalance(i))
		}
	}
	floats.CumSum(profits, profits)
	for i, m := range metrics {
		if !almostEqual(m.CumulativeProfit, profits[i], 1e-6) {
			t.Errorf("year %d CumulativeProfit = %v, want running sum %v", i, m.CumulativeProfit, profits[i])
		}
	}

	if metrics[0].RehabExpenses != 25000 {
		t.Errorf("year 0 RehabExpenses = %v, want 25000", metrics[0].RehabExpenses)
	}
	if metrics[1].RehabExpenses != 0 {
		t.Errorf("year 1 RehabExpenses = %v, want 0", metrics[1].RehabExpenses)
	}
}

func TestProjectFlat(t *testing.T) {
	r := mustRun(t, flat())
	m := r.RealEstate
	if want := 225000.0; !almostEqual(m[0].PropertyValue, want, 1e-6) {
		t.Errorf("year 0 PropertyValue = %v, want %v", m[0].PropertyValue, want)
	}
	for y := 2; y < len(m); y++ {
		if !almostEqual(m[y].PropertyValue, m[1].PropertyValue, 1e-6) {
			t.Errorf("year %d PropertyValue = %v, want %v", y, m[y].PropertyValue, m[1].PropertyValue)
		}
		if !almostEqual(m[y].OperatingExpenses, m[1].OperatingExpenses, 1e-6) {
			t.Errorf("year %d OperatingExpenses = %v, want %v", y, m[y].OperatingExpenses, m[1].OperatingExpenses)
		}
		if !almostEqual(m[y].Income, m[1].Income, 1e-6) {
			t.Errorf("year %d Income = %v, want %v", y, m[y].Income, m[1].Income)
		}
	}

	s := r.Stocks
	for y := 1; y < len(s); y++ {
		if s[y].StockValue != s[0].StockValue {
			t.Errorf("year %d StockValue = %v, want %v", y, s[y].StockValue, s[0].StockValue)
		}
	}
}

func TestProjectInvalidHorizon(t *testing.T) {
	deal, err := DefaultScenario().BuildDeal()
	if err != nil {
		t.Fatalf("BuildDeal() unexpected error: %v", err)
	}
	if _, err := Project(deal, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Project(0) error = %v, want %v", err, ErrInvalidParameter)
	}
}

func TestProjectAlternative(t *testing.T) {
	alt, err := DefaultScenario().BuildAlternative()
	if err != nil {
		t.Fatalf("BuildAlternative() unexpected error: %v", err)
	}
	alt.Margin.MonthlyContribution = 100
	metrics, err := ProjectAlternative(*alt, 10)
	if err != nil {
		t.Fatalf("ProjectAlternative() unexpected error: %v", err)
	}
	if metrics[0].Contributions != 0 || metrics[1].Contributions != 1200 {
		t.Errorf("contributions = %v, %v, want 0, 1200", metrics[0].Contributions, metrics[1].Contributions)
	}
	if want := 94000 - metrics[0].LoanBalance - 47000; !almostEqual(metrics[0].EquityGain, want, 1e-6) {
		t.Errorf("year 0 EquityGain = %v, want %v", metrics[0].EquityGain, want)
	}
	for y := 1; y < len(metrics); y++ {
		if metrics[y].StockValue <= metrics[y-1].StockValue {
			t.Errorf("year %d StockValue %v did not grow", y, metrics[y].StockValue)
		}
		if metrics[y].LoanPayment != alt.Margin.Loan.Year(y).Payment {
			t.Errorf("year %d LoanPayment = %v, want %v", y, metrics[y].LoanPayment, alt.Margin.Loan.Year(y).Payment)
		}
	}
}

func TestStockValueAt(t *testing.T) {
	m := Margin{MarginConfig: MarginConfig{StockValue: 1000, Appreciation: 0, MonthlyContribution: 10}}
	if got := m.StockValueAt(2); got != 1240 {
		t.Errorf("StockValueAt(2) without growth = %v, want 1240", got)
	}
	m.Appreciation = 0.1
	m.MonthlyContribution = 0
	if got := m.StockValueAt(1); !almostEqual(got, 1100, 1e-9) {
		t.Errorf("StockValueAt(1) = %v, want 1100", got)
	}
}
