package realestate

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name      string
		rate      float64
		principal float64
		years     int
		want      float64
		tol       float64
	}{
		{"30 years at 6.5%", 0.065, 180000, 30, 1137.56, 1},
		{"15 years at 7%", 0.07, 100000, 15, 898.83, 0.01},
		{"zero rate is straight line", 0, 120000, 10, 1000, 1e-9},
		{"near zero rate is straight line", 1e-14, 180000, 30, 500, 1e-6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MonthlyPayment(tt.rate, tt.principal, tt.years)
			if err != nil {
				t.Fatalf("MonthlyPayment() unexpected error: %v", err)
			}
			if !almostEqual(got, tt.want, tt.tol) {
				t.Errorf("MonthlyPayment() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := MonthlyPayment(0.05, 1000, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("MonthlyPayment() with zero years: got %v, want %v", err, ErrInvalidParameter)
	}
	if _, err := MonthlyPayment(0.99, 1000, 1_000_000); !errors.Is(err, ErrDegenerateRate) {
		t.Errorf("MonthlyPayment() with an overflowing growth: got %v, want %v", err, ErrDegenerateRate)
	}
}

func TestSchedule(t *testing.T) {
	tests := []LoanTerms{
		{AnnualRate: 0.065, Principal: 182000, Years: 30, InsuranceFraction: 0.01, PropertyValue: 200000, LoanFees: 2000},
		{AnnualRate: 0.07, Principal: 210600, Years: 15, InsuranceFraction: 0.01, PropertyValue: 260000, LoanFees: 2600},
		{AnnualRate: 0.08, Principal: 47940, Years: 30},
		{AnnualRate: 0, Principal: 50000, Years: 5, InsuranceFraction: 0.005},
		{AnnualRate: 1e-14, Principal: 180000, Years: 30},
		{AnnualRate: 3e-15, Principal: 180000, Years: 30},
	}
	for _, terms := range tests {
		s, err := NewSchedule(terms)
		if err != nil {
			t.Fatalf("NewSchedule(%+v) unexpected error: %v", terms, err)
		}
		months := s.Months()
		if got, want := len(months), terms.Years*MonthsPerYear; got != want {
			t.Fatalf("len(Months()) = %d, want %d", got, want)
		}

		previous, paid := terms.Principal, 0.0
		for _, m := range months {
			if m.Balance > previous+1e-9 {
				t.Errorf("%+v: balance increased at month %d: %v > %v", terms, m.Month, m.Balance, previous)
			}
			previous = m.Balance
			paid += m.Principal
			if !almostEqual(m.Principal+m.Interest, s.MonthlyPI(), 1e-6) {
				t.Errorf("%+v: month %d principal+interest = %v, want %v", terms, m.Month, m.Principal+m.Interest, s.MonthlyPI())
			}
		}
		if last := months[len(months)-1].Balance; !almostEqual(last, 0, 1e-6*terms.Principal) {
			t.Errorf("%+v: final balance = %v, want 0", terms, last)
		}
		if !almostEqual(paid, terms.Principal, 1e-6*terms.Principal) {
			t.Errorf("%+v: sum of principal = %v, want %v", terms, paid, terms.Principal)
		}

		years := s.Years()
		if got, want := len(years), terms.Years; got != want {
			t.Fatalf("len(Years()) = %d, want %d", got, want)
		}
		for y, e := range years {
			if e.Balance != months[(y+1)*MonthsPerYear-1].Balance {
				t.Errorf("%+v: year %d balance = %v, want last month's %v", terms, y, e.Balance, months[(y+1)*MonthsPerYear-1].Balance)
			}
			if !almostEqual(e.Payment, 12*s.MonthlyPI()+e.Insurance, 1e-6) {
				t.Errorf("%+v: year %d payment = %v, want %v", terms, y, e.Payment, 12*s.MonthlyPI()+e.Insurance)
			}
		}
	}
}

func TestScheduleInsuranceStops(t *testing.T) {
	s, err := NewSchedule(LoanTerms{AnnualRate: 0.065, Principal: 182000, Years: 30, InsuranceFraction: 0.01, PropertyValue: 200000, LoanFees: 2000})
	if err != nil {
		t.Fatalf("NewSchedule() unexpected error: %v", err)
	}
	months := s.Months()
	if months[0].Insurance == 0 {
		t.Fatalf("first month insurance = 0, want it charged")
	}
	stopped := 0
	for _, m := range months {
		switch {
		case m.Insurance == 0 && stopped == 0:
			stopped = m.Month
		case m.Insurance != 0 && stopped != 0:
			t.Fatalf("insurance re-activated at month %d after stopping at month %d", m.Month, stopped)
		}
	}
	if stopped == 0 {
		t.Errorf("insurance never stopped")
	}
}

func TestScheduleYearOutOfRange(t *testing.T) {
	s, err := NewSchedule(LoanTerms{AnnualRate: 0.05, Principal: 10000, Years: 2})
	if err != nil {
		t.Fatalf("NewSchedule() unexpected error: %v", err)
	}
	if got := s.ClosingBalance(-1); got != 10000 {
		t.Errorf("ClosingBalance(-1) = %v, want 10000", got)
	}
	if got := s.Year(5); got.Balance != 0 || got.Payment != 0 {
		t.Errorf("Year(5) = %+v, want an empty year", got)
	}
}

func TestScheduleInvalid(t *testing.T) {
	tests := []struct {
		name  string
		terms LoanTerms
	}{
		{"zero principal", LoanTerms{AnnualRate: 0.05, Years: 30}},
		{"zero years", LoanTerms{AnnualRate: 0.05, Principal: 1000}},
		{"rate of 100%", LoanTerms{AnnualRate: 1, Principal: 1000, Years: 30}},
		{"negative rate", LoanTerms{AnnualRate: -0.01, Principal: 1000, Years: 30}},
		{"insurance above 1", LoanTerms{AnnualRate: 0.05, Principal: 1000, Years: 30, InsuranceFraction: 1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSchedule(tt.terms); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("NewSchedule() error = %v, want %v", err, ErrInvalidParameter)
			}
		})
	}
}

func TestScheduleJSON(t *testing.T) {
	s, err := NewSchedule(LoanTerms{AnnualRate: 0.05, Principal: 10000, Years: 2})
	if err != nil {
		t.Fatalf("NewSchedule() unexpected error: %v", err)
	}
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("json.Marshal() unexpected error: %v", err)
	}
	var got struct {
		Terms     LoanTerms     `json:"terms"`
		MonthlyPI float64       `json:"monthlyPI"`
		Years     []YearlyEntry `json:"years"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("json.Unmarshal() unexpected error: %v", err)
	}
	if got.Terms.Principal != 10000 || len(got.Years) != 2 || got.MonthlyPI != s.MonthlyPI() {
		t.Errorf("json.Marshal() = %s", data)
	}
}
