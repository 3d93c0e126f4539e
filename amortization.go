package realestate

import (
	"fmt"
	"math"
)

// MonthsPerYear is the number of monthly payments in a year.
const MonthsPerYear = 12

// insuranceCutoff is the equity share of the property value above which mortgage
// insurance stops being charged.
const insuranceCutoff = 0.8

// LoanTerms describes a fixed-rate loan.
//
// PropertyValue defaults to 105% of the principal and LoanFees to 1% of the principal
// when left to zero. Together they define the down payment basis used by the mortgage
// insurance cutoff: PropertyValue - Principal + LoanFees.
type LoanTerms struct {
	AnnualRate        float64 `json:"annualRate"`
	Principal         float64 `json:"principal"`
	Years             int     `json:"years"`
	InsuranceFraction float64 `json:"insuranceFraction"` // yearly mortgage insurance as a fraction of the principal
	PropertyValue     float64 `json:"propertyValue,omitempty"`
	LoanFees          float64 `json:"loanFees,omitempty"`
}

func (t LoanTerms) withDefaults() LoanTerms {
	if t.PropertyValue == 0 {
		t.PropertyValue = 1.05 * t.Principal
	}
	if t.LoanFees == 0 {
		t.LoanFees = 0.01 * t.Principal
	}
	return t
}

// Validate reports an ErrInvalidParameter when the terms cannot be amortized.
func (t LoanTerms) Validate() error {
	v := validator{phase: "loan"}
	v.positive("principal", t.Principal)
	if t.Years <= 0 {
		v.fail("years", "must be > 0, got %d", t.Years)
	}
	v.interest("annualRate", t.AnnualRate)
	v.fraction("insuranceFraction", t.InsuranceFraction)
	v.nonNegative("propertyValue", t.PropertyValue)
	v.nonNegative("loanFees", t.LoanFees)
	return v.err
}

// DownpaymentBasis returns the investor's basis in the property implied by the terms.
func (t LoanTerms) DownpaymentBasis() float64 {
	t = t.withDefaults()
	return t.PropertyValue - t.Principal + t.LoanFees
}

// MonthlyPayment returns the fixed monthly principal and interest payment of a loan.
//
// A zero rate amortizes the principal in equal parts.
func MonthlyPayment(annualRate, principal float64, years int) (float64, error) {
	if years <= 0 {
		return 0, invalid("loan", "years", "must be > 0, got %d", years)
	}
	n := float64(years * MonthsPerYear)
	r := annualRate / MonthsPerYear
	// growth-1 through Expm1 and Log1p keeps its digits when r is tiny.
	gm1 := math.Expm1(n * math.Log1p(r))
	if r == 0 || gm1 == 0 {
		return principal / n, nil
	}
	pi := principal * r * (gm1 + 1) / gm1
	if math.IsNaN(pi) || math.IsInf(pi, 0) {
		return 0, fmt.Errorf("%w: monthly payment for rate %v over %d years is not finite", ErrDegenerateRate, annualRate, years)
	}
	return pi, nil
}

// MonthlyEntry is one payment of an amortization schedule.
type MonthlyEntry struct {
	Month     int     `json:"month"` // 1-based
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Insurance float64 `json:"insurance"`
	Balance   float64 `json:"balance"` // remaining balance after the payment
}

// YearlyEntry sums twelve consecutive monthly entries. Balance is the closing balance of the year.
type YearlyEntry struct {
	Year      int     `json:"year"` // 0-based
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Insurance float64 `json:"insurance"`
	Balance   float64 `json:"balance"`
}

// Schedule is the immutable amortization schedule of a fixed-rate loan.
type Schedule struct {
	terms     LoanTerms
	monthlyPI float64
	months    []MonthlyEntry
	years     []YearlyEntry
}

// NewSchedule computes the monthly payment and the full amortization schedule of the loan.
func NewSchedule(terms LoanTerms) (*Schedule, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	terms = terms.withDefaults()
	pi, err := MonthlyPayment(terms.AnnualRate, terms.Principal, terms.Years)
	if err != nil {
		return nil, err
	}
	s := &Schedule{terms: terms, monthlyPI: pi}
	s.months = s.amortize()
	s.years = rollupYears(s.months)
	return s, nil
}

// balance returns the closed form remaining balance after k payments.
func (s *Schedule) balance(k int) float64 {
	p, r := s.terms.Principal, s.terms.AnnualRate/MonthsPerYear
	n := float64(s.terms.Years * MonthsPerYear)
	gm1 := math.Expm1(float64(k) * math.Log1p(r))
	if r == 0 || gm1 == 0 {
		return p - float64(k)*p/n
	}
	return p - (s.monthlyPI-p*r)*gm1/r
}

func (s *Schedule) amortize() []MonthlyEntry {
	n := s.terms.Years * MonthsPerYear
	r := s.terms.AnnualRate / MonthsPerYear
	basis := s.terms.DownpaymentBasis()
	insurance := s.terms.InsuranceFraction / MonthsPerYear * s.terms.Principal

	months := make([]MonthlyEntry, n)
	opening := s.terms.Principal
	paid := 0.0
	for k := 1; k <= n; k++ {
		closing := s.balance(k)
		interest := opening * r
		e := MonthlyEntry{
			Month:     k,
			Interest:  interest,
			Principal: s.monthlyPI - interest,
			Balance:   closing,
		}
		paid += e.Principal
		if s.terms.PropertyValue-paid-basis > insuranceCutoff*s.terms.PropertyValue {
			e.Insurance = insurance
		}
		e.Payment = s.monthlyPI + e.Insurance
		months[k-1] = e
		opening = closing
	}
	return months
}

// rollupYears groups months by (month-1)/12.
func rollupYears(months []MonthlyEntry) []YearlyEntry {
	var years []YearlyEntry
	for _, m := range months {
		y := (m.Month - 1) / MonthsPerYear
		if y == len(years) {
			years = append(years, YearlyEntry{Year: y})
		}
		e := &years[y]
		e.Payment += m.Payment
		e.Principal += m.Principal
		e.Interest += m.Interest
		e.Insurance += m.Insurance
		e.Balance = m.Balance
	}
	return years
}

// Terms returns the loan terms with defaults applied.
func (s *Schedule) Terms() LoanTerms { return s.terms }

// MonthlyPI returns the fixed monthly principal and interest payment.
func (s *Schedule) MonthlyPI() float64 { return s.monthlyPI }

// Months returns a copy of the monthly schedule.
func (s *Schedule) Months() []MonthlyEntry { return append([]MonthlyEntry(nil), s.months...) }

// Years returns a copy of the yearly schedule.
func (s *Schedule) Years() []YearlyEntry { return append([]YearlyEntry(nil), s.years...) }

// Month returns the k-th payment, 1-based.
func (s *Schedule) Month(k int) MonthlyEntry { return s.months[k-1] }

// Year returns the y-th year of the schedule, 0-based. Years after the last payment
// are empty with a zero balance.
func (s *Schedule) Year(y int) YearlyEntry {
	if y < 0 {
		return YearlyEntry{Year: y, Balance: s.terms.Principal}
	}
	if y >= len(s.years) {
		return YearlyEntry{Year: y}
	}
	return s.years[y]
}

// ClosingBalance returns the remaining balance at the end of year y.
func (s *Schedule) ClosingBalance(y int) float64 { return s.Year(y).Balance }

// MarshalJSON writes the terms, the monthly payment and the yearly schedule.
func (s *Schedule) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("terms", s.terms)
	w.Append("monthlyPI", s.monthlyPI)
	w.Append("years", s.years)
	return w.MarshalJSON()
}
