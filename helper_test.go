package realestate

import (
	"math"
	"testing"
)

// almostEqual reports whether a and b differ by less than tol.
func almostEqual(a, b, tol float64) bool { return math.Abs(a-b) < tol }

// flat returns the default scenario with every growth rate set to zero.
func flat() Scenario {
	s := DefaultScenario()
	s.Acquisition.Appreciation = 0
	s.Rental.RentAppreciation = 0
	s.Rental.OpexInflation = 0
	s.Refinance.Appreciation = 0
	s.Refinance.RentAppreciation = 0
	s.Refinance.OpexInflation = 0
	s.Alternative.Margin.Appreciation = 0
	s.Alternative.Renter.RentAppreciation = 0
	s.Alternative.Renter.OpexInflation = 0
	s.Alternative.Employment.Growth = 0
	return s
}

// mustRun runs the scenario or fails the test.
func mustRun(t *testing.T, s Scenario) *Result {
	t.Helper()
	r, err := s.Run()
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	return r
}
