package realestate

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned when a phase is built from inputs outside their domain:
// negative durations, fractions out of [0,1], a non-positive loan principal, ...
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrDegenerateRate is returned when an interest rate cannot produce a finite annuity payment.
var ErrDegenerateRate = errors.New("degenerate rate")

// invalid wraps ErrInvalidParameter with the phase and field that failed.
func invalid(phase, field string, format string, args ...any) error {
	return fmt.Errorf("%w: %s.%s %s", ErrInvalidParameter, phase, field, fmt.Sprintf(format, args...))
}

// validator accumulates the first validation failure of a phase.
// Its zero value needs a phase name to be useful.
type validator struct {
	phase string
	err   error
}

func (v *validator) fail(field, format string, args ...any) {
	if v.err == nil {
		v.err = invalid(v.phase, field, format, args...)
	}
}

func (v *validator) finite(field string, x float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		v.fail(field, "must be a finite number, got %v", x)
	}
}

func (v *validator) nonNegative(field string, x float64) {
	v.finite(field, x)
	if x < 0 {
		v.fail(field, "must be >= 0, got %v", x)
	}
}

func (v *validator) positive(field string, x float64) {
	v.finite(field, x)
	if x <= 0 {
		v.fail(field, "must be > 0, got %v", x)
	}
}

// fraction checks x is in [0,1].
func (v *validator) fraction(field string, x float64) {
	v.finite(field, x)
	if x < 0 || x > 1 {
		v.fail(field, "must be within [0,1], got %v", x)
	}
}

// interest checks an annual interest rate is in [0,1).
func (v *validator) interest(field string, x float64) {
	v.finite(field, x)
	if x < 0 || x >= 1 {
		v.fail(field, "must be within [0,1), got %v", x)
	}
}

// growth checks an annual growth rate keeps values positive, that is > -100%.
func (v *validator) growth(field string, x float64) {
	v.finite(field, x)
	if x <= -1 {
		v.fail(field, "must be > -1, got %v", x)
	}
}

func (v *validator) months(field string, n int) {
	if n < 0 {
		v.fail(field, "must be >= 0 months, got %d", n)
	}
}
