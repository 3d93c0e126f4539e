package realestate

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency all amounts are expressed in.
const DefaultCurrency = money.USD

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Money represents a monetary amount for display and export. Computations are done in
// float64, Money only rounds and formats their results.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns the amount in the given currency.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// USD returns the amount in the default currency.
func USD(value float64) Money { return M(value, DefaultCurrency) }

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// Round returns the amount rounded to the currency minor unit.
func (m Money) Round() Money {
	return Money{value: m.value.Round(int32(m.currency().Fraction)), cur: m.cur}
}

// String returns the amount formatted the currency way, like "$1,137.72".
func (m Money) String() string {
	cur := m.currency()
	dec := m.Round().value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation with a sign, "-" for zero.
func (m Money) SignedString() string {
	r := m.Round()
	if r.value.IsZero() {
		return "-"
	}
	if r.value.IsPositive() {
		return "+" + r.String()
	}
	return r.String()
}

// MarshalJSON writes the amount rounded to the currency minor unit.
func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.Round().value)
	return w.MarshalJSON()
}
