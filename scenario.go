package realestate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rdodkins/realestate/date"
)

// AlternativeConfig holds the inputs of the comparison strategy.
type AlternativeConfig struct {
	Margin     MarginConfig     `json:"margin"`
	Renter     RenterConfig     `json:"renter"`
	Employment EmploymentConfig `json:"employment"`
}

// Scenario is the flat configuration of one evaluation: the deal, the optional
// alternative strategy and the horizon.
type Scenario struct {
	Years       int                `json:"years"`
	Start       date.Month         `json:"start"` // optional, labels the years with calendar months
	Acquisition AcquisitionConfig  `json:"acquisition"`
	Rehab       RehabConfig        `json:"rehab"`
	Rental      RentalConfig       `json:"rental"`
	Refinance   RefinanceConfig    `json:"refinance"`
	Alternative *AlternativeConfig `json:"alternative"` // nil to skip the comparison
}

// DefaultScenario returns the reference scenario: a $200k single family home bought
// with 10% down, rehabbed for six months, rented, and refinanced after a year at
// 80% of its $260k appraised value; compared to a 2x margin stock position held
// while renting.
func DefaultScenario() Scenario {
	return Scenario{
		Years: 30,
		Acquisition: AcquisitionConfig{
			PurchasePrice:     200000,
			Downpayment:       20000,
			AnnualRate:        0.065,
			Appreciation:      0.03,
			YearlyInsurance:   1250,
			MonthlyUtilities:  200,
			MortgageInsurance: 0.01,
			TermYears:         30,
		},
		Rehab: RehabConfig{
			Months:    6,
			TotalCost: 25000,
		},
		Rental: RentalConfig{
			MonthlyRent:      1800,
			Vacancy:          0.05,
			Repairs:          0.05,
			Capex:            0.05,
			Months:           12,
			RentAppreciation: 0.03,
			OpexInflation:    0.03,
		},
		Refinance: RefinanceConfig{
			MonthlyRent:       1800,
			HomeValue:         260000,
			Vacancy:           0.05,
			Repairs:           0.05,
			Capex:             0.05,
			Months:            12,
			AnnualRate:        0.07,
			Appreciation:      0.03,
			RentAppreciation:  0.03,
			OpexInflation:     0.03,
			LoanFraction:      0.8,
			MortgageInsurance: 0.01,
			TermYears:         30,
		},
		Alternative: &AlternativeConfig{
			Margin: MarginConfig{
				StockValue:   94000,
				Downpayment:  47000,
				AnnualRate:   0.08,
				Appreciation: 0.08,
				TermYears:    30,
			},
			Renter: RenterConfig{
				MonthlyRent:      1500,
				MonthlyOpEx:      150,
				RentAppreciation: 0.03,
				OpexInflation:    0.03,
			},
			Employment: EmploymentConfig{
				Growth: 0.03,
			},
		},
	}
}

// DecodeScenario reads a JSON scenario on top of the defaults. Unknown fields are
// rejected so that a misspelled parameter does not silently keep its default.
func DecodeScenario(r io.Reader) (Scenario, error) {
	s := DefaultScenario()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return Scenario{}, fmt.Errorf("decoding scenario: %w", err)
	}
	return s, nil
}

// LoadScenario reads a JSON scenario file on top of the defaults.
func LoadScenario(path string) (Scenario, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario %q: %w", path, err)
	}
	s, err := DecodeScenario(bytes.NewReader(content))
	if err != nil {
		return Scenario{}, fmt.Errorf("in %q: %w", path, err)
	}
	return s, nil
}

// EncodeScenario writes the scenario as indented JSON.
func EncodeScenario(w io.Writer, s Scenario) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// BuildDeal constructs the real-estate phases.
func (s Scenario) BuildDeal() (Deal, error) {
	acq, err := NewAcquisition(s.Acquisition)
	if err != nil {
		return Deal{}, err
	}
	rehab, err := NewRehab(s.Rehab, acq)
	if err != nil {
		return Deal{}, err
	}
	rental, err := NewPreRefiRent(s.Rental, acq)
	if err != nil {
		return Deal{}, err
	}
	refi, err := NewRefinance(s.Refinance, acq)
	if err != nil {
		return Deal{}, err
	}
	return Deal{Acquisition: acq, Rehab: rehab, Rental: rental, Refinance: refi}, nil
}

// BuildAlternative constructs the alternative phases, or returns nil when the
// scenario has no alternative strategy.
func (s Scenario) BuildAlternative() (*Alternative, error) {
	if s.Alternative == nil {
		return nil, nil
	}
	margin, err := NewMargin(s.Alternative.Margin)
	if err != nil {
		return nil, err
	}
	renter, err := NewRenter(s.Alternative.Renter)
	if err != nil {
		return nil, err
	}
	job, err := NewEmployment(s.Alternative.Employment)
	if err != nil {
		return nil, err
	}
	return &Alternative{Margin: margin, Renter: renter, Employment: job}, nil
}

// Result is the outcome of a scenario: the phases it was built from and both
// yearly series.
type Result struct {
	Scenario    Scenario             `json:"scenario"`
	Deal        Deal                 `json:"deal"`
	Alternative *Alternative         `json:"alternative,omitempty"`
	RealEstate  []YearlyMetrics      `json:"realEstate"`
	Stocks      []AlternativeMetrics `json:"stocks,omitempty"`
}

// Run builds every phase, then projects both strategies. Nothing is projected
// unless all the phases are valid.
func (s Scenario) Run() (*Result, error) {
	if s.Years <= 0 {
		return nil, invalid("scenario", "years", "must be > 0, got %d", s.Years)
	}
	deal, err := s.BuildDeal()
	if err != nil {
		return nil, err
	}
	alt, err := s.BuildAlternative()
	if err != nil {
		return nil, err
	}

	r := &Result{Scenario: s, Deal: deal, Alternative: alt}
	if r.RealEstate, err = Project(deal, s.Years); err != nil {
		return nil, err
	}
	if alt != nil {
		if r.Stocks, err = ProjectAlternative(*alt, s.Years); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Summaries returns every phase summary of the result.
func (r *Result) Summaries() []Summary {
	list := r.Deal.Summaries()
	if r.Alternative != nil {
		list = append(list, r.Alternative.Summaries()...)
	}
	return list
}

// Tables returns the real-estate table and the alternative table, the latter
// being nil when the scenario has no alternative.
func (r *Result) Tables() (realEstate, alternative *Table) {
	realEstate = RealEstateTable(r.RealEstate, r.Scenario.Start)
	if r.Alternative != nil {
		alternative = AlternativeTable(r.Stocks, r.Scenario.Start)
	}
	return
}
