package realestate

// Allocate spreads a phase lasting total months over consecutive years, twelve
// months per year at most, until the phase is exhausted.
//
//	Allocate(30, 4) == []int{12, 12, 6, 0}
func Allocate(total, years int) []int {
	months := make([]int, years)
	for y := range months {
		switch {
		case total >= MonthsPerYear:
			months[y] = MonthsPerYear
			total -= MonthsPerYear
		case total > 0:
			months[y] = total
			total = 0
		}
	}
	return months
}

// complement returns the months of each year not taken by months.
func complement(months []int) []int {
	c := make([]int, len(months))
	for y, m := range months {
		c[y] = MonthsPerYear - m
	}
	return c
}

// Allocation is the number of months each phase takes in every year of the horizon.
//
// Rehab and Rental split each year, so do Acquisition and Refinance, which tell
// which mortgage is being paid. PreRefi counts the months charged with the
// pre-refinance operating expenses.
type Allocation struct {
	Rehab       []int `json:"rehab"`
	Rental      []int `json:"rental"`
	Acquisition []int `json:"acquisition"`
	Refinance   []int `json:"refinance"`
	PreRefi     []int `json:"preRefi"`
}

// NewAllocation computes the month allocation of the deal phases over years.
func NewAllocation(rehab Rehab, rental PreRefiRent, refi Refinance, years int) Allocation {
	a := Allocation{
		Rehab:       Allocate(rehab.Months, years),
		Acquisition: Allocate(refi.Months, years),
		PreRefi:     Allocate(rental.Months, years),
	}
	a.Rental = complement(a.Rehab)
	a.Refinance = complement(a.Acquisition)
	return a
}
