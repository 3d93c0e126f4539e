package realestate

// Item is a named figure of a phase summary.
type Item struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Span is a named duration in months.
type Span struct {
	Name   string `json:"name"`
	Months int    `json:"months"`
}

// Summary is the immutable key-value view of a phase handed to formatters.
// Prices are monetary amounts, Rates are yearly fractions.
type Summary struct {
	Title  string `json:"title"`
	Prices []Item `json:"prices,omitempty"`
	Rates  []Item `json:"rates,omitempty"`
	Spans  []Span `json:"spans,omitempty"`
}

// Summarizer is implemented by every phase.
type Summarizer interface {
	Summary() Summary
}
