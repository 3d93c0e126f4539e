// Package realestate evaluates a BRRRR real-estate investment: buy a home with a
// mortgage, rehab it, rent it, refinance it at its appraised value, and keep
// renting. It compares the deal with an alternative strategy, a margin financed
// stock position held while renting a home.
//
// The model is built from phases, each computed once from its configuration:
//   - Acquisition: the purchase, its mortgage and the owning expenses.
//   - Rehab: the renovation months, without rent.
//   - PreRefiRent: the rental months before the refinance.
//   - Refinance: the cash-out loan at the appraised value, and the rental afterwards.
//   - Margin, Renter and Employment: the three parts of the alternative.
//
// A Scenario gathers every configuration. Its Run method builds the phases and
// projects both strategies year by year, splitting each year into the months
// spent in each phase. The yearly metrics are laid out as Tables, summarized by
// a Comparison, exported as JSONL or CSV, and queried with JSONPath.
//
// This package serves as the foundational logic for the `rei` command-line tool.
package realestate
