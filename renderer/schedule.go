package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/rdodkins/realestate"
)

// ScheduleMarkdown renders an amortization schedule, yearly or monthly.
func ScheduleMarkdown(s *realestate.Schedule, monthly bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	terms := s.Terms()
	doc.H1("Amortization Schedule")
	doc.PlainText(fmt.Sprintf("Loan of %s at %s over %d years: %s monthly P&I.",
		realestate.USD(terms.Principal), realestate.Pct(terms.AnnualRate), terms.Years, realestate.USD(s.MonthlyPI())))

	period := "Year"
	if monthly {
		period = "Month"
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{period, "Payment", "Principal", "Interest", "Insurance", "Balance"},
		Rows:   [][]string{},
	}
	row := func(p int, payment, principal, interest, insurance, balance float64) []string {
		return []string{
			fmt.Sprint(p),
			realestate.USD(payment).String(),
			realestate.USD(principal).String(),
			realestate.USD(interest).String(),
			realestate.USD(insurance).String(),
			realestate.USD(balance).String(),
		}
	}
	if monthly {
		for _, e := range s.Months() {
			table.Rows = append(table.Rows, row(e.Month, e.Payment, e.Principal, e.Interest, e.Insurance, e.Balance))
		}
	} else {
		for _, e := range s.Years() {
			table.Rows = append(table.Rows, row(e.Year, e.Payment, e.Principal, e.Interest, e.Insurance, e.Balance))
		}
	}
	doc.Table(table)

	return doc.String()
}
