package renderer

import (
	"bytes"
	"fmt"
	"io"

	md "github.com/nao1215/markdown"
	"github.com/rdodkins/realestate"
)

// cell formats a table value according to its column.
func cell(column string, v float64) string {
	switch column {
	case realestate.ColYear, realestate.ColMonth, realestate.ColRentingMonths, realestate.ColRehabMonths:
		return fmt.Sprintf("%d", int(v))
	case realestate.ColCashOnCash, realestate.ColReturnOnEquity, realestate.ColReturnOnInvestment:
		return realestate.Pct(v).String()
	default:
		return realestate.USD(v).String()
	}
}

// TableMarkdown renders the given columns of a projection table, all of them when
// columns is empty.
func TableMarkdown(t *realestate.Table, columns []string) (string, error) {
	if len(columns) == 0 {
		columns = t.Names()
	}
	values := make([][]float64, len(columns))
	for i, name := range columns {
		v, err := t.MustColumn(name)
		if err != nil {
			return "", err
		}
		values[i] = v
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(t.Name)

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft},
		Header:    []string{"Period"},
		Rows:      [][]string{},
	}
	for _, name := range columns {
		table.Alignment = append(table.Alignment, md.AlignRight)
		table.Header = append(table.Header, name)
	}
	for row := 0; row < t.Len(); row++ {
		line := []string{t.Labels[row]}
		for i, name := range columns {
			line = append(line, cell(name, values[i][row]))
		}
		table.Rows = append(table.Rows, line)
	}
	doc.Table(table)
	return doc.String(), nil
}

// ReportMarkdown renders the whole result: phase summaries, both tables restricted
// to columns, and the comparison.
func ReportMarkdown(r *realestate.Result, columns []string) (string, error) {
	var b bytes.Buffer
	b.WriteString(SummaryMarkdown(r.Summaries()))

	re, alt := r.Tables()
	s, err := TableMarkdown(re, columns)
	if err != nil {
		return "", err
	}
	b.WriteString("\n")
	b.WriteString(s)

	// The alternative table lacks the real-estate only columns, skip it when none is left.
	ConditionalBlock(&b, func(w io.Writer) bool {
		if alt == nil {
			return false
		}
		var common []string
		for _, name := range columns {
			if _, ok := alt.Column(name); ok {
				common = append(common, name)
			}
		}
		if len(columns) > 0 && len(common) == 0 {
			return false
		}
		s, err := TableMarkdown(alt, common)
		if err != nil {
			return false
		}
		fmt.Fprintf(w, "\n%s", s)
		return true
	})

	c, err := r.Compare()
	if err != nil {
		return "", err
	}
	b.WriteString("\n")
	b.WriteString(RenderComparison(NewComparison(c, re.Labels)))
	return b.String(), nil
}
