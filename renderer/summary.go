package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/rdodkins/realestate"
)

// SummaryMarkdown renders the phase summaries, one section per phase.
func SummaryMarkdown(summaries []realestate.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Deal Summary")
	for _, s := range summaries {
		doc.H2(s.Title)

		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Item", "Value"},
			Rows:      [][]string{},
		}
		for _, p := range s.Prices {
			table.Rows = append(table.Rows, []string{p.Name, realestate.USD(p.Value).String()})
		}
		for _, r := range s.Rates {
			table.Rows = append(table.Rows, []string{r.Name, realestate.Pct(r.Value).String()})
		}
		for _, sp := range s.Spans {
			table.Rows = append(table.Rows, []string{sp.Name, fmt.Sprintf("%d months", sp.Months)})
		}
		if len(table.Rows) > 0 {
			doc.Table(table)
		}
	}

	return doc.String()
}
