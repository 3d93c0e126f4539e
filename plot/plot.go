// Package plot draws the columns of the projection tables as PNG line charts.
package plot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rdodkins/realestate"
	"github.com/vicanso/go-charts/v2"
)

// Pair names a real-estate column to plot against an alternative column on the same axes.
type Pair struct {
	Label string
	Left  string // real-estate column
	Right string // alternative column
}

// DefaultPairs are the columns plotted when none are asked for.
var DefaultPairs = []Pair{
	{realestate.ColEquity, realestate.ColEquity, realestate.ColEquity},
	{realestate.ColCumulativeProfit, realestate.ColCumulativeProfit, realestate.ColCumulativeProfit},
	{realestate.ColCashflow, realestate.ColCashflow, realestate.ColCashflow},
	{"Asset Value", realestate.ColPropertyValue, realestate.ColStockValue},
	{realestate.ColReturnOnInvestment, realestate.ColReturnOnInvestment, realestate.ColReturnOnInvestment},
}

// ParsePair reads a pair either as a single column name plotted on both sides, or
// as "label=left:right".
func ParsePair(s string) (Pair, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Pair{}, errors.New("empty column pair")
	}
	label, columns, found := strings.Cut(s, "=")
	if !found {
		return Pair{s, s, s}, nil
	}
	left, right, found := strings.Cut(columns, ":")
	if !found {
		return Pair{}, fmt.Errorf("invalid column pair %q, want label=left:right", s)
	}
	p := Pair{strings.TrimSpace(label), strings.TrimSpace(left), strings.TrimSpace(right)}
	if p.Label == "" || p.Left == "" || p.Right == "" {
		return Pair{}, fmt.Errorf("invalid column pair %q, want label=left:right", s)
	}
	return p, nil
}

// ParsePairs reads a semicolon separated list of pairs.
func ParsePairs(s string) ([]Pair, error) {
	var pairs []Pair
	for _, item := range strings.Split(s, ";") {
		if strings.TrimSpace(item) == "" {
			continue
		}
		p, err := ParsePair(item)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// Options sets the size of a chart in pixels.
type Options struct {
	Width  int
	Height int
}

// DefaultOptions is the size used for charts.
var DefaultOptions = Options{Width: 1000, Height: 600}

// bounds returns the y-axis range of the series, padded by 5%.
func bounds(series [][]float64) (lo, hi float64) {
	first := true
	for _, values := range series {
		for _, v := range values {
			if first {
				lo, hi, first = v, v, false
				continue
			}
			lo, hi = min(lo, v), max(hi, v)
		}
	}
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = max(1, abs(hi)*0.05)
	}
	return lo - pad, hi + pad
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Render draws the pair as a PNG: the left column of re against the right column of
// alt. alt may be nil to draw the real-estate column alone.
func Render(re, alt *realestate.Table, p Pair, opts Options) ([]byte, error) {
	left, err := re.MustColumn(p.Left)
	if err != nil {
		return nil, err
	}
	if len(left) < 2 {
		return nil, errors.New("not enough data points")
	}
	series := [][]float64{left}
	names := []string{re.Name}
	if alt != nil {
		right, err := alt.MustColumn(p.Right)
		if err != nil {
			return nil, err
		}
		series = append(series, right)
		names = append(names, alt.Name)
	}

	yMin, yMax := bounds(series)
	split := max(1, min(len(left)/5, 12))
	painter, err := charts.LineRender(series,
		charts.TitleTextOptionFunc(p.Label),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: re.Labels, BoundaryGap: charts.FalseFlag(), SplitNumber: split}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.LegendOptionFunc(charts.LegendOption{Data: names, Top: charts.PositionTop}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(opts.Width),
		charts.HeightOptionFunc(opts.Height),
	)
	if err != nil {
		return nil, fmt.Errorf("rendering %q: %w", p.Label, err)
	}
	return painter.Bytes()
}

// FileName returns a file name for the pair's chart, like "cumulative-profit.png".
func (p Pair) FileName() string {
	name := strings.ToLower(strings.TrimSpace(p.Label))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, name)
	return name + ".png"
}
