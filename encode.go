package realestate

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// exportDigits is the number of decimals kept when exporting tables: cents for
// amounts, and basis points of a percent for ratios.
const exportDigits = 4

// round returns v rounded for export.
func round(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(exportDigits)
}

// rowJSON encodes row i of the table as a JSON object, columns in table order.
func (t *Table) rowJSON(i int) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("Label", t.Labels[i])
	for _, c := range t.Columns {
		w.Append(c.Name, round(c.Values[i]))
	}
	return w.MarshalJSON()
}

// EncodeTable writes the table as JSONL, one object per year.
func EncodeTable(w io.Writer, t *Table) error {
	for i := 0; i < t.Len(); i++ {
		line, err := t.rowJSON(i)
		if err != nil {
			return fmt.Errorf("encoding %s row %d: %w", t.Name, i, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

// DecodeTable reads a table written by EncodeTable. Columns keep the order of the first line.
func DecodeTable(name string, r io.Reader) (*Table, error) {
	t := &Table{Name: name}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	for row := 0; ; row++ {
		names, values, err := decodeRow(dec)
		if err == io.EOF {
			return t, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decoding %s row %d: %w", name, row, err)
		}
		if row == 0 {
			for _, n := range names {
				t.Columns = append(t.Columns, Column{Name: n})
			}
		}
		label, ok := values["Label"]
		if !ok {
			return nil, fmt.Errorf("decoding %s row %d: missing Label", name, row)
		}
		t.Labels = append(t.Labels, label.String())
		for i := range t.Columns {
			n, ok := values[t.Columns[i].Name]
			if !ok {
				return nil, fmt.Errorf("decoding %s row %d: missing column %q", name, row, t.Columns[i].Name)
			}
			f, err := n.Float64()
			if err != nil {
				return nil, fmt.Errorf("decoding %s row %d column %q: %w", name, row, t.Columns[i].Name, err)
			}
			t.Columns[i].Values = append(t.Columns[i].Values, f)
		}
	}
}

// decodeRow reads one JSON object and returns its numeric keys in order.
func decodeRow(dec *json.Decoder) (names []string, values map[string]json.Number, err error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, fmt.Errorf("expected an object, got %v", tok)
	}
	values = make(map[string]json.Number)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, _ := tok.(string)
		tok, err = dec.Token()
		if err != nil {
			return nil, nil, err
		}
		switch v := tok.(type) {
		case json.Number:
			values[key] = v
			names = append(names, key)
		case string:
			values[key] = json.Number(v)
		default:
			return nil, nil, fmt.Errorf("unexpected value %v for %q", tok, key)
		}
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, nil, err
	}
	return names, values, nil
}

// EncodeTableCSV writes the table as CSV with a header line.
func EncodeTableCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	header := append([]string{"Label"}, t.Names()...)
	if err := cw.Write(header); err != nil {
		return err
	}
	record := make([]string, len(header))
	for i := 0; i < t.Len(); i++ {
		record[0] = t.Labels[i]
		for j, c := range t.Columns {
			record[j+1] = round(c.Values[i]).String()
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ParseFormat parses a table export format.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(s); f {
	case "jsonl", "csv":
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q, want jsonl or csv", s)
	}
}
