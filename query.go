package realestate

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Document returns the result as a generic JSON value, with the comparison under
// "comparison".
func (r *Result) Document() (any, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding result: %w", err)
	}

	c, err := r.Compare()
	if err != nil {
		return nil, err
	}
	data, err = json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding comparison: %w", err)
	}
	var comparison any
	if err := json.Unmarshal(data, &comparison); err != nil {
		return nil, fmt.Errorf("decoding comparison: %w", err)
	}
	doc["comparison"] = comparison
	return doc, nil
}

// Query evaluates a JSONPath expression, like "$.realEstate[9].equity", over
// the result document.
//
// A single answer is returned as is, not wrapped in a list.
func (r *Result) Query(path string) (any, error) {
	doc, err := r.Document()
	if err != nil {
		return nil, err
	}
	val, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer, or a single answer
	if list, ok := val.([]any); ok && len(list) == 1 {
		val = list[0]
	}
	return val, nil
}
