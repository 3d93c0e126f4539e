package realestate

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rdodkins/realestate/date"
)

func TestDecodeScenario(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		check   func(Scenario) bool
		wantErr bool
	}{
		{
			name:  "empty input keeps the defaults",
			input: "",
			check: func(s Scenario) bool { return s.Years == 30 && s.Acquisition.PurchasePrice == 200000 },
		},
		{
			name:  "overrides a nested field only",
			input: `{"years": 10, "rehab": {"months": 3}}`,
			check: func(s Scenario) bool {
				return s.Years == 10 && s.Rehab.Months == 3 && s.Rehab.TotalCost == 25000
			},
		},
		{
			name:  "start month",
			input: `{"start": "2025-03"}`,
			check: func(s Scenario) bool { return s.Start == date.New(2025, 3) },
		},
		{
			name:  "null alternative disables the comparison",
			input: `{"alternative": null}`,
			check: func(s Scenario) bool { return s.Alternative == nil },
		},
		{
			name:    "unknown field",
			input:   `{"acquisition": {"purchasePrise": 1}}`,
			wantErr: true,
		},
		{
			name:    "malformed",
			input:   `{"years": "ten"}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := DecodeScenario(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeScenario() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !tt.check(s) {
				t.Errorf("DecodeScenario() = %+v", s)
			}
		})
	}
}

func TestScenarioRoundTrip(t *testing.T) {
	s := DefaultScenario()
	s.Start = date.New(2024, 6)
	var buf bytes.Buffer
	if err := EncodeScenario(&buf, s); err != nil {
		t.Fatalf("EncodeScenario() unexpected error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "scenario.json")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario() unexpected error: %v", err)
	}
	if got.Start != s.Start || got.Refinance != s.Refinance || *got.Alternative != *s.Alternative {
		t.Errorf("LoadScenario() = %+v, want %+v", got, s)
	}
}

func TestLoadScenarioMissing(t *testing.T) {
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("LoadScenario() on a missing file: want an error")
	}
}

func TestRun(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		r := mustRun(t, DefaultScenario())
		if len(r.RealEstate) != 30 || len(r.Stocks) != 30 {
			t.Errorf("Run() projected %d/%d years, want 30/30", len(r.RealEstate), len(r.Stocks))
		}
	})

	t.Run("without alternative", func(t *testing.T) {
		s := DefaultScenario()
		s.Alternative = nil
		r := mustRun(t, s)
		if r.Stocks != nil || r.Alternative != nil {
			t.Errorf("Run() projected an alternative")
		}
		if _, alt := r.Tables(); alt != nil {
			t.Errorf("Tables() returned an alternative table")
		}
	})

	t.Run("invalid phase fails before projecting", func(t *testing.T) {
		s := DefaultScenario()
		s.Refinance.Vacancy = -0.1
		r, err := s.Run()
		if !errors.Is(err, ErrInvalidParameter) || r != nil {
			t.Errorf("Run() = %v, %v, want nil, %v", r, err, ErrInvalidParameter)
		}
	})

	t.Run("invalid horizon", func(t *testing.T) {
		s := DefaultScenario()
		s.Years = 0
		if _, err := s.Run(); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Run() error = %v, want %v", err, ErrInvalidParameter)
		}
	})

	t.Run("result encodes to JSON", func(t *testing.T) {
		r := mustRun(t, DefaultScenario())
		data, err := json.Marshal(r)
		if err != nil {
			t.Fatalf("json.Marshal() unexpected error: %v", err)
		}
		if !bytes.Contains(data, []byte(`"cumulativeProfit"`)) {
			t.Errorf("json.Marshal() misses the yearly metrics")
		}
	})
}
