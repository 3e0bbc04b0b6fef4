package adapter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	m "qirk.dev/pkg/qirk/internal/model"
)

// RunResult is the outcome of running one parameter set.
type RunResult struct {
	Parameters        []float64          `json:"parameters"`
	ExpectationValues map[string]float64 `json:"expectation_values,omitempty"`
	BitRegisters      m.BitRegisters     `json:"bit_registers,omitempty"`
	FloatRegisters    m.FloatRegisters   `json:"float_registers,omitempty"`
	ComplexRegisters  m.ComplexRegisters `json:"complex_registers,omitempty"`
}

// ResultStore persists run results so sweeps can be inspected after the
// fact.
type ResultStore interface {
	SaveResults(path string, results []RunResult) error
	LoadResults(path string) ([]RunResult, error)
}

// JSONResultStore stores results as a single JSON document per run.
type JSONResultStore struct{}

// NewJSONResultStore constructs a JSONResultStore.
func NewJSONResultStore() *JSONResultStore {
	return &JSONResultStore{}
}

// SaveResults writes the results to path, replacing any previous file.
func (s *JSONResultStore) SaveResults(path string, results []RunResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		slog.Error("failed to write results", "path", path, "error", err)
		return fmt.Errorf("failed to write results: %w", err)
	}

	slog.Debug("saved run results", "path", path, "count", len(results))

	return nil
}

// LoadResults reads back a results file written by SaveResults.
func (s *JSONResultStore) LoadResults(path string) ([]RunResult, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the CLI user
	if err != nil {
		return nil, fmt.Errorf("failed to read results: %w", err)
	}

	var results []RunResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to decode results: %w", err)
	}

	return results, nil
}
