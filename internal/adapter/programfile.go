package adapter

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"qirk.dev/pkg/qirk/internal/domain"
	m "qirk.dev/pkg/qirk/internal/model"
)

// ProgramFile is a yaml description of a quantum program: a circuit, the
// free parameter names, optional parameter sets to sweep, and an optional
// Pauli-Z product measurement over the readout registers.
type ProgramFile struct {
	Name          string
	Parameters    []string
	ParameterSets [][]float64
	Circuit       m.Circuit
	Input         *domain.PauliZProductInput
}

// ProgramFileAdapter loads program descriptions from disk so the CLI can
// stay ignorant of the on-disk format.
type ProgramFileAdapter interface {
	Load(path string) (ProgramFile, error)
}

// LocalProgramFileAdapter reads yaml program files from the local
// filesystem.
type LocalProgramFileAdapter struct{}

// NewLocalProgramFileAdapter constructs a LocalProgramFileAdapter.
func NewLocalProgramFileAdapter() *LocalProgramFileAdapter {
	return &LocalProgramFileAdapter{}
}

type programFileYAML struct {
	Name          string           `yaml:"name"`
	Parameters    []string         `yaml:"parameters"`
	ParameterSets [][]float64      `yaml:"parameter_sets"`
	Circuit       []map[string]any `yaml:"circuit"`
	Measurement   *measurementYAML `yaml:"measurement"`
}

type measurementYAML struct {
	Readout           string                `yaml:"readout"`
	NumberQubits      int                   `yaml:"number_qubits"`
	PauliProducts     [][]int               `yaml:"pauli_products"`
	ExpectationValues map[string]expValYAML `yaml:"expectation_values"`
}

type expValYAML struct {
	Offset float64         `yaml:"offset"`
	Linear map[int]float64 `yaml:"linear"`
}

// Load parses one yaml program file.
func (a *LocalProgramFileAdapter) Load(path string) (ProgramFile, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the CLI user
	if err != nil {
		return ProgramFile{}, fmt.Errorf("failed to read program file: %w", err)
	}

	return a.Parse(data)
}

// Parse decodes a yaml program description.
func (a *LocalProgramFileAdapter) Parse(data []byte) (ProgramFile, error) {
	var wire programFileYAML
	if err := yaml.Unmarshal(data, &wire); err != nil {
		return ProgramFile{}, fmt.Errorf("failed to parse program file: %w", err)
	}

	circuit := m.NewCircuit()

	for i, entry := range wire.Circuit {
		op, err := operationFromYAML(entry)
		if err != nil {
			return ProgramFile{}, fmt.Errorf("circuit entry %d: %w", i, err)
		}

		circuit.Add(op)
	}

	file := ProgramFile{
		Name:          wire.Name,
		Parameters:    wire.Parameters,
		ParameterSets: wire.ParameterSets,
		Circuit:       circuit,
	}

	if wire.Measurement != nil {
		input, err := measurementInput(wire.Measurement)
		if err != nil {
			return ProgramFile{}, err
		}

		file.Input = input
	}

	return file, nil
}

// measurementInput builds the Z-product input declared in the yaml
// measurement block. Products are indexed by their position in the list.
func measurementInput(wire *measurementYAML) (*domain.PauliZProductInput, error) {
	if wire.Readout == "" {
		return nil, fmt.Errorf("measurement block is missing the readout register")
	}

	input := domain.NewPauliZProductInput(wire.NumberQubits)

	for i, qubits := range wire.PauliProducts {
		index := input.AddPauliProduct(wire.Readout, qubits)
		if index != i {
			return nil, fmt.Errorf("pauli product %d registered out of order as %d", i, index)
		}
	}

	for name, expVal := range wire.ExpectationValues {
		for index := range expVal.Linear {
			if index < 0 || index >= len(wire.PauliProducts) {
				return nil, fmt.Errorf("expectation value %q references unknown product %d", name, index)
			}
		}

		input.AddLinearExpVal(name, expVal.Linear)

		if expVal.Offset != 0 {
			input.Offsets[name] = expVal.Offset
		}
	}

	return &input, nil
}

// operationFromYAML turns one `op: Name` mapping into an operation by
// routing the remaining keys through the typed JSON envelope decoder.
func operationFromYAML(entry map[string]any) (m.Operation, error) {
	name, ok := entry["op"].(string)
	if !ok {
		return nil, fmt.Errorf("missing op key in %v", entry)
	}

	fields := make(map[string]any, len(entry))
	for k, v := range entry {
		if k == "op" {
			continue
		}

		fields[k] = v
	}

	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("fields of %s did not encode: %w", name, err)
	}

	envelope, err := json.Marshal(map[string]any{
		"type":                  name,
		"min_supported_version": "1.0.0",
		"data":                  json.RawMessage(payload),
	})
	if err != nil {
		return nil, err
	}

	return m.OperationFromJSON(envelope)
}

// BuildProgram wraps the file's circuit in a measurement program: a Z-product
// measurement when the file declares one, raw classical registers otherwise.
func (p ProgramFile) BuildProgram() domain.QuantumProgram {
	var measurement domain.Measurement

	if p.Input != nil {
		measurement = domain.PauliZProductMeasurement{
			CircuitList: []m.Circuit{p.Circuit},
			Input:       *p.Input,
		}
	} else {
		measurement = domain.ClassicalRegisterMeasurement{
			CircuitList: []m.Circuit{p.Circuit},
		}
	}

	return domain.NewQuantumProgram(measurement, p.Parameters)
}
