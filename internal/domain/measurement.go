package domain

import (
	"fmt"
	"sort"

	m "qirk.dev/pkg/qirk/internal/model"
)

// Measurement bundles the circuits a backend must run and the
// post-processing that turns raw registers into results.
type Measurement interface {
	// Circuits are the measured circuits, run after the constant circuit.
	Circuits() []m.Circuit
	// ConstantCircuit is the shared preparation circuit, nil when absent.
	ConstantCircuit() *m.Circuit
	// SubstituteParameters resolves symbolic parameters in every circuit.
	SubstituteParameters(values map[string]float64) (Measurement, error)
}

// ClassicalRegisterMeasurement returns the raw classical registers without
// post-processing.
type ClassicalRegisterMeasurement struct {
	Constant    *m.Circuit
	CircuitList []m.Circuit
}

func (c ClassicalRegisterMeasurement) Circuits() []m.Circuit {
	return append([]m.Circuit{}, c.CircuitList...)
}

func (c ClassicalRegisterMeasurement) ConstantCircuit() *m.Circuit {
	return c.Constant
}

func (c ClassicalRegisterMeasurement) SubstituteParameters(values map[string]float64) (Measurement, error) {
	out := ClassicalRegisterMeasurement{CircuitList: make([]m.Circuit, len(c.CircuitList))}

	if c.Constant != nil {
		sub, err := c.Constant.SubstituteParameters(values)
		if err != nil {
			return nil, err
		}

		out.Constant = &sub
	}

	for i, circuit := range c.CircuitList {
		sub, err := circuit.SubstituteParameters(values)
		if err != nil {
			return nil, err
		}

		out.CircuitList[i] = sub
	}

	return out, nil
}

// PauliZProductInput declares which Z-basis products to estimate from bit
// registers and how to combine them into named expectation values.
type PauliZProductInput struct {
	NumberQubits int
	// PauliProducts maps a readout register to the qubit masks of the
	// products measured into it, keyed by product index.
	PauliProducts map[string]map[int][]int
	// Linear maps an output name to product-index coefficients.
	Linear map[string]map[int]float64
	// Offsets are constant terms added per output name.
	Offsets map[string]float64
}

// NewPauliZProductInput returns an empty input for the given register width.
func NewPauliZProductInput(numberQubits int) PauliZProductInput {
	return PauliZProductInput{
		NumberQubits:  numberQubits,
		PauliProducts: make(map[string]map[int][]int),
		Linear:        make(map[string]map[int]float64),
		Offsets:       make(map[string]float64),
	}
}

// AddPauliProduct registers a Z product over the given qubits measured into
// readout and returns its product index.
func (in *PauliZProductInput) AddPauliProduct(readout string, qubits []int) int {
	if in.PauliProducts[readout] == nil {
		in.PauliProducts[readout] = make(map[int][]int)
	}

	// Product indices count across every readout register.
	index := 0
	for _, products := range in.PauliProducts {
		index += len(products)
	}

	in.PauliProducts[readout][index] = append([]int{}, qubits...)

	return index
}

// AddLinearExpVal names an output as a linear combination of products.
func (in *PauliZProductInput) AddLinearExpVal(name string, linear map[int]float64) {
	coeffs := make(map[int]float64, len(linear))
	for k, v := range linear {
		coeffs[k] = v
	}

	in.Linear[name] = coeffs
}

// PauliZProductMeasurement estimates expectation values of Z-product
// observables from repeated bit-register measurements.
type PauliZProductMeasurement struct {
	Constant    *m.Circuit
	CircuitList []m.Circuit
	Input       PauliZProductInput
}

func (p PauliZProductMeasurement) Circuits() []m.Circuit {
	return append([]m.Circuit{}, p.CircuitList...)
}

func (p PauliZProductMeasurement) ConstantCircuit() *m.Circuit {
	return p.Constant
}

func (p PauliZProductMeasurement) SubstituteParameters(values map[string]float64) (Measurement, error) {
	out := PauliZProductMeasurement{
		CircuitList: make([]m.Circuit, len(p.CircuitList)),
		Input:       p.Input,
	}

	if p.Constant != nil {
		sub, err := p.Constant.SubstituteParameters(values)
		if err != nil {
			return nil, err
		}

		out.Constant = &sub
	}

	for i, circuit := range p.CircuitList {
		sub, err := circuit.SubstituteParameters(values)
		if err != nil {
			return nil, err
		}

		out.CircuitList[i] = sub
	}

	return out, nil
}

// EvaluateRegisters turns measured bit registers into the named expectation
// values declared by the input.
func (p PauliZProductMeasurement) EvaluateRegisters(bits m.BitRegisters) (map[string]float64, error) {
	productMeans := make(map[int]float64)

	for readout, products := range p.Input.PauliProducts {
		rows, ok := bits[readout]
		if !ok {
			return nil, fmt.Errorf("readout register %q missing from backend output", readout)
		}

		if len(rows) == 0 {
			return nil, fmt.Errorf("readout register %q holds no shots", readout)
		}

		for index, qubits := range products {
			sum := 0.0

			for _, row := range rows {
				parity := 1.0

				for _, q := range qubits {
					if q >= len(row) {
						return nil, fmt.Errorf("qubit %d outside register %q of width %d", q, readout, len(row))
					}

					if row[q] {
						parity = -parity
					}
				}

				sum += parity
			}

			productMeans[index] = sum / float64(len(rows))
		}
	}

	values := make(map[string]float64, len(p.Input.Linear))

	names := make([]string, 0, len(p.Input.Linear))
	for name := range p.Input.Linear {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		total := p.Input.Offsets[name]

		for index, coeff := range p.Input.Linear[name] {
			mean, ok := productMeans[index]
			if !ok {
				return nil, fmt.Errorf("expectation value %q references unknown product %d", name, index)
			}

			total += coeff * mean
		}

		values[name] = total
	}

	return values, nil
}
