package domain

import (
	"context"
	"fmt"
	"sort"

	m "qirk.dev/pkg/qirk/internal/model"
)

// QuantumProgram pairs a measurement with the ordered list of free parameter
// names its circuits expect. Programs are immutable; running one never
// mutates it.
type QuantumProgram struct {
	measurement         Measurement
	inputParameterNames []string
}

// NewQuantumProgram builds a program over the given measurement.
func NewQuantumProgram(measurement Measurement, inputParameterNames []string) QuantumProgram {
	return QuantumProgram{
		measurement:         measurement,
		inputParameterNames: append([]string{}, inputParameterNames...),
	}
}

// Measurement returns the program's measurement.
func (q QuantumProgram) Measurement() Measurement {
	return q.measurement
}

// InputParameterNames returns the declared parameter names in order.
func (q QuantumProgram) InputParameterNames() []string {
	return append([]string{}, q.inputParameterNames...)
}

// bindParameters pairs positional values with the declared names. The count
// must match exactly.
func (q QuantumProgram) bindParameters(params []float64) (map[string]float64, error) {
	if len(params) != len(q.inputParameterNames) {
		return nil, &m.TypeMismatchError{
			Expected: fmt.Sprintf("%d input parameters", len(q.inputParameterNames)),
			Got:      fmt.Sprintf("%d values", len(params)),
		}
	}

	values := make(map[string]float64, len(params))
	for i, name := range q.inputParameterNames {
		values[name] = params[i]
	}

	return values, nil
}

// Run substitutes the positional parameters and hands the resolved
// measurement to the backend for expectation values. Backend failures pass
// through unchanged.
func (q QuantumProgram) Run(ctx context.Context, backend Backend, params []float64) (map[string]float64, error) {
	values, err := q.bindParameters(params)
	if err != nil {
		return nil, err
	}

	resolved, err := q.measurement.SubstituteParameters(values)
	if err != nil {
		return nil, err
	}

	return backend.RunMeasurement(ctx, resolved)
}

// RunRegisters is Run for raw register output.
func (q QuantumProgram) RunRegisters(ctx context.Context, backend Backend, params []float64) (m.RegisterOutput, error) {
	values, err := q.bindParameters(params)
	if err != nil {
		return m.RegisterOutput{}, err
	}

	resolved, err := q.measurement.SubstituteParameters(values)
	if err != nil {
		return m.RegisterOutput{}, err
	}

	return backend.RunRegisters(ctx, resolved)
}

// Equal reports structural equality: same parameter names in the same order
// and structurally equal measurement circuits.
func (q QuantumProgram) Equal(other QuantumProgram) bool {
	if len(q.inputParameterNames) != len(other.inputParameterNames) {
		return false
	}

	for i := range q.inputParameterNames {
		if q.inputParameterNames[i] != other.inputParameterNames[i] {
			return false
		}
	}

	return measurementsEqual(q.measurement, other.measurement)
}

func measurementsEqual(a, b Measurement) bool {
	if (a == nil) != (b == nil) {
		return false
	}

	if a == nil {
		return true
	}

	ac, bc := a.ConstantCircuit(), b.ConstantCircuit()
	if (ac == nil) != (bc == nil) {
		return false
	}

	if ac != nil && !ac.Equal(*bc) {
		return false
	}

	al, bl := a.Circuits(), b.Circuits()
	if len(al) != len(bl) {
		return false
	}

	for i := range al {
		if !al[i].Equal(bl[i]) {
			return false
		}
	}

	return true
}

// Compare gives a total order over programs: parameter names first, then the
// serialized circuits. Comparisons never fail.
func (q QuantumProgram) Compare(other QuantumProgram) int {
	an := q.inputParameterNames
	bn := other.inputParameterNames

	for i := 0; i < len(an) && i < len(bn); i++ {
		if an[i] != bn[i] {
			if an[i] < bn[i] {
				return -1
			}

			return 1
		}
	}

	if len(an) != len(bn) {
		if len(an) < len(bn) {
			return -1
		}

		return 1
	}

	return compareCircuitLists(circuitListOf(q.measurement), circuitListOf(other.measurement))
}

func circuitListOf(measurement Measurement) []m.Circuit {
	if measurement == nil {
		return nil
	}

	var list []m.Circuit

	if constant := measurement.ConstantCircuit(); constant != nil {
		list = append(list, *constant)
	}

	list = append(list, measurement.Circuits()...)

	return list
}

func compareCircuitLists(a, b []m.Circuit) int {
	keys := func(list []m.Circuit) []string {
		out := make([]string, len(list))

		for i, c := range list {
			data, err := c.ToJSON()
			if err != nil {
				out[i] = c.String()
				continue
			}

			out[i] = string(data)
		}

		return out
	}

	ak, bk := keys(a), keys(b)
	sort.Strings(ak)
	sort.Strings(bk)

	for i := 0; i < len(ak) && i < len(bk); i++ {
		if ak[i] != bk[i] {
			if ak[i] < bk[i] {
				return -1
			}

			return 1
		}
	}

	switch {
	case len(ak) < len(bk):
		return -1
	case len(ak) > len(bk):
		return 1
	default:
		return 0
	}
}
