package model

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Circuit is an ordered sequence of operations. The zero value is an empty
// circuit ready for use. Transforming methods return new circuits and leave
// the receiver untouched.
type Circuit struct {
	ops []Operation
}

// NewCircuit returns an empty circuit.
func NewCircuit() Circuit {
	return Circuit{}
}

// CircuitOf builds a circuit from the given operations.
func CircuitOf(ops ...Operation) Circuit {
	return Circuit{ops: append([]Operation{}, ops...)}
}

// Add appends a single operation.
func (c *Circuit) Add(op Operation) {
	c.ops = append(c.ops, op)
}

// Append appends operations and circuits in order. Each item must be an
// Operation or a Circuit; anything else is a TypeMismatchError.
func (c *Circuit) Append(items ...any) error {
	for _, item := range items {
		switch v := item.(type) {
		case Operation:
			c.ops = append(c.ops, v)
		case Circuit:
			c.ops = append(c.ops, v.ops...)
		case *Circuit:
			c.ops = append(c.ops, v.ops...)
		default:
			return &TypeMismatchError{Expected: "Operation or Circuit", Got: fmt.Sprintf("%T", item)}
		}
	}

	return nil
}

// Len returns the number of operations.
func (c Circuit) Len() int {
	return len(c.ops)
}

// Get returns the operation at index i.
func (c Circuit) Get(i int) (Operation, error) {
	if i < 0 || i >= len(c.ops) {
		return nil, &IndexError{Index: i, Length: len(c.ops), Reason: "operation index out of range"}
	}

	return c.ops[i], nil
}

// Set replaces the operation at index i.
func (c *Circuit) Set(i int, op Operation) error {
	if i < 0 || i >= len(c.ops) {
		return &IndexError{Index: i, Length: len(c.ops), Reason: "operation index out of range"}
	}

	c.ops[i] = op

	return nil
}

// Remove deletes the operation at index i.
func (c *Circuit) Remove(i int) error {
	if i < 0 || i >= len(c.ops) {
		return &IndexError{Index: i, Length: len(c.ops), Reason: "operation index out of range"}
	}

	c.ops = append(c.ops[:i], c.ops[i+1:]...)

	return nil
}

// GetSlice returns a new circuit with the operations in [start, stop).
func (c Circuit) GetSlice(start, stop int) (Circuit, error) {
	if start < 0 || start > len(c.ops) {
		return Circuit{}, &IndexError{Index: start, Length: len(c.ops), Reason: "slice start out of range"}
	}

	if stop < start || stop > len(c.ops) {
		return Circuit{}, &IndexError{Index: stop, Length: len(c.ops), Reason: "slice stop out of range"}
	}

	return Circuit{ops: append([]Operation{}, c.ops[start:stop]...)}, nil
}

// Operations returns a copy of the operation list.
func (c Circuit) Operations() []Operation {
	return append([]Operation{}, c.ops...)
}

// Definitions returns the register definitions, in order.
func (c Circuit) Definitions() []Definition {
	var defs []Definition

	for _, op := range c.ops {
		if def, ok := op.(Definition); ok {
			defs = append(defs, def)
		}
	}

	return defs
}

// CountOccurrences counts operations carrying any of the given tags. With no
// tags it counts every operation.
func (c Circuit) CountOccurrences(tags ...string) int {
	if len(tags) == 0 {
		return len(c.ops)
	}

	count := 0

	for _, op := range c.ops {
		if hasAnyTag(op, tags) {
			count++
		}
	}

	return count
}

// FilterByTag returns the operations carrying the given tag, in order.
func (c Circuit) FilterByTag(tag string) []Operation {
	var out []Operation

	for _, op := range c.ops {
		if hasAnyTag(op, []string{tag}) {
			out = append(out, op)
		}
	}

	return out
}

func hasAnyTag(op Operation, tags []string) bool {
	for _, have := range op.Tags() {
		for _, want := range tags {
			if have == want {
				return true
			}
		}
	}

	return false
}

// GetOperationTypes returns the distinct hqslang names and how often each
// occurs.
func (c Circuit) GetOperationTypes() map[string]int {
	types := make(map[string]int)

	for _, op := range c.ops {
		types[op.Hqslang()]++
	}

	return types
}

// InvolvedQubits returns the union of the involved qubits of every
// operation.
func (c Circuit) InvolvedQubits() InvolvedQubits {
	involved := NoQubits()

	for _, op := range c.ops {
		involved = involved.Union(op.InvolvedQubits())
		if involved.All {
			return involved
		}
	}

	return involved
}

// IsParametrized reports whether any operation still depends on a free
// symbol.
func (c Circuit) IsParametrized() bool {
	for _, op := range c.ops {
		if op.IsParametrized() {
			return true
		}
	}

	return false
}

// SubstituteParameters resolves symbolic parameters in every operation and
// returns the resulting circuit.
func (c Circuit) SubstituteParameters(values map[string]float64) (Circuit, error) {
	out := Circuit{ops: make([]Operation, len(c.ops))}

	for i, op := range c.ops {
		sub, err := op.SubstituteParameters(values)
		if err != nil {
			return Circuit{}, err
		}

		out.ops[i] = sub
	}

	return out, nil
}

// RemapQubits applies a qubit index mapping to every operation.
func (c Circuit) RemapQubits(mapping map[int]int) (Circuit, error) {
	out := Circuit{ops: make([]Operation, len(c.ops))}

	for i, op := range c.ops {
		remapped, err := op.RemapQubits(mapping)
		if err != nil {
			return Circuit{}, err
		}

		out.ops[i] = remapped
	}

	return out, nil
}

// Overrotate consumes every PragmaOverrotation marker and perturbs the angle
// of each matching subsequent rotation gate by amplitude times a normal
// sample with the marker's variance. A rotation matches when its hqslang
// equals the marker's gate name and its involved qubits contain all marker
// qubits. The markers themselves do not appear in the result.
func (c Circuit) Overrotate(src rand.Source) (Circuit, error) {
	var markers []*PragmaOverrotation

	out := Circuit{ops: make([]Operation, 0, len(c.ops))}

	for _, op := range c.ops {
		if marker, ok := op.(*PragmaOverrotation); ok {
			markers = append(markers, marker)
			continue
		}

		rotation, ok := op.(Rotation)
		if !ok {
			out.ops = append(out.ops, op)
			continue
		}

		perturbed := rotation

		for _, marker := range markers {
			if rotation.Hqslang() != marker.GateHqslang {
				continue
			}

			if !perturbed.InvolvedQubits().ContainsAll(marker.Qubits) {
				continue
			}

			normal := distuv.Normal{Mu: 0, Sigma: marker.Variance, Src: src}
			offset := marker.Amplitude * normal.Rand()

			next, ok := perturbed.WithTheta(perturbed.Theta().Add(Float(offset))).(Rotation)
			if !ok {
				return Circuit{}, &TypeMismatchError{Expected: "rotation gate", Got: perturbed.Hqslang()}
			}

			perturbed = next
		}

		out.ops = append(out.ops, perturbed)
	}

	return out, nil
}

// DeepCopy returns a structurally independent copy of the circuit.
func (c Circuit) DeepCopy() (Circuit, error) {
	data, err := c.ToBincode()
	if err != nil {
		return Circuit{}, err
	}

	return CircuitFromBincode(data)
}

// Equal reports structural equality of two circuits.
func (c Circuit) Equal(other Circuit) bool {
	if len(c.ops) != len(other.ops) {
		return false
	}

	for i := range c.ops {
		if !OperationsEqual(c.ops[i], other.ops[i]) {
			return false
		}
	}

	return true
}

// String renders one operation per line, for logs and the CLI.
func (c Circuit) String() string {
	var b strings.Builder

	for _, op := range c.ops {
		fmt.Fprintf(&b, "%s %s\n", op.Hqslang(), describeQubits(op))
	}

	return b.String()
}

func describeQubits(op Operation) string {
	involved := op.InvolvedQubits()
	if involved.All {
		return "ALL"
	}

	if len(involved.Qubits) == 0 {
		return "-"
	}

	parts := make([]string, len(involved.Qubits))
	for i, q := range involved.Qubits {
		parts[i] = fmt.Sprintf("%d", q)
	}

	return strings.Join(parts, ",")
}
