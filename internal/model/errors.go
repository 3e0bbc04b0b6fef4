package model

import "fmt"

// UnresolvedSymbolError reports that a concrete value was requested from a
// scalar or operation that still contains free symbolic parameters.
type UnresolvedSymbolError struct {
	Symbol string
}

func (e *UnresolvedSymbolError) Error() string {
	if e.Symbol == "" {
		return "value contains unresolved symbolic parameters"
	}

	return fmt.Sprintf("symbolic parameter %q is not resolved", e.Symbol)
}

// CalculatorError reports a symbolic expression that cannot be parsed or
// evaluated.
type CalculatorError struct {
	Expr   string
	Reason string
}

func (e *CalculatorError) Error() string {
	return fmt.Sprintf("cannot evaluate expression %q: %s", e.Expr, e.Reason)
}

// QubitRemappingError reports a qubit mapping that does not cover every qubit
// an operation touches, or that maps two distinct qubits to the same target.
type QubitRemappingError struct {
	Qubit  int
	Reason string
}

func (e *QubitRemappingError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot remap qubit %d: %s", e.Qubit, e.Reason)
	}

	return fmt.Sprintf("qubit %d is missing from the remapping", e.Qubit)
}

// IndexError reports out-of-range circuit indexing or an invalid slice.
type IndexError struct {
	Index  int
	Length int
	Reason string
}

func (e *IndexError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("index %d: %s", e.Index, e.Reason)
	}

	return fmt.Sprintf("index %d out of range for circuit of length %d", e.Index, e.Length)
}

// SerializationError reports a malformed payload or an incompatible
// serialization version.
type SerializationError struct {
	Format string
	Reason string
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("cannot deserialize %s payload: %s", e.Format, e.Reason)
}

// TypeMismatchError reports an operand of the wrong kind, e.g. appending a
// non-operation to a circuit or multiplying gates that are not both
// single-qubit unitaries.
type TypeMismatchError struct {
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
}
