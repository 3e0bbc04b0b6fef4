// Package model defines the symbolic quantum IR: scalars, operations and circuits.
package model

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// CalculatorFloat is a scalar parameter that is either a concrete float or a
// named symbolic expression. It is an immutable value type; every transform
// returns a new scalar.
type CalculatorFloat struct {
	value    float64
	expr     string
	symbolic bool
}

// Float wraps a concrete float.
func Float(v float64) CalculatorFloat {
	return CalculatorFloat{value: v}
}

// Symbolic wraps a symbolic expression string.
func Symbolic(expr string) CalculatorFloat {
	return CalculatorFloat{expr: expr, symbolic: true}
}

// ScalarFromString parses s as a float and falls back to a symbolic expression.
func ScalarFromString(s string) CalculatorFloat {
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return Float(v)
	}

	return Symbolic(s)
}

// IsFloat reports whether the scalar holds a concrete float.
func (c CalculatorFloat) IsFloat() bool {
	return !c.symbolic
}

// Float returns the concrete value, or an UnresolvedSymbolError if the scalar
// is still symbolic.
func (c CalculatorFloat) Float() (float64, error) {
	if c.symbolic {
		return 0, &UnresolvedSymbolError{Symbol: c.expr}
	}

	return c.value, nil
}

func (c CalculatorFloat) String() string {
	if c.symbolic {
		return c.expr
	}

	return strconv.FormatFloat(c.value, 'g', -1, 64)
}

// Substitute resolves the scalar against the given symbol table. The result is
// a concrete float when the expression fully evaluates; a missing symbol is an
// UnresolvedSymbolError.
func (c CalculatorFloat) Substitute(values map[string]float64) (CalculatorFloat, error) {
	if !c.symbolic {
		return c, nil
	}

	v, err := evaluateExpression(c.expr, values)
	if err != nil {
		return CalculatorFloat{}, err
	}

	return Float(v), nil
}

// SubstituteName replaces free occurrences of a single name and leaves every
// other symbol in place. The scalar becomes a float only when nothing symbolic
// remains.
func (c CalculatorFloat) SubstituteName(name string, value float64) CalculatorFloat {
	if !c.symbolic {
		return c
	}

	replaced := replaceIdentifier(c.expr, name, value)
	if v, err := evaluateExpression(replaced, nil); err == nil {
		return Float(v)
	}

	return Symbolic(replaced)
}

func pairOp(a, b CalculatorFloat, op string, f func(x, y float64) float64) CalculatorFloat {
	if a.IsFloat() && b.IsFloat() {
		return Float(f(a.value, b.value))
	}

	return Symbolic("(" + a.String() + " " + op + " " + b.String() + ")")
}

// Add returns a + o, building an expression when either side is symbolic.
func (c CalculatorFloat) Add(o CalculatorFloat) CalculatorFloat {
	return pairOp(c, o, "+", func(x, y float64) float64 { return x + y })
}

// Sub returns a - o.
func (c CalculatorFloat) Sub(o CalculatorFloat) CalculatorFloat {
	return pairOp(c, o, "-", func(x, y float64) float64 { return x - y })
}

// Mul returns a * o.
func (c CalculatorFloat) Mul(o CalculatorFloat) CalculatorFloat {
	return pairOp(c, o, "*", func(x, y float64) float64 { return x * y })
}

// Div returns a / o.
func (c CalculatorFloat) Div(o CalculatorFloat) CalculatorFloat {
	return pairOp(c, o, "/", func(x, y float64) float64 { return x / y })
}

// Pow returns a ^ o.
func (c CalculatorFloat) Pow(o CalculatorFloat) CalculatorFloat {
	return pairOp(c, o, "^", powFloat)
}

// Neg returns the negated scalar.
func (c CalculatorFloat) Neg() CalculatorFloat {
	if c.IsFloat() {
		return Float(-c.value)
	}

	return Symbolic("(-" + c.expr + ")")
}

// Equal compares scalars structurally: floats by value, expressions verbatim.
func (c CalculatorFloat) Equal(o CalculatorFloat) bool {
	if c.symbolic != o.symbolic {
		return false
	}

	if c.symbolic {
		return c.expr == o.expr
	}

	return c.value == o.value
}

// MarshalJSON encodes a float scalar as a JSON number and a symbolic scalar as
// a JSON string.
func (c CalculatorFloat) MarshalJSON() ([]byte, error) {
	if c.symbolic {
		return json.Marshal(c.expr)
	}

	return json.Marshal(c.value)
}

// UnmarshalJSON accepts either encoding produced by MarshalJSON.
func (c *CalculatorFloat) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*c = Float(v)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &SerializationError{Format: "json", Reason: "scalar must be a number or an expression string"}
	}

	// A string on the wire is always symbolic, even when the expression is a
	// plain numeric literal, so decode(encode(x)) preserves the variant.
	*c = Symbolic(s)

	return nil
}

// MarshalCBOR mirrors the JSON encoding for the compact binary format.
func (c CalculatorFloat) MarshalCBOR() ([]byte, error) {
	if c.symbolic {
		return cbor.Marshal(c.expr)
	}

	return cbor.Marshal(c.value)
}

// UnmarshalCBOR accepts either encoding produced by MarshalCBOR.
func (c *CalculatorFloat) UnmarshalCBOR(data []byte) error {
	var v float64
	if err := cbor.Unmarshal(data, &v); err == nil {
		*c = Float(v)
		return nil
	}

	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return &SerializationError{Format: "bincode", Reason: "scalar must be a number or an expression string"}
	}

	// Strings stay symbolic, mirroring the JSON decoder.
	*c = Symbolic(s)

	return nil
}
