package model

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/fxamacker/cbor/v2"
)

func TestCalculatorFloatArithmetic(t *testing.T) {
	t.Run("float operands stay numeric", func(t *testing.T) {
		got := Float(2).Add(Float(3)).Mul(Float(4))

		if !got.IsFloat() {
			t.Fatalf("expected float result, got symbolic %q", got.String())
		}

		v, err := got.Float()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if v != 20 {
			t.Errorf("expected 20, got %v", v)
		}
	})

	t.Run("symbolic operand builds an expression", func(t *testing.T) {
		got := Symbolic("theta").Mul(Float(2))

		if got.IsFloat() {
			t.Fatal("expected symbolic result")
		}

		if _, err := got.Float(); err == nil {
			t.Fatal("expected error resolving symbolic scalar")
		}
	})

	t.Run("unresolved float access returns typed error", func(t *testing.T) {
		_, err := Symbolic("theta").Float()

		var unresolved *UnresolvedSymbolError
		if !errors.As(err, &unresolved) {
			t.Fatalf("expected UnresolvedSymbolError, got %T", err)
		}

		if unresolved.Symbol != "theta" {
			t.Errorf("expected symbol theta, got %q", unresolved.Symbol)
		}
	})

	t.Run("division and power on floats", func(t *testing.T) {
		got := Float(8).Div(Float(2)).Pow(Float(2))

		v, err := got.Float()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if v != 16 {
			t.Errorf("expected 16, got %v", v)
		}
	})
}

func TestCalculatorFloatSubstitute(t *testing.T) {
	t.Run("full substitution yields a float", func(t *testing.T) {
		expr := Symbolic("theta").Mul(Float(2)).Add(Symbolic("phi"))

		got, err := expr.Substitute(map[string]float64{"theta": 0.5, "phi": 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		v, err := got.Float()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if math.Abs(v-2) > 1e-12 {
			t.Errorf("expected 2, got %v", v)
		}
	})

	t.Run("missing binding is an unresolved symbol", func(t *testing.T) {
		expr := Symbolic("theta").Add(Symbolic("phi"))

		_, err := expr.Substitute(map[string]float64{"theta": 1})

		var unresolved *UnresolvedSymbolError
		if !errors.As(err, &unresolved) {
			t.Fatalf("expected UnresolvedSymbolError, got %v", err)
		}
	})

	t.Run("substituting a float is the identity", func(t *testing.T) {
		got, err := Float(1.5).Substitute(map[string]float64{"theta": 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !got.Equal(Float(1.5)) {
			t.Errorf("expected 1.5, got %v", got.String())
		}
	})

	t.Run("single-name substitution leaves other names symbolic", func(t *testing.T) {
		expr := Symbolic("theta").Add(Symbolic("phi"))

		got := expr.SubstituteName("theta", 2)
		if got.IsFloat() {
			t.Fatal("expected result to stay symbolic while phi is unbound")
		}

		resolved, err := got.Substitute(map[string]float64{"phi": 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		v, _ := resolved.Float()
		if math.Abs(v-3) > 1e-12 {
			t.Errorf("expected 3, got %v", v)
		}
	})
}

func TestCalculatorFloatJSON(t *testing.T) {
	t.Run("float encodes as a number", func(t *testing.T) {
		data, err := json.Marshal(Float(1.25))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if string(data) != "1.25" {
			t.Errorf("expected 1.25, got %s", data)
		}
	})

	t.Run("symbolic encodes as a string", func(t *testing.T) {
		data, err := json.Marshal(Symbolic("(theta * 2e0)"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var back CalculatorFloat
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if back.IsFloat() {
			t.Fatal("expected symbolic after round trip")
		}
	})

	t.Run("number decodes as a float", func(t *testing.T) {
		var back CalculatorFloat
		if err := json.Unmarshal([]byte("3.5"), &back); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		v, err := back.Float()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if v != 3.5 {
			t.Errorf("expected 3.5, got %v", v)
		}
	})

	t.Run("numeric-literal expression stays symbolic", func(t *testing.T) {
		data, err := json.Marshal(Symbolic("1.5"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var back CalculatorFloat
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !back.Equal(Symbolic("1.5")) {
			t.Errorf("expected Symbolic(1.5) after round trip, got %v", back)
		}
	})

	t.Run("numeric-literal expression stays symbolic in bincode", func(t *testing.T) {
		data, err := cbor.Marshal(Symbolic("1.5"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var back CalculatorFloat
		if err := cbor.Unmarshal(data, &back); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !back.Equal(Symbolic("1.5")) {
			t.Errorf("expected Symbolic(1.5) after round trip, got %v", back)
		}
	})
}

func TestEvaluateExpression(t *testing.T) {
	tests := []struct {
		name   string
		expr   string
		values map[string]float64
		want   float64
	}{
		{"addition", "1 + 2", nil, 3},
		{"precedence", "1 + 2 * 3", nil, 7},
		{"parentheses", "(1 + 2) * 3", nil, 9},
		{"unary minus", "-theta", map[string]float64{"theta": 2}, -2},
		{"power right associative", "2 ^ 3 ^ 2", nil, 512},
		{"pi constant", "cos(pi)", nil, -1},
		{"nested call", "sqrt(abs(-16))", nil, 4},
		{"exponent literal", "1e2 + 5", nil, 105},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evaluateExpression(tt.expr, tt.values)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	t.Run("unknown identifier is unresolved", func(t *testing.T) {
		_, err := evaluateExpression("theta + 1", nil)

		var unresolved *UnresolvedSymbolError
		if !errors.As(err, &unresolved) {
			t.Fatalf("expected UnresolvedSymbolError, got %v", err)
		}
	})

	t.Run("malformed expression is a calculator error", func(t *testing.T) {
		_, err := evaluateExpression("1 + * 2", nil)

		var calcErr *CalculatorError
		if !errors.As(err, &calcErr) {
			t.Fatalf("expected CalculatorError, got %v", err)
		}
	})
}
