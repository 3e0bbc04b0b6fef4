package model

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"
)

func bellCircuit() Circuit {
	c := NewCircuit()
	c.Add(&DefinitionBit{Name: "ro", Length: 2, IsOutput: true})
	c.Add(&Hadamard{QubitIndex: 0})
	c.Add(&CNOT{qubitPair: qubitPair{Ctrl: 0, Tgt: 1}})
	c.Add(&PragmaRepeatedMeasurement{Readout: "ro", NumberMeasurements: 100})

	return c
}

func TestCircuitAlgebra(t *testing.T) {
	t.Run("add and get preserve order", func(t *testing.T) {
		c := bellCircuit()

		if c.Len() != 4 {
			t.Fatalf("expected 4 operations, got %d", c.Len())
		}

		op, err := c.Get(1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if op.Hqslang() != "Hadamard" {
			t.Errorf("expected Hadamard at index 1, got %s", op.Hqslang())
		}
	})

	t.Run("get out of range is an index error", func(t *testing.T) {
		c := bellCircuit()

		_, err := c.Get(4)

		var idxErr *IndexError
		if !errors.As(err, &idxErr) {
			t.Fatalf("expected IndexError, got %v", err)
		}
	})

	t.Run("set replaces in place", func(t *testing.T) {
		c := bellCircuit()

		if err := c.Set(1, &PauliX{QubitIndex: 0}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		op, _ := c.Get(1)
		if op.Hqslang() != "PauliX" {
			t.Errorf("expected PauliX after set, got %s", op.Hqslang())
		}
	})

	t.Run("remove shifts the tail", func(t *testing.T) {
		c := bellCircuit()

		if err := c.Remove(0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if c.Len() != 3 {
			t.Fatalf("expected 3 operations, got %d", c.Len())
		}

		op, _ := c.Get(0)
		if op.Hqslang() != "Hadamard" {
			t.Errorf("expected Hadamard at index 0, got %s", op.Hqslang())
		}
	})

	t.Run("append mixes operations and circuits", func(t *testing.T) {
		var c Circuit

		other := CircuitOf(&PauliZ{QubitIndex: 2})

		err := c.Append(&Hadamard{QubitIndex: 0}, other, &PauliY{QubitIndex: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if c.Len() != 3 {
			t.Errorf("expected 3 operations, got %d", c.Len())
		}
	})

	t.Run("append rejects foreign values", func(t *testing.T) {
		var c Circuit

		err := c.Append("not an operation")

		var mismatch *TypeMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("expected TypeMismatchError, got %v", err)
		}
	})
}

func TestCircuitSlice(t *testing.T) {
	c := bellCircuit()

	t.Run("slice copies the window", func(t *testing.T) {
		s, err := c.GetSlice(1, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if s.Len() != 2 {
			t.Fatalf("expected 2 operations, got %d", s.Len())
		}
	})

	t.Run("empty slice is allowed", func(t *testing.T) {
		s, err := c.GetSlice(2, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if s.Len() != 0 {
			t.Errorf("expected empty circuit, got %d operations", s.Len())
		}
	})

	t.Run("stop before start is an error not empty", func(t *testing.T) {
		_, err := c.GetSlice(3, 1)

		var idxErr *IndexError
		if !errors.As(err, &idxErr) {
			t.Fatalf("expected IndexError, got %v", err)
		}
	})

	t.Run("stop beyond the end is an error", func(t *testing.T) {
		_, err := c.GetSlice(0, 5)

		var idxErr *IndexError
		if !errors.As(err, &idxErr) {
			t.Fatalf("expected IndexError, got %v", err)
		}
	})
}

func TestCircuitQueries(t *testing.T) {
	c := bellCircuit()
	c.Add(&RotateX{QubitIndex: 0, Angle: Symbolic("theta")})

	t.Run("definitions come back in order", func(t *testing.T) {
		defs := c.Definitions()

		if len(defs) != 1 || defs[0].RegisterName() != "ro" {
			t.Fatalf("expected one definition named ro, got %v", defs)
		}
	})

	t.Run("count by tag", func(t *testing.T) {
		if got := c.CountOccurrences(tagSingleQubitGate); got != 2 {
			t.Errorf("expected 2 single-qubit gates, got %d", got)
		}

		if got := c.CountOccurrences(); got != 5 {
			t.Errorf("expected 5 operations, got %d", got)
		}
	})

	t.Run("filter by tag", func(t *testing.T) {
		pragmas := c.FilterByTag(tagPragma)

		if len(pragmas) != 1 || pragmas[0].Hqslang() != "PragmaRepeatedMeasurement" {
			t.Fatalf("expected one pragma, got %v", pragmas)
		}
	})

	t.Run("operation types histogram", func(t *testing.T) {
		types := c.GetOperationTypes()

		if types["Hadamard"] != 1 || types["CNOT"] != 1 {
			t.Errorf("unexpected histogram %v", types)
		}
	})

	t.Run("involved qubits saturate on all-sentinel operations", func(t *testing.T) {
		involved := c.InvolvedQubits()

		if !involved.All {
			t.Errorf("expected ALL from repeated measurement, got %v", involved.Qubits)
		}
	})

	t.Run("finite circuits report the union", func(t *testing.T) {
		finite := CircuitOf(&Hadamard{QubitIndex: 3}, &CNOT{qubitPair: qubitPair{Ctrl: 0, Tgt: 1}})

		involved := finite.InvolvedQubits()
		if involved.All {
			t.Fatal("expected finite set")
		}

		if len(involved.Qubits) != 3 {
			t.Errorf("expected 3 qubits, got %v", involved.Qubits)
		}
	})
}

func TestCircuitTransforms(t *testing.T) {
	t.Run("substitute resolves every operation", func(t *testing.T) {
		c := CircuitOf(
			&RotateX{QubitIndex: 0, Angle: Symbolic("theta")},
			&RotateZ{QubitIndex: 1, Angle: Symbolic("theta * 2")},
		)

		resolved, err := c.SubstituteParameters(map[string]float64{"theta": 0.5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if resolved.IsParametrized() {
			t.Fatal("expected fully resolved circuit")
		}

		if c.IsParametrized() != true {
			t.Error("expected the receiver to stay symbolic")
		}
	})

	t.Run("substitute propagates the first failure", func(t *testing.T) {
		c := CircuitOf(&RotateX{QubitIndex: 0, Angle: Symbolic("phi")})

		_, err := c.SubstituteParameters(map[string]float64{"theta": 0.5})

		var unresolved *UnresolvedSymbolError
		if !errors.As(err, &unresolved) {
			t.Fatalf("expected UnresolvedSymbolError, got %v", err)
		}
	})

	t.Run("remap applies to every operation", func(t *testing.T) {
		c := CircuitOf(
			&Hadamard{QubitIndex: 0},
			&CNOT{qubitPair: qubitPair{Ctrl: 0, Tgt: 1}},
		)

		remapped, err := c.RemapQubits(map[int]int{0: 1, 1: 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		op, _ := remapped.Get(0)
		if op.(*Hadamard).QubitIndex != 1 {
			t.Errorf("expected hadamard moved to qubit 1")
		}
	})

	t.Run("nested circuits remap recursively", func(t *testing.T) {
		inner := CircuitOf(&PauliX{QubitIndex: 0})
		c := CircuitOf(&PragmaConditional{ConditionRegister: "ro", ConditionIndex: 0, Circuit: inner})

		remapped, err := c.RemapQubits(map[int]int{0: 4})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		op, _ := remapped.Get(0)
		nested, _ := op.(*PragmaConditional).Circuit.Get(0)

		if nested.(*PauliX).QubitIndex != 4 {
			t.Errorf("expected nested gate on qubit 4, got %d", nested.(*PauliX).QubitIndex)
		}
	})
}

func TestCircuitOverrotate(t *testing.T) {
	t.Run("matching rotations are perturbed and the marker consumed", func(t *testing.T) {
		c := CircuitOf(
			&PragmaOverrotation{GateHqslang: "RotateX", Qubits: []int{0}, Amplitude: 0.1, Variance: 1},
			&RotateX{QubitIndex: 0, Angle: Float(1)},
			&RotateX{QubitIndex: 1, Angle: Float(1)},
			&RotateZ{QubitIndex: 0, Angle: Float(1)},
		)

		out, err := c.Overrotate(rand.NewSource(7))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Len() != 3 {
			t.Fatalf("expected marker removed, got %d operations", out.Len())
		}

		perturbed, _ := out.Get(0)
		angle, err := perturbed.(Rotation).Theta().Float()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if angle == 1 {
			t.Error("expected the matching gate's angle to change")
		}

		unmatched, _ := out.Get(1)
		if v, _ := unmatched.(Rotation).Theta().Float(); v != 1 {
			t.Errorf("expected gate on another qubit untouched, got %v", v)
		}

		wrongName, _ := out.Get(2)
		if v, _ := wrongName.(Rotation).Theta().Float(); v != 1 {
			t.Errorf("expected differently named gate untouched, got %v", v)
		}
	})

	t.Run("receiver is unchanged", func(t *testing.T) {
		c := CircuitOf(
			&PragmaOverrotation{GateHqslang: "RotateX", Qubits: []int{0}, Amplitude: 0.1, Variance: 1},
			&RotateX{QubitIndex: 0, Angle: Float(1)},
		)

		if _, err := c.Overrotate(rand.NewSource(1)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if c.Len() != 2 {
			t.Errorf("expected receiver to keep its marker, got %d operations", c.Len())
		}
	})
}

func TestCircuitEqualAndDeepCopy(t *testing.T) {
	t.Run("structural equality ignores pointer identity", func(t *testing.T) {
		if !bellCircuit().Equal(bellCircuit()) {
			t.Error("expected identical circuits to compare equal")
		}
	})

	t.Run("deep copy is independent", func(t *testing.T) {
		c := bellCircuit()

		cp, err := c.DeepCopy()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !cp.Equal(c) {
			t.Fatal("expected copy to equal the original")
		}

		if err := cp.Set(1, &PauliZ{QubitIndex: 0}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		op, _ := c.Get(1)
		if op.Hqslang() != "Hadamard" {
			t.Error("expected the original to be unaffected by edits to the copy")
		}
	})
}
