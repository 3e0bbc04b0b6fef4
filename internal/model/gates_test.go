package model

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func matricesClose(t *testing.T, a, b *mat.CDense, tol float64) {
	t.Helper()

	ar, ac := a.Dims()
	br, bc := b.Dims()

	if ar != br || ac != bc {
		t.Fatalf("expected dimensions %dx%d, got %dx%d", ar, ac, br, bc)
	}

	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			if cmplx.Abs(a.At(i, j)-b.At(i, j)) > tol {
				t.Fatalf("matrices differ at (%d,%d): %v vs %v", i, j, a.At(i, j), b.At(i, j))
			}
		}
	}
}

func TestSingleQubitMatrices(t *testing.T) {
	t.Run("rotate z by zero is the identity", func(t *testing.T) {
		gate := &RotateZ{QubitIndex: 0, Angle: Float(0)}

		m, err := gate.UnitaryMatrix()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := mat.NewCDense(2, 2, []complex128{1, 0, 0, 1})
		matricesClose(t, m, want, 1e-12)
	})

	t.Run("hadamard entries", func(t *testing.T) {
		gate := &Hadamard{QubitIndex: 0}

		m, err := gate.UnitaryMatrix()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		s := complex(1/math.Sqrt2, 0)
		want := mat.NewCDense(2, 2, []complex128{s, s, s, -s})
		matricesClose(t, m, want, 1e-12)
	})

	t.Run("symbolic angle has no matrix", func(t *testing.T) {
		gate := &RotateX{QubitIndex: 0, Angle: Symbolic("theta")}

		_, err := gate.UnitaryMatrix()

		var unresolved *UnresolvedSymbolError
		if !errors.As(err, &unresolved) {
			t.Fatalf("expected UnresolvedSymbolError, got %v", err)
		}
	})

	t.Run("pauli x flips the basis states", func(t *testing.T) {
		gate := &PauliX{QubitIndex: 0}

		m, err := gate.UnitaryMatrix()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := mat.NewCDense(2, 2, []complex128{0, 1, 1, 0})
		matricesClose(t, m, want, 1e-12)
	})
}

func TestTwoQubitMatrices(t *testing.T) {
	t.Run("cnot swaps the control-set columns", func(t *testing.T) {
		gate := &CNOT{qubitPair: qubitPair{Ctrl: 1, Tgt: 0}}

		m, err := gate.UnitaryMatrix()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := mat.NewCDense(4, 4, []complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 0, 1,
			0, 0, 1, 0,
		})
		matricesClose(t, m, want, 1e-12)
	})

	t.Run("swap gate qubits are target first", func(t *testing.T) {
		gate := &CNOT{qubitPair: qubitPair{Ctrl: 3, Tgt: 1}}

		got := gate.GateQubits()
		if len(got) != 2 || got[0] != 1 || got[1] != 3 {
			t.Errorf("expected [1 3], got %v", got)
		}
	})
}

func TestRotationPower(t *testing.T) {
	t.Run("power reparameterizes the angle", func(t *testing.T) {
		gate := &RotateZ{QubitIndex: 0, Angle: Float(math.Pi)}

		half, ok := gate.PowerCF(Float(0.5)).(Rotation)
		if !ok {
			t.Fatal("expected rotation after power")
		}

		v, err := half.Theta().Float()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if math.Abs(v-math.Pi/2) > 1e-12 {
			t.Errorf("expected pi/2, got %v", v)
		}
	})

	t.Run("symbolic power stays symbolic", func(t *testing.T) {
		gate := &RotateX{QubitIndex: 2, Angle: Symbolic("theta")}

		powered := gate.PowerCF(Float(2)).(Rotation)
		if !powered.IsParametrized() {
			t.Fatal("expected parametrized gate")
		}

		resolved, err := powered.SubstituteParameters(map[string]float64{"theta": 0.25})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		v, err := resolved.(Rotation).Theta().Float()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if math.Abs(v-0.5) > 1e-12 {
			t.Errorf("expected 0.5, got %v", v)
		}
	})
}

func TestRemap(t *testing.T) {
	t.Run("remapping twice with an involution restores the gate", func(t *testing.T) {
		gate := &CNOT{qubitPair: qubitPair{Ctrl: 0, Tgt: 1}}
		mapping := map[int]int{0: 1, 1: 0}

		once, err := gate.RemapQubits(mapping)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		twice, err := once.RemapQubits(mapping)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !OperationsEqual(gate, twice) {
			t.Errorf("expected original gate, got %+v", twice)
		}
	})

	t.Run("mapping distinct qubits to one index is rejected", func(t *testing.T) {
		gate := &SWAP{qubitPair: qubitPair{Ctrl: 0, Tgt: 1}}

		_, err := gate.RemapQubits(map[int]int{0: 2, 1: 2})

		var remapErr *QubitRemappingError
		if !errors.As(err, &remapErr) {
			t.Fatalf("expected QubitRemappingError, got %v", err)
		}
	})

	t.Run("mapping must cover every touched qubit", func(t *testing.T) {
		gate := &RotateY{QubitIndex: 5, Angle: Float(1)}

		_, err := gate.RemapQubits(map[int]int{0: 1})

		var remapErr *QubitRemappingError
		if !errors.As(err, &remapErr) {
			t.Fatalf("expected QubitRemappingError, got %v", err)
		}
	})
}

func TestSubstituteParametersIdempotence(t *testing.T) {
	gate := &RotateX{QubitIndex: 0, Angle: Symbolic("theta")}

	once, err := gate.SubstituteParameters(map[string]float64{"theta": 1.25})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	twice, err := once.SubstituteParameters(map[string]float64{"theta": 99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !OperationsEqual(once, twice) {
		t.Errorf("expected substitution on a resolved gate to be the identity")
	}
}

func TestMulSingleQubit(t *testing.T) {
	t.Run("composing z rotations adds the angles", func(t *testing.T) {
		a := &RotateZ{QubitIndex: 0, Angle: Float(0.4)}
		b := &RotateZ{QubitIndex: 0, Angle: Float(0.6)}
		sum := &RotateZ{QubitIndex: 0, Angle: Float(1.0)}

		composed, err := MulSingleQubit(a, b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		gate, ok := composed.(GateOperation)
		if !ok {
			t.Fatalf("expected gate operation, got %T", composed)
		}

		got, err := gate.UnitaryMatrix()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want, err := sum.UnitaryMatrix()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		matricesClose(t, got, want, 1e-9)
	})

	t.Run("differing qubits are a type mismatch", func(t *testing.T) {
		a := &PauliX{QubitIndex: 0}
		b := &PauliX{QubitIndex: 1}

		_, err := MulSingleQubit(a, b)

		var mismatch *TypeMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("expected TypeMismatchError, got %v", err)
		}
	})

	t.Run("two-qubit operand is a type mismatch", func(t *testing.T) {
		a := &PauliX{QubitIndex: 0}
		b := &CNOT{qubitPair: qubitPair{Ctrl: 0, Tgt: 1}}

		_, err := MulSingleQubit(a, b)

		var mismatch *TypeMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("expected TypeMismatchError, got %v", err)
		}
	})
}

func TestToffoliMatrix(t *testing.T) {
	gate := &Toffoli{qubitTriple: qubitTriple{Ctrl0: 2, Ctrl1: 1, Tgt: 0}}

	m, err := gate.UnitaryMatrix()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, cols := m.Dims()
	if rows != 8 || cols != 8 {
		t.Fatalf("expected 8x8 matrix, got %dx%d", rows, cols)
	}

	if m.At(6, 7) != 1 || m.At(7, 6) != 1 {
		t.Errorf("expected last two basis states swapped")
	}

	if m.At(6, 6) != 0 || m.At(7, 7) != 0 {
		t.Errorf("expected zero diagonal in the flipped block")
	}
}
