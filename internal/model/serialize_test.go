package model

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func roundTripJSON(t *testing.T, op Operation) Operation {
	t.Helper()

	data, err := OperationToJSON(op)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	back, err := OperationFromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	return back
}

func roundTripBincode(t *testing.T, op Operation) Operation {
	t.Helper()

	data, err := OperationToBincode(op)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	back, err := OperationFromBincode(data)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	return back
}

func TestOperationRoundTrips(t *testing.T) {
	inner := CircuitOf(&PauliX{QubitIndex: 1})

	ops := []Operation{
		&DefinitionBit{Name: "ro", Length: 2, IsOutput: true},
		&InputSymbolic{Name: "theta", Input: 0.25},
		&Hadamard{QubitIndex: 0},
		&RotateX{QubitIndex: 3, Angle: Symbolic("theta")},
		&RotateZ{QubitIndex: 0, Angle: Float(1.5)},
		&SingleQubitGate{QubitIndex: 1, Ar: Float(1), Ai: Float(0), Br: Float(0), Bi: Float(0), Phase: Float(0)},
		&CNOT{qubitPair: qubitPair{Ctrl: 0, Tgt: 1}},
		&GivensRotation{qubitPair: qubitPair{Ctrl: 0, Tgt: 1}, Angle: Symbolic("theta"), Phi: Float(0.5)},
		&Toffoli{qubitTriple: qubitTriple{Ctrl0: 2, Ctrl1: 1, Tgt: 0}},
		&MultiQubitMS{Qubits: []int{0, 1, 2, 3}, Angle: Float(0.75)},
		&Squeezing{Mode: 1, Magnitude: Float(0.3), Phase: Float(0.1)},
		&MeasureQubit{QubitIndex: 2, Readout: "ro", ReadoutIndex: 0},
		&PragmaRepeatedMeasurement{Readout: "ro", NumberMeasurements: 50, QubitMapping: map[int]int{0: 1, 1: 0}},
		&PragmaSetStateVector{Statevector: []Complex{{Re: 1}, {Im: 0.5}}},
		&PragmaDamping{QubitIndex: 0, GateTime: Float(0.01), Rate: Symbolic("gamma")},
		&PragmaConditional{ConditionRegister: "ro", ConditionIndex: 1, Circuit: inner},
		&PragmaLoop{Repetitions: Symbolic("n"), Circuit: inner},
		&PragmaOverrotation{GateHqslang: "RotateX", Qubits: []int{0, 1}, Amplitude: 0.1, Variance: 0.2},
		&PragmaAnnotatedOp{Op: &PauliZ{QubitIndex: 4}, Annotation: "debug marker"},
		&PragmaChangeDevice{WrappedHqslang: "SetTimings", WrappedTags: []string{"Pragma"}, WrappedOperation: []byte{1, 2, 3}},
	}

	for _, op := range ops {
		t.Run("json "+op.Hqslang(), func(t *testing.T) {
			back := roundTripJSON(t, op)

			if !OperationsEqual(op, back) {
				t.Errorf("round trip changed the operation:\n%s", cmp.Diff(op, back, cmp.Exporter(func(reflect.Type) bool { return true })))
			}
		})

		t.Run("bincode "+op.Hqslang(), func(t *testing.T) {
			back := roundTripBincode(t, op)

			if !OperationsEqual(op, back) {
				t.Errorf("round trip changed the operation")
			}
		})
	}
}

func TestCircuitRoundTrips(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		c := bellCircuit()

		data, err := c.ToJSON()
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}

		back, err := CircuitFromJSON(data)
		if err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}

		if !c.Equal(back) {
			t.Error("expected round-tripped circuit to equal the original")
		}
	})

	t.Run("bincode", func(t *testing.T) {
		c := bellCircuit()
		c.Add(&RotateXY{QubitIndex: 0, Angle: Symbolic("theta"), Phi: Float(0.25)})

		data, err := c.ToBincode()
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}

		back, err := CircuitFromBincode(data)
		if err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}

		if !c.Equal(back) {
			t.Error("expected round-tripped circuit to equal the original")
		}
	})
}

func TestVersionHandling(t *testing.T) {
	t.Run("payload from a newer library is rejected", func(t *testing.T) {
		c := bellCircuit()

		data, err := c.ToJSON()
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}

		tampered := strings.Replace(string(data), `"min_supported":"1.0.0"`, `"min_supported":"99.0.0"`, 1)
		if tampered == string(data) {
			t.Fatal("expected to find the version stanza in the payload")
		}

		_, err = CircuitFromJSON([]byte(tampered))

		var serErr *SerializationError
		if !errors.As(err, &serErr) {
			t.Fatalf("expected SerializationError, got %v", err)
		}
	})

	t.Run("newer operation raises the circuit minimum", func(t *testing.T) {
		c := CircuitOf(&GPi{QubitIndex: 0, Angle: Float(1)})

		data, err := c.ToJSON()
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}

		var wire struct {
			Version struct {
				MinSupported string `json:"min_supported"`
			} `json:"version"`
		}
		if err := json.Unmarshal(data, &wire); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if wire.Version.MinSupported != "1.1.0" {
			t.Errorf("expected min supported 1.1.0, got %s", wire.Version.MinSupported)
		}
	})

	t.Run("unknown type is a serialization error", func(t *testing.T) {
		_, err := OperationFromJSON([]byte(`{"type":"NotAGate","min_supported_version":"1.0.0","data":{}}`))

		var serErr *SerializationError
		if !errors.As(err, &serErr) {
			t.Fatalf("expected SerializationError, got %v", err)
		}
	})

	t.Run("version comparison is numeric per segment", func(t *testing.T) {
		tests := []struct {
			a, b string
			want int
		}{
			{"1.0.0", "1.0.0", 0},
			{"1.2.0", "1.10.0", -1},
			{"2.0.0", "1.9.9", 1},
			{"1.1", "1.1.0", 0},
		}

		for _, tt := range tests {
			if got := compareVersion(tt.a, tt.b); got != tt.want {
				t.Errorf("compareVersion(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		}
	})
}

func TestCompareOperationsTotalOrder(t *testing.T) {
	a := &Hadamard{QubitIndex: 0}
	b := &Hadamard{QubitIndex: 1}
	c := &PauliX{QubitIndex: 0}

	if CompareOperations(a, a) != 0 {
		t.Error("expected an operation to compare equal to itself")
	}

	if CompareOperations(a, c) >= 0 {
		t.Error("expected Hadamard to order before PauliX by name")
	}

	if CompareOperations(a, b)+CompareOperations(b, a) != 0 {
		t.Error("expected comparison to be antisymmetric")
	}
}

func TestCircuitJSONSchema(t *testing.T) {
	schema := CircuitJSONSchema()
	if schema == nil {
		t.Fatal("expected a schema")
	}

	data, err := json.Marshal(schema)
	if err != nil {
		t.Fatalf("schema did not marshal: %v", err)
	}

	if !strings.Contains(string(data), "operations") {
		t.Errorf("expected schema to describe the operations field")
	}
}
