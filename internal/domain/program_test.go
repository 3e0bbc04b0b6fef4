package domain

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	m "qirk.dev/pkg/qirk/internal/model"
)

// stubBackend records the measurements it receives and returns canned
// results.
type stubBackend struct {
	mu       sync.Mutex
	received []Measurement
	values   map[string]float64
	err      error
}

func (s *stubBackend) RunMeasurement(_ context.Context, measurement Measurement) (map[string]float64, error) {
	s.mu.Lock()
	s.received = append(s.received, measurement)
	s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	return s.values, nil
}

func (s *stubBackend) RunRegisters(_ context.Context, measurement Measurement) (m.RegisterOutput, error) {
	s.mu.Lock()
	s.received = append(s.received, measurement)
	s.mu.Unlock()

	if s.err != nil {
		return m.RegisterOutput{}, s.err
	}

	out := m.NewRegisterOutput()
	out.Bits["ro"] = [][]bool{{true, false}}

	return out, nil
}

func parametrizedProgram() QuantumProgram {
	circuit := m.CircuitOf(
		&m.DefinitionBit{Name: "ro", Length: 2, IsOutput: true},
		&m.RotateX{QubitIndex: 0, Angle: m.Symbolic("theta")},
		&m.PragmaRepeatedMeasurement{Readout: "ro", NumberMeasurements: 10},
	)

	measurement := ClassicalRegisterMeasurement{CircuitList: []m.Circuit{circuit}}

	return NewQuantumProgram(measurement, []string{"theta"})
}

func TestQuantumProgramRun(t *testing.T) {
	t.Run("substitutes positional parameters before the backend sees them", func(t *testing.T) {
		backend := &stubBackend{values: map[string]float64{"z": 0.5}}
		program := parametrizedProgram()

		got, err := program.Run(context.Background(), backend, []float64{1.5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got["z"] != 0.5 {
			t.Errorf("expected backend values passed through, got %v", got)
		}

		if len(backend.received) != 1 {
			t.Fatalf("expected one measurement, got %d", len(backend.received))
		}

		for _, circuit := range backend.received[0].Circuits() {
			if circuit.IsParametrized() {
				t.Error("expected a fully resolved circuit at the backend boundary")
			}
		}
	})

	t.Run("parameter count must match the declared names", func(t *testing.T) {
		backend := &stubBackend{}
		program := parametrizedProgram()

		_, err := program.Run(context.Background(), backend, []float64{1, 2})

		var mismatch *m.TypeMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("expected TypeMismatchError, got %v", err)
		}

		if len(backend.received) != 0 {
			t.Error("expected the backend to stay untouched on a count mismatch")
		}
	})

	t.Run("backend failures pass through unchanged", func(t *testing.T) {
		sentinel := errors.New("device offline")
		backend := &stubBackend{err: sentinel}
		program := parametrizedProgram()

		_, err := program.Run(context.Background(), backend, []float64{1})
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected sentinel error, got %v", err)
		}
	})

	t.Run("run registers returns raw registers", func(t *testing.T) {
		backend := &stubBackend{}
		program := parametrizedProgram()

		out, err := program.RunRegisters(context.Background(), backend, []float64{1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Bits["ro"]) != 1 {
			t.Errorf("expected one shot in ro, got %v", out.Bits)
		}
	})

	t.Run("receiver is immutable across runs", func(t *testing.T) {
		backend := &stubBackend{}
		program := parametrizedProgram()

		if _, err := program.Run(context.Background(), backend, []float64{1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, circuit := range program.Measurement().Circuits() {
			if !circuit.IsParametrized() {
				t.Error("expected the program's own circuits to stay symbolic")
			}
		}
	})
}

func TestQuantumProgramEquality(t *testing.T) {
	t.Run("identical programs compare equal", func(t *testing.T) {
		a := parametrizedProgram()
		b := parametrizedProgram()

		if !a.Equal(b) {
			t.Error("expected structurally identical programs to be equal")
		}

		if a.Compare(b) != 0 {
			t.Error("expected compare to agree with equality")
		}
	})

	t.Run("different parameter names order deterministically", func(t *testing.T) {
		measurement := ClassicalRegisterMeasurement{}
		a := NewQuantumProgram(measurement, []string{"alpha"})
		b := NewQuantumProgram(measurement, []string{"beta"})

		if a.Equal(b) {
			t.Error("expected differing programs to be unequal")
		}

		if a.Compare(b)+b.Compare(a) != 0 {
			t.Error("expected antisymmetric comparison")
		}
	})
}

func TestRunnerSweep(t *testing.T) {
	t.Run("results keep the order of the parameter sets", func(t *testing.T) {
		backend := &stubBackend{values: map[string]float64{"z": 1}}
		program := parametrizedProgram()

		runner := NewRunner(backend, 4)

		sets := [][]float64{{0.1}, {0.2}, {0.3}}

		results, err := runner.RunSweep(context.Background(), program, sets)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(results) != 3 {
			t.Fatalf("expected 3 results, got %d", len(results))
		}

		for i, r := range results {
			if r["z"] != 1 {
				t.Errorf("result %d missing backend values: %v", i, r)
			}
		}
	})

	t.Run("a failing set fails the sweep", func(t *testing.T) {
		sentinel := errors.New("simulator exploded")
		backend := &stubBackend{err: sentinel}

		runner := NewRunner(backend, 0)

		_, err := runner.RunSweep(context.Background(), parametrizedProgram(), [][]float64{{1}, {2}})
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected sentinel error, got %v", err)
		}
	})
}

func TestPauliZProductEvaluation(t *testing.T) {
	input := NewPauliZProductInput(2)
	p0 := input.AddPauliProduct("ro", []int{0})
	p1 := input.AddPauliProduct("ro", []int{0, 1})
	input.AddLinearExpVal("energy", map[int]float64{p0: 0.5, p1: 2})
	input.Offsets["energy"] = 1

	measurement := PauliZProductMeasurement{Input: input}

	t.Run("parity means combine linearly", func(t *testing.T) {
		bits := m.BitRegisters{"ro": {
			{false, false}, // +1, +1
			{true, false},  // -1, -1
			{true, true},   // -1, +1
			{false, false}, // +1, +1
		}}

		got, err := measurement.EvaluateRegisters(bits)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// <Z0> = 0, <Z0 Z1> = 0.5, energy = 1 + 0.5*0 + 2*0.5 = 2
		if math.Abs(got["energy"]-2) > 1e-12 {
			t.Errorf("expected energy 2, got %v", got["energy"])
		}
	})

	t.Run("missing readout register is an error", func(t *testing.T) {
		_, err := measurement.EvaluateRegisters(m.BitRegisters{})
		if err == nil {
			t.Fatal("expected an error for a missing register")
		}
	})

	t.Run("qubit outside the register width is an error", func(t *testing.T) {
		_, err := measurement.EvaluateRegisters(m.BitRegisters{"ro": {{true}}})
		if err == nil {
			t.Fatal("expected an error for an out-of-range qubit")
		}
	})
}
