package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/cmplx"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"qirk.dev/pkg/qirk/internal/domain"
	m "qirk.dev/pkg/qirk/internal/model"
	"qirk.dev/pkg/qirk/pkg"
)

// spillThreshold is the number of shot rows kept in memory per register
// before sampling spills to disk.
const spillThreshold = 1 << 16

// StateVectorBackend is a reference simulator. It applies gate unitaries to
// a dense amplitude vector, one basis-state pair set at a time, and samples
// classical registers from the resulting distribution.
type StateVectorBackend struct {
	seed uint64
}

// NewStateVectorBackend returns a simulator seeded deterministically.
func NewStateVectorBackend(seed uint64) *StateVectorBackend {
	return &StateVectorBackend{seed: seed}
}

// RunMeasurement runs the measurement's circuits and post-processes the
// resulting registers into named expectation values.
func (b *StateVectorBackend) RunMeasurement(ctx context.Context, measurement domain.Measurement) (map[string]float64, error) {
	out, err := b.RunRegisters(ctx, measurement)
	if err != nil {
		return nil, err
	}

	pauliZ, ok := measurement.(domain.PauliZProductMeasurement)
	if !ok {
		return nil, &m.TypeMismatchError{
			Expected: "measurement with expectation-value post-processing",
			Got:      fmt.Sprintf("%T", measurement),
		}
	}

	return pauliZ.EvaluateRegisters(out.Bits)
}

// RunRegisters runs the constant circuit followed by each measured circuit
// and merges the classical registers they fill.
func (b *StateVectorBackend) RunRegisters(ctx context.Context, measurement domain.Measurement) (m.RegisterOutput, error) {
	out := m.NewRegisterOutput()
	rng := rand.New(rand.NewSource(b.seed))

	for i, circuit := range measurement.Circuits() {
		if err := ctx.Err(); err != nil {
			return m.RegisterOutput{}, err
		}

		full := m.NewCircuit()
		if constant := measurement.ConstantCircuit(); constant != nil {
			if err := full.Append(constant); err != nil {
				return m.RegisterOutput{}, err
			}
		}

		if err := full.Append(circuit); err != nil {
			return m.RegisterOutput{}, err
		}

		if err := b.runCircuit(full, rng, out); err != nil {
			return m.RegisterOutput{}, fmt.Errorf("circuit %d: %w", i, err)
		}
	}

	return out, nil
}

// simulation is the mutable state of one circuit run.
type simulation struct {
	state     []complex128
	numQubits int
	rng       *rand.Rand

	bitRows    map[string][]bool
	bitWidths  map[string]int
	floatRows  map[string][]float64
	outputReg  map[string]bool
	complexOut m.ComplexRegisters
}

func (b *StateVectorBackend) runCircuit(circuit m.Circuit, rng *rand.Rand, out m.RegisterOutput) error {
	numQubits := circuitWidth(circuit)
	if numQubits == 0 {
		numQubits = 1
	}

	sim := &simulation{
		state:      make([]complex128, 1<<numQubits),
		numQubits:  numQubits,
		rng:        rng,
		bitRows:    make(map[string][]bool),
		bitWidths:  make(map[string]int),
		floatRows:  make(map[string][]float64),
		outputReg:  make(map[string]bool),
		complexOut: out.Complexes,
	}
	sim.state[0] = 1

	slog.Debug("running circuit", "qubits", numQubits, "operations", circuit.Len())

	if err := sim.run(circuit, out); err != nil {
		return err
	}

	// Single-shot registers filled by MeasureQubit become one output row.
	// Registers not declared as output stay internal.
	for name, row := range sim.bitRows {
		if sim.outputReg[name] {
			out.Bits[name] = append(out.Bits[name], row)
		}
	}

	for name, row := range sim.floatRows {
		if sim.outputReg[name] {
			out.Floats[name] = append(out.Floats[name], row)
		}
	}

	return nil
}

// circuitWidth is one past the highest touched qubit index, counting nested
// circuits and injected state vectors.
func circuitWidth(circuit m.Circuit) int {
	width := 0

	for _, op := range circuit.Operations() {
		switch v := op.(type) {
		case *m.PragmaSetStateVector:
			qubits := int(math.Round(math.Log2(float64(len(v.Statevector)))))
			if qubits > width {
				width = qubits
			}

			continue
		case *m.PragmaConditional:
			if w := circuitWidth(v.Circuit); w > width {
				width = w
			}
		case *m.PragmaLoop:
			if w := circuitWidth(v.Circuit); w > width {
				width = w
			}
		case *m.PragmaControlledCircuit:
			if w := circuitWidth(v.Circuit); w > width {
				width = w
			}
		}

		involved := op.InvolvedQubits()
		if involved.All {
			continue
		}

		for _, q := range involved.Qubits {
			if q+1 > width {
				width = q + 1
			}
		}
	}

	return width
}

func (s *simulation) run(circuit m.Circuit, out m.RegisterOutput) error {
	for _, op := range circuit.Operations() {
		if err := s.apply(op, out); err != nil {
			return err
		}
	}

	return nil
}

func (s *simulation) apply(op m.Operation, out m.RegisterOutput) error {
	switch v := op.(type) {
	case *m.DefinitionBit:
		s.bitRows[v.Name] = make([]bool, v.Length)
		s.bitWidths[v.Name] = v.Length
		s.outputReg[v.Name] = v.IsOutput
	case *m.DefinitionFloat:
		s.floatRows[v.Name] = make([]float64, v.Length)
		s.outputReg[v.Name] = v.IsOutput
	case *m.DefinitionComplex, *m.DefinitionUsize, *m.InputSymbolic:
		// Nothing to prepare; complex rows are emitted on readout.
	case *m.InputBit:
		row, ok := s.bitRows[v.Name]
		if !ok || v.Index >= len(row) {
			return fmt.Errorf("input bit %q[%d] has no matching definition", v.Name, v.Index)
		}

		row[v.Index] = v.Value
	case *m.MeasureQubit:
		return s.measureQubit(v)
	case *m.PragmaSetStateVector:
		return s.setStateVector(v.Statevector)
	case *m.PragmaRepeatedMeasurement:
		return s.repeatedMeasurement(v, out)
	case *m.PragmaSetNumberOfMeasurements:
		return s.sampleRegister(v.Readout, v.NumberMeasurements, nil, out)
	case *m.PragmaGetStateVector:
		row := make([]m.Complex, len(s.state))
		for i, amp := range s.state {
			row[i] = m.ComplexFrom(amp)
		}

		s.complexOut[v.Readout] = append(s.complexOut[v.Readout], row)
	case *m.PragmaGetOccupationProbability:
		row := make([]float64, len(s.state))
		for i, amp := range s.state {
			row[i] = real(amp)*real(amp) + imag(amp)*imag(amp)
		}

		out.Floats[v.Readout] = append(out.Floats[v.Readout], row)
	case *m.PragmaConditional:
		row, ok := s.bitRows[v.ConditionRegister]
		if !ok || v.ConditionIndex >= len(row) {
			return fmt.Errorf("condition register %q[%d] not defined", v.ConditionRegister, v.ConditionIndex)
		}

		if row[v.ConditionIndex] {
			return s.run(v.Circuit, out)
		}
	case *m.PragmaLoop:
		repetitions, err := v.Repetitions.Float()
		if err != nil {
			return err
		}

		for i := 0; i < int(repetitions); i++ {
			if err := s.run(v.Circuit, out); err != nil {
				return err
			}
		}
	case *m.PragmaActiveReset:
		return s.reset(v.QubitIndex)
	default:
		if gate, ok := op.(m.GateOperation); ok {
			return s.applyGate(gate)
		}

		// Remaining pragmas describe noise or compiler hints a pure
		// statevector run cannot honor.
		slog.Debug("ignoring operation", "hqslang", op.Hqslang())
	}

	return nil
}

// applyGate multiplies the gate unitary into the amplitudes of every basis
// pair group addressed by the gate's qubits, least significant first.
func (s *simulation) applyGate(gate m.GateOperation) error {
	matrix, err := gate.UnitaryMatrix()
	if err != nil {
		return err
	}

	qubits := gate.GateQubits()
	for _, q := range qubits {
		if q >= s.numQubits {
			return fmt.Errorf("gate %s touches qubit %d outside the %d-qubit register", gate.Hqslang(), q, s.numQubits)
		}
	}

	applyUnitary(s.state, matrix, qubits)

	return nil
}

func applyUnitary(state []complex128, matrix *mat.CDense, qubits []int) {
	k := len(qubits)
	dim := 1 << k

	mask := 0
	for _, q := range qubits {
		mask |= 1 << q
	}

	scratch := make([]complex128, dim)

	for base := 0; base < len(state); base++ {
		if base&mask != 0 {
			continue
		}

		for sub := 0; sub < dim; sub++ {
			idx := base
			for bit := 0; bit < k; bit++ {
				if sub&(1<<bit) != 0 {
					idx |= 1 << qubits[bit]
				}
			}

			scratch[sub] = state[idx]
		}

		for row := 0; row < dim; row++ {
			sum := complex(0, 0)
			for col := 0; col < dim; col++ {
				sum += matrix.At(row, col) * scratch[col]
			}

			idx := base
			for bit := 0; bit < k; bit++ {
				if row&(1<<bit) != 0 {
					idx |= 1 << qubits[bit]
				}
			}

			state[idx] = sum
		}
	}
}

func (s *simulation) setStateVector(amps []m.Complex) error {
	if len(amps) != len(s.state) {
		return fmt.Errorf("state vector length %d does not match the %d-qubit register", len(amps), s.numQubits)
	}

	for i, amp := range amps {
		s.state[i] = amp.Complex128()
	}

	return nil
}

// probabilityOne is the probability of reading qubit q as one.
func (s *simulation) probabilityOne(q int) float64 {
	bit := 1 << q
	p := 0.0

	for i, amp := range s.state {
		if i&bit != 0 {
			p += real(amp)*real(amp) + imag(amp)*imag(amp)
		}
	}

	return p
}

// collapse projects the state onto the measured value of qubit q.
func (s *simulation) collapse(q int, one bool, prob float64) {
	if prob <= 0 {
		return
	}

	bit := 1 << q
	norm := complex(1/math.Sqrt(prob), 0)

	for i := range s.state {
		measured := i&bit != 0
		if measured == one {
			s.state[i] *= norm
		} else {
			s.state[i] = 0
		}
	}
}

func (s *simulation) measureQubit(op *m.MeasureQubit) error {
	if op.QubitIndex >= s.numQubits {
		return fmt.Errorf("measurement touches qubit %d outside the %d-qubit register", op.QubitIndex, s.numQubits)
	}

	row, ok := s.bitRows[op.Readout]
	if !ok || op.ReadoutIndex >= len(row) {
		return fmt.Errorf("readout %q[%d] has no matching definition", op.Readout, op.ReadoutIndex)
	}

	pOne := s.probabilityOne(op.QubitIndex)
	one := s.rng.Float64() < pOne

	if one {
		s.collapse(op.QubitIndex, true, pOne)
	} else {
		s.collapse(op.QubitIndex, false, 1-pOne)
	}

	row[op.ReadoutIndex] = one

	return nil
}

func (s *simulation) reset(q int) error {
	if q >= s.numQubits {
		return fmt.Errorf("reset touches qubit %d outside the %d-qubit register", q, s.numQubits)
	}

	pOne := s.probabilityOne(q)
	if s.rng.Float64() < pOne {
		s.collapse(q, true, pOne)
		applyUnitary(s.state, pauliXMatrix(), []int{q})
	} else {
		s.collapse(q, false, 1-pOne)
	}

	return nil
}

func pauliXMatrix() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{0, 1, 1, 0})
}

func (s *simulation) repeatedMeasurement(op *m.PragmaRepeatedMeasurement, out m.RegisterOutput) error {
	return s.sampleRegister(op.Readout, op.NumberMeasurements, op.QubitMapping, out)
}

// sampleRegister draws shots from the final distribution without collapsing
// the state, filling the named bit register. Qubit i lands at register index
// mapping[i], or i when no mapping is given.
func (s *simulation) sampleRegister(readout string, shots int, mapping map[int]int, out m.RegisterOutput) error {
	width, ok := s.bitWidths[readout]
	if !ok {
		return fmt.Errorf("readout register %q has no matching definition", readout)
	}

	// The single-shot row is replaced by the sampled rows.
	delete(s.bitRows, readout)

	probs := make([]float64, len(s.state))
	for i, amp := range s.state {
		probs[i] = real(amp)*real(amp) + imag(amp)*imag(amp)
	}

	buffer := pkg.NewShotBuffer[[]bool](spillThreshold)
	defer func() {
		if err := buffer.Close(); err != nil {
			slog.Warn("failed to close shot buffer", "readout", readout, "error", err)
		}
	}()

	for shot := 0; shot < shots; shot++ {
		basis := sampleIndex(probs, s.rng.Float64())
		row := make([]bool, width)

		for q := 0; q < s.numQubits; q++ {
			target := q
			if mapping != nil {
				mapped, ok := mapping[q]
				if !ok {
					continue
				}

				target = mapped
			}

			if target >= width {
				continue
			}

			row[target] = basis&(1<<q) != 0
		}

		if err := buffer.Append(row); err != nil {
			return err
		}
	}

	rows, err := buffer.Rows()
	if err != nil {
		return err
	}

	out.Bits[readout] = append(out.Bits[readout], rows...)

	return nil
}

// sampleIndex picks a basis state by inverse transform sampling.
func sampleIndex(probs []float64, u float64) int {
	acc := 0.0

	for i, p := range probs {
		acc += p
		if u < acc {
			return i
		}
	}

	return len(probs) - 1
}

// StateNorm is the Euclidean norm of the current amplitudes; useful in tests
// and diagnostics.
func StateNorm(state []complex128) float64 {
	total := 0.0
	for _, amp := range state {
		total += cmplx.Abs(amp) * cmplx.Abs(amp)
	}

	return math.Sqrt(total)
}
