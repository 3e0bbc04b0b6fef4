package model

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// qubitTriple is the two-controls/one-target set of a three-qubit gate. The
// matrix basis convention is index = 4*control0 + 2*control1 + target.
type qubitTriple struct {
	Ctrl0 int `json:"control_0" cbor:"control_0"`
	Ctrl1 int `json:"control_1" cbor:"control_1"`
	Tgt   int `json:"target" cbor:"target"`
}

func (t qubitTriple) InvolvedQubits() InvolvedQubits { return QubitsOf(t.Ctrl0, t.Ctrl1, t.Tgt) }

func (t qubitTriple) GateQubits() []int { return []int{t.Tgt, t.Ctrl1, t.Ctrl0} }

func (t qubitTriple) remap(mapping map[int]int) (qubitTriple, error) {
	mapped, err := remapIndices(mapping, []int{t.Ctrl0, t.Ctrl1, t.Tgt})
	if err != nil {
		return qubitTriple{}, err
	}

	return qubitTriple{Ctrl0: mapped[0], Ctrl1: mapped[1], Tgt: mapped[2]}, nil
}

func identityCDense(dim int) []complex128 {
	data := make([]complex128, dim*dim)
	for i := 0; i < dim; i++ {
		data[i*dim+i] = 1
	}

	return data
}

// Toffoli flips the target when both controls are |1>.
type Toffoli struct {
	opBase
	qubitTriple
}

func (g *Toffoli) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagThreeQubitGate, "Toffoli"}
}
func (g *Toffoli) Hqslang() string      { return "Toffoli" }
func (g *Toffoli) IsParametrized() bool { return false }
func (g *Toffoli) UnitaryMatrix() (*mat.CDense, error) {
	data := identityCDense(8)
	data[6*8+6], data[7*8+7] = 0, 0
	data[6*8+7], data[7*8+6] = 1, 1

	return mat.NewCDense(8, 8, data), nil
}
func (g *Toffoli) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *g
	return &c, nil
}
func (g *Toffoli) RemapQubits(mapping map[int]int) (Operation, error) {
	triple, err := g.remap(mapping)
	if err != nil {
		return nil, err
	}

	c := *g
	c.qubitTriple = triple

	return &c, nil
}

// ControlledControlledPauliZ applies the phase -1 to |111>.
type ControlledControlledPauliZ struct {
	opBase
	qubitTriple
}

func (g *ControlledControlledPauliZ) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagThreeQubitGate, "ControlledControlledPauliZ"}
}
func (g *ControlledControlledPauliZ) Hqslang() string      { return "ControlledControlledPauliZ" }
func (g *ControlledControlledPauliZ) IsParametrized() bool { return false }
func (g *ControlledControlledPauliZ) UnitaryMatrix() (*mat.CDense, error) {
	data := identityCDense(8)
	data[7*8+7] = -1

	return mat.NewCDense(8, 8, data), nil
}
func (g *ControlledControlledPauliZ) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *g
	return &c, nil
}
func (g *ControlledControlledPauliZ) RemapQubits(mapping map[int]int) (Operation, error) {
	triple, err := g.remap(mapping)
	if err != nil {
		return nil, err
	}

	c := *g
	c.qubitTriple = triple

	return &c, nil
}

// ControlledControlledPhaseShift applies the phase exp(i theta) to |111>.
type ControlledControlledPhaseShift struct {
	opBase
	qubitTriple
	Angle CalculatorFloat `json:"theta" cbor:"theta"`
}

func (g *ControlledControlledPhaseShift) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagThreeQubitGate, tagRotation, "ControlledControlledPhaseShift"}
}
func (g *ControlledControlledPhaseShift) Hqslang() string        { return "ControlledControlledPhaseShift" }
func (g *ControlledControlledPhaseShift) IsParametrized() bool   { return anyParametrized(g.Angle) }
func (g *ControlledControlledPhaseShift) Theta() CalculatorFloat { return g.Angle }
func (g *ControlledControlledPhaseShift) WithTheta(theta CalculatorFloat) Operation {
	c := *g
	c.Angle = theta

	return &c
}
func (g *ControlledControlledPhaseShift) PowerCF(power CalculatorFloat) Operation {
	return g.WithTheta(g.Angle.Mul(power))
}
func (g *ControlledControlledPhaseShift) UnitaryMatrix() (*mat.CDense, error) {
	v, err := requireFloats(g.Angle)
	if err != nil {
		return nil, err
	}

	data := identityCDense(8)
	data[7*8+7] = cis(v[0])

	return mat.NewCDense(8, 8, data), nil
}
func (g *ControlledControlledPhaseShift) SubstituteParameters(values map[string]float64) (Operation, error) {
	angle, err := g.Angle.Substitute(values)
	if err != nil {
		return nil, err
	}

	c := *g
	c.Angle = angle

	return &c, nil
}
func (g *ControlledControlledPhaseShift) RemapQubits(mapping map[int]int) (Operation, error) {
	triple, err := g.remap(mapping)
	if err != nil {
		return nil, err
	}

	c := *g
	c.qubitTriple = triple

	return &c, nil
}

// MultiQubitMS is the multi-qubit Molmer-Sorensen interaction
// exp(-i theta/2 X⊗...⊗X).
type MultiQubitMS struct {
	opBase
	Qubits []int           `json:"qubits" cbor:"qubits"`
	Angle  CalculatorFloat `json:"theta" cbor:"theta"`
}

func (g *MultiQubitMS) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagMultiQubitGate, tagRotation, "MultiQubitMS"}
}
func (g *MultiQubitMS) Hqslang() string                { return "MultiQubitMS" }
func (g *MultiQubitMS) IsParametrized() bool           { return anyParametrized(g.Angle) }
func (g *MultiQubitMS) InvolvedQubits() InvolvedQubits { return QubitsOf(g.Qubits...) }
func (g *MultiQubitMS) GateQubits() []int              { return append([]int{}, g.Qubits...) }
func (g *MultiQubitMS) Theta() CalculatorFloat         { return g.Angle }
func (g *MultiQubitMS) WithTheta(theta CalculatorFloat) Operation {
	c := *g
	c.Qubits = append([]int{}, g.Qubits...)
	c.Angle = theta

	return &c
}
func (g *MultiQubitMS) PowerCF(power CalculatorFloat) Operation {
	return g.WithTheta(g.Angle.Mul(power))
}
func (g *MultiQubitMS) UnitaryMatrix() (*mat.CDense, error) {
	v, err := requireFloats(g.Angle)
	if err != nil {
		return nil, err
	}

	dim := 1 << len(g.Qubits)
	cos := complex(math.Cos(v[0]/2), 0)
	isin := complex(0, -math.Sin(v[0]/2))

	data := make([]complex128, dim*dim)
	for i := 0; i < dim; i++ {
		data[i*dim+i] = cos
		data[i*dim+(dim-1-i)] += isin
	}

	return mat.NewCDense(dim, dim, data), nil
}
func (g *MultiQubitMS) SubstituteParameters(values map[string]float64) (Operation, error) {
	angle, err := g.Angle.Substitute(values)
	if err != nil {
		return nil, err
	}

	c := *g
	c.Qubits = append([]int{}, g.Qubits...)
	c.Angle = angle

	return &c, nil
}
func (g *MultiQubitMS) RemapQubits(mapping map[int]int) (Operation, error) {
	mapped, err := remapIndices(mapping, g.Qubits)
	if err != nil {
		return nil, err
	}

	c := *g
	c.Qubits = mapped

	return &c, nil
}

// MultiQubitZZ is the multi-qubit ZZ interaction exp(-i theta/2 Z⊗...⊗Z).
type MultiQubitZZ struct {
	opBase
	Qubits []int           `json:"qubits" cbor:"qubits"`
	Angle  CalculatorFloat `json:"theta" cbor:"theta"`
}

func (g *MultiQubitZZ) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagMultiQubitGate, tagRotation, "MultiQubitZZ"}
}
func (g *MultiQubitZZ) Hqslang() string                { return "MultiQubitZZ" }
func (g *MultiQubitZZ) IsParametrized() bool           { return anyParametrized(g.Angle) }
func (g *MultiQubitZZ) InvolvedQubits() InvolvedQubits { return QubitsOf(g.Qubits...) }
func (g *MultiQubitZZ) GateQubits() []int              { return append([]int{}, g.Qubits...) }
func (g *MultiQubitZZ) Theta() CalculatorFloat         { return g.Angle }
func (g *MultiQubitZZ) WithTheta(theta CalculatorFloat) Operation {
	c := *g
	c.Qubits = append([]int{}, g.Qubits...)
	c.Angle = theta

	return &c
}
func (g *MultiQubitZZ) PowerCF(power CalculatorFloat) Operation {
	return g.WithTheta(g.Angle.Mul(power))
}
func (g *MultiQubitZZ) UnitaryMatrix() (*mat.CDense, error) {
	v, err := requireFloats(g.Angle)
	if err != nil {
		return nil, err
	}

	dim := 1 << len(g.Qubits)
	data := make([]complex128, dim*dim)

	for i := 0; i < dim; i++ {
		// Even parity of set bits rotates by -theta/2, odd by +theta/2.
		if popcount(i)%2 == 0 {
			data[i*dim+i] = cis(-v[0] / 2)
		} else {
			data[i*dim+i] = cis(v[0] / 2)
		}
	}

	return mat.NewCDense(dim, dim, data), nil
}
func (g *MultiQubitZZ) SubstituteParameters(values map[string]float64) (Operation, error) {
	angle, err := g.Angle.Substitute(values)
	if err != nil {
		return nil, err
	}

	c := *g
	c.Qubits = append([]int{}, g.Qubits...)
	c.Angle = angle

	return &c, nil
}
func (g *MultiQubitZZ) RemapQubits(mapping map[int]int) (Operation, error) {
	mapped, err := remapIndices(mapping, g.Qubits)
	if err != nil {
		return nil, err
	}

	c := *g
	c.Qubits = mapped

	return &c, nil
}

func popcount(x int) int {
	count := 0
	for x > 0 {
		count += x & 1
		x >>= 1
	}

	return count
}

func init() {
	registerOperation("Toffoli", func() Operation { return &Toffoli{} })
	registerOperation("ControlledControlledPauliZ", func() Operation { return &ControlledControlledPauliZ{} })
	registerOperation("ControlledControlledPhaseShift", func() Operation { return &ControlledControlledPhaseShift{} })
	registerOperation("MultiQubitMS", func() Operation { return &MultiQubitMS{} })
	registerOperation("MultiQubitZZ", func() Operation { return &MultiQubitZZ{} })
}
