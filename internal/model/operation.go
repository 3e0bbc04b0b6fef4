package model

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Version is the serialization version written into every document produced
// by this library.
const Version = "1.2.0"

// Operation is the closed capability contract shared by every IR instruction:
// gates, register definitions, measurement instructions and pragma directives.
type Operation interface {
	// Tags lists classifier strings from most generic to most specific.
	Tags() []string
	// Hqslang is the canonical name of the operation kind.
	Hqslang() string
	// IsParametrized reports whether any field is still symbolic.
	IsParametrized() bool
	// InvolvedQubits returns the qubits the operation acts on.
	InvolvedQubits() InvolvedQubits
	// SubstituteParameters resolves symbolic parameters and returns a new
	// operation; the receiver is never mutated.
	SubstituteParameters(values map[string]float64) (Operation, error)
	// RemapQubits permutes qubit indices and returns a new operation.
	RemapQubits(mapping map[int]int) (Operation, error)
	// CurrentVersion is the library version that produced the operation.
	CurrentVersion() string
	// MinSupportedVersion is the oldest library version able to read it.
	MinSupportedVersion() string
}

// GateOperation is implemented by every unitary gate variant.
type GateOperation interface {
	Operation
	// UnitaryMatrix returns the gate's closed-form 2^k x 2^k matrix, or an
	// UnresolvedSymbolError while any parameter is symbolic.
	UnitaryMatrix() (*mat.CDense, error)
	// GateQubits lists the gate's qubits, least significant basis bit first.
	GateQubits() []int
}

// Rotation is implemented by gates defined as a rotation with a primary angle.
type Rotation interface {
	GateOperation
	// Theta is the primary rotation angle.
	Theta() CalculatorFloat
	// WithTheta returns the same gate variant carrying a new primary angle.
	WithTheta(theta CalculatorFloat) Operation
	// PowerCF returns the analytic power of the gate: the angle is
	// reparameterized by the exponent and the variant is preserved.
	PowerCF(power CalculatorFloat) Operation
}

// SingleQubitUnitary is the capability of gates expressible as
// e^(i phi) [[a, -conj(b)], [b, conj(a)]] with a = ar + i*ai, b = br + i*bi.
type SingleQubitUnitary interface {
	GateOperation
	Qubit() int
	AlphaR() CalculatorFloat
	AlphaI() CalculatorFloat
	BetaR() CalculatorFloat
	BetaI() CalculatorFloat
	GlobalPhase() CalculatorFloat
}

// Definition is implemented by classical register declarations.
type Definition interface {
	Operation
	// RegisterName is the caller-chosen register name. Uniqueness across a
	// circuit is the consumer's concern, not the definition's.
	RegisterName() string
}

// InvolvedQubits is a finite qubit set or the ALL sentinel for operations that
// implicitly touch every qubit in the register.
type InvolvedQubits struct {
	All    bool
	Qubits []int
}

// NoQubits marks an operation acting on no qubit at all.
func NoQubits() InvolvedQubits {
	return InvolvedQubits{}
}

// AllQubits is the sentinel for operations acting on every qubit implicitly.
func AllQubits() InvolvedQubits {
	return InvolvedQubits{All: true}
}

// QubitsOf collects an explicit, sorted, deduplicated qubit set.
func QubitsOf(qubits ...int) InvolvedQubits {
	seen := make(map[int]struct{}, len(qubits))
	out := make([]int, 0, len(qubits))

	for _, q := range qubits {
		if _, ok := seen[q]; ok {
			continue
		}

		seen[q] = struct{}{}
		out = append(out, q)
	}

	sort.Ints(out)

	return InvolvedQubits{Qubits: out}
}

// Contains reports qubit membership; the ALL sentinel contains every qubit.
func (iq InvolvedQubits) Contains(q int) bool {
	if iq.All {
		return true
	}

	for _, o := range iq.Qubits {
		if o == q {
			return true
		}
	}

	return false
}

// ContainsAll reports whether every listed qubit is involved.
func (iq InvolvedQubits) ContainsAll(qubits []int) bool {
	for _, q := range qubits {
		if !iq.Contains(q) {
			return false
		}
	}

	return true
}

// Union merges two qubit sets; ALL absorbs everything.
func (iq InvolvedQubits) Union(other InvolvedQubits) InvolvedQubits {
	if iq.All || other.All {
		return AllQubits()
	}

	return QubitsOf(append(append([]int{}, iq.Qubits...), other.Qubits...)...)
}

// opBase supplies the version metadata shared by the whole catalog. Variants
// introduced after the first release shadow MinSupportedVersion.
type opBase struct{}

func (opBase) CurrentVersion() string { return Version }

func (opBase) MinSupportedVersion() string { return "1.0.0" }

// opRegistry maps hqslang names to zero-value factories for deserialization.
var opRegistry = map[string]func() Operation{}

func registerOperation(name string, factory func() Operation) {
	if _, ok := opRegistry[name]; ok {
		panic(fmt.Sprintf("duplicate operation registration: %s", name))
	}

	opRegistry[name] = factory
}

// OperationFromName returns a zero value of the named operation kind.
func OperationFromName(hqslang string) (Operation, bool) {
	factory, ok := opRegistry[hqslang]
	if !ok {
		return nil, false
	}

	return factory(), true
}

// KnownOperations lists every registered hqslang name, sorted.
func KnownOperations() []string {
	names := make([]string, 0, len(opRegistry))
	for name := range opRegistry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// OperationsEqual compares two operations structurally.
func OperationsEqual(a, b Operation) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.Hqslang() != b.Hqslang() {
		return false
	}

	return reflect.DeepEqual(a, b)
}

// CompareOperations is a total order over operations: by hqslang name first,
// then by canonical encoding. It never fails; operations that cannot be
// serialized sort by their formatted value instead.
func CompareOperations(a, b Operation) int {
	if c := strings.Compare(a.Hqslang(), b.Hqslang()); c != 0 {
		return c
	}

	ab, aerr := marshalOperationJSON(a)
	bb, berr := marshalOperationJSON(b)
	if aerr != nil || berr != nil {
		return strings.Compare(fmt.Sprintf("%+v", a), fmt.Sprintf("%+v", b))
	}

	return bytes.Compare(ab, bb)
}

func remapIndex(mapping map[int]int, qubit int) (int, error) {
	mapped, ok := mapping[qubit]
	if !ok {
		return 0, &QubitRemappingError{Qubit: qubit}
	}

	return mapped, nil
}

func remapIndices(mapping map[int]int, qubits []int) ([]int, error) {
	out := make([]int, len(qubits))
	seen := make(map[int]struct{}, len(qubits))

	for i, q := range qubits {
		mapped, err := remapIndex(mapping, q)
		if err != nil {
			return nil, err
		}

		if _, dup := seen[mapped]; dup {
			return nil, &QubitRemappingError{Qubit: q, Reason: "two qubits map to index " + strconv.Itoa(mapped)}
		}

		seen[mapped] = struct{}{}
		out[i] = mapped
	}

	return out, nil
}

func remapQubitMap(mapping map[int]int, qubitMap map[int]int) (map[int]int, error) {
	out := make(map[int]int, len(qubitMap))

	for q, v := range qubitMap {
		mapped, err := remapIndex(mapping, q)
		if err != nil {
			return nil, err
		}

		out[mapped] = v
	}

	return out, nil
}

// substituteAll resolves a list of scalars against one symbol table, failing
// on the first unresolved name.
func substituteAll(values map[string]float64, scalars ...CalculatorFloat) ([]CalculatorFloat, error) {
	out := make([]CalculatorFloat, len(scalars))

	for i, s := range scalars {
		resolved, err := s.Substitute(values)
		if err != nil {
			return nil, err
		}

		out[i] = resolved
	}

	return out, nil
}

func anyParametrized(scalars ...CalculatorFloat) bool {
	for _, s := range scalars {
		if !s.IsFloat() {
			return true
		}
	}

	return false
}

// singleQubitMatrix builds the 2x2 matrix of a SingleQubitUnitary from its
// resolved alpha/beta/phase coefficients.
func singleQubitMatrix(g SingleQubitUnitary) (*mat.CDense, error) {
	resolved, err := substituteAll(nil, g.AlphaR(), g.AlphaI(), g.BetaR(), g.BetaI(), g.GlobalPhase())
	if err != nil {
		return nil, err
	}

	ar, _ := resolved[0].Float()
	ai, _ := resolved[1].Float()
	br, _ := resolved[2].Float()
	bi, _ := resolved[3].Float()
	phi, _ := resolved[4].Float()

	alpha := complex(ar, ai)
	beta := complex(br, bi)
	phase := cis(phi)

	return mat.NewCDense(2, 2, []complex128{
		phase * alpha, phase * -conj(beta),
		phase * beta, phase * conj(alpha),
	}), nil
}

// MulSingleQubit composes two single-qubit unitaries acting on the same qubit
// into one generic SingleQubitGate: other is applied after the receiver.
func MulSingleQubit(first, second Operation) (Operation, error) {
	g1, ok := first.(SingleQubitUnitary)
	if !ok {
		return nil, &TypeMismatchError{Expected: "single-qubit unitary operation", Got: first.Hqslang()}
	}

	g2, ok := second.(SingleQubitUnitary)
	if !ok {
		return nil, &TypeMismatchError{Expected: "single-qubit unitary operation", Got: second.Hqslang()}
	}

	if g1.Qubit() != g2.Qubit() {
		return nil, &TypeMismatchError{
			Expected: "gates acting on qubit " + strconv.Itoa(g1.Qubit()),
			Got:      "gate acting on qubit " + strconv.Itoa(g2.Qubit()),
		}
	}

	ar1, ai1, br1, bi1 := g1.AlphaR(), g1.AlphaI(), g1.BetaR(), g1.BetaI()
	ar2, ai2, br2, bi2 := g2.AlphaR(), g2.AlphaI(), g2.BetaR(), g2.BetaI()

	// U2*U1 in the [[a, -conj(b)], [b, conj(a)]] parameterization:
	// alpha = a2*a1 - conj(b2)*b1, beta = b2*a1 + conj(a2)*b1.
	return &SingleQubitGate{
		QubitIndex: g1.Qubit(),
		Ar:         ar2.Mul(ar1).Sub(ai2.Mul(ai1)).Sub(br2.Mul(br1)).Sub(bi2.Mul(bi1)),
		Ai:         ar2.Mul(ai1).Add(ai2.Mul(ar1)).Sub(br2.Mul(bi1)).Add(bi2.Mul(br1)),
		Br:         br2.Mul(ar1).Sub(bi2.Mul(ai1)).Add(ar2.Mul(br1)).Add(ai2.Mul(bi1)),
		Bi:         br2.Mul(ai1).Add(bi2.Mul(ar1)).Add(ar2.Mul(bi1)).Sub(ai2.Mul(br1)),
		Phase:      g1.GlobalPhase().Add(g2.GlobalPhase()),
	}, nil
}

func conj(c complex128) complex128 {
	return complex(real(c), -imag(c))
}

func cis(phi float64) complex128 {
	return complex(math.Cos(phi), math.Sin(phi))
}
