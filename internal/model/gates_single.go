package model

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Classifier tags shared across the catalog.
const (
	tagOperation           = "Operation"
	tagGateOperation       = "GateOperation"
	tagSingleQubitGate     = "SingleQubitGateOperation"
	tagTwoQubitGate        = "TwoQubitGateOperation"
	tagThreeQubitGate      = "ThreeQubitGateOperation"
	tagMultiQubitGate      = "MultiQubitGateOperation"
	tagModeGate            = "ModeGateOperation"
	tagRotation            = "Rotation"
	tagDefinition          = "Definition"
	tagMeasurement         = "Measurement"
	tagPragma              = "PragmaOperation"
	tagPragmaNoise         = "PragmaNoiseOperation"
	tagPragmaWithCircuit   = "PragmaOperationWithCircuit"
	tagPragmaStateInit     = "PragmaStateInitialization"
	tagPragmaStateReadout  = "PragmaStateReadout"
	tagPragmaControlBlock  = "PragmaControlBlock"
	tagMeasurementPragma   = "PragmaMeasurement"
	tagGateDefinitionInput = "Input"
)

var invSqrt2 = 1 / math.Sqrt2

// cosCF and sinCF are symbolic-safe trigonometric helpers: they stay symbolic
// while their argument does.
func cosCF(c CalculatorFloat) CalculatorFloat {
	if v, err := c.Float(); err == nil {
		return Float(math.Cos(v))
	}

	return Symbolic("cos(" + c.String() + ")")
}

func sinCF(c CalculatorFloat) CalculatorFloat {
	if v, err := c.Float(); err == nil {
		return Float(math.Sin(v))
	}

	return Symbolic("sin(" + c.String() + ")")
}

func halfCF(c CalculatorFloat) CalculatorFloat {
	return c.Mul(Float(0.5))
}

// Hadamard maps |0> to (|0>+|1>)/sqrt(2) and |1> to (|0>-|1>)/sqrt(2).
type Hadamard struct {
	opBase
	QubitIndex int `json:"qubit" cbor:"qubit"`
}

func (g *Hadamard) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagSingleQubitGate, "Hadamard"}
}
func (g *Hadamard) Hqslang() string                 { return "Hadamard" }
func (g *Hadamard) IsParametrized() bool            { return false }
func (g *Hadamard) InvolvedQubits() InvolvedQubits  { return QubitsOf(g.QubitIndex) }
func (g *Hadamard) GateQubits() []int               { return []int{g.QubitIndex} }
func (g *Hadamard) Qubit() int                      { return g.QubitIndex }
func (g *Hadamard) AlphaR() CalculatorFloat         { return Float(0) }
func (g *Hadamard) AlphaI() CalculatorFloat         { return Float(-invSqrt2) }
func (g *Hadamard) BetaR() CalculatorFloat          { return Float(0) }
func (g *Hadamard) BetaI() CalculatorFloat          { return Float(-invSqrt2) }
func (g *Hadamard) GlobalPhase() CalculatorFloat    { return Float(math.Pi / 2) }
func (g *Hadamard) UnitaryMatrix() (*mat.CDense, error) { return singleQubitMatrix(g) }
func (g *Hadamard) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *g
	return &c, nil
}
func (g *Hadamard) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, g.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *g
	c.QubitIndex = q

	return &c, nil
}

// PauliX is the bit-flip gate.
type PauliX struct {
	opBase
	QubitIndex int `json:"qubit" cbor:"qubit"`
}

func (g *PauliX) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagSingleQubitGate, "PauliX"}
}
func (g *PauliX) Hqslang() string                 { return "PauliX" }
func (g *PauliX) IsParametrized() bool            { return false }
func (g *PauliX) InvolvedQubits() InvolvedQubits  { return QubitsOf(g.QubitIndex) }
func (g *PauliX) GateQubits() []int               { return []int{g.QubitIndex} }
func (g *PauliX) Qubit() int                      { return g.QubitIndex }
func (g *PauliX) AlphaR() CalculatorFloat         { return Float(0) }
func (g *PauliX) AlphaI() CalculatorFloat         { return Float(0) }
func (g *PauliX) BetaR() CalculatorFloat          { return Float(0) }
func (g *PauliX) BetaI() CalculatorFloat          { return Float(-1) }
func (g *PauliX) GlobalPhase() CalculatorFloat    { return Float(math.Pi / 2) }
func (g *PauliX) UnitaryMatrix() (*mat.CDense, error) { return singleQubitMatrix(g) }
func (g *PauliX) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *g
	return &c, nil
}
func (g *PauliX) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, g.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *g
	c.QubitIndex = q

	return &c, nil
}

// PauliY is the bit- and phase-flip gate.
type PauliY struct {
	opBase
	QubitIndex int `json:"qubit" cbor:"qubit"`
}

func (g *PauliY) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagSingleQubitGate, "PauliY"}
}
func (g *PauliY) Hqslang() string                 { return "PauliY" }
func (g *PauliY) IsParametrized() bool            { return false }
func (g *PauliY) InvolvedQubits() InvolvedQubits  { return QubitsOf(g.QubitIndex) }
func (g *PauliY) GateQubits() []int               { return []int{g.QubitIndex} }
func (g *PauliY) Qubit() int                      { return g.QubitIndex }
func (g *PauliY) AlphaR() CalculatorFloat         { return Float(0) }
func (g *PauliY) AlphaI() CalculatorFloat         { return Float(0) }
func (g *PauliY) BetaR() CalculatorFloat          { return Float(1) }
func (g *PauliY) BetaI() CalculatorFloat          { return Float(0) }
func (g *PauliY) GlobalPhase() CalculatorFloat    { return Float(math.Pi / 2) }
func (g *PauliY) UnitaryMatrix() (*mat.CDense, error) { return singleQubitMatrix(g) }
func (g *PauliY) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *g
	return &c, nil
}
func (g *PauliY) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, g.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *g
	c.QubitIndex = q

	return &c, nil
}

// PauliZ is the phase-flip gate.
type PauliZ struct {
	opBase
	QubitIndex int `json:"qubit" cbor:"qubit"`
}

func (g *PauliZ) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagSingleQubitGate, "PauliZ"}
}
func (g *PauliZ) Hqslang() string                 { return "PauliZ" }
func (g *PauliZ) IsParametrized() bool            { return false }
func (g *PauliZ) InvolvedQubits() InvolvedQubits  { return QubitsOf(g.QubitIndex) }
func (g *PauliZ) GateQubits() []int               { return []int{g.QubitIndex} }
func (g *PauliZ) Qubit() int                      { return g.QubitIndex }
func (g *PauliZ) AlphaR() CalculatorFloat         { return Float(0) }
func (g *PauliZ) AlphaI() CalculatorFloat         { return Float(-1) }
func (g *PauliZ) BetaR() CalculatorFloat          { return Float(0) }
func (g *PauliZ) BetaI() CalculatorFloat          { return Float(0) }
func (g *PauliZ) GlobalPhase() CalculatorFloat    { return Float(math.Pi / 2) }
func (g *PauliZ) UnitaryMatrix() (*mat.CDense, error) { return singleQubitMatrix(g) }
func (g *PauliZ) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *g
	return &c, nil
}
func (g *PauliZ) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, g.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *g
	c.QubitIndex = q

	return &c, nil
}

// SqrtPauliX is the square root of PauliX, equal to RotateX(pi/2) up to phase.
type SqrtPauliX struct {
	opBase
	QubitIndex int `json:"qubit" cbor:"qubit"`
}

func (g *SqrtPauliX) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagSingleQubitGate, "SqrtPauliX"}
}
func (g *SqrtPauliX) Hqslang() string                 { return "SqrtPauliX" }
func (g *SqrtPauliX) IsParametrized() bool            { return false }
func (g *SqrtPauliX) InvolvedQubits() InvolvedQubits  { return QubitsOf(g.QubitIndex) }
func (g *SqrtPauliX) GateQubits() []int               { return []int{g.QubitIndex} }
func (g *SqrtPauliX) Qubit() int                      { return g.QubitIndex }
func (g *SqrtPauliX) AlphaR() CalculatorFloat         { return Float(math.Cos(math.Pi / 4)) }
func (g *SqrtPauliX) AlphaI() CalculatorFloat         { return Float(0) }
func (g *SqrtPauliX) BetaR() CalculatorFloat          { return Float(0) }
func (g *SqrtPauliX) BetaI() CalculatorFloat          { return Float(-math.Sin(math.Pi / 4)) }
func (g *SqrtPauliX) GlobalPhase() CalculatorFloat    { return Float(0) }
func (g *SqrtPauliX) UnitaryMatrix() (*mat.CDense, error) { return singleQubitMatrix(g) }
func (g *SqrtPauliX) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *g
	return &c, nil
}
func (g *SqrtPauliX) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, g.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *g
	c.QubitIndex = q

	return &c, nil
}

// InvSqrtPauliX is the inverse of SqrtPauliX, equal to RotateX(-pi/2) up to phase.
type InvSqrtPauliX struct {
	opBase
	QubitIndex int `json:"qubit" cbor:"qubit"`
}

func (g *InvSqrtPauliX) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagSingleQubitGate, "InvSqrtPauliX"}
}
func (g *InvSqrtPauliX) Hqslang() string                 { return "InvSqrtPauliX" }
func (g *InvSqrtPauliX) IsParametrized() bool            { return false }
func (g *InvSqrtPauliX) InvolvedQubits() InvolvedQubits  { return QubitsOf(g.QubitIndex) }
func (g *InvSqrtPauliX) GateQubits() []int               { return []int{g.QubitIndex} }
func (g *InvSqrtPauliX) Qubit() int                      { return g.QubitIndex }
func (g *InvSqrtPauliX) AlphaR() CalculatorFloat         { return Float(math.Cos(math.Pi / 4)) }
func (g *InvSqrtPauliX) AlphaI() CalculatorFloat         { return Float(0) }
func (g *InvSqrtPauliX) BetaR() CalculatorFloat          { return Float(0) }
func (g *InvSqrtPauliX) BetaI() CalculatorFloat          { return Float(math.Sin(math.Pi / 4)) }
func (g *InvSqrtPauliX) GlobalPhase() CalculatorFloat    { return Float(0) }
func (g *InvSqrtPauliX) UnitaryMatrix() (*mat.CDense, error) { return singleQubitMatrix(g) }
func (g *InvSqrtPauliX) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *g
	return &c, nil
}
func (g *InvSqrtPauliX) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, g.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *g
	c.QubitIndex = q

	return &c, nil
}

// SGate applies the phase i to |1>.
type SGate struct {
	opBase
	QubitIndex int `json:"qubit" cbor:"qubit"`
}

func (g *SGate) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagSingleQubitGate, "SGate"}
}
func (g *SGate) Hqslang() string                 { return "SGate" }
func (g *SGate) IsParametrized() bool            { return false }
func (g *SGate) InvolvedQubits() InvolvedQubits  { return QubitsOf(g.QubitIndex) }
func (g *SGate) GateQubits() []int               { return []int{g.QubitIndex} }
func (g *SGate) Qubit() int                      { return g.QubitIndex }
func (g *SGate) AlphaR() CalculatorFloat         { return Float(math.Cos(math.Pi / 4)) }
func (g *SGate) AlphaI() CalculatorFloat         { return Float(-math.Sin(math.Pi / 4)) }
func (g *SGate) BetaR() CalculatorFloat          { return Float(0) }
func (g *SGate) BetaI() CalculatorFloat          { return Float(0) }
func (g *SGate) GlobalPhase() CalculatorFloat    { return Float(math.Pi / 4) }
func (g *SGate) UnitaryMatrix() (*mat.CDense, error) { return singleQubitMatrix(g) }
func (g *SGate) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *g
	return &c, nil
}
func (g *SGate) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, g.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *g
	c.QubitIndex = q

	return &c, nil
}

// TGate applies the phase exp(i pi/4) to |1>.
type TGate struct {
	opBase
	QubitIndex int `json:"qubit" cbor:"qubit"`
}

func (g *TGate) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagSingleQubitGate, "TGate"}
}
func (g *TGate) Hqslang() string                 { return "TGate" }
func (g *TGate) IsParametrized() bool            { return false }
func (g *TGate) InvolvedQubits() InvolvedQubits  { return QubitsOf(g.QubitIndex) }
func (g *TGate) GateQubits() []int               { return []int{g.QubitIndex} }
func (g *TGate) Qubit() int                      { return g.QubitIndex }
func (g *TGate) AlphaR() CalculatorFloat         { return Float(math.Cos(math.Pi / 8)) }
func (g *TGate) AlphaI() CalculatorFloat         { return Float(-math.Sin(math.Pi / 8)) }
func (g *TGate) BetaR() CalculatorFloat          { return Float(0) }
func (g *TGate) BetaI() CalculatorFloat          { return Float(0) }
func (g *TGate) GlobalPhase() CalculatorFloat    { return Float(math.Pi / 8) }
func (g *TGate) UnitaryMatrix() (*mat.CDense, error) { return singleQubitMatrix(g) }
func (g *TGate) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *g
	return &c, nil
}
func (g *TGate) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, g.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *g
	c.QubitIndex = q

	return &c, nil
}

// Identity leaves the qubit untouched.
type Identity struct {
	opBase
	QubitIndex int `json:"qubit" cbor:"qubit"`
}

func (g *Identity) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagSingleQubitGate, "Identity"}
}
func (g *Identity) Hqslang() string                 { return "Identity" }
func (g *Identity) IsParametrized() bool            { return false }
func (g *Identity) InvolvedQubits() InvolvedQubits  { return QubitsOf(g.QubitIndex) }
func (g *Identity) GateQubits() []int               { return []int{g.QubitIndex} }
func (g *Identity) Qubit() int                      { return g.QubitIndex }
func (g *Identity) AlphaR() CalculatorFloat         { return Float(1) }
func (g *Identity) AlphaI() CalculatorFloat         { return Float(0) }
func (g *Identity) BetaR() CalculatorFloat          { return Float(0) }
func (g *Identity) BetaI() CalculatorFloat          { return Float(0) }
func (g *Identity) GlobalPhase() CalculatorFloat    { return Float(0) }
func (g *Identity) UnitaryMatrix() (*mat.CDense, error) { return singleQubitMatrix(g) }
func (g *Identity) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *g
	return &c, nil
}
func (g *Identity) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, g.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *g
	c.QubitIndex = q

	return &c, nil
}

// RotateX rotates one qubit around the x-axis: exp(-i theta/2 X).
type RotateX struct {
	opBase
	QubitIndex int             `json:"qubit" cbor:"qubit"`
	Angle      CalculatorFloat `json:"theta" cbor:"theta"`
}

func (g *RotateX) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagSingleQubitGate, tagRotation, "RotateX"}
}
func (g *RotateX) Hqslang() string                { return "RotateX" }
func (g *RotateX) IsParametrized() bool           { return anyParametrized(g.Angle) }
func (g *RotateX) InvolvedQubits() InvolvedQubits { return QubitsOf(g.QubitIndex) }
func (g *RotateX) GateQubits() []int              { return []int{g.QubitIndex} }
func (g *RotateX) Qubit() int                     { return g.QubitIndex }
func (g *RotateX) Theta() CalculatorFloat         { return g.Angle }
func (g *RotateX) WithTheta(theta CalculatorFloat) Operation {
	c := *g
	c.Angle = theta

	return &c
}
func (g *RotateX) PowerCF(power CalculatorFloat) Operation { return g.WithTheta(g.Angle.Mul(power)) }
func (g *RotateX) AlphaR() CalculatorFloat                 { return cosCF(halfCF(g.Angle)) }
func (g *RotateX) AlphaI() CalculatorFloat                 { return Float(0) }
func (g *RotateX) BetaR() CalculatorFloat                  { return Float(0) }
func (g *RotateX) BetaI() CalculatorFloat                  { return sinCF(halfCF(g.Angle)).Neg() }
func (g *RotateX) GlobalPhase() CalculatorFloat            { return Float(0) }
func (g *RotateX) UnitaryMatrix() (*mat.CDense, error)     { return singleQubitMatrix(g) }
func (g *RotateX) SubstituteParameters(values map[string]float64) (Operation, error) {
	angle, err := g.Angle.Substitute(values)
	if err != nil {
		return nil, err
	}

	c := *g
	c.Angle = angle

	return &c, nil
}
func (g *RotateX) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, g.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *g
	c.QubitIndex = q

	return &c, nil
}

// RotateY rotates one qubit around the y-axis: exp(-i theta/2 Y).
type RotateY struct {
	opBase
	QubitIndex int             `json:"qubit" cbor:"qubit"`
	Angle      CalculatorFloat `json:"theta" cbor:"theta"`
}

func (g *RotateY) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagSingleQubitGate, tagRotation, "RotateY"}
}
func (g *RotateY) Hqslang() string                { return "RotateY" }
func (g *RotateY) IsParametrized() bool           { return anyParametrized(g.Angle) }
func (g *RotateY) InvolvedQubits() InvolvedQubits { return QubitsOf(g.QubitIndex) }
func (g *RotateY) GateQubits() []int              { return []int{g.QubitIndex} }
func (g *RotateY) Qubit() int                     { return g.QubitIndex }
func (g *RotateY) Theta() CalculatorFloat         { return g.Angle }
func (g *RotateY) WithTheta(theta CalculatorFloat) Operation {
	c := *g
	c.Angle = theta

	return &c
}
func (g *RotateY) PowerCF(power CalculatorFloat) Operation { return g.WithTheta(g.Angle.Mul(power)) }
func (g *RotateY) AlphaR() CalculatorFloat                 { return cosCF(halfCF(g.Angle)) }
func (g *RotateY) AlphaI() CalculatorFloat                 { return Float(0) }
func (g *RotateY) BetaR() CalculatorFloat                  { return sinCF(halfCF(g.Angle)) }
func (g *RotateY) BetaI() CalculatorFloat                  { return Float(0) }
func (g *RotateY) GlobalPhase() CalculatorFloat            { return Float(0) }
func (g *RotateY) UnitaryMatrix() (*mat.CDense, error)     { return singleQubitMatrix(g) }
func (g *RotateY) SubstituteParameters(values map[string]float64) (Operation, error) {
	angle, err := g.Angle.Substitute(values)
	if err != nil {
		return nil, err
	}

	c := *g
	c.Angle = angle

	return &c, nil
}
func (g *RotateY) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, g.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *g
	c.QubitIndex = q

	return &c, nil
}

// RotateZ rotates one qubit around the z-axis: exp(-i theta/2 Z).
type RotateZ struct {
	opBase
	QubitIndex int             `json:"qubit" cbor:"qubit"`
	Angle      CalculatorFloat `json:"theta" cbor:"theta"`
}

func (g *RotateZ) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagSingleQubitGate, tagRotation, "RotateZ"}
}
func (g *RotateZ) Hqslang() string                { return "RotateZ" }
func (g *RotateZ) IsParametrized() bool           { return anyParametrized(g.Angle) }
func (g *RotateZ) InvolvedQubits() InvolvedQubits { return QubitsOf(g.QubitIndex) }
func (g *RotateZ) GateQubits() []int              { return []int{g.QubitIndex} }
func (g *RotateZ) Qubit() int                     { return g.QubitIndex }
func (g *RotateZ) Theta() CalculatorFloat         { return g.Angle }
func (g *RotateZ) WithTheta(theta CalculatorFloat) Operation {
	c := *g
	c.Angle = theta

	return &c
}
func (g *RotateZ) PowerCF(power CalculatorFloat) Operation { return g.WithTheta(g.Angle.Mul(power)) }
func (g *RotateZ) AlphaR() CalculatorFloat                 { return cosCF(halfCF(g.Angle)) }
func (g *RotateZ) AlphaI() CalculatorFloat                 { return sinCF(halfCF(g.Angle)).Neg() }
func (g *RotateZ) BetaR() CalculatorFloat                  { return Float(0) }
func (g *RotateZ) BetaI() CalculatorFloat                  { return Float(0) }
func (g *RotateZ) GlobalPhase() CalculatorFloat            { return Float(0) }
func (g *RotateZ) UnitaryMatrix() (*mat.CDense, error)     { return singleQubitMatrix(g) }
func (g *RotateZ) SubstituteParameters(values map[string]float64) (Operation, error) {
	angle, err := g.Angle.Substitute(values)
	if err != nil {
		return nil, err
	}

	c := *g
	c.Angle = angle

	return &c, nil
}
func (g *RotateZ) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, g.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *g
	c.QubitIndex = q

	return &c, nil
}

// PhaseShiftState0 applies the phase exp(i theta) to |0>.
type PhaseShiftState0 struct {
	opBase
	QubitIndex int             `json:"qubit" cbor:"qubit"`
	Angle      CalculatorFloat `json:"theta" cbor:"theta"`
}

func (g *PhaseShiftState0) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagSingleQubitGate, tagRotation, "PhaseShiftState0"}
}
func (g *PhaseShiftState0) Hqslang() string                { return "PhaseShiftState0" }
func (g *PhaseShiftState0) IsParametrized() bool           { return anyParametrized(g.Angle) }
func (g *PhaseShiftState0) InvolvedQubits() InvolvedQubits { return QubitsOf(g.QubitIndex) }
func (g *PhaseShiftState0) GateQubits() []int              { return []int{g.QubitIndex} }
func (g *PhaseShiftState0) Qubit() int                     { return g.QubitIndex }
func (g *PhaseShiftState0) Theta() CalculatorFloat         { return g.Angle }
func (g *PhaseShiftState0) WithTheta(theta CalculatorFloat) Operation {
	c := *g
	c.Angle = theta

	return &c
}
func (g *PhaseShiftState0) PowerCF(power CalculatorFloat) Operation {
	return g.WithTheta(g.Angle.Mul(power))
}
func (g *PhaseShiftState0) AlphaR() CalculatorFloat             { return cosCF(halfCF(g.Angle)) }
func (g *PhaseShiftState0) AlphaI() CalculatorFloat             { return sinCF(halfCF(g.Angle)) }
func (g *PhaseShiftState0) BetaR() CalculatorFloat              { return Float(0) }
func (g *PhaseShiftState0) BetaI() CalculatorFloat              { return Float(0) }
func (g *PhaseShiftState0) GlobalPhase() CalculatorFloat        { return halfCF(g.Angle) }
func (g *PhaseShiftState0) UnitaryMatrix() (*mat.CDense, error) { return singleQubitMatrix(g) }
func (g *PhaseShiftState0) SubstituteParameters(values map[string]float64) (Operation, error) {
	angle, err := g.Angle.Substitute(values)
	if err != nil {
		return nil, err
	}

	c := *g
	c.Angle = angle

	return &c, nil
}
func (g *PhaseShiftState0) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, g.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *g
	c.QubitIndex = q

	return &c, nil
}

// PhaseShiftState1 applies the phase exp(i theta) to |1>.
type PhaseShiftState1 struct {
	opBase
	QubitIndex int             `json:"qubit" cbor:"qubit"`
	Angle      CalculatorFloat `json:"theta" cbor:"theta"`
}

func (g *PhaseShiftState1) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagSingleQubitGate, tagRotation, "PhaseShiftState1"}
}
func (g *PhaseShiftState1) Hqslang() string                { return "PhaseShiftState1" }
func (g *PhaseShiftState1) IsParametrized() bool           { return anyParametrized(g.Angle) }
func (g *PhaseShiftState1) InvolvedQubits() InvolvedQubits { return QubitsOf(g.QubitIndex) }
func (g *PhaseShiftState1) GateQubits() []int              { return []int{g.QubitIndex} }
func (g *PhaseShiftState1) Qubit() int                     { return g.QubitIndex }
func (g *PhaseShiftState1) Theta() CalculatorFloat         { return g.Angle }
func (g *PhaseShiftState1) WithTheta(theta CalculatorFloat) Operation {
	c := *g
	c.Angle = theta

	return &c
}
func (g *PhaseShiftState1) PowerCF(power CalculatorFloat) Operation {
	return g.WithTheta(g.Angle.Mul(power))
}
func (g *PhaseShiftState1) AlphaR() CalculatorFloat             { return cosCF(halfCF(g.Angle)) }
func (g *PhaseShiftState1) AlphaI() CalculatorFloat             { return sinCF(halfCF(g.Angle)).Neg() }
func (g *PhaseShiftState1) BetaR() CalculatorFloat              { return Float(0) }
func (g *PhaseShiftState1) BetaI() CalculatorFloat              { return Float(0) }
func (g *PhaseShiftState1) GlobalPhase() CalculatorFloat        { return halfCF(g.Angle) }
func (g *PhaseShiftState1) UnitaryMatrix() (*mat.CDense, error) { return singleQubitMatrix(g) }
func (g *PhaseShiftState1) SubstituteParameters(values map[string]float64) (Operation, error) {
	angle, err := g.Angle.Substitute(values)
	if err != nil {
		return nil, err
	}

	c := *g
	c.Angle = angle

	return &c, nil
}
func (g *PhaseShiftState1) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, g.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *g
	c.QubitIndex = q

	return &c, nil
}

// RotateXY rotates around an axis in the xy-plane at azimuthal angle phi.
type RotateXY struct {
	opBase
	QubitIndex int             `json:"qubit" cbor:"qubit"`
	Angle      CalculatorFloat `json:"theta" cbor:"theta"`
	Phi        CalculatorFloat `json:"phi" cbor:"phi"`
}

func (g *RotateXY) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagSingleQubitGate, tagRotation, "RotateXY"}
}
func (g *RotateXY) Hqslang() string                { return "RotateXY" }
func (g *RotateXY) IsParametrized() bool           { return anyParametrized(g.Angle, g.Phi) }
func (g *RotateXY) InvolvedQubits() InvolvedQubits { return QubitsOf(g.QubitIndex) }
func (g *RotateXY) GateQubits() []int              { return []int{g.QubitIndex} }
func (g *RotateXY) Qubit() int                     { return g.QubitIndex }
func (g *RotateXY) Theta() CalculatorFloat         { return g.Angle }
func (g *RotateXY) WithTheta(theta CalculatorFloat) Operation {
	c := *g
	c.Angle = theta

	return &c
}
func (g *RotateXY) PowerCF(power CalculatorFloat) Operation { return g.WithTheta(g.Angle.Mul(power)) }
func (g *RotateXY) AlphaR() CalculatorFloat                 { return cosCF(halfCF(g.Angle)) }
func (g *RotateXY) AlphaI() CalculatorFloat                 { return Float(0) }
func (g *RotateXY) BetaR() CalculatorFloat {
	return sinCF(halfCF(g.Angle)).Mul(sinCF(g.Phi))
}
func (g *RotateXY) BetaI() CalculatorFloat {
	return sinCF(halfCF(g.Angle)).Mul(cosCF(g.Phi)).Neg()
}
func (g *RotateXY) GlobalPhase() CalculatorFloat        { return Float(0) }
func (g *RotateXY) UnitaryMatrix() (*mat.CDense, error) { return singleQubitMatrix(g) }
func (g *RotateXY) SubstituteParameters(values map[string]float64) (Operation, error) {
	resolved, err := substituteAll(values, g.Angle, g.Phi)
	if err != nil {
		return nil, err
	}

	c := *g
	c.Angle, c.Phi = resolved[0], resolved[1]

	return &c, nil
}
func (g *RotateXY) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, g.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *g
	c.QubitIndex = q

	return &c, nil
}

// RotateAroundSphericalAxis rotates by theta around the axis given by the
// spherical angles (spherical_theta, spherical_phi).
type RotateAroundSphericalAxis struct {
	opBase
	QubitIndex     int             `json:"qubit" cbor:"qubit"`
	Angle          CalculatorFloat `json:"theta" cbor:"theta"`
	SphericalTheta CalculatorFloat `json:"spherical_theta" cbor:"spherical_theta"`
	SphericalPhi   CalculatorFloat `json:"spherical_phi" cbor:"spherical_phi"`
}

func (g *RotateAroundSphericalAxis) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagSingleQubitGate, tagRotation, "RotateAroundSphericalAxis"}
}
func (g *RotateAroundSphericalAxis) Hqslang() string { return "RotateAroundSphericalAxis" }
func (g *RotateAroundSphericalAxis) IsParametrized() bool {
	return anyParametrized(g.Angle, g.SphericalTheta, g.SphericalPhi)
}
func (g *RotateAroundSphericalAxis) InvolvedQubits() InvolvedQubits { return QubitsOf(g.QubitIndex) }
func (g *RotateAroundSphericalAxis) GateQubits() []int              { return []int{g.QubitIndex} }
func (g *RotateAroundSphericalAxis) Qubit() int                     { return g.QubitIndex }
func (g *RotateAroundSphericalAxis) Theta() CalculatorFloat         { return g.Angle }
func (g *RotateAroundSphericalAxis) WithTheta(theta CalculatorFloat) Operation {
	c := *g
	c.Angle = theta

	return &c
}
func (g *RotateAroundSphericalAxis) PowerCF(power CalculatorFloat) Operation {
	return g.WithTheta(g.Angle.Mul(power))
}
func (g *RotateAroundSphericalAxis) AlphaR() CalculatorFloat { return cosCF(halfCF(g.Angle)) }
func (g *RotateAroundSphericalAxis) AlphaI() CalculatorFloat {
	return sinCF(halfCF(g.Angle)).Mul(cosCF(g.SphericalTheta)).Neg()
}
func (g *RotateAroundSphericalAxis) BetaR() CalculatorFloat {
	return sinCF(halfCF(g.Angle)).Mul(sinCF(g.SphericalTheta)).Mul(sinCF(g.SphericalPhi))
}
func (g *RotateAroundSphericalAxis) BetaI() CalculatorFloat {
	return sinCF(halfCF(g.Angle)).Mul(sinCF(g.SphericalTheta)).Mul(cosCF(g.SphericalPhi)).Neg()
}
func (g *RotateAroundSphericalAxis) GlobalPhase() CalculatorFloat { return Float(0) }
func (g *RotateAroundSphericalAxis) UnitaryMatrix() (*mat.CDense, error) {
	return singleQubitMatrix(g)
}
func (g *RotateAroundSphericalAxis) SubstituteParameters(values map[string]float64) (Operation, error) {
	resolved, err := substituteAll(values, g.Angle, g.SphericalTheta, g.SphericalPhi)
	if err != nil {
		return nil, err
	}

	c := *g
	c.Angle, c.SphericalTheta, c.SphericalPhi = resolved[0], resolved[1], resolved[2]

	return &c, nil
}
func (g *RotateAroundSphericalAxis) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, g.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *g
	c.QubitIndex = q

	return &c, nil
}

// GPi is the IonQ GPi gate [[0, exp(-i theta)], [exp(i theta), 0]].
type GPi struct {
	opBase
	QubitIndex int             `json:"qubit" cbor:"qubit"`
	Angle      CalculatorFloat `json:"theta" cbor:"theta"`
}

func (g *GPi) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagSingleQubitGate, tagRotation, "GPi"}
}
func (g *GPi) Hqslang() string                { return "GPi" }
func (g *GPi) MinSupportedVersion() string    { return "1.1.0" }
func (g *GPi) IsParametrized() bool           { return anyParametrized(g.Angle) }
func (g *GPi) InvolvedQubits() InvolvedQubits { return QubitsOf(g.QubitIndex) }
func (g *GPi) GateQubits() []int              { return []int{g.QubitIndex} }
func (g *GPi) Qubit() int                     { return g.QubitIndex }
func (g *GPi) Theta() CalculatorFloat         { return g.Angle }
func (g *GPi) WithTheta(theta CalculatorFloat) Operation {
	c := *g
	c.Angle = theta

	return &c
}
func (g *GPi) PowerCF(power CalculatorFloat) Operation { return g.WithTheta(g.Angle.Mul(power)) }
func (g *GPi) AlphaR() CalculatorFloat                 { return Float(0) }
func (g *GPi) AlphaI() CalculatorFloat                 { return Float(0) }
func (g *GPi) BetaR() CalculatorFloat                  { return sinCF(g.Angle) }
func (g *GPi) BetaI() CalculatorFloat                  { return cosCF(g.Angle).Neg() }
func (g *GPi) GlobalPhase() CalculatorFloat            { return Float(math.Pi / 2) }
func (g *GPi) UnitaryMatrix() (*mat.CDense, error)     { return singleQubitMatrix(g) }
func (g *GPi) SubstituteParameters(values map[string]float64) (Operation, error) {
	angle, err := g.Angle.Substitute(values)
	if err != nil {
		return nil, err
	}

	c := *g
	c.Angle = angle

	return &c, nil
}
func (g *GPi) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, g.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *g
	c.QubitIndex = q

	return &c, nil
}

// GPi2 is the IonQ GPi2 gate, a pi/2 rotation around the axis at angle theta
// in the xy-plane.
type GPi2 struct {
	opBase
	QubitIndex int             `json:"qubit" cbor:"qubit"`
	Angle      CalculatorFloat `json:"theta" cbor:"theta"`
}

func (g *GPi2) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagSingleQubitGate, tagRotation, "GPi2"}
}
func (g *GPi2) Hqslang() string                { return "GPi2" }
func (g *GPi2) MinSupportedVersion() string    { return "1.1.0" }
func (g *GPi2) IsParametrized() bool           { return anyParametrized(g.Angle) }
func (g *GPi2) InvolvedQubits() InvolvedQubits { return QubitsOf(g.QubitIndex) }
func (g *GPi2) GateQubits() []int              { return []int{g.QubitIndex} }
func (g *GPi2) Qubit() int                     { return g.QubitIndex }
func (g *GPi2) Theta() CalculatorFloat         { return g.Angle }
func (g *GPi2) WithTheta(theta CalculatorFloat) Operation {
	c := *g
	c.Angle = theta

	return &c
}
func (g *GPi2) PowerCF(power CalculatorFloat) Operation { return g.WithTheta(g.Angle.Mul(power)) }
func (g *GPi2) AlphaR() CalculatorFloat                 { return Float(invSqrt2) }
func (g *GPi2) AlphaI() CalculatorFloat                 { return Float(0) }
func (g *GPi2) BetaR() CalculatorFloat                  { return sinCF(g.Angle).Mul(Float(invSqrt2)) }
func (g *GPi2) BetaI() CalculatorFloat                  { return cosCF(g.Angle).Mul(Float(-invSqrt2)) }
func (g *GPi2) GlobalPhase() CalculatorFloat            { return Float(0) }
func (g *GPi2) UnitaryMatrix() (*mat.CDense, error)     { return singleQubitMatrix(g) }
func (g *GPi2) SubstituteParameters(values map[string]float64) (Operation, error) {
	angle, err := g.Angle.Substitute(values)
	if err != nil {
		return nil, err
	}

	c := *g
	c.Angle = angle

	return &c, nil
}
func (g *GPi2) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, g.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *g
	c.QubitIndex = q

	return &c, nil
}

// SingleQubitGate is the generic single-qubit unitary in the
// e^(i phase) [[alpha, -conj(beta)], [beta, conj(alpha)]] parameterization.
// It is the closure of single-qubit gate multiplication.
type SingleQubitGate struct {
	opBase
	QubitIndex int             `json:"qubit" cbor:"qubit"`
	Ar         CalculatorFloat `json:"alpha_r" cbor:"alpha_r"`
	Ai         CalculatorFloat `json:"alpha_i" cbor:"alpha_i"`
	Br         CalculatorFloat `json:"beta_r" cbor:"beta_r"`
	Bi         CalculatorFloat `json:"beta_i" cbor:"beta_i"`
	Phase      CalculatorFloat `json:"global_phase" cbor:"global_phase"`
}

func (g *SingleQubitGate) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagSingleQubitGate, "SingleQubitGate"}
}
func (g *SingleQubitGate) Hqslang() string { return "SingleQubitGate" }
func (g *SingleQubitGate) IsParametrized() bool {
	return anyParametrized(g.Ar, g.Ai, g.Br, g.Bi, g.Phase)
}
func (g *SingleQubitGate) InvolvedQubits() InvolvedQubits { return QubitsOf(g.QubitIndex) }
func (g *SingleQubitGate) GateQubits() []int              { return []int{g.QubitIndex} }
func (g *SingleQubitGate) Qubit() int                     { return g.QubitIndex }
func (g *SingleQubitGate) AlphaR() CalculatorFloat        { return g.Ar }
func (g *SingleQubitGate) AlphaI() CalculatorFloat        { return g.Ai }
func (g *SingleQubitGate) BetaR() CalculatorFloat         { return g.Br }
func (g *SingleQubitGate) BetaI() CalculatorFloat         { return g.Bi }
func (g *SingleQubitGate) GlobalPhase() CalculatorFloat   { return g.Phase }
func (g *SingleQubitGate) UnitaryMatrix() (*mat.CDense, error) {
	return singleQubitMatrix(g)
}
func (g *SingleQubitGate) SubstituteParameters(values map[string]float64) (Operation, error) {
	resolved, err := substituteAll(values, g.Ar, g.Ai, g.Br, g.Bi, g.Phase)
	if err != nil {
		return nil, err
	}

	c := *g
	c.Ar, c.Ai, c.Br, c.Bi, c.Phase = resolved[0], resolved[1], resolved[2], resolved[3], resolved[4]

	return &c, nil
}
func (g *SingleQubitGate) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, g.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *g
	c.QubitIndex = q

	return &c, nil
}

func init() {
	registerOperation("Hadamard", func() Operation { return &Hadamard{} })
	registerOperation("PauliX", func() Operation { return &PauliX{} })
	registerOperation("PauliY", func() Operation { return &PauliY{} })
	registerOperation("PauliZ", func() Operation { return &PauliZ{} })
	registerOperation("SqrtPauliX", func() Operation { return &SqrtPauliX{} })
	registerOperation("InvSqrtPauliX", func() Operation { return &InvSqrtPauliX{} })
	registerOperation("SGate", func() Operation { return &SGate{} })
	registerOperation("TGate", func() Operation { return &TGate{} })
	registerOperation("Identity", func() Operation { return &Identity{} })
	registerOperation("RotateX", func() Operation { return &RotateX{} })
	registerOperation("RotateY", func() Operation { return &RotateY{} })
	registerOperation("RotateZ", func() Operation { return &RotateZ{} })
	registerOperation("PhaseShiftState0", func() Operation { return &PhaseShiftState0{} })
	registerOperation("PhaseShiftState1", func() Operation { return &PhaseShiftState1{} })
	registerOperation("RotateXY", func() Operation { return &RotateXY{} })
	registerOperation("RotateAroundSphericalAxis", func() Operation { return &RotateAroundSphericalAxis{} })
	registerOperation("GPi", func() Operation { return &GPi{} })
	registerOperation("GPi2", func() Operation { return &GPi2{} })
	registerOperation("SingleQubitGate", func() Operation { return &SingleQubitGate{} })
}
