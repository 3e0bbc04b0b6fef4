package model

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
)

// Complex is a JSON/CBOR-friendly complex number used by state-injection
// pragmas.
type Complex struct {
	Re float64 `json:"re" cbor:"re"`
	Im float64 `json:"im" cbor:"im"`
}

// ComplexFrom converts a complex128.
func ComplexFrom(c complex128) Complex {
	return Complex{Re: real(c), Im: imag(c)}
}

// Complex128 converts back to a complex128.
func (c Complex) Complex128() complex128 {
	return complex(c.Re, c.Im)
}

// PragmaSetNumberOfMeasurements requests a fixed number of measurement
// repetitions for one readout register.
type PragmaSetNumberOfMeasurements struct {
	opBase
	NumberMeasurements int    `json:"number_measurements" cbor:"number_measurements"`
	Readout            string `json:"readout" cbor:"readout"`
}

func (p *PragmaSetNumberOfMeasurements) Tags() []string {
	return []string{tagOperation, tagPragma, tagMeasurementPragma, "PragmaSetNumberOfMeasurements"}
}
func (p *PragmaSetNumberOfMeasurements) Hqslang() string                { return "PragmaSetNumberOfMeasurements" }
func (p *PragmaSetNumberOfMeasurements) IsParametrized() bool           { return false }
func (p *PragmaSetNumberOfMeasurements) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (p *PragmaSetNumberOfMeasurements) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *p
	return &c, nil
}
func (p *PragmaSetNumberOfMeasurements) RemapQubits(map[int]int) (Operation, error) {
	c := *p
	return &c, nil
}

// PragmaRepeatedMeasurement measures every qubit repeatedly into a bit
// register, optionally through a qubit-to-index mapping.
type PragmaRepeatedMeasurement struct {
	opBase
	Readout            string      `json:"readout" cbor:"readout"`
	NumberMeasurements int         `json:"number_measurements" cbor:"number_measurements"`
	QubitMapping       map[int]int `json:"qubit_mapping,omitempty" cbor:"qubit_mapping,omitempty"`
}

func (p *PragmaRepeatedMeasurement) Tags() []string {
	return []string{tagOperation, tagPragma, tagMeasurementPragma, "PragmaRepeatedMeasurement"}
}
func (p *PragmaRepeatedMeasurement) Hqslang() string                { return "PragmaRepeatedMeasurement" }
func (p *PragmaRepeatedMeasurement) IsParametrized() bool           { return false }
func (p *PragmaRepeatedMeasurement) InvolvedQubits() InvolvedQubits { return AllQubits() }
func (p *PragmaRepeatedMeasurement) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *p
	return &c, nil
}
func (p *PragmaRepeatedMeasurement) RemapQubits(mapping map[int]int) (Operation, error) {
	c := *p

	if p.QubitMapping != nil {
		remapped, err := remapQubitMap(mapping, p.QubitMapping)
		if err != nil {
			return nil, err
		}

		c.QubitMapping = remapped
	}

	return &c, nil
}

// PragmaSetStateVector replaces the simulator state with the given amplitude
// vector. It implicitly touches every qubit in the register.
type PragmaSetStateVector struct {
	opBase
	Statevector []Complex `json:"statevector" cbor:"statevector"`
}

func (p *PragmaSetStateVector) Tags() []string {
	return []string{tagOperation, tagPragma, tagPragmaStateInit, "PragmaSetStateVector"}
}
func (p *PragmaSetStateVector) Hqslang() string                { return "PragmaSetStateVector" }
func (p *PragmaSetStateVector) IsParametrized() bool           { return false }
func (p *PragmaSetStateVector) InvolvedQubits() InvolvedQubits { return AllQubits() }
func (p *PragmaSetStateVector) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *p
	c.Statevector = append([]Complex{}, p.Statevector...)

	return &c, nil
}
func (p *PragmaSetStateVector) RemapQubits(map[int]int) (Operation, error) {
	c := *p
	c.Statevector = append([]Complex{}, p.Statevector...)

	return &c, nil
}

// PragmaSetDensityMatrix replaces the simulator state with a density matrix.
type PragmaSetDensityMatrix struct {
	opBase
	DensityMatrix [][]Complex `json:"density_matrix" cbor:"density_matrix"`
}

func (p *PragmaSetDensityMatrix) Tags() []string {
	return []string{tagOperation, tagPragma, tagPragmaStateInit, "PragmaSetDensityMatrix"}
}
func (p *PragmaSetDensityMatrix) Hqslang() string                { return "PragmaSetDensityMatrix" }
func (p *PragmaSetDensityMatrix) IsParametrized() bool           { return false }
func (p *PragmaSetDensityMatrix) InvolvedQubits() InvolvedQubits { return AllQubits() }
func (p *PragmaSetDensityMatrix) copyMatrix() [][]Complex {
	out := make([][]Complex, len(p.DensityMatrix))
	for i, row := range p.DensityMatrix {
		out[i] = append([]Complex{}, row...)
	}

	return out
}
func (p *PragmaSetDensityMatrix) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *p
	c.DensityMatrix = p.copyMatrix()

	return &c, nil
}
func (p *PragmaSetDensityMatrix) RemapQubits(map[int]int) (Operation, error) {
	c := *p
	c.DensityMatrix = p.copyMatrix()

	return &c, nil
}

// PragmaGetStateVector requests the full state vector into a complex register,
// optionally after running a preparation circuit.
type PragmaGetStateVector struct {
	opBase
	Readout string   `json:"readout" cbor:"readout"`
	Circuit *Circuit `json:"circuit,omitempty" cbor:"circuit,omitempty"`
}

func (p *PragmaGetStateVector) Tags() []string {
	return []string{tagOperation, tagPragma, tagPragmaStateReadout, "PragmaGetStateVector"}
}
func (p *PragmaGetStateVector) Hqslang() string                { return "PragmaGetStateVector" }
func (p *PragmaGetStateVector) IsParametrized() bool           { return p.Circuit != nil && p.Circuit.IsParametrized() }
func (p *PragmaGetStateVector) InvolvedQubits() InvolvedQubits { return AllQubits() }
func (p *PragmaGetStateVector) SubstituteParameters(values map[string]float64) (Operation, error) {
	c := *p

	if p.Circuit != nil {
		sub, err := p.Circuit.SubstituteParameters(values)
		if err != nil {
			return nil, err
		}

		c.Circuit = &sub
	}

	return &c, nil
}
func (p *PragmaGetStateVector) RemapQubits(mapping map[int]int) (Operation, error) {
	c := *p

	if p.Circuit != nil {
		remapped, err := p.Circuit.RemapQubits(mapping)
		if err != nil {
			return nil, err
		}

		c.Circuit = &remapped
	}

	return &c, nil
}

// PragmaGetDensityMatrix requests the density matrix into a complex register.
type PragmaGetDensityMatrix struct {
	opBase
	Readout string   `json:"readout" cbor:"readout"`
	Circuit *Circuit `json:"circuit,omitempty" cbor:"circuit,omitempty"`
}

func (p *PragmaGetDensityMatrix) Tags() []string {
	return []string{tagOperation, tagPragma, tagPragmaStateReadout, "PragmaGetDensityMatrix"}
}
func (p *PragmaGetDensityMatrix) Hqslang() string      { return "PragmaGetDensityMatrix" }
func (p *PragmaGetDensityMatrix) IsParametrized() bool {
	return p.Circuit != nil && p.Circuit.IsParametrized()
}
func (p *PragmaGetDensityMatrix) InvolvedQubits() InvolvedQubits { return AllQubits() }
func (p *PragmaGetDensityMatrix) SubstituteParameters(values map[string]float64) (Operation, error) {
	c := *p

	if p.Circuit != nil {
		sub, err := p.Circuit.SubstituteParameters(values)
		if err != nil {
			return nil, err
		}

		c.Circuit = &sub
	}

	return &c, nil
}
func (p *PragmaGetDensityMatrix) RemapQubits(mapping map[int]int) (Operation, error) {
	c := *p

	if p.Circuit != nil {
		remapped, err := p.Circuit.RemapQubits(mapping)
		if err != nil {
			return nil, err
		}

		c.Circuit = &remapped
	}

	return &c, nil
}

// PragmaGetOccupationProbability requests basis-state occupation
// probabilities into a float register.
type PragmaGetOccupationProbability struct {
	opBase
	Readout string   `json:"readout" cbor:"readout"`
	Circuit *Circuit `json:"circuit,omitempty" cbor:"circuit,omitempty"`
}

func (p *PragmaGetOccupationProbability) Tags() []string {
	return []string{tagOperation, tagPragma, tagPragmaStateReadout, "PragmaGetOccupationProbability"}
}
func (p *PragmaGetOccupationProbability) Hqslang() string      { return "PragmaGetOccupationProbability" }
func (p *PragmaGetOccupationProbability) IsParametrized() bool {
	return p.Circuit != nil && p.Circuit.IsParametrized()
}
func (p *PragmaGetOccupationProbability) InvolvedQubits() InvolvedQubits { return AllQubits() }
func (p *PragmaGetOccupationProbability) SubstituteParameters(values map[string]float64) (Operation, error) {
	c := *p

	if p.Circuit != nil {
		sub, err := p.Circuit.SubstituteParameters(values)
		if err != nil {
			return nil, err
		}

		c.Circuit = &sub
	}

	return &c, nil
}
func (p *PragmaGetOccupationProbability) RemapQubits(mapping map[int]int) (Operation, error) {
	c := *p

	if p.Circuit != nil {
		remapped, err := p.Circuit.RemapQubits(mapping)
		if err != nil {
			return nil, err
		}

		c.Circuit = &remapped
	}

	return &c, nil
}

// PragmaGetPauliProduct requests the expectation value of a product of Pauli
// operators, measured after an optional preparation circuit.
type PragmaGetPauliProduct struct {
	opBase
	QubitPaulis map[int]int `json:"qubit_paulis" cbor:"qubit_paulis"`
	Readout     string      `json:"readout" cbor:"readout"`
	Circuit     Circuit     `json:"circuit" cbor:"circuit"`
}

func (p *PragmaGetPauliProduct) Tags() []string {
	return []string{tagOperation, tagPragma, tagPragmaStateReadout, "PragmaGetPauliProduct"}
}
func (p *PragmaGetPauliProduct) Hqslang() string                { return "PragmaGetPauliProduct" }
func (p *PragmaGetPauliProduct) IsParametrized() bool           { return p.Circuit.IsParametrized() }
func (p *PragmaGetPauliProduct) InvolvedQubits() InvolvedQubits { return AllQubits() }
func (p *PragmaGetPauliProduct) SubstituteParameters(values map[string]float64) (Operation, error) {
	sub, err := p.Circuit.SubstituteParameters(values)
	if err != nil {
		return nil, err
	}

	c := *p
	c.Circuit = sub
	c.QubitPaulis = copyIntMap(p.QubitPaulis)

	return &c, nil
}
func (p *PragmaGetPauliProduct) RemapQubits(mapping map[int]int) (Operation, error) {
	remapped, err := p.Circuit.RemapQubits(mapping)
	if err != nil {
		return nil, err
	}

	paulis, err := remapQubitMap(mapping, p.QubitPaulis)
	if err != nil {
		return nil, err
	}

	c := *p
	c.Circuit = remapped
	c.QubitPaulis = paulis

	return &c, nil
}

// PragmaDamping applies amplitude damping noise to one qubit.
type PragmaDamping struct {
	opBase
	QubitIndex int             `json:"qubit" cbor:"qubit"`
	GateTime   CalculatorFloat `json:"gate_time" cbor:"gate_time"`
	Rate       CalculatorFloat `json:"rate" cbor:"rate"`
}

func (p *PragmaDamping) Tags() []string {
	return []string{tagOperation, tagPragma, tagPragmaNoise, "PragmaDamping"}
}
func (p *PragmaDamping) Hqslang() string                { return "PragmaDamping" }
func (p *PragmaDamping) IsParametrized() bool           { return anyParametrized(p.GateTime, p.Rate) }
func (p *PragmaDamping) InvolvedQubits() InvolvedQubits { return QubitsOf(p.QubitIndex) }
func (p *PragmaDamping) SubstituteParameters(values map[string]float64) (Operation, error) {
	resolved, err := substituteAll(values, p.GateTime, p.Rate)
	if err != nil {
		return nil, err
	}

	c := *p
	c.GateTime, c.Rate = resolved[0], resolved[1]

	return &c, nil
}
func (p *PragmaDamping) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, p.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *p
	c.QubitIndex = q

	return &c, nil
}

// PragmaDepolarising applies depolarising noise to one qubit.
type PragmaDepolarising struct {
	opBase
	QubitIndex int             `json:"qubit" cbor:"qubit"`
	GateTime   CalculatorFloat `json:"gate_time" cbor:"gate_time"`
	Rate       CalculatorFloat `json:"rate" cbor:"rate"`
}

func (p *PragmaDepolarising) Tags() []string {
	return []string{tagOperation, tagPragma, tagPragmaNoise, "PragmaDepolarising"}
}
func (p *PragmaDepolarising) Hqslang() string                { return "PragmaDepolarising" }
func (p *PragmaDepolarising) IsParametrized() bool           { return anyParametrized(p.GateTime, p.Rate) }
func (p *PragmaDepolarising) InvolvedQubits() InvolvedQubits { return QubitsOf(p.QubitIndex) }
func (p *PragmaDepolarising) SubstituteParameters(values map[string]float64) (Operation, error) {
	resolved, err := substituteAll(values, p.GateTime, p.Rate)
	if err != nil {
		return nil, err
	}

	c := *p
	c.GateTime, c.Rate = resolved[0], resolved[1]

	return &c, nil
}
func (p *PragmaDepolarising) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, p.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *p
	c.QubitIndex = q

	return &c, nil
}

// PragmaDephasing applies pure dephasing noise to one qubit.
type PragmaDephasing struct {
	opBase
	QubitIndex int             `json:"qubit" cbor:"qubit"`
	GateTime   CalculatorFloat `json:"gate_time" cbor:"gate_time"`
	Rate       CalculatorFloat `json:"rate" cbor:"rate"`
}

func (p *PragmaDephasing) Tags() []string {
	return []string{tagOperation, tagPragma, tagPragmaNoise, "PragmaDephasing"}
}
func (p *PragmaDephasing) Hqslang() string                { return "PragmaDephasing" }
func (p *PragmaDephasing) IsParametrized() bool           { return anyParametrized(p.GateTime, p.Rate) }
func (p *PragmaDephasing) InvolvedQubits() InvolvedQubits { return QubitsOf(p.QubitIndex) }
func (p *PragmaDephasing) SubstituteParameters(values map[string]float64) (Operation, error) {
	resolved, err := substituteAll(values, p.GateTime, p.Rate)
	if err != nil {
		return nil, err
	}

	c := *p
	c.GateTime, c.Rate = resolved[0], resolved[1]

	return &c, nil
}
func (p *PragmaDephasing) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, p.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *p
	c.QubitIndex = q

	return &c, nil
}

// PragmaRandomNoise applies stochastically sampled depolarising and dephasing
// noise to one qubit.
type PragmaRandomNoise struct {
	opBase
	QubitIndex       int             `json:"qubit" cbor:"qubit"`
	GateTime         CalculatorFloat `json:"gate_time" cbor:"gate_time"`
	DepolarisingRate CalculatorFloat `json:"depolarising_rate" cbor:"depolarising_rate"`
	DephasingRate    CalculatorFloat `json:"dephasing_rate" cbor:"dephasing_rate"`
}

func (p *PragmaRandomNoise) Tags() []string {
	return []string{tagOperation, tagPragma, tagPragmaNoise, "PragmaRandomNoise"}
}
func (p *PragmaRandomNoise) Hqslang() string { return "PragmaRandomNoise" }
func (p *PragmaRandomNoise) IsParametrized() bool {
	return anyParametrized(p.GateTime, p.DepolarisingRate, p.DephasingRate)
}
func (p *PragmaRandomNoise) InvolvedQubits() InvolvedQubits { return QubitsOf(p.QubitIndex) }
func (p *PragmaRandomNoise) SubstituteParameters(values map[string]float64) (Operation, error) {
	resolved, err := substituteAll(values, p.GateTime, p.DepolarisingRate, p.DephasingRate)
	if err != nil {
		return nil, err
	}

	c := *p
	c.GateTime, c.DepolarisingRate, c.DephasingRate = resolved[0], resolved[1], resolved[2]

	return &c, nil
}
func (p *PragmaRandomNoise) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, p.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *p
	c.QubitIndex = q

	return &c, nil
}

// PragmaGeneralNoise applies a general noise channel given by a 3x3 rate
// matrix over the (X, Y, Z) Lindblad operators.
type PragmaGeneralNoise struct {
	opBase
	QubitIndex int             `json:"qubit" cbor:"qubit"`
	GateTime   CalculatorFloat `json:"gate_time" cbor:"gate_time"`
	Rates      [][]float64     `json:"rates" cbor:"rates"`
}

func (p *PragmaGeneralNoise) Tags() []string {
	return []string{tagOperation, tagPragma, tagPragmaNoise, "PragmaGeneralNoise"}
}
func (p *PragmaGeneralNoise) Hqslang() string                { return "PragmaGeneralNoise" }
func (p *PragmaGeneralNoise) IsParametrized() bool           { return anyParametrized(p.GateTime) }
func (p *PragmaGeneralNoise) InvolvedQubits() InvolvedQubits { return QubitsOf(p.QubitIndex) }
func (p *PragmaGeneralNoise) copyRates() [][]float64 {
	out := make([][]float64, len(p.Rates))
	for i, row := range p.Rates {
		out[i] = append([]float64{}, row...)
	}

	return out
}
func (p *PragmaGeneralNoise) SubstituteParameters(values map[string]float64) (Operation, error) {
	gateTime, err := p.GateTime.Substitute(values)
	if err != nil {
		return nil, err
	}

	c := *p
	c.GateTime = gateTime
	c.Rates = p.copyRates()

	return &c, nil
}
func (p *PragmaGeneralNoise) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, p.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *p
	c.QubitIndex = q
	c.Rates = p.copyRates()

	return &c, nil
}

// PragmaConditional runs the embedded circuit only when the given bit of a
// classical register is set.
type PragmaConditional struct {
	opBase
	ConditionRegister string  `json:"condition_register" cbor:"condition_register"`
	ConditionIndex    int     `json:"condition_index" cbor:"condition_index"`
	Circuit           Circuit `json:"circuit" cbor:"circuit"`
}

func (p *PragmaConditional) Tags() []string {
	return []string{tagOperation, tagPragma, tagPragmaWithCircuit, "PragmaConditional"}
}
func (p *PragmaConditional) Hqslang() string                { return "PragmaConditional" }
func (p *PragmaConditional) IsParametrized() bool           { return p.Circuit.IsParametrized() }
func (p *PragmaConditional) InvolvedQubits() InvolvedQubits { return p.Circuit.InvolvedQubits() }
func (p *PragmaConditional) SubstituteParameters(values map[string]float64) (Operation, error) {
	sub, err := p.Circuit.SubstituteParameters(values)
	if err != nil {
		return nil, err
	}

	c := *p
	c.Circuit = sub

	return &c, nil
}
func (p *PragmaConditional) RemapQubits(mapping map[int]int) (Operation, error) {
	remapped, err := p.Circuit.RemapQubits(mapping)
	if err != nil {
		return nil, err
	}

	c := *p
	c.Circuit = remapped

	return &c, nil
}

// PragmaLoop repeats the embedded circuit a number of times; the repetition
// count may itself be symbolic until execution.
type PragmaLoop struct {
	opBase
	Repetitions CalculatorFloat `json:"repetitions" cbor:"repetitions"`
	Circuit     Circuit         `json:"circuit" cbor:"circuit"`
}

func (p *PragmaLoop) Tags() []string {
	return []string{tagOperation, tagPragma, tagPragmaWithCircuit, "PragmaLoop"}
}
func (p *PragmaLoop) Hqslang() string { return "PragmaLoop" }
func (p *PragmaLoop) IsParametrized() bool {
	return anyParametrized(p.Repetitions) || p.Circuit.IsParametrized()
}
func (p *PragmaLoop) InvolvedQubits() InvolvedQubits { return p.Circuit.InvolvedQubits() }
func (p *PragmaLoop) SubstituteParameters(values map[string]float64) (Operation, error) {
	repetitions, err := p.Repetitions.Substitute(values)
	if err != nil {
		return nil, err
	}

	sub, err := p.Circuit.SubstituteParameters(values)
	if err != nil {
		return nil, err
	}

	c := *p
	c.Repetitions = repetitions
	c.Circuit = sub

	return &c, nil
}
func (p *PragmaLoop) RemapQubits(mapping map[int]int) (Operation, error) {
	remapped, err := p.Circuit.RemapQubits(mapping)
	if err != nil {
		return nil, err
	}

	c := *p
	c.Circuit = remapped

	return &c, nil
}

// PragmaControlledCircuit applies the embedded circuit controlled on one
// qubit being |1>.
type PragmaControlledCircuit struct {
	opBase
	ControllingQubit int     `json:"controlling_qubit" cbor:"controlling_qubit"`
	Circuit          Circuit `json:"circuit" cbor:"circuit"`
}

func (p *PragmaControlledCircuit) Tags() []string {
	return []string{tagOperation, tagPragma, tagPragmaWithCircuit, "PragmaControlledCircuit"}
}
func (p *PragmaControlledCircuit) Hqslang() string             { return "PragmaControlledCircuit" }
func (p *PragmaControlledCircuit) MinSupportedVersion() string { return "1.1.0" }
func (p *PragmaControlledCircuit) IsParametrized() bool        { return p.Circuit.IsParametrized() }
func (p *PragmaControlledCircuit) InvolvedQubits() InvolvedQubits {
	return QubitsOf(p.ControllingQubit).Union(p.Circuit.InvolvedQubits())
}
func (p *PragmaControlledCircuit) SubstituteParameters(values map[string]float64) (Operation, error) {
	sub, err := p.Circuit.SubstituteParameters(values)
	if err != nil {
		return nil, err
	}

	c := *p
	c.Circuit = sub

	return &c, nil
}
func (p *PragmaControlledCircuit) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, p.ControllingQubit)
	if err != nil {
		return nil, err
	}

	remapped, err := p.Circuit.RemapQubits(mapping)
	if err != nil {
		return nil, err
	}

	c := *p
	c.ControllingQubit = q
	c.Circuit = remapped

	return &c, nil
}

// PragmaOverrotation marks subsequent occurrences of one gate kind on a
// superset of the listed qubits for stochastic overrotation.
type PragmaOverrotation struct {
	opBase
	GateHqslang string  `json:"gate_hqslang" cbor:"gate_hqslang"`
	Qubits      []int   `json:"qubits" cbor:"qubits"`
	Amplitude   float64 `json:"amplitude" cbor:"amplitude"`
	Variance    float64 `json:"variance" cbor:"variance"`
}

func (p *PragmaOverrotation) Tags() []string {
	return []string{tagOperation, tagPragma, "PragmaOverrotation"}
}
func (p *PragmaOverrotation) Hqslang() string                { return "PragmaOverrotation" }
func (p *PragmaOverrotation) IsParametrized() bool           { return false }
func (p *PragmaOverrotation) InvolvedQubits() InvolvedQubits { return QubitsOf(p.Qubits...) }
func (p *PragmaOverrotation) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *p
	c.Qubits = append([]int{}, p.Qubits...)

	return &c, nil
}
func (p *PragmaOverrotation) RemapQubits(mapping map[int]int) (Operation, error) {
	mapped, err := remapIndices(mapping, p.Qubits)
	if err != nil {
		return nil, err
	}

	c := *p
	c.Qubits = mapped

	return &c, nil
}

// PragmaBoostNoise scales all noise rates by a coefficient.
type PragmaBoostNoise struct {
	opBase
	NoiseCoefficient CalculatorFloat `json:"noise_coefficient" cbor:"noise_coefficient"`
}

func (p *PragmaBoostNoise) Tags() []string {
	return []string{tagOperation, tagPragma, "PragmaBoostNoise"}
}
func (p *PragmaBoostNoise) Hqslang() string                { return "PragmaBoostNoise" }
func (p *PragmaBoostNoise) IsParametrized() bool           { return anyParametrized(p.NoiseCoefficient) }
func (p *PragmaBoostNoise) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (p *PragmaBoostNoise) SubstituteParameters(values map[string]float64) (Operation, error) {
	coefficient, err := p.NoiseCoefficient.Substitute(values)
	if err != nil {
		return nil, err
	}

	c := *p
	c.NoiseCoefficient = coefficient

	return &c, nil
}
func (p *PragmaBoostNoise) RemapQubits(map[int]int) (Operation, error) {
	c := *p
	return &c, nil
}

// PragmaStopParallelBlock ends a block of operations executed in parallel on
// the listed qubits.
type PragmaStopParallelBlock struct {
	opBase
	Qubits        []int           `json:"qubits" cbor:"qubits"`
	ExecutionTime CalculatorFloat `json:"execution_time" cbor:"execution_time"`
}

func (p *PragmaStopParallelBlock) Tags() []string {
	return []string{tagOperation, tagPragma, tagPragmaControlBlock, "PragmaStopParallelBlock"}
}
func (p *PragmaStopParallelBlock) Hqslang() string                { return "PragmaStopParallelBlock" }
func (p *PragmaStopParallelBlock) IsParametrized() bool           { return anyParametrized(p.ExecutionTime) }
func (p *PragmaStopParallelBlock) InvolvedQubits() InvolvedQubits { return QubitsOf(p.Qubits...) }
func (p *PragmaStopParallelBlock) SubstituteParameters(values map[string]float64) (Operation, error) {
	executionTime, err := p.ExecutionTime.Substitute(values)
	if err != nil {
		return nil, err
	}

	c := *p
	c.Qubits = append([]int{}, p.Qubits...)
	c.ExecutionTime = executionTime

	return &c, nil
}
func (p *PragmaStopParallelBlock) RemapQubits(mapping map[int]int) (Operation, error) {
	mapped, err := remapIndices(mapping, p.Qubits)
	if err != nil {
		return nil, err
	}

	c := *p
	c.Qubits = mapped

	return &c, nil
}

// PragmaStartDecompositionBlock starts a block in which a compiler may
// reorder qubits according to the reordering dictionary.
type PragmaStartDecompositionBlock struct {
	opBase
	Qubits               []int       `json:"qubits" cbor:"qubits"`
	ReorderingDictionary map[int]int `json:"reordering_dictionary" cbor:"reordering_dictionary"`
}

func (p *PragmaStartDecompositionBlock) Tags() []string {
	return []string{tagOperation, tagPragma, tagPragmaControlBlock, "PragmaStartDecompositionBlock"}
}
func (p *PragmaStartDecompositionBlock) Hqslang() string                { return "PragmaStartDecompositionBlock" }
func (p *PragmaStartDecompositionBlock) IsParametrized() bool           { return false }
func (p *PragmaStartDecompositionBlock) InvolvedQubits() InvolvedQubits { return QubitsOf(p.Qubits...) }
func (p *PragmaStartDecompositionBlock) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *p
	c.Qubits = append([]int{}, p.Qubits...)
	c.ReorderingDictionary = copyIntMap(p.ReorderingDictionary)

	return &c, nil
}
func (p *PragmaStartDecompositionBlock) RemapQubits(mapping map[int]int) (Operation, error) {
	mapped, err := remapIndices(mapping, p.Qubits)
	if err != nil {
		return nil, err
	}

	reordering, err := remapQubitMap(mapping, p.ReorderingDictionary)
	if err != nil {
		return nil, err
	}

	c := *p
	c.Qubits = mapped
	c.ReorderingDictionary = reordering

	return &c, nil
}

// PragmaStopDecompositionBlock ends a decomposition block.
type PragmaStopDecompositionBlock struct {
	opBase
	Qubits []int `json:"qubits" cbor:"qubits"`
}

func (p *PragmaStopDecompositionBlock) Tags() []string {
	return []string{tagOperation, tagPragma, tagPragmaControlBlock, "PragmaStopDecompositionBlock"}
}
func (p *PragmaStopDecompositionBlock) Hqslang() string                { return "PragmaStopDecompositionBlock" }
func (p *PragmaStopDecompositionBlock) IsParametrized() bool           { return false }
func (p *PragmaStopDecompositionBlock) InvolvedQubits() InvolvedQubits { return QubitsOf(p.Qubits...) }
func (p *PragmaStopDecompositionBlock) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *p
	c.Qubits = append([]int{}, p.Qubits...)

	return &c, nil
}
func (p *PragmaStopDecompositionBlock) RemapQubits(mapping map[int]int) (Operation, error) {
	mapped, err := remapIndices(mapping, p.Qubits)
	if err != nil {
		return nil, err
	}

	c := *p
	c.Qubits = mapped

	return &c, nil
}

// PragmaGlobalPhase tracks a global phase picked up by the circuit.
type PragmaGlobalPhase struct {
	opBase
	Phase CalculatorFloat `json:"phase" cbor:"phase"`
}

func (p *PragmaGlobalPhase) Tags() []string {
	return []string{tagOperation, tagPragma, "PragmaGlobalPhase"}
}
func (p *PragmaGlobalPhase) Hqslang() string                { return "PragmaGlobalPhase" }
func (p *PragmaGlobalPhase) IsParametrized() bool           { return anyParametrized(p.Phase) }
func (p *PragmaGlobalPhase) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (p *PragmaGlobalPhase) SubstituteParameters(values map[string]float64) (Operation, error) {
	phase, err := p.Phase.Substitute(values)
	if err != nil {
		return nil, err
	}

	c := *p
	c.Phase = phase

	return &c, nil
}
func (p *PragmaGlobalPhase) RemapQubits(map[int]int) (Operation, error) {
	c := *p
	return &c, nil
}

// PragmaActiveReset resets one qubit to |0> without measuring it.
type PragmaActiveReset struct {
	opBase
	QubitIndex int `json:"qubit" cbor:"qubit"`
}

func (p *PragmaActiveReset) Tags() []string {
	return []string{tagOperation, tagPragma, "PragmaActiveReset"}
}
func (p *PragmaActiveReset) Hqslang() string                { return "PragmaActiveReset" }
func (p *PragmaActiveReset) IsParametrized() bool           { return false }
func (p *PragmaActiveReset) InvolvedQubits() InvolvedQubits { return QubitsOf(p.QubitIndex) }
func (p *PragmaActiveReset) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *p
	return &c, nil
}
func (p *PragmaActiveReset) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, p.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *p
	c.QubitIndex = q

	return &c, nil
}

// PragmaSleep idles the listed qubits for a fixed time.
type PragmaSleep struct {
	opBase
	Qubits    []int           `json:"qubits" cbor:"qubits"`
	SleepTime CalculatorFloat `json:"sleep_time" cbor:"sleep_time"`
}

func (p *PragmaSleep) Tags() []string {
	return []string{tagOperation, tagPragma, "PragmaSleep"}
}
func (p *PragmaSleep) Hqslang() string                { return "PragmaSleep" }
func (p *PragmaSleep) IsParametrized() bool           { return anyParametrized(p.SleepTime) }
func (p *PragmaSleep) InvolvedQubits() InvolvedQubits { return QubitsOf(p.Qubits...) }
func (p *PragmaSleep) SubstituteParameters(values map[string]float64) (Operation, error) {
	sleepTime, err := p.SleepTime.Substitute(values)
	if err != nil {
		return nil, err
	}

	c := *p
	c.Qubits = append([]int{}, p.Qubits...)
	c.SleepTime = sleepTime

	return &c, nil
}
func (p *PragmaSleep) RemapQubits(mapping map[int]int) (Operation, error) {
	mapped, err := remapIndices(mapping, p.Qubits)
	if err != nil {
		return nil, err
	}

	c := *p
	c.Qubits = mapped

	return &c, nil
}

// PragmaAnnotatedOp attaches a free-form annotation to another operation.
type PragmaAnnotatedOp struct {
	opBase
	Op         Operation
	Annotation string
}

func (p *PragmaAnnotatedOp) Tags() []string {
	return []string{tagOperation, tagPragma, "PragmaAnnotatedOp"}
}
func (p *PragmaAnnotatedOp) Hqslang() string                { return "PragmaAnnotatedOp" }
func (p *PragmaAnnotatedOp) MinSupportedVersion() string    { return "1.1.0" }
func (p *PragmaAnnotatedOp) IsParametrized() bool           { return p.Op.IsParametrized() }
func (p *PragmaAnnotatedOp) InvolvedQubits() InvolvedQubits { return p.Op.InvolvedQubits() }
func (p *PragmaAnnotatedOp) SubstituteParameters(values map[string]float64) (Operation, error) {
	inner, err := p.Op.SubstituteParameters(values)
	if err != nil {
		return nil, err
	}

	return &PragmaAnnotatedOp{Op: inner, Annotation: p.Annotation}, nil
}
func (p *PragmaAnnotatedOp) RemapQubits(mapping map[int]int) (Operation, error) {
	inner, err := p.Op.RemapQubits(mapping)
	if err != nil {
		return nil, err
	}

	return &PragmaAnnotatedOp{Op: inner, Annotation: p.Annotation}, nil
}

type annotatedOpWire struct {
	Operation json.RawMessage `json:"operation"`
	Annotation string         `json:"annotation"`
}

func (p *PragmaAnnotatedOp) MarshalJSON() ([]byte, error) {
	inner, err := marshalOperationJSON(p.Op)
	if err != nil {
		return nil, err
	}

	return json.Marshal(annotatedOpWire{Operation: inner, Annotation: p.Annotation})
}

func (p *PragmaAnnotatedOp) UnmarshalJSON(data []byte) error {
	var wire annotatedOpWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return &SerializationError{Format: "json", Reason: err.Error()}
	}

	inner, err := unmarshalOperationJSON(wire.Operation)
	if err != nil {
		return err
	}

	p.Op = inner
	p.Annotation = wire.Annotation

	return nil
}

type annotatedOpWireCBOR struct {
	Operation  cbor.RawMessage `cbor:"operation"`
	Annotation string          `cbor:"annotation"`
}

func (p *PragmaAnnotatedOp) MarshalCBOR() ([]byte, error) {
	inner, err := marshalOperationCBOR(p.Op)
	if err != nil {
		return nil, err
	}

	return cbor.Marshal(annotatedOpWireCBOR{Operation: inner, Annotation: p.Annotation})
}

func (p *PragmaAnnotatedOp) UnmarshalCBOR(data []byte) error {
	var wire annotatedOpWireCBOR
	if err := cbor.Unmarshal(data, &wire); err != nil {
		return &SerializationError{Format: "bincode", Reason: err.Error()}
	}

	inner, err := unmarshalOperationCBOR(wire.Operation)
	if err != nil {
		return err
	}

	p.Op = inner
	p.Annotation = wire.Annotation

	return nil
}

// PragmaChangeDevice wraps a device-specific change instruction in its
// serialized form so it can travel through a generic circuit.
type PragmaChangeDevice struct {
	opBase
	WrappedHqslang   string   `json:"wrapped_hqslang" cbor:"wrapped_hqslang"`
	WrappedTags      []string `json:"wrapped_tags" cbor:"wrapped_tags"`
	WrappedOperation []byte   `json:"wrapped_operation" cbor:"wrapped_operation"`
}

func (p *PragmaChangeDevice) Tags() []string {
	return []string{tagOperation, tagPragma, "PragmaChangeDevice"}
}
func (p *PragmaChangeDevice) Hqslang() string                { return "PragmaChangeDevice" }
func (p *PragmaChangeDevice) IsParametrized() bool           { return false }
func (p *PragmaChangeDevice) InvolvedQubits() InvolvedQubits { return AllQubits() }
func (p *PragmaChangeDevice) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *p
	c.WrappedTags = append([]string{}, p.WrappedTags...)
	c.WrappedOperation = append([]byte{}, p.WrappedOperation...)

	return &c, nil
}
func (p *PragmaChangeDevice) RemapQubits(map[int]int) (Operation, error) {
	c := *p
	c.WrappedTags = append([]string{}, p.WrappedTags...)
	c.WrappedOperation = append([]byte{}, p.WrappedOperation...)

	return &c, nil
}

func copyIntMap(in map[int]int) map[int]int {
	if in == nil {
		return nil
	}

	out := make(map[int]int, len(in))
	for k, v := range in {
		out[k] = v
	}

	return out
}

func init() {
	registerOperation("PragmaSetNumberOfMeasurements", func() Operation { return &PragmaSetNumberOfMeasurements{} })
	registerOperation("PragmaRepeatedMeasurement", func() Operation { return &PragmaRepeatedMeasurement{} })
	registerOperation("PragmaSetStateVector", func() Operation { return &PragmaSetStateVector{} })
	registerOperation("PragmaSetDensityMatrix", func() Operation { return &PragmaSetDensityMatrix{} })
	registerOperation("PragmaGetStateVector", func() Operation { return &PragmaGetStateVector{} })
	registerOperation("PragmaGetDensityMatrix", func() Operation { return &PragmaGetDensityMatrix{} })
	registerOperation("PragmaGetOccupationProbability", func() Operation { return &PragmaGetOccupationProbability{} })
	registerOperation("PragmaGetPauliProduct", func() Operation { return &PragmaGetPauliProduct{} })
	registerOperation("PragmaDamping", func() Operation { return &PragmaDamping{} })
	registerOperation("PragmaDepolarising", func() Operation { return &PragmaDepolarising{} })
	registerOperation("PragmaDephasing", func() Operation { return &PragmaDephasing{} })
	registerOperation("PragmaRandomNoise", func() Operation { return &PragmaRandomNoise{} })
	registerOperation("PragmaGeneralNoise", func() Operation { return &PragmaGeneralNoise{} })
	registerOperation("PragmaConditional", func() Operation { return &PragmaConditional{} })
	registerOperation("PragmaLoop", func() Operation { return &PragmaLoop{} })
	registerOperation("PragmaControlledCircuit", func() Operation { return &PragmaControlledCircuit{} })
	registerOperation("PragmaOverrotation", func() Operation { return &PragmaOverrotation{} })
	registerOperation("PragmaBoostNoise", func() Operation { return &PragmaBoostNoise{} })
	registerOperation("PragmaStopParallelBlock", func() Operation { return &PragmaStopParallelBlock{} })
	registerOperation("PragmaStartDecompositionBlock", func() Operation { return &PragmaStartDecompositionBlock{} })
	registerOperation("PragmaStopDecompositionBlock", func() Operation { return &PragmaStopDecompositionBlock{} })
	registerOperation("PragmaGlobalPhase", func() Operation { return &PragmaGlobalPhase{} })
	registerOperation("PragmaActiveReset", func() Operation { return &PragmaActiveReset{} })
	registerOperation("PragmaSleep", func() Operation { return &PragmaSleep{} })
	registerOperation("PragmaAnnotatedOp", func() Operation { return &PragmaAnnotatedOp{} })
	registerOperation("PragmaChangeDevice", func() Operation { return &PragmaChangeDevice{} })
}
