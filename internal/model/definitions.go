package model

// Classical register definitions and measurement instructions. Register names
// are caller-chosen; nothing here rejects duplicates, that is left to the
// consumer of the circuit.

// DefinitionBit declares a classical bit register.
type DefinitionBit struct {
	opBase
	Name     string `json:"name" cbor:"name"`
	Length   int    `json:"length" cbor:"length"`
	IsOutput bool   `json:"is_output" cbor:"is_output"`
}

func (d *DefinitionBit) Tags() []string {
	return []string{tagOperation, tagDefinition, "DefinitionBit"}
}
func (d *DefinitionBit) Hqslang() string                { return "DefinitionBit" }
func (d *DefinitionBit) IsParametrized() bool           { return false }
func (d *DefinitionBit) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (d *DefinitionBit) RegisterName() string           { return d.Name }
func (d *DefinitionBit) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *d
	return &c, nil
}
func (d *DefinitionBit) RemapQubits(map[int]int) (Operation, error) {
	c := *d
	return &c, nil
}

// DefinitionFloat declares a classical float register.
type DefinitionFloat struct {
	opBase
	Name     string `json:"name" cbor:"name"`
	Length   int    `json:"length" cbor:"length"`
	IsOutput bool   `json:"is_output" cbor:"is_output"`
}

func (d *DefinitionFloat) Tags() []string {
	return []string{tagOperation, tagDefinition, "DefinitionFloat"}
}
func (d *DefinitionFloat) Hqslang() string                { return "DefinitionFloat" }
func (d *DefinitionFloat) IsParametrized() bool           { return false }
func (d *DefinitionFloat) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (d *DefinitionFloat) RegisterName() string           { return d.Name }
func (d *DefinitionFloat) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *d
	return &c, nil
}
func (d *DefinitionFloat) RemapQubits(map[int]int) (Operation, error) {
	c := *d
	return &c, nil
}

// DefinitionComplex declares a classical complex register.
type DefinitionComplex struct {
	opBase
	Name     string `json:"name" cbor:"name"`
	Length   int    `json:"length" cbor:"length"`
	IsOutput bool   `json:"is_output" cbor:"is_output"`
}

func (d *DefinitionComplex) Tags() []string {
	return []string{tagOperation, tagDefinition, "DefinitionComplex"}
}
func (d *DefinitionComplex) Hqslang() string                { return "DefinitionComplex" }
func (d *DefinitionComplex) IsParametrized() bool           { return false }
func (d *DefinitionComplex) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (d *DefinitionComplex) RegisterName() string           { return d.Name }
func (d *DefinitionComplex) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *d
	return &c, nil
}
func (d *DefinitionComplex) RemapQubits(map[int]int) (Operation, error) {
	c := *d
	return &c, nil
}

// DefinitionUsize declares a classical unsigned-integer register.
type DefinitionUsize struct {
	opBase
	Name     string `json:"name" cbor:"name"`
	Length   int    `json:"length" cbor:"length"`
	IsOutput bool   `json:"is_output" cbor:"is_output"`
}

func (d *DefinitionUsize) Tags() []string {
	return []string{tagOperation, tagDefinition, "DefinitionUsize"}
}
func (d *DefinitionUsize) Hqslang() string                { return "DefinitionUsize" }
func (d *DefinitionUsize) IsParametrized() bool           { return false }
func (d *DefinitionUsize) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (d *DefinitionUsize) RegisterName() string           { return d.Name }
func (d *DefinitionUsize) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *d
	return &c, nil
}
func (d *DefinitionUsize) RemapQubits(map[int]int) (Operation, error) {
	c := *d
	return &c, nil
}

// InputSymbolic binds a float input to a symbol name at execution time.
type InputSymbolic struct {
	opBase
	Name  string  `json:"name" cbor:"name"`
	Input float64 `json:"input" cbor:"input"`
}

func (d *InputSymbolic) Tags() []string {
	return []string{tagOperation, tagDefinition, tagGateDefinitionInput, "InputSymbolic"}
}
func (d *InputSymbolic) Hqslang() string                { return "InputSymbolic" }
func (d *InputSymbolic) IsParametrized() bool           { return false }
func (d *InputSymbolic) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (d *InputSymbolic) RegisterName() string           { return d.Name }
func (d *InputSymbolic) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *d
	return &c, nil
}
func (d *InputSymbolic) RemapQubits(map[int]int) (Operation, error) {
	c := *d
	return &c, nil
}

// InputBit writes a constant bit into a declared bit register entry.
type InputBit struct {
	opBase
	Name  string `json:"name" cbor:"name"`
	Index int    `json:"index" cbor:"index"`
	Value bool   `json:"value" cbor:"value"`
}

func (d *InputBit) Tags() []string {
	return []string{tagOperation, tagDefinition, tagGateDefinitionInput, "InputBit"}
}
func (d *InputBit) Hqslang() string                { return "InputBit" }
func (d *InputBit) MinSupportedVersion() string    { return "1.1.0" }
func (d *InputBit) IsParametrized() bool           { return false }
func (d *InputBit) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (d *InputBit) RegisterName() string           { return d.Name }
func (d *InputBit) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *d
	return &c, nil
}
func (d *InputBit) RemapQubits(map[int]int) (Operation, error) {
	c := *d
	return &c, nil
}

// MeasureQubit measures one qubit into an entry of a bit register.
type MeasureQubit struct {
	opBase
	QubitIndex   int    `json:"qubit" cbor:"qubit"`
	Readout      string `json:"readout" cbor:"readout"`
	ReadoutIndex int    `json:"readout_index" cbor:"readout_index"`
}

func (m *MeasureQubit) Tags() []string {
	return []string{tagOperation, tagMeasurement, "MeasureQubit"}
}
func (m *MeasureQubit) Hqslang() string                { return "MeasureQubit" }
func (m *MeasureQubit) IsParametrized() bool           { return false }
func (m *MeasureQubit) InvolvedQubits() InvolvedQubits { return QubitsOf(m.QubitIndex) }
func (m *MeasureQubit) Qubit() int                     { return m.QubitIndex }
func (m *MeasureQubit) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *m
	return &c, nil
}
func (m *MeasureQubit) RemapQubits(mapping map[int]int) (Operation, error) {
	q, err := remapIndex(mapping, m.QubitIndex)
	if err != nil {
		return nil, err
	}

	c := *m
	c.QubitIndex = q

	return &c, nil
}

func init() {
	registerOperation("DefinitionBit", func() Operation { return &DefinitionBit{} })
	registerOperation("DefinitionFloat", func() Operation { return &DefinitionFloat{} })
	registerOperation("DefinitionComplex", func() Operation { return &DefinitionComplex{} })
	registerOperation("DefinitionUsize", func() Operation { return &DefinitionUsize{} })
	registerOperation("InputSymbolic", func() Operation { return &InputSymbolic{} })
	registerOperation("InputBit", func() Operation { return &InputBit{} })
	registerOperation("MeasureQubit", func() Operation { return &MeasureQubit{} })
}
