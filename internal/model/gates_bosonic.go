package model

// Bosonic operations act on continuous-variable modes instead of qubits. They
// involve no qubit and report their modes through InvolvedModes.

// ModeOperation is implemented by every bosonic variant.
type ModeOperation interface {
	Operation
	InvolvedModes() []int
}

// Squeezing applies a squeezing operator with magnitude and phase to one mode.
type Squeezing struct {
	opBase
	Mode      int             `json:"mode" cbor:"mode"`
	Magnitude CalculatorFloat `json:"squeezing" cbor:"squeezing"`
	Phase     CalculatorFloat `json:"phase" cbor:"phase"`
}

func (g *Squeezing) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagModeGate, "Squeezing"}
}
func (g *Squeezing) Hqslang() string                { return "Squeezing" }
func (g *Squeezing) MinSupportedVersion() string    { return "1.1.0" }
func (g *Squeezing) IsParametrized() bool           { return anyParametrized(g.Magnitude, g.Phase) }
func (g *Squeezing) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (g *Squeezing) InvolvedModes() []int           { return []int{g.Mode} }
func (g *Squeezing) SubstituteParameters(values map[string]float64) (Operation, error) {
	resolved, err := substituteAll(values, g.Magnitude, g.Phase)
	if err != nil {
		return nil, err
	}

	c := *g
	c.Magnitude, c.Phase = resolved[0], resolved[1]

	return &c, nil
}
func (g *Squeezing) RemapQubits(map[int]int) (Operation, error) {
	c := *g
	return &c, nil
}

// PhaseShiftMode rotates one mode in phase space.
type PhaseShiftMode struct {
	opBase
	Mode  int             `json:"mode" cbor:"mode"`
	Phase CalculatorFloat `json:"phase" cbor:"phase"`
}

func (g *PhaseShiftMode) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagModeGate, "PhaseShiftMode"}
}
func (g *PhaseShiftMode) Hqslang() string                { return "PhaseShiftMode" }
func (g *PhaseShiftMode) MinSupportedVersion() string    { return "1.1.0" }
func (g *PhaseShiftMode) IsParametrized() bool           { return anyParametrized(g.Phase) }
func (g *PhaseShiftMode) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (g *PhaseShiftMode) InvolvedModes() []int           { return []int{g.Mode} }
func (g *PhaseShiftMode) SubstituteParameters(values map[string]float64) (Operation, error) {
	phase, err := g.Phase.Substitute(values)
	if err != nil {
		return nil, err
	}

	c := *g
	c.Phase = phase

	return &c, nil
}
func (g *PhaseShiftMode) RemapQubits(map[int]int) (Operation, error) {
	c := *g
	return &c, nil
}

// BeamSplitter mixes two modes with mixing angle theta and phase phi.
type BeamSplitter struct {
	opBase
	Mode0 int             `json:"mode_0" cbor:"mode_0"`
	Mode1 int             `json:"mode_1" cbor:"mode_1"`
	Angle CalculatorFloat `json:"theta" cbor:"theta"`
	Phi   CalculatorFloat `json:"phi" cbor:"phi"`
}

func (g *BeamSplitter) Tags() []string {
	return []string{tagOperation, tagGateOperation, tagModeGate, "BeamSplitter"}
}
func (g *BeamSplitter) Hqslang() string                { return "BeamSplitter" }
func (g *BeamSplitter) MinSupportedVersion() string    { return "1.1.0" }
func (g *BeamSplitter) IsParametrized() bool           { return anyParametrized(g.Angle, g.Phi) }
func (g *BeamSplitter) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (g *BeamSplitter) InvolvedModes() []int           { return []int{g.Mode0, g.Mode1} }
func (g *BeamSplitter) SubstituteParameters(values map[string]float64) (Operation, error) {
	resolved, err := substituteAll(values, g.Angle, g.Phi)
	if err != nil {
		return nil, err
	}

	c := *g
	c.Angle, c.Phi = resolved[0], resolved[1]

	return &c, nil
}
func (g *BeamSplitter) RemapQubits(map[int]int) (Operation, error) {
	c := *g
	return &c, nil
}

// PhotonDetection measures the photon number of one mode into a classical
// register entry.
type PhotonDetection struct {
	opBase
	Mode         int    `json:"mode" cbor:"mode"`
	Readout      string `json:"readout" cbor:"readout"`
	ReadoutIndex int    `json:"readout_index" cbor:"readout_index"`
}

func (g *PhotonDetection) Tags() []string {
	return []string{tagOperation, tagMeasurement, tagModeGate, "PhotonDetection"}
}
func (g *PhotonDetection) Hqslang() string                { return "PhotonDetection" }
func (g *PhotonDetection) MinSupportedVersion() string    { return "1.1.0" }
func (g *PhotonDetection) IsParametrized() bool           { return false }
func (g *PhotonDetection) InvolvedQubits() InvolvedQubits { return NoQubits() }
func (g *PhotonDetection) InvolvedModes() []int           { return []int{g.Mode} }
func (g *PhotonDetection) SubstituteParameters(map[string]float64) (Operation, error) {
	c := *g
	return &c, nil
}
func (g *PhotonDetection) RemapQubits(map[int]int) (Operation, error) {
	c := *g
	return &c, nil
}

func init() {
	registerOperation("Squeezing", func() Operation { return &Squeezing{} })
	registerOperation("PhaseShiftMode", func() Operation { return &PhaseShiftMode{} })
	registerOperation("BeamSplitter", func() Operation { return &BeamSplitter{} })
	registerOperation("PhotonDetection", func() Operation { return &PhotonDetection{} })
}
