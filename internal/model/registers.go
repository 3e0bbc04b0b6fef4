package model

// Classical registers filled while running a circuit. Bit and float registers
// hold one row per shot; complex registers hold whole vectors, one row per
// readout request.

type BitRegisters map[string][][]bool

type FloatRegisters map[string][][]float64

type ComplexRegisters map[string][][]Complex

// RegisterOutput bundles every register produced by one run.
type RegisterOutput struct {
	Bits      BitRegisters
	Floats    FloatRegisters
	Complexes ComplexRegisters
}

// NewRegisterOutput returns an output with all three maps allocated.
func NewRegisterOutput() RegisterOutput {
	return RegisterOutput{
		Bits:      make(BitRegisters),
		Floats:    make(FloatRegisters),
		Complexes: make(ComplexRegisters),
	}
}
