package model

// Constructors for the gate variants whose qubit layout lives in shared
// embedded structs. Single-qubit and multi-qubit gates with plain exported
// fields are built directly.

func NewCNOT(control, target int) *CNOT {
	return &CNOT{qubitPair: qubitPair{Ctrl: control, Tgt: target}}
}

func NewControlledPauliY(control, target int) *ControlledPauliY {
	return &ControlledPauliY{qubitPair: qubitPair{Ctrl: control, Tgt: target}}
}

func NewControlledPauliZ(control, target int) *ControlledPauliZ {
	return &ControlledPauliZ{qubitPair: qubitPair{Ctrl: control, Tgt: target}}
}

func NewControlledPhaseShift(control, target int, theta CalculatorFloat) *ControlledPhaseShift {
	return &ControlledPhaseShift{qubitPair: qubitPair{Ctrl: control, Tgt: target}, Angle: theta}
}

func NewControlledRotateX(control, target int, theta CalculatorFloat) *ControlledRotateX {
	return &ControlledRotateX{qubitPair: qubitPair{Ctrl: control, Tgt: target}, Angle: theta}
}

func NewControlledRotateXY(control, target int, theta, phi CalculatorFloat) *ControlledRotateXY {
	return &ControlledRotateXY{qubitPair: qubitPair{Ctrl: control, Tgt: target}, Angle: theta, Phi: phi}
}

func NewSWAP(control, target int) *SWAP {
	return &SWAP{qubitPair: qubitPair{Ctrl: control, Tgt: target}}
}

func NewISwap(control, target int) *ISwap {
	return &ISwap{qubitPair: qubitPair{Ctrl: control, Tgt: target}}
}

func NewSqrtISwap(control, target int) *SqrtISwap {
	return &SqrtISwap{qubitPair: qubitPair{Ctrl: control, Tgt: target}}
}

func NewInvSqrtISwap(control, target int) *InvSqrtISwap {
	return &InvSqrtISwap{qubitPair: qubitPair{Ctrl: control, Tgt: target}}
}

func NewFSwap(control, target int) *FSwap {
	return &FSwap{qubitPair: qubitPair{Ctrl: control, Tgt: target}}
}

func NewMolmerSorensenXX(control, target int) *MolmerSorensenXX {
	return &MolmerSorensenXX{qubitPair: qubitPair{Ctrl: control, Tgt: target}}
}

func NewVariableMSXX(control, target int, theta CalculatorFloat) *VariableMSXX {
	return &VariableMSXX{qubitPair: qubitPair{Ctrl: control, Tgt: target}, Angle: theta}
}

func NewXY(control, target int, theta CalculatorFloat) *XY {
	return &XY{qubitPair: qubitPair{Ctrl: control, Tgt: target}, Angle: theta}
}

func NewGivensRotation(control, target int, theta, phi CalculatorFloat) *GivensRotation {
	return &GivensRotation{qubitPair: qubitPair{Ctrl: control, Tgt: target}, Angle: theta, Phi: phi}
}

func NewPMInteraction(control, target int, t CalculatorFloat) *PMInteraction {
	return &PMInteraction{qubitPair: qubitPair{Ctrl: control, Tgt: target}, T: t}
}

func NewToffoli(control0, control1, target int) *Toffoli {
	return &Toffoli{qubitTriple: qubitTriple{Ctrl0: control0, Ctrl1: control1, Tgt: target}}
}

func NewControlledControlledPauliZ(control0, control1, target int) *ControlledControlledPauliZ {
	return &ControlledControlledPauliZ{qubitTriple: qubitTriple{Ctrl0: control0, Ctrl1: control1, Tgt: target}}
}

func NewControlledControlledPhaseShift(control0, control1, target int, theta CalculatorFloat) *ControlledControlledPhaseShift {
	return &ControlledControlledPhaseShift{qubitTriple: qubitTriple{Ctrl0: control0, Ctrl1: control1, Tgt: target}, Angle: theta}
}
