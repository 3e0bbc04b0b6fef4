package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bellProgram = `
name: bell
parameters: [theta]
parameter_sets:
  - [1.57]
circuit:
  - op: DefinitionBit
    name: ro
    length: 2
    is_output: true
  - op: Hadamard
    qubit: 0
  - op: CNOT
    control: 0
    target: 1
  - op: RotateX
    qubit: 0
    theta: theta
  - op: PragmaRepeatedMeasurement
    readout: ro
    number_measurements: 100
`

func TestShowCmd_PrintsCircuitTable(t *testing.T) {
	dir := t.TempDir()
	program := writeProgramFile(t, dir, bellProgram)
	logFile := filepath.Join(dir, "show.log")

	output, err := executeRoot(t, "show", program, "--log-file", logFile)
	require.NoError(t, err)

	assert.Contains(t, output, "Program: bell")
	assert.Contains(t, output, "Hadamard")
	assert.Contains(t, output, "CNOT")
	assert.Contains(t, output, "Total Ops 5")
	assert.Contains(t, output, "Gates 3")
}

func TestShowCmd_Counts(t *testing.T) {
	dir := t.TempDir()
	program := writeProgramFile(t, dir, bellProgram)
	logFile := filepath.Join(dir, "show.log")

	output, err := executeRoot(t, "show", program, "--counts", "--log-file", logFile)
	require.NoError(t, err)

	assert.Contains(t, output, "Hadamard: 1")
	assert.Contains(t, output, "PragmaRepeatedMeasurement: 1")
}

func TestShowCmd_MissingFile(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "show.log")

	output, err := executeRoot(t, "show", filepath.Join(dir, "nope.yaml"), "--log-file", logFile)
	require.Error(t, err)
	assert.Contains(t, output, "circuit error")
}
