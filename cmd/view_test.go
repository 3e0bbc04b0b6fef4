package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewCmd_SmallCircuitPrintsDirectly(t *testing.T) {
	dir := t.TempDir()
	program := writeProgramFile(t, dir, bellProgram)
	logFile := filepath.Join(dir, "view.log")

	output, err := executeRoot(t, "view", program, "--log-file", logFile)
	require.NoError(t, err)

	assert.Contains(t, output, "Qirk - Quantum Circuit Toolkit")
	assert.Contains(t, output, "Program: bell")
	assert.Contains(t, output, "Total: 5 operation(s), 3 gate(s)")
}

func TestViewCmd_OperationCounts(t *testing.T) {
	dir := t.TempDir()
	program := writeProgramFile(t, dir, bellProgram)
	logFile := filepath.Join(dir, "view.log")

	output, err := executeRoot(t, "view", program, "--counts", "--log-file", logFile)
	require.NoError(t, err)

	assert.Contains(t, output, "Operation counts:")
	assert.Contains(t, output, "Hadamard: 1")
	assert.Contains(t, output, "Total: 5 operation(s)")
}

func TestViewCmd_MissingFile(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "view.log")

	_, err := executeRoot(t, "view", filepath.Join(dir, "nope.yaml"), "--log-file", logFile)
	require.Error(t, err)
}
