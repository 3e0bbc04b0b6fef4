package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qirk.dev/pkg/qirk/internal/adapter"
)

const flipProgram = `
name: flip
circuit:
  - op: DefinitionBit
    name: ro
    length: 1
    is_output: true
  - op: PauliX
    qubit: 0
  - op: MeasureQubit
    qubit: 0
    readout: ro
    readout_index: 0
`

const expectationProgram = `
name: flip-z
circuit:
  - op: DefinitionBit
    name: ro
    length: 1
    is_output: true
  - op: PauliX
    qubit: 0
  - op: PragmaRepeatedMeasurement
    readout: ro
    number_measurements: 50
measurement:
  readout: ro
  number_qubits: 1
  pauli_products:
    - [0]
  expectation_values:
    z0:
      linear:
        0: 1.0
`

func writeProgramFile(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "program.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// executeRoot runs the package root command with the given args and returns
// its combined output.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func TestRunCmd_Registers(t *testing.T) {
	dir := t.TempDir()
	program := writeProgramFile(t, dir, flipProgram)
	results := filepath.Join(dir, "results.json")
	logFile := filepath.Join(dir, "run.log")

	output, err := executeRoot(t, "run", program, "-o", results, "--log-file", logFile)
	require.NoError(t, err)

	assert.Contains(t, output, "Running 1 parameter set(s)")
	assert.Contains(t, output, "ro (1 shots)")
	assert.Contains(t, output, "1: 1")
	assert.Contains(t, output, "Results written to")

	stored, err := adapter.NewJSONResultStore().LoadResults(results)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, [][]bool{{true}}, stored[0].BitRegisters["ro"])
}

func TestRunCmd_ExpectationValues(t *testing.T) {
	dir := t.TempDir()
	program := writeProgramFile(t, dir, expectationProgram)
	results := filepath.Join(dir, "results.json")
	logFile := filepath.Join(dir, "run.log")

	output, err := executeRoot(t, "run", program, "-o", results, "--log-file", logFile, "--seed", "7")
	require.NoError(t, err)

	assert.Contains(t, output, "Observable")
	assert.Contains(t, output, "z0")

	stored, err := adapter.NewJSONResultStore().LoadResults(results)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	// PauliX flips qubit 0, so <Z_0> measured in ro is exactly -1.
	assert.InDelta(t, -1.0, stored[0].ExpectationValues["z0"], 1e-12)
}

func TestRunCmd_MissingFile(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "run.log")

	_, err := executeRoot(t, "run", filepath.Join(dir, "nope.yaml"), "--log-file", logFile)
	require.Error(t, err)
}

func TestCollectParameterSets(t *testing.T) {
	tests := []struct {
		name    string
		file    adapter.ProgramFile
		extra   []string
		want    [][]float64
		wantErr bool
	}{
		{
			name: "file sets only",
			file: adapter.ProgramFile{Parameters: []string{"theta"}, ParameterSets: [][]float64{{0.5}}},
			want: [][]float64{{0.5}},
		},
		{
			name:  "extra sets appended",
			file:  adapter.ProgramFile{Parameters: []string{"theta"}, ParameterSets: [][]float64{{0.5}}},
			extra: []string{"1.0", "1.5"},
			want:  [][]float64{{0.5}, {1.0}, {1.5}},
		},
		{
			name: "parameter-free program runs once",
			file: adapter.ProgramFile{},
			want: [][]float64{{}},
		},
		{
			name:    "parameters without sets",
			file:    adapter.ProgramFile{Parameters: []string{"theta"}},
			wantErr: true,
		},
		{
			name:    "malformed extra set",
			file:    adapter.ProgramFile{},
			extra:   []string{"1.0,bad"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := collectParameterSets(tt.file, tt.extra)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
