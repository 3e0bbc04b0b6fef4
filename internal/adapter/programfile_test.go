package adapter

import (
	"testing"

	"github.com/stretchr/testify/require"

	m "qirk.dev/pkg/qirk/internal/model"
)

const bellYAML = `
name: bell
parameters: [theta]
parameter_sets:
  - [0.5]
  - [1.0]
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

func TestProgramFileParse(t *testing.T) {
	t.Run("parses a full program description", func(t *testing.T) {
		adapter := NewLocalProgramFileAdapter()

		file, err := adapter.Parse([]byte(bellYAML))
		require.NoError(t, err)
		require.Equal(t, "bell", file.Name)
		require.Equal(t, []string{"theta"}, file.Parameters)
		require.Len(t, file.ParameterSets, 2)
		require.Equal(t, 5, file.Circuit.Len())

		op, err := file.Circuit.Get(2)
		require.NoError(t, err)
		require.Equal(t, "CNOT", op.Hqslang())

		rotate, err := file.Circuit.Get(3)
		require.NoError(t, err)
		require.True(t, rotate.IsParametrized(), "theta must stay symbolic")
	})

	t.Run("symbolic and numeric angles both parse", func(t *testing.T) {
		adapter := NewLocalProgramFileAdapter()

		file, err := adapter.Parse([]byte(`
circuit:
  - op: RotateZ
    qubit: 0
    theta: 1.5
`))
		require.NoError(t, err)

		op, err := file.Circuit.Get(0)
		require.NoError(t, err)
		require.False(t, op.IsParametrized())

		theta, err := op.(m.Rotation).Theta().Float()
		require.NoError(t, err)
		require.InDelta(t, 1.5, theta, 1e-12)
	})

	t.Run("unknown operation names fail", func(t *testing.T) {
		adapter := NewLocalProgramFileAdapter()

		_, err := adapter.Parse([]byte(`
circuit:
  - op: NotAGate
    qubit: 0
`))
		require.Error(t, err)
	})

	t.Run("missing op key fails", func(t *testing.T) {
		adapter := NewLocalProgramFileAdapter()

		_, err := adapter.Parse([]byte(`
circuit:
  - qubit: 0
`))
		require.Error(t, err)
	})

	t.Run("build program carries the parameter names", func(t *testing.T) {
		adapter := NewLocalProgramFileAdapter()

		file, err := adapter.Parse([]byte(bellYAML))
		require.NoError(t, err)

		program := file.BuildProgram()
		require.Equal(t, []string{"theta"}, program.InputParameterNames())
		require.Len(t, program.Measurement().Circuits(), 1)
	})
}

func TestResultStoreRoundTrip(t *testing.T) {
	store := NewJSONResultStore()
	path := t.TempDir() + "/results.json"

	results := []RunResult{
		{
			Parameters:        []float64{0.5},
			ExpectationValues: map[string]float64{"z0": -0.25},
		},
		{
			Parameters:   []float64{1.0},
			BitRegisters: m.BitRegisters{"ro": {{true, false}}},
		},
	}

	require.NoError(t, store.SaveResults(path, results))

	back, err := store.LoadResults(path)
	require.NoError(t, err)
	require.Equal(t, results, back)

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := store.LoadResults(path + ".missing")
		require.Error(t, err)
	})
}
