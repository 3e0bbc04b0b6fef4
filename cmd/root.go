// Package cmd provides the root command and CLI setup for qirk.
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"qirk.dev/pkg/qirk/internal/adapter"
	"qirk.dev/pkg/qirk/internal/controller"
)

var programAdapter adapter.ProgramFileAdapter
var resultStore adapter.ResultStore
var ui controller.UI

// resultsOutputFlag is a root-level flag shared by commands that read/write
// run results.
var resultsOutputFlag string

// verboseFlag switches the file logger to debug level.
var verboseFlag bool

// logFileFlag overrides the log file path.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd)
	programAdapter = adapter.NewLocalProgramFileAdapter()
	resultStore = adapter.NewJSONResultStore()
}

const programFileHelp = `Program files are yaml documents:
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
    - op: PragmaRepeatedMeasurement
      readout: ro
      number_measurements: 100`

const rootLongDescription = `Qirk builds, inspects and simulates symbolic quantum circuits. Circuits
carry symbolic parameters that are substituted at run time, so one program
description drives whole parameter sweeps.

` + programFileHelp

const runLongDescription = `Simulate the program on the statevector backend, once per parameter set.

` + programFileHelp

const showLongDescription = `Parse a program file and print its circuit as a table.

` + programFileHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qirk",
		Short: "Symbolic quantum circuit toolkit",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&resultsOutputFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output file for run results",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// parseParameterSet parses a comma-separated list of floats, e.g. "0.5,1.57".
func parseParameterSet(arg string) ([]float64, error) {
	if strings.TrimSpace(arg) == "" {
		return nil, fmt.Errorf("empty parameter set")
	}

	parts := strings.Split(arg, ",")

	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid parameter %q: %w", part, err)
		}

		values = append(values, value)
	}

	return values, nil
}
