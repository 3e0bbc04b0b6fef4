package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"qirk.dev/pkg/qirk/internal/adapter"
	"qirk.dev/pkg/qirk/internal/controller"
	"qirk.dev/pkg/qirk/internal/domain"
)

var runParallelFlag int
var runSeedFlag uint64
var runParamsFlag []string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Simulate a program on the statevector backend",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if err := ui.Start(ctx, controller.WithRunMode()); err != nil {
				return err
			}
			defer ui.Close(ctx)

			file, err := programAdapter.Load(args[0])
			if err != nil {
				return err
			}

			sets, err := collectParameterSets(file, runParamsFlag)
			if err != nil {
				return err
			}

			program := file.BuildProgram()
			backend := adapter.NewStateVectorBackend(viper.GetUint64(runSeedConfigKey))
			threads := viper.GetInt(runParallelConfigKey)

			ui.DisplaySweepInfo(ctx, threads, len(sets))

			var results []adapter.RunResult

			if file.Input != nil {
				results, err = runExpectationSweep(ctx, program, backend, threads, sets)
			} else {
				results, err = runRegisterSweep(ctx, program, backend, sets)
			}

			if err != nil {
				return err
			}

			outputPath := viper.GetString(outputFlagName)
			if err := resultStore.SaveResults(outputPath, results); err != nil {
				return err
			}

			cmd.Printf("\nResults written to %s\n", outputPath)
			ui.Wait(ctx)

			return nil
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of parallel workers for the parameter sweep")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().Uint64Var(&runSeedFlag, runSeedFlagName, viper.GetUint64(runSeedConfigKey), "seed for the simulator's random source")
	bindFlagToConfig(cmd.Flags().Lookup(runSeedFlagName), runSeedConfigKey)

	cmd.Flags().StringArrayVar(&runParamsFlag, "params", nil, "extra parameter set as comma-separated floats (can be repeated)")
}

// collectParameterSets merges the file's parameter sets with any passed on
// the command line. A parameter-free program runs once.
func collectParameterSets(file adapter.ProgramFile, extra []string) ([][]float64, error) {
	sets := append([][]float64{}, file.ParameterSets...)

	for _, arg := range extra {
		set, err := parseParameterSet(arg)
		if err != nil {
			return nil, err
		}

		sets = append(sets, set)
	}

	if len(sets) == 0 {
		if len(file.Parameters) > 0 {
			return nil, fmt.Errorf("program declares parameters %v but no parameter sets were given", file.Parameters)
		}

		sets = [][]float64{{}}
	}

	return sets, nil
}

func runExpectationSweep(ctx context.Context, program domain.QuantumProgram, backend domain.Backend, threads int, sets [][]float64) ([]adapter.RunResult, error) {
	runner := domain.NewRunner(backend, threads)

	values, err := runner.RunSweep(ctx, program, sets)
	if err != nil {
		return nil, err
	}

	results := make([]adapter.RunResult, len(sets))

	for i, set := range sets {
		ui.DisplayExpectationValues(ctx, i, set, values[i])

		results[i] = adapter.RunResult{
			Parameters:        set,
			ExpectationValues: values[i],
		}
	}

	return results, nil
}

func runRegisterSweep(ctx context.Context, program domain.QuantumProgram, backend domain.Backend, sets [][]float64) ([]adapter.RunResult, error) {
	results := make([]adapter.RunResult, 0, len(sets))

	for i, set := range sets {
		output, err := program.RunRegisters(ctx, backend, set)
		if err != nil {
			return nil, err
		}

		ui.DisplayRegisterSummary(ctx, i, output)

		results = append(results, adapter.RunResult{
			Parameters:       set,
			BitRegisters:     output.Bits,
			FloatRegisters:   output.Floats,
			ComplexRegisters: output.Complexes,
		})
	}

	return results, nil
}
