package cmd

import (
	"context"
	"sort"

	"github.com/spf13/cobra"

	"qirk.dev/pkg/qirk/internal/controller"
	m "qirk.dev/pkg/qirk/internal/model"
)

var showCountsFlag bool

// showCmd represents the show command.
var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print the circuit of a program file",
		Long:  showLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if err := ui.Start(ctx, controller.WithShowMode()); err != nil {
				return err
			}
			defer ui.Close(ctx)

			file, err := programAdapter.Load(args[0])
			if err != nil {
				return ui.DisplayCircuit(ctx, "", m.NewCircuit(), err)
			}

			if err := ui.DisplayCircuit(ctx, file.Name, file.Circuit, nil); err != nil {
				return err
			}

			if showCountsFlag {
				printOperationCounts(cmd, file.Circuit)
			}

			ui.Wait(ctx)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&showCountsFlag, "counts", "c", false, "also print per-type operation counts")

	return cmd
}

func printOperationCounts(cmd *cobra.Command, circuit m.Circuit) {
	types := circuit.GetOperationTypes()

	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		cmd.Printf("%s: %d\n", name, types[name])
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
