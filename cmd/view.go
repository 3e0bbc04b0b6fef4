package cmd

import (
	"github.com/spf13/cobra"

	"qirk.dev/pkg/qirk/internal/controller"
)

var viewCountsFlag bool

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Browse a program's circuit interactively",
		Long:  "Open an interactive browser over the circuit of a program file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := programAdapter.Load(args[0])
			if err != nil {
				return err
			}

			tui := controller.NewTUI(cmd.OutOrStdout())

			if viewCountsFlag {
				return tui.DisplayOperationCounts(file.Circuit)
			}

			return tui.DisplayCircuit(file.Name, file.Circuit)
		},
	}

	cmd.Flags().BoolVarP(&viewCountsFlag, "counts", "c", false, "show per-type operation counts instead of the browser")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
