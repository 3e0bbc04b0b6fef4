package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "qirk.dev/pkg/qirk/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayCircuit prints the circuit as an operation table, or the load error.
func (s *SimpleUI) DisplayCircuit(ctx context.Context, name string, circuit m.Circuit, err error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err != nil {
		s.printf("circuit error: %v\n", err)
		return err
	}

	if name != "" {
		s.printf("\nProgram: %s\n", name)
	}

	rows := buildOperationRows(circuit)
	tableStr := renderCircuitTable(rows, circuit)
	s.printf("\n%s", tableStr)

	return nil
}

type operationRow struct {
	index    int
	name     string
	qubits   string
	symbolic bool
	isGate   bool
}

func buildOperationRows(circuit m.Circuit) []operationRow {
	ops := circuit.Operations()

	rows := make([]operationRow, 0, len(ops))
	for i, op := range ops {
		_, isGate := op.(m.GateOperation)

		rows = append(rows, operationRow{
			index:    i,
			name:     op.Hqslang(),
			qubits:   qubitsLabel(op.InvolvedQubits()),
			symbolic: op.IsParametrized(),
			isGate:   isGate,
		})
	}

	return rows
}

func qubitsLabel(involved m.InvolvedQubits) string {
	if involved.All {
		return "ALL"
	}

	if len(involved.Qubits) == 0 {
		return "-"
	}

	parts := make([]string, len(involved.Qubits))
	for i, q := range involved.Qubits {
		parts[i] = fmt.Sprintf("%d", q)
	}

	return strings.Join(parts, ",")
}

func renderCircuitTable(rows []operationRow, circuit m.Circuit) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Operation", "Qubits", "Symbolic"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	gateCount := 0

	for _, row := range rows {
		symbolic := ""
		if row.symbolic {
			symbolic = "yes"
		}

		table.Append([]string{
			fmt.Sprintf("%d", row.index),
			row.name,
			row.qubits,
			symbolic,
		})

		if row.isGate {
			gateCount++
		}
	}

	table.SetFooter([]string{
		"",
		fmt.Sprintf("Total Ops %d", len(rows)),
		qubitsLabel(circuit.InvolvedQubits()),
		fmt.Sprintf("Gates %d", gateCount),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplaySweepInfo shows concurrency settings for a parameter sweep.
func (s *SimpleUI) DisplaySweepInfo(ctx context.Context, threads int, setCount int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Running %d parameter set(s) with %d worker(s)\n", setCount, threads)
}

// DisplayExpectationValues prints the expectation values of one parameter set.
func (s *SimpleUI) DisplayExpectationValues(ctx context.Context, setIndex int, parameters []float64, values map[string]float64) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\nParameter set %d %s\n", setIndex, formatParameters(parameters))

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}

	sort.Strings(names)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Observable", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, name := range names {
		table.Append([]string{name, fmt.Sprintf("%.6f", values[name])})
	}

	table.Render()
	s.printf("%s", tableBuffer.String())
}

// DisplayRegisterSummary prints per-register shot counts for one parameter set.
func (s *SimpleUI) DisplayRegisterSummary(ctx context.Context, setIndex int, output m.RegisterOutput) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\nParameter set %d registers:\n", setIndex)

	names := make([]string, 0, len(output.Bits))
	for name := range output.Bits {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		shots := output.Bits[name]

		counts := map[string]int{}
		for _, shot := range shots {
			counts[bitstring(shot)]++
		}

		keys := make([]string, 0, len(counts))
		for key := range counts {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		s.printf("  %s (%d shots):\n", name, len(shots))

		for _, key := range keys {
			s.printf("    %s: %d\n", key, counts[key])
		}
	}
}

func bitstring(shot []bool) string {
	var b strings.Builder

	for _, bit := range shot {
		if bit {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}

	return b.String()
}

func formatParameters(parameters []float64) string {
	if len(parameters) == 0 {
		return ""
	}

	parts := make([]string, len(parameters))
	for i, p := range parameters {
		parts[i] = fmt.Sprintf("%g", p)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
