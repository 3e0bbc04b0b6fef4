package controller

import (
	"bytes"
	"strings"
	"testing"

	m "qirk.dev/pkg/qirk/internal/model"
)

func TestTUI_DisplayCircuit_Empty(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	err := tui.DisplayCircuit("", m.NewCircuit())
	if err != nil {
		t.Fatalf("DisplayCircuit() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Qirk - Quantum Circuit Toolkit") {
		t.Error("Output should contain header")
	}
	if !strings.Contains(output, "Empty circuit") {
		t.Errorf("Expected empty message, got: %s", output)
	}
}

func TestTUI_DisplayCircuit_SmallList(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	err := tui.DisplayCircuit("bell", bellCircuit())
	if err != nil {
		t.Fatalf("DisplayCircuit() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Program: bell") {
		t.Error("Output should contain the program name")
	}
	if !strings.Contains(output, "CNOT") {
		t.Errorf("Output should list operations, got: %s", output)
	}
	if !strings.Contains(output, "Total: 4 operation(s), 2 gate(s)") {
		t.Errorf("Output should contain totals, got: %s", output)
	}
}

func TestTUI_DisplayOperationCounts(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	err := tui.DisplayOperationCounts(bellCircuit())
	if err != nil {
		t.Fatalf("DisplayOperationCounts() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Hadamard: 1") {
		t.Errorf("Output should count operation types, got: %s", output)
	}
	if !strings.Contains(output, "Total: 4 operation(s)") {
		t.Errorf("Output should contain the total, got: %s", output)
	}
}

func TestCircuitModel_Pagination(t *testing.T) {
	lines := make([]circuitLine, 40)
	for i := range lines {
		lines[i] = circuitLine{index: i, name: "PauliX", qubits: "0", isGate: true}
	}

	model := newCircuitModel("big", lines, 40, m.QubitsOf(0))
	model.height = 20

	if !model.needsPagination() {
		t.Fatal("40 operations on a 20-line terminal should paginate")
	}

	if perPage := model.itemsPerPage(); perPage != 8 {
		t.Errorf("itemsPerPage() = %d, want 8", perPage)
	}

	if maxOff := model.maxOffset(); maxOff != 32 {
		t.Errorf("maxOffset() = %d, want 32", maxOff)
	}

	view := model.View()
	if !strings.Contains(view, "Page 1/5") {
		t.Errorf("paginated view should show page info, got: %s", view)
	}
}
