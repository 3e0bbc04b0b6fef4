package controller

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "qirk.dev/pkg/qirk/internal/model"
)

const (
	// ANSI color codes for non-gate operations (dark gray, faint).
	grayColor  = "\033[2;90m" // Faint + dark gray
	resetColor = "\033[0m"    // Reset
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Border(lipgloss.DoubleBorder()).
	Padding(0, 17)

var totalsStyle = lipgloss.NewStyle().Bold(true)

// TUI implements an interactive circuit browser using Bubble Tea.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayCircuit shows the circuit's operation list, paginated when it does
// not fit the terminal.
func (p *TUI) DisplayCircuit(name string, circuit m.Circuit) error {
	ops := circuit.Operations()

	lines := make([]circuitLine, 0, len(ops))
	gateCount := 0

	for i, op := range ops {
		_, isGate := op.(m.GateOperation)
		if isGate {
			gateCount++
		}

		lines = append(lines, circuitLine{
			index:    i,
			name:     op.Hqslang(),
			qubits:   qubitsLabel(op.InvolvedQubits()),
			symbolic: op.IsParametrized(),
			isGate:   isGate,
		})
	}

	model := newCircuitModel(name, lines, gateCount, circuit.InvolvedQubits())

	// Get initial terminal size
	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	// If the circuit is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayOperationCounts shows the per-type operation counts of a circuit.
func (p *TUI) DisplayOperationCounts(circuit m.Circuit) error {
	types := circuit.GetOperationTypes()

	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}

	sort.Strings(names)

	var b strings.Builder

	renderBanner(&b)
	b.WriteString("  Operation counts:\n\n")

	for _, name := range names {
		fmt.Fprintf(&b, "  %s: %d\n", name, types[name])
	}

	fmt.Fprintf(&b, "\n  Total: %d operation(s)\n", circuit.Len())

	_, err := fmt.Fprint(p.output, b.String())

	return err
}

// circuitLine holds the display fields for a single operation.
type circuitLine struct {
	index    int
	name     string
	qubits   string
	symbolic bool
	isGate   bool
}

// browseKeyMap holds the key bindings of the circuit browser.
type browseKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Top, k.Bottom, k.Quit},
	}
}

func defaultBrowseKeys() browseKeyMap {
	return browseKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		PageUp:   key.NewBinding(key.WithKeys("u", "pgup"), key.WithHelp("u", "page up")),
		PageDown: key.NewBinding(key.WithKeys("d", "pgdown"), key.WithHelp("d", "page down")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// circuitModel represents the Bubble Tea model for browsing a circuit.
type circuitModel struct {
	name      string
	lines     []circuitLine
	gateCount int
	involved  m.InvolvedQubits
	keys      browseKeyMap
	help      help.Model
	height    int
	width     int
	offset    int // Current scroll offset
	quitting  bool
}

func newCircuitModel(name string, lines []circuitLine, gateCount int, involved m.InvolvedQubits) circuitModel {
	return circuitModel{
		name:      name,
		lines:     lines,
		gateCount: gateCount,
		involved:  involved,
		keys:      defaultBrowseKeys(),
		help:      help.New(),
		height:    0, // Will be set on first WindowSizeMsg
		width:     0,
		offset:    0,
		quitting:  false,
	}
}

func (cm circuitModel) Init() tea.Cmd {
	return nil
}

func (cm circuitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cm.height = msg.Height
		cm.width = msg.Width

		return cm, nil

	case tea.KeyMsg:
		return cm.handleKeyPress(msg)
	}

	return cm, nil
}

//nolint:cyclop // Key handling requires multiple cases for UI navigation
func (cm circuitModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, cm.keys.Quit):
		cm.quitting = true

		return cm, tea.Quit

	case key.Matches(msg, cm.keys.Down):
		cm.offset++

		maxOffset := cm.maxOffset()
		if cm.offset > maxOffset {
			cm.offset = maxOffset
		}

		return cm, nil

	case key.Matches(msg, cm.keys.Up):
		cm.offset--
		if cm.offset < 0 {
			cm.offset = 0
		}

		return cm, nil

	case key.Matches(msg, cm.keys.Top):
		cm.offset = 0

		return cm, nil

	case key.Matches(msg, cm.keys.Bottom):
		cm.offset = cm.maxOffset()

		return cm, nil

	case key.Matches(msg, cm.keys.PageDown):
		cm.offset += cm.itemsPerPage()

		maxOffset := cm.maxOffset()
		if cm.offset > maxOffset {
			cm.offset = maxOffset
		}

		return cm, nil

	case key.Matches(msg, cm.keys.PageUp):
		cm.offset -= cm.itemsPerPage()
		if cm.offset < 0 {
			cm.offset = 0
		}

		return cm, nil
	}

	return cm, nil
}

// itemsPerPage calculates how many operations can fit on screen.
func (cm circuitModel) itemsPerPage() int {
	if cm.height == 0 {
		return 10 // Default
	}
	// Reserve space for:
	// - Header: 4 lines (box + empty)
	// - Title: 2 lines (program name + empty)
	// - Total: 2 lines (empty + total)
	// - Footer: 3 lines (empty + page + help)
	// - Top margin: 1 line
	// Total: 12 lines
	reserved := 12

	available := cm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

// maxOffset returns the maximum scroll offset.
func (cm circuitModel) maxOffset() int {
	itemCount := len(cm.lines)

	perPage := cm.itemsPerPage()
	if perPage <= 0 {
		return 0
	}

	maxOff := itemCount - perPage
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

// needsPagination returns true if the circuit is too large to fit on screen.
func (cm circuitModel) needsPagination() bool {
	totalOps := len(cm.lines)
	if totalOps == 0 {
		return false
	}

	itemsPerPage := cm.itemsPerPage()

	return totalOps > itemsPerPage && cm.height > 0
}

func (cm circuitModel) View() string {
	var b strings.Builder

	renderBanner(&b)

	if cm.name != "" {
		fmt.Fprintf(&b, "  Program: %s\n\n", cm.name)
	}

	if len(cm.lines) == 0 {
		b.WriteString("  Empty circuit\n")
		return b.String()
	}

	cm.renderOperationList(&b)

	return b.String()
}

func renderBanner(b *strings.Builder) {
	b.WriteString(bannerStyle.Render("Qirk - Quantum Circuit Toolkit"))
	b.WriteString("\n\n")
}

func (cm circuitModel) renderOperationList(b *strings.Builder) {
	totalOps := len(cm.lines)

	// Calculate pagination
	itemsPerPage := cm.itemsPerPage()
	needsPagination := totalOps > itemsPerPage && cm.height > 0

	start := cm.offset

	end := start + itemsPerPage
	if end > totalOps {
		end = totalOps
	}

	if start >= totalOps {
		start = totalOps - 1
		if start < 0 {
			start = 0
		}
	}

	// Show items for current page
	displayLines := cm.lines

	if needsPagination {
		displayLines = cm.lines[start:end]
	}

	for _, line := range displayLines {
		color := ""
		if !line.isGate {
			color = grayColor
		}

		symbolic := ""
		if line.symbolic {
			symbolic = " (symbolic)"
		}

		fmt.Fprintf(b, "  %s%4d  %-28s qubits %s%s%s\n",
			color, line.index, line.name, line.qubits, symbolic, resetColor)
	}

	// Totals
	b.WriteString("\n")
	fmt.Fprintf(b, "  %s\n", totalsStyle.Render(fmt.Sprintf("Total: %d operation(s), %d gate(s), qubits %s",
		totalOps, cm.gateCount, qubitsLabel(cm.involved))))

	// Footer with navigation help
	if needsPagination {
		b.WriteString("\n")

		currentPage := (cm.offset / itemsPerPage) + 1
		totalPages := (totalOps + itemsPerPage - 1) / itemsPerPage
		fmt.Fprintf(b, "  Page %d/%d | Showing %d-%d of %d\n",
			currentPage, totalPages, start+1, end, totalOps)
		fmt.Fprintf(b, "  %s\n", cm.help.View(cm.keys))
	}
}
