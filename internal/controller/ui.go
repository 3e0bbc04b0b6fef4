// Package controller provides output adapters for displaying circuits and
// run results.
package controller

import (
	"context"

	m "qirk.dev/pkg/qirk/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeShow StartMode = iota
	ModeRun
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithShowMode sets the UI to circuit display mode.
func WithShowMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeShow
	}
}

// WithRunMode sets the UI to program execution mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// UI defines the interface for displaying circuits and run output.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayCircuit(ctx context.Context, name string, circuit m.Circuit, err error) error
	DisplaySweepInfo(ctx context.Context, threads int, setCount int)
	DisplayExpectationValues(ctx context.Context, setIndex int, parameters []float64, values map[string]float64)
	DisplayRegisterSummary(ctx context.Context, setIndex int, output m.RegisterOutput)
}
