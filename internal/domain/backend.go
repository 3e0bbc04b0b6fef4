package domain

import (
	"context"

	m "qirk.dev/pkg/qirk/internal/model"
)

// Backend runs fully resolved measurements. Implementations live in
// internal/adapter; symbolic circuits must be substituted before they reach a
// backend.
type Backend interface {
	// RunMeasurement runs the measurement and returns named expectation
	// values.
	RunMeasurement(ctx context.Context, measurement Measurement) (map[string]float64, error)
	// RunRegisters runs the measurement and returns the raw classical
	// registers.
	RunRegisters(ctx context.Context, measurement Measurement) (m.RegisterOutput, error)
}
