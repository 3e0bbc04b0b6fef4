package domain

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Runner sweeps one program over many parameter sets against a single
// backend, running the sets in parallel.
type Runner interface {
	RunSweep(ctx context.Context, program QuantumProgram, parameterSets [][]float64) ([]map[string]float64, error)
}

type runner struct {
	backend Backend
	threads int
}

// NewRunner constructs a Runner. A non-positive thread count falls back to
// the number of CPUs.
func NewRunner(backend Backend, threads int) Runner {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	return &runner{backend: backend, threads: threads}
}

// RunSweep runs the program once per parameter set. Results keep the order
// of the input sets; the first failure cancels the remaining runs.
func (r *runner) RunSweep(ctx context.Context, program QuantumProgram, parameterSets [][]float64) ([]map[string]float64, error) {
	results := make([]map[string]float64, len(parameterSets))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.threads)

	for i, params := range parameterSets {
		i, params := i, params

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			values, err := program.Run(groupCtx, r.backend, params)
			if err != nil {
				slog.Debug("parameter set failed", "index", i, "error", err)
				return err
			}

			results[i] = values

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
