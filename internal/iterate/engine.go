// Package iterate maps rectangular regions of the complex plane to grids
// of Mandelbrot escape-time counts.
package iterate

import (
	"fmt"
	"sync/atomic"

	"github.com/san-kum/mandelscope/internal/compute"
	"github.com/san-kum/mandelscope/internal/fractal"
)

// Engine computes escape-time grids through a compute backend. The zero
// value is not usable; construct with New.
type Engine struct {
	backend compute.Backend
	calls   atomic.Int64
}

// New returns an engine using the given backend, or the process-wide
// auto-selected backend when nil.
func New(backend compute.Backend) *Engine {
	if backend == nil {
		backend = compute.GetBackend()
	}
	return &Engine{backend: backend}
}

// Compute fills a height x width grid of escape counts for the given
// bounds and iteration cap. Every entry lies in [0, maxIter]; maxIter
// marks points assumed to belong to the set. Calling twice with the same
// arguments yields bit-identical grids.
func (e *Engine) Compute(height, width int, b fractal.Bounds, maxIter int) (*fractal.Grid, error) {
	if err := validate(height, width, maxIter); err != nil {
		return nil, err
	}

	grid := fractal.NewGrid(width, height, maxIter)
	e.backend.Escape(b, width, height, maxIter, grid.Counts, nil)
	e.calls.Add(1)
	return grid, nil
}

// ComputeSmooth additionally produces the continuous escape estimate
// n + 1 - log2(log2(|z|)) per pixel, for anti-banded coloring. The
// integer grid remains the primary contract.
func (e *Engine) ComputeSmooth(height, width int, b fractal.Bounds, maxIter int) (*fractal.Grid, []float64, error) {
	if err := validate(height, width, maxIter); err != nil {
		return nil, nil, err
	}

	grid := fractal.NewGrid(width, height, maxIter)
	smooth := make([]float64, width*height)
	e.backend.Escape(b, width, height, maxIter, grid.Counts, smooth)
	e.calls.Add(1)
	return grid, smooth, nil
}

// Calls reports how many grids the engine has computed. Used by the
// render cache tests to verify memoization.
func (e *Engine) Calls() int64 { return e.calls.Load() }

// Backend reports the active backend's name.
func (e *Engine) Backend() string { return e.backend.Name() }

func validate(height, width, maxIter int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", fractal.ErrBadDimensions, width, height)
	}
	if maxIter <= 0 {
		return fmt.Errorf("%w: %d", fractal.ErrBadIterations, maxIter)
	}
	return nil
}
