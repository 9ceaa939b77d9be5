// Package metrics collects per-frame statistics over rendered grids.
package metrics

import (
	"sync"
	"time"

	"github.com/san-kum/mandelscope/internal/fractal"
)

// Metric observes computed frames and reduces them to a single value.
type Metric interface {
	Name() string
	Observe(grid *fractal.Grid, maxIter int, elapsed time.Duration)
	Value() float64
	Reset()
}

// SetCoverage tracks the fraction of pixels that reached the iteration
// cap in the most recent frame. High coverage means the view is mostly
// inside the set and a zoom-out or pan would show more structure.
type SetCoverage struct {
	mu       sync.Mutex
	name     string
	coverage float64
}

func NewSetCoverage() *SetCoverage {
	return &SetCoverage{name: "set_coverage"}
}

func (s *SetCoverage) Name() string { return s.name }

func (s *SetCoverage) Observe(grid *fractal.Grid, maxIter int, elapsed time.Duration) {
	total := len(grid.Counts)
	if total == 0 {
		return
	}
	inSet := 0
	limit := int32(maxIter)
	for _, v := range grid.Counts {
		if v >= limit {
			inSet++
		}
	}
	s.mu.Lock()
	s.coverage = float64(inSet) / float64(total)
	s.mu.Unlock()
}

func (s *SetCoverage) Value() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coverage
}

func (s *SetCoverage) Reset() {
	s.mu.Lock()
	s.coverage = 0
	s.mu.Unlock()
}

// RenderTime tracks the duration of the most recent frame and the mean
// across all frames since the last reset. Value reports the last frame
// in milliseconds.
type RenderTime struct {
	mu      sync.Mutex
	name    string
	last    time.Duration
	total   time.Duration
	samples int
}

func NewRenderTime() *RenderTime {
	return &RenderTime{name: "render_time"}
}

func (r *RenderTime) Name() string { return r.name }

func (r *RenderTime) Observe(grid *fractal.Grid, maxIter int, elapsed time.Duration) {
	r.mu.Lock()
	r.last = elapsed
	r.total += elapsed
	r.samples++
	r.mu.Unlock()
}

func (r *RenderTime) Value() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return float64(r.last) / float64(time.Millisecond)
}

// Mean reports the average frame duration since the last reset.
func (r *RenderTime) Mean() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.samples == 0 {
		return 0
	}
	return r.total / time.Duration(r.samples)
}

// Last reports the most recent frame duration.
func (r *RenderTime) Last() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

func (r *RenderTime) Reset() {
	r.mu.Lock()
	r.last = 0
	r.total = 0
	r.samples = 0
	r.mu.Unlock()
}
