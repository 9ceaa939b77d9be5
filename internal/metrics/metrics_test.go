package metrics

import (
	"testing"
	"time"

	"github.com/san-kum/mandelscope/internal/fractal"
)

func TestSetCoverage(t *testing.T) {
	m := NewSetCoverage()

	g := fractal.NewGrid(4, 4, 100)
	for i := 0; i < 4; i++ {
		g.Counts[i] = 100
	}
	m.Observe(g, 100, 0)

	if got := m.Value(); got != 0.25 {
		t.Errorf("coverage = %v, want 0.25", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("coverage survives reset")
	}
}

func TestSetCoverageTracksLastFrame(t *testing.T) {
	m := NewSetCoverage()

	full := fractal.NewGrid(2, 2, 50)
	for i := range full.Counts {
		full.Counts[i] = 50
	}
	empty := fractal.NewGrid(2, 2, 50)

	m.Observe(full, 50, 0)
	m.Observe(empty, 50, 0)
	if got := m.Value(); got != 0 {
		t.Errorf("coverage = %v after empty frame, want 0", got)
	}
}

func TestRenderTime(t *testing.T) {
	m := NewRenderTime()
	g := fractal.NewGrid(2, 2, 50)

	m.Observe(g, 50, 10*time.Millisecond)
	m.Observe(g, 50, 30*time.Millisecond)

	if got := m.Value(); got != 30 {
		t.Errorf("last frame = %v ms, want 30", got)
	}
	if got := m.Mean(); got != 20*time.Millisecond {
		t.Errorf("mean = %v, want 20ms", got)
	}
	if got := m.Last(); got != 30*time.Millisecond {
		t.Errorf("last = %v, want 30ms", got)
	}

	m.Reset()
	if m.Value() != 0 || m.Mean() != 0 {
		t.Error("timings survive reset")
	}
}

func TestMetricNames(t *testing.T) {
	if NewSetCoverage().Name() != "set_coverage" {
		t.Error("set coverage name")
	}
	if NewRenderTime().Name() != "render_time" {
		t.Error("render time name")
	}
}
