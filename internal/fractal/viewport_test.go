package fractal

import (
	"math"
	"testing"
)

func TestBounds(t *testing.T) {
	v := NewViewport(800, 600)

	b := v.Bounds()
	if math.Abs(b.Width()-3.0) > 1e-12 {
		t.Errorf("expected view width 3.0 at zoom 1, got %f", b.Width())
	}
	if math.Abs(b.Height()-3.0/v.AspectRatio()) > 1e-12 {
		t.Errorf("expected height %f, got %f", 3.0/v.AspectRatio(), b.Height())
	}

	cx := (b.XMin + b.XMax) / 2
	cy := (b.YMin + b.YMax) / 2
	if math.Abs(cx-v.CenterX) > 1e-12 || math.Abs(cy-v.CenterY) > 1e-12 {
		t.Errorf("bounds not centered: (%f, %f)", cx, cy)
	}

	v.Zoom = 10.0
	b = v.Bounds()
	if math.Abs(b.Width()-0.3) > 1e-12 {
		t.Errorf("expected view width 0.3 at zoom 10, got %f", b.Width())
	}
}

func TestAdaptiveIterations(t *testing.T) {
	tests := []struct {
		zoom     float64
		expected int
	}{
		{1.0, 59},   // 50 + log10(2)*30
		{0.1, 51},   // 50 + log10(1.1)*30
		{1e6, 230},  // 50 + 6*30
		{1e12, 410}, // 50 + 12*30
		{1e70, 2000},
	}

	for _, tt := range tests {
		if got := AdaptiveIterations(tt.zoom); got != tt.expected {
			t.Errorf("AdaptiveIterations(%g) = %d, want %d", tt.zoom, got, tt.expected)
		}
	}
}

func TestAdaptiveIterationsMonotonic(t *testing.T) {
	prev := 0
	for z := MinZoom; z < MaxZoom; z *= 10 {
		n := AdaptiveIterations(z)
		if n < prev {
			t.Fatalf("cap decreased from %d to %d at zoom %g", prev, n, z)
		}
		if n < MinIter || n > MaxMaxIter {
			t.Fatalf("cap %d outside [%d, %d] at zoom %g", n, MinIter, MaxMaxIter, z)
		}
		prev = n
	}
}

func TestZoomAtRoundTrip(t *testing.T) {
	v := NewViewport(800, 600)
	v.CenterX, v.CenterY, v.Zoom = -0.7435, 0.1314, 250.0

	cx, cy, zoom := v.CenterX, v.CenterY, v.Zoom

	// Zooming about the screen center keeps the center fixed, so the
	// inverse factor restores both center and zoom.
	v.ZoomAt(400, 300, 4.0)
	v.ZoomAt(400, 300, 0.25)

	if math.Abs(v.Zoom-zoom)/zoom > 1e-9 {
		t.Errorf("zoom not restored: got %g, want %g", v.Zoom, zoom)
	}
	if math.Abs(v.CenterX-cx) > 1e-9 || math.Abs(v.CenterY-cy) > 1e-9 {
		t.Errorf("center drifted: got (%g, %g), want (%g, %g)", v.CenterX, v.CenterY, cx, cy)
	}
}

func TestZoomAtConvergesOnPoint(t *testing.T) {
	v := NewViewport(800, 600)

	b := v.Bounds()
	target := b.XMin + b.Width()*200.0/800.0

	v.ZoomAt(200, 300, 2.0)
	if math.Abs(v.CenterX-target) > 1e-12 {
		t.Errorf("expected recenter on clicked point %f, got %f", target, v.CenterX)
	}
}

func TestZoomClamp(t *testing.T) {
	v := NewViewport(800, 600)

	v.ZoomAt(400, 300, 1e-9)
	if v.Zoom != MinZoom {
		t.Errorf("expected zoom clamped to %g, got %g", MinZoom, v.Zoom)
	}

	v.Zoom = 1e14
	v.ZoomAt(400, 300, 1e6)
	if v.Zoom != MaxZoom {
		t.Errorf("expected zoom clamped to %g, got %g", MaxZoom, v.Zoom)
	}
}

func TestPan(t *testing.T) {
	v := NewViewport(300, 300)

	b := v.Bounds()
	perPixelX := b.Width() / 300.0
	perPixelY := b.Height() / 300.0

	v.Pan(30, -15)
	if math.Abs(v.CenterX-(HomeCenterX+30*perPixelX)) > 1e-12 {
		t.Errorf("x pan wrong: got %f", v.CenterX)
	}
	if math.Abs(v.CenterY-(HomeCenterY-15*perPixelY)) > 1e-12 {
		t.Errorf("y pan wrong: got %f", v.CenterY)
	}
}

func TestSetIterationsClamp(t *testing.T) {
	v := NewViewport(100, 100)

	// Repeated increases settle exactly at the ceiling.
	for i := 0; i < 100; i++ {
		v.SetIterations(50)
	}
	if v.MaxIter != MaxMaxIter {
		t.Errorf("expected cap %d, got %d", MaxMaxIter, v.MaxIter)
	}

	for i := 0; i < 100; i++ {
		v.SetIterations(-50)
	}
	if v.MaxIter != MinIter {
		t.Errorf("expected floor %d, got %d", MinIter, v.MaxIter)
	}
}

func TestReset(t *testing.T) {
	v := NewViewport(800, 600)
	v.CenterX, v.CenterY, v.Zoom, v.MaxIter = 0.3, -0.2, 1e6, 1500

	v.Reset()
	if v.CenterX != HomeCenterX || v.CenterY != HomeCenterY {
		t.Errorf("center not restored: (%f, %f)", v.CenterX, v.CenterY)
	}
	if v.Zoom != HomeZoom || v.MaxIter != DefaultIter {
		t.Errorf("zoom/iterations not restored: %f, %d", v.Zoom, v.MaxIter)
	}
}

func TestResizeInvalid(t *testing.T) {
	v := NewViewport(800, 600)

	if err := v.Resize(0, 600); err == nil {
		t.Error("expected error for zero width")
	}
	if err := v.Resize(800, -1); err == nil {
		t.Error("expected error for negative height")
	}
	if err := v.Resize(1024, 768); err != nil {
		t.Errorf("valid resize failed: %v", err)
	}
	if v.Width != 1024 || v.Height != 768 {
		t.Errorf("resize not applied: %dx%d", v.Width, v.Height)
	}
}
