package palette

import (
	"math"
	"testing"
)

// Every algorithm is a pure function of (t, intensity, phase), sweeping
// the full input space including the sinusoidal overshoot regions.
func TestAlgorithmsDeterministic(t *testing.T) {
	phases := []float64{0, 0.5, 1.7, math.Pi, 2 * math.Pi}
	intensities := []float64{0, 0.5, 1.0}

	for id := ID(0); id < Count; id++ {
		for ti := 0; ti <= 10; ti++ {
			tv := float64(ti) / 10
			for _, in := range intensities {
				for _, ph := range phases {
					a := colorAt(id, tv, in, ph)
					b := colorAt(id, tv, in, ph)
					if a != b {
						t.Fatalf("palette %v not pure at t=%v i=%v phase=%v", id, tv, in, ph)
					}
				}
			}
		}
	}
}

func TestFireStartsDark(t *testing.T) {
	c := fireColor(0, 0, 0)
	if c.R != 20 || c.G != 0 || c.B != 0 {
		t.Errorf("fire at t=0: got (%d,%d,%d), expected (20,0,0)", c.R, c.G, c.B)
	}
}

func TestVintageIsStatic(t *testing.T) {
	a := vintageColor(0.5, 0.8)
	b := vintageColor(0.5, 0.8)
	if a != b {
		t.Error("vintage palette is not deterministic")
	}
	if a.R <= a.G || a.G <= a.B {
		t.Errorf("vintage should be warm-ordered r>g>b, got (%d,%d,%d)", a.R, a.G, a.B)
	}
}

func TestMatrixIsGreenDominated(t *testing.T) {
	for ti := 1; ti <= 10; ti++ {
		tv := float64(ti) / 10
		c := matrixColor(tv, 1.0, 0)
		if c.G <= c.R || c.G <= c.B {
			t.Errorf("matrix at t=%.1f: green %d not dominant over (%d,%d)", tv, c.G, c.R, c.B)
		}
	}
}

func TestOceanDeepIsBlue(t *testing.T) {
	c := oceanColor(0.05, 1.0, 0)
	if c.R != 0 {
		t.Errorf("deep ocean has red channel %d", c.R)
	}
	if c.B <= c.G {
		t.Errorf("deep ocean not blue-dominated: (%d,%d,%d)", c.R, c.G, c.B)
	}
}

func TestSunsetBandBoundary(t *testing.T) {
	low := sunsetColor(0.39, 1.0)
	high := sunsetColor(0.41, 1.0)
	if low == high {
		t.Error("sunset bands indistinguishable across the 0.4 boundary")
	}
	if low.R != 255 {
		t.Errorf("lower sunset band red %d, expected saturated 255", low.R)
	}
}

func TestHSVNegativeHueWraps(t *testing.T) {
	a := hsv(-0.25, 1, 1)
	b := hsv(0.75, 1, 1)
	if a != b {
		t.Errorf("hue -0.25 -> %v, hue 0.75 -> %v; expected equal", a, b)
	}
}

func TestClamp8(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-10, 0},
		{0, 0},
		{127.9, 127},
		{255, 255},
		{300, 255},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := clamp8(tt.in); got != tt.want {
			t.Errorf("clamp8(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLerpRGBEndpoints(t *testing.T) {
	a := RGB{10, 20, 30}
	b := RGB{110, 220, 130}

	if got := lerpRGB(a, b, 0); got != a {
		t.Errorf("frac 0: got %v, want %v", got, a)
	}
	if got := lerpRGB(a, b, 1); got != b {
		t.Errorf("frac 1: got %v, want %v", got, b)
	}
	mid := lerpRGB(a, b, 0.5)
	if mid.R != 60 || mid.G != 120 || mid.B != 80 {
		t.Errorf("frac 0.5: got %v", mid)
	}
}
