package palette

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is one output pixel. Every algorithm clamps each channel to
// [0, 255] regardless of intermediate overshoot.
type RGB struct {
	R, G, B uint8
}

// colorAt dispatches to the algorithm selected by id. t is the
// normalized escape value in [0,1], intensity = min(1, sqrt(t)*1.2),
// phase the engine's animation time.
func colorAt(id ID, t, intensity, phase float64) RGB {
	switch id {
	case Rainbow:
		return rainbowColor(t, intensity, phase)
	case Ocean:
		return oceanColor(t, intensity, phase)
	case Fire:
		return fireColor(t, intensity, phase)
	case Electric:
		return electricColor(t, intensity, phase)
	case Cosmic:
		return cosmicColor(t, intensity, phase)
	case Vintage:
		return vintageColor(t, intensity)
	case Neon:
		return neonColor(t, intensity, phase)
	case Ice:
		return iceColor(t, intensity, phase)
	case Sunset:
		return sunsetColor(t, intensity)
	case Matrix:
		return matrixColor(t, intensity, phase)
	}
	return rainbowColor(t, intensity, phase)
}

// rainbowColor sweeps hue six times across the value range while the
// phase rotates the whole wheel.
func rainbowColor(t, intensity, phase float64) RGB {
	hue := math.Mod(t*6.0+phase, 1.0)
	sat := 0.8 + 0.2*math.Sin(t*math.Pi*4+phase*2)
	val := intensity * (0.5 + 0.5*math.Sin(t*math.Pi*2))
	return hsv(hue, sat, val)
}

// oceanColor tiers by depth band: dark abyss, animated mid-water waves,
// bright foamy shallows.
func oceanColor(t, intensity, phase float64) RGB {
	var r, g, b float64
	switch {
	case t < 0.1:
		b = 10 + t*500*intensity
		g = 5 + t*300*intensity
		r = 0
	case t < 0.6:
		wave := math.Sin(t*math.Pi*8 + phase*3)
		b = 50 + (t-0.1)*400*intensity + wave*30
		g = 30 + (t-0.1)*300*intensity + wave*40
		r = wave * 20
	default:
		foam := math.Sin(t*math.Pi*16 + phase*5)
		b = 150 + (t-0.6)*200 + foam*50
		g = 200 + (t-0.6)*50 + foam*30
		r = 100 + foam*40
	}
	return RGB{clamp8(r), clamp8(g), clamp8(b)}
}

// fireColor tiers by heat band, with a flicker term jittering the band
// boundary.
func fireColor(t, intensity, phase float64) RGB {
	flicker := math.Sin(t*math.Pi*12+phase*8) * 0.1
	at := t + flicker
	if at < 0 {
		at = 0
	}
	if at > 1 {
		at = 1
	}

	var r, g, b float64
	switch {
	case at < 0.2: // embers
		r = 20 + at*600*intensity
		g = at * 100 * intensity
		b = 0
	case at < 0.5: // red into orange
		r = 120 + (at-0.2)*400*intensity
		g = 20 + (at-0.2)*600*intensity
		b = (at - 0.2) * 100 * intensity
	case at < 0.8: // orange into yellow
		r = 200 + (at-0.5)*150*intensity
		g = 120 + (at-0.5)*400*intensity
		b = 30 + (at-0.5)*200*intensity
	default: // white heat
		r = 255
		g = 220 + (at-0.8)*175*intensity
		b = 60 + (at-0.8)*700*intensity
	}
	return RGB{clamp8(r), clamp8(g), clamp8(b)}
}

// electricColor pulses through blue-violet hue space.
func electricColor(t, intensity, phase float64) RGB {
	pulse := math.Sin(t*math.Pi*6+phase*10) * 0.3
	spark := math.Sin(t*math.Pi*20+phase*15) * 0.1

	hue := math.Mod(0.6+t*0.3+pulse*0.1, 1.0)
	sat := math.Min(1.0, 0.9+spark*0.1)
	val := math.Min(1.0, intensity*(0.3+0.7*t+pulse*0.3))
	return hsv(hue, sat, val)
}

// cosmicColor tiers by distance band: deep violet space, pink nebula,
// golden stars.
func cosmicColor(t, intensity, phase float64) RGB {
	swirl := math.Sin(t*math.Pi*3+phase*2) * 0.2
	twinkle := math.Sin(t*math.Pi*25+phase*12) * 0.1

	var r, g, b float64
	switch {
	case t < 0.3:
		r = 20 + t*200*intensity + twinkle*50
		g = 5 + t*50*intensity
		b = 40 + t*400*intensity + swirl*60
	case t < 0.7:
		r = 60 + (t-0.3)*400*intensity + swirl*80
		g = 20 + (t-0.3)*200*intensity + twinkle*40
		b = 120 + (t-0.3)*300*intensity
	default:
		r = 200 + (t-0.7)*180*intensity
		g = 150 + (t-0.7)*300*intensity
		b = 50 + (t-0.7)*400*intensity + twinkle*100
	}
	return RGB{clamp8(r), clamp8(g), clamp8(b)}
}

// vintageColor is a static sepia ramp; the only palette with no
// animation term.
func vintageColor(t, intensity float64) RGB {
	base := t * intensity
	return RGB{
		clamp8(100 + base*120),
		clamp8(80 + base*100),
		clamp8(50 + base*60),
	}
}

// neonColor sweeps fully saturated hues with a glow oscillation.
func neonColor(t, intensity, phase float64) RGB {
	glow := math.Sin(t*math.Pi*8+phase*6) * 0.2
	hue := math.Mod(t*0.8+phase*0.1, 1.0)
	return hsv(hue, 1.0, math.Min(1.0, intensity*(0.7+0.3*t+glow)))
}

// iceColor is a pale blue ramp with a crystal shimmer.
func iceColor(t, intensity, phase float64) RGB {
	crystal := math.Sin(t*math.Pi*15+phase*4) * 0.1
	return RGB{
		clamp8(100 + t*120*intensity + crystal*50),
		clamp8(130 + t*110*intensity + crystal*40),
		clamp8(150 + t*100*intensity + crystal*30),
	}
}

// sunsetColor is a two-band gradient, orange below 0.4 and pink-violet
// above.
func sunsetColor(t, intensity float64) RGB {
	var r, g, b float64
	if t < 0.4 {
		r = 255 * intensity
		g = 120 + t*300*intensity
		b = 30 + t*100*intensity
	} else {
		r = 200 + (1-t)*100*intensity
		g = 50 + t*150*intensity
		b = 80 + t*300*intensity
	}
	return RGB{clamp8(r), clamp8(g), clamp8(b)}
}

// matrixColor is green-dominated with a high-frequency digital noise
// term.
func matrixColor(t, intensity, phase float64) RGB {
	digital := math.Sin(t*math.Pi*30+phase*20) * 0.2
	return RGB{
		clamp8(t * 50 * intensity),
		clamp8(50 + t*200*intensity + digital*50),
		clamp8(t * 30 * intensity),
	}
}

// hsv converts h, s, v in [0,1] to RGB, clamping inputs so sinusoidal
// overshoot can never produce out-of-gamut channels.
func hsv(h, s, v float64) RGB {
	h = math.Mod(h, 1.0)
	if h < 0 {
		h += 1.0
	}
	c := colorful.Hsv(h*360, clamp01(s), clamp01(v))
	r, g, b := c.RGB255()
	return RGB{r, g, b}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp8(v float64) uint8 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// lerpRGB mixes two colors, frac in [0,1]. Used by smooth coloring.
func lerpRGB(a, b RGB, frac float64) RGB {
	return RGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*frac),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*frac),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*frac),
	}
}
