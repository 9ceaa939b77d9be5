package palette

import (
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/san-kum/mandelscope/internal/fractal"
)

// ID selects one of the ten coloring algorithms.
type ID int

const (
	Rainbow ID = iota
	Ocean
	Fire
	Electric
	Cosmic
	Vintage
	Neon
	Ice
	Sunset
	Matrix

	Count = 10
)

var names = [Count]string{
	"Rainbow",
	"Ocean Waves",
	"Fire & Magma",
	"Electric Plasma",
	"Cosmic Nebula",
	"Vintage Sepia",
	"Neon Dreams",
	"Ice Crystal",
	"Sunset Glow",
	"Matrix Code",
}

func (id ID) String() string {
	if id < 0 || id >= Count {
		return "Unknown"
	}
	return names[id]
}

// Names lists the palettes in cycling order.
func Names() []string {
	out := make([]string, Count)
	copy(out, names[:])
	return out
}

// Lookup resolves a palette by display name (case-insensitive) or by
// numeric index.
func Lookup(name string) (ID, bool) {
	if n, err := strconv.Atoi(name); err == nil {
		if n >= 0 && n < Count {
			return ID(n), true
		}
		return 0, false
	}
	for i, known := range names {
		if strings.EqualFold(known, name) {
			return ID(i), true
		}
	}
	return 0, false
}

const (
	animationSpeed = 0.02
	cacheCapacity  = 1000
)

// Engine turns escape-time grids into colored bitmaps. It holds the
// selected palette, the animation phase, and a bounded color cache.
// All methods are safe for concurrent use.
type Engine struct {
	mu       sync.Mutex
	id       ID
	animTime float64
	speed    float64
	cache    *colorCache
}

// Info is the colorization state snapshot surfaced by the info command.
type Info struct {
	CurrentPalette string  `json:"current_palette"`
	PaletteIndex   int     `json:"palette_index"`
	TotalPalettes  int     `json:"total_palettes"`
	AnimationTime  float64 `json:"animation_time"`
	CacheSize      int     `json:"cache_size"`
}

// NewEngine starts on Rainbow with the animation phase at zero.
func NewEngine() *Engine {
	return &Engine{
		speed: animationSpeed,
		cache: newColorCache(cacheCapacity),
	}
}

// Next advances to the following palette, wrapping after the last, and
// drops every cached color.
func (e *Engine) Next() ID {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.id = (e.id + 1) % Count
	e.cache.clear()
	return e.id
}

// Select jumps straight to the given palette. Out-of-range ids wrap.
func (e *Engine) Select(id ID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	id %= Count
	if id < 0 {
		id += Count
	}
	if id != e.id {
		e.id = id
		e.cache.clear()
	}
}

// Current reports the active palette.
func (e *Engine) Current() ID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.id
}

// Tick advances the animation phase by one frame, wrapping at 2*pi so
// the phase never grows without bound.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.animTime += e.speed
	if e.animTime > 2*math.Pi {
		e.animTime = 0
	}
}

// AnimationTime reports the current phase.
func (e *Engine) AnimationTime() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.animTime
}

// Apply colors a grid into a fresh bitmap. Each distinct escape value is
// resolved once and broadcast to every pixel sharing it, so cost scales
// with the number of distinct values rather than the pixel count. Pixels
// at or above the grid's observed maximum are black.
func (e *Engine) Apply(grid *fractal.Grid) *fractal.Bitmap {
	e.mu.Lock()
	defer e.mu.Unlock()

	bm := fractal.NewBitmap(grid.Width, grid.Height)
	maxVal := grid.Max()
	if maxVal <= 0 {
		return bm
	}

	colors := make(map[int32]RGB)
	for i, v := range grid.Counts {
		rgb, ok := colors[v]
		if !ok {
			rgb = e.colorFor(v, maxVal)
			colors[v] = rgb
		}
		bm.Pix[i*3] = rgb.R
		bm.Pix[i*3+1] = rgb.G
		bm.Pix[i*3+2] = rgb.B
	}
	return bm
}

// ApplySmooth colors using the continuous escape estimates, blending
// between the colors of adjacent integer values to remove banding.
// Pixels at the iteration cap remain black.
func (e *Engine) ApplySmooth(grid *fractal.Grid, smooth []float64) *fractal.Bitmap {
	e.mu.Lock()
	defer e.mu.Unlock()

	bm := fractal.NewBitmap(grid.Width, grid.Height)
	maxVal := grid.Max()
	if maxVal <= 0 {
		return bm
	}

	for i, v := range grid.Counts {
		if v >= maxVal {
			continue
		}
		s := smooth[i]
		if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
			s = float64(v)
		}
		lo := int32(s)
		frac := s - float64(lo)
		rgb := lerpRGB(e.colorFor(lo, maxVal), e.colorFor(lo+1, maxVal), frac)
		bm.Pix[i*3] = rgb.R
		bm.Pix[i*3+1] = rgb.G
		bm.Pix[i*3+2] = rgb.B
	}
	return bm
}

// colorFor resolves one escape value under the active palette and phase,
// consulting the cache first. Caller holds e.mu.
func (e *Engine) colorFor(value, maxVal int32) RGB {
	if value >= maxVal {
		return RGB{}
	}

	key := cacheKey{
		value:  value,
		max:    maxVal,
		id:     e.id,
		bucket: int(e.animTime * 100),
	}
	if rgb, ok := e.cache.get(key); ok {
		return rgb
	}

	t := float64(value) / float64(maxVal)
	intensity := math.Min(1.0, math.Sqrt(t)*1.2)
	rgb := colorAt(e.id, t, intensity, e.animTime)

	e.cache.put(key, rgb)
	return rgb
}

// CacheSize reports how many colors are currently memoized.
func (e *Engine) CacheSize() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cache.size()
}

// Info snapshots the colorization state.
func (e *Engine) Info() Info {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Info{
		CurrentPalette: e.id.String(),
		PaletteIndex:   int(e.id),
		TotalPalettes:  Count,
		AnimationTime:  e.animTime,
		CacheSize:      e.cache.size(),
	}
}
