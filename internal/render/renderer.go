// Package render ties the viewport, the iteration engine and the frame
// cache into one interactive rendering pipeline.
package render

import (
	"sync"
	"time"

	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/iterate"
	"github.com/san-kum/mandelscope/internal/palette"
)

// Observer is notified after every freshly computed frame. Cache hits do
// not notify.
type Observer interface {
	Observe(grid *fractal.Grid, maxIter int, elapsed time.Duration)
}

// Renderer owns the navigation state and produces escape-time grids on
// demand, memoizing the most recent frame. All methods are safe for
// concurrent use.
type Renderer struct {
	mu          sync.Mutex
	view        *fractal.Viewport
	engine      *iterate.Engine
	cache       Cache
	renderCount int64
	observers   []Observer
}

// EngineInfo is the navigation and rendering snapshot surfaced by the
// info command and the TUI status line.
type EngineInfo struct {
	CenterX     float64 `json:"center_x"`
	CenterY     float64 `json:"center_y"`
	Zoom        float64 `json:"zoom"`
	XMin        float64 `json:"x_min"`
	XMax        float64 `json:"x_max"`
	YMin        float64 `json:"y_min"`
	YMax        float64 `json:"y_max"`
	MaxIter     int     `json:"max_iter"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	RenderCount int64   `json:"render_count"`
	TotalPixels int     `json:"total_pixels"`
}

// New returns a renderer framing the full set at the given resolution.
// A nil engine selects the process-wide compute backend.
func New(width, height int, engine *iterate.Engine) *Renderer {
	if engine == nil {
		engine = iterate.New(nil)
	}
	return &Renderer{
		view:   fractal.NewViewport(width, height),
		engine: engine,
	}
}

// AddObserver registers a metric sink for freshly computed frames.
func (r *Renderer) AddObserver(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, o)
}

// Generate produces the grid for the current viewport, serving from the
// cache when the parameters match the previous frame exactly. The
// iteration cap is the viewport's cap tightened by the zoom-adaptive
// bound, so shallow views never pay for a manually raised cap.
func (r *Renderer) Generate() (*fractal.Grid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxIter := r.view.MaxIter
	if adaptive := fractal.AdaptiveIterations(r.view.Zoom); adaptive < maxIter {
		maxIter = adaptive
	}

	params := r.view.Params()
	params.MaxIter = maxIter
	if grid, ok := r.cache.Get(params); ok {
		return grid, nil
	}

	start := time.Now()
	grid, err := r.engine.Compute(r.view.Height, r.view.Width, r.view.Bounds(), maxIter)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	r.cache.Put(params, grid)
	r.renderCount++
	for _, o := range r.observers {
		o.Observe(grid, maxIter, elapsed)
	}
	return grid, nil
}

// GenerateSmooth computes the current frame with the continuous escape
// estimate. Smooth frames bypass the cache; they are produced only by
// the one-shot render path.
func (r *Renderer) GenerateSmooth() (*fractal.Grid, []float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxIter := r.view.MaxIter
	if adaptive := fractal.AdaptiveIterations(r.view.Zoom); adaptive < maxIter {
		maxIter = adaptive
	}

	start := time.Now()
	grid, smooth, err := r.engine.ComputeSmooth(r.view.Height, r.view.Width, r.view.Bounds(), maxIter)
	if err != nil {
		return nil, nil, err
	}
	elapsed := time.Since(start)

	r.renderCount++
	for _, o := range r.observers {
		o.Observe(grid, maxIter, elapsed)
	}
	return grid, smooth, nil
}

// Render computes the current frame, advances the palette animation and
// colors the result. The common per-frame path of the TUI.
func (r *Renderer) Render(pal *palette.Engine) (*fractal.Bitmap, error) {
	grid, err := r.Generate()
	if err != nil {
		return nil, err
	}
	pal.Tick()
	return pal.Apply(grid), nil
}

// Pan shifts the view by pixel deltas.
func (r *Renderer) Pan(dx, dy int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.view.Pan(dx, dy)
}

// ZoomAt magnifies around a screen pixel.
func (r *Renderer) ZoomAt(screenX, screenY int, factor float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.view.ZoomAt(screenX, screenY, factor)
}

// ZoomCenter magnifies around the middle of the view.
func (r *Renderer) ZoomCenter(factor float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.view.ZoomAt(r.view.Width/2, r.view.Height/2, factor)
}

// SetIterations adjusts the viewport's iteration cap by delta.
func (r *Renderer) SetIterations(delta int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.view.SetIterations(delta)
}

// Reset restores the home view and drops the cached frame.
func (r *Renderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.view.Reset()
	r.cache.Invalidate()
}

// Resize changes the pixel resolution and drops the cached frame.
func (r *Renderer) Resize(width, height int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.view.Resize(width, height); err != nil {
		return err
	}
	r.cache.Invalidate()
	return nil
}

// MoveTo jumps to an absolute position, used by presets.
func (r *Renderer) MoveTo(centerX, centerY, zoom float64, maxIter int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.view.CenterX = centerX
	r.view.CenterY = centerY
	r.view.Zoom = zoom
	if maxIter > 0 {
		r.view.MaxIter = maxIter
		r.view.SetIterations(0)
	}
	r.cache.Invalidate()
}

// Viewport returns a copy of the current navigation state.
func (r *Renderer) Viewport() fractal.Viewport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return *r.view
}

// Info snapshots the rendering state.
func (r *Renderer) Info() EngineInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := r.view.Bounds()
	return EngineInfo{
		CenterX:     r.view.CenterX,
		CenterY:     r.view.CenterY,
		Zoom:        r.view.Zoom,
		XMin:        b.XMin,
		XMax:        b.XMax,
		YMin:        b.YMin,
		YMax:        b.YMax,
		MaxIter:     r.view.MaxIter,
		Width:       r.view.Width,
		Height:      r.view.Height,
		RenderCount: r.renderCount,
		TotalPixels: r.view.Width * r.view.Height,
	}
}
