package fractal

import "math"

// Viewport holds the navigation state of the explorer: where the view is
// centered, how far it is magnified, and the pixel resolution it maps to.
// It is mutated only by the navigation commands below.
type Viewport struct {
	CenterX float64
	CenterY float64
	Zoom    float64
	Width   int
	Height  int
	MaxIter int
}

// NewViewport returns a viewport framing the full set at the given
// resolution.
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		CenterX: HomeCenterX,
		CenterY: HomeCenterY,
		Zoom:    HomeZoom,
		Width:   width,
		Height:  height,
		MaxIter: DefaultIter,
	}
}

// AspectRatio returns width/height.
func (v *Viewport) AspectRatio() float64 {
	return float64(v.Width) / float64(v.Height)
}

// Bounds derives the plane rectangle under the viewport. The view is
// BaseViewWidth/Zoom plane units wide, with height following the aspect
// ratio, centered on (CenterX, CenterY).
func (v *Viewport) Bounds() Bounds {
	viewWidth := BaseViewWidth / v.Zoom
	viewHeight := viewWidth / v.AspectRatio()
	return Bounds{
		XMin: v.CenterX - viewWidth/2,
		XMax: v.CenterX + viewWidth/2,
		YMin: v.CenterY - viewHeight/2,
		YMax: v.CenterY + viewHeight/2,
	}
}

// Params returns the cache key describing the frame this viewport renders.
func (v *Viewport) Params() RenderParams {
	return RenderParams{
		CenterX: v.CenterX,
		CenterY: v.CenterY,
		Zoom:    v.Zoom,
		Width:   v.Width,
		Height:  v.Height,
		MaxIter: v.MaxIter,
	}
}

// AdaptiveIterations derives an iteration cap from the zoom level so that
// deeper zooms get proportionally more detail. Monotonic non-decreasing
// in zoom, clamped to [MinIter, MaxMaxIter].
func AdaptiveIterations(zoom float64) int {
	n := int(MinIter + math.Log10(zoom+1)*30)
	if n < MinIter {
		n = MinIter
	}
	if n > MaxMaxIter {
		n = MaxMaxIter
	}
	return n
}

// ZoomAt magnifies by factor around the given screen pixel. The viewport
// re-centers on the clicked plane point before scaling so that repeated
// zooms converge on it instead of drifting. Zoom is clamped to
// [MinZoom, MaxZoom]; the command never fails.
func (v *Viewport) ZoomAt(screenX, screenY int, factor float64) {
	b := v.Bounds()
	v.CenterX = b.XMin + b.Width()*float64(screenX)/float64(v.Width)
	v.CenterY = b.YMin + b.Height()*float64(screenY)/float64(v.Height)
	v.Zoom = clampZoom(v.Zoom * factor)
}

// Pan shifts the view by pixel deltas, converted to plane units through
// the current bounds.
func (v *Viewport) Pan(dx, dy int) {
	b := v.Bounds()
	v.CenterX += float64(dx) * b.Width() / float64(v.Width)
	v.CenterY += float64(dy) * b.Height() / float64(v.Height)
}

// Resize updates the pixel resolution and therefore the aspect ratio.
func (v *Viewport) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrBadDimensions
	}
	v.Width = width
	v.Height = height
	return nil
}

// Reset restores the home view and the default iteration cap.
func (v *Viewport) Reset() {
	v.CenterX = HomeCenterX
	v.CenterY = HomeCenterY
	v.Zoom = HomeZoom
	v.MaxIter = DefaultIter
}

// SetIterations adjusts the iteration cap by delta, clamped to
// [MinIter, MaxMaxIter]. Out-of-range requests settle on the bound.
func (v *Viewport) SetIterations(delta int) {
	n := v.MaxIter + delta
	if n < MinIter {
		n = MinIter
	}
	if n > MaxMaxIter {
		n = MaxMaxIter
	}
	v.MaxIter = n
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}
