package fractal

const (
	// MinIter is the floor for the iteration cap.
	MinIter = 50
	// MaxMaxIter is the ceiling for the iteration cap.
	MaxMaxIter = 2000
	// DefaultIter is the iteration cap of a fresh viewport.
	DefaultIter = 100

	// MinZoom and MaxZoom bound the magnification. MaxZoom sits near the
	// limit of float64 precision; beyond it the per-pixel step underflows
	// and the image degrades, so navigation clamps rather than deepens.
	MinZoom = 0.1
	MaxZoom = 1e15

	// HomeCenterX, HomeCenterY and HomeZoom frame the full set.
	HomeCenterX = -0.5
	HomeCenterY = 0.0
	HomeZoom    = 1.0

	// BaseViewWidth is the plane width shown at zoom 1.
	BaseViewWidth = 3.0
)

// Bounds is the rectangle of the complex plane mapped onto the pixel grid.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Width returns the plane width of the bounds.
func (b Bounds) Width() float64 { return b.XMax - b.XMin }

// Height returns the plane height of the bounds.
func (b Bounds) Height() float64 { return b.YMax - b.YMin }

// RenderParams identifies a rendered frame. Two params describe the same
// frame iff all fields compare equal; floats are compared exactly since
// any viewport change must invalidate the frame.
type RenderParams struct {
	CenterX float64
	CenterY float64
	Zoom    float64
	Width   int
	Height  int
	MaxIter int
}

// Grid holds escape-time counts in row-major order, one int32 per pixel.
// A count equal to MaxIter marks a point assumed to belong to the set;
// anything smaller is the iteration index at which the orbit escaped.
// Grids are immutable once produced by the iteration engine.
type Grid struct {
	Width   int
	Height  int
	MaxIter int
	Counts  []int32
}

// NewGrid allocates a zeroed grid.
func NewGrid(width, height, maxIter int) *Grid {
	return &Grid{
		Width:   width,
		Height:  height,
		MaxIter: maxIter,
		Counts:  make([]int32, width*height),
	}
}

// At returns the count at row i, column j.
func (g *Grid) At(i, j int) int32 { return g.Counts[i*g.Width+j] }

// Set stores a count at row i, column j.
func (g *Grid) Set(i, j int, v int32) { g.Counts[i*g.Width+j] = v }

// Max returns the largest count present in the grid.
func (g *Grid) Max() int32 {
	var max int32
	for _, v := range g.Counts {
		if v > max {
			max = v
		}
	}
	return max
}

// InSetCount returns how many pixels reached the iteration cap.
func (g *Grid) InSetCount() int {
	n := 0
	limit := int32(g.MaxIter)
	for _, v := range g.Counts {
		if v >= limit {
			n++
		}
	}
	return n
}

// Bitmap is a height x width x 3 byte image, RGB channel order.
type Bitmap struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewBitmap allocates a black bitmap.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// SetRGB stores a pixel at row i, column j.
func (b *Bitmap) SetRGB(i, j int, r, g, bl uint8) {
	o := (i*b.Width + j) * 3
	b.Pix[o] = r
	b.Pix[o+1] = g
	b.Pix[o+2] = bl
}

// RGBAt returns the pixel at row i, column j.
func (b *Bitmap) RGBAt(i, j int) (r, g, bl uint8) {
	o := (i*b.Width + j) * 3
	return b.Pix[o], b.Pix[o+1], b.Pix[o+2]
}
