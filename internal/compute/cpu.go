package compute

import (
	"math"
	"runtime"
	"sync"

	"github.com/san-kum/mandelscope/internal/fractal"
)

// Grids below this pixel count are computed serially; goroutine overhead
// dominates the arithmetic for tiny frames.
const serialThreshold = 4096

type CPUBackend struct {
	workers int
}

func NewCPUBackend() *CPUBackend {
	return &CPUBackend{
		workers: runtime.NumCPU(),
	}
}

// NewCPUBackendWithWorkers pins the worker count, mainly for tests and
// the --workers flag.
func NewCPUBackendWithWorkers(n int) *CPUBackend {
	if n < 1 {
		n = 1
	}
	return &CPUBackend{workers: n}
}

func (c *CPUBackend) Name() string    { return "cpu" }
func (c *CPUBackend) Available() bool { return true }
func (c *CPUBackend) Cleanup()        {}
func (c *CPUBackend) Workers() int    { return c.workers }

func (c *CPUBackend) Escape(b fractal.Bounds, width, height, maxIter int, counts []int32, smooth []float64) {
	if width*height <= serialThreshold || c.workers <= 1 {
		c.escapeRows(b, width, height, maxIter, counts, smooth, 0, height)
		return
	}

	workers := c.workers
	if height < workers {
		workers = height
	}
	chunkSize := (height + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > height {
			end = height
		}

		go func(s, e int) {
			defer wg.Done()
			c.escapeRows(b, width, height, maxIter, counts, smooth, s, e)
		}(start, end)
	}

	wg.Wait()
}

// escapeRows fills rows [rowStart, rowEnd). Each pixel depends only on
// its own coordinate, so workers share no mutable state.
func (c *CPUBackend) escapeRows(b fractal.Bounds, width, height, maxIter int, counts []int32, smooth []float64, rowStart, rowEnd int) {
	// A single-pixel axis collapses to the lower bound instead of
	// interpolating over width-1 = 0.
	dx, dy := 0.0, 0.0
	if width > 1 {
		dx = b.Width() / float64(width-1)
	}
	if height > 1 {
		dy = b.Height() / float64(height-1)
	}

	for i := rowStart; i < rowEnd; i++ {
		ci := b.YMin + dy*float64(i)
		row := i * width
		for j := 0; j < width; j++ {
			cr := b.XMin + dx*float64(j)
			n, zr, zi := escapePoint(cr, ci, maxIter)
			counts[row+j] = n
			if smooth != nil {
				smooth[row+j] = smoothCount(n, zr, zi, maxIter)
			}
		}
	}
}

// escapePoint iterates z <- z*z + c until |z| exceeds the divergence
// bound 2, returning the escape index and the final z. A point whose
// orbit collapses toward the origin after the 20th iteration is treated
// as non-divergent and assigned maxIter outright. The shortcut is a
// heuristic, not a proven periodicity test, and can misclassify very
// slowly escaping points.
func escapePoint(cr, ci float64, maxIter int) (n int32, zr, zi float64) {
	for i := 0; i < maxIter; i++ {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		m := zr*zr + zi*zi
		if m > 4.0 {
			return int32(i), zr, zi
		}
		if i > 20 && m < 1e-20 {
			return int32(maxIter), zr, zi
		}
	}
	return int32(maxIter), zr, zi
}

// smoothCount is the continuous escape estimate n + 1 - log2(log2(|z|)),
// used by anti-banded coloring. Non-escaped points keep their integer
// count; non-finite intermediate values fall back to the integer count.
func smoothCount(n int32, zr, zi float64, maxIter int) float64 {
	if int(n) >= maxIter {
		return float64(n)
	}
	mag := math.Sqrt(zr*zr + zi*zi)
	if mag <= 1.0 {
		return float64(n)
	}
	s := float64(n) + 1 - math.Log2(math.Log2(mag))
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return float64(n)
	}
	return s
}
