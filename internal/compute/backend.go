package compute

import "github.com/san-kum/mandelscope/internal/fractal"

// Backend computes escape-time counts for every pixel of a grid.
// counts must hold width*height entries. If smooth is non-nil it must be
// the same length and receives the continuous escape estimate for each
// pixel (counts stay the primary contract; smooth is auxiliary).
type Backend interface {
	Name() string
	Available() bool
	Escape(b fractal.Bounds, width, height, maxIter int, counts []int32, smooth []float64)
	Cleanup()
}

var activeBackend Backend

func init() {
	activeBackend = AutoSelectBackend()
}

func SetBackend(b Backend) {
	if activeBackend != nil {
		activeBackend.Cleanup()
	}
	activeBackend = b
}

func GetBackend() Backend {
	return activeBackend
}

func AutoSelectBackend() Backend {
	return NewCPUBackend()
}
