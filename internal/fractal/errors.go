package fractal

import "errors"

// Domain errors for rendering operations.
var (
	// ErrBadDimensions indicates a non-positive width or height. This is a
	// caller contract violation and fails fast instead of being clamped.
	ErrBadDimensions = errors.New("fractal: width and height must be positive")

	// ErrBadIterations indicates a non-positive iteration cap.
	ErrBadIterations = errors.New("fractal: iteration cap must be positive")
)
