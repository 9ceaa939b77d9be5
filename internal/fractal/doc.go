// Package fractal provides the core types for escape-time fractal
// rendering of the Mandelbrot set:
//
//   - [Viewport]: navigable view state (center, zoom, resolution)
//   - [Bounds]: the rectangle of the complex plane under the viewport
//   - [RenderParams]: the exact-match cache key for a rendered frame
//   - [Grid]: escape-time counts produced by the iteration engine
//   - [Bitmap]: packed RGB output produced by the palette engine
//
// # Example
//
//	view := fractal.NewViewport(800, 600)
//	view.ZoomAt(400, 300, 2.0)
//	b := view.Bounds()
//
// # Thread Safety
//
// Viewport instances are NOT thread-safe. The render.Renderer type
// owns a Viewport and serializes navigation against rendering.
package fractal
