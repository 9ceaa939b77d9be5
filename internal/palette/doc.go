// Package palette converts escape-time grids into RGB bitmaps.
//
// Ten fixed coloring algorithms are dispatched by [ID]; each is a pure
// function of the normalized escape value, an intensity term, and the
// engine's animation phase. Points that reached the iteration cap are
// always pure black regardless of palette.
//
// [Engine] owns the palette selection, the animation phase, and a
// bounded per-frame color cache. It is safe for concurrent use.
package palette
