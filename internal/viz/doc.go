// Package viz is the interactive terminal explorer.
//
// The bubbletea model owns a renderer and a palette engine. Renders run
// as async commands; while one is in flight further requests collapse
// into a single pending flag rather than queueing, so holding a key
// down never builds a backlog. Animation recoloring rides the cached
// grid, which makes the ~30fps tick cheap between navigation events.
//
// Frames draw two pixel rows per terminal cell using the upper half
// block with truecolor foreground and background.
package viz
