package render

import (
	"sync"

	"github.com/san-kum/mandelscope/internal/fractal"
)

// Cache memoizes the single most recent frame. Interactive navigation
// only ever revisits the immediately previous parameters (animation
// recoloring, redraws between keystrokes), so one slot captures nearly
// all hits without retention logic.
type Cache struct {
	mu     sync.Mutex
	valid  bool
	params fractal.RenderParams
	grid   *fractal.Grid
}

// Get returns the cached grid when params match the stored frame exactly.
func (c *Cache) Get(params fractal.RenderParams) (*fractal.Grid, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid || c.params != params {
		return nil, false
	}
	return c.grid, true
}

// Put replaces the stored frame.
func (c *Cache) Put(params fractal.RenderParams, grid *fractal.Grid) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = true
	c.params = params
	c.grid = grid
}

// Invalidate drops the stored frame.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
	c.grid = nil
}
