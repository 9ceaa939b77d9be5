package palette

// cacheKey identifies one memoized color. The bucket is the animation
// time quantized to hundredths, so entries stay valid within a single
// animation tick and lapse naturally across frames.
type cacheKey struct {
	value  int32
	max    int32
	id     ID
	bucket int
}

// colorCache memoizes value -> color lookups. Once full it simply stops
// absorbing new entries; there is no eviction. A full clear happens on
// every palette switch. Callers must hold the engine lock.
type colorCache struct {
	capacity int
	table    map[cacheKey]RGB
}

func newColorCache(capacity int) *colorCache {
	return &colorCache{
		capacity: capacity,
		table:    make(map[cacheKey]RGB, capacity),
	}
}

func (c *colorCache) get(k cacheKey) (RGB, bool) {
	rgb, ok := c.table[k]
	return rgb, ok
}

func (c *colorCache) put(k cacheKey, rgb RGB) {
	if len(c.table) < c.capacity {
		c.table[k] = rgb
	}
}

func (c *colorCache) clear() {
	c.table = make(map[cacheKey]RGB, c.capacity)
}

func (c *colorCache) size() int { return len(c.table) }
