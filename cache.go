package paint

// pixelCache keeps the rasterized pixels of each committed shape, indexed
// in commit order. It must mirror Scene.committed exactly.
type pixelCache struct {
	entries []pixelList
}

// push rasterizes s and appends its pixels.
func (c *pixelCache) push(s Shape) {
	var l pixelList
	RenderShape(&l, s)
	c.entries = append(c.entries, l)
}

// pop drops the most recent entry.
func (c *pixelCache) pop() {
	if n := len(c.entries); n > 0 {
		c.entries[n-1] = nil
		c.entries = c.entries[:n-1]
	}
}

func (c *pixelCache) reset() {
	clear(c.entries)
	c.entries = c.entries[:0]
}

// replay plots the cached pixels of entry i into sink.
func (c *pixelCache) replay(i int, sink PixelSink) {
	for _, p := range c.entries[i] {
		sink.Plot(p.X, p.Y)
	}
}

// pixels returns the total number of cached pixels.
func (c *pixelCache) pixels() int {
	n := 0
	for _, l := range c.entries {
		n += len(l)
	}
	return n
}
