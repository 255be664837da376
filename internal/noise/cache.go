package noise

// Cache remembers the last position it was sampled at. A node consumed by
// several downstream modules is evaluated once per position.
type Cache struct {
	Source Source

	valid   bool
	x, y, z float64
	value   float64
}

// NewCache wraps src in a single-entry memo.
func NewCache(src Source) *Cache {
	return &Cache{Source: src}
}

func (c *Cache) Sample(x, y, z float64) float64 {
	if c.valid && c.x == x && c.y == y && c.z == z {
		return c.value
	}
	c.value = c.Source.Sample(x, y, z)
	c.x, c.y, c.z = x, y, z
	c.valid = true
	return c.value
}
