package layout

// CacheEntry is the layout cache record kept for one node. An entry answers
// a lookup only while Valid and while the lookup's available size and style
// version equal the ones recorded here.
type CacheEntry struct {
	AvailableWidth  float32
	AvailableHeight float32
	StyleVersion    uint64
	ComputedWidth   float32
	ComputedHeight  float32
	Valid           bool
}

// layoutCache holds exactly one entry per slot. There is no eviction: a
// stale entry is simply overwritten by the next store.
type layoutCache struct {
	entries []CacheEntry
	hits    uint64
	misses  uint64
}

func newLayoutCache(capacity int) layoutCache {
	return layoutCache{entries: make([]CacheEntry, 0, capacity)}
}

func (c *layoutCache) grow() {
	c.entries = append(c.entries, CacheEntry{})
}

// lookup returns the cached size if all three keys match.
func (c *layoutCache) lookup(idx uint32, availW, availH float32, version uint64) (Size, bool) {
	e := &c.entries[idx]
	if e.Valid && e.AvailableWidth == availW && e.AvailableHeight == availH && e.StyleVersion == version {
		c.hits++
		return Size{Width: e.ComputedWidth, Height: e.ComputedHeight}, true
	}
	c.misses++
	return Size{}, false
}

func (c *layoutCache) store(idx uint32, availW, availH float32, version uint64, size Size) {
	c.entries[idx] = CacheEntry{
		AvailableWidth:  availW,
		AvailableHeight: availH,
		StyleVersion:    version,
		ComputedWidth:   size.Width,
		ComputedHeight:  size.Height,
		Valid:           true,
	}
}

// invalidate forces the next lookup for idx to miss. Used when a node is
// marked dirty for reasons the key cannot see (a child changed, content
// was re-measured, the node moved).
func (c *layoutCache) invalidate(idx uint32) {
	c.entries[idx].Valid = false
}

// counters returns cumulative hit and miss counts.
func (c *layoutCache) counters() (hits, misses uint64) {
	return c.hits, c.misses
}
