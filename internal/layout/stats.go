package layout

// PassStats describes a single Compute call.
type PassStats struct {
	Queued       int // entries in the dirty queue, stale ones included
	StaleSkipped int // queue entries whose handle no longer resolved
	Roots        int // roots visited
	Detached     int // dirty nodes laid out in place because no ancestor reached them
	Solved       int // nodes the flex solver actually recomputed
	CacheHits    uint64
	CacheMisses  uint64
}

// HitRate returns CacheHits / (CacheHits + CacheMisses), or 0 with no lookups.
func (p PassStats) HitRate() float32 {
	total := p.CacheHits + p.CacheMisses
	if total == 0 {
		return 0
	}
	return float32(float64(p.CacheHits) / float64(total))
}

// Stats accumulates PassStats over the engine's lifetime.
type Stats struct {
	Computes     uint64
	Solved       uint64
	StaleSkipped uint64
	CacheHits    uint64
	CacheMisses  uint64

	// Last is the most recent Compute.
	Last PassStats
}

// HitRate returns the lifetime cache hit rate, or 0 with no lookups.
func (s Stats) HitRate() float32 {
	return PassStats{CacheHits: s.CacheHits, CacheMisses: s.CacheMisses}.HitRate()
}

func (s *Stats) record(p PassStats) {
	s.Computes++
	s.Solved += uint64(p.Solved)
	s.StaleSkipped += uint64(p.StaleSkipped)
	s.CacheHits += p.CacheHits
	s.CacheMisses += p.CacheMisses
	s.Last = p
}
