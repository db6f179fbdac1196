package layout

import (
	"fmt"
	"slices"

	"fortio.org/safecast"

	"github.com/grindlemire/go-flex/internal/debug"
)

// Engine owns a forest of layout nodes and computes their rectangles.
//
// An Engine is not safe for concurrent use: all mutations and Compute must
// come from one goroutine at a time. Independent engines may be used from
// different goroutines.
type Engine struct {
	cfg Config

	store   nodeStore
	styles  styleTable
	dirty   dirtyQueue
	cache   layoutCache
	rects   rectStore
	clamp   clamper
	measure MeasureFunc

	// Per-slot pass stamps: visited is set when the solver reaches a node
	// during a pass, solved when it actually recomputes the node.
	pass    uint64
	visited []uint64
	solved  []uint64

	intrinsic []intrinsicEntry

	stats        Stats
	solvedInPass int
	scrap        []uint32
}

// New creates an Engine.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{cfg: DefaultConfig()}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}
	if e.cfg.DebugLog != "" {
		if err := debug.Init(e.cfg.DebugLog); err != nil {
			return nil, err
		}
	}

	n := e.cfg.InitialCapacity
	e.store = newNodeStore(n, e.cfg.FixedCapacity, e.cfg.MaxNodes)
	e.styles = newStyleTable(n)
	e.dirty = newDirtyQueue(n)
	e.cache = newLayoutCache(n)
	e.rects = newRectStore(n)
	e.clamp = newClamper(e.cfg.ClampLanes)
	e.visited = make([]uint64, 0, n)
	e.solved = make([]uint64, 0, n)
	e.intrinsic = make([]intrinsicEntry, 0, n)
	return e, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// ClampLanes returns the batch width used by the constraint clamper.
func (e *Engine) ClampLanes() int {
	return e.clamp.lanes
}

// --- Lifecycle ---

// AddNode creates a node with the given style as the last child of parent,
// or as a new root when parent is NoHandle. The node starts dirty.
func (e *Engine) AddNode(parent Handle, style Style) (Handle, error) {
	p := uint32(nilIndex)
	if parent != NoHandle {
		var err error
		if p, err = e.store.resolve(parent); err != nil {
			return NoHandle, fmt.Errorf("add node: %w", err)
		}
	}

	idx, grew, err := e.store.alloc()
	if err != nil {
		return NoHandle, fmt.Errorf("add node: %w", err)
	}
	if grew {
		e.growTables()
		if e.store.slots() > e.store.capacity {
			debug.Log("arena grew past preallocation", "slots", e.store.slots())
		}
	}

	e.styles.set(idx, style)
	e.store.link(idx, p)
	e.markDirtyIndex(idx)
	return e.store.handleOf(idx), nil
}

func (e *Engine) growTables() {
	e.styles.grow()
	e.cache.grow()
	e.rects.grow()
	e.visited = append(e.visited, 0)
	e.solved = append(e.solved, 0)
	e.intrinsic = append(e.intrinsic, intrinsicEntry{})
}

// RemoveNode removes h and its entire subtree. Every freed handle becomes
// invalid; the former parent is marked dirty.
func (e *Engine) RemoveNode(h Handle) error {
	idx, err := e.store.resolve(h)
	if err != nil {
		return fmt.Errorf("remove node: %w", err)
	}

	parent := e.store.parent[idx]
	if parent != nilIndex {
		e.markDirtyIndex(parent)
	}
	e.store.unlink(idx)

	e.scrap = e.store.subtree(e.scrap[:0], idx)
	for _, n := range e.scrap {
		e.dirty.forget(n)
		e.cache.invalidate(n)
		e.rects.reset(n)
		e.styles.clear(n)
		e.intrinsic[n] = intrinsicEntry{}
		e.store.firstChild[n] = nilIndex
		e.store.lastChild[n] = nilIndex
		e.store.release(n)
	}
	return nil
}

// Reparent moves h (with its subtree) to the end of newParent's child list,
// or makes it a root when newParent is NoHandle. Both the old and the new
// parent are marked dirty. Moving a node under itself or one of its
// descendants fails with ErrInvalidNode.
func (e *Engine) Reparent(h, newParent Handle) error {
	idx, err := e.store.resolve(h)
	if err != nil {
		return fmt.Errorf("reparent: %w", err)
	}
	p := uint32(nilIndex)
	if newParent != NoHandle {
		if p, err = e.store.resolve(newParent); err != nil {
			return fmt.Errorf("reparent: new parent: %w", err)
		}
		if e.store.isAncestor(idx, p) {
			return fmt.Errorf("reparent: %w: %v under %v would create a cycle", ErrInvalidNode, h, newParent)
		}
	}

	if old := e.store.parent[idx]; old != nilIndex {
		e.markDirtyIndex(old)
	}
	e.store.unlink(idx)
	e.store.link(idx, p)

	// h may already be dirty, which stops propagation before it reaches the
	// new ancestors, so mark those explicitly.
	e.markDirtyIndex(idx)
	if p != nilIndex {
		e.markDirtyIndex(p)
	}
	return nil
}

// SetStyle replaces the style of h, bumps its style version and marks it
// dirty. NaN, infinite or negative dimensions are stored as auto; NaN or
// negative padding, gap and flex factors are stored as 0.
func (e *Engine) SetStyle(h Handle, style Style) error {
	idx, err := e.store.resolve(h)
	if err != nil {
		return fmt.Errorf("set style: %w", err)
	}
	e.styles.set(idx, style)
	e.markDirtyIndex(idx)
	return nil
}

// SetMeasure sets the measure function used for h when it is an auto-sized
// leaf. A nil fn falls back to the engine default. The node is marked dirty.
func (e *Engine) SetMeasure(h Handle, fn MeasureFunc) error {
	idx, err := e.store.resolve(h)
	if err != nil {
		return fmt.Errorf("set measure: %w", err)
	}
	e.styles.measure[idx] = fn
	e.markDirtyIndex(idx)
	return nil
}

// MarkDirty flags h and its ancestors for layout, e.g. after the content a
// measure function reports has changed.
func (e *Engine) MarkDirty(h Handle) error {
	idx, err := e.store.resolve(h)
	if err != nil {
		return fmt.Errorf("mark dirty: %w", err)
	}
	e.markDirtyIndex(idx)
	return nil
}

// markDirtyIndex queues idx and walks up its ancestors, stopping at the
// first one that is already queued: that ancestor's own ancestors are
// queued too, so the walk is bounded by depth, not tree size.
func (e *Engine) markDirtyIndex(idx uint32) {
	for n := idx; n != nilIndex; n = e.store.parent[n] {
		if !e.dirty.push(n, e.store.handleOf(n)) {
			return
		}
		e.cache.invalidate(n)
		e.intrinsic[n] = intrinsicEntry{}
	}
}

// --- Queries ---

// Valid reports whether h refers to a live node.
func (e *Engine) Valid(h Handle) bool {
	_, err := e.store.resolve(h)
	return err == nil
}

// Parent returns the parent of h, or NoHandle for a root.
func (e *Engine) Parent(h Handle) (Handle, error) {
	idx, err := e.store.resolve(h)
	if err != nil {
		return NoHandle, err
	}
	return e.store.handleOf(e.store.parent[idx]), nil
}

// FirstChild returns the first child of h, or NoHandle for a leaf.
func (e *Engine) FirstChild(h Handle) (Handle, error) {
	idx, err := e.store.resolve(h)
	if err != nil {
		return NoHandle, err
	}
	return e.store.handleOf(e.store.firstChild[idx]), nil
}

// NextSibling returns the sibling after h, or NoHandle for the last child.
func (e *Engine) NextSibling(h Handle) (Handle, error) {
	idx, err := e.store.resolve(h)
	if err != nil {
		return NoHandle, err
	}
	return e.store.handleOf(e.store.nextSibling[idx]), nil
}

// Children returns the children of h in order.
func (e *Engine) Children(h Handle) ([]Handle, error) {
	idx, err := e.store.resolve(h)
	if err != nil {
		return nil, err
	}
	var out []Handle
	for c := e.store.firstChild[idx]; c != nilIndex; c = e.store.nextSibling[c] {
		out = append(out, e.store.handleOf(c))
	}
	return out, nil
}

// ChildCount returns the number of direct children of h.
func (e *Engine) ChildCount(h Handle) (int, error) {
	idx, err := e.store.resolve(h)
	if err != nil {
		return 0, err
	}
	return e.store.childCount(idx), nil
}

// Roots returns every root node in creation order.
func (e *Engine) Roots() []Handle {
	var out []Handle
	for r := e.store.firstRoot; r != nilIndex; r = e.store.nextSibling[r] {
		out = append(out, e.store.handleOf(r))
	}
	return out
}

// Style returns the stored (sanitized) style of h.
func (e *Engine) Style(h Handle) (Style, error) {
	idx, err := e.store.resolve(h)
	if err != nil {
		return Style{}, err
	}
	return e.styles.styles[idx], nil
}

// StyleVersion returns how many times the style of h's slot has been set.
func (e *Engine) StyleVersion(h Handle) (uint64, error) {
	idx, err := e.store.resolve(h)
	if err != nil {
		return 0, err
	}
	return e.styles.versions[idx], nil
}

// IsDirty reports whether h is waiting for the next Compute.
func (e *Engine) IsDirty(h Handle) (bool, error) {
	idx, err := e.store.resolve(h)
	if err != nil {
		return false, err
	}
	return e.dirty.contains(idx), nil
}

// GetRect returns the computed rect of h relative to its parent's
// border-box origin. Roots are placed at (0, 0).
func (e *Engine) GetRect(h Handle) (Rect, error) {
	idx, err := e.store.resolve(h)
	if err != nil {
		return Rect{}, err
	}
	return e.rects.get(idx), nil
}

// ContentRect returns the rect of h minus its padding, in the same
// coordinate space as GetRect.
func (e *Engine) ContentRect(h Handle) (Rect, error) {
	idx, err := e.store.resolve(h)
	if err != nil {
		return Rect{}, err
	}
	return e.rects.get(idx).Inset(e.styles.styles[idx].Padding), nil
}

// AbsoluteRect returns the rect of h translated into its root's coordinate
// space.
func (e *Engine) AbsoluteRect(h Handle) (Rect, error) {
	idx, err := e.store.resolve(h)
	if err != nil {
		return Rect{}, err
	}
	r := e.rects.get(idx)
	for p := e.store.parent[idx]; p != nilIndex; p = e.store.parent[p] {
		r = r.Translate(e.rects.x[p], e.rects.y[p])
	}
	return r, nil
}

// CacheEntry returns the layout cache record of h.
func (e *Engine) CacheEntry(h Handle) (CacheEntry, error) {
	idx, err := e.store.resolve(h)
	if err != nil {
		return CacheEntry{}, err
	}
	return e.cache.entries[idx], nil
}

// NodeCount returns the number of live nodes.
func (e *Engine) NodeCount() uint32 {
	n, err := safecast.Conv[uint32](e.store.count)
	if err != nil {
		panic(fmt.Sprintf("layout: node count %d overflows uint32", e.store.count))
	}
	return n
}

// DirtyCount returns the number of nodes waiting for the next Compute.
func (e *Engine) DirtyCount() uint32 {
	n, err := safecast.Conv[uint32](e.dirty.len())
	if err != nil {
		panic(fmt.Sprintf("layout: dirty count %d overflows uint32", e.dirty.len()))
	}
	return n
}

// CacheHitRate returns the fraction of cache lookups that hit during the
// most recent Compute, or 0 if that Compute performed no lookups.
func (e *Engine) CacheHitRate() float32 {
	return e.stats.Last.HitRate()
}

// Stats returns cumulative and last-pass counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// --- Compute ---

// Compute lays out every root against the given available size and
// recomputes the nodes that are dirty or whose available size changed.
// Stale handles left in the dirty queue are skipped. With nothing dirty
// and an unchanged available size, Compute only confirms each root's
// cache entry.
func (e *Engine) Compute(availableWidth, availableHeight float32) error {
	availableWidth = nonNegative(availableWidth)
	availableHeight = nonNegative(availableHeight)

	e.pass++
	e.solvedInPass = 0
	hits, misses := e.cache.counters()
	pass := PassStats{Queued: len(e.dirty.entries())}

	queued := e.drainDirty(&pass)

	for r := e.store.firstRoot; r != nilIndex; r = e.store.nextSibling[r] {
		e.layoutRoot(r, availableWidth, availableHeight)
		pass.Roots++
	}

	// Every dirty node is normally reached from its dirty root above. A node
	// whose chain was cut short keeps its previous size and is laid out in
	// place, ancestors first.
	for _, idx := range queued {
		if e.visited[idx] == e.pass {
			continue
		}
		r := e.rects.get(idx)
		e.layoutNode(idx, r.Width, r.Height)
		pass.Detached++
	}

	e.dirty.reset()

	h2, m2 := e.cache.counters()
	pass.CacheHits = h2 - hits
	pass.CacheMisses = m2 - misses
	pass.Solved = e.solvedInPass
	e.stats.record(pass)

	debug.Log("compute",
		"pass", e.pass, "width", availableWidth, "height", availableHeight,
		"queued", pass.Queued, "stale", pass.StaleSkipped, "solved", pass.Solved,
		"hits", pass.CacheHits, "misses", pass.CacheMisses)
	return nil
}

// drainDirty returns the live queued slots ordered by depth, ancestors
// first, keeping insertion order among equal depths.
func (e *Engine) drainDirty(pass *PassStats) []uint32 {
	type entry struct {
		idx   uint32
		depth int
	}
	entries := make([]entry, 0, len(e.dirty.entries()))
	for _, h := range e.dirty.entries() {
		idx, err := e.store.resolve(h)
		if err != nil || !e.dirty.contains(idx) {
			pass.StaleSkipped++
			debug.Log("skipping stale dirty entry", "handle", h)
			continue
		}
		entries = append(entries, entry{idx: idx, depth: e.store.depth(idx)})
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		return a.depth - b.depth
	})

	out := make([]uint32, len(entries))
	for i, en := range entries {
		out[i] = en.idx
	}
	return out
}
