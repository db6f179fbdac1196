package layout

import (
	"fmt"
	"math"

	"fortio.org/safecast"
)

// nilIndex marks an absent parent, child or sibling in the topology arrays.
const nilIndex = math.MaxUint32

// maxSlots is the largest number of slots a handle can address.
const maxSlots = nilIndex

// nodeStore is the arena that owns tree topology. Every per-node table in the
// engine is indexed by the same slot index. Siblings are doubly linked so a
// node can be unlinked in O(1); roots are chained through the same sibling
// arrays, headed by firstRoot.
type nodeStore struct {
	parent      []uint32
	firstChild  []uint32
	lastChild   []uint32
	nextSibling []uint32
	prevSibling []uint32
	generation  []uint32
	live        []bool

	free []uint32 // LIFO of released slots

	firstRoot, lastRoot uint32
	count               int

	capacity int  // preallocated slots
	fixed    bool // never grow past capacity
	maxNodes int  // growth ceiling when not fixed; 0 = handle index space
}

func newNodeStore(capacity int, fixed bool, maxNodes int) nodeStore {
	return nodeStore{
		parent:      make([]uint32, 0, capacity),
		firstChild:  make([]uint32, 0, capacity),
		lastChild:   make([]uint32, 0, capacity),
		nextSibling: make([]uint32, 0, capacity),
		prevSibling: make([]uint32, 0, capacity),
		generation:  make([]uint32, 0, capacity),
		live:        make([]bool, 0, capacity),
		firstRoot:   nilIndex,
		lastRoot:    nilIndex,
		capacity:    capacity,
		fixed:       fixed,
		maxNodes:    maxNodes,
	}
}

// slots returns the number of slots ever allocated, live or free.
func (s *nodeStore) slots() int {
	return len(s.live)
}

// alloc claims a slot, reusing the most recently released one if any.
// grew reports whether a brand new slot was appended, in which case the
// caller must extend its own per-node tables.
func (s *nodeStore) alloc() (idx uint32, grew bool, err error) {
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
		s.activate(idx)
		return idx, false, nil
	}

	next := len(s.live)
	switch {
	case s.fixed && next >= s.capacity:
		return 0, false, fmt.Errorf("%w: all %d slots in use", ErrCapacityExceeded, s.capacity)
	case s.maxNodes > 0 && next >= s.maxNodes:
		return 0, false, fmt.Errorf("%w: arena reached max_nodes=%d", ErrOutOfMemory, s.maxNodes)
	}
	idx, err = safecast.Conv[uint32](next)
	if err != nil || idx >= maxSlots {
		return 0, false, fmt.Errorf("%w: handle index space exhausted", ErrOutOfMemory)
	}

	s.parent = append(s.parent, nilIndex)
	s.firstChild = append(s.firstChild, nilIndex)
	s.lastChild = append(s.lastChild, nilIndex)
	s.nextSibling = append(s.nextSibling, nilIndex)
	s.prevSibling = append(s.prevSibling, nilIndex)
	s.generation = append(s.generation, 1)
	s.live = append(s.live, false)
	s.activate(idx)
	return idx, true, nil
}

func (s *nodeStore) activate(idx uint32) {
	s.parent[idx] = nilIndex
	s.firstChild[idx] = nilIndex
	s.lastChild[idx] = nilIndex
	s.nextSibling[idx] = nilIndex
	s.prevSibling[idx] = nilIndex
	s.live[idx] = true
	s.count++
}

// release returns an unlinked slot to the free list and bumps its
// generation so outstanding handles stop resolving.
func (s *nodeStore) release(idx uint32) {
	s.live[idx] = false
	s.generation[idx]++
	if s.generation[idx] == 0 {
		s.generation[idx] = 1
	}
	s.free = append(s.free, idx)
	s.count--
}

// resolve maps a handle to its slot, failing for stale or unknown handles.
func (s *nodeStore) resolve(h Handle) (uint32, error) {
	if h == NoHandle {
		return 0, fmt.Errorf("%w: no handle", ErrInvalidNode)
	}
	idx := h.index()
	if int64(idx) >= int64(len(s.live)) || !s.live[idx] || s.generation[idx] != h.generation() {
		return 0, fmt.Errorf("%w: %v", ErrInvalidNode, h)
	}
	return idx, nil
}

// handleOf returns the current handle for a slot, or NoHandle for nilIndex.
func (s *nodeStore) handleOf(idx uint32) Handle {
	if idx == nilIndex {
		return NoHandle
	}
	return makeHandle(idx, s.generation[idx])
}

// link appends idx to parent's child list, or to the root list when parent
// is nilIndex. idx must be unlinked.
func (s *nodeStore) link(idx, parent uint32) {
	s.parent[idx] = parent
	s.nextSibling[idx] = nilIndex

	head, tail := &s.firstRoot, &s.lastRoot
	if parent != nilIndex {
		head, tail = &s.firstChild[parent], &s.lastChild[parent]
	}
	s.prevSibling[idx] = *tail
	if *tail != nilIndex {
		s.nextSibling[*tail] = idx
	} else {
		*head = idx
	}
	*tail = idx
}

// unlink detaches idx from its parent's child list (or the root list).
// Its own children stay attached to it.
func (s *nodeStore) unlink(idx uint32) {
	parent := s.parent[idx]
	head, tail := &s.firstRoot, &s.lastRoot
	if parent != nilIndex {
		head, tail = &s.firstChild[parent], &s.lastChild[parent]
	}

	prev, next := s.prevSibling[idx], s.nextSibling[idx]
	if prev != nilIndex {
		s.nextSibling[prev] = next
	} else {
		*head = next
	}
	if next != nilIndex {
		s.prevSibling[next] = prev
	} else {
		*tail = prev
	}

	s.parent[idx] = nilIndex
	s.prevSibling[idx] = nilIndex
	s.nextSibling[idx] = nilIndex
}

// isAncestor reports whether a is b or one of b's ancestors.
func (s *nodeStore) isAncestor(a, b uint32) bool {
	for n := b; n != nilIndex; n = s.parent[n] {
		if n == a {
			return true
		}
	}
	return false
}

// depth returns the number of ancestors of idx.
func (s *nodeStore) depth(idx uint32) int {
	d := 0
	for n := s.parent[idx]; n != nilIndex; n = s.parent[n] {
		d++
	}
	return d
}

// childCount counts the direct children of idx.
func (s *nodeStore) childCount(idx uint32) int {
	n := 0
	for c := s.firstChild[idx]; c != nilIndex; c = s.nextSibling[c] {
		n++
	}
	return n
}

// subtree appends idx and all of its descendants to dst, breadth first.
func (s *nodeStore) subtree(dst []uint32, idx uint32) []uint32 {
	start := len(dst)
	dst = append(dst, idx)
	for i := start; i < len(dst); i++ {
		for c := s.firstChild[dst[i]]; c != nilIndex; c = s.nextSibling[c] {
			dst = append(dst, c)
		}
	}
	return dst
}
