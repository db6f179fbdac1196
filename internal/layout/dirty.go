package layout

import "github.com/bits-and-blooms/bitset"

// dirtyQueue is the set of nodes awaiting layout. Membership is a bitset over
// slot indices; order keeps handles in insertion order. Releasing a slot
// clears its bit but leaves its old handle in order, where it is later
// recognized as stale and skipped.
type dirtyQueue struct {
	present *bitset.BitSet
	order   []Handle
}

func newDirtyQueue(capacity int) dirtyQueue {
	return dirtyQueue{
		present: bitset.New(uint(capacity)),
		order:   make([]Handle, 0, capacity),
	}
}

// push inserts a node unless its slot is already queued. It reports whether
// the node was inserted.
func (q *dirtyQueue) push(idx uint32, h Handle) bool {
	if q.present.Test(uint(idx)) {
		return false
	}
	q.present.Set(uint(idx))
	q.order = append(q.order, h)
	return true
}

func (q *dirtyQueue) contains(idx uint32) bool {
	return q.present.Test(uint(idx))
}

// forget drops a released slot from the set.
func (q *dirtyQueue) forget(idx uint32) {
	q.present.Clear(uint(idx))
}

// len returns the number of live dirty nodes.
func (q *dirtyQueue) len() uint {
	return q.present.Count()
}

// entries returns the queued handles in insertion order, stale ones included.
func (q *dirtyQueue) entries() []Handle {
	return q.order
}

func (q *dirtyQueue) reset() {
	q.present.ClearAll()
	q.order = q.order[:0]
}
