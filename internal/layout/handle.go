package layout

import "fmt"

// Handle identifies a node. The low 32 bits index the node's slot and the
// high 32 bits carry the slot's generation at the time the node was created,
// so a handle kept after its node is removed no longer resolves, even if the
// slot has since been reused.
//
// The zero Handle is never issued and stands for "no node".
type Handle uint64

// NoHandle is the absent handle (no parent, no child, no sibling).
const NoHandle Handle = 0

func makeHandle(index, generation uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index))
}

func (h Handle) index() uint32 {
	return uint32(h)
}

func (h Handle) generation() uint32 {
	return uint32(h >> 32)
}

// IsNone reports whether h is the absent handle.
func (h Handle) IsNone() bool {
	return h == NoHandle
}

// String formats a handle as index@generation.
func (h Handle) String() string {
	if h == NoHandle {
		return "none"
	}
	return fmt.Sprintf("%d@%d", h.index(), h.generation())
}
