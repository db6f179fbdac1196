package layout

import "errors"

var (
	// ErrOutOfMemory is returned when the node arena needs to grow but has
	// reached its growth ceiling (Config.MaxNodes or the handle index space).
	ErrOutOfMemory = errors.New("layout: out of memory")

	// ErrCapacityExceeded is returned by a fixed-capacity engine that has no
	// free slot left.
	ErrCapacityExceeded = errors.New("layout: capacity exceeded")

	// ErrInvalidNode is returned when a stale or unknown handle is passed to a
	// mutator or query.
	ErrInvalidNode = errors.New("layout: invalid node")
)
