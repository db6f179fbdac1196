package layout

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/sys/cpu"
)

// Lane widths accepted by the clamper.
const (
	LanesScalar = 1
	Lanes4      = 4
	Lanes8      = 8
)

// DetectLanes returns the widest batch the CPU handles natively: 8 float32
// lanes with AVX2 or AVX-512, 4 with SSE4.1 or NEON, otherwise scalar.
func DetectLanes() int {
	switch {
	case cpu.X86.HasAVX512F, cpu.X86.HasAVX2:
		return Lanes8
	case cpu.X86.HasSSE41, cpu.ARM64.HasASIMD:
		return Lanes4
	default:
		return LanesScalar
	}
}

// clampValue restricts v to [lo, hi]. If lo > hi, lo wins (matches CSS
// behavior). Every batch kernel is written in terms of this expression, so
// all lane widths agree bit for bit.
func clampValue[T constraints.Float](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

func clampLanes8[T constraints.Float](s, lo, hi *[8]T) {
	for j := range s {
		s[j] = max(lo[j], min(s[j], hi[j]))
	}
}

func clampLanes4[T constraints.Float](s, lo, hi *[4]T) {
	for j := range s {
		s[j] = max(lo[j], min(s[j], hi[j]))
	}
}

// clamper applies min/max bounds to contiguous runs of sizes.
type clamper struct {
	lanes int
}

func newClamper(lanes int) clamper {
	if lanes == 0 {
		lanes = DetectLanes()
	}
	return clamper{lanes: lanes}
}

// clamp sets sizes[i] = clamp(sizes[i], mins[i], maxs[i]) in place, in
// full batches of c.lanes followed by a scalar tail.
func (c clamper) clamp(sizes, mins, maxs []float32) {
	n := len(sizes)
	if len(mins) != n || len(maxs) != n {
		panic(fmt.Sprintf("layout: clamp buffers differ in length (%d, %d, %d)", n, len(mins), len(maxs)))
	}

	i := 0
	if c.lanes >= Lanes8 {
		for ; i+Lanes8 <= n; i += Lanes8 {
			clampLanes8((*[8]float32)(sizes[i:i+8]), (*[8]float32)(mins[i:i+8]), (*[8]float32)(maxs[i:i+8]))
		}
	}
	if c.lanes >= Lanes4 {
		for ; i+Lanes4 <= n; i += Lanes4 {
			clampLanes4((*[4]float32)(sizes[i:i+4]), (*[4]float32)(mins[i:i+4]), (*[4]float32)(maxs[i:i+4]))
		}
	}
	for ; i < n; i++ {
		sizes[i] = clampValue(sizes[i], mins[i], maxs[i])
	}
}

// ClampSizes clamps each sizes[i] into [mins[i], maxs[i]] in place using the
// widest lane width the CPU supports. The three slices must have equal
// length. Output is identical to clamping one element at a time.
func ClampSizes(sizes, mins, maxs []float32) {
	newClamper(0).clamp(sizes, mins, maxs)
}
