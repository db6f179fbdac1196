// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flex

import "github.com/grindlemire/go-flex/internal/layout"

// Engine computes layout for a forest of nodes.
type Engine = layout.Engine

// Handle identifies a node.
type Handle = layout.Handle

// NoHandle is the absent handle.
const NoHandle = layout.NoHandle

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// Value represents a dimension value (fixed, percent, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
)

// Style holds the layout properties for a node.
type Style = layout.Style

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// MeasureFunc reports the intrinsic content size of a leaf.
type MeasureFunc = layout.MeasureFunc

// CacheEntry is a node's layout cache record.
type CacheEntry = layout.CacheEntry

// Stats holds cumulative and last-pass engine counters.
type Stats = layout.Stats

// PassStats describes a single Compute call.
type PassStats = layout.PassStats

// Errors returned by the engine. Test with errors.Is.
var (
	ErrOutOfMemory      = layout.ErrOutOfMemory
	ErrCapacityExceeded = layout.ErrCapacityExceeded
	ErrInvalidNode      = layout.ErrInvalidNode
)

// Fixed creates a Value with an absolute length.
func Fixed(n float32) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float32) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content, or is unbounded as a max.
func Auto() Value {
	return layout.Auto()
}

// DefaultStyle returns a Style with default values.
func DefaultStyle() Style {
	return layout.DefaultStyle()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float32) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float32) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float32) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// ClampSizes clamps sizes[i] into [mins[i], maxs[i]] in place, batched by
// the widest lane width the CPU supports.
func ClampSizes(sizes, mins, maxs []float32) {
	layout.ClampSizes(sizes, mins, maxs)
}

// Lane widths accepted by WithClampLanes.
const (
	LanesScalar = layout.LanesScalar
	Lanes4      = layout.Lanes4
	Lanes8      = layout.Lanes8
)

// DetectLanes returns the clamp batch width the CPU supports natively.
func DetectLanes() int {
	return layout.DetectLanes()
}
