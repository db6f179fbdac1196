package layout

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

// Style contains all layout properties for a node.
type Style struct {
	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value // Auto = unbounded
	MaxHeight Value // Auto = unbounded

	// Flex container properties
	Direction      Direction
	JustifyContent Justify
	AlignItems     Align
	Gap            float32 // Space between children (main axis only)

	// Flex item properties
	FlexGrow   float32 // How much to grow relative to siblings
	FlexShrink float32 // How much to shrink relative to siblings (default 1)
	AlignSelf  *Align  // Override parent's AlignItems (nil = inherit)

	// Spacing
	Padding Edges
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Width:      Auto(),
		Height:     Auto(),
		MinWidth:   Fixed(0),
		MinHeight:  Fixed(0),
		MaxWidth:   Auto(), // No maximum
		MaxHeight:  Auto(), // No maximum
		Direction:  Row,
		AlignItems: AlignStretch,
		FlexShrink: 1.0,
	}
}

// sanitize returns a copy of s in which every dimension that cannot
// describe a length is auto and every factor is non-negative. Enumerations
// outside their range fall back to the zero member.
func (s Style) sanitize() Style {
	s.Width = s.Width.sanitize()
	s.Height = s.Height.sanitize()
	s.MinWidth = s.MinWidth.sanitize()
	s.MinHeight = s.MinHeight.sanitize()
	s.MaxWidth = s.MaxWidth.sanitize()
	s.MaxHeight = s.MaxHeight.sanitize()
	s.Gap = nonNegative(s.Gap)
	s.FlexGrow = nonNegative(s.FlexGrow)
	s.FlexShrink = nonNegative(s.FlexShrink)
	s.Padding = s.Padding.sanitize()
	if s.Direction > Column {
		s.Direction = Row
	}
	if s.JustifyContent > JustifySpaceEvenly {
		s.JustifyContent = JustifyStart
	}
	if s.AlignItems > AlignStretch {
		s.AlignItems = AlignStart
	}
	if s.AlignSelf != nil {
		a := *s.AlignSelf
		if a > AlignStretch {
			a = AlignStart
		}
		// Copy so later caller writes through the pointer can't bypass SetStyle.
		s.AlignSelf = &a
	}
	return s
}

// alignFor returns the effective cross-axis alignment of a child.
func alignFor(container, child *Style) Align {
	if child.AlignSelf != nil {
		return *child.AlignSelf
	}
	return container.AlignItems
}
