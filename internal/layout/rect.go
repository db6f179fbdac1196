package layout

// Size is a width/height pair.
type Size struct {
	Width, Height float32
}

// Rect represents a rectangle.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() float32 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() float32 {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect returns true if the other rectangle is fully contained within this rectangle.
// Zero-area rectangles count as contained when their origin lies within the bounds.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Inset returns a new Rect inset by the given Edges.
// The result never has negative dimensions.
func (r Rect) Inset(edges Edges) Rect {
	return Rect{
		X:      r.X + edges.Left,
		Y:      r.Y + edges.Top,
		Width:  max(0, r.Width-edges.Horizontal()),
		Height: max(0, r.Height-edges.Vertical()),
	}
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}
