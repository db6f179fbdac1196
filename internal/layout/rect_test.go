package layout

import "testing"

func TestNewRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.X != 5 || r.Y != 10 || r.Width != 20 || r.Height != 15 {
		t.Errorf("NewRect() = %+v, want {5 10 20 15}", r)
	}
	if got := r.Size(); got != (Size{Width: 20, Height: 15}) {
		t.Errorf("Size() = %+v, want {20 15}", got)
	}
}

func TestRect_RightBottom(t *testing.T) {
	type tc struct {
		rect   Rect
		right  float32
		bottom float32
	}

	tests := map[string]tc{
		"standard rect": {
			rect:   NewRect(5, 10, 20, 15),
			right:  25,
			bottom: 25,
		},
		"fractional": {
			rect:   NewRect(0.5, 0.25, 10, 10),
			right:  10.5,
			bottom: 10.25,
		},
		"zero size": {
			rect:   NewRect(5, 5, 0, 0),
			right:  5,
			bottom: 5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %v, want %v", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %v, want %v", got, tt.bottom)
			}
		})
	}
}

func TestRect_IsEmpty(t *testing.T) {
	type tc struct {
		rect     Rect
		expected bool
	}

	tests := map[string]tc{
		"normal":      {rect: NewRect(0, 0, 10, 10), expected: false},
		"zero width":  {rect: NewRect(0, 0, 0, 10), expected: true},
		"zero height": {rect: NewRect(0, 0, 10, 0), expected: true},
		"negative":    {rect: NewRect(0, 0, -1, 10), expected: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.IsEmpty(); got != tt.expected {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	type tc struct {
		x, y     float32
		expected bool
	}

	tests := map[string]tc{
		"inside":           {x: 15, y: 15, expected: true},
		"top-left corner":  {x: 10, y: 10, expected: true},
		"right edge":       {x: 30, y: 15, expected: false},
		"bottom edge":      {x: 15, y: 30, expected: false},
		"just inside edge": {x: 29.5, y: 29.5, expected: true},
		"left of rect":     {x: 9, y: 15, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRect_ContainsRect(t *testing.T) {
	outer := NewRect(0, 0, 100, 100)

	type tc struct {
		inner    Rect
		expected bool
	}

	tests := map[string]tc{
		"fully inside":      {inner: NewRect(10, 10, 20, 20), expected: true},
		"identical":         {inner: outer, expected: true},
		"overflows right":   {inner: NewRect(90, 10, 20, 20), expected: false},
		"starts outside":    {inner: NewRect(-1, 0, 10, 10), expected: false},
		"zero size inside":  {inner: NewRect(50, 50, 0, 0), expected: true},
		"zero size outside": {inner: NewRect(150, 50, 0, 0), expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := outer.ContainsRect(tt.inner); got != tt.expected {
				t.Errorf("ContainsRect(%+v) = %v, want %v", tt.inner, got, tt.expected)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	type tc struct {
		rect     Rect
		edges    Edges
		expected Rect
	}

	tests := map[string]tc{
		"uniform": {
			rect:     NewRect(0, 0, 100, 50),
			edges:    EdgeAll(5),
			expected: NewRect(5, 5, 90, 40),
		},
		"trbl": {
			rect:     NewRect(10, 10, 100, 100),
			edges:    EdgeTRBL(1, 2, 3, 4),
			expected: NewRect(14, 11, 94, 96),
		},
		"larger than rect clamps to zero": {
			rect:     NewRect(0, 0, 10, 10),
			edges:    EdgeAll(20),
			expected: NewRect(20, 20, 0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.edges); got != tt.expected {
				t.Errorf("Inset(%+v) = %+v, want %+v", tt.edges, got, tt.expected)
			}
		})
	}
}

func TestRect_Translate(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	got := r.Translate(5, -10)
	if got != NewRect(15, 10, 30, 40) {
		t.Errorf("Translate(5, -10) = %+v, want {15 10 30 40}", got)
	}
	if r != NewRect(10, 20, 30, 40) {
		t.Errorf("Translate mutated the receiver: %+v", r)
	}
}

func TestEdges(t *testing.T) {
	e := EdgeSymmetric(2, 3)
	if e != (Edges{Top: 2, Right: 3, Bottom: 2, Left: 3}) {
		t.Errorf("EdgeSymmetric(2, 3) = %+v", e)
	}
	if e.Horizontal() != 6 {
		t.Errorf("Horizontal() = %v, want 6", e.Horizontal())
	}
	if e.Vertical() != 4 {
		t.Errorf("Vertical() = %v, want 4", e.Vertical())
	}
	if e.IsZero() {
		t.Error("IsZero() = true, want false")
	}
	if !(Edges{}).IsZero() {
		t.Error("zero Edges IsZero() = false, want true")
	}
}
