package layout

// rectStore is the Structure-of-Arrays output of layout: one array per rect
// field, indexed by slot.
type rectStore struct {
	x, y          []float32
	width, height []float32
}

func newRectStore(capacity int) rectStore {
	return rectStore{
		x:      make([]float32, 0, capacity),
		y:      make([]float32, 0, capacity),
		width:  make([]float32, 0, capacity),
		height: make([]float32, 0, capacity),
	}
}

func (s *rectStore) grow() {
	s.x = append(s.x, 0)
	s.y = append(s.y, 0)
	s.width = append(s.width, 0)
	s.height = append(s.height, 0)
}

func (s *rectStore) set(idx uint32, r Rect) {
	s.x[idx] = r.X
	s.y[idx] = r.Y
	s.width[idx] = r.Width
	s.height[idx] = r.Height
}

func (s *rectStore) get(idx uint32) Rect {
	return Rect{X: s.x[idx], Y: s.y[idx], Width: s.width[idx], Height: s.height[idx]}
}

func (s *rectStore) reset(idx uint32) {
	s.set(idx, Rect{})
}
