package layout

import (
	"math"
	"testing"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return e
}

// sized returns DefaultStyle with a fixed width and height.
func sized(w, h float32) Style {
	s := DefaultStyle()
	s.Width = Fixed(w)
	s.Height = Fixed(h)
	return s
}

func mustAdd(t *testing.T, e *Engine, parent Handle, style Style) Handle {
	t.Helper()
	h, err := e.AddNode(parent, style)
	if err != nil {
		t.Fatalf("AddNode() error = %v", err)
	}
	return h
}

func mustCompute(t *testing.T, e *Engine, w, h float32) {
	t.Helper()
	if err := e.Compute(w, h); err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
}

func mustRect(t *testing.T, e *Engine, h Handle) Rect {
	t.Helper()
	r, err := e.GetRect(h)
	if err != nil {
		t.Fatalf("GetRect(%v) error = %v", h, err)
	}
	return r
}

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func assertRect(t *testing.T, name string, got, want Rect) {
	t.Helper()
	if !approxEqual(got.X, want.X) || !approxEqual(got.Y, want.Y) ||
		!approxEqual(got.Width, want.Width) || !approxEqual(got.Height, want.Height) {
		t.Errorf("%s rect = %+v, want %+v", name, got, want)
	}
}

// solvedLastPass reports whether the solver recomputed h in the most recent Compute.
func solvedLastPass(e *Engine, h Handle) bool {
	idx, err := e.store.resolve(h)
	if err != nil {
		return false
	}
	return e.solved[idx] == e.pass
}
