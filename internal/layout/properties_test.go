package layout

import (
	"math/rand/v2"
	"testing"
)

// randomTree builds a tree of n nodes whose children always fit their
// parent: cross sizes stretch, main sizes are auto or a small percentage
// and may shrink, and there is no gap.
func randomTree(t *testing.T, e *Engine, r *rand.Rand, n int) []Handle {
	t.Helper()
	root := sized(1000, 800)
	nodes := []Handle{mustAdd(t, e, NoHandle, root)}
	for len(nodes) < n {
		parent := nodes[r.IntN(len(nodes))]
		s := DefaultStyle()
		if r.IntN(2) == 0 {
			s.Direction = Column
		}
		s.JustifyContent = Justify(r.IntN(int(JustifySpaceEvenly) + 1))
		s.FlexGrow = float32(r.IntN(3))
		s.Padding = EdgeAll(float32(r.IntN(3)))
		if r.IntN(3) == 0 {
			s.Width = Percent(float32(r.IntN(10)))
		}
		nodes = append(nodes, mustAdd(t, e, parent, s))
	}
	return nodes
}

func snapshot(t *testing.T, e *Engine, nodes []Handle) []Rect {
	t.Helper()
	out := make([]Rect, len(nodes))
	for i, h := range nodes {
		out[i] = mustRect(t, e, h)
	}
	return out
}

func TestProperty_Idempotence(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	for trial := range 5 {
		e := newTestEngine(t)
		nodes := randomTree(t, e, r, 60)

		mustCompute(t, e, 1000, 800)
		first := snapshot(t, e, nodes)
		mustCompute(t, e, 1000, 800)
		second := snapshot(t, e, nodes)

		for i := range first {
			if first[i] != second[i] {
				t.Errorf("trial %d: node %d moved from %+v to %+v", trial, i, first[i], second[i])
			}
		}
		if rate := e.CacheHitRate(); rate != 1 {
			t.Errorf("trial %d: CacheHitRate() = %v, want 1", trial, rate)
		}
	}
}

func TestProperty_Containment(t *testing.T) {
	r := rand.New(rand.NewPCG(8, 13))
	for trial := range 5 {
		e := newTestEngine(t)
		nodes := randomTree(t, e, r, 80)
		mustCompute(t, e, 1000, 800)

		for _, h := range nodes {
			parent, _ := e.Parent(h)
			if parent == NoHandle {
				continue
			}
			pr := mustRect(t, e, parent)
			ps, _ := e.Style(parent)
			content := Rect{Width: pr.Width, Height: pr.Height}.Inset(ps.Padding)
			child := mustRect(t, e, h)

			const eps = 1e-3
			if child.X < content.X-eps || child.Y < content.Y-eps ||
				child.Right() > content.Right()+eps || child.Bottom() > content.Bottom()+eps {
				t.Errorf("trial %d: child %v %+v escapes parent content box %+v", trial, h, child, content)
			}
		}
	}
}

func TestProperty_SpaceConservation(t *testing.T) {
	type tc struct {
		justify Justify
		widths  []float32
		gap     float32
	}

	tests := map[string]tc{
		"space between":        {justify: JustifySpaceBetween, widths: []float32{40, 70, 10}, gap: 0},
		"space between gap":    {justify: JustifySpaceBetween, widths: []float32{40, 70, 10}, gap: 6},
		"space around":         {justify: JustifySpaceAround, widths: []float32{25, 25, 25, 25}, gap: 0},
		"space around gap":     {justify: JustifySpaceAround, widths: []float32{13, 91}, gap: 4},
		"space evenly":         {justify: JustifySpaceEvenly, widths: []float32{33, 17, 50}, gap: 0},
		"space evenly gap":     {justify: JustifySpaceEvenly, widths: []float32{1, 2, 3, 4, 5}, gap: 3},
		"space evenly single":  {justify: JustifySpaceEvenly, widths: []float32{120}, gap: 0},
		"space between single": {justify: JustifySpaceBetween, widths: []float32{120}, gap: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			const main = 500
			e := newTestEngine(t)
			s := sized(main, 50)
			s.JustifyContent = tt.justify
			s.Gap = tt.gap
			root := mustAdd(t, e, NoHandle, s)

			var handles []Handle
			for _, w := range tt.widths {
				child := DefaultStyle()
				child.Width = Fixed(w)
				handles = append(handles, mustAdd(t, e, root, child))
			}
			mustCompute(t, e, main, 50)

			rects := snapshot(t, e, handles)
			lead := rects[0].X
			trail := main - rects[len(rects)-1].Right()
			var sizes, spacing float32
			for i, rc := range rects {
				sizes += rc.Width
				if i > 0 {
					spacing += rc.X - rects[i-1].Right()
				}
			}
			if total := lead + sizes + spacing + trail; !approxEqual(total, main) {
				t.Errorf("lead+sizes+spacing+trail = %v, want %v", total, main)
			}

			n := float32(len(rects))
			switch tt.justify {
			case JustifySpaceBetween:
				if len(rects) > 1 && (!approxEqual(lead, 0) || !approxEqual(trail, 0)) {
					t.Errorf("space between edges = %v, %v, want 0", lead, trail)
				}
			case JustifySpaceAround:
				free := main - sizes - tt.gap*(n-1)
				if !approxEqual(lead, free/n/2) {
					t.Errorf("space around lead = %v, want %v", lead, free/n/2)
				}
			case JustifySpaceEvenly:
				free := main - sizes - tt.gap*(n-1)
				if !approxEqual(lead, free/(n+1)) || !approxEqual(trail, free/(n+1)) {
					t.Errorf("space evenly edges = %v, %v, want %v", lead, trail, free/(n+1))
				}
			}
		})
	}
}

func TestProperty_HandleStability(t *testing.T) {
	r := rand.New(rand.NewPCG(21, 34))
	e := newTestEngine(t, WithCapacity(4))

	live := []Handle{mustAdd(t, e, NoHandle, sized(100, 100))}
	var dead []Handle

	for range 500 {
		if r.IntN(3) > 0 || len(live) < 2 {
			live = append(live, mustAdd(t, e, live[r.IntN(len(live))], DefaultStyle()))
			continue
		}
		victim := live[1+r.IntN(len(live)-1)]
		if err := e.RemoveNode(victim); err != nil {
			t.Fatalf("RemoveNode() error = %v", err)
		}
		kept := live[:0]
		for _, h := range live {
			if e.Valid(h) {
				kept = append(kept, h)
			} else {
				dead = append(dead, h)
			}
		}
		live = kept
	}

	for _, h := range dead {
		if e.Valid(h) {
			t.Errorf("removed handle %v became valid again", h)
		}
	}
	if got := e.NodeCount(); got != uint32(len(live)) {
		t.Errorf("NodeCount() = %d, want %d", got, len(live))
	}
	mustCompute(t, e, 100, 100)
}

func TestProperty_DirtyClosure(t *testing.T) {
	r := rand.New(rand.NewPCG(55, 89))
	e := newTestEngine(t)
	nodes := randomTree(t, e, r, 100)
	mustCompute(t, e, 1000, 800)

	for range 20 {
		h := nodes[r.IntN(len(nodes))]
		if err := e.MarkDirty(h); err != nil {
			t.Fatalf("MarkDirty() error = %v", err)
		}
	}

	for _, h := range nodes {
		dirty, _ := e.IsDirty(h)
		if !dirty {
			continue
		}
		for p, _ := e.Parent(h); p != NoHandle; p, _ = e.Parent(p) {
			if pd, _ := e.IsDirty(p); !pd {
				t.Errorf("%v is dirty but ancestor %v is clean", h, p)
			}
		}
	}
}
