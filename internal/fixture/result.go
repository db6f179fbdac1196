package fixture

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Result is the computed output of a fixture.
type Result struct {
	HitRate float32    `toml:"cache_hit_rate"`
	Solved  int        `toml:"solved"`
	Nodes   []NodeRect `toml:"node"`
}

// NodeRect is one node's computed rect.
type NodeRect struct {
	ID     string  `toml:"id"`
	X      float32 `toml:"x"`
	Y      float32 `toml:"y"`
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// Compute lays out the tree in the given space and collects every rect in
// fixture order.
func (t *Tree) Compute(width, height float32) (*Result, error) {
	if err := t.Engine.Compute(width, height); err != nil {
		return nil, err
	}
	res := &Result{
		HitRate: t.Engine.CacheHitRate(),
		Solved:  t.Engine.Stats().Last.Solved,
		Nodes:   make([]NodeRect, 0, len(t.Order)),
	}
	for _, id := range t.Order {
		r, err := t.Engine.GetRect(t.IDs[id])
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", id, err)
		}
		res.Nodes = append(res.Nodes, NodeRect{ID: id, X: r.X, Y: r.Y, Width: r.Width, Height: r.Height})
	}
	return res, nil
}

// Marshal encodes the result as TOML.
func (r *Result) Marshal() ([]byte, error) {
	return toml.Marshal(r)
}
