// Package fixture describes layout trees in TOML so they can be built into
// an engine, computed and dumped without writing Go.
//
//	width = 800
//	height = 600
//
//	[[node]]
//	id = "root"
//	direction = "column"
//	width = 200
//	height = "50%"
//	padding = [10, 20]
//
//	[[node]]
//	id = "title"
//	parent = "root"
//	measure = [120, 16]
package fixture

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/grindlemire/go-flex/internal/layout"
)

// Fixture is a whole tree plus the space to compute it in.
type Fixture struct {
	Width  float32        `toml:"width"`
	Height float32        `toml:"height"`
	Config *layout.Config `toml:"config"`
	Nodes  []Node         `toml:"node"`
}

// Node describes one node. Parents must appear before their children.
// Dimensions accept a number, "auto", or a percentage such as "50%".
type Node struct {
	ID     string `toml:"id"`
	Parent string `toml:"parent"`

	Direction string `toml:"direction"`  // row | column
	Justify   string `toml:"justify"`    // start | end | center | space-between | space-around | space-evenly
	Align     string `toml:"align"`      // start | end | center | stretch
	AlignSelf string `toml:"align_self"` // same as align; empty inherits

	Grow   *float32 `toml:"grow"`
	Shrink *float32 `toml:"shrink"`
	Gap    float32  `toml:"gap"`

	Width     any `toml:"width"`
	Height    any `toml:"height"`
	MinWidth  any `toml:"min_width"`
	MinHeight any `toml:"min_height"`
	MaxWidth  any `toml:"max_width"`
	MaxHeight any `toml:"max_height"`

	// Padding follows CSS shorthand: 1, 2, 3 or 4 values.
	Padding []float32 `toml:"padding"`

	// Measure gives a leaf a fixed intrinsic [width, height].
	Measure []float32 `toml:"measure"`
}

// Parse decodes a fixture from TOML.
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	if f.Config != nil {
		if err := f.Config.Validate(); err != nil {
			return nil, fmt.Errorf("invalid fixture config: %w", err)
		}
	}
	return &f, nil
}

// Load reads and parses a fixture file.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	return Parse(data)
}

// Tree is a fixture built into an engine.
type Tree struct {
	Engine *layout.Engine
	IDs    map[string]layout.Handle
	Order  []string
}

// Build creates an engine (using the fixture's config when present, then
// opts) and adds every node.
func (f *Fixture) Build(opts ...layout.Option) (*Tree, error) {
	if f.Config != nil {
		opts = append([]layout.Option{layout.WithConfig(*f.Config)}, opts...)
	}
	e, err := layout.New(opts...)
	if err != nil {
		return nil, err
	}

	t := &Tree{Engine: e, IDs: make(map[string]layout.Handle, len(f.Nodes))}
	for i, n := range f.Nodes {
		id := n.ID
		if id == "" {
			id = fmt.Sprintf("node%d", i)
		}
		if _, dup := t.IDs[id]; dup {
			return nil, fmt.Errorf("node %q: duplicate id", id)
		}

		parent := layout.NoHandle
		if n.Parent != "" {
			p, ok := t.IDs[n.Parent]
			if !ok {
				return nil, fmt.Errorf("node %q: parent %q is not defined before it", id, n.Parent)
			}
			parent = p
		}

		style, err := n.Style()
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", id, err)
		}
		h, err := e.AddNode(parent, style)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", id, err)
		}
		if len(n.Measure) > 0 {
			if len(n.Measure) != 2 {
				return nil, fmt.Errorf("node %q: measure needs [width, height], got %d values", id, len(n.Measure))
			}
			size := layout.Size{Width: n.Measure[0], Height: n.Measure[1]}
			err := e.SetMeasure(h, func(layout.Handle, float32, float32) layout.Size { return size })
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", id, err)
			}
		}
		t.IDs[id] = h
		t.Order = append(t.Order, id)
	}
	return t, nil
}

// Style converts the node description into a layout style.
func (n Node) Style() (layout.Style, error) {
	s := layout.DefaultStyle()

	var err error
	if s.Direction, err = parseDirection(n.Direction); err != nil {
		return s, err
	}
	if s.JustifyContent, err = parseJustify(n.Justify); err != nil {
		return s, err
	}
	if n.Align != "" {
		if s.AlignItems, err = parseAlign(n.Align); err != nil {
			return s, err
		}
	}
	if n.AlignSelf != "" {
		a, err := parseAlign(n.AlignSelf)
		if err != nil {
			return s, err
		}
		s.AlignSelf = &a
	}
	if n.Grow != nil {
		s.FlexGrow = *n.Grow
	}
	if n.Shrink != nil {
		s.FlexShrink = *n.Shrink
	}
	s.Gap = n.Gap

	dims := []struct {
		name string
		raw  any
		dst  *layout.Value
	}{
		{"width", n.Width, &s.Width},
		{"height", n.Height, &s.Height},
		{"min_width", n.MinWidth, &s.MinWidth},
		{"min_height", n.MinHeight, &s.MinHeight},
		{"max_width", n.MaxWidth, &s.MaxWidth},
		{"max_height", n.MaxHeight, &s.MaxHeight},
	}
	for _, d := range dims {
		if d.raw == nil {
			continue
		}
		v, err := ParseValue(d.raw)
		if err != nil {
			return s, fmt.Errorf("%s: %w", d.name, err)
		}
		*d.dst = v
	}

	if s.Padding, err = parseEdges(n.Padding); err != nil {
		return s, fmt.Errorf("padding: %w", err)
	}
	return s, nil
}

// ParseValue converts a TOML scalar into a Value: numbers are fixed,
// "auto" is auto, "N%" is a percentage and other strings must be numbers.
func ParseValue(raw any) (layout.Value, error) {
	switch v := raw.(type) {
	case int64:
		return layout.Fixed(float32(v)), nil
	case float64:
		return layout.Fixed(float32(v)), nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" || strings.EqualFold(s, "auto") {
			return layout.Auto(), nil
		}
		if pct, ok := strings.CutSuffix(s, "%"); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(pct), 32)
			if err != nil {
				return layout.Value{}, fmt.Errorf("invalid percentage %q", v)
			}
			return layout.Percent(float32(f)), nil
		}
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return layout.Value{}, fmt.Errorf("invalid dimension %q", v)
		}
		return layout.Fixed(float32(f)), nil
	default:
		return layout.Value{}, fmt.Errorf("unsupported dimension type %T", raw)
	}
}

func parseEdges(p []float32) (layout.Edges, error) {
	switch len(p) {
	case 0:
		return layout.Edges{}, nil
	case 1:
		return layout.EdgeAll(p[0]), nil
	case 2:
		return layout.EdgeSymmetric(p[0], p[1]), nil
	case 3:
		return layout.EdgeTRBL(p[0], p[1], p[2], p[1]), nil
	case 4:
		return layout.EdgeTRBL(p[0], p[1], p[2], p[3]), nil
	default:
		return layout.Edges{}, fmt.Errorf("expected 1 to 4 values, got %d", len(p))
	}
}

func parseDirection(s string) (layout.Direction, error) {
	switch strings.ToLower(s) {
	case "", "row":
		return layout.Row, nil
	case "column", "col":
		return layout.Column, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

func parseJustify(s string) (layout.Justify, error) {
	switch strings.ToLower(s) {
	case "", "start":
		return layout.JustifyStart, nil
	case "end":
		return layout.JustifyEnd, nil
	case "center":
		return layout.JustifyCenter, nil
	case "space-between":
		return layout.JustifySpaceBetween, nil
	case "space-around":
		return layout.JustifySpaceAround, nil
	case "space-evenly":
		return layout.JustifySpaceEvenly, nil
	default:
		return 0, fmt.Errorf("unknown justify %q", s)
	}
}

func parseAlign(s string) (layout.Align, error) {
	switch strings.ToLower(s) {
	case "start":
		return layout.AlignStart, nil
	case "end":
		return layout.AlignEnd, nil
	case "center":
		return layout.AlignCenter, nil
	case "stretch":
		return layout.AlignStretch, nil
	default:
		return 0, fmt.Errorf("unknown align %q", s)
	}
}
