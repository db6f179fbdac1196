package layout

// MeasureFunc reports the intrinsic size of a leaf node (text, images, ...)
// given the space its parent offers. Negative or NaN results are treated as 0.
type MeasureFunc func(h Handle, availableWidth, availableHeight float32) Size

// styleTable holds the per-node style, its version counter and the node's
// measure function, all indexed by slot.
type styleTable struct {
	styles   []Style
	versions []uint64
	measure  []MeasureFunc
}

func newStyleTable(capacity int) styleTable {
	return styleTable{
		styles:   make([]Style, 0, capacity),
		versions: make([]uint64, 0, capacity),
		measure:  make([]MeasureFunc, 0, capacity),
	}
}

func (t *styleTable) grow() {
	t.styles = append(t.styles, Style{})
	t.versions = append(t.versions, 0)
	t.measure = append(t.measure, nil)
}

// set stores a sanitized copy of style and bumps the slot's version.
// Versions keep counting across slot reuse.
func (t *styleTable) set(idx uint32, style Style) {
	t.styles[idx] = style.sanitize()
	t.versions[idx]++
}

func (t *styleTable) clear(idx uint32) {
	t.styles[idx] = Style{}
	t.measure[idx] = nil
}
