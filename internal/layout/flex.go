package layout

import "math"

// unbounded is the resolved value of an auto max constraint.
var unbounded = float32(math.Inf(1))

// flexItem holds intermediate calculation state for a child.
// This is allocated per container per layout call, not stored on nodes.
type flexItem struct {
	index     uint32
	style     *Style
	baseSize  float32
	mainSize  float32
	crossSize float32
	mainPos   float32
	crossPos  float32
}

// intrinsicEntry memoizes a node's content-based size for one available
// size. It is cleared whenever the node is marked dirty.
type intrinsicEntry struct {
	valid          bool
	availW, availH float32
	size           Size
}

// layoutRoot sizes a root against the Compute arguments and lays it out.
// The root's cache entry is keyed by those arguments.
func (e *Engine) layoutRoot(idx uint32, availW, availH float32) {
	e.visited[idx] = e.pass
	version := e.styles.versions[idx]
	if _, ok := e.cache.lookup(idx, availW, availH, version); ok {
		return
	}

	st := &e.styles.styles[idx]
	size := Size{
		Width:  clampValue(st.Width.Resolve(availW, availW), st.MinWidth.Resolve(availW, 0), resolveMax(st.MaxWidth, availW)),
		Height: clampValue(st.Height.Resolve(availH, availH), st.MinHeight.Resolve(availH, 0), resolveMax(st.MaxHeight, availH)),
	}
	e.rects.set(idx, Rect{Width: size.Width, Height: size.Height})
	e.solve(idx, size)
	e.cache.store(idx, availW, availH, version, size)
}

// layoutNode lays out the children of a node whose border box the parent
// has already sized. A clean node whose slot size is unchanged is a cache
// hit and its subtree is left untouched.
func (e *Engine) layoutNode(idx uint32, width, height float32) {
	e.visited[idx] = e.pass
	version := e.styles.versions[idx]
	if _, ok := e.cache.lookup(idx, width, height, version); ok {
		return
	}

	size := Size{Width: width, Height: height}
	e.solve(idx, size)
	e.cache.store(idx, width, height, version, size)
}

func (e *Engine) solve(idx uint32, size Size) {
	e.solved[idx] = e.pass
	e.solvedInPass++
	e.layoutChildren(idx, size)
}

// layoutChildren arranges the children of a node of the given border-box
// size. This implements the core flexbox algorithm. Child rects are written
// relative to the node's origin, then each child is laid out recursively.
func (e *Engine) layoutChildren(idx uint32, size Size) {
	first := e.store.firstChild[idx]
	if first == nilIndex {
		return
	}

	style := &e.styles.styles[idx]
	isRow := style.Direction == Row
	content := Rect{Width: size.Width, Height: size.Height}.Inset(style.Padding)

	// Determine main/cross axis dimensions
	mainSize, crossSize := content.Width, content.Height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	n := e.store.childCount(idx)
	items := make([]flexItem, n)
	buf := make([]float32, 3*n)
	sizes, mins, maxs := buf[:n:n], buf[n:2*n:2*n], buf[2*n:]

	// Phase 1: Compute base sizes and flex factors
	var totalBase, totalGrow, totalScaledShrink float32
	i := 0
	for c := first; c != nilIndex; c = e.store.nextSibling[c] {
		item := &items[i]
		item.index = c
		item.style = &e.styles.styles[c]

		mainValue, _ := axisValues(item.style, isRow)
		if mainValue.IsAuto() {
			item.baseSize = mainOf(e.intrinsicSize(c, content.Width, content.Height), isRow)
		} else {
			item.baseSize = mainValue.Resolve(mainSize, 0)
		}

		totalBase += item.baseSize
		totalGrow += item.style.FlexGrow
		totalScaledShrink += item.style.FlexShrink * item.baseSize
		i++
	}

	totalGap := style.Gap * float32(n-1)
	freeSpace := mainSize - totalBase - totalGap

	// Phase 2: Distribute free space
	for i := range items {
		item := &items[i]
		switch {
		case freeSpace > 0 && totalGrow > 0:
			sizes[i] = item.baseSize + freeSpace*item.style.FlexGrow/totalGrow
		case freeSpace < 0 && totalScaledShrink > 0:
			reduction := -freeSpace * item.style.FlexShrink * item.baseSize / totalScaledShrink
			sizes[i] = max(0, item.baseSize-reduction)
		default:
			sizes[i] = item.baseSize
		}
		minValue, maxValue := mainBounds(item.style, isRow)
		mins[i] = minValue.Resolve(mainSize, 0)
		maxs[i] = resolveMax(maxValue, mainSize)
	}

	// Phase 3: Apply min/max constraints
	e.clamp.clamp(sizes, mins, maxs)
	for i := range items {
		items[i].mainSize = sizes[i]
	}

	// Phase 4: Cross-axis sizing
	for i := range items {
		item := &items[i]
		_, crossValue := axisValues(item.style, isRow)
		switch {
		case !crossValue.IsAuto():
			sizes[i] = crossValue.Resolve(crossSize, 0)
		case alignFor(style, item.style) == AlignStretch:
			sizes[i] = crossSize
		default:
			sizes[i] = crossOf(e.intrinsicSize(item.index, content.Width, content.Height), isRow)
		}
		minValue, maxValue := crossBounds(item.style, isRow)
		mins[i] = minValue.Resolve(crossSize, 0)
		maxs[i] = resolveMax(maxValue, crossSize)
	}
	e.clamp.clamp(sizes, mins, maxs)
	for i := range items {
		items[i].crossSize = sizes[i]
	}

	// Phase 5: Position children along the main axis (justify) and
	// the cross axis (align)
	used := totalGap
	for i := range items {
		used += items[i].mainSize
	}
	lead, between := justifySpacing(style.JustifyContent, mainSize-used, n)

	offset := lead
	for i := range items {
		item := &items[i]
		item.mainPos = offset
		offset += item.mainSize + style.Gap + between
		item.crossPos = alignOffset(alignFor(style, item.style), crossSize, item.crossSize)
	}

	// Phase 6: Convert to rects and recurse
	for i := range items {
		item := &items[i]
		var r Rect
		if isRow {
			r = Rect{
				X:      content.X + item.mainPos,
				Y:      content.Y + item.crossPos,
				Width:  item.mainSize,
				Height: item.crossSize,
			}
		} else {
			r = Rect{
				X:      content.X + item.crossPos,
				Y:      content.Y + item.mainPos,
				Width:  item.crossSize,
				Height: item.mainSize,
			}
		}
		e.rects.set(item.index, r)
		e.layoutNode(item.index, r.Width, r.Height)
	}
}

// intrinsicSize returns the content-based border-box size of idx when its
// parent's content box is availW x availH. Fixed and percent dimensions win;
// leaves ask their measure function; containers sum their children along
// their main axis and take the largest child on their cross axis.
func (e *Engine) intrinsicSize(idx uint32, availW, availH float32) Size {
	memo := &e.intrinsic[idx]
	if memo.valid && memo.availW == availW && memo.availH == availH {
		return memo.size
	}

	st := &e.styles.styles[idx]
	fixedW, hasW := definite(st.Width, availW)
	fixedH, hasH := definite(st.Height, availH)

	innerW, innerH := availW, availH
	if hasW {
		innerW = fixedW
	}
	if hasH {
		innerH = fixedH
	}
	innerW = max(0, innerW-st.Padding.Horizontal())
	innerH = max(0, innerH-st.Padding.Vertical())

	var content Size
	if e.store.firstChild[idx] == nilIndex {
		fn := e.styles.measure[idx]
		if fn == nil {
			fn = e.measure
		}
		if fn != nil {
			m := fn(e.store.handleOf(idx), innerW, innerH)
			content = Size{Width: nonNegative(m.Width), Height: nonNegative(m.Height)}
		}
	} else {
		content = e.contentSize(idx, innerW, innerH)
	}

	size := Size{
		Width:  content.Width + st.Padding.Horizontal(),
		Height: content.Height + st.Padding.Vertical(),
	}
	if hasW {
		size.Width = fixedW
	}
	if hasH {
		size.Height = fixedH
	}
	size.Width = clampValue(size.Width, st.MinWidth.Resolve(availW, 0), resolveMax(st.MaxWidth, availW))
	size.Height = clampValue(size.Height, st.MinHeight.Resolve(availH, 0), resolveMax(st.MaxHeight, availH))

	*memo = intrinsicEntry{valid: true, availW: availW, availH: availH, size: size}
	return size
}

// contentSize measures the children of a container laid out without any
// flex distribution.
func (e *Engine) contentSize(idx uint32, innerW, innerH float32) Size {
	st := &e.styles.styles[idx]
	isRow := st.Direction == Row

	var main, cross float32
	n := 0
	for c := e.store.firstChild[idx]; c != nilIndex; c = e.store.nextSibling[c] {
		cs := e.intrinsicSize(c, innerW, innerH)
		main += mainOf(cs, isRow)
		cross = max(cross, crossOf(cs, isRow))
		n++
	}
	main += st.Gap * float32(n-1)

	if isRow {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

// justifySpacing returns the leading offset and the extra spacing between
// children for the given free space. Negative free space adds nothing.
func justifySpacing(justify Justify, freeSpace float32, itemCount int) (lead, between float32) {
	if freeSpace <= 0 || itemCount == 0 {
		return 0, 0
	}

	switch justify {
	case JustifyEnd:
		return freeSpace, 0
	case JustifyCenter:
		return freeSpace / 2, 0
	case JustifySpaceBetween:
		if itemCount == 1 {
			return 0, 0
		}
		return 0, freeSpace / float32(itemCount-1)
	case JustifySpaceAround:
		unit := freeSpace / float32(itemCount)
		return unit / 2, unit
	case JustifySpaceEvenly:
		unit := freeSpace / float32(itemCount+1)
		return unit, unit
	default: // JustifyStart
		return 0, 0
	}
}

// alignOffset returns the offset for positioning a child on the cross axis.
// Children larger than the cross size are pinned to the start.
func alignOffset(align Align, crossSize, itemSize float32) float32 {
	switch align {
	case AlignEnd:
		return max(0, crossSize-itemSize)
	case AlignCenter:
		return max(0, (crossSize-itemSize)/2)
	default: // AlignStart, AlignStretch
		return 0
	}
}

// definite resolves a non-auto dimension.
func definite(v Value, available float32) (float32, bool) {
	if v.IsAuto() {
		return 0, false
	}
	return v.Resolve(available, 0), true
}

// resolveMax resolves a max constraint; auto is unbounded.
func resolveMax(v Value, available float32) float32 {
	if v.IsAuto() {
		return unbounded
	}
	return v.Resolve(available, unbounded)
}

func axisValues(s *Style, isRow bool) (main, cross Value) {
	if isRow {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

func mainBounds(s *Style, isRow bool) (minValue, maxValue Value) {
	if isRow {
		return s.MinWidth, s.MaxWidth
	}
	return s.MinHeight, s.MaxHeight
}

func crossBounds(s *Style, isRow bool) (minValue, maxValue Value) {
	if isRow {
		return s.MinHeight, s.MaxHeight
	}
	return s.MinWidth, s.MaxWidth
}

func mainOf(s Size, isRow bool) float32 {
	if isRow {
		return s.Width
	}
	return s.Height
}

func crossOf(s Size, isRow bool) float32 {
	if isRow {
		return s.Height
	}
	return s.Width
}
