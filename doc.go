// Package flex provides an incremental flexbox layout engine for Go.
//
// Users import this single package for the complete public API: engine
// construction, node lifecycle, styles, and computed rects.
//
//	e, _ := flex.New()
//	root, _ := e.AddNode(flex.NoHandle, flex.Style{Width: flex.Fixed(200), Height: flex.Fixed(100)})
//	_ = e.Compute(800, 600)
//	r, _ := e.GetRect(root) // {0 0 200 100}
//
// Only nodes marked dirty since the previous Compute, and nodes whose
// available size changed, are recomputed.
package flex
