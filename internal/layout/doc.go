// Package layout implements an incremental flexbox layout engine over an
// index-based node tree.
//
// Nodes live in an arena and are addressed by generation-checked [Handle]s.
// Mutations ([Engine.AddNode], [Engine.SetStyle], [Engine.Reparent],
// [Engine.RemoveNode], [Engine.MarkDirty]) queue the affected node and its
// ancestors. [Engine.Compute] then re-runs the flex solver only for queued
// nodes and for nodes whose available size changed, consulting a one-entry
// per-node cache keyed by (available width, available height, style
// version). Computed rects are read back with [Engine.GetRect].
//
// Types are re-exported through the root flex package for public consumption.
package layout
