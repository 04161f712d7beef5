// Package grid implements a paginated grid/table layout engine: given a
// declarative description of a two-dimensional arrangement of content
// cells — track sizings, gutters, spans, per-cell overrides, and custom
// lines — it produces a sequence of page-sized frames with positioned
// cell content, background fills, and stroked line segments.
//
// The package is organized leaf-first, mirroring the algorithm's own
// layering:
//
//   - sizing.go    — Sizing and the column/row track-expansion helpers (§1)
//   - celled.go    — Celled[T], the per-cell-resolvable value (§4.2)
//   - types.go     — Cell, Entry, Line, Stroke sharing (§3 data model)
//   - cellgrid.go  — CellGrid, the resolved, materialized grid (§3)
//   - resolver.go  — the placement resolver (§4.3)
//   - lines.go     — the line/segment generator (§4.5, §4.9)
//   - layouter.go  — GridLayouter and column sizing (§4.4)
//   - rows.go      — row-by-row layout and auto-row measurement (§4.5, §4.6)
//   - rowspans.go  — the rowspan ledger and multi-region placement (§4.7)
//   - render.go    — fill/stroke rendering onto finished frames (§4.8)
//   - body.go      — the Body contract a cell's content must satisfy (§6)
//   - errors.go    — the error kinds raised during resolution and layout (§7)
//
// This is a Go-native implementation grounded in (but not a line-by-line
// port of) Typst's grid layouter; see DESIGN.md at the repository root
// for the grounding ledger.
package grid
