package grid

// CellGrid is the resolved, materialized grid produced by the placement
// resolver: cell entries, track sizings, and per-column/per-row line
// vectors (§3). It is immutable for the duration of a layout pass; the
// GridLayouter only ever borrows it.
type CellGrid struct {
	// Cols and Rows are the content-only (pre-gutter) track sizings:
	// len(Cols) == C, len(Rows) == R.
	Cols []Sizing
	Rows []Sizing

	// HasColGutter/HasRowGutter report whether a gutter track is
	// interleaved between every pair of content tracks on that axis.
	HasColGutter bool
	HasRowGutter bool
	ColGutter    Sizing
	RowGutter    Sizing

	// Entries is the logical, content-only grid in row-major order:
	// len(Entries) == C * R (§3 invariant).
	Entries []Entry

	// HLines and VLines are keyed by pre-gutter track number: at most
	// R+1 and C+1 groups respectively (§3).
	HLines map[int][]Line
	VLines map[int][]Line
}

// C returns the number of content columns.
func (g *CellGrid) C() int {
	return len(g.Cols)
}

// R returns the number of content rows.
func (g *CellGrid) R() int {
	return len(g.Rows)
}

// EntryAt returns the logical entry at (x, y).
func (g *CellGrid) EntryAt(x, y int) Entry {
	return g.Entries[y*g.C()+x]
}

// ParentCell resolves (x, y) to its owning cell (following a Merged
// pointer if necessary) along with that cell's linear index.
func (g *CellGrid) ParentCell(x, y int) (*Cell, int) {
	idx := y*g.C() + x
	switch e := g.Entries[idx].(type) {
	case CellEntry:
		return e.Cell, idx
	case MergedEntry:
		if c, ok := g.Entries[e.ParentIndex].(CellEntry); ok {
			return c.Cell, e.ParentIndex
		}
	}
	return nil, idx
}

// IsOrigin reports whether (x, y) is the top-left of the cell occupying
// it, i.e. where a fill or line-run anchor for that cell should start.
func (g *CellGrid) IsOrigin(x, y int) bool {
	cell, _ := g.ParentCell(x, y)
	return cell != nil && cell.X == x && cell.Y == y
}

// PhysicalColCount returns the number of column tracks once gutter
// tracks are interleaved.
func (g *CellGrid) PhysicalColCount() int {
	if !g.HasColGutter || g.C() == 0 {
		return g.C()
	}
	return 2*g.C() - 1
}

// PhysicalRowCount returns the number of row tracks once gutter tracks
// are interleaved.
func (g *CellGrid) PhysicalRowCount() int {
	if !g.HasRowGutter || g.R() == 0 {
		return g.R()
	}
	return 2*g.R() - 1
}

// ToPhysicalCol converts a logical (content-only) column index to its
// physical (gutter-interleaved) track index.
func (g *CellGrid) ToPhysicalCol(x int) int {
	if !g.HasColGutter {
		return x
	}
	return 2 * x
}

// ToPhysicalRow converts a logical row index to its physical track index.
func (g *CellGrid) ToPhysicalRow(y int) int {
	if !g.HasRowGutter {
		return y
	}
	return 2 * y
}

// IsColGutterTrack reports whether a physical column track index is a
// gutter track.
func (g *CellGrid) IsColGutterTrack(physical int) bool {
	return g.HasColGutter && physical%2 == 1
}

// IsRowGutterTrack reports whether a physical row track index is a
// gutter track.
func (g *CellGrid) IsRowGutterTrack(physical int) bool {
	return g.HasRowGutter && physical%2 == 1
}

// ColSizing returns the sizing for a physical column track, be it
// content or gutter.
func (g *CellGrid) ColSizing(physical int) Sizing {
	if g.IsColGutterTrack(physical) {
		return g.ColGutter
	}
	logical := physical
	if g.HasColGutter {
		logical = physical / 2
	}
	return g.Cols[logical]
}

// RowSizing returns the sizing for a physical row track, be it content
// or gutter.
func (g *CellGrid) RowSizing(physical int) Sizing {
	if g.IsRowGutterTrack(physical) {
		return g.RowGutter
	}
	logical := physical
	if g.HasRowGutter {
		logical = physical / 2
	}
	return g.Rows[logical]
}
