package grid

import "github.com/boergens/gridlayout/layout"

// Breakable is the tri-state governing whether a cell may be split
// across regions: Smart defers to whether the cell spans an Auto row,
// otherwise the explicit value wins (§3).
type Breakable int

const (
	// BreakableSmart means "breakable iff this cell spans at least one
	// Auto row".
	BreakableSmart Breakable = iota
	BreakableYes
	BreakableNo
)

// StrokeSides holds an optional stroke per side, shared by reference so
// identical strokes (most commonly the grid default) are not copied into
// every cell.
type StrokeSides = layout.Sides[*layout.Stroke]

// Cell is a single resolved occupant of the grid: content plus all of
// the per-cell decoration resolved from the grid's Celled defaults and
// any cell-local overrides (§3).
type Cell struct {
	Body             Body
	Fill             *Paint
	Colspan          int
	Rowspan          int
	Stroke           StrokeSides
	StrokeOverridden layout.Sides[bool]
	Breakable        Breakable
	Align            layout.Alignment
	Inset            layout.Sides[layout.Rel]
	Span             Span

	// X and Y are the cell's logical top-left position, filled in by the
	// resolver once placement is known.
	X, Y int
}

// EffectiveBreakable resolves the tri-state against whether the cell
// spans at least one Auto row.
func (c *Cell) EffectiveBreakable(spansAutoRow bool) bool {
	switch c.Breakable {
	case BreakableYes:
		return true
	case BreakableNo:
		return false
	default:
		return spansAutoRow
	}
}

// Entry is a logical grid slot: either the cell itself, or a pointer
// back to the parent cell's linear index for a position covered by a
// span (§3).
type Entry interface {
	isEntry()
}

// CellEntry holds a placed cell directly.
type CellEntry struct {
	Cell *Cell
}

func (CellEntry) isEntry() {}

// MergedEntry marks a position covered by another cell's span.
type MergedEntry struct {
	ParentIndex int
}

func (MergedEntry) isEntry() {}

// LinePosition anchors a line to the track before or after its index.
type LinePosition int

const (
	PositionBefore LinePosition = iota
	PositionAfter
)

// Line is a single declared horizontal or vertical line (§3). Index is
// the pre-gutter track number the line is anchored to; End == nil means
// "to the far end".
type Line struct {
	Index    int
	Start    int
	End      *int
	Stroke   *layout.Stroke
	Position LinePosition
	Span     Span
}
