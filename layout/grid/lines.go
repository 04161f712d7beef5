package grid

import "github.com/boergens/gridlayout/layout"

// Segment is a drawable piece of a line, already split around any
// merged cells it would otherwise cross (§4.9).
type Segment struct {
	Stroke   *layout.Stroke
	Offset   layout.Abs
	Length   layout.Abs
	Priority int
}

// The priority constants rank a stroke's source so segments can later be sorted
// so that higher-priority lines paint atop lower-priority ones (§4.8).
const (
	priorityGridDefault = iota
	priorityGridLine
	priorityCellOverride
)

// strokeAt resolves the stroke that should be drawn on the boundary
// between track `index-1` and `index` along a perpendicular track
// `other`, folding declared-line stroke with adjacent cells' overridden
// sides, cell-override taking priority over a declared grid line, which
// in turn takes priority over the grid default (§4.9).
//
// horizontal reports whether this is a horizontal line (so `other` is a
// column and `index` a row) or vertical (so `other` is a row and `index`
// a column).
func strokeAt(g *CellGrid, horizontal bool, index, other int, declared *layout.Stroke) (*layout.Stroke, int) {
	var beforeX, beforeY, afterX, afterY int
	if horizontal {
		beforeX, beforeY = other, index-1
		afterX, afterY = other, index
	} else {
		beforeX, beforeY = index-1, other
		afterX, afterY = index, other
	}

	var beforeCell, afterCell *Cell
	if beforeY >= 0 && beforeY < g.R() && beforeX >= 0 && beforeX < g.C() {
		beforeCell, _ = g.ParentCell(beforeX, beforeY)
	}
	if afterY >= 0 && afterY < g.R() && afterX >= 0 && afterX < g.C() {
		afterCell, _ = g.ParentCell(afterX, afterY)
	}

	pick := func(cell *Cell) (*layout.Stroke, bool) {
		if cell == nil {
			return nil, false
		}
		if horizontal {
			if beforeCell == cell && cell.StrokeOverridden.Bottom {
				return cell.Stroke.Bottom, true
			}
			if afterCell == cell && cell.StrokeOverridden.Top {
				return cell.Stroke.Top, true
			}
		} else {
			if beforeCell == cell && cell.StrokeOverridden.Right {
				return cell.Stroke.Right, true
			}
			if afterCell == cell && cell.StrokeOverridden.Left {
				return cell.Stroke.Left, true
			}
		}
		return nil, false
	}

	if s, ok := pick(afterCell); ok {
		return s, priorityCellOverride
	}
	if s, ok := pick(beforeCell); ok {
		return s, priorityCellOverride
	}
	if declared != nil {
		return declared, priorityGridLine
	}
	if beforeCell != nil {
		if horizontal && beforeCell.Stroke.Bottom != nil {
			return beforeCell.Stroke.Bottom, priorityGridDefault
		}
		if !horizontal && beforeCell.Stroke.Right != nil {
			return beforeCell.Stroke.Right, priorityGridDefault
		}
	}
	if afterCell != nil {
		if horizontal && afterCell.Stroke.Top != nil {
			return afterCell.Stroke.Top, priorityGridDefault
		}
		if !horizontal && afterCell.Stroke.Left != nil {
			return afterCell.Stroke.Left, priorityGridDefault
		}
	}
	return nil, priorityGridDefault
}

// isCoveredByMerge reports whether drawing a line at `index` crossing
// track `other` would pass through the interior of a merged cell — i.e.
// the cell spanning `other` at this boundary is the same cell on both
// sides, so there is no real boundary there at all.
func isCoveredByMerge(g *CellGrid, horizontal bool, index, other int) bool {
	var beforeX, beforeY, afterX, afterY int
	if horizontal {
		beforeX, beforeY = other, index-1
		afterX, afterY = other, index
	} else {
		beforeX, beforeY = index-1, other
		afterX, afterY = index, other
	}
	if beforeY < 0 || beforeY >= g.R() || afterY < 0 || afterY >= g.R() {
		return false
	}
	if beforeX < 0 || beforeX >= g.C() || afterX < 0 || afterX >= g.C() {
		return false
	}
	before, _ := g.ParentCell(beforeX, beforeY)
	after, _ := g.ParentCell(afterX, afterY)
	return before != nil && after != nil && before == after
}

// generateSegments walks the perpendicular tracks covered by [start, end)
// producing stroked segments, collapsing consecutive equal strokes, and
// introducing a gap wherever the line would cross through a merged cell
// (§4.9).
func generateSegments(g *CellGrid, horizontal bool, index int, lines []Line, offsets []layout.Abs) []Segment {
	span := g.C()
	if !horizontal {
		span = g.R()
	}

	// A declared line may restrict [start,end); with multiple lines at
	// the same index we honor each one's own range independently, then
	// let collapsing merge any resulting adjacent equal-stroke runs.
	var out []Segment
	for _, ln := range lines {
		start := ln.Start
		end := span
		if ln.End != nil {
			end = *ln.End
		}
		if start < 0 {
			start = 0
		}
		if end > span {
			end = span
		}

		var cur *Segment
		flush := func() {
			if cur != nil {
				out = append(out, *cur)
				cur = nil
			}
		}
		for other := start; other < end; other++ {
			if isCoveredByMerge(g, horizontal, index, other) {
				flush()
				continue
			}
			stroke, prio := strokeAt(g, horizontal, index, other, ln.Stroke)
			if stroke == nil {
				flush()
				continue
			}
			segStart, segEnd := offsets[other], offsets[other+1]
			if cur != nil && cur.Stroke == stroke && cur.Priority == prio {
				cur.Length = segEnd - cur.Offset
				continue
			}
			flush()
			cur = &Segment{Stroke: stroke, Offset: segStart, Length: segEnd - segStart, Priority: prio}
		}
		flush()
	}
	return out
}
