package grid

import "github.com/boergens/gridlayout/layout"

// renderAll paints fills and strokes onto every finished region frame
// (§4.8). Fills are prepended first so they sit beneath cell content,
// then line segments, sorted ascending by (thickness, priority) so
// thicker or higher-priority lines paint last, i.e. on top.
func (l *GridLayouter) renderAll(rcols []layout.Abs) {
	colBoundaries := buildColBoundaries(l.Grid, points(rcols))

	for i, frame := range l.finished {
		rowPieces := l.finishedRows[i]

		var prepend []layout.PositionedItem
		prepend = append(prepend, l.collectFills(rowPieces, colBoundaries)...)
		prepend = append(prepend, l.collectLines(rowPieces, colBoundaries)...)
		frame.PrependMultiple(prepend)
	}
}

// points converts a list of track extents into cumulative boundary
// offsets: points([h1, h2, ...]) = [0, h1, h1+h2, ...] (§4.8).
func points(extents []layout.Abs) []layout.Abs {
	out := make([]layout.Abs, len(extents)+1)
	for i, e := range extents {
		out[i+1] = out[i] + e
	}
	return out
}

// colPhysicalBoundary maps a logical column boundary index (0..C) to the
// physical-track index bounding it on the left, handling the fact that
// there is no trailing gutter after the last column.
func colPhysicalBoundary(grid *CellGrid, idx int) int {
	if idx >= grid.C() {
		return grid.PhysicalColCount()
	}
	return grid.ToPhysicalCol(idx)
}

// buildColBoundaries produces the logical column boundary offsets
// (length C+1) columns are never split across regions, so this is the
// same for every region.
func buildColBoundaries(grid *CellGrid, xPoints []layout.Abs) []layout.Abs {
	out := make([]layout.Abs, grid.C()+1)
	for x := 0; x <= grid.C(); x++ {
		out[x] = xPoints[colPhysicalBoundary(grid, x)]
	}
	return out
}

// regionRowRange returns the inclusive logical row range [lo, hi]
// actually present in this region's row pieces, and false if the
// region contains no content rows.
func regionRowRange(grid *CellGrid, rowPieces []rowPiece) (lo, hi int, ok bool) {
	lo, hi = -1, -1
	for _, rp := range rowPieces {
		if grid.IsRowGutterTrack(rp.y) {
			continue
		}
		ly := rp.y
		if grid.HasRowGutter {
			ly = rp.y / 2
		}
		if lo == -1 || ly < lo {
			lo = ly
		}
		if hi == -1 || ly > hi {
			hi = ly
		}
	}
	return lo, hi, lo != -1
}

// buildRowBoundaries produces the logical row boundary offsets for the
// rows present in one region. Only indices within [lo, hi] are filled;
// callers must clip any line ranges to that window before use.
func buildRowBoundaries(grid *CellGrid, rowPieces []rowPiece, lo, hi int) []layout.Abs {
	out := make([]layout.Abs, grid.R()+1)
	off := map[int]layout.Abs{}
	var maxPhys = -1
	var maxEnd layout.Abs
	for _, rp := range rowPieces {
		off[rp.y] = rp.offset
		if rp.y > maxPhys {
			maxPhys = rp.y
			maxEnd = rp.offset + rp.height
		}
	}
	for ry := lo; ry <= hi; ry++ {
		phys := grid.ToPhysicalRow(ry)
		if b, ok := off[phys]; ok {
			out[ry] = b
		}
	}
	out[hi+1] = maxEnd
	return out
}

// clipLines restricts each line's [Start, End) range to [lo, hi), the
// logical rows or columns actually present in the current region, and
// drops lines that fall entirely outside that window.
func clipLines(lines []Line, lo, hi int) []Line {
	var out []Line
	for _, ln := range lines {
		start := ln.Start
		end := hi
		if ln.End != nil {
			end = *ln.End
		}
		if start < lo {
			start = lo
		}
		if end > hi {
			end = hi
		}
		if start >= end {
			continue
		}
		endCopy := end
		clipped := ln
		clipped.Start = start
		clipped.End = &endCopy
		out = append(out, clipped)
	}
	return out
}

// collectFills produces the background fill items for one finished
// region, anchored at each cell's true top-left appearance in that
// region (§4.8, fill invariant in §8).
func (l *GridLayouter) collectFills(rowPieces []rowPiece, colBoundaries []layout.Abs) []layout.PositionedItem {
	grid := l.Grid
	rendered := map[*Cell]bool{}
	var items []layout.PositionedItem

	cols := make([]int, grid.C())
	for i := range cols {
		cols[i] = i
	}
	if l.Dir.IsRTL() {
		for i, j := 0, len(cols)-1; i < j; i, j = i+1, j-1 {
			cols[i], cols[j] = cols[j], cols[i]
		}
	}

	for _, rp := range rowPieces {
		if grid.IsRowGutterTrack(rp.y) {
			continue
		}
		ly := rp.y
		if grid.HasRowGutter {
			ly = rp.y / 2
		}
		for _, x := range cols {
			cell, _ := grid.ParentCell(x, ly)
			if cell == nil || cell.X != x || cell.Fill == nil || rendered[cell] {
				continue
			}
			rendered[cell] = true

			width := colBoundaries[cell.X+cell.Colspan] - colBoundaries[cell.X]
			startRow, endRow := grid.physicalRowSpan(cell)

			var height layout.Abs
			for _, rp2 := range rowPieces {
				if rp2.y >= startRow && rp2.y < endRow {
					height += rp2.height
				}
			}

			xOff := colBoundaries[cell.X]
			if l.Dir.IsRTL() {
				colWidth := colBoundaries[x+1] - colBoundaries[x]
				xOff = colBoundaries[x] + colWidth - width
			}

			items = append(items, layout.PositionedItem{
				Position: layout.Point{X: xOff, Y: rp.offset},
				Item: layout.ShapeItem{
					Shape: layout.RectShape{Size: layout.Size{Width: width, Height: height}},
					Fill:  cell.Fill,
				},
			})
		}
	}
	return items
}

type placedSegment struct {
	seg        Segment
	horizontal bool
	cross      layout.Abs
}

// collectLines produces the stroked line segments for one finished
// region, generated via the segment generator (§4.5, §4.9) and sorted
// so later, thicker/higher-priority segments paint on top.
func (l *GridLayouter) collectLines(rowPieces []rowPiece, colBoundaries []layout.Abs) []layout.PositionedItem {
	grid := l.Grid
	lo, hi, ok := regionRowRange(grid, rowPieces)
	var all []placedSegment

	if ok {
		rowBoundaries := buildRowBoundaries(grid, rowPieces, lo, hi)

		for idx, lines := range grid.VLines {
			if idx < 0 || idx > grid.C() {
				continue
			}
			x := colBoundaries[idx]
			clipped := clipLines(lines, lo, hi+1)
			for _, seg := range generateSegments(grid, false, idx, clipped, rowBoundaries) {
				all = append(all, placedSegment{seg: seg, horizontal: false, cross: x})
			}
		}
		for idx, lines := range grid.HLines {
			if idx < lo || idx > hi+1 {
				continue
			}
			y := rowBoundaries[idx]
			for _, seg := range generateSegments(grid, true, idx, lines, colBoundaries) {
				all = append(all, placedSegment{seg: seg, horizontal: true, cross: y})
			}
		}
	}

	sortSegments(all)

	items := make([]layout.PositionedItem, 0, len(all))
	for _, p := range all {
		var shape layout.Shape
		var pos layout.Point
		if p.horizontal {
			pos = layout.Point{X: p.seg.Offset, Y: p.cross}
			shape = layout.LineShape{Start: layout.Point{}, End: layout.Point{X: p.seg.Length}}
		} else {
			pos = layout.Point{X: p.cross, Y: p.seg.Offset}
			shape = layout.LineShape{Start: layout.Point{}, End: layout.Point{Y: p.seg.Length}}
		}
		items = append(items, layout.PositionedItem{
			Position: pos,
			Item:     layout.ShapeItem{Shape: shape, Stroke: p.seg.Stroke},
		})
	}
	return items
}

// sortSegments stable-sorts ascending by (thickness, priority) so later
// (thicker/higher priority) entries are appended last and paint on top.
func sortSegments(segs []placedSegment) {
	for i := 1; i < len(segs); i++ {
		for j := i; j > 0; j-- {
			a, b := segs[j-1], segs[j]
			at := layout.Abs(0)
			if a.seg.Stroke != nil {
				at = a.seg.Stroke.Thickness
			}
			bt := layout.Abs(0)
			if b.seg.Stroke != nil {
				bt = b.seg.Stroke.Thickness
			}
			if at < bt || (at == bt && a.seg.Priority <= b.seg.Priority) {
				break
			}
			segs[j-1], segs[j] = segs[j], segs[j-1]
		}
	}
}
