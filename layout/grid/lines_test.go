package grid

import (
	"testing"

	"github.com/boergens/gridlayout/layout"
)

func TestIsCoveredByMerge(t *testing.T) {
	g := newTestGrid(2, 2, false, false)
	origin := &Cell{Body: emptyBody{}, Colspan: 1, Rowspan: 2, X: 0, Y: 0}
	g.Entries[0] = CellEntry{Cell: origin} // (0,0)
	g.Entries[2] = MergedEntry{ParentIndex: 0} // (0,1)

	if !isCoveredByMerge(g, true, 1, 0) {
		t.Error("the boundary between (0,0) and (0,1) should be covered by the rowspan")
	}
	if isCoveredByMerge(g, true, 0, 0) {
		t.Error("the grid's top border is never covered by a merge")
	}
}

func TestStrokeAtGridDefault(t *testing.T) {
	g := newTestGrid(2, 1, false, false)
	stroke := &layout.Stroke{Thickness: 1}
	g.Entries[0].(CellEntry).Cell.Stroke.Right = stroke
	s, prio := strokeAt(g, false, 1, 0, nil)
	if s != stroke {
		t.Errorf("expected the left cell's default right stroke, got %v", s)
	}
	if prio != priorityGridDefault {
		t.Errorf("expected priorityGridDefault, got %d", prio)
	}
}

func TestStrokeAtDeclaredLineWins(t *testing.T) {
	g := newTestGrid(2, 1, false, false)
	declared := &layout.Stroke{Thickness: 2}
	s, prio := strokeAt(g, false, 1, 0, declared)
	if s != declared || prio != priorityGridLine {
		t.Errorf("expected the declared line to win with priorityGridLine, got %v, %d", s, prio)
	}
}

func TestStrokeAtCellOverrideWinsOverDeclared(t *testing.T) {
	g := newTestGrid(2, 1, false, false)
	override := &layout.Stroke{Thickness: 3}
	cell := g.Entries[0].(CellEntry).Cell
	cell.Stroke.Right = override
	cell.StrokeOverridden.Right = true

	declared := &layout.Stroke{Thickness: 2}
	s, prio := strokeAt(g, false, 1, 0, declared)
	if s != override || prio != priorityCellOverride {
		t.Errorf("expected the cell override to win, got %v, %d", s, prio)
	}
}

func TestGenerateSegmentsCollapsesEqualRuns(t *testing.T) {
	g := newTestGrid(3, 1, false, false)
	stroke := &layout.Stroke{Thickness: 1}
	line := Line{Index: 1, Start: 0, Stroke: stroke}
	offsets := []layout.Abs{0, 10, 20, 30}

	segs := generateSegments(g, true, 1, []Line{line}, offsets)
	if len(segs) != 1 {
		t.Fatalf("expected a single collapsed segment, got %d: %+v", len(segs), segs)
	}
	if segs[0].Offset != 0 || segs[0].Length != 30 {
		t.Errorf("expected a segment spanning the whole row, got offset=%v length=%v", segs[0].Offset, segs[0].Length)
	}
}

func TestGenerateSegmentsGapAtMerge(t *testing.T) {
	g := newTestGrid(2, 2, false, false)
	origin := &Cell{Body: emptyBody{}, Colspan: 1, Rowspan: 2, X: 0, Y: 0}
	g.Entries[0] = CellEntry{Cell: origin}
	g.Entries[2] = MergedEntry{ParentIndex: 0}
	for i := 1; i < 4; i += 2 {
		g.Entries[i] = CellEntry{Cell: &Cell{Body: emptyBody{}, Colspan: 1, Rowspan: 1, X: 1, Y: i / 2}}
	}

	stroke := &layout.Stroke{Thickness: 1}
	declared := Line{Index: 1, Start: 0, Stroke: stroke}
	offsets := []layout.Abs{0, 10, 20}

	segs := generateSegments(g, true, 1, []Line{declared}, offsets)
	// Column 0 is covered by the rowspan (no segment); column 1 is not.
	if len(segs) != 1 {
		t.Fatalf("expected exactly one segment (column 1 only), got %d: %+v", len(segs), segs)
	}
	if segs[0].Offset != 10 {
		t.Errorf("expected the surviving segment to start at column 1's offset (10), got %v", segs[0].Offset)
	}
}
