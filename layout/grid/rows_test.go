package grid

import (
	"testing"

	"github.com/boergens/gridlayout/layout"
)

func buildSimpleGrid(t *testing.T, rows []Sizing, cellHeight layout.Abs) *CellGrid {
	t.Helper()
	var items []Item
	for range rows {
		items = append(items, &CellSpec{Body: fixedBody{size: layout.Size{Width: 10, Height: cellHeight}}})
	}
	g, err := Resolve(ResolverInput{
		Cols:  RepeatAuto(1),
		Rows:  rows,
		Items: items,
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return g
}

func TestLayoutSingleRegionFits(t *testing.T) {
	rows := []Sizing{RelSizing{Rel: layout.Rel{Abs: 10}}, RelSizing{Rel: layout.Rel{Abs: 10}}}
	g := buildSimpleGrid(t, rows, 10)

	regions := layout.NewRegions(layout.Size{Width: 50, Height: 100})
	l := NewGridLayouter(g, regions, NewStyles(), layout.DirLTR)
	frag, err := l.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(frag) != 1 {
		t.Fatalf("expected a single region, got %d", len(frag))
	}
}

func TestLayoutBreaksAcrossRegions(t *testing.T) {
	rows := []Sizing{
		RelSizing{Rel: layout.Rel{Abs: 30}},
		RelSizing{Rel: layout.Rel{Abs: 30}},
		RelSizing{Rel: layout.Rel{Abs: 30}},
	}
	g := buildSimpleGrid(t, rows, 30)

	regions := &layout.Regions{
		Size:    layout.Size{Width: 50, Height: 50},
		Base:    layout.Size{Width: 50, Height: 50},
		Full:    50,
		Backlog: []layout.Abs{50, 50},
	}
	l := NewGridLayouter(g, regions, NewStyles(), layout.DirLTR)
	frag, err := l.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	// Rows are never split and two 30pt rows overflow a 50pt region, so
	// each row takes a region of its own.
	if len(frag) != 3 {
		t.Fatalf("expected the three 30pt rows to break into three 50pt regions, got %d region(s)", len(frag))
	}
}

func TestFinishRegionErrorsOnExhaustionWithOpenRowspan(t *testing.T) {
	g := buildSimpleGrid(t, []Sizing{RelSizing{Rel: layout.Rel{Abs: 10}}}, 10)
	regions := layout.NewRegions(layout.Size{Width: 50, Height: 10})
	l := NewGridLayouter(g, regions, NewStyles(), layout.DirLTR)
	l.rcols = []layout.Abs{50}
	l.openRowspans = map[*Cell]*rowspanRecord{
		g.Entries[0].(CellEntry).Cell: {cell: g.Entries[0].(CellEntry).Cell, perRegionHeights: []layout.Abs{10}},
	}
	var pendingFr []frPlaceholder
	err := l.finishRegion(50, &pendingFr)
	if err == nil {
		t.Fatal("expected rowCannotFitError when the region stream is exhausted with an open rowspan")
	}
	ge, ok := err.(*Error)
	if !ok || ge.Kind != KindRowCannotFit {
		t.Fatalf("expected KindRowCannotFit, got %v", err)
	}
}

func TestFrRowFillsLeftoverHeight(t *testing.T) {
	rows := []Sizing{RelSizing{Rel: layout.Rel{Abs: 20}}, FrSizing{Fr: 1}}
	g := buildSimpleGrid(t, rows, 20)

	regions := layout.NewRegions(layout.Size{Width: 50, Height: 100})
	l := NewGridLayouter(g, regions, NewStyles(), layout.DirLTR)
	frag, err := l.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(frag) != 1 {
		t.Fatalf("expected a single region, got %d", len(frag))
	}
	if frag[0].Height() != 100 {
		t.Errorf("expected the region frame to expand to the full 100pt height, got %v", frag[0].Height())
	}
}

// TestAutoRowSplitsAcrossRegions exercises a single Auto row whose cell
// measures taller than the current region: the row must be cut into one
// frame per region instead of overflowing a single, too-short frame.
// A 30pt-tall cell against a 15pt region with a 15pt backlog entry should
// produce two 15pt frames and leave the rowspan ledger untouched.
func TestAutoRowSplitsAcrossRegions(t *testing.T) {
	g, err := Resolve(ResolverInput{
		Cols: []Sizing{RelSizing{Rel: layout.Rel{Abs: 50}}},
		Rows: RepeatAuto(1),
		Items: []Item{
			&CellSpec{Body: splittingBody{width: 50, height: 30}},
		},
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	regions := &layout.Regions{
		Size:    layout.Size{Width: 50, Height: 15},
		Base:    layout.Size{Width: 50, Height: 15},
		Full:    15,
		Backlog: []layout.Abs{15},
	}
	l := NewGridLayouter(g, regions, NewStyles(), layout.DirLTR)
	frag, err := l.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(frag) != 2 {
		t.Fatalf("expected the 30pt row to split across two 15pt regions, got %d", len(frag))
	}
	if h := frag[0].Height(); h != 15 {
		t.Errorf("expected the first frame to be 15pt, got %v", h)
	}
	if h := frag[1].Height(); h != 15 {
		t.Errorf("expected the second frame to be 15pt, got %v", h)
	}
	if len(l.openRowspans) != 0 {
		t.Errorf("expected the rowspan ledger to stay empty, got %d entries", len(l.openRowspans))
	}
}

// TestLayoutSingleRowRejectsInfiniteHeight confirms an unbreakable row
// that resolves to a non-finite height raises KindInvalidFixedHeight
// instead of silently measuring cells against an infinite region.
func TestLayoutSingleRowRejectsInfiniteHeight(t *testing.T) {
	g := buildSimpleGrid(t, []Sizing{RelSizing{Rel: layout.Rel{Abs: 10}}}, 10)
	regions := layout.NewRegions(layout.Size{Width: 50, Height: 10})
	l := NewGridLayouter(g, regions, NewStyles(), layout.DirLTR)
	l.rcols = []layout.Abs{50}

	_, err := l.layoutSingleRow(0, layout.Infinite(), l.rcols, 50)
	if err == nil {
		t.Fatal("expected invalidFixedHeightError for an infinite row height")
	}
	ge, ok := err.(*Error)
	if !ok || ge.Kind != KindInvalidFixedHeight {
		t.Fatalf("expected KindInvalidFixedHeight, got %v", err)
	}
}

func TestRowspanSplicesAcrossRegions(t *testing.T) {
	tall := fixedBody{size: layout.Size{Width: 10, Height: 90}}
	short := fixedBody{size: layout.Size{Width: 10, Height: 30}}

	g, err := Resolve(ResolverInput{
		Cols: RepeatAuto(2),
		Rows: []Sizing{
			RelSizing{Rel: layout.Rel{Abs: 30}},
			RelSizing{Rel: layout.Rel{Abs: 30}},
			RelSizing{Rel: layout.Rel{Abs: 30}},
		},
		Items: []Item{
			// Smart breakability over Rel rows would make the span unbreakable.
			&CellSpec{X: intp(0), Y: intp(0), Rowspan: 3, Body: tall, Breakable: BreakableYes},
			&CellSpec{X: intp(1), Y: intp(0), Body: short},
			&CellSpec{X: intp(1), Y: intp(1), Body: short},
			&CellSpec{X: intp(1), Y: intp(2), Body: short},
		},
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	regions := &layout.Regions{
		Size:    layout.Size{Width: 100, Height: 50},
		Base:    layout.Size{Width: 100, Height: 50},
		Full:    50,
		Backlog: []layout.Abs{50, 50},
	}
	l := NewGridLayouter(g, regions, NewStyles(), layout.DirLTR)
	frag, err := l.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(frag) != 3 {
		t.Fatalf("expected the rowspan's three 30pt rows to break into three 50pt regions, got %d", len(frag))
	}
	for i, f := range frag {
		if f.IsEmpty() {
			t.Errorf("region %d should contain spliced rowspan content", i)
		}
	}
}
