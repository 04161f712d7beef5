package grid

import (
	"github.com/boergens/gridlayout/layout"
	"github.com/olekukonko/ll"
)

// GridLayouter is the main engine: it owns a CellGrid and a region
// stream and produces a Fragment of page frames (§2, §4.4–§4.8).
type GridLayouter struct {
	Grid    *CellGrid
	Regions *layout.Regions
	Styles  *Styles
	Dir     layout.Dir

	rcols []layout.Abs

	finished          []*layout.Frame
	finishedRows      [][]rowPiece
	rows              []rowPiece
	regionHeightSoFar layout.Abs

	unbreakableRowsLeft int
	pendingRowspans     []*rowspanRecord
	openRowspans        map[*Cell]*rowspanRecord

	logger *ll.Logger
}

// rowPiece records a single laid-out row (or row slice) within the
// current, not-yet-finished region frame.
type rowPiece struct {
	y      int // physical row index
	offset layout.Abs
	height layout.Abs
	frame  *layout.Frame
}

// NewGridLayouter constructs a layouter ready to run Layout.
func NewGridLayouter(grid *CellGrid, regions *layout.Regions, styles *Styles, dir layout.Dir) *GridLayouter {
	return &GridLayouter{
		Grid:    grid,
		Regions: regions,
		Styles:  styles,
		Dir:     dir,
		logger:  newLogger(),
	}
}

// physicalColSpan returns the physical column range [start, end) a cell
// occupies, including any gutter columns interleaved within its span.
func (g *CellGrid) physicalColSpan(cell *Cell) (start, end int) {
	start = g.ToPhysicalCol(cell.X)
	end = g.ToPhysicalCol(cell.X+cell.Colspan-1) + 1
	return
}

// physicalRowSpan returns the physical row range [start, end) a cell
// occupies, including any gutter rows interleaved within its span.
func (g *CellGrid) physicalRowSpan(cell *Cell) (start, end int) {
	start = g.ToPhysicalRow(cell.Y)
	end = g.ToPhysicalRow(cell.Y+cell.Rowspan-1) + 1
	return
}

// resolveColumns computes the resolved physical column widths for a
// region of the given width and base size (§4.4).
func (l *GridLayouter) resolveColumns(regionWidth layout.Abs, base layout.Size) ([]layout.Abs, error) {
	grid := l.Grid
	n := grid.PhysicalColCount()
	rcols := make([]layout.Abs, n)

	// Phase 1: relative sum & fractional sum.
	var sumRel layout.Abs
	var sumFr layout.Fr
	var frIdx []int
	for i := 0; i < n; i++ {
		switch s := grid.ColSizing(i).(type) {
		case RelSizing:
			rcols[i] = s.Rel.Resolve(base.Width)
			sumRel += rcols[i]
		case FrSizing:
			sumFr += s.Fr
			frIdx = append(frIdx, i)
		}
	}

	available := regionWidth - sumRel

	// Phase 2: auto column sizing.
	var autoLogical []int
	fracLogicalSet := map[int]bool{}
	for x, s := range grid.Cols {
		if IsAuto(s) {
			autoLogical = append(autoLogical, x)
		}
		if _, ok := IsFr(s); ok {
			fracLogicalSet[x] = true
		}
	}

	if available >= 0 {
		for _, x := range autoLogical {
			resolved, err := l.resolveAutoColumn(x, available, base, rcols)
			if err != nil {
				return nil, err
			}
			rcols[grid.ToPhysicalCol(x)] = resolved
		}
	}

	var sumAuto layout.Abs
	for _, x := range autoLogical {
		sumAuto += rcols[grid.ToPhysicalCol(x)]
	}

	// Step 3: distribute remainder.
	remainder := available - sumAuto
	if remainder >= 0 && sumFr > 0 {
		for _, i := range frIdx {
			fr := grid.ColSizing(i).(FrSizing).Fr
			rcols[i] = fr.Share(sumFr, remainder)
		}
	} else if available >= 0 {
		autoPhysical := make([]int, len(autoLogical))
		for i, x := range autoLogical {
			autoPhysical[i] = grid.ToPhysicalCol(x)
		}
		shrinkAutoColumns(rcols, autoPhysical, available)
	}

	l.logger.Debug("resolveColumns: width=%v rcols=%v", regionWidth, rcols)
	return rcols, nil
}

// resolveAutoColumn measures the cells that claim logical column x as
// their last auto column and returns the column's resolved width
// (§4.4 step 2).
func (l *GridLayouter) resolveAutoColumn(x int, available layout.Abs, base layout.Size, rcols []layout.Abs) (layout.Abs, error) {
	grid := l.Grid
	var resolved layout.Abs

	for y := 0; y < grid.R(); y++ {
		cell, _ := grid.ParentCell(x, y)
		if cell == nil || cell.Y != y {
			continue
		}

		lastAuto := -1
		for dx := 0; dx < cell.Colspan; dx++ {
			cx := cell.X + dx
			if cx < len(grid.Cols) && IsAuto(grid.Cols[cx]) {
				lastAuto = cx
			}
		}
		if lastAuto != x {
			continue
		}

		if available.IsFinite() {
			allFr := len(fracColumnsIn(grid, cell.X, cell.Colspan)) > 0 && coversAllFr(grid, cell.X, cell.Colspan)
			if allFr {
				continue
			}
		}

		height := base.Height
		allRel := true
		var sumRelHeight layout.Abs
		for dy := 0; dy < cell.Rowspan; dy++ {
			ry := cell.Y + dy
			if ry >= len(grid.Rows) {
				allRel = false
				break
			}
			if rel, ok := IsRel(grid.Rows[ry]); ok {
				sumRelHeight += rel.Resolve(base.Height)
			} else {
				allRel = false
				break
			}
		}
		if allRel {
			height = sumRelHeight
		}

		measureRegions := layout.NewRegions(layout.Size{Width: available, Height: height})
		frag, err := cell.Body.Measure(l.Styles, measureRegions)
		if err != nil {
			return 0, err
		}
		var measuredWidth layout.Abs
		if !frag.IsEmpty() {
			measuredWidth = frag[0].Width()
		}

		// Columns before x in this cell's span are already resolved:
		// relative/gutter tracks from phase 1, and any earlier auto
		// column from an earlier iteration of this same loop (auto
		// columns are processed in ascending logical order).
		start, _ := grid.physicalColSpan(cell)
		var covered layout.Abs
		for i := start; i < grid.ToPhysicalCol(x); i++ {
			covered += rcols[i]
		}

		contribution := (measuredWidth - covered).Max(0)
		resolved = resolved.Max(contribution)
	}
	return resolved, nil
}

func fracColumnsIn(grid *CellGrid, startX, colspan int) []int {
	var out []int
	for dx := 0; dx < colspan; dx++ {
		x := startX + dx
		if x >= len(grid.Cols) {
			continue
		}
		if _, ok := IsFr(grid.Cols[x]); ok {
			out = append(out, x)
		}
	}
	return out
}

// coversAllFr reports whether every fractional column in the whole grid
// falls within [startX, startX+colspan) — the heuristic that lets a
// cell skip contributing to auto-column sizing because the fractional
// columns it also spans will absorb the remainder anyway (§4.4).
func coversAllFr(grid *CellGrid, startX, colspan int) bool {
	for x, s := range grid.Cols {
		if _, ok := IsFr(s); ok {
			if x < startX || x >= startX+colspan {
				return false
			}
		}
	}
	return true
}

// shrinkAutoColumns implements the fair-share shrink algorithm used
// when auto (and relative) columns together overflow the available
// width (§4.4 step 3).
func shrinkAutoColumns(rcols []layout.Abs, autoIdx []int, available layout.Abs) {
	if len(autoIdx) == 0 {
		return
	}
	pool := append([]int(nil), autoIdx...)
	remaining := available
	first := true
	var prevFair layout.Abs

	for len(pool) > 0 {
		fair := remaining / layout.Abs(len(pool))
		var kept []int
		changed := false
		for _, idx := range pool {
			if rcols[idx] <= fair && (first || rcols[idx] > prevFair) {
				remaining -= rcols[idx]
				changed = true
				continue
			}
			kept = append(kept, idx)
		}
		pool = kept
		prevFair = fair
		first = false
		if !changed {
			break
		}
	}

	// Every auto column fit within its fair share: none is overlarge.
	if len(pool) == 0 {
		return
	}
	fair := (remaining / layout.Abs(len(pool))).Max(0)
	for _, idx := range autoIdx {
		if rcols[idx] > fair {
			rcols[idx] = fair
		}
	}
}
