package grid

import "github.com/boergens/gridlayout/layout"

// rowspanRecord tracks a cell with Rowspan > 1 as the rows it covers are
// placed: where it starts, and how much height it has accumulated in
// each region it has passed through so far (§4.7).
type rowspanRecord struct {
	cell             *Cell
	firstRegion      int
	dy               layout.Abs
	perRegionHeights []layout.Abs
}

type frPlaceholder struct {
	rowIndex int
	ly       int
	fr       layout.Fr
}

// Layout runs the full algorithm: column sizing, row-by-row placement
// (§4.5), auto-row measurement (§4.6), rowspan finalization (§4.7), and
// rendering (§4.8), returning the finished page fragment.
func (l *GridLayouter) Layout() (Fragment, error) {
	grid := l.Grid
	base := l.Regions.Base

	rcols, err := l.resolveColumns(l.Regions.Size.Width, base)
	if err != nil {
		return nil, err
	}
	l.rcols = rcols
	totalWidth := sumAbs(rcols)

	l.openRowspans = map[*Cell]*rowspanRecord{}
	var pendingFr []frPlaceholder

	physicalRows := grid.PhysicalRowCount()
	for py := 0; py < physicalRows; py++ {
		if grid.IsRowGutterTrack(py) {
			if len(l.rows) == 0 {
				continue // gutter suppression: nothing placed yet this region
			}
			h := l.resolveGutterHeight(grid.RowGutter, base)
			if err := l.ensureFits(h, totalWidth, &pendingFr); err != nil {
				return nil, err
			}
			l.pushRow(py, h, layout.NewFrame(layout.Size{Width: totalWidth, Height: h}))
			continue
		}

		ly := py
		if grid.HasRowGutter {
			ly = py / 2
		}

		if err := l.ensureFits(0, totalWidth, &pendingFr); err != nil {
			return nil, err
		}

		l.detectUnbreakableGroup(ly)

		switch s := grid.Rows[ly].(type) {
		case RelSizing:
			h := s.Rel.Resolve(base.Height)
			if err := l.ensureFits(h, totalWidth, &pendingFr); err != nil {
				return nil, err
			}
			frame, err := l.layoutSingleRow(ly, h, rcols, totalWidth)
			if err != nil {
				return nil, err
			}
			l.trackRowspans(ly, h)
			l.pushRow(py, h, frame)

		case FrSizing:
			idx := len(l.rows)
			l.pushRow(py, 0, layout.NewFrame(layout.Size{Width: totalWidth, Height: 0}))
			pendingFr = append(pendingFr, frPlaceholder{rowIndex: idx, ly: ly, fr: s.Fr})

		default: // Auto
			if err := l.layoutAutoRow(py, ly, rcols, base, totalWidth, &pendingFr); err != nil {
				return nil, err
			}
		}

		if l.unbreakableRowsLeft > 0 {
			l.unbreakableRowsLeft--
		}
	}

	if err := l.finishRegion(totalWidth, &pendingFr); err != nil {
		return nil, err
	}

	if err := l.layoutPendingRowspans(base); err != nil {
		return nil, err
	}

	l.renderAll(rcols)

	return layout.Fragment(l.finished), nil
}

// ensureFits breaks to the next region if adding a row of height h
// would overflow the region under construction (§4.5 step 5). A row is
// never split mid-height: an unbreakable run, or the first row of an
// otherwise-empty region, always commits regardless of overflow.
func (l *GridLayouter) ensureFits(h layout.Abs, totalWidth layout.Abs, pendingFr *[]frPlaceholder) error {
	if l.unbreakableRowsLeft > 0 || len(l.rows) == 0 {
		return nil
	}
	if !l.Regions.Full.IsFinite() || l.regionHeightSoFar+h <= l.Regions.Full+1e-6 {
		return nil
	}
	return l.finishRegion(totalWidth, pendingFr)
}

// pushRow appends a freshly built row frame to the region under
// construction, recording its vertical offset.
func (l *GridLayouter) pushRow(py int, h layout.Abs, frame *layout.Frame) {
	l.rows = append(l.rows, rowPiece{y: py, height: h, frame: frame})
	l.regionHeightSoFar += h
}

// resolveGutterHeight resolves a row gutter's sizing; fractional gutters
// are treated as zero-width since remainder distribution for gutters is
// out of scope (gutters are ordinarily a fixed relative length).
func (l *GridLayouter) resolveGutterHeight(s Sizing, base layout.Size) layout.Abs {
	if rel, ok := IsRel(s); ok {
		return rel.Resolve(base.Height)
	}
	return 0
}

// detectUnbreakableGroup looks at the row about to be placed and, when
// it is the origin of an unbreakable rowspan, extends unbreakableRowsLeft
// to cover the rest of its span (§4.5 step 4).
//
// This is a deliberately simplified stand-in for the full simulate-then-
// decide algorithm in §4.5/§9: it does not re-simulate row heights to
// decide whether the whole group fits before committing, and it does
// not reconcile overlapping unbreakable groups from multiple rowspans.
// Documented as an accepted approximation, in the same spirit as the
// "effectively unbreakable rowspan" heuristic the design notes call out.
func (l *GridLayouter) detectUnbreakableGroup(ly int) {
	grid := l.Grid
	for x := 0; x < grid.C(); x++ {
		cell, _ := grid.ParentCell(x, ly)
		if cell == nil || cell.X != x || cell.Y != ly || cell.Rowspan <= 1 {
			continue
		}
		spansAutoRow := false
		for dy := 0; dy < cell.Rowspan; dy++ {
			ry := cell.Y + dy
			if ry < len(grid.Rows) && IsAuto(grid.Rows[ry]) {
				spansAutoRow = true
				break
			}
		}
		if cell.EffectiveBreakable(spansAutoRow) {
			continue
		}
		start, end := grid.physicalRowSpan(cell)
		need := end - start
		if need > l.unbreakableRowsLeft {
			l.unbreakableRowsLeft = need
		}
	}
}

// measureAutoRow computes an Auto row's per-region heights from the cells
// whose span ends there (§4.6). A rowspan>1 cell still measures against a
// single unbounded region — joint per-region rowspan simulation is out of
// scope, the same documented simplification as before — but a breakable
// rowspan==1 cell is measured against the real region stream (current
// remaining height plus backlog), so a single tall cell that outgrows the
// region produces a multi-entry result the caller cuts into several
// frames. A rowspan==1 cell with BreakableNo, or any cell inside an
// unbreakable group, is measured in a single unbounded region instead.
//
// When canSkip is true and the cell is breakable, a cell whose first
// measured region comes back empty while a later one does not causes
// measureAutoRow to report skip=true: the caller must finish the current
// region and remeasure with canSkip=false before trusting the result.
func (l *GridLayouter) measureAutoRow(ly int, rcols []layout.Abs, base layout.Size, canSkip bool) (resolved []layout.Abs, skip bool, err error) {
	grid := l.Grid
	unbreakable := l.unbreakableRowsLeft > 0

	for x := 0; x < grid.C(); x++ {
		cell, _ := grid.ParentCell(x, ly)
		if cell == nil || cell.X != x {
			continue
		}
		if cell.Y+cell.Rowspan-1 != ly {
			continue // only the last spanned row of a rowspan measures it
		}

		width := spanWidth(grid, rcols, cell)
		var heights []layout.Abs

		if cell.Rowspan > 1 {
			measureRegions := layout.NewRegions(layout.Size{Width: width, Height: layout.Infinite()})
			frag, ferr := cell.Body.Measure(l.Styles, measureRegions)
			if ferr != nil {
				return nil, false, ferr
			}
			if frag.IsEmpty() {
				continue
			}
			measured := frag[0].Height()
			var already layout.Abs
			for dy := 0; dy < cell.Rowspan-1; dy++ {
				ry := cell.Y + dy
				if rel, ok := IsRel(grid.Rows[ry]); ok {
					already += rel.Resolve(base.Height)
				}
			}
			heights = []layout.Abs{(measured - already).Max(0)}
		} else {
			// The row is Auto, so a Smart cell here is breakable.
			cellUnbreakable := unbreakable || !cell.EffectiveBreakable(true)
			budget := (l.Regions.Size.Height - l.regionHeightSoFar).Max(0)
			measureRegions := &layout.Regions{
				Size: layout.Size{Width: width, Height: budget},
				Base: base,
				Full: l.Regions.Full,
			}
			if cellUnbreakable {
				measureRegions.Size.Height = layout.Infinite()
			} else {
				measureRegions.Backlog = l.Regions.Backlog
				measureRegions.Last = l.Regions.Last
			}

			frag, ferr := cell.Body.Measure(l.Styles, measureRegions)
			if ferr != nil {
				return nil, false, ferr
			}
			if frag.IsEmpty() {
				continue
			}
			if canSkip && !cellUnbreakable && len(frag) > 1 && frag[0].Height() <= 0 {
				for _, f := range frag[1:] {
					if f.Height() > 0 {
						return nil, true, nil
					}
				}
			}
			heights = make([]layout.Abs, len(frag))
			for i, f := range frag {
				heights[i] = f.Height()
			}
		}

		for i, h := range heights {
			if i >= len(resolved) {
				resolved = append(resolved, h)
			} else if h > resolved[i] {
				resolved[i] = h
			}
		}
	}
	return resolved, false, nil
}

// layoutAutoRow runs the full measure/cut/place cycle for an Auto row
// (§4.6, §4.7): measure with skip enabled, remeasure without skip if the
// caller must finish the region first, then either place a single frame
// or cut the row across as many regions as the measurement produced,
// finishing a region between each piece.
func (l *GridLayouter) layoutAutoRow(py, ly int, rcols []layout.Abs, base layout.Size, totalWidth layout.Abs, pendingFr *[]frPlaceholder) error {
	resolved, skip, err := l.measureAutoRow(ly, rcols, base, true)
	if err != nil {
		return err
	}
	if skip {
		if err := l.finishRegion(totalWidth, pendingFr); err != nil {
			return err
		}
		resolved, _, err = l.measureAutoRow(ly, rcols, base, false)
		if err != nil {
			return err
		}
	}

	if len(resolved) == 0 {
		return nil
	}

	if len(resolved) == 1 {
		h := resolved[0]
		if err := l.ensureFits(h, totalWidth, pendingFr); err != nil {
			return err
		}
		frame, err := l.layoutSingleRow(ly, h, rcols, totalWidth)
		if err != nil {
			return err
		}
		l.trackRowspans(ly, h)
		l.pushRow(py, h, frame)
		return nil
	}

	// Expand all but the last region's height to the room actually
	// available there, skipping the first pairing when a deferred Fr row
	// has already claimed the current region's remaining space.
	room := l.regionRoomIter()
	skipFirst := 0
	if len(*pendingFr) > 0 {
		skipFirst = 1
	}
	for i := 0; i < len(resolved)-1; i++ {
		r := room()
		if i < skipFirst {
			continue
		}
		if r.IsFinite() && r > resolved[i] {
			resolved[i] = r
		}
	}

	frames, err := l.layoutMultiRowCells(ly, resolved, rcols, totalWidth)
	if err != nil {
		return err
	}
	for i, frame := range frames {
		l.trackRowspans(ly, resolved[i])
		l.pushRow(py, resolved[i], frame)
		if i+1 < len(frames) {
			if err := l.finishRegion(totalWidth, pendingFr); err != nil {
				return err
			}
		}
	}
	return nil
}

// regionRoomIter returns a generator of the room available to a row in
// the current region, then in each region of the backlog, then
// (repeating) the final backlog height or the unboundedly repeatable
// last region — mirroring layout.RegionsIter but scoped to "room left for
// this row" rather than a region's raw total height.
func (l *GridLayouter) regionRoomIter() func() layout.Abs {
	i := -1
	return func() layout.Abs {
		i++
		if i == 0 {
			return (l.Regions.Size.Height - l.regionHeightSoFar).Max(0)
		}
		backlogIdx := i - 1
		if backlogIdx < len(l.Regions.Backlog) {
			return l.Regions.Backlog[backlogIdx]
		}
		if l.Regions.Last != nil {
			return *l.Regions.Last
		}
		if n := len(l.Regions.Backlog); n > 0 {
			return l.Regions.Backlog[n-1]
		}
		return l.Regions.Size.Height
	}
}

// layoutSingleRow validates that height is finite, then places the row's
// cells into a single frame (§4.5 step 5, §4.7 "one region").
func (l *GridLayouter) layoutSingleRow(ly int, height layout.Abs, rcols []layout.Abs, totalWidth layout.Abs) (*layout.Frame, error) {
	if !height.IsFinite() {
		return nil, invalidFixedHeightError(NoSpan, "cannot create grid row with infinite height")
	}
	return l.layoutRowCells(ly, height, rcols, totalWidth)
}

// layoutRowCells lays out every cell originating at logical row ly with
// Rowspan == 1 into a single row frame of the given height. Cells with
// Rowspan > 1 are excluded — they are tracked by the rowspan ledger and
// spliced in after all rows are placed (§4.7).
func (l *GridLayouter) layoutRowCells(ly int, height layout.Abs, rcols []layout.Abs, totalWidth layout.Abs) (*layout.Frame, error) {
	grid := l.Grid
	frame := layout.NewFrame(layout.Size{Width: totalWidth, Height: height})
	full := height
	if IsAuto(grid.Rows[ly]) {
		full = l.Regions.Full
	}

	for x := 0; x < grid.C(); x++ {
		cell, _ := grid.ParentCell(x, ly)
		if cell == nil || cell.X != x || cell.Y != ly || cell.Rowspan > 1 {
			continue
		}
		width := spanWidth(grid, rcols, cell)
		xOffset := spanOffset(grid, rcols, cell)

		regions := layout.NewRegions(layout.Size{Width: width, Height: height})
		regions.Full = full
		frag, err := cell.Body.Layout(l.Styles, regions)
		if err != nil {
			return nil, err
		}
		if !frag.IsEmpty() {
			frame.PushFrame(layout.Point{X: xOffset}, frag[0])
		}
	}
	return frame, nil
}

// layoutMultiRowCells lays out an Auto row's Rowspan == 1 cells across the
// already-resolved per-region heights, splicing each cell's resulting
// fragment into the corresponding region frame (§4.6, §4.7). A cell whose
// content is shorter than the row simply contributes fewer frames; later
// region frames are left to the taller cells that produced them.
func (l *GridLayouter) layoutMultiRowCells(ly int, heights []layout.Abs, rcols []layout.Abs, totalWidth layout.Abs) ([]*layout.Frame, error) {
	grid := l.Grid
	outputs := make([]*layout.Frame, len(heights))
	for i, h := range heights {
		outputs[i] = layout.NewFrame(layout.Size{Width: totalWidth, Height: h})
	}

	for x := 0; x < grid.C(); x++ {
		cell, _ := grid.ParentCell(x, ly)
		if cell == nil || cell.X != x || cell.Y != ly || cell.Rowspan > 1 {
			continue
		}
		width := spanWidth(grid, rcols, cell)
		xOffset := spanOffset(grid, rcols, cell)

		regions := &layout.Regions{
			Size:    layout.Size{Width: width, Height: heights[0]},
			Base:    l.Regions.Base,
			Full:    l.Regions.Full,
			Backlog: append([]layout.Abs(nil), heights[1:]...),
		}
		frag, err := cell.Body.Layout(l.Styles, regions)
		if err != nil {
			return nil, err
		}
		for i, frame := range frag {
			if i >= len(outputs) {
				break
			}
			outputs[i].PushFrame(layout.Point{X: xOffset}, frame)
		}
	}
	return outputs, nil
}

// trackRowspans accumulates a completed row's height into any rowspan
// ledger entries it participates in, opening a new entry at the span's
// origin row and closing it at the span's last row (§4.7).
func (l *GridLayouter) trackRowspans(ly int, h layout.Abs) {
	grid := l.Grid
	for x := 0; x < grid.C(); x++ {
		cell, _ := grid.ParentCell(x, ly)
		if cell == nil || cell.X != x || cell.Rowspan <= 1 {
			continue
		}
		rec, ok := l.openRowspans[cell]
		if !ok {
			rec = &rowspanRecord{
				cell:             cell,
				firstRegion:      len(l.finished),
				dy:               l.regionHeightSoFar,
				perRegionHeights: []layout.Abs{0},
			}
			l.openRowspans[cell] = rec
		}
		rec.perRegionHeights[len(rec.perRegionHeights)-1] += h
		if ly == cell.Y+cell.Rowspan-1 {
			l.pendingRowspans = append(l.pendingRowspans, rec)
			delete(l.openRowspans, cell)
		}
	}
}

// resolvePendingFr distributes a region's leftover height among any
// deferred Fr rows, then lays out their cells (§4.4 Fr rows, scenario 4).
func (l *GridLayouter) resolvePendingFr(pendingFr *[]frPlaceholder, totalWidth layout.Abs) error {
	if len(*pendingFr) == 0 {
		return nil
	}
	var totalFixed layout.Abs
	var sumFr layout.Fr
	for i, rp := range l.rows {
		isFr := false
		for _, p := range *pendingFr {
			if p.rowIndex == i {
				isFr = true
				break
			}
		}
		if !isFr {
			totalFixed += rp.height
		}
	}
	for _, p := range *pendingFr {
		sumFr += p.fr
	}
	leftover := (l.Regions.Full - totalFixed).Max(0)

	for _, p := range *pendingFr {
		h := p.fr.Share(sumFr, leftover)
		frame, err := l.layoutSingleRow(p.ly, h, l.rcols, totalWidth)
		if err != nil {
			return err
		}
		l.trackRowspans(p.ly, h)
		l.regionHeightSoFar += h - l.rows[p.rowIndex].height
		l.rows[p.rowIndex].height = h
		l.rows[p.rowIndex].frame = frame
	}
	*pendingFr = nil
	return nil
}

// finishRegion closes out the region frame under construction, pushes it
// to l.finished, advances the region stream, and keeps any still-open
// rowspan ledger entries' per-region bucket list in sync (§4.7).
func (l *GridLayouter) finishRegion(totalWidth layout.Abs, pendingFr *[]frPlaceholder) error {
	if err := l.resolvePendingFr(pendingFr, totalWidth); err != nil {
		return err
	}

	height := l.regionHeightSoFar
	if l.Regions.Expand.Y && l.Regions.Full.IsFinite() {
		height = l.Regions.Full
	}
	frame := layout.NewFrame(layout.Size{Width: totalWidth, Height: height})

	var offset layout.Abs
	for i := range l.rows {
		l.rows[i].offset = offset
		frame.PushFrame(layout.Point{Y: offset}, l.rows[i].frame)
		offset += l.rows[i].height
	}
	l.finished = append(l.finished, frame)
	l.finishedRows = append(l.finishedRows, append([]rowPiece(nil), l.rows...))

	for _, rec := range l.openRowspans {
		rec.perRegionHeights = append(rec.perRegionHeights, 0)
	}

	l.rows = nil
	l.regionHeightSoFar = 0

	if !l.Regions.Next() {
		if len(l.openRowspans) > 0 || l.unbreakableRowsLeft > 0 {
			return rowCannotFitError(NoSpan, "region stream exhausted with unbreakable content still pending")
		}
	}
	return nil
}

// spanWidth sums a cell's resolved physical column widths.
func spanWidth(grid *CellGrid, rcols []layout.Abs, cell *Cell) layout.Abs {
	start, end := grid.physicalColSpan(cell)
	var w layout.Abs
	for i := start; i < end; i++ {
		w += rcols[i]
	}
	return w
}

// spanOffset sums resolved column widths preceding a cell's span.
func spanOffset(grid *CellGrid, rcols []layout.Abs, cell *Cell) layout.Abs {
	start, _ := grid.physicalColSpan(cell)
	var w layout.Abs
	for i := 0; i < start; i++ {
		w += rcols[i]
	}
	return w
}

func sumAbs(vs []layout.Abs) layout.Abs {
	var total layout.Abs
	for _, v := range vs {
		total += v
	}
	return total
}
