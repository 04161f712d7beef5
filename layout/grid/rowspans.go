package grid

import "github.com/boergens/gridlayout/layout"

// layoutPendingRowspans lays out every rowspan recorded during row
// iteration and splices its frames into the finished region frames at
// the recorded offsets (§4.7). It runs after all rows are placed so
// that every region a rowspan might cross already has a final frame.
func (l *GridLayouter) layoutPendingRowspans(base layout.Size) error {
	grid := l.Grid

	for _, rec := range l.pendingRowspans {
		width := spanWidth(grid, l.rcols, rec.cell)
		xOffset := spanOffset(grid, l.rcols, rec.cell)

		if len(rec.perRegionHeights) == 0 {
			continue
		}
		firstHeight := rec.perRegionHeights[0]
		backlog := append([]layout.Abs(nil), rec.perRegionHeights[1:]...)

		regions := &layout.Regions{
			Size:    layout.Size{Width: width, Height: firstHeight},
			Base:    base,
			Full:    firstHeight,
			Backlog: backlog,
		}

		frag, err := rec.cell.Body.Layout(l.Styles, regions)
		if err != nil {
			return err
		}

		for i, frame := range frag {
			regionIdx := rec.firstRegion + i
			if regionIdx < 0 || regionIdx >= len(l.finished) {
				continue
			}
			dy := layout.Abs(0)
			if i == 0 {
				dy = rec.dy
			}
			l.finished[regionIdx].PushFrame(layout.Point{X: xOffset, Y: dy}, frame)
		}
	}
	return nil
}
