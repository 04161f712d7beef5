package grid

import "github.com/boergens/gridlayout/layout"

// Fragment is an ordered list of frames, one per region a body occupied.
type Fragment = layout.Fragment

// Regions is the region stream a body is handed for measurement/layout.
type Regions = layout.Regions

// Paint is a fill paint, shared by reference across cells and grid
// defaults the way Stroke is (§3, §4.2).
type Paint = layout.Paint

// Styles is an opaque, comparable-by-reference handle threaded through
// measurement and layout. The grid engine never inspects its contents;
// it only passes it along to cell bodies and celled functions (§9).
type Styles struct {
	_ [0]func() // prevents == comparison across otherwise-identical zero values being misleadingly true by layout of this package's callers; comparison is still legal by reference.
}

// NewStyles creates a fresh, distinct Styles handle.
func NewStyles() *Styles {
	return &Styles{}
}

// Body is the capability every cell's content must provide: measuring
// and laying out into a caller-supplied region stream, without knowing
// anything about the grid that holds it (§6).
type Body interface {
	// Measure returns per-region frames without committing to layout.
	Measure(styles *Styles, regions *Regions) (Fragment, error)
	// Layout produces the frames placed into the grid's own output.
	Layout(styles *Styles, regions *Regions) (Fragment, error)
}
