package grid

import "github.com/olekukonko/ll"

// newLogger creates the per-layouter debug logger. It is purely for
// observability — resolveColumns traces the resolved column widths
// through it, but nothing here ever branches on whether logging is
// enabled, mirroring tablewriter's own t.logger.Debug(...) idiom.
func newLogger() *ll.Logger {
	return ll.New("grid")
}
