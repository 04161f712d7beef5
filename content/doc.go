// Package content provides a minimal grid.Body implementation used by
// the layout/grid package's tests and by cmd/griddemo to exercise real
// text measurement instead of fixed stub sizes. It is not imported by
// the grid package itself.
package content
