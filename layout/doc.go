// Package layout provides the geometric primitives, frame model, and
// region stream shared by gridlayout's layout engines.
//
// It is a small, self-contained foundation: absolute/relative/fractional
// lengths, points and sizes, the Frame output type, and the Regions
// cursor over available page space. It carries no knowledge of grids,
// text, or any other content — those live in the grid package and the
// caller's own content model.
package layout
