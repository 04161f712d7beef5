package grid

import "github.com/boergens/gridlayout/layout"

// Sizing is the sum type governing how a single track (row or column) is
// sized: automatically from its content, to a relative length, or as a
// share of leftover space.
type Sizing interface {
	isSizing()
}

// AutoSizing sizes a track from the content it holds.
type AutoSizing struct{}

func (AutoSizing) isSizing() {}

// Auto is the singular auto sizing value.
var Auto Sizing = AutoSizing{}

// RelSizing sizes a track to a fixed relative length, resolved against the
// grid's base size.
type RelSizing struct {
	Rel layout.Rel
}

func (RelSizing) isSizing() {}

// FrSizing sizes a track as a share of the space left over once relative
// and auto tracks have claimed theirs.
type FrSizing struct {
	Fr layout.Fr
}

func (FrSizing) isSizing() {}

// IsAuto reports whether a sizing is the Auto variant.
func IsAuto(s Sizing) bool {
	_, ok := s.(AutoSizing)
	return ok
}

// IsFr reports whether a sizing is the Fr variant, returning its value.
func IsFr(s Sizing) (layout.Fr, bool) {
	fr, ok := s.(FrSizing)
	return fr.Fr, ok
}

// IsRel reports whether a sizing is the Rel variant, returning its value.
func IsRel(s Sizing) (layout.Rel, bool) {
	rel, ok := s.(RelSizing)
	return rel.Rel, ok
}

// ExpandTracks duplicates a single sizing across n tracks, or returns the
// sequence unchanged if it already has more than one entry — mirroring
// the configuration surface's "a single value duplicates" rule for
// columns and rows (§6).
func ExpandTracks(sizings []Sizing, n int) []Sizing {
	if len(sizings) == 1 && n > 1 {
		out := make([]Sizing, n)
		for i := range out {
			out[i] = sizings[0]
		}
		return out
	}
	return sizings
}

// RepeatAuto builds a sequence of n Auto sizings, used when rows are
// configured as a bare integer count (§6, "an integer N yields N Autos").
func RepeatAuto(n int) []Sizing {
	out := make([]Sizing, n)
	for i := range out {
		out[i] = Auto
	}
	return out
}
