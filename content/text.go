package content

import (
	"strings"

	"github.com/boergens/gridlayout/layout"
	"github.com/boergens/gridlayout/layout/grid"
	"github.com/rivo/uniseg"
	"golang.org/x/text/width"
)

// Text is a minimal grid.Body that lays out a plain string as greedily
// wrapped lines, using grapheme clusters as the unit of breaking and
// East Asian width classification to size wide characters at double
// the width of narrow ones. It stands in for a real typesetter in tests
// and in cmd/griddemo.
type Text struct {
	Value    string
	FontSize layout.Abs
}

// NewText creates a Text body at the given font size.
func NewText(value string, fontSize layout.Abs) *Text {
	return &Text{Value: value, FontSize: fontSize}
}

var _ grid.Body = (*Text)(nil)

// clusterWidth returns a grapheme cluster's advance width in font-size
// units: wide/fullwidth East Asian clusters measure twice a narrow one.
func (t *Text) clusterWidth(cluster string) layout.Abs {
	r := []rune(cluster)
	if len(r) == 0 {
		return 0
	}
	switch width.LookupRune(r[0]).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return t.FontSize
	default:
		return t.FontSize * 0.5
	}
}

// clusters splits the value into its grapheme clusters.
func (t *Text) clusters() []string {
	var out []string
	gr := uniseg.NewGraphemes(t.Value)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// wrap greedily packs clusters into lines no wider than maxWidth,
// always breaking on whitespace when possible and hard-breaking a
// single overlong cluster run only when a line cannot otherwise
// contain anything.
func (t *Text) wrap(maxWidth layout.Abs) []string {
	clusters := t.clusters()
	if len(clusters) == 0 {
		return []string{""}
	}
	if !maxWidth.IsFinite() {
		return []string{strings.Join(clusters, "")}
	}

	var lines []string
	var cur strings.Builder
	var curWidth layout.Abs
	var lastSpaceLen int // byte length of cur up to and including last space

	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curWidth = 0
		lastSpaceLen = 0
	}

	for _, c := range clusters {
		cw := t.clusterWidth(c)
		if curWidth+cw > maxWidth && cur.Len() > 0 {
			if lastSpaceLen > 0 {
				rest := cur.String()[lastSpaceLen:]
				lines = append(lines, strings.TrimRight(cur.String()[:lastSpaceLen], " "))
				cur.Reset()
				cur.WriteString(rest)
				curWidth = t.measure(rest)
				lastSpaceLen = 0
			} else {
				flush()
			}
		}
		cur.WriteString(c)
		curWidth += cw
		if c == " " {
			lastSpaceLen = cur.Len()
		}
	}
	lines = append(lines, cur.String())
	return lines
}

func (t *Text) measure(s string) layout.Abs {
	var w layout.Abs
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w += t.clusterWidth(gr.Str())
	}
	return w
}

func (t *Text) layoutLines(maxWidth layout.Abs) (width layout.Abs, height layout.Abs, lines []string) {
	lines = t.wrap(maxWidth)
	lineHeight := t.FontSize * 1.2
	for _, ln := range lines {
		if w := t.measure(ln); w > width {
			width = w
		}
	}
	height = lineHeight * layout.Abs(len(lines))
	return
}

// Measure implements grid.Body.
func (t *Text) Measure(styles *grid.Styles, regions *grid.Regions) (grid.Fragment, error) {
	return t.fragment(regions), nil
}

// Layout implements grid.Body. Each returned frame is sized correctly for
// its region but otherwise empty: content itself is out of scope for the
// grid engine's public contract (§1), only its measured extent matters to
// the tests exercising this body.
func (t *Text) Layout(styles *grid.Styles, regions *grid.Regions) (grid.Fragment, error) {
	return t.fragment(regions), nil
}

// fragment measures the wrapped text once against the region stream's
// width, then cuts the resulting height across the stream's current
// region, its backlog, and its repeatable last region in turn (via
// Regions.Iter, which repeats the final known height forever once both
// run dry): every region but the last gets exactly that region's room,
// and the final frame takes whatever height remains.
func (t *Text) fragment(regions *grid.Regions) grid.Fragment {
	width, height, _ := t.layoutLines(regions.Size.Width)
	if regions.Expand.X {
		width = regions.Size.Width
	}

	var frames grid.Fragment
	remaining := height
	iter := regions.Iter()
	for {
		room := iter.Next().Height
		if !room.IsFinite() || remaining <= room {
			frames = append(frames, layout.NewFrame(layout.Size{Width: width, Height: remaining.Max(0)}))
			return frames
		}
		frames = append(frames, layout.NewFrame(layout.Size{Width: width, Height: room}))
		remaining -= room
	}
}
