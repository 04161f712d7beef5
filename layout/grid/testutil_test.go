package grid

import "github.com/boergens/gridlayout/layout"

// fixedBody is a grid.Body that always measures and lays out to a fixed
// size, used by unit tests that don't need real text measurement.
type fixedBody struct {
	size layout.Size
}

func (f fixedBody) Measure(styles *Styles, regions *Regions) (Fragment, error) {
	w, h := f.size.Width, f.size.Height
	if regions.Expand.X {
		w = regions.Size.Width
	}
	if w > regions.Size.Width {
		w = regions.Size.Width
	}
	return Fragment{layout.NewFrame(layout.Size{Width: w, Height: h})}, nil
}

func (f fixedBody) Layout(styles *Styles, regions *Regions) (Fragment, error) {
	return f.Measure(styles, regions)
}

var _ Body = fixedBody{}

// splittingBody is a grid.Body with a fixed total height that, unlike
// fixedBody, actually splits across a region stream's backlog instead of
// always measuring to a single frame: every region but the last gets
// exactly that region's room, and the final frame takes the remainder.
type splittingBody struct {
	width  layout.Abs
	height layout.Abs
}

func (s splittingBody) fragment(regions *Regions) Fragment {
	var frames Fragment
	remaining := s.height
	iter := regions.Iter()
	for {
		room := iter.Next().Height
		if !room.IsFinite() || remaining <= room {
			frames = append(frames, layout.NewFrame(layout.Size{Width: s.width, Height: remaining.Max(0)}))
			return frames
		}
		frames = append(frames, layout.NewFrame(layout.Size{Width: s.width, Height: room}))
		remaining -= room
	}
}

func (s splittingBody) Measure(styles *Styles, regions *Regions) (Fragment, error) {
	return s.fragment(regions), nil
}

func (s splittingBody) Layout(styles *Styles, regions *Regions) (Fragment, error) {
	return s.fragment(regions), nil
}

var _ Body = splittingBody{}
