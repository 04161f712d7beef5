package layout

// regionEpsilon is the tolerance used to decide whether a region counts
// as full; floating point row-height accumulation can overshoot a hair
// past zero remaining space without a row actually having been skipped.
const regionEpsilon Abs = 1e-6

// Region is a single rectangular area available for layout.
type Region struct {
	// Size is the available space in the region.
	Size Size
	// Base is the reference size relative lengths resolve against.
	Base Size
	// Expand indicates whether content should expand to fill each axis.
	Expand Axes[bool]
}

// Width returns the region's available width.
func (r Region) Width() Abs {
	return r.Size.Width
}

// Height returns the region's available height.
func (r Region) Height() Abs {
	return r.Size.Height
}

// Regions is a cursor over a finite or infinite sequence of available
// rectangular regions (§4.1). The cursor does not track space consumed
// within the current region; Next advances it to the next physical region.
type Regions struct {
	// Size is the available space in the current region.
	Size Size
	// Base is the reference size relative lengths resolve against.
	Base Size
	// Full is the current region's total height, fixed at its start.
	Full Abs
	// Backlog holds the heights of regions queued after the current one.
	Backlog []Abs
	// Last, if set, is the height of an unboundedly repeatable final
	// region: once Backlog is exhausted, Next keeps returning a region
	// of this height forever instead of signalling exhaustion.
	Last *Abs
	// Expand indicates whether content should expand to fill each axis.
	Expand Axes[bool]
}

// NewRegions creates a single-region stream from a fixed size; the
// region neither repeats nor has any backlog.
func NewRegions(size Size) *Regions {
	return &Regions{Size: size, Base: size, Full: size.Height}
}

// First returns the current region as a value.
func (r *Regions) First() Region {
	return Region{Size: r.Size, Base: r.Base, Expand: r.Expand}
}

// IsFull reports whether the current region has no more usable height.
func (r *Regions) IsFull() bool {
	return r.Size.Height <= regionEpsilon
}

// InLast reports whether the backlog is empty and a repeatable last
// region is set, i.e. every further Next yields the Last height.
func (r *Regions) InLast() bool {
	return len(r.Backlog) == 0 && r.Last != nil
}

// CanBreak reports whether calling Next could produce a genuinely new
// region (as opposed to exhaustion).
func (r *Regions) CanBreak() bool {
	return len(r.Backlog) > 0 || r.Last != nil
}

// Next advances to the next physical region and reports whether a
// region was available. Once the backlog is drained, a repeatable Last
// height is returned indefinitely and Next never again reports false;
// with no Last, Next reports false once the backlog is exhausted and
// the caller must treat that as true exhaustion (§7, "row cannot fit").
func (r *Regions) Next() bool {
	if len(r.Backlog) > 0 {
		h := r.Backlog[0]
		r.Backlog = r.Backlog[1:]
		r.Size = Size{Width: r.Size.Width, Height: h}
		r.Full = h
		return true
	}
	if r.Last != nil {
		r.Size = Size{Width: r.Size.Width, Height: *r.Last}
		r.Full = *r.Last
		return true
	}
	return false
}

// Clone creates an independent copy of the regions cursor.
func (r *Regions) Clone() *Regions {
	clone := &Regions{Size: r.Size, Base: r.Base, Full: r.Full, Expand: r.Expand}
	if len(r.Backlog) > 0 {
		clone.Backlog = append([]Abs(nil), r.Backlog...)
	}
	if r.Last != nil {
		last := *r.Last
		clone.Last = &last
	}
	return clone
}

// WithSize returns a clone whose current size has been replaced, used
// when measuring a cell into a region narrower than the grid's.
func (r *Regions) WithSize(size Size) *Regions {
	clone := r.Clone()
	clone.Size = size
	return clone
}

// Shrink returns a clone with inset subtracted from every region's
// extent (current, backlog, and the repeatable last), floored at zero.
func (r *Regions) Shrink(inset Sides[Abs]) *Regions {
	clone := &Regions{
		Size: Size{
			Width:  (r.Size.Width - SumHorizontal(inset)).Max(0),
			Height: (r.Size.Height - SumVertical(inset)).Max(0),
		},
		Base:   r.Base,
		Full:   (r.Full - SumVertical(inset)).Max(0),
		Expand: r.Expand,
	}
	if len(r.Backlog) > 0 {
		clone.Backlog = make([]Abs, len(r.Backlog))
		for i, h := range r.Backlog {
			clone.Backlog[i] = (h - SumVertical(inset)).Max(0)
		}
	}
	if r.Last != nil {
		last := (*r.Last - SumVertical(inset)).Max(0)
		clone.Last = &last
	}
	return clone
}

// Iter returns an unbounded iterator over this region plus its backlog,
// repeating the last known height forever once both are exhausted. It
// never signals failure — used for measurement passes that need to know
// how much space would be available several regions ahead without
// actually consuming any of it (§4.1).
func (r *Regions) Iter() *RegionsIter {
	return &RegionsIter{regions: r, index: -1}
}

// RegionsIter is a read-only, non-mutating walk over a Regions cursor.
type RegionsIter struct {
	regions *Regions
	index   int
}

// Next returns the size of the next region in the walk. It always
// succeeds: once concrete regions run out, it keeps repeating the
// height of the last one seen (or the current region, if there was
// never a backlog or repeatable last at all).
func (it *RegionsIter) Next() Size {
	it.index++
	width := it.regions.Size.Width
	if it.index == 0 {
		return it.regions.Size
	}
	backlogIdx := it.index - 1
	if backlogIdx < len(it.regions.Backlog) {
		return Size{Width: width, Height: it.regions.Backlog[backlogIdx]}
	}
	if it.regions.Last != nil {
		return Size{Width: width, Height: *it.regions.Last}
	}
	if n := len(it.regions.Backlog); n > 0 {
		return Size{Width: width, Height: it.regions.Backlog[n-1]}
	}
	return it.regions.Size
}
