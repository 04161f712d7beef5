package grid

import "github.com/boergens/gridlayout/layout"

// Item is one member of the resolver's input sequence: a cell, a
// horizontal line, or a vertical line, in placement order (§4.3).
type Item interface {
	isItem()
}

// CellSpec declares a single cell. X and Y are nil for automatic
// positioning on that axis. Colspan and Rowspan default to 1 when zero.
type CellSpec struct {
	X, Y      *int
	Colspan   int
	Rowspan   int
	Body      Body
	Fill      *Paint
	FillSet   bool
	Align     layout.Alignment
	AlignSet  bool
	Inset     layout.Sides[layout.Rel]
	InsetSet  bool
	Stroke    layout.Sides[*layout.Stroke] // nil side = not overridden
	Breakable Breakable
	Span      Span
}

func (*CellSpec) isItem() {}

// HLineSpec declares a horizontal line. Y nil means automatic.
type HLineSpec struct {
	Y        *int
	Start    int
	End      *int
	Stroke   *layout.Stroke
	Position LinePosition
	Span     Span
}

func (*HLineSpec) isItem() {}

// VLineSpec declares a vertical line. X nil means automatic.
type VLineSpec struct {
	X        *int
	Start    int
	End      *int
	Stroke   *layout.Stroke
	Position LinePosition
	Span     Span
}

func (*VLineSpec) isItem() {}

// Defaults bundles the grid-wide celled defaults folded into every
// materialized cell (§4.2, §6 configuration surface).
type Defaults struct {
	Fill   Celled[*Paint]
	Align  Celled[layout.Alignment]
	Inset  Celled[layout.Sides[layout.Rel]]
	Stroke Celled[StrokeSides]
}

// ResolverInput is everything the resolver needs to build a CellGrid
// (§4.3).
type ResolverInput struct {
	Cols         []Sizing
	Rows         []Sizing
	ColGutter    Sizing
	RowGutter    Sizing
	HasColGutter bool
	HasRowGutter bool
	Items        []Item
	Defaults     Defaults
	Styles       *Styles
	Span         Span
}

type pendingLine struct {
	hl        *HLineSpec
	vl        *VLineSpec
	autoIndex int
}

// Resolve converts an input item stream into a materialized CellGrid,
// performing automatic positioning, span-conflict detection, and line
// resolution (§4.3). Given equal inputs it produces bit-identical
// grids: iteration order follows Items order throughout, with no map
// iteration feeding positional decisions.
func Resolve(in ResolverInput) (*CellGrid, error) {
	c := len(in.Cols)
	if c < 1 {
		c = 1
	}

	entries := make([]Entry, c*len(in.Rows))
	autoIndex := 0
	var pending []pendingLine

	ensureRows := func(neededEntries int) {
		for len(entries) < neededEntries {
			entries = append(entries, make([]Entry, c)...)
		}
	}
	getEntry := func(idx int) Entry {
		ensureRows(idx + 1)
		return entries[idx]
	}

	for _, item := range in.Items {
		switch it := item.(type) {
		case *CellSpec:
			idx, x, y, err := placeCell(it, c, &autoIndex, getEntry, ensureRows)
			if err != nil {
				return nil, err
			}
			entries = growToLen(entries, c)

			colspan, rowspan := it.Colspan, it.Rowspan
			if colspan < 1 {
				colspan = 1
			}
			if rowspan < 1 {
				rowspan = 1
			}
			if colspan > c-x {
				return nil, placementConflictError(it.Span,
					"cell at column %d spans %d columns but only %d remain", x, colspan, c-x).
					WithHint("reduce colspan or move the cell to an earlier column")
			}

			maxIdx := (y+rowspan-1)*c + (x + colspan - 1)
			if maxIdx < 0 || maxIdx > 1<<28 {
				return nil, placementConflictError(it.Span, "cell span is too large to place")
			}
			ensureRows(maxIdx + 1)
			if entries[idx] != nil {
				return nil, placementConflictError(it.Span,
					"cell at (%d, %d) would be placed on an already-occupied position", x, y)
			}

			cell := &Cell{
				Body:      it.Body,
				Colspan:   colspan,
				Rowspan:   rowspan,
				Breakable: it.Breakable,
				X:         x,
				Y:         y,
				Span:      it.Span,
			}
			if err := resolveCellDecoration(cell, it, in.Defaults, x, y, in.Styles); err != nil {
				return nil, err
			}

			origin := idx
			for dy := 0; dy < rowspan; dy++ {
				for dx := 0; dx < colspan; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					other := (y+dy)*c + (x + dx)
					if entries[other] != nil {
						return nil, placementConflictError(it.Span,
							"cell at (%d, %d) spanning %dx%d would overlap an already-placed cell",
							x, y, colspan, rowspan).
							WithHint("a previously placed cell already occupies part of this span")
					}
					entries[other] = MergedEntry{ParentIndex: origin}
				}
			}
			entries[origin] = CellEntry{Cell: cell}

		case *HLineSpec:
			pending = append(pending, pendingLine{hl: it, autoIndex: autoIndex})
		case *VLineSpec:
			pending = append(pending, pendingLine{vl: it, autoIndex: autoIndex})
		}
	}

	r := 0
	if c > 0 {
		r = len(entries) / c
	}

	// Empty slot materialization (§4.3).
	for idx, e := range entries {
		if e != nil {
			continue
		}
		x, y := idx%c, idx/c
		cell := &Cell{Body: emptyBody{}, Colspan: 1, Rowspan: 1, X: x, Y: y}
		if err := resolveCellDecoration(cell, nil, in.Defaults, x, y, in.Styles); err != nil {
			return nil, err
		}
		entries[idx] = CellEntry{Cell: cell}
	}

	hlines, vlines, err := resolveLines(pending, c, r, in.HasColGutter, in.HasRowGutter)
	if err != nil {
		return nil, err
	}

	cols := in.Cols
	if len(cols) == 0 {
		cols = []Sizing{Auto}
	}
	rows := in.Rows
	if len(rows) < r {
		extra := RepeatAuto(r - len(rows))
		rows = append(append([]Sizing{}, rows...), extra...)
	}

	return &CellGrid{
		Cols:         cols,
		Rows:         rows,
		HasColGutter: in.HasColGutter,
		HasRowGutter: in.HasRowGutter,
		ColGutter:    in.ColGutter,
		RowGutter:    in.RowGutter,
		Entries:      entries,
		HLines:       hlines,
		VLines:       vlines,
	}, nil
}

// growToLen pads entries up to the next multiple of c, matching the
// resolver's "extend in multiples of C" rule.
func growToLen(entries []Entry, c int) []Entry {
	if c == 0 {
		return entries
	}
	rem := len(entries) % c
	if rem == 0 {
		return entries
	}
	return append(entries, make([]Entry, c-rem)...)
}

// placeCell determines the linear index a cell resolves to, given its
// (possibly automatic) coordinates, advancing autoIndex as appropriate
// (§4.3 "automatic positioning").
func placeCell(spec *CellSpec, c int, autoIndex *int, getEntry func(int) Entry, ensureRows func(int)) (idx, x, y int, err error) {
	switch {
	case spec.X == nil && spec.Y == nil:
		cursor := *autoIndex
		for getEntry(cursor) != nil {
			cursor++
		}
		*autoIndex = cursor + 1
		return cursor, cursor % c, cursor / c, nil

	case spec.X != nil && spec.Y == nil:
		x := *spec.X
		if x >= c || x < 0 {
			return 0, 0, 0, placementConflictError(spec.Span, "cell column %d is out of range (grid has %d columns)", x, c)
		}
		y := 0
		for {
			idx := y*c + x
			if getEntry(idx) == nil {
				return idx, x, y, nil
			}
			y++
		}

	case spec.X == nil && spec.Y != nil:
		y := *spec.Y
		ensureRows((y + 1) * c)
		for x := 0; x < c; x++ {
			idx := y*c + x
			if getEntry(idx) == nil {
				return idx, x, y, nil
			}
		}
		return 0, 0, 0, placementConflictError(spec.Span, "row %d is already full", y)

	default:
		x, y := *spec.X, *spec.Y
		if x >= c || x < 0 {
			return 0, 0, 0, placementConflictError(spec.Span, "cell column %d is out of range (grid has %d columns)", x, c)
		}
		ensureRows((y + 1) * c)
		return y*c + x, x, y, nil
	}
}

// resolveCellDecoration fills in a cell's fill/align/inset/stroke,
// folding cell-local overrides (when spec is non-nil) over the grid's
// celled defaults (§4.2, §6).
func resolveCellDecoration(cell *Cell, spec *CellSpec, d Defaults, x, y int, styles *Styles) error {
	fill, err := d.Fill.Resolve(x, y, styles)
	if err != nil {
		return err
	}
	align, err := d.Align.Resolve(x, y, styles)
	if err != nil {
		return err
	}
	inset, err := d.Inset.Resolve(x, y, styles)
	if err != nil {
		return err
	}
	stroke, err := d.Stroke.Resolve(x, y, styles)
	if err != nil {
		return err
	}

	cell.Fill = fill
	cell.Align = align
	cell.Inset = inset
	cell.Stroke = stroke

	if spec != nil {
		if spec.FillSet {
			cell.Fill = spec.Fill
		}
		if spec.AlignSet {
			cell.Align = spec.Align
		}
		if spec.InsetSet {
			cell.Inset = spec.Inset
		}
		sides := []**layout.Stroke{&cell.Stroke.Left, &cell.Stroke.Top, &cell.Stroke.Right, &cell.Stroke.Bottom}
		overrides := []*layout.Stroke{spec.Stroke.Left, spec.Stroke.Top, spec.Stroke.Right, spec.Stroke.Bottom}
		overridden := []*bool{&cell.StrokeOverridden.Left, &cell.StrokeOverridden.Top, &cell.StrokeOverridden.Right, &cell.StrokeOverridden.Bottom}
		for i, ov := range overrides {
			if ov != nil {
				*sides[i] = ov
				*overridden[i] = true
			}
		}
	}
	return nil
}

// resolveLines normalizes and groups all declared lines by their
// pre-gutter track index (§4.3 "line resolution").
func resolveLines(pending []pendingLine, c, r int, hasColGutter, hasRowGutter bool) (map[int][]Line, map[int][]Line, error) {
	hlines := map[int][]Line{}
	vlines := map[int][]Line{}

	for _, p := range pending {
		if p.hl != nil {
			hl := p.hl
			y := 0
			if hl.Y != nil {
				y = *hl.Y
			} else if p.autoIndex > 0 {
				y = (p.autoIndex-1)/c + 1
			}
			if hl.End != nil && *hl.End < hl.Start {
				return nil, nil, outOfRangeLineError(hl.Span, "hline end %d is before start %d", *hl.End, hl.Start)
			}
			pos := hl.Position
			if pos == PositionAfter {
				if y == r {
					return nil, nil, outOfRangeLineError(hl.Span, "hline cannot be placed after the bottom border (row %d)", y)
				}
				if !hasRowGutter || y == r-1 {
					y++
					pos = PositionBefore
				}
			}
			if y > r || y < 0 {
				return nil, nil, outOfRangeLineError(hl.Span, "hline row %d is out of range (grid has %d rows)", y, r)
			}
			line := Line{Index: y, Start: hl.Start, End: hl.End, Stroke: hl.Stroke, Position: pos, Span: hl.Span}
			hlines[y] = append(hlines[y], line)
		} else {
			vl := p.vl
			x := 0
			if vl.X != nil {
				x = *vl.X
			} else if p.autoIndex > 0 {
				x = (p.autoIndex-1)%c + 1
			}
			if vl.End != nil && *vl.End < vl.Start {
				return nil, nil, outOfRangeLineError(vl.Span, "vline end %d is before start %d", *vl.End, vl.Start)
			}
			pos := vl.Position
			if pos == PositionAfter {
				if x == c {
					return nil, nil, outOfRangeLineError(vl.Span, "vline cannot be placed after the right border (column %d)", x)
				}
				if !hasColGutter || x == c-1 {
					x++
					pos = PositionBefore
				}
			}
			if x > c || x < 0 {
				return nil, nil, outOfRangeLineError(vl.Span, "vline column %d is out of range (grid has %d columns)", x, c)
			}
			line := Line{Index: x, Start: vl.Start, End: vl.End, Stroke: vl.Stroke, Position: pos, Span: vl.Span}
			vlines[x] = append(vlines[x], line)
		}
	}
	return hlines, vlines, nil
}
