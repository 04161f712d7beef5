// Command griddemo exercises the grid engine end-to-end: it resolves a
// small invoice-shaped grid, lays it out into a stream of two 400x240pt pages,
// and prints a region-by-region summary of what was placed.
package main

import (
	"fmt"
	"os"

	"github.com/boergens/gridlayout/content"
	"github.com/boergens/gridlayout/layout"
	"github.com/boergens/gridlayout/layout/grid"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "griddemo:", err)
		os.Exit(1)
	}
}

func run() error {
	headerFill := &grid.Paint{Color: layout.Color{R: 220, G: 220, B: 220, A: 255}}
	border := &layout.Stroke{Thickness: 1}

	cols := []grid.Sizing{
		grid.FrSizing{Fr: 2},
		grid.RelSizing{Rel: layout.Rel{Abs: 60}},
		grid.RelSizing{Rel: layout.Rel{Abs: 60}},
	}

	items := []grid.Item{
		&grid.VLineSpec{Start: 0, Stroke: border},
		&grid.HLineSpec{Start: 0, Stroke: border},

		withFill(cell(content.NewText("Description", 12), grid.BreakableSmart), headerFill),
		withFill(cell(content.NewText("Qty", 12), grid.BreakableSmart), headerFill),
		withFill(cell(content.NewText("Price", 12), grid.BreakableSmart), headerFill),

		cell(content.NewText("A long wrapping product description that forces the description column to grow across several lines of text", 10), grid.BreakableSmart),
		cell(content.NewText("3", 10), grid.BreakableSmart),
		cell(content.NewText("19.99", 10), grid.BreakableSmart),

		cell(content.NewText("Another line item", 10), grid.BreakableSmart),
		cell(content.NewText("1", 10), grid.BreakableSmart),
		cell(content.NewText("4.50", 10), grid.BreakableSmart),

		cell(content.NewText("A third, unbreakable line item that must stay on one page", 10), grid.BreakableNo),
		cell(content.NewText("7", 10), grid.BreakableNo),
		cell(content.NewText("99.00", 10), grid.BreakableNo),
	}

	in := grid.ResolverInput{
		Cols:  cols,
		Rows:  grid.RepeatAuto(4),
		Items: items,
		Defaults: grid.Defaults{
			Inset: grid.CelledValue(layout.Sides[layout.Rel]{
				Top: layout.Rel{Abs: 4}, Bottom: layout.Rel{Abs: 4},
				Left: layout.Rel{Abs: 4}, Right: layout.Rel{Abs: 4},
			}),
		},
	}

	g, err := grid.Resolve(in)
	if err != nil {
		return err
	}

	pageHeight := layout.Abs(240)
	regions := &layout.Regions{
		Size:    layout.Size{Width: 400, Height: pageHeight},
		Base:    layout.Size{Width: 400, Height: pageHeight},
		Full:    pageHeight,
		Backlog: []layout.Abs{pageHeight},
	}

	layouter := grid.NewGridLayouter(g, regions, grid.NewStyles(), layout.DirLTR)
	frag, err := layouter.Layout()
	if err != nil {
		return err
	}

	for i, frame := range frag {
		fmt.Printf("page %d: %vx%v, %d top-level items\n", i+1, frame.Width(), frame.Height(), len(frame.Items()))
	}
	return nil
}

func cell(body grid.Body, breakable grid.Breakable) *grid.CellSpec {
	return &grid.CellSpec{Body: body, Breakable: breakable}
}

func withFill(c *grid.CellSpec, p *grid.Paint) *grid.CellSpec {
	c.Fill = p
	c.FillSet = true
	return c
}
