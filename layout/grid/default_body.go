package grid

import "github.com/boergens/gridlayout/layout"

// emptyBody is the Body used for grid slots left absent by the caller's
// input and materialized by the resolver (§4.3 "empty slot
// materialization"). It occupies no space in any region it is asked to
// measure or lay out into.
type emptyBody struct{}

func (emptyBody) Measure(styles *Styles, regions *Regions) (Fragment, error) {
	return layout.Fragment{layout.NewFrame(layout.Size{})}, nil
}

func (emptyBody) Layout(styles *Styles, regions *Regions) (Fragment, error) {
	return layout.Fragment{layout.NewFrame(layout.Size{})}, nil
}
