package layout

import "testing"

func TestFramePushAndPrepend(t *testing.T) {
	f := NewFrame(Size{Width: 100, Height: 50})
	f.Push(Point{X: 1, Y: 1}, ShapeItem{Shape: RectShape{Size: Size{Width: 10, Height: 10}}})

	fills := []PositionedItem{
		{Position: Point{}, Item: ShapeItem{Shape: RectShape{Size: f.Size()}}},
	}
	f.PrependMultiple(fills)

	items := f.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items after prepend, got %d", len(items))
	}
	if _, ok := items[0].Item.(ShapeItem); !ok {
		t.Fatalf("prepended fill should be first (bottommost)")
	}
}

func TestFrameTranslate(t *testing.T) {
	f := NewFrame(Size{Width: 100, Height: 100})
	sub := NewFrame(Size{Width: 50, Height: 50})
	f.PushFrame(Point{X: 10, Y: 20}, sub)

	f.Translate(Point{X: 5, Y: 10})

	got := f.Items()[0].Position
	if got != (Point{X: 15, Y: 30}) {
		t.Errorf("after translate expected (15, 30), got %v", got)
	}
}

func TestFragmentIsEmpty(t *testing.T) {
	var frag Fragment
	if !frag.IsEmpty() {
		t.Error("nil fragment should be empty")
	}
	frag = Fragment{NewFrame(Size{})}
	if frag.IsEmpty() {
		t.Error("non-empty fragment reported empty")
	}
}
