package grid

import (
	"testing"

	"github.com/boergens/gridlayout/layout"
)

func TestIsAuto(t *testing.T) {
	if !IsAuto(Auto) {
		t.Error("Auto should report IsAuto")
	}
	if IsAuto(RelSizing{Rel: layout.Rel{Abs: 10}}) {
		t.Error("RelSizing should not report IsAuto")
	}
}

func TestIsFr(t *testing.T) {
	fr, ok := IsFr(FrSizing{Fr: 2})
	if !ok || fr != 2 {
		t.Errorf("IsFr(FrSizing{2}) = %v, %v; want 2, true", fr, ok)
	}
	if _, ok := IsFr(Auto); ok {
		t.Error("Auto should not report IsFr")
	}
}

func TestIsRel(t *testing.T) {
	rel, ok := IsRel(RelSizing{Rel: layout.Rel{Abs: 5 * layout.Pt}})
	if !ok || rel.Abs != 5*layout.Pt {
		t.Errorf("IsRel(RelSizing) = %v, %v; want 5pt, true", rel, ok)
	}
	if _, ok := IsRel(Auto); ok {
		t.Error("Auto should not report IsRel")
	}
}

func TestExpandTracks(t *testing.T) {
	out := ExpandTracks([]Sizing{Auto}, 3)
	if len(out) != 3 {
		t.Fatalf("expected 3 tracks, got %d", len(out))
	}
	for i, s := range out {
		if !IsAuto(s) {
			t.Errorf("track %d: expected Auto", i)
		}
	}

	multi := []Sizing{Auto, RelSizing{Rel: layout.Rel{Abs: 1}}}
	out = ExpandTracks(multi, 5)
	if len(out) != 2 {
		t.Errorf("a multi-entry sizing list should pass through unchanged, got len %d", len(out))
	}
}

func TestRepeatAuto(t *testing.T) {
	out := RepeatAuto(4)
	if len(out) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(out))
	}
	for i, s := range out {
		if !IsAuto(s) {
			t.Errorf("entry %d: expected Auto", i)
		}
	}
}
