package dice

import "testing"

func TestSeededDeterminism(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 200; i++ {
		ra, rb := a.Roll(), b.Roll()
		if ra != rb {
			t.Fatalf("roll %d differs: %d vs %d", i, ra, rb)
		}
		if ra < 1 || ra > Faces {
			t.Fatalf("roll %d out of range: %d", i, ra)
		}
	}
}

func TestSeededCoversAllFaces(t *testing.T) {
	d := NewSeeded(7)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		seen[d.Roll()] = true
	}
	if len(seen) != Faces {
		t.Errorf("saw %d distinct faces in 1000 rolls, want %d", len(seen), Faces)
	}
}

func TestSequenceWraps(t *testing.T) {
	d := NewSequence(2, 5, 6)
	want := []int{2, 5, 6, 2, 5}
	for i, w := range want {
		if got := d.Roll(); got != w {
			t.Errorf("roll %d = %d, want %d", i, got, w)
		}
	}

	if got := NewSequence().Roll(); got != 1 {
		t.Errorf("empty sequence rolled %d, want 1", got)
	}
}

func TestFace(t *testing.T) {
	if Face(1) != '⚀' || Face(6) != '⚅' {
		t.Error("unexpected face glyphs")
	}
	if Face(0) != '?' || Face(7) != '?' {
		t.Error("out-of-range rolls should render as '?'")
	}
}
