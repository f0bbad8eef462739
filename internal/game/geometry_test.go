package game

import "testing"

func TestOverlaps_Symmetric(t *testing.T) {
	rects := []Rect{
		{0, 0, 10, 10},
		{5, 5, 10, 10},
		{10, 0, 5, 5},
		{-3, -3, 4, 4},
		{2, 2, 1, 1},
		{100, 100, 1, 1},
	}
	for _, a := range rects {
		for _, b := range rects {
			if Overlaps(a, b) != Overlaps(b, a) {
				t.Fatalf("overlap not symmetric for %+v and %+v", a, b)
			}
		}
	}
}

func TestOverlaps_Self(t *testing.T) {
	for _, r := range []Rect{{0, 0, 1, 1}, {-5, 3, 0.5, 2}, {1920, 1080, 6, 24}} {
		if !Overlaps(r, r) {
			t.Fatalf("non-empty rect %+v should overlap itself", r)
		}
	}
}

func TestOverlaps_EdgeTouchIsNotCollision(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	if Overlaps(a, Rect{10, 0, 10, 10}) {
		t.Fatal("rects sharing a vertical edge should not overlap")
	}
	if Overlaps(a, Rect{0, 10, 10, 10}) {
		t.Fatal("rects sharing a horizontal edge should not overlap")
	}
	if !Overlaps(a, Rect{9.9, 9.9, 10, 10}) {
		t.Fatal("rects sharing a corner region should overlap")
	}
}

func TestOverlaps_Contained(t *testing.T) {
	if !Overlaps(Rect{0, 0, 100, 100}, Rect{40, 40, 2, 2}) {
		t.Fatal("a contained rect should overlap its container")
	}
}
