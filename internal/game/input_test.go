package game

import "testing"

func TestEdges_DownAndUp(t *testing.T) {
	prev := NewInput(KeyLeft)
	cur := NewInput(KeyRight)
	e := Edges(prev, cur)
	if !e.Down(KeyRight) || e.Down(KeyLeft) {
		t.Fatal("expected a down edge for right only")
	}
	if !e.Up(KeyLeft) || e.Up(KeyRight) {
		t.Fatal("expected an up edge for left only")
	}
}

func TestEdges_HeldProducesNothing(t *testing.T) {
	in := NewInput(KeyFire, KeyLeft)
	e := Edges(in, in)
	for k := Key(0); k < keyCount; k++ {
		if e.Down(k) || e.Up(k) {
			t.Fatalf("held key %s should not produce an edge", k)
		}
	}
}

func TestInput_OutOfRangeKeysIgnored(t *testing.T) {
	in := NewInput(Key(-1), keyCount, Key(99)).With(Key(42))
	if in != (Input{}) {
		t.Fatal("out of range keys should be dropped")
	}
	if in.Held(Key(99)) {
		t.Fatal("Held should be false for unknown keys")
	}
}
