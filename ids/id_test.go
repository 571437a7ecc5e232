package ids

import "testing"

func TestSliceEqual(t *testing.T) {
	a := Slice{1, 2, 3}
	b := Slice{1, 2, 3}
	c := Slice{1, 2, 4}
	d := Slice{1, 2}

	if !a.Equal(b) {
		t.Fatalf("expected equal slices to compare equal")
	}
	if a.Equal(c) {
		t.Fatalf("expected differing slices to compare unequal")
	}
	if a.Equal(d) {
		t.Fatalf("expected differing-length slices to compare unequal")
	}
}

func TestSliceIndexMutatesUnderlying(t *testing.T) {
	a := Slice{1, 2, 3}
	a[1] = 9
	if a[1] != 9 {
		t.Fatalf("expected in-place mutation through Slice indexing")
	}
}
