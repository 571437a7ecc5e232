package lang

import (
	"testing"

	"eqsat/ids"
)

const (
	tagProbeAtom Tag = iota
	tagProbeFields2
)

type probeAtom struct{ Atom[int] }

func (*probeAtom) Tag() Tag { return tagProbeAtom }
func (a *probeAtom) Equal(other Node) bool {
	o, ok := other.(*probeAtom)
	return ok && a.ValueEqual(o.Atom)
}
func (a *probeAtom) Hash() uint64 {
	return HashCombine(uint64(tagProbeAtom), uint64(a.Value))
}

type probeFields2 struct{ Fields2 }

func (*probeFields2) Tag() Tag { return tagProbeFields2 }
func (f *probeFields2) Equal(other Node) bool {
	o, ok := other.(*probeFields2)
	return ok && f.Operands().Equal(o.Operands())
}
func (f *probeFields2) Hash() uint64 {
	return HashCombine(uint64(tagProbeFields2), HashIds(f.Operands()))
}

func TestAtomOperandsEmpty(t *testing.T) {
	a := &probeAtom{Atom[int]{Value: 5}}
	if len(a.Operands()) != 0 {
		t.Fatalf("expected atom to have no operands")
	}
}

func TestAtomEquality(t *testing.T) {
	a := &probeAtom{Atom[int]{Value: 5}}
	b := &probeAtom{Atom[int]{Value: 5}}
	c := &probeAtom{Atom[int]{Value: 6}}

	if !a.Equal(b) {
		t.Fatalf("expected equal atoms")
	}
	if a.Equal(c) {
		t.Fatalf("expected unequal atoms")
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("expected equal atoms to hash equally")
	}
}

func TestFields2OperandsAndMutation(t *testing.T) {
	f := &probeFields2{NewFields2(1, 2)}
	ops := f.Operands()
	if len(ops) != 2 || ops[0] != 1 || ops[1] != 2 {
		t.Fatalf("unexpected operands %v", ops)
	}
	ops[0] = 9
	if f.Field(0) != 9 {
		t.Fatalf("expected mutation through Operands() to alias backing storage, got %d", f.Field(0))
	}
}

func TestFields2Equality(t *testing.T) {
	a := &probeFields2{NewFields2(1, 2)}
	b := &probeFields2{NewFields2(1, 2)}
	c := &probeFields2{NewFields2(1, 3)}

	if !a.Equal(b) {
		t.Fatalf("expected equal nodes")
	}
	if a.Equal(c) {
		t.Fatalf("expected unequal nodes")
	}
}

func TestVectorOperands(t *testing.T) {
	v := NewVector(1, 2, 3)
	if v.Len() != 3 {
		t.Fatalf("expected length 3, got %d", v.Len())
	}
	got := v.Operands()
	want := ids.Slice{1, 2, 3}
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestHashCombineIsOrderSensitive(t *testing.T) {
	a := HashCombine(HashCombine(0, 1), 2)
	b := HashCombine(HashCombine(0, 2), 1)
	if a == b {
		t.Fatalf("expected combining in different orders to (almost always) differ")
	}
}
