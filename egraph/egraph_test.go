package egraph

import (
	"errors"
	"testing"

	"eqsat/ids"
	"eqsat/lang"
)

const (
	tnTagLeaf lang.Tag = iota
	tnTagPair
)

// tnLeaf and tnPair are a minimal two-node test language — just enough to
// exercise the core invariants without pulling in a whole demo language.
type tnLeaf struct{ lang.Atom[string] }

func tnNewLeaf(name string) *tnLeaf { return &tnLeaf{lang.Atom[string]{Value: name}} }

func (*tnLeaf) Tag() lang.Tag { return tnTagLeaf }
func (l *tnLeaf) Equal(other lang.Node) bool {
	o, ok := other.(*tnLeaf)
	return ok && l.ValueEqual(o.Atom)
}
func (l *tnLeaf) Hash() uint64 {
	return lang.HashCombine(uint64(tnTagLeaf), lang.HashString(l.Value))
}

type tnPair struct{ lang.Fields2 }

func tnNewPair(a, b ids.Id) *tnPair { return &tnPair{lang.NewFields2(a, b)} }

func (*tnPair) Tag() lang.Tag { return tnTagPair }
func (p *tnPair) Equal(other lang.Node) bool {
	o, ok := other.(*tnPair)
	return ok && p.Operands().Equal(o.Operands())
}
func (p *tnPair) Hash() uint64 {
	return lang.HashCombine(uint64(tnTagPair), lang.HashIds(p.Operands()))
}

// tnAnalysis gives every node the datum 1 and joins by taking the maximum;
// it exists only so Merge/Rebuild have somewhere to write.
type tnAnalysis struct{}

func (tnAnalysis) Make(g *EGraph[int], n lang.Node) int { return 1 }
func (tnAnalysis) Join(current *int, incoming int) bool {
	if incoming > *current {
		*current = incoming
		return true
	}
	return false
}

func newTestGraph() *EGraph[int] {
	return New[int](tnAnalysis{})
}

func TestFindIsIdempotent(t *testing.T) {
	g := newTestGraph()
	a := g.Add(tnNewLeaf("a"))
	b := g.Add(tnNewLeaf("b"))
	c := g.Add(tnNewLeaf("c"))

	g.Merge(a, b)
	g.Merge(b, c)

	r := g.Find(a)
	if g.Find(r) != r {
		t.Fatalf("expected find(find(id)) == find(id)")
	}
	if g.Find(a) != g.Find(c) {
		t.Fatalf("expected a and c to share a representative")
	}
}

func TestAddHashConsesEqualLeaves(t *testing.T) {
	g := newTestGraph()
	id1 := g.Add(tnNewLeaf("x"))
	id2 := g.Add(tnNewLeaf("x"))
	id3 := g.Add(tnNewLeaf("y"))

	if id1 != id2 {
		t.Fatalf("expected re-adding an equal leaf to hash-cons to the same id")
	}
	if id1 == id3 {
		t.Fatalf("expected distinct leaves to get distinct ids")
	}
}

func TestClassReturnsBadIdForForeignId(t *testing.T) {
	g := newTestGraph()
	g.Add(tnNewLeaf("only-one"))

	_, err := g.Class(ids.Id(9999))
	if !errors.Is(err, ErrBadId) {
		t.Fatalf("expected ErrBadId, got %v", err)
	}
}

func TestMustClassPanicsOnBadId(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustClass to panic on a bad id")
		}
	}()
	g := newTestGraph()
	g.MustClass(ids.Id(42))
}

func TestMergeIsNoOpWithinSameClass(t *testing.T) {
	g := newTestGraph()
	a := g.Add(tnNewLeaf("a"))

	sizeBefore := g.Size()
	survivor := g.Merge(a, a)
	if survivor != g.Find(a) {
		t.Fatalf("expected merging an id with itself to return its own root")
	}
	if g.Size() != sizeBefore {
		t.Fatalf("expected merging an id with itself not to change the class count")
	}
}

func TestCanonicalOperandsAfterRebuild(t *testing.T) {
	g := newTestGraph()
	a := g.Add(tnNewLeaf("a"))
	b := g.Add(tnNewLeaf("b"))
	c := g.Add(tnNewLeaf("c"))
	pair := g.Add(tnNewPair(a, b))

	// c absorbs b (rather than the other way around) so that pair's stored
	// operand, still literally b, is no longer canonical until repair()
	// rewrites it during Rebuild.
	g.Merge(c, b)
	g.Rebuild()

	class := g.MustClass(pair)
	if len(class.Nodes) != 1 {
		t.Fatalf("expected exactly one node in the pair's class, got %d", len(class.Nodes))
	}
	operands := class.Nodes[0].Operands()
	if operands[0] != g.Find(a) || operands[1] != g.Find(b) {
		t.Fatalf("expected the stored node's operands to be canonical after rebuild, got %v", operands)
	}
}

func TestUpwardCongruenceMergesPairsOfMergedOperands(t *testing.T) {
	g := newTestGraph()
	a := g.Add(tnNewLeaf("a"))
	x := g.Add(tnNewLeaf("x"))
	y := g.Add(tnNewLeaf("y"))
	ax := g.Add(tnNewPair(a, x))
	ay := g.Add(tnNewPair(a, y))

	g.Merge(x, y)
	g.Rebuild()

	if g.Find(ax) != g.Find(ay) {
		t.Fatalf("expected pair(a,x) and pair(a,y) to become congruent once x and y merge")
	}
}

func TestSizeExcludesMergedAwayClasses(t *testing.T) {
	g := newTestGraph()
	a := g.Add(tnNewLeaf("a"))
	b := g.Add(tnNewLeaf("b"))
	if g.Size() != 2 {
		t.Fatalf("expected 2 classes before merge, got %d", g.Size())
	}
	g.Merge(a, b)
	if g.Size() != 1 {
		t.Fatalf("expected 1 class after merge, got %d", g.Size())
	}
}

func TestClassesReturnsOnlyLiveClasses(t *testing.T) {
	g := newTestGraph()
	a := g.Add(tnNewLeaf("a"))
	b := g.Add(tnNewLeaf("b"))
	g.Merge(a, b)

	classes := g.Classes()
	if len(classes) != g.Size() {
		t.Fatalf("expected Classes() to report %d classes, got %d", g.Size(), len(classes))
	}
	for _, c := range classes {
		if c.ID != g.Find(c.ID) {
			t.Fatalf("expected every class returned by Classes() to be canonical")
		}
	}
}
