// Package egraph implements the e-graph core: hash-consing of nodes,
// union-find over equivalence-class ids, a parent/use index for upward
// propagation, a worklist-driven rebuild that restores congruence, and
// per-class analysis data recomputed on merges.
//
// The e-graph is the substrate a separate rewrite/optimization layer runs
// saturation over; this package implements none of that layer, only the
// data structure it mutates.
package egraph

import (
	"fmt"

	"eqsat/ids"
	"eqsat/lang"
)

type hashconsEntry struct {
	node lang.Node
	id   ids.Id
}

// EGraph owns the class table, the hash-cons, the union-find, and the
// dirty worklist for a single term language and analysis.
//
// EGraph is not safe for concurrent use: add, merge, find, Class, and
// Rebuild are all synchronous and assume a single mutator, matching
// spec.md §5. Run Rebuild between batches of merges; querying congruence
// (rather than just union membership) before a Rebuild may observe stale
// state.
type EGraph[D any] struct {
	analysis Analysis[D]
	uf       unionFind
	classes  []*EClass[D]
	memo     map[uint64][]hashconsEntry
	dirty    []ids.Id
}

// New returns an empty e-graph driven by the given analysis.
func New[D any](analysis Analysis[D]) *EGraph[D] {
	return &EGraph[D]{
		analysis: analysis,
		memo:     make(map[uint64][]hashconsEntry),
	}
}

// Find returns the canonical id for id. find(find(id)) == find(id) always.
func (g *EGraph[D]) Find(id ids.Id) ids.Id {
	return g.uf.find(id)
}

// Add canonicalizes node's operands, hash-cons-interns it, and returns its
// (canonical) class id. Adding an already-known node returns the current
// canonical id of the class it was interned into.
func (g *EGraph[D]) Add(n lang.Node) ids.Id {
	g.canonicalize(n)

	if id, ok := g.lookup(n); ok {
		return g.Find(id)
	}

	id := g.uf.makeSet()
	class := &EClass[D]{ID: id, Nodes: []lang.Node{n}}
	class.Data = g.analysis.Make(g, n)
	g.classes = append(g.classes, class)

	for _, operand := range n.Operands() {
		parent := g.classes[g.Find(operand)]
		parent.Parents = append(parent.Parents, Parent{Node: n, Class: id})
	}

	g.insertMemo(n, id)
	return id
}

// ShoveItIn is an alias for Add.
func (g *EGraph[D]) ShoveItIn(n lang.Node) ids.Id {
	return g.Add(n)
}

// Merge unifies the classes of a and b, returning the surviving id. It is
// a no-op if a and b are already in the same class. Merge does not
// re-canonicalize the hash-cons eagerly — call Rebuild to restore
// congruence.
func (g *EGraph[D]) Merge(a, b ids.Id) ids.Id {
	ra, rb := g.Find(a), g.Find(b)
	if ra == rb {
		return ra
	}

	survivorID := g.uf.union(ra, rb)
	victimID := ra
	if survivorID == ra {
		victimID = rb
	}

	survivor := g.classes[survivorID]
	victim := g.classes[victimID]
	g.classes[victimID] = nil

	survivor.Nodes = append(survivor.Nodes, victim.Nodes...)
	parentsGrew := len(victim.Parents) > 0
	survivor.Parents = append(survivor.Parents, victim.Parents...)

	changed := g.analysis.Join(&survivor.Data, victim.Data)
	if changed || parentsGrew {
		g.dirty = append(g.dirty, survivorID)
	}
	return survivorID
}

// Size returns the number of canonical (live) classes.
func (g *EGraph[D]) Size() int {
	n := 0
	for _, c := range g.classes {
		if c != nil {
			n++
		}
	}
	return n
}

// Classes returns every live canonical class, in id order. The returned
// slice is freshly allocated, but its elements point at the graph's live
// classes, so later mutation of the graph is visible through them.
func (g *EGraph[D]) Classes() []*EClass[D] {
	out := make([]*EClass[D], 0, len(g.classes))
	for _, c := range g.classes {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Class returns the canonical EClass for id, or ErrBadId if id is unknown.
func (g *EGraph[D]) Class(id ids.Id) (*EClass[D], error) {
	if int(id) >= len(g.classes) {
		return nil, fmt.Errorf("%w: %d", ErrBadId, id)
	}
	c := g.Find(id)
	if g.classes[c] == nil {
		return nil, fmt.Errorf("%w: %d", ErrBadId, id)
	}
	return g.classes[c], nil
}

// MustClass is Class, panicking on a bad id. Indexing by an id not
// produced by this e-graph is a programming error, per spec.md §7.
func (g *EGraph[D]) MustClass(id ids.Id) *EClass[D] {
	c, err := g.Class(id)
	if err != nil {
		panic(err)
	}
	return c
}

func (g *EGraph[D]) canonicalize(n lang.Node) {
	operands := n.Operands()
	for i := range operands {
		operands[i] = g.Find(operands[i])
	}
}

func (g *EGraph[D]) lookup(n lang.Node) (ids.Id, bool) {
	for _, e := range g.memo[n.Hash()] {
		if e.node.Equal(n) {
			return e.id, true
		}
	}
	return 0, false
}

func (g *EGraph[D]) insertMemo(n lang.Node, id ids.Id) {
	h := n.Hash()
	g.memo[h] = append(g.memo[h], hashconsEntry{node: n, id: id})
}

func (g *EGraph[D]) removeMemo(n lang.Node) {
	h := n.Hash()
	bucket := g.memo[h]
	for i, e := range bucket {
		if e.node.Equal(n) {
			g.memo[h] = append(bucket[:i], bucket[i+1:]...)
			return
		}
	}
}
