package egraph

import "eqsat/ids"

// Rebuild drains the dirty worklist to a fixed point, restoring the
// congruence, canonicality, parent-soundness, and analysis-convergence
// invariants described in spec.md §3. Termination depends on Join being
// monotone over a well-founded lattice (spec.md §7 AnalysisNonTerminating);
// Rebuild does not itself detect a non-terminating analysis.
func (g *EGraph[D]) Rebuild() {
	for len(g.dirty) > 0 {
		id := g.dirty[len(g.dirty)-1]
		g.dirty = g.dirty[:len(g.dirty)-1]
		g.repair(g.Find(id))
	}
}

// repair restores the invariants for one class: it re-canonicalizes every
// parent node, merging any classes congruence now reveals should be one,
// then recomputes the class's analysis datum and re-enqueues its parents
// if the datum changed.
func (g *EGraph[D]) repair(id ids.Id) {
	class := g.classes[id]
	if class == nil {
		// id was absorbed by a merge triggered while it sat on the
		// worklist; whatever survived it is already dirty in its own
		// right.
		return
	}

	oldParents := class.Parents
	newParents := make([]Parent, 0, len(oldParents))

	for _, p := range oldParents {
		g.removeMemo(p.Node)
		g.canonicalize(p.Node)

		pc := g.Find(p.Class)
		if existing, ok := g.lookup(p.Node); ok {
			if g.Find(existing) != pc {
				pc = g.Merge(pc, existing)
			}
		}
		g.insertMemo(p.Node, pc)
		newParents = append(newParents, Parent{Node: p.Node, Class: pc})
	}
	newParents = dedupParents(newParents)

	// Processing parents above may, in a self-referential graph, have
	// absorbed id's own class transitively; re-resolve defensively.
	id = g.Find(id)
	class = g.classes[id]
	if class == nil {
		return
	}
	class.Parents = newParents

	changed := false
	for _, n := range class.Nodes {
		if g.analysis.Join(&class.Data, g.analysis.Make(g, n)) {
			changed = true
		}
	}
	if changed {
		for _, p := range class.Parents {
			g.dirty = append(g.dirty, p.Class)
		}
	}
}

// dedupParents removes duplicate (node, class) parent entries modulo the
// node's structural Equal, which canonicalization may introduce when a
// node refers to the same child operand more than once.
func dedupParents(parents []Parent) []Parent {
	seen := make(map[uint64][]Parent, len(parents))
	out := parents[:0]
	for _, p := range parents {
		h := p.Node.Hash()
		dup := false
		for _, s := range seen[h] {
			if s.Class == p.Class && s.Node.Equal(p.Node) {
				dup = true
				break
			}
		}
		if !dup {
			seen[h] = append(seen[h], p)
			out = append(out, p)
		}
	}
	return out
}
