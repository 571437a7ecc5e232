package egraph

import (
	"eqsat/ids"
	"eqsat/lang"
)

// Parent records that Node contains the owning class among its operands,
// and that Node itself belongs to class Class. Parents drive the upward
// re-canonicalization Rebuild performs after a merge.
type Parent struct {
	Node  lang.Node
	Class ids.Id
}

// EClass is one equivalence class: its canonical id as of the last
// Rebuild, its member nodes, the parent edges that reference it, and its
// analysis datum.
type EClass[D any] struct {
	ID      ids.Id
	Nodes   []lang.Node
	Parents []Parent
	Data    D
}
