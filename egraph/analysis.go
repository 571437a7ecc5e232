package egraph

import "eqsat/lang"

// Analysis computes and merges a per-class datum D as nodes are added and
// classes are merged.
//
// Make must be pure in its node argument (it may read other classes' Data
// through g, but must not mutate the e-graph). Join must be commutative,
// associative, and idempotent, and must only move D upward in a
// well-founded order — Rebuild's termination depends on it. Join reports
// whether current changed so the engine knows whether to keep propagating;
// it is never asked to compare D for equality itself.
type Analysis[D any] interface {
	Make(g *EGraph[D], n lang.Node) D
	Join(current *D, incoming D) (changed bool)
}
