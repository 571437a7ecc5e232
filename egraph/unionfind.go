package egraph

import "eqsat/ids"

// unionFind is a disjoint-set over ids.Id with path compression on find and
// union-by-rank on merge. It stores only parent/rank pointers; class
// payloads live in the owning EGraph.
type unionFind struct {
	parent []ids.Id
	rank   []uint8
}

// makeSet appends a fresh root and returns its id.
func (u *unionFind) makeSet() ids.Id {
	id := ids.Id(len(u.parent))
	u.parent = append(u.parent, id)
	u.rank = append(u.rank, 0)
	return id
}

// find returns the canonical representative for id, compressing the path
// (by halving) as it walks.
func (u *unionFind) find(id ids.Id) ids.Id {
	for u.parent[id] != id {
		u.parent[id] = u.parent[u.parent[id]]
		id = u.parent[id]
	}
	return id
}

// union merges the sets containing a and b (assumed already canonical) and
// returns the surviving root.
func (u *unionFind) union(a, b ids.Id) ids.Id {
	if a == b {
		return a
	}
	if u.rank[a] < u.rank[b] {
		a, b = b, a
	}
	u.parent[b] = a
	if u.rank[a] == u.rank[b] {
		u.rank[a]++
	}
	return a
}
