// Package ids provides the opaque class-identifier type shared by the
// language substrate and the e-graph core.
package ids

// Id is a dense, non-negative class identifier. Ids are never recycled:
// once returned by an allocation they remain valid handles forever, even
// after the class they named has been absorbed into another during a
// merge. Resolve a possibly-stale Id to its current representative with
// a union-find Find.
type Id uint32

// Slice is a borrowed view over a contiguous sequence of operand Ids, in
// position order. It is empty for atoms. Indexing a Slice mutates the
// underlying storage directly — Go has no const/mutable view split, so a
// single type serves both the read-only and canonicalize-in-place roles
// spec'd separately in the originating design.
type Slice []Id

// Equal reports whether two slices contain the same Ids in the same order.
func (s Slice) Equal(other Slice) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}
