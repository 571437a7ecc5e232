package lang

import "eqsat/ids"

// Atom is an embeddable base for zero-operand variants that carry a
// comparable payload value. A concrete atom type embeds Atom[V] and
// implements Tag/Equal/Hash using ValueEqual, the payload value, and its
// own tag constant.
//
//	type Bool struct{ lang.Atom[bool] }
//	func (*Bool) Tag() lang.Tag { return tagBool }
//	func (b *Bool) Equal(other lang.Node) bool {
//	    o, ok := other.(*Bool)
//	    return ok && b.ValueEqual(o.Atom)
//	}
type Atom[V comparable] struct {
	Value V
}

// Operands is always empty for an atom. Defined with a pointer receiver so
// every concrete node type uniformly satisfies Node as a pointer, matching
// the convention that a Node handle points at a payload owned by a
// bump.Allocator (or the heap).
func (*Atom[V]) Operands() ids.Slice { return nil }

// ValueEqual reports whether two atoms of the same instantiation carry an
// equal payload.
func (a Atom[V]) ValueEqual(other Atom[V]) bool {
	return a.Value == other.Value
}
