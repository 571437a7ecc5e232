package lang

import "eqsat/ids"

// Vector is an embeddable base for variable-arity nodes with ordered
// operands, such as an argument list.
type Vector struct {
	ops []ids.Id
}

// NewVector constructs a Vector base owning a copy of operands.
func NewVector(operands ...ids.Id) Vector {
	cp := make([]ids.Id, len(operands))
	copy(cp, operands)
	return Vector{ops: cp}
}

// Operands returns the operands in position order. Defined with a pointer
// receiver for the same reason as Atom.Operands and Fields*.Operands.
func (v *Vector) Operands() ids.Slice { return v.ops }

// Len returns the number of operands.
func (v *Vector) Len() int { return len(v.ops) }
