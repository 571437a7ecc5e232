package lang

import "eqsat/ids"

// Fields1, Fields2, and Fields3 are embeddable bases for fixed-arity nodes
// whose operand positions are bound to named field-accessor methods on the
// concrete type, the Go rendition of a compile-time field tag:
//
//	type Not struct{ lang.Fields1 }
//	func NewNot(negated ids.Id) *Not { return &Not{lang.NewFields1(negated)} }
//	func (n *Not) Negated() ids.Id   { return n.Field(0) }
type Fields1 struct {
	ops [1]ids.Id
}

// NewFields1 constructs a Fields1 base from its single operand.
func NewFields1(a ids.Id) Fields1 { return Fields1{[1]ids.Id{a}} }

// Operands returns the operand in position order.
func (f *Fields1) Operands() ids.Slice { return f.ops[:] }

// Field returns the operand at the given position.
func (f Fields1) Field(i int) ids.Id { return f.ops[i] }

// Fields2 is the two-operand counterpart of Fields1.
type Fields2 struct {
	ops [2]ids.Id
}

// NewFields2 constructs a Fields2 base from its two operands, in position order.
func NewFields2(a, b ids.Id) Fields2 { return Fields2{[2]ids.Id{a, b}} }

// Operands returns the operands in position order.
func (f *Fields2) Operands() ids.Slice { return f.ops[:] }

// Field returns the operand at the given position.
func (f Fields2) Field(i int) ids.Id { return f.ops[i] }

// Fields3 is the three-operand counterpart of Fields1.
type Fields3 struct {
	ops [3]ids.Id
}

// NewFields3 constructs a Fields3 base from its three operands, in position order.
func NewFields3(a, b, c ids.Id) Fields3 { return Fields3{[3]ids.Id{a, b, c}} }

// Operands returns the operands in position order.
func (f *Fields3) Operands() ids.Slice { return f.ops[:] }

// Field returns the operand at the given position.
func (f Fields3) Field(i int) ids.Id { return f.ops[i] }
