// Package boolalg is a small closed-world propositional-logic language
// (variables, booleans, not/and/or/implies) used to exercise the e-graph
// core, together with a constant-folding analysis.
package boolalg

import (
	"golang.org/x/text/unicode/norm"

	"eqsat/ids"
	"eqsat/lang"
)

// Tags for the six variants of this language.
const (
	TagVar lang.Tag = iota
	TagBool
	TagNot
	TagAnd
	TagOr
	TagImplies
)

// Var is a free variable, identified by name.
type Var struct{ lang.Atom[string] }

// NewVar constructs a Var, normalizing its name to NFC so that two
// variables spelled with different Unicode normalization forms hash-cons
// to the same atom.
func NewVar(name string) *Var {
	return &Var{lang.Atom[string]{Value: norm.NFC.String(name)}}
}

func (*Var) Tag() lang.Tag { return TagVar }

func (v *Var) Equal(other lang.Node) bool {
	o, ok := other.(*Var)
	return ok && v.ValueEqual(o.Atom)
}

func (v *Var) Hash() uint64 {
	return lang.HashCombine(uint64(TagVar), lang.HashString(v.Value))
}

// Bool is a boolean literal.
type Bool struct{ lang.Atom[bool] }

// NewBool constructs a Bool literal.
func NewBool(value bool) *Bool {
	return &Bool{lang.Atom[bool]{Value: value}}
}

func (*Bool) Tag() lang.Tag { return TagBool }

func (b *Bool) Equal(other lang.Node) bool {
	o, ok := other.(*Bool)
	return ok && b.ValueEqual(o.Atom)
}

func (b *Bool) Hash() uint64 {
	return lang.HashCombine(uint64(TagBool), lang.HashBool(b.Value))
}

// Not is logical negation.
type Not struct{ lang.Fields1 }

// NewNot constructs Not(negated).
func NewNot(negated ids.Id) *Not {
	return &Not{lang.NewFields1(negated)}
}

func (*Not) Tag() lang.Tag { return TagNot }

// Negated is the field accessor for Not's single operand.
func (n *Not) Negated() ids.Id { return n.Field(0) }

func (n *Not) Equal(other lang.Node) bool {
	o, ok := other.(*Not)
	return ok && n.Operands().Equal(o.Operands())
}

func (n *Not) Hash() uint64 {
	return lang.HashCombine(uint64(TagNot), lang.HashIds(n.Operands()))
}

// And is logical conjunction.
type And struct{ lang.Fields2 }

// NewAnd constructs And(left, right).
func NewAnd(left, right ids.Id) *And {
	return &And{lang.NewFields2(left, right)}
}

func (*And) Tag() lang.Tag { return TagAnd }

func (a *And) Left() ids.Id  { return a.Field(0) }
func (a *And) Right() ids.Id { return a.Field(1) }

func (a *And) Equal(other lang.Node) bool {
	o, ok := other.(*And)
	return ok && a.Operands().Equal(o.Operands())
}

func (a *And) Hash() uint64 {
	return lang.HashCombine(uint64(TagAnd), lang.HashIds(a.Operands()))
}

// Or is logical disjunction.
type Or struct{ lang.Fields2 }

// NewOr constructs Or(left, right).
func NewOr(left, right ids.Id) *Or {
	return &Or{lang.NewFields2(left, right)}
}

func (*Or) Tag() lang.Tag { return TagOr }

func (o *Or) Left() ids.Id  { return o.Field(0) }
func (o *Or) Right() ids.Id { return o.Field(1) }

func (o *Or) Equal(other lang.Node) bool {
	v, ok := other.(*Or)
	return ok && o.Operands().Equal(v.Operands())
}

func (o *Or) Hash() uint64 {
	return lang.HashCombine(uint64(TagOr), lang.HashIds(o.Operands()))
}

// Implies is material implication.
type Implies struct{ lang.Fields2 }

// NewImplies constructs Implies(antecedent, consequent).
func NewImplies(antecedent, consequent ids.Id) *Implies {
	return &Implies{lang.NewFields2(antecedent, consequent)}
}

func (*Implies) Tag() lang.Tag { return TagImplies }

func (i *Implies) Antecedent() ids.Id { return i.Field(0) }
func (i *Implies) Consequent() ids.Id { return i.Field(1) }

func (i *Implies) Equal(other lang.Node) bool {
	o, ok := other.(*Implies)
	return ok && i.Operands().Equal(o.Operands())
}

func (i *Implies) Hash() uint64 {
	return lang.HashCombine(uint64(TagImplies), lang.HashIds(i.Operands()))
}
