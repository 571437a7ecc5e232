package boolalg

import (
	"eqsat/egraph"
	"eqsat/ids"
	"eqsat/lang"
)

// Data is the constant-folding analysis datum: an optional boolean, bottom
// is "unknown".
type Data struct {
	Known bool
	Value bool
}

// ConstantFold folds Bool/Not/And/Or/Implies nodes down to a known boolean
// value whenever their operands are already known.
//
// The Or case computes left || right. The language this was translated
// from had an And/Or mixup in its ConstantFold::make (Or computed logical
// AND); that was a bug in the source, not the intended semantics, and is
// not reproduced here.
type ConstantFold struct{}

// Make implements egraph.Analysis.
func (ConstantFold) Make(g *egraph.EGraph[Data], n lang.Node) Data {
	switch v := n.(type) {
	case *Var:
		return Data{}
	case *Bool:
		return Data{Known: true, Value: v.Value}
	case *Not:
		if d := classData(g, v.Negated()); d.Known {
			return Data{Known: true, Value: !d.Value}
		}
	case *And:
		left, right := classData(g, v.Left()), classData(g, v.Right())
		if left.Known && right.Known {
			return Data{Known: true, Value: left.Value && right.Value}
		}
	case *Or:
		left, right := classData(g, v.Left()), classData(g, v.Right())
		if left.Known && right.Known {
			return Data{Known: true, Value: left.Value || right.Value}
		}
	case *Implies:
		antecedent, consequent := classData(g, v.Antecedent()), classData(g, v.Consequent())
		if antecedent.Known && consequent.Known {
			return Data{Known: true, Value: !antecedent.Value || consequent.Value}
		}
	}
	return Data{}
}

// Join implements egraph.Analysis: the lattice is unknown < known, and two
// known values are assumed consistent (the rewrite layer is responsible
// for never merging classes with contradictory known analysis data).
func (ConstantFold) Join(current *Data, incoming Data) bool {
	if !current.Known && incoming.Known {
		*current = incoming
		return true
	}
	return false
}

func classData(g *egraph.EGraph[Data], id ids.Id) Data {
	c, err := g.Class(id)
	if err != nil {
		return Data{}
	}
	return c.Data
}
