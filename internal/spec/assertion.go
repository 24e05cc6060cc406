package spec

import (
	"specter/internal/ast"
)

// LeafExpression ties an identified leaf to its type-checked surface
// expression. The surface node is externally owned; the leaf holds a
// read-only reference.
type LeafExpression struct {
	SpecID SpecificationID
	ExprID ExpressionID
	Expr   ast.Expr // nil in wire-decoded skeletons until resolved
}

// AssertionKind is the closed sum over assertion tree node shapes
type AssertionKind interface {
	isAssertionKind()
}

func (*ExprKind) isAssertionKind()    {}
func (*AndKind) isAssertionKind()     {}
func (*ImpliesKind) isAssertionKind() {}
func (*ForAllKind) isAssertionKind()  {}

// ExprKind wraps a single leaf expression
type ExprKind struct {
	Expr LeafExpression
}

// AndKind is an ordered conjunction of sub-assertions. Order matters only
// for diagnostics; conjunction is commutative.
type AndKind struct {
	Assertions []*Assertion
}

// ImpliesKind is a logical implication between two sub-assertions
type ImpliesKind struct {
	Lhs *Assertion
	Rhs *Assertion
}

// ForAllKind is a universally quantified assertion: bound variables,
// instantiation trigger sets, and a filter/body pair. The filter is
// always present; assertions written without one carry a synthesized
// universally-true filter.
type ForAllKind struct {
	Vars     []*ast.QuantVar
	Triggers []TriggerSet
	Filter   LeafExpression
	Body     LeafExpression
}

// TriggerSet is one ordered set of leaf trigger terms
type TriggerSet struct {
	Terms []LeafExpression
}

// Assertion wraps one AssertionKind. Assertions form finite acyclic
// trees, exclusively owned top-down, and are read-only once built.
type Assertion struct {
	Kind AssertionKind
}
