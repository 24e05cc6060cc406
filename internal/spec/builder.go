package spec

import (
	"specter/internal/ast"
)

// Builder converts one type-checked clause condition into an assertion
// tree, assigning expression identifiers to every leaf and recording them
// in the registry. The tree is built once and never mutated.
//
// Splitting happens only at assertion level: top-level conjunctions,
// implications, and quantifiers become tree nodes; the same connectives
// nested under other operators stay inside leaf expressions, where the
// expression encoder handles them.
type Builder struct {
	specID SpecificationID
	nextID ExpressionID
	reg    *Registry
}

// NewBuilder creates a builder for one specification. Leaves are
// registered against reg as they are assigned identifiers.
func NewBuilder(specID SpecificationID, reg *Registry) *Builder {
	return &Builder{specID: specID, reg: reg}
}

// Build constructs the assertion tree for a clause condition
func (b *Builder) Build(cond ast.Expr) *Assertion {
	return b.build(cond)
}

func (b *Builder) build(expr ast.Expr) *Assertion {
	expr = unwrapParens(expr)

	switch e := expr.(type) {
	case *ast.BinaryExpr:
		switch e.Op {
		case "&&":
			var children []*Assertion
			for _, conjunct := range flattenConjuncts(e) {
				children = append(children, b.build(conjunct))
			}
			return &Assertion{Kind: &AndKind{Assertions: children}}

		case "==>":
			return &Assertion{Kind: &ImpliesKind{
				Lhs: b.build(e.Left),
				Rhs: b.build(e.Right),
			}}
		}

	case *ast.ForAllExpr:
		return b.buildForAll(e)
	}

	return &Assertion{Kind: &ExprKind{Expr: b.newLeaf(expr)}}
}

func (b *Builder) buildForAll(e *ast.ForAllExpr) *Assertion {
	triggers := make([]TriggerSet, 0, len(e.Triggers))
	for _, group := range e.Triggers {
		terms := make([]LeafExpression, 0, len(group.Terms))
		for _, term := range group.Terms {
			terms = append(terms, b.newLeaf(term))
		}
		triggers = append(triggers, TriggerSet{Terms: terms})
	}

	// The body is always encoded as filter ==> body. A quantifier
	// written without an explicit filter gets a universally-true one.
	var filter, body LeafExpression
	if impl, ok := unwrapParens(e.Body).(*ast.BinaryExpr); ok && impl.Op == "==>" {
		filter = b.newLeaf(impl.Left)
		body = b.newLeaf(impl.Right)
	} else {
		filter = b.newLeaf(&ast.LiteralExpr{
			Pos:    e.Pos,
			EndPos: e.Pos,
			Kind:   ast.BoolLit,
			Value:  "true",
		})
		body = b.newLeaf(e.Body)
	}

	return &Assertion{Kind: &ForAllKind{
		Vars:     e.Vars,
		Triggers: triggers,
		Filter:   filter,
		Body:     body,
	}}
}

func (b *Builder) newLeaf(expr ast.Expr) LeafExpression {
	leaf := LeafExpression{
		SpecID: b.specID,
		ExprID: b.nextID,
		Expr:   expr,
	}
	b.nextID++
	if b.reg != nil {
		b.reg.Register(leaf)
	}
	return leaf
}

// flattenConjuncts collects the ordered operands of a left-associated
// chain of "&&" so "a && b && c" becomes one three-child conjunction
func flattenConjuncts(expr ast.Expr) []ast.Expr {
	unwrapped := unwrapParens(expr)
	if bin, ok := unwrapped.(*ast.BinaryExpr); ok && bin.Op == "&&" {
		return append(flattenConjuncts(bin.Left), flattenConjuncts(bin.Right)...)
	}
	return []ast.Expr{expr}
}

func unwrapParens(expr ast.Expr) ast.Expr {
	for {
		paren, ok := expr.(*ast.ParenExpr)
		if !ok {
			return expr
		}
		expr = paren.Value
	}
}
