// Package encoder lowers type-checked assertion trees into verification
// IR expressions. Encoding is a pure function of its explicit inputs:
// the expression-type table, the procedure context, and the declared
// type registry. It holds no mutable state and may run concurrently for
// independent assertions.
package encoder

import (
	"specter/internal/ast"
	"specter/internal/semantic"
	"specter/internal/spec"
	"specter/internal/types"
	"specter/internal/vir"
)

type Encoder struct {
	info     *semantic.TypeInfo
	ctx      *semantic.FuncContext
	registry *types.Registry
}

// NewEncoder creates an encoder over immutable analysis results. The
// inputs are read, never written.
func NewEncoder(info *semantic.TypeInfo, ctx *semantic.FuncContext, registry *types.Registry) *Encoder {
	return &Encoder{info: info, ctx: ctx, registry: registry}
}

// EncodeAssertion lowers one assertion tree into a single IR expression.
// The first unsupported construct stops this tree; other trees in the
// same batch are unaffected, so drivers can report every failure.
func (e *Encoder) EncodeAssertion(a *spec.Assertion) (vir.Expr, error) {
	return e.encodeAssertion(a, newScope(nil))
}

// EncodeExpression lowers one surface expression outside any assertion
// tree, for single-expression callers
func (e *Encoder) EncodeExpression(expr ast.Expr) (vir.Expr, error) {
	return e.encodeExpr(expr, newScope(nil))
}

func (e *Encoder) encodeAssertion(a *spec.Assertion, sc *scope) (vir.Expr, error) {
	switch kind := a.Kind.(type) {
	case *spec.ExprKind:
		return e.encodeExpr(kind.Expr.Expr, sc)

	case *spec.AndKind:
		if len(kind.Assertions) == 0 {
			return nil, emptyConjunction()
		}
		conjuncts := make([]vir.Expr, 0, len(kind.Assertions))
		for _, child := range kind.Assertions {
			encoded, err := e.encodeAssertion(child, sc)
			if err != nil {
				return nil, err
			}
			conjuncts = append(conjuncts, encoded)
		}
		return vir.Conjoin(conjuncts), nil

	case *spec.ImpliesKind:
		lhs, err := e.encodeAssertion(kind.Lhs, sc)
		if err != nil {
			return nil, err
		}
		rhs, err := e.encodeAssertion(kind.Rhs, sc)
		if err != nil {
			return nil, err
		}
		return vir.Implies(lhs, rhs), nil

	case *spec.ForAllKind:
		triggers := make([][]ast.Expr, 0, len(kind.Triggers))
		for _, set := range kind.Triggers {
			terms := make([]ast.Expr, 0, len(set.Terms))
			for _, leaf := range set.Terms {
				terms = append(terms, leaf.Expr)
			}
			triggers = append(triggers, terms)
		}
		return e.encodeQuantifier(kind.Vars, triggers, kind.Filter.Expr, kind.Body.Expr, sc)
	}

	return nil, unsupportedSyntax(ast.Position{}, "unknown assertion kind")
}

// encodeQuantifier binds the quantified variables, lowers the trigger
// terms, and composes the body as "filter ==> body". A nil filter means
// none was written and a universally-true one is supplied.
func (e *Encoder) encodeQuantifier(vars []*ast.QuantVar, triggers [][]ast.Expr, filter, body ast.Expr, sc *scope) (vir.Expr, error) {
	inner := newScope(sc)
	bound := make([]vir.LocalVar, 0, len(vars))

	for _, quantVar := range vars {
		varType, err := semantic.ResolveTypeRef(e.registry, quantVar.Type)
		if err != nil {
			return nil, typeMismatch(quantVar.Pos, "%v", err)
		}
		if !types.IsInteger(varType) {
			return nil, typeMismatch(quantVar.Pos,
				"quantification is only supported over integer values, found '%s'", varType.String())
		}

		local := vir.NewLocalVar(quantVar.Name.Value, &vir.IntType{})
		inner.bind(quantVar.Name.Value, local, varType)
		bound = append(bound, local)
	}

	// Trigger terms are lowered exactly like ordinary value expressions,
	// so primitive-typed place terms carry their value accessor inside
	// the trigger as well. That accessor is part of the trigger's
	// matched shape and callers write triggers accordingly.
	encodedTriggers := make([]vir.Trigger, 0, len(triggers))
	for _, terms := range triggers {
		encodedTerms := make([]vir.Expr, 0, len(terms))
		for _, term := range terms {
			encoded, err := e.encodeExpr(term, inner)
			if err != nil {
				return nil, err
			}
			encodedTerms = append(encodedTerms, encoded)
		}
		encodedTriggers = append(encodedTriggers, vir.NewTrigger(encodedTerms))
	}

	var encodedFilter vir.Expr
	if filter == nil {
		encodedFilter = vir.NewBoolConst(true)
	} else {
		var err error
		encodedFilter, err = e.encodeExpr(filter, inner)
		if err != nil {
			return nil, err
		}
	}

	encodedBody, err := e.encodeExpr(body, inner)
	if err != nil {
		return nil, err
	}

	return vir.NewForAll(bound, encodedTriggers, vir.Implies(encodedFilter, encodedBody)), nil
}

// splitFilter splits a quantifier body of the shape "filter ==> body";
// a bare body yields a nil filter
func splitFilter(body ast.Expr) (ast.Expr, ast.Expr) {
	if impl, ok := unwrapParens(body).(*ast.BinaryExpr); ok && impl.Op == "==>" {
		return impl.Left, impl.Right
	}
	return nil, body
}

func astTriggers(groups []*ast.TriggerGroup) [][]ast.Expr {
	triggers := make([][]ast.Expr, 0, len(groups))
	for _, group := range groups {
		triggers = append(triggers, group.Terms)
	}
	return triggers
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
