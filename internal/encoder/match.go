package encoder

import (
	"specter/internal/ast"
	"specter/internal/vir"
)

// Match desugaring. A restricted match becomes a chain of conditionals:
// each arm contributes the disjunction of its pattern conditions, and
// the last arm is the default. The fold preserves first-match,
// left-to-right semantics.

func (e *Encoder) encodeMatch(expr *ast.MatchExpr, sc *scope) (vir.Expr, error) {
	if len(expr.Arms) == 0 {
		return nil, unsupportedSyntax(expr.Pos, "match expression has no arms")
	}

	for _, arm := range expr.Arms {
		if arm.Guard != nil {
			return nil, unsupportedSyntax(arm.Guard.NodePos(), "guarded match arms are not supported")
		}
		for _, pattern := range arm.Patterns {
			if binding, ok := pattern.(*ast.BindingPattern); ok {
				return nil, unsupportedSyntax(binding.Pos,
					"match arms that bind '%s' are not supported", binding.Name.Value)
			}
		}
	}

	scrutinee, err := e.encodeExpr(expr.Scrutinee, sc)
	if err != nil {
		return nil, err
	}
	return e.desugarArms(scrutinee, expr.Arms, sc)
}

func (e *Encoder) desugarArms(scrutinee vir.Expr, arms []*ast.MatchArm, sc *scope) (vir.Expr, error) {
	// The final arm is the default; its patterns never produce a
	// condition
	if len(arms) == 1 {
		return e.encodeExpr(arms[0].Body, sc)
	}

	arm := arms[0]
	conditions := make([]vir.Expr, 0, len(arm.Patterns))
	for _, pattern := range arm.Patterns {
		condition, err := e.patternCondition(scrutinee, pattern)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, condition)
	}

	body, err := e.encodeExpr(arm.Body, sc)
	if err != nil {
		return nil, err
	}
	rest, err := e.desugarArms(scrutinee, arms[1:], sc)
	if err != nil {
		return nil, err
	}
	return vir.ITE(vir.Disjoin(conditions), body, rest), nil
}

// patternCondition builds the boolean test for one pattern against the
// encoded scrutinee
func (e *Encoder) patternCondition(scrutinee vir.Expr, pattern ast.Pattern) (vir.Expr, error) {
	switch p := pattern.(type) {
	case *ast.WildcardPattern:
		return vir.NewBoolConst(true), nil

	case *ast.LiteralPattern:
		literal, err := encodeLiteral(p.Value)
		if err != nil {
			return nil, err
		}
		return vir.EqCmp(scrutinee, literal), nil

	case *ast.PathPattern:
		if len(p.Elems) > 0 {
			return nil, unsupportedSyntax(p.Pos,
				"patterns with element lists are not supported")
		}
		// Testing an empty variant pattern needs discriminant
		// extraction on the scrutinee, which the IR does not carry
		return nil, unsupportedSyntax(p.Pos,
			"variant pattern '%s::%s' requires discriminant extraction, which is not supported",
			p.Type.Value, p.Variant.Value)

	case *ast.TuplePattern:
		if len(p.Elems) > 0 {
			return nil, unsupportedSyntax(p.Pos,
				"patterns with element lists are not supported")
		}
		return nil, unsupportedSyntax(p.Pos,
			"empty tuple patterns require discriminant extraction, which is not supported")
	}

	return nil, unsupportedSyntax(pattern.NodePos(), "unsupported match pattern")
}
