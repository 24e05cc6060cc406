package encoder

import (
	"math/big"
	"strings"

	"specter/internal/ast"
	"specter/internal/types"
	"specter/internal/vir"
)

// encodeExpr lowers one type-checked surface expression into a fresh IR
// expression of matching semantic sort
func (e *Encoder) encodeExpr(expr ast.Expr, sc *scope) (vir.Expr, error) {
	switch node := expr.(type) {
	case *ast.LiteralExpr:
		return encodeLiteral(node)

	case *ast.IdentExpr, *ast.FieldAccessExpr:
		return e.encodePlaceValue(node, sc)

	case *ast.UnaryExpr:
		return e.encodeUnary(node, sc)

	case *ast.BinaryExpr:
		return e.encodeBinary(node, sc)

	case *ast.ParenExpr:
		return e.encodeExpr(node.Value, sc)

	case *ast.CondExpr:
		return e.encodeCond(node, sc)

	case *ast.BlockExpr:
		return e.encodeExpr(node.Tail, sc)

	case *ast.CallExpr:
		return e.encodeCall(node, sc)

	case *ast.MatchExpr:
		return e.encodeMatch(node, sc)

	case *ast.ForAllExpr:
		// Nested quantifiers inside a leaf are not split into the
		// assertion tree; encode them in place
		filter, body := splitFilter(node.Body)
		return e.encodeQuantifier(node.Vars, astTriggers(node.Triggers), filter, body, sc)
	}

	return nil, unsupportedSyntax(expr.NodePos(),
		"expression '%s' is outside the supported assertion grammar", expr.String())
}

// encodeLiteral converts integer literals of any written base to an
// arbitrary-precision constant, and boolean literals to a boolean
// constant. Digit separators are accepted and discarded.
func encodeLiteral(lit *ast.LiteralExpr) (vir.Expr, error) {
	if lit.Kind == ast.BoolLit {
		return vir.NewBoolConst(lit.Value == "true"), nil
	}

	cleaned := strings.ReplaceAll(lit.Value, "_", "")
	value, ok := new(big.Int).SetString(cleaned, 0)
	if !ok {
		return nil, unsupportedSyntax(lit.Pos, "malformed integer literal '%s'", lit.Value)
	}
	return vir.NewIntConst(value), nil
}

func (e *Encoder) encodeUnary(expr *ast.UnaryExpr, sc *scope) (vir.Expr, error) {
	if expr.Op == "*" {
		return e.encodePlaceValue(expr, sc)
	}

	operand, err := e.encodeExpr(expr.Value, sc)
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case "!":
		if !e.hasStaticType(expr.Value, types.IsBool) {
			return nil, typeMismatch(expr.Pos, "logical not requires a boolean operand")
		}
		return vir.Not(operand), nil
	case "-":
		if !e.hasStaticType(expr.Value, types.IsInteger) {
			return nil, typeMismatch(expr.Pos, "negation requires an integer operand")
		}
		return vir.Minus(operand), nil
	}

	return nil, unsupportedSyntax(expr.Pos, "unary operator '%s' is not supported", expr.Op)
}

func (e *Encoder) encodeBinary(expr *ast.BinaryExpr, sc *scope) (vir.Expr, error) {
	left, err := e.encodeExpr(expr.Left, sc)
	if err != nil {
		return nil, err
	}
	right, err := e.encodeExpr(expr.Right, sc)
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case "+":
		return vir.Add(left, right), nil
	case "-":
		return vir.Sub(left, right), nil
	case "*":
		return vir.Mul(left, right), nil
	case "/":
		return vir.Div(left, right), nil
	case "%":
		return vir.Rem(left, right), nil

	case "&&":
		return vir.And(left, right), nil
	case "||":
		return vir.Or(left, right), nil
	case "==>":
		return vir.Implies(left, right), nil

	// Comparisons apply uniformly whatever the operand types
	case "==":
		return vir.EqCmp(left, right), nil
	case "!=":
		return vir.NeCmp(left, right), nil
	case "<":
		return vir.LtCmp(left, right), nil
	case "<=":
		return vir.LeCmp(left, right), nil
	case ">":
		return vir.GtCmp(left, right), nil
	case ">=":
		return vir.GeCmp(left, right), nil

	// Bitwise operators are reinterpreted as logical connectives when
	// both operands are boolean; bit-level integer semantics are
	// unsupported
	case "&", "|", "^":
		if !e.hasStaticType(expr.Left, types.IsBool) || !e.hasStaticType(expr.Right, types.IsBool) {
			return nil, unsupportedSyntax(expr.Pos,
				"bitwise '%s' is only supported on boolean operands", expr.Op)
		}
		switch expr.Op {
		case "&":
			return vir.And(left, right), nil
		case "|":
			return vir.Or(left, right), nil
		}
		return vir.Xor(left, right), nil
	}

	return nil, unsupportedSyntax(expr.Pos, "binary operator '%s' is not supported", expr.Op)
}

func (e *Encoder) encodeCond(expr *ast.CondExpr, sc *scope) (vir.Expr, error) {
	guard, err := e.encodeExpr(expr.Cond, sc)
	if err != nil {
		return nil, err
	}
	then, err := e.encodeExpr(expr.Then, sc)
	if err != nil {
		return nil, err
	}
	els, err := e.encodeExpr(expr.Else, sc)
	if err != nil {
		return nil, err
	}
	return vir.ITE(guard, then, els), nil
}

// encodeCall handles the whitelisted pure calls. Only the unary
// pre-state snapshot "old" is supported; the wrapper carries the encoded
// argument untouched.
func (e *Encoder) encodeCall(expr *ast.CallExpr, sc *scope) (vir.Expr, error) {
	if expr.Callee.Value != "old" {
		return nil, unsupportedSyntax(expr.Pos,
			"call to '%s' is not supported; only 'old' may be called in assertions", expr.Callee.Value)
	}
	if len(expr.Args) != 1 {
		return nil, unsupportedSyntax(expr.Pos,
			"'old' takes exactly one argument, found %d", len(expr.Args))
	}

	body, err := e.encodeExpr(expr.Args[0], sc)
	if err != nil {
		return nil, err
	}
	return vir.NewOld(body), nil
}

// hasStaticType reports whether the analyzer assigned expr a type
// satisfying the predicate
func (e *Encoder) hasStaticType(expr ast.Expr, pred func(types.Type) bool) bool {
	typ, ok := e.info.TypeOf(expr)
	return ok && pred(typ)
}
