package semantic

import (
	"fmt"
	"strconv"

	"specter/internal/ast"
	"specter/internal/errors"
	"specter/internal/types"
)

// checkExpr assigns a static type to expr, recording it in the type
// table. A nil return means the expression (or a subexpression) already
// produced a diagnostic; callers skip their own check to avoid cascades.
func (a *Analyzer) checkExpr(expr ast.Expr, scope *SymbolTable, ctx *FuncContext) types.Type {
	typ := a.typeExpr(expr, scope, ctx)
	if typ != nil {
		a.typeInfo.record(expr, typ)
	}
	return typ
}

func (a *Analyzer) typeExpr(expr ast.Expr, scope *SymbolTable, ctx *FuncContext) types.Type {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		if e.Kind == ast.BoolLit {
			return &types.BoolType{}
		}
		return &types.IntType{}

	case *ast.IdentExpr:
		return a.typeIdent(e, scope, ctx)

	case *ast.UnaryExpr:
		return a.typeUnary(e, scope, ctx)

	case *ast.BinaryExpr:
		return a.typeBinary(e, scope, ctx)

	case *ast.FieldAccessExpr:
		return a.typeFieldAccess(e, scope, ctx)

	case *ast.CallExpr:
		return a.typeCall(e, scope, ctx)

	case *ast.ParenExpr:
		return a.checkExpr(e.Value, scope, ctx)

	case *ast.CondExpr:
		return a.typeCond(e, scope, ctx)

	case *ast.BlockExpr:
		return a.checkExpr(e.Tail, scope, ctx)

	case *ast.MatchExpr:
		return a.typeMatch(e, scope, ctx)

	case *ast.ForAllExpr:
		return a.typeForAll(e, scope, ctx)

	case *ast.BadExpr:
		return nil
	}

	return nil
}

func (a *Analyzer) typeIdent(e *ast.IdentExpr, scope *SymbolTable, ctx *FuncContext) types.Type {
	if e.Name == "result" {
		if symbol := scope.Lookup("result"); symbol != nil {
			// A quantified variable named "result" shadows the return value
			return symbol.Type
		}
		if ctx.Return == nil {
			a.reportError(errors.NewError(errors.ErrorUndefinedVariable,
				fmt.Sprintf("'result' is not available: '%s' returns nothing", ctx.Name), e.Pos).
				WithLength(len(e.Name)).
				Build())
			return nil
		}
		return ctx.Return.Type
	}

	symbol := scope.Lookup(e.Name)
	if symbol == nil {
		a.reportError(errors.UndefinedVariable(e.Name, e.Pos, a.similarNames(e.Name, scope, ctx)))
		return nil
	}
	return symbol.Type
}

func (a *Analyzer) typeUnary(e *ast.UnaryExpr, scope *SymbolTable, ctx *FuncContext) types.Type {
	operand := a.checkExpr(e.Value, scope, ctx)
	if operand == nil {
		return nil
	}

	switch e.Op {
	case "!":
		if !types.IsBool(operand) {
			a.reportError(errors.CheckMismatch("bool", operand.String(), e.Value.NodePos()))
			return nil
		}
		return operand
	case "-":
		if !types.IsInteger(operand) {
			a.reportError(errors.CheckMismatch("int", operand.String(), e.Value.NodePos()))
			return nil
		}
		return operand
	case "*":
		if !types.IsRef(operand) {
			a.reportError(errors.CheckMismatch("reference", operand.String(), e.Value.NodePos()))
			return nil
		}
		return types.Deref(operand)
	}

	a.reportError(errors.NewError(errors.ErrorCheckMismatch,
		fmt.Sprintf("unknown unary operator '%s'", e.Op), e.Pos).Build())
	return nil
}

func (a *Analyzer) typeBinary(e *ast.BinaryExpr, scope *SymbolTable, ctx *FuncContext) types.Type {
	left := a.checkExpr(e.Left, scope, ctx)
	right := a.checkExpr(e.Right, scope, ctx)
	if left == nil || right == nil {
		return nil
	}

	switch e.Op {
	case "+", "-", "*", "/", "%", "<<", ">>":
		if !types.IsInteger(left) {
			a.reportError(errors.CheckMismatch("int", left.String(), e.Left.NodePos()))
			return nil
		}
		if !types.IsInteger(right) {
			a.reportError(errors.CheckMismatch("int", right.String(), e.Right.NodePos()))
			return nil
		}
		return left

	case "<", "<=", ">", ">=":
		if !types.IsInteger(left) {
			a.reportError(errors.CheckMismatch("int", left.String(), e.Left.NodePos()))
			return nil
		}
		if !types.IsInteger(right) {
			a.reportError(errors.CheckMismatch("int", right.String(), e.Right.NodePos()))
			return nil
		}
		return &types.BoolType{}

	case "==", "!=":
		if !sameType(left, right) {
			a.reportError(errors.CheckMismatch(left.String(), right.String(), e.Right.NodePos()))
			return nil
		}
		return &types.BoolType{}

	case "&&", "||", "==>":
		if !types.IsBool(left) {
			a.reportError(errors.CheckMismatch("bool", left.String(), e.Left.NodePos()))
			return nil
		}
		if !types.IsBool(right) {
			a.reportError(errors.CheckMismatch("bool", right.String(), e.Right.NodePos()))
			return nil
		}
		return &types.BoolType{}

	case "&", "|", "^":
		// Well-typed on matching bool or integer operands. Integer
		// bitwise operations survive checking but are rejected at
		// encoding, where the diagnostic can name the operator family.
		if types.IsBool(left) && types.IsBool(right) {
			return &types.BoolType{}
		}
		if types.IsInteger(left) && types.IsInteger(right) {
			return left
		}
		a.reportError(errors.CheckMismatch(left.String(), right.String(), e.Right.NodePos()))
		return nil
	}

	a.reportError(errors.NewError(errors.ErrorCheckMismatch,
		fmt.Sprintf("unknown binary operator '%s'", e.Op), e.Pos).Build())
	return nil
}

// typeFieldAccess projects a struct field or tuple element, looking
// through at most one reference layer the way field access does on the
// described program's side
func (a *Analyzer) typeFieldAccess(e *ast.FieldAccessExpr, scope *SymbolTable, ctx *FuncContext) types.Type {
	target := a.checkExpr(e.Target, scope, ctx)
	if target == nil {
		return nil
	}

	switch base := types.Deref(target).(type) {
	case *types.StructType:
		field, ok := base.Field(e.Field)
		if !ok {
			a.reportError(errors.FieldNotFound(base.Name, e.Field, e.Pos))
			return nil
		}
		return field.Type

	case *types.TupleType:
		index, err := strconv.Atoi(e.Field)
		if err != nil || index < 0 || index >= len(base.Elems) {
			a.reportError(errors.FieldNotFound(base.String(), e.Field, e.Pos))
			return nil
		}
		return base.Elems[index]
	}

	a.reportError(errors.NewError(errors.ErrorCheckMismatch,
		fmt.Sprintf("type '%s' has no fields", target.String()), e.Pos).
		WithLength(len(e.Field)).
		Build())
	return nil
}

// typeCall checks the argument list and types the call. "old" is
// transparent and takes its argument's type; any other callee is treated
// as an uninterpreted integer-valued function so that trigger terms can
// mention it.
func (a *Analyzer) typeCall(e *ast.CallExpr, scope *SymbolTable, ctx *FuncContext) types.Type {
	argTypes := make([]types.Type, 0, len(e.Args))
	for _, arg := range e.Args {
		argTypes = append(argTypes, a.checkExpr(arg, scope, ctx))
	}

	if e.Callee.Value == "old" {
		if len(e.Args) != 1 {
			a.reportError(errors.NewError(errors.ErrorCheckMismatch,
				fmt.Sprintf("'old' takes exactly one argument, found %d", len(e.Args)), e.Pos).
				Build())
			return nil
		}
		return argTypes[0]
	}

	for i, argType := range argTypes {
		if argType == nil {
			return nil
		}
		if !types.IsInteger(argType) {
			a.reportError(errors.CheckMismatch("int", argType.String(), e.Args[i].NodePos()))
			return nil
		}
	}
	return &types.IntType{}
}

func (a *Analyzer) typeCond(e *ast.CondExpr, scope *SymbolTable, ctx *FuncContext) types.Type {
	condType := a.checkExpr(e.Cond, scope, ctx)
	if condType != nil && !types.IsBool(condType) {
		a.reportError(errors.CheckMismatch("bool", condType.String(), e.Cond.NodePos()))
	}

	thenType := a.checkExpr(e.Then, scope, ctx)
	elseType := a.checkExpr(e.Else, scope, ctx)
	if thenType == nil || elseType == nil {
		return nil
	}
	if !sameType(thenType, elseType) {
		a.reportError(errors.CheckMismatch(thenType.String(), elseType.String(), e.Else.NodePos()))
		return nil
	}
	return thenType
}

func (a *Analyzer) typeMatch(e *ast.MatchExpr, scope *SymbolTable, ctx *FuncContext) types.Type {
	scrutineeType := a.checkExpr(e.Scrutinee, scope, ctx)

	var result types.Type
	for _, arm := range e.Arms {
		for _, pattern := range arm.Patterns {
			a.checkPattern(pattern, scrutineeType)
		}

		if arm.Guard != nil {
			guardType := a.checkExpr(arm.Guard, scope, ctx)
			if guardType != nil && !types.IsBool(guardType) {
				a.reportError(errors.CheckMismatch("bool", guardType.String(), arm.Guard.NodePos()))
			}
		}

		bodyType := a.checkExpr(arm.Body, scope, ctx)
		if bodyType == nil {
			continue
		}
		if result == nil {
			result = bodyType
		} else if !sameType(result, bodyType) {
			a.reportError(errors.CheckMismatch(result.String(), bodyType.String(), arm.Body.NodePos()))
			return nil
		}
	}

	if len(e.Arms) == 0 {
		a.reportError(errors.NewError(errors.ErrorCheckMismatch,
			"match expression has no arms", e.Pos).Build())
		return nil
	}
	return result
}

// checkPattern validates pattern shape against the scrutinee type.
// Shape errors beyond naming (bindings, non-empty aggregates) are left
// for the encoder, which rejects them with encoding diagnostics.
func (a *Analyzer) checkPattern(pattern ast.Pattern, scrutinee types.Type) {
	switch p := pattern.(type) {
	case *ast.LiteralPattern:
		if scrutinee == nil {
			return
		}
		want := types.Deref(scrutinee)
		if p.Value.Kind == ast.BoolLit && !types.IsBool(want) {
			a.reportError(errors.CheckMismatch(want.String(), "bool", p.Pos))
		}
		if p.Value.Kind == ast.IntLit && !types.IsInteger(want) {
			a.reportError(errors.CheckMismatch(want.String(), "int", p.Pos))
		}

	case *ast.PathPattern:
		enumType, ok := a.registry.Enum(p.Type.Value)
		if !ok {
			a.reportError(errors.UndefinedType(p.Type.Value, p.Type.Pos))
			return
		}
		if !enumType.HasVariant(p.Variant.Value) {
			a.reportError(errors.NewError(errors.ErrorCheckMismatch,
				fmt.Sprintf("enum '%s' has no variant '%s'", p.Type.Value, p.Variant.Value), p.Variant.Pos).
				WithLength(len(p.Variant.Value)).
				Build())
		}
	}
}

func (a *Analyzer) typeForAll(e *ast.ForAllExpr, scope *SymbolTable, ctx *FuncContext) types.Type {
	inner := NewSymbolTable(scope)
	for _, quantVar := range e.Vars {
		varType := a.resolveTypeRef(quantVar.Type)
		if varType == nil {
			varType = &types.IntType{}
		}
		// Non-integer bound variables pass checking; the encoder owns
		// that restriction and its diagnostic.
		inner.Define(quantVar.Name.Value, SymbolQuantified, varType, quantVar.Name.Pos)
	}

	for _, group := range e.Triggers {
		for _, term := range group.Terms {
			a.checkExpr(term, inner, ctx)
		}
	}

	bodyType := a.checkExpr(e.Body, inner, ctx)
	if bodyType != nil && !types.IsBool(bodyType) {
		a.reportError(errors.CheckMismatch("bool", bodyType.String(), e.Body.NodePos()))
		return nil
	}
	return &types.BoolType{}
}

// sameType compares two semantic types structurally
func sameType(a, b types.Type) bool {
	return a.String() == b.String()
}

// similarNames collects in-scope names within a small edit distance, for
// "did you mean" suggestions
func (a *Analyzer) similarNames(name string, scope *SymbolTable, ctx *FuncContext) []string {
	candidates := []string{"result"}
	for _, slot := range ctx.Params {
		candidates = append(candidates, slot.SourceName)
	}

	var similar []string
	for _, candidate := range candidates {
		if candidate != name && editDistance(name, candidate) <= 2 {
			similar = append(similar, candidate)
		}
	}
	return similar
}

func editDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
