package vir

// N-ary connective folds over expression slices.

// Conjoin combines expressions with logical AND. The empty slice yields
// true; callers that must reject empty inputs check before folding.
func Conjoin(exprs []Expr) Expr {
	if len(exprs) == 0 {
		return NewBoolConst(true)
	}

	result := exprs[0]
	for _, expr := range exprs[1:] {
		result = And(result, expr)
	}
	return result
}

// Disjoin combines expressions with logical OR. The empty slice yields
// false.
func Disjoin(exprs []Expr) Expr {
	if len(exprs) == 0 {
		return NewBoolConst(false)
	}

	result := exprs[0]
	for _, expr := range exprs[1:] {
		result = Or(result, expr)
	}
	return result
}
