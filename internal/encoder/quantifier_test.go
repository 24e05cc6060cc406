package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specter/internal/errors"
	"specter/internal/vir"
)

func TestQuantifierBodyIsAlwaysAnImplication(t *testing.T) {
	result := encodeOne(t, `
spec f(n: int) {
    requires forall i: int :: i > 0 ==> i >= 1;
}`)
	require.NoError(t, result.Err)

	forAll, ok := result.Expr.(*vir.ForAll)
	require.True(t, ok)
	require.Len(t, forAll.Vars, 1)
	assert.Equal(t, "i", forAll.Vars[0].Name)
	assert.Equal(t, "Int", forAll.Vars[0].Type.String())

	body, ok := forAll.Body.(*vir.BinOp)
	require.True(t, ok)
	assert.Equal(t, vir.OpImplies, body.Op)
	assert.Equal(t, "((i > 0) ==> (i >= 1))", body.String())
}

func TestQuantifierWithoutFilterGetsTrueAntecedent(t *testing.T) {
	result := encodeOne(t, `
spec f(n: int) {
    requires forall i: int :: {i} i >= 0;
}`)
	require.NoError(t, result.Err)
	assert.Equal(t, "forall i: Int :: {i} (true ==> (i >= 0))", result.Expr.String())
}

func TestQuantifiedVariablesAreRawValues(t *testing.T) {
	// Bound variables are integer-sorted directly: no reference slot, no
	// value-unwrapping accessor
	result := encodeOne(t, `
spec f(n: int) {
    requires forall i: int :: i >= 0 ==> i + n >= n;
}`)
	require.NoError(t, result.Err)
	assert.Equal(t,
		"forall i: Int :: ((i >= 0) ==> ((i + _1.val_int) >= _1.val_int))",
		result.Expr.String())
}

func TestTriggerTermsCarryValueAccessors(t *testing.T) {
	// Trigger terms are lowered like ordinary value expressions, so a
	// parameter mentioned in a trigger keeps its unwrapping accessor
	result := encodeOne(t, `
spec f(n: int) {
    requires forall i: int :: {i + n} i >= 0 ==> i + n >= n;
}`)
	require.NoError(t, result.Err)

	forAll, ok := result.Expr.(*vir.ForAll)
	require.True(t, ok)
	require.Len(t, forAll.Triggers, 1)
	require.Len(t, forAll.Triggers[0].Terms, 1)
	assert.Equal(t, "(i + _1.val_int)", forAll.Triggers[0].Terms[0].String())
}

func TestMultipleTriggerGroups(t *testing.T) {
	result := encodeOne(t, `
spec f(n: int) {
    requires forall i: int, j: int :: {i, j} {i + j} i < j ==> i <= j;
}`)
	require.NoError(t, result.Err)

	forAll, ok := result.Expr.(*vir.ForAll)
	require.True(t, ok)
	require.Len(t, forAll.Vars, 2)
	require.Len(t, forAll.Triggers, 2)
	assert.Len(t, forAll.Triggers[0].Terms, 2)
	assert.Len(t, forAll.Triggers[1].Terms, 1)
}

func TestQuantificationRequiresIntegerVariables(t *testing.T) {
	result := encodeOne(t, `
spec f(n: int) {
    requires forall p: bool :: p == p;
}`)
	require.Error(t, result.Err)
	assert.Equal(t, errors.ErrorTypeMismatch, encodingCode(t, result.Err))
}

func TestParameterShadowsQuantifiedVariable(t *testing.T) {
	// Base-name resolution consults procedure bindings before quantified
	// variables, so a bound variable reusing a parameter name resolves to
	// the parameter slot
	result := encodeOne(t, `
spec f(i: int) {
    requires forall i: int :: i >= 0;
}`)
	require.NoError(t, result.Err)
	assert.Equal(t, "forall i: Int :: (true ==> (_1.val_int >= 0))", result.Expr.String())
}

func TestNestedQuantifierInsideLeaf(t *testing.T) {
	// A quantifier under a negation stays inside the leaf and is encoded
	// in place
	result := encodeOne(t, `
spec f(n: int) {
    requires !(forall i: int :: i >= 0);
}`)
	require.NoError(t, result.Err)
	assert.Equal(t, "!(forall i: Int :: (true ==> (i >= 0)))", result.Expr.String())
}
