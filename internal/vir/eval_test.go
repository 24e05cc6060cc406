package vir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigInt(v int64) *big.Int {
	return big.NewInt(v)
}

func intPlace(name string) Expr {
	return NewPlaceExpr(NewPlace(NewLocalVar(name, &IntType{})))
}

func TestEvalConstants(t *testing.T) {
	v, err := Eval(NewInt64Const(42), Env{})
	require.NoError(t, err)
	assert.Equal(t, "42", v.String())

	v, err = Eval(NewBoolConst(true), Env{})
	require.NoError(t, err)
	assert.Equal(t, "true", v.String())
}

func TestEvalArithmetic(t *testing.T) {
	env := Env{
		"a": &IntValue{Value: bigInt(7)},
		"b": &IntValue{Value: bigInt(3)},
	}

	tests := []struct {
		expr Expr
		want string
	}{
		{Add(intPlace("a"), intPlace("b")), "10"},
		{Sub(intPlace("a"), intPlace("b")), "4"},
		{Mul(intPlace("a"), intPlace("b")), "21"},
		{Div(intPlace("a"), intPlace("b")), "2"},
		{Rem(intPlace("a"), intPlace("b")), "1"},
		{Minus(intPlace("a")), "-7"},
	}

	for _, tt := range tests {
		v, err := Eval(tt.expr, env)
		require.NoError(t, err, tt.expr.String())
		assert.Equal(t, tt.want, v.String(), tt.expr.String())
	}
}

func TestEvalComparisonsAndConnectives(t *testing.T) {
	env := Env{
		"a": &IntValue{Value: bigInt(4)},
		"b": &IntValue{Value: bigInt(5)},
	}

	tests := []struct {
		expr Expr
		want bool
	}{
		{LtCmp(intPlace("a"), intPlace("b")), true},
		{LeCmp(intPlace("a"), intPlace("a")), true},
		{GtCmp(intPlace("a"), intPlace("b")), false},
		{GeCmp(intPlace("b"), intPlace("a")), true},
		{EqCmp(intPlace("a"), intPlace("b")), false},
		{NeCmp(intPlace("a"), intPlace("b")), true},
		{And(NewBoolConst(true), NewBoolConst(false)), false},
		{Or(NewBoolConst(true), NewBoolConst(false)), true},
		{Xor(NewBoolConst(true), NewBoolConst(true)), false},
		{Implies(NewBoolConst(false), NewBoolConst(false)), true},
		{Implies(NewBoolConst(true), NewBoolConst(false)), false},
		{Not(NewBoolConst(false)), true},
	}

	for _, tt := range tests {
		v, err := Eval(tt.expr, env)
		require.NoError(t, err, tt.expr.String())
		b, ok := v.(*BoolValue)
		require.True(t, ok, tt.expr.String())
		assert.Equal(t, tt.want, b.Value, tt.expr.String())
	}
}

func TestEvalConditional(t *testing.T) {
	expr := ITE(NewBoolConst(true), NewInt64Const(1), NewInt64Const(2))
	v, err := Eval(expr, Env{})
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())

	expr = ITE(NewBoolConst(false), NewInt64Const(1), NewInt64Const(2))
	v, err = Eval(expr, Env{})
	require.NoError(t, err)
	assert.Equal(t, "2", v.String())
}

func TestEvalOldIsTransparent(t *testing.T) {
	env := Env{"a": &IntValue{Value: bigInt(9)}}

	direct, err := Eval(intPlace("a"), env)
	require.NoError(t, err)
	snapshot, err := Eval(NewOld(intPlace("a")), env)
	require.NoError(t, err)

	assert.Equal(t, direct.String(), snapshot.String())
}

func TestEvalErrors(t *testing.T) {
	_, err := Eval(intPlace("missing"), Env{})
	assert.Error(t, err)

	_, err = Eval(Div(NewInt64Const(1), NewInt64Const(0)), Env{})
	assert.Error(t, err)

	forAll := NewForAll(nil, nil, NewBoolConst(true))
	_, err = Eval(forAll, Env{})
	assert.Error(t, err)
}
