package vir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceStringsAreCanonical(t *testing.T) {
	base := NewPlace(NewLocalVar("_2", &RefType{Name: "ref$Account"}))
	chained := base.
		Access(NewField("val_ref", &RefType{Name: "Account"})).
		Access(NewField("balance", &RefType{Name: "int"})).
		Access(NewField("val_int", &IntType{}))

	assert.Equal(t, "_2.val_ref.balance.val_int", chained.String())
	assert.Equal(t, "_2", chained.Base().Name)
	assert.False(t, chained.Type().IsRef())
}

func TestSamePathPrintsEqual(t *testing.T) {
	build := func() Place {
		return NewPlace(NewLocalVar("_1", &RefType{Name: "int"})).
			Access(NewField("val_int", &IntType{}))
	}
	assert.Equal(t, build().String(), build().String())
}

func TestConjoinAndDisjoin(t *testing.T) {
	assert.Equal(t, "true", Conjoin(nil).String())
	assert.Equal(t, "false", Disjoin(nil).String())

	a := NewBoolConst(true)
	b := NewBoolConst(false)

	assert.Equal(t, "true", Conjoin([]Expr{a}).String())
	assert.Equal(t, "(true && false)", Conjoin([]Expr{a, b}).String())
	assert.Equal(t, "((true && false) && true)", Conjoin([]Expr{a, b, a}).String())
	assert.Equal(t, "(true || false)", Disjoin([]Expr{a, b}).String())
}

func TestForAllString(t *testing.T) {
	i := NewLocalVar("i", &IntType{})
	body := Implies(NewBoolConst(true), GeCmp(NewPlaceExpr(NewPlace(i)), NewInt64Const(0)))
	forAll := NewForAll([]LocalVar{i}, []Trigger{NewTrigger([]Expr{NewPlaceExpr(NewPlace(i))})}, body)

	assert.Equal(t, "forall i: Int :: {i} (true ==> (i >= 0))", forAll.String())
}

func TestTypesEqual(t *testing.T) {
	assert.True(t, TypesEqual(&IntType{}, &IntType{}))
	assert.True(t, TypesEqual(&RefType{Name: "Account"}, &RefType{Name: "Account"}))
	assert.False(t, TypesEqual(&RefType{Name: "Account"}, &RefType{Name: "Coin"}))
	assert.False(t, TypesEqual(&IntType{}, &BoolType{}))
}
