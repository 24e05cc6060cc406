package spec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specter/internal/ast"
	"specter/internal/parser"
)

func parseCond(t *testing.T, cond string) ast.Expr {
	t.Helper()

	source := fmt.Sprintf("spec f(x: int, y: int) -> int { ensures %s; }", cond)
	file, parseErrors, scanErrors := parser.ParseSource("test.spec", source)
	require.Empty(t, scanErrors, "should have no scan errors")
	require.Empty(t, parseErrors, "should have no parse errors")

	for _, item := range file.Items {
		if block, ok := item.(*ast.SpecBlock); ok {
			require.Len(t, block.Clauses, 1)
			return block.Clauses[0].Cond
		}
	}
	t.Fatal("no spec block parsed")
	return nil
}

func TestBuildSingleLeaf(t *testing.T) {
	reg := NewRegistry()
	specID := NewSpecificationID()

	assertion := NewBuilder(specID, reg).Build(parseCond(t, "x > 0"))

	leaf, ok := assertion.Kind.(*ExprKind)
	require.True(t, ok, "expected a leaf assertion")
	assert.Equal(t, specID, leaf.Expr.SpecID)
	assert.Equal(t, ExpressionID(0), leaf.Expr.ExprID)
	assert.NotNil(t, leaf.Expr.Expr)
	assert.Equal(t, 1, reg.Count(specID))
}

func TestBuildFlattensConjunctionChain(t *testing.T) {
	reg := NewRegistry()
	specID := NewSpecificationID()

	assertion := NewBuilder(specID, reg).Build(parseCond(t, "x > 0 && y > 0 && x < y"))

	and, ok := assertion.Kind.(*AndKind)
	require.True(t, ok, "expected a conjunction assertion")
	require.Len(t, and.Assertions, 3, "left-associated chain should flatten")

	for i, child := range and.Assertions {
		leaf, ok := child.Kind.(*ExprKind)
		require.True(t, ok)
		assert.Equal(t, ExpressionID(i), leaf.Expr.ExprID)
	}
	assert.Equal(t, 3, reg.Count(specID))
}

func TestBuildImplication(t *testing.T) {
	assertion := NewBuilder(NewSpecificationID(), nil).Build(parseCond(t, "x > 0 ==> y > 0"))

	implies, ok := assertion.Kind.(*ImpliesKind)
	require.True(t, ok, "expected an implication assertion")

	_, lhsLeaf := implies.Lhs.Kind.(*ExprKind)
	_, rhsLeaf := implies.Rhs.Kind.(*ExprKind)
	assert.True(t, lhsLeaf)
	assert.True(t, rhsLeaf)
}

func TestBuildSplitsOnlyAtTopLevel(t *testing.T) {
	// Connectives nested under another operator stay inside the leaf
	assertion := NewBuilder(NewSpecificationID(), nil).Build(parseCond(t, "!(x > 0 && y > 0)"))

	_, ok := assertion.Kind.(*ExprKind)
	assert.True(t, ok, "negated conjunction should stay a single leaf")
}

func TestBuildUnwrapsParens(t *testing.T) {
	assertion := NewBuilder(NewSpecificationID(), nil).Build(parseCond(t, "(x > 0 ==> y > 0)"))

	_, ok := assertion.Kind.(*ImpliesKind)
	assert.True(t, ok, "parenthesized implication should still split")
}

func TestBuildForAllWithFilter(t *testing.T) {
	reg := NewRegistry()
	specID := NewSpecificationID()

	assertion := NewBuilder(specID, reg).Build(parseCond(t, "forall i: int :: i > 0 ==> i >= 1"))

	forAll, ok := assertion.Kind.(*ForAllKind)
	require.True(t, ok, "expected a quantified assertion")
	require.Len(t, forAll.Vars, 1)
	assert.Equal(t, "i", forAll.Vars[0].Name.Value)
	assert.Empty(t, forAll.Triggers)

	filter, ok := forAll.Filter.Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ">", filter.Op)

	body, ok := forAll.Body.Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ">=", body.Op)
}

func TestBuildForAllSynthesizesTrueFilter(t *testing.T) {
	assertion := NewBuilder(NewSpecificationID(), nil).Build(parseCond(t, "forall i: int :: {i} i >= 0"))

	forAll, ok := assertion.Kind.(*ForAllKind)
	require.True(t, ok)

	filter, ok := forAll.Filter.Expr.(*ast.LiteralExpr)
	require.True(t, ok, "missing filter should be synthesized")
	assert.Equal(t, ast.BoolLit, filter.Kind)
	assert.Equal(t, "true", filter.Value)

	require.Len(t, forAll.Triggers, 1)
	assert.Len(t, forAll.Triggers[0].Terms, 1)
}

func TestLeafIdentifiersAreUniquePerSpecification(t *testing.T) {
	reg := NewRegistry()
	specID := NewSpecificationID()

	NewBuilder(specID, reg).Build(parseCond(t, "x > 0 && y > 0 ==> x < y"))

	seen := make(map[ExpressionID]bool)
	for id := ExpressionID(0); id < ExpressionID(reg.Count(specID)); id++ {
		leaf, ok := reg.Resolve(specID, id)
		require.True(t, ok, "identifiers should be dense from zero")
		assert.False(t, seen[leaf.ExprID])
		seen[leaf.ExprID] = true
	}
}
