package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specter/internal/ast"
)

func parseFile(t *testing.T, source string) *ast.SpecFile {
	t.Helper()

	file, parseErrors, scanErrors := ParseSource("test.spec", source)
	require.Empty(t, scanErrors, "should have no scan errors")
	require.Empty(t, parseErrors, "should have no parse errors")
	require.NotNil(t, file)
	return file
}

func firstSpecBlock(t *testing.T, file *ast.SpecFile) *ast.SpecBlock {
	t.Helper()
	for _, item := range file.Items {
		if block, ok := item.(*ast.SpecBlock); ok {
			return block
		}
	}
	t.Fatal("no spec block parsed")
	return nil
}

func parseClauseCond(t *testing.T, cond string) ast.Expr {
	t.Helper()
	file := parseFile(t, "spec f(x: int, y: int) -> int { ensures "+cond+"; }")
	block := firstSpecBlock(t, file)
	require.Len(t, block.Clauses, 1)
	return block.Clauses[0].Cond
}

func TestParseSpecBlock(t *testing.T) {
	file := parseFile(t, `
/// Withdraws funds from an account.
spec withdraw(amount: int, acc: &Account) -> int {
    requires amount > 0;
    requires acc.balance >= amount;
    ensures result == old(acc.balance) - amount;
}`)

	block := firstSpecBlock(t, file)
	assert.Equal(t, "withdraw", block.Name.Value)
	require.NotNil(t, block.DocComment)

	require.Len(t, block.Params, 2)
	assert.Equal(t, "amount", block.Params[0].Name.Value)
	assert.False(t, block.Params[0].Type.Ref)
	assert.Equal(t, "int", block.Params[0].Type.Name)
	assert.Equal(t, "acc", block.Params[1].Name.Value)
	assert.True(t, block.Params[1].Type.Ref)
	assert.Equal(t, "Account", block.Params[1].Type.Name)

	require.NotNil(t, block.Return)
	assert.Equal(t, "int", block.Return.Name)

	require.Len(t, block.Clauses, 3)
	assert.Equal(t, ast.ClauseRequires, block.Clauses[0].Kind)
	assert.Equal(t, ast.ClauseRequires, block.Clauses[1].Kind)
	assert.Equal(t, ast.ClauseEnsures, block.Clauses[2].Kind)
}

func TestParseStructAndEnum(t *testing.T) {
	file := parseFile(t, `
struct Account {
    balance: int,
    owner: int,
}

enum Color { Red, Green, Blue }
`)

	var structDecl *ast.StructDecl
	var enumDecl *ast.EnumDecl
	for _, item := range file.Items {
		switch decl := item.(type) {
		case *ast.StructDecl:
			structDecl = decl
		case *ast.EnumDecl:
			enumDecl = decl
		}
	}

	require.NotNil(t, structDecl)
	assert.Equal(t, "Account", structDecl.Name.Value)
	require.Len(t, structDecl.Fields, 2)
	assert.Equal(t, "balance", structDecl.Fields[0].Name.Value)

	require.NotNil(t, enumDecl)
	assert.Equal(t, "Color", enumDecl.Name.Value)
	require.Len(t, enumDecl.Variants, 3)
	assert.Equal(t, "Green", enumDecl.Variants[1].Value)
}

func TestParseTupleType(t *testing.T) {
	file := parseFile(t, "spec f(pair: (int, bool)) { requires true; }")
	block := firstSpecBlock(t, file)

	require.Len(t, block.Params, 1)
	paramType := block.Params[0].Type
	assert.Empty(t, paramType.Name)
	require.Len(t, paramType.Elems, 2)
	assert.Equal(t, "int", paramType.Elems[0].Name)
	assert.Equal(t, "bool", paramType.Elems[1].Name)
}

func TestArithmeticPrecedence(t *testing.T) {
	cond := parseClauseCond(t, "x + y * 2 == 0")

	eq, ok := cond.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "==", eq.Op)

	sum, ok := eq.Left.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", sum.Op)

	product, ok := sum.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", product.Op)
}

func TestImplicationBindsLoosest(t *testing.T) {
	cond := parseClauseCond(t, "x > 0 && y > 0 ==> x + y > 0")

	implies, ok := cond.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "==>", implies.Op)

	lhs, ok := implies.Left.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "&&", lhs.Op)
}

func TestImplicationIsRightAssociative(t *testing.T) {
	cond := parseClauseCond(t, "x > 0 ==> y > 0 ==> x < y")

	outer, ok := cond.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "==>", outer.Op)

	// The right operand is itself an implication
	rhs, ok := outer.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "==>", rhs.Op)

	lhs, ok := outer.Left.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ">", lhs.Op)
}

func TestFieldAccessAndTupleProjection(t *testing.T) {
	file := parseFile(t, "spec f(acc: &Account, pair: (int, int)) { requires acc.balance.0 > 0; }")
	block := firstSpecBlock(t, file)

	access, ok := block.Clauses[0].Cond.(*ast.BinaryExpr)
	require.True(t, ok)

	projection, ok := access.Left.(*ast.FieldAccessExpr)
	require.True(t, ok)
	assert.Equal(t, "0", projection.Field)

	field, ok := projection.Target.(*ast.FieldAccessExpr)
	require.True(t, ok)
	assert.Equal(t, "balance", field.Field)

	ident, ok := field.Target.(*ast.IdentExpr)
	require.True(t, ok)
	assert.Equal(t, "acc", ident.Name)
}

func TestParseOldCall(t *testing.T) {
	cond := parseClauseCond(t, "result == old(x)")

	eq := cond.(*ast.BinaryExpr)
	call, ok := eq.Right.(*ast.CallExpr)
	require.True(t, ok)
	assert.Equal(t, "old", call.Callee.Value)
	require.Len(t, call.Args, 1)
}

func TestParseConditional(t *testing.T) {
	cond := parseClauseCond(t, "result == if x > y { x } else { y }")

	eq := cond.(*ast.BinaryExpr)
	condExpr, ok := eq.Right.(*ast.CondExpr)
	require.True(t, ok)

	then, ok := condExpr.Then.(*ast.BlockExpr)
	require.True(t, ok)
	assert.IsType(t, &ast.IdentExpr{}, then.Tail)
}

func TestParseElseIfChain(t *testing.T) {
	cond := parseClauseCond(t, "result == if x > 0 { 1 } else if x < 0 { 0 - 1 } else { 0 }")

	eq := cond.(*ast.BinaryExpr)
	outer, ok := eq.Right.(*ast.CondExpr)
	require.True(t, ok)

	inner, ok := outer.Else.(*ast.CondExpr)
	require.True(t, ok)
	assert.IsType(t, &ast.BlockExpr{}, inner.Else)
}

func TestConditionalRequiresElse(t *testing.T) {
	_, parseErrors, _ := ParseSource("test.spec",
		"spec f(x: int) -> int { ensures result == if x > 0 { 1 }; }")
	assert.NotEmpty(t, parseErrors)
}

func TestParseMatchExpression(t *testing.T) {
	cond := parseClauseCond(t, "result == match x { 0 | 1 => 5, -1 => 0, Color::Red => 2, (a, b) => 3, _ => 6 }")

	eq := cond.(*ast.BinaryExpr)
	match, ok := eq.Right.(*ast.MatchExpr)
	require.True(t, ok)
	require.Len(t, match.Arms, 5)

	assert.Len(t, match.Arms[0].Patterns, 2)
	assert.IsType(t, &ast.LiteralPattern{}, match.Arms[0].Patterns[0])

	negated, ok := match.Arms[1].Patterns[0].(*ast.LiteralPattern)
	require.True(t, ok)
	assert.Equal(t, "-1", negated.Value.Value)

	path, ok := match.Arms[2].Patterns[0].(*ast.PathPattern)
	require.True(t, ok)
	assert.Equal(t, "Color", path.Type.Value)
	assert.Equal(t, "Red", path.Variant.Value)

	tuple, ok := match.Arms[3].Patterns[0].(*ast.TuplePattern)
	require.True(t, ok)
	assert.Len(t, tuple.Elems, 2)

	assert.IsType(t, &ast.WildcardPattern{}, match.Arms[4].Patterns[0])
}

func TestParseMatchGuard(t *testing.T) {
	cond := parseClauseCond(t, "result == match x { 0 if y > 0 => 1, _ => 2 }")

	eq := cond.(*ast.BinaryExpr)
	match := eq.Right.(*ast.MatchExpr)
	require.Len(t, match.Arms, 2)
	assert.NotNil(t, match.Arms[0].Guard)
	assert.Nil(t, match.Arms[1].Guard)
}

func TestParseForAll(t *testing.T) {
	cond := parseClauseCond(t, "forall i: int, j: int :: {i + j} {i, j} i < j ==> i <= j")

	forAll, ok := cond.(*ast.ForAllExpr)
	require.True(t, ok)

	require.Len(t, forAll.Vars, 2)
	assert.Equal(t, "i", forAll.Vars[0].Name.Value)
	assert.Equal(t, "int", forAll.Vars[0].Type.Name)
	assert.Equal(t, "j", forAll.Vars[1].Name.Value)

	require.Len(t, forAll.Triggers, 2)
	assert.Len(t, forAll.Triggers[0].Terms, 1)
	assert.Len(t, forAll.Triggers[1].Terms, 2)

	body, ok := forAll.Body.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "==>", body.Op)
}

func TestParseRecoversAfterBadClause(t *testing.T) {
	file, parseErrors, _ := ParseSource("test.spec", `
spec f(x: int) {
    requires x > ;
    ensures x >= 0;
}
spec g(y: int) {
    requires y > 0;
}`)

	assert.NotEmpty(t, parseErrors, "the malformed clause should be reported")

	blocks := 0
	for _, item := range file.Items {
		if _, ok := item.(*ast.SpecBlock); ok {
			blocks++
		}
	}
	assert.Equal(t, 2, blocks, "parsing should recover and keep later blocks")
}

func TestParseReportsUnknownTopLevelItems(t *testing.T) {
	file, parseErrors, _ := ParseSource("test.spec", "fn nope() {}\nspec f(x: int) { requires x > 0; }")
	assert.NotEmpty(t, parseErrors)

	block := firstSpecBlock(t, file)
	assert.Equal(t, "f", block.Name.Value)
}

func TestHexAndSeparatedLiterals(t *testing.T) {
	cond := parseClauseCond(t, "x == 0x1F || y == 1_000")

	or := cond.(*ast.BinaryExpr)
	left := or.Left.(*ast.BinaryExpr)
	right := or.Right.(*ast.BinaryExpr)

	assert.Equal(t, "0x1F", left.Right.(*ast.LiteralExpr).Value)
	assert.Equal(t, "1_000", right.Right.(*ast.LiteralExpr).Value)
}
