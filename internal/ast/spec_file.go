package ast

// SpecFile represents one specification source file: a sequence of spec
// blocks and the type declarations their assertions refer to.
// Example: "spec withdraw(amount: int) -> int { ensures result >= 0; }"
type SpecFile struct {
	Pos             Position
	EndPos          Position
	LeadingComments []SpecItem // Comments before the first item
	Items           []SpecItem
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents any identifier like variable names, type names, etc.
// Example: "withdraw", "balance", "Account"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// BadSpecItem represents parse errors in file-level items
type BadSpecItem struct {
	Bad BadNode
}

// BadExpr represents parse errors in expressions
type BadExpr struct {
	Bad BadNode
}

// BadNode contains error information for failed parsing
type BadNode struct {
	Pos     Position
	EndPos  Position
	Message string
	Details []string
}

// DocComment represents documentation comments
// Example: "/// Withdraws funds from an account"
type DocComment struct {
	Pos    Position
	EndPos Position
	Text   string
}

// Comment represents ordinary line comments
type Comment struct {
	Pos    Position
	EndPos Position
	Text   string
}

// SpecBlock attaches a list of assertion clauses to a procedure signature.
// Example: "spec withdraw(amount: int, acc: &Account) -> int { ... }"
type SpecBlock struct {
	Pos        Position
	EndPos     Position
	DocComment *DocComment
	Name       Ident
	Params     []*Param
	Return     *TypeRef // nil when the procedure returns nothing
	Clauses    []*Clause
}

// Param represents one procedure parameter in a spec block signature
// Example: "amount: int", "acc: &Account"
type Param struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   *TypeRef
}

// ClauseKind distinguishes the supported assertion clause keywords
type ClauseKind string

const (
	ClauseRequires  ClauseKind = "requires"
	ClauseEnsures   ClauseKind = "ensures"
	ClauseInvariant ClauseKind = "invariant"
)

// Clause is one top-level assertion attached to a spec block.
// Example: "ensures result == old(acc.balance) - amount;"
type Clause struct {
	Pos    Position
	EndPos Position
	Kind   ClauseKind
	Cond   Expr
}

// StructDecl declares an aggregate type usable in assertions.
// Example: "struct Account { balance: int, frozen: bool }"
type StructDecl struct {
	Pos        Position
	EndPos     Position
	DocComment *DocComment
	Name       Ident
	Fields     []*FieldDecl
}

// FieldDecl represents one struct field declaration
type FieldDecl struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   *TypeRef
}

// EnumDecl declares a fieldless enumeration usable in match patterns.
// Example: "enum Status { Ok, Denied }"
type EnumDecl struct {
	Pos        Position
	EndPos     Position
	DocComment *DocComment
	Name       Ident
	Variants   []Ident
}

// TypeRef is a surface type annotation: a named type, an optional
// reference marker, or a tuple of element types.
// Example: "int", "&Account", "(int, bool)"
type TypeRef struct {
	Pos    Position
	EndPos Position
	Ref    bool       // true for "&T"
	Name   string     // empty for tuple types
	Elems  []*TypeRef // tuple element types
}
