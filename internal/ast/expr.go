package ast

type Expr interface {
	Node
	isExpr()
}

func (*BadExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*UnaryExpr) isExpr() {}

func (*CallExpr) isExpr() {}

func (*FieldAccessExpr) isExpr() {}

func (*LiteralExpr) isExpr() {}

func (*IdentExpr) isExpr() {}

func (*ParenExpr) isExpr() {}

func (*CondExpr) isExpr() {}

func (*MatchExpr) isExpr() {}

func (*BlockExpr) isExpr() {}

func (*ForAllExpr) isExpr() {}

// LiteralKind distinguishes the literal forms the assertion language allows
type LiteralKind int

const (
	IntLit LiteralKind = iota
	BoolLit
)

// LiteralExpr is an integer or boolean literal.
// Example: "42", "0x2a", "true"
type LiteralExpr struct {
	Pos    Position
	EndPos Position
	Kind   LiteralKind
	Value  string // raw lexeme
}

// IdentExpr is a bare variable reference, including the distinguished
// "result" name denoting the described return value
type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

// UnaryExpr covers logical not "!", arithmetic negation "-", and
// dereference "*"
type UnaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Value  Expr
}

// BinaryExpr covers arithmetic, logical, bitwise, comparison, and the
// implication connective "==>"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}

// FieldAccessExpr projects a struct field or tuple element.
// Example: "acc.balance", "pair.0"
type FieldAccessExpr struct {
	Pos    Position
	EndPos Position
	Target Expr
	Field  string // field name, or a decimal tuple index
}

// CallExpr is a call to a whitelisted pure function.
// Example: "old(acc.balance)"
type CallExpr struct {
	Pos    Position
	EndPos Position
	Callee Ident
	Args   []Expr
}

// ParenExpr preserves explicit grouping for the printer
type ParenExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// CondExpr is a two-armed conditional; the else branch is mandatory in
// assertion position.
// Example: "if x > 0 { x } else { 0 - x }"
type CondExpr struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   Expr
	Else   Expr
}

// BlockExpr is a braced expression body; only the trivial form with a
// single tail expression and no statements is representable
type BlockExpr struct {
	Pos    Position
	EndPos Position
	Tail   Expr
}

// MatchExpr matches a scrutinee against an ordered list of arms.
// Example: "match code { 0 => a, 1 => b, _ => c }"
type MatchExpr struct {
	Pos       Position
	EndPos    Position
	Scrutinee Expr
	Arms      []*MatchArm
}

// MatchArm is one pattern list with an optional guard and a body.
// Example: "0 | 1 => x", "_ if flag => y"
type MatchArm struct {
	Pos      Position
	EndPos   Position
	Patterns []Pattern
	Guard    Expr // nil when the arm is unguarded
	Body     Expr
}

// ForAllExpr is a universally quantified assertion with instantiation
// trigger groups.
// Example: "forall i: int :: {lookup(i)} i >= 0 ==> lookup(i) <= i"
type ForAllExpr struct {
	Pos      Position
	EndPos   Position
	Vars     []*QuantVar
	Triggers []*TriggerGroup
	Body     Expr // "filter ==> body" or a bare body
}

// QuantVar is one bound variable declaration inside a forall
type QuantVar struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   *TypeRef
}

// TriggerGroup is one brace-delimited set of trigger terms
type TriggerGroup struct {
	Pos    Position
	EndPos Position
	Terms  []Expr
}
