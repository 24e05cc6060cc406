package ast

// Pattern is the closed set of match-arm patterns the assertion language
// parses. Only wildcard, literal, and structurally empty aggregate
// patterns survive encoding; the rest are parsed so the encoder can
// reject them with a precise position.
type Pattern interface {
	Node
	isPattern()
}

func (*WildcardPattern) isPattern() {}

func (*LiteralPattern) isPattern() {}

func (*PathPattern) isPattern() {}

func (*TuplePattern) isPattern() {}

func (*BindingPattern) isPattern() {}

// WildcardPattern matches anything: "_"
type WildcardPattern struct {
	Pos    Position
	EndPos Position
}

// LiteralPattern matches a literal value: "0", "true"
type LiteralPattern struct {
	Pos    Position
	EndPos Position
	Value  *LiteralExpr
}

// PathPattern matches an enum variant, optionally with a parenthesized
// element list. Example: "Status::Ok", "Status::Err()"
type PathPattern struct {
	Pos     Position
	EndPos  Position
	Type    Ident
	Variant Ident
	Parens  bool // variant was written with "(...)"
	Elems   []Pattern
}

// TuplePattern matches a tuple shape: "()", "(a, b)"
type TuplePattern struct {
	Pos    Position
	EndPos Position
	Elems  []Pattern
}

// BindingPattern binds the matched value to a fresh name. Parsed so the
// encoder can reject arms that bind, per the restricted match subset.
type BindingPattern struct {
	Pos    Position
	EndPos Position
	Name   Ident
}
