package vir

import (
	"fmt"
	"math/big"
	"strings"
)

// Expr is the closed sum of verification IR expressions the encoder
// produces. Values are immutable once built; every encode call allocates
// a fresh tree.
type Expr interface {
	String() string
	isExpr()
}

func (*PlaceExpr) isExpr() {}
func (*IntConst) isExpr()  {}
func (*BoolConst) isExpr() {}
func (*UnaryOp) isExpr()   {}
func (*BinOp) isExpr()     {}
func (*Cond) isExpr()      {}
func (*Old) isExpr()       {}
func (*ForAll) isExpr()    {}

type UnaryOpKind string

const (
	OpNot   UnaryOpKind = "!"
	OpMinus UnaryOpKind = "-"
)

type BinOpKind string

const (
	OpAdd BinOpKind = "+"
	OpSub BinOpKind = "-"
	OpMul BinOpKind = "*"
	OpDiv BinOpKind = "/"
	OpRem BinOpKind = "%"

	OpAnd     BinOpKind = "&&"
	OpOr      BinOpKind = "||"
	OpXor     BinOpKind = "^"
	OpImplies BinOpKind = "==>"

	OpEq BinOpKind = "=="
	OpNe BinOpKind = "!="
	OpLt BinOpKind = "<"
	OpLe BinOpKind = "<="
	OpGt BinOpKind = ">"
	OpGe BinOpKind = ">="
)

// PlaceExpr reads the value at a resolved place
type PlaceExpr struct {
	Place Place
}

// IntConst is an arbitrary-precision integer constant
type IntConst struct {
	Value *big.Int
}

// BoolConst is a boolean constant
type BoolConst struct {
	Value bool
}

// UnaryOp applies logical not or arithmetic negation
type UnaryOp struct {
	Op      UnaryOpKind
	Operand Expr
}

// BinOp applies one binary operator
type BinOp struct {
	Op    BinOpKind
	Left  Expr
	Right Expr
}

// Cond is a functional conditional: guard ? then : else
type Cond struct {
	Guard Expr
	Then  Expr
	Else  Expr
}

// Old marks its body for evaluation in the pre-state snapshot. The body
// is carried untouched; snapshot placement happens downstream.
type Old struct {
	Body Expr
}

// ForAll is a universally quantified expression with instantiation
// triggers. The body is always an implication "filter ==> body".
type ForAll struct {
	Vars     []LocalVar
	Triggers []Trigger
	Body     Expr
}

// Trigger is one ordered set of instantiation hint terms
type Trigger struct {
	Terms []Expr
}

func NewTrigger(terms []Expr) Trigger {
	return Trigger{Terms: terms}
}

func (p *PlaceExpr) String() string { return p.Place.String() }

func (c *IntConst) String() string { return c.Value.String() }

func (c *BoolConst) String() string {
	if c.Value {
		return "true"
	}
	return "false"
}

func (u *UnaryOp) String() string {
	return fmt.Sprintf("%s(%s)", u.Op, u.Operand)
}

func (b *BinOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

func (c *Cond) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", c.Guard, c.Then, c.Else)
}

func (o *Old) String() string {
	return fmt.Sprintf("old(%s)", o.Body)
}

func (f *ForAll) String() string {
	vars := make([]string, len(f.Vars))
	for i, v := range f.Vars {
		vars[i] = v.String()
	}

	var b strings.Builder
	b.WriteString("forall ")
	b.WriteString(strings.Join(vars, ", "))
	b.WriteString(" ::")
	for _, trigger := range f.Triggers {
		b.WriteString(" ")
		b.WriteString(trigger.String())
	}
	b.WriteString(" ")
	b.WriteString(f.Body.String())
	return b.String()
}

func (t Trigger) String() string {
	terms := make([]string, len(t.Terms))
	for i, term := range t.Terms {
		terms[i] = term.String()
	}
	return "{" + strings.Join(terms, ", ") + "}"
}
