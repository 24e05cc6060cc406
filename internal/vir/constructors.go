package vir

import "math/big"

// Constructor helpers. The encoder builds every IR node through these so
// call sites read like the logical formulas they produce.

func NewPlaceExpr(p Place) Expr { return &PlaceExpr{Place: p} }

func NewIntConst(v *big.Int) Expr { return &IntConst{Value: v} }

func NewInt64Const(v int64) Expr { return &IntConst{Value: big.NewInt(v)} }

func NewBoolConst(v bool) Expr { return &BoolConst{Value: v} }

func Add(left, right Expr) Expr { return &BinOp{Op: OpAdd, Left: left, Right: right} }
func Sub(left, right Expr) Expr { return &BinOp{Op: OpSub, Left: left, Right: right} }
func Mul(left, right Expr) Expr { return &BinOp{Op: OpMul, Left: left, Right: right} }
func Div(left, right Expr) Expr { return &BinOp{Op: OpDiv, Left: left, Right: right} }
func Rem(left, right Expr) Expr { return &BinOp{Op: OpRem, Left: left, Right: right} }

func And(left, right Expr) Expr { return &BinOp{Op: OpAnd, Left: left, Right: right} }
func Or(left, right Expr) Expr  { return &BinOp{Op: OpOr, Left: left, Right: right} }
func Xor(left, right Expr) Expr { return &BinOp{Op: OpXor, Left: left, Right: right} }

func Implies(left, right Expr) Expr { return &BinOp{Op: OpImplies, Left: left, Right: right} }

func EqCmp(left, right Expr) Expr { return &BinOp{Op: OpEq, Left: left, Right: right} }
func NeCmp(left, right Expr) Expr { return &BinOp{Op: OpNe, Left: left, Right: right} }
func LtCmp(left, right Expr) Expr { return &BinOp{Op: OpLt, Left: left, Right: right} }
func LeCmp(left, right Expr) Expr { return &BinOp{Op: OpLe, Left: left, Right: right} }
func GtCmp(left, right Expr) Expr { return &BinOp{Op: OpGt, Left: left, Right: right} }
func GeCmp(left, right Expr) Expr { return &BinOp{Op: OpGe, Left: left, Right: right} }

func Not(operand Expr) Expr { return &UnaryOp{Op: OpNot, Operand: operand} }

func Minus(operand Expr) Expr { return &UnaryOp{Op: OpMinus, Operand: operand} }

func ITE(guard, then, els Expr) Expr {
	return &Cond{Guard: guard, Then: then, Else: els}
}

func NewOld(body Expr) Expr { return &Old{Body: body} }

func NewForAll(vars []LocalVar, triggers []Trigger, body Expr) Expr {
	return &ForAll{Vars: vars, Triggers: triggers, Body: body}
}
