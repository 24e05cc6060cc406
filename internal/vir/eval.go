package vir

import (
	"fmt"
	"math/big"
)

// Concrete evaluator over quantifier-free IR expressions. Used by the
// property tests to check that desugared trees mean what the surface
// assertion meant, and available to drivers for counterexample replay.

// Value is a concrete boolean or integer result
type Value interface {
	String() string
	isValue()
}

type IntValue struct {
	Value *big.Int
}

type BoolValue struct {
	Value bool
}

func (*IntValue) isValue()  {}
func (*BoolValue) isValue() {}

func (v *IntValue) String() string { return v.Value.String() }

func (v *BoolValue) String() string {
	if v.Value {
		return "true"
	}
	return "false"
}

// Env maps printed place forms to concrete values. Old-snapshot bodies
// are evaluated against the same environment, which is correct exactly
// when the environment represents the pre-state.
type Env map[string]Value

// Eval computes the concrete value of a quantifier-free IR expression
func Eval(expr Expr, env Env) (Value, error) {
	switch e := expr.(type) {
	case *IntConst:
		return &IntValue{Value: new(big.Int).Set(e.Value)}, nil

	case *BoolConst:
		return &BoolValue{Value: e.Value}, nil

	case *PlaceExpr:
		v, ok := env[e.Place.String()]
		if !ok {
			return nil, fmt.Errorf("no value bound for place %s", e.Place)
		}
		return v, nil

	case *Old:
		return Eval(e.Body, env)

	case *UnaryOp:
		return evalUnary(e, env)

	case *BinOp:
		return evalBinary(e, env)

	case *Cond:
		guard, err := Eval(e.Guard, env)
		if err != nil {
			return nil, err
		}
		b, ok := guard.(*BoolValue)
		if !ok {
			return nil, fmt.Errorf("conditional guard is not boolean: %s", e.Guard)
		}
		if b.Value {
			return Eval(e.Then, env)
		}
		return Eval(e.Else, env)

	case *ForAll:
		return nil, fmt.Errorf("cannot evaluate quantified expression %s", expr)

	default:
		return nil, fmt.Errorf("cannot evaluate %s", expr)
	}
}

func evalUnary(e *UnaryOp, env Env) (Value, error) {
	operand, err := Eval(e.Operand, env)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case OpNot:
		b, ok := operand.(*BoolValue)
		if !ok {
			return nil, fmt.Errorf("operand of ! is not boolean: %s", e.Operand)
		}
		return &BoolValue{Value: !b.Value}, nil

	case OpMinus:
		i, ok := operand.(*IntValue)
		if !ok {
			return nil, fmt.Errorf("operand of unary - is not integer: %s", e.Operand)
		}
		return &IntValue{Value: new(big.Int).Neg(i.Value)}, nil
	}

	return nil, fmt.Errorf("unknown unary operator %s", e.Op)
}

func evalBinary(e *BinOp, env Env) (Value, error) {
	left, err := Eval(e.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := Eval(e.Right, env)
	if err != nil {
		return nil, err
	}

	if li, ok := left.(*IntValue); ok {
		ri, ok := right.(*IntValue)
		if !ok {
			return nil, fmt.Errorf("mixed operand types for %s", e.Op)
		}
		return evalIntBinary(e.Op, li.Value, ri.Value)
	}

	lb := left.(*BoolValue)
	rb, ok := right.(*BoolValue)
	if !ok {
		return nil, fmt.Errorf("mixed operand types for %s", e.Op)
	}
	return evalBoolBinary(e.Op, lb.Value, rb.Value)
}

func evalIntBinary(op BinOpKind, left, right *big.Int) (Value, error) {
	switch op {
	case OpAdd:
		return &IntValue{Value: new(big.Int).Add(left, right)}, nil
	case OpSub:
		return &IntValue{Value: new(big.Int).Sub(left, right)}, nil
	case OpMul:
		return &IntValue{Value: new(big.Int).Mul(left, right)}, nil
	case OpDiv:
		if right.Sign() == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return &IntValue{Value: new(big.Int).Quo(left, right)}, nil
	case OpRem:
		if right.Sign() == 0 {
			return nil, fmt.Errorf("remainder by zero")
		}
		return &IntValue{Value: new(big.Int).Rem(left, right)}, nil

	case OpEq:
		return &BoolValue{Value: left.Cmp(right) == 0}, nil
	case OpNe:
		return &BoolValue{Value: left.Cmp(right) != 0}, nil
	case OpLt:
		return &BoolValue{Value: left.Cmp(right) < 0}, nil
	case OpLe:
		return &BoolValue{Value: left.Cmp(right) <= 0}, nil
	case OpGt:
		return &BoolValue{Value: left.Cmp(right) > 0}, nil
	case OpGe:
		return &BoolValue{Value: left.Cmp(right) >= 0}, nil
	}

	return nil, fmt.Errorf("operator %s is not defined on integers", op)
}

func evalBoolBinary(op BinOpKind, left, right bool) (Value, error) {
	switch op {
	case OpAnd:
		return &BoolValue{Value: left && right}, nil
	case OpOr:
		return &BoolValue{Value: left || right}, nil
	case OpXor:
		return &BoolValue{Value: left != right}, nil
	case OpImplies:
		return &BoolValue{Value: !left || right}, nil
	case OpEq:
		return &BoolValue{Value: left == right}, nil
	case OpNe:
		return &BoolValue{Value: left != right}, nil
	}

	return nil, fmt.Errorf("operator %s is not defined on booleans", op)
}
