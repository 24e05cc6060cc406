package spec

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Lossy wire encoding of an assertion tree: identifiers only, no
// expression payload. The skeleton crosses a process/stage boundary and
// is rehydrated against a previously established registry.
//
// The kind enum uses the externally tagged shape the original wire
// producer emitted: {"Expr": {...}}, {"And": [...]}, {"Implies": [lhs,
// rhs]}. Quantifiers are deliberately not representable.

// SerializationError reports malformed or structurally invalid wire
// input, or an attempt to serialize an unsupported assertion kind.
type SerializationError struct {
	msg string
}

func (e *SerializationError) Error() string {
	return e.msg
}

func serializationErrorf(format string, args ...interface{}) error {
	return &SerializationError{msg: fmt.Sprintf(format, args...)}
}

// WireExpression carries the identifier pair of one leaf
type WireExpression struct {
	SpecID string       `json:"spec_id"`
	ExprID ExpressionID `json:"expr_id"`
}

// WireAssertion is the transfer-safe skeleton of one assertion node
type WireAssertion struct {
	Kind *WireKind `json:"kind"`
}

// WireKind mirrors AssertionKind minus the quantifier case
type WireKind struct {
	Expr    *WireExpression
	And     []*WireAssertion
	Implies []*WireAssertion // exactly two: lhs, rhs
}

type wireKindJSON struct {
	Expr    *WireExpression  `json:"Expr,omitempty"`
	And     []*WireAssertion `json:"And,omitempty"`
	Implies []*WireAssertion `json:"Implies,omitempty"`
}

func (k *WireKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireKindJSON{
		Expr:    k.Expr,
		And:     k.And,
		Implies: k.Implies,
	})
}

func (k *WireKind) UnmarshalJSON(data []byte) error {
	var raw wireKindJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	variants := 0
	if raw.Expr != nil {
		variants++
	}
	if raw.And != nil {
		variants++
	}
	if raw.Implies != nil {
		variants++
	}
	if variants != 1 {
		return serializationErrorf("assertion kind must carry exactly one variant, found %d", variants)
	}
	if raw.Implies != nil && len(raw.Implies) != 2 {
		return serializationErrorf("implication must carry exactly two operands, found %d", len(raw.Implies))
	}

	k.Expr = raw.Expr
	k.And = raw.And
	k.Implies = raw.Implies
	return nil
}

// ToWire converts an assertion tree into its transfer skeleton.
// Quantifier nodes are not representable and fail with a
// SerializationError.
func ToWire(a *Assertion) (*WireAssertion, error) {
	switch kind := a.Kind.(type) {
	case *ExprKind:
		return &WireAssertion{Kind: &WireKind{
			Expr: &WireExpression{
				SpecID: string(kind.Expr.SpecID),
				ExprID: kind.Expr.ExprID,
			},
		}}, nil

	case *AndKind:
		children := make([]*WireAssertion, 0, len(kind.Assertions))
		for _, child := range kind.Assertions {
			wired, err := ToWire(child)
			if err != nil {
				return nil, err
			}
			children = append(children, wired)
		}
		return &WireAssertion{Kind: &WireKind{And: children}}, nil

	case *ImpliesKind:
		lhs, err := ToWire(kind.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := ToWire(kind.Rhs)
		if err != nil {
			return nil, err
		}
		return &WireAssertion{Kind: &WireKind{Implies: []*WireAssertion{lhs, rhs}}}, nil

	case *ForAllKind:
		return nil, serializationErrorf("quantified assertions are not representable in the wire format")
	}

	return nil, serializationErrorf("unknown assertion kind %T", a.Kind)
}

// ToJSONString encodes an assertion skeleton as a JSON string
func ToJSONString(a *Assertion) (string, error) {
	wired, err := ToWire(a)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(wired)
	if err != nil {
		return "", serializationErrorf("encoding assertion skeleton: %v", err)
	}
	return string(data), nil
}

// FromJSONString decodes a wire string into an assertion skeleton whose
// leaves carry identifiers only. Malformed input fails with a
// SerializationError and no partial value.
func FromJSONString(data string) (*Assertion, error) {
	var wired WireAssertion
	if err := json.Unmarshal([]byte(data), &wired); err != nil {
		var serr *SerializationError
		if errors.As(err, &serr) {
			return nil, serr
		}
		return nil, serializationErrorf("decoding assertion skeleton: %v", err)
	}
	return fromWire(&wired)
}

func fromWire(w *WireAssertion) (*Assertion, error) {
	if w == nil || w.Kind == nil {
		return nil, serializationErrorf("assertion node is missing its kind")
	}

	switch {
	case w.Kind.Expr != nil:
		specID, err := ParseSpecificationID(w.Kind.Expr.SpecID)
		if err != nil {
			return nil, serializationErrorf("%v", err)
		}
		return &Assertion{Kind: &ExprKind{Expr: LeafExpression{
			SpecID: specID,
			ExprID: w.Kind.Expr.ExprID,
		}}}, nil

	case w.Kind.And != nil:
		children := make([]*Assertion, 0, len(w.Kind.And))
		for _, child := range w.Kind.And {
			decoded, err := fromWire(child)
			if err != nil {
				return nil, err
			}
			children = append(children, decoded)
		}
		return &Assertion{Kind: &AndKind{Assertions: children}}, nil

	case w.Kind.Implies != nil:
		if len(w.Kind.Implies) != 2 {
			return nil, serializationErrorf("implication must carry exactly two operands, found %d", len(w.Kind.Implies))
		}
		lhs, err := fromWire(w.Kind.Implies[0])
		if err != nil {
			return nil, err
		}
		rhs, err := fromWire(w.Kind.Implies[1])
		if err != nil {
			return nil, err
		}
		return &Assertion{Kind: &ImpliesKind{Lhs: lhs, Rhs: rhs}}, nil
	}

	return nil, serializationErrorf("assertion node carries no recognized kind")
}

// ResolveLeaves rehydrates a decoded skeleton in place, attaching the
// surface expression of every leaf from the registry. Unknown identifier
// pairs fail the whole resolution.
func ResolveLeaves(a *Assertion, reg *Registry) error {
	switch kind := a.Kind.(type) {
	case *ExprKind:
		leaf, ok := reg.Resolve(kind.Expr.SpecID, kind.Expr.ExprID)
		if !ok {
			return serializationErrorf("no registered expression for (%s, %d)",
				kind.Expr.SpecID, kind.Expr.ExprID)
		}
		kind.Expr.Expr = leaf.Expr
		return nil

	case *AndKind:
		for _, child := range kind.Assertions {
			if err := ResolveLeaves(child, reg); err != nil {
				return err
			}
		}
		return nil

	case *ImpliesKind:
		if err := ResolveLeaves(kind.Lhs, reg); err != nil {
			return err
		}
		return ResolveLeaves(kind.Rhs, reg)
	}

	return serializationErrorf("cannot resolve assertion kind %T", a.Kind)
}
